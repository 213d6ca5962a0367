package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-service/pkg/xerrors"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"valid", "user@example.com", true},
		{"valid with plus", "user+tag@example.co.uk", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"no at sign", "userexample.com", false},
		{"no domain", "user@", false},
		{"no tld", "user@example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Password1", nil},
		{"too short", "Pw1", xerrors.ErrPasswordTooShort},
		{"no uppercase", "password1", xerrors.ErrPasswordUppercase},
		{"no lowercase", "PASSWORD1", xerrors.ErrPasswordLowercase},
		{"no digit", "Passwordx", xerrors.ErrPasswordDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword_TooLong(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, ValidatePassword("Aa1"+string(long)), xerrors.ErrPasswordTooLong)
}
