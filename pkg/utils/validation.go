package utils

import (
	"regexp"
	"strings"

	"todo-service/pkg/xerrors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

var (
	upperRegex = regexp.MustCompile(`[A-Z]`)
	lowerRegex = regexp.MustCompile(`[a-z]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return xerrors.ErrPasswordTooShort
	}
	if len(password) > 100 {
		return xerrors.ErrPasswordTooLong
	}
	if !upperRegex.MatchString(password) {
		return xerrors.ErrPasswordUppercase
	}
	if !lowerRegex.MatchString(password) {
		return xerrors.ErrPasswordLowercase
	}
	if !digitRegex.MatchString(password) {
		return xerrors.ErrPasswordDigit
	}
	return nil
}
