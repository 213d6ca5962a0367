package xerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ParsePGErrorCode returns the SQLSTATE code of a postgres error,
// e.g. 23505 for unique_violation.
func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return "unknown"
}

const PGUniqueViolation = "23505"

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
)

// Registration / Login
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameRequired   = errors.New("username required")
	ErrEmailRequired      = errors.New("email required")
	ErrPasswordRequired   = errors.New("password required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
)

// Password rules
var (
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong   = errors.New("password must not exceed 100 characters")
	ErrPasswordUppercase = errors.New("password must include at least one uppercase letter")
	ErrPasswordLowercase = errors.New("password must include at least one lowercase letter")
	ErrPasswordDigit     = errors.New("password must include at least one digit")
)

// OTP
var (
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrExpiredOTP         = errors.New("expired otp")
	ErrTooManyOTPRequests = errors.New("too many otp requests")
	ErrOTPBlocked         = errors.New("otp temporarily blocked")
	ErrUserNoEmail        = errors.New("user does not have a valid email")
)

// Todos
var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrContentRequired = errors.New("content required")
	ErrContentTooLong  = errors.New("content must not exceed 256 characters")
)

// Token
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
