package domain

import (
	"context"
	"time"
)

// UserOTP is the audit row; the live code lives in Redis until its TTL runs out.
type UserOTP struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Code       string    `json:"otp_code"`
	Purpose    string    `json:"otp_purpose"` // verify_email, etc.
	IssuedAt   time.Time `json:"issued_at"`
	ValidUntil time.Time `json:"valid_until"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OTPStore holds live codes with a TTL.
type OTPStore interface {
	Save(ctx context.Context, userID, purpose, code string, ttl time.Duration) error
	Get(ctx context.Context, userID, purpose string) (string, error)
	Delete(ctx context.Context, userID, purpose string) error
}

// OTPAuditRepository persists the audit trail of issued codes.
type OTPAuditRepository interface {
	Create(ctx context.Context, otp *UserOTP) error
	MarkVerified(ctx context.Context, userID, purpose, code string) (bool, error)
}
