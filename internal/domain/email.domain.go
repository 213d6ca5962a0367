package domain

import (
	"context"
	"time"
)

type EmailLog struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id,omitempty"`
	Subject        string        `json:"subject,omitempty"`
	RecipientEmail string        `json:"recipient_email"`
	Type           string        `json:"email_type"`      // otp, welcome, etc.
	Status         string        `json:"delivery_status"` // sent, failed
	ErrorMessage   string        `json:"error_message,omitempty"`
	SentAt         time.Time     `json:"sent_at"`
	Duration       time.Duration `json:"duration"`
}

type EmailLogRepository interface {
	LogEmail(ctx context.Context, log EmailLog) error
}

// Mailer sends a single message; the SMTP implementation lives in
// internal/service/email.
type Mailer interface {
	Send(to, subject, body string) error
}
