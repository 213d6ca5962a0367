package email

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todo-service/internal/domain"
	"todo-service/pkg/id"
)

// Notifier delivers a message through the Mailer and records the outcome
// in email_logs. Callers run it off the request goroutine.
type Notifier struct {
	mailer domain.Mailer
	repo   domain.EmailLogRepository
	sf     *id.Snowflake
	logger *zap.Logger
}

func NewNotifier(mailer domain.Mailer, repo domain.EmailLogRepository, sf *id.Snowflake, logger *zap.Logger) *Notifier {
	return &Notifier{
		mailer: mailer,
		repo:   repo,
		sf:     sf,
		logger: logger,
	}
}

func (n *Notifier) Deliver(userID, recipient, subject, body, emailType string) {
	startTime := time.Now()
	emailID := n.sf.Generate()
	requestID := uuid.New().String()

	n.logger.Info("sending email",
		zap.String("request_id", requestID),
		zap.String("email_id", emailID),
		zap.String("recipient", recipient),
		zap.String("subject", subject),
		zap.String("type", emailType),
		zap.String("user_id", userID))

	err := n.mailer.Send(recipient, subject, body)
	duration := time.Since(startTime)

	status := "sent"
	var errorMessage string
	if err != nil {
		status = "failed"
		errorMessage = err.Error()
		n.logger.Error("email send failed",
			zap.String("request_id", requestID),
			zap.String("email_id", emailID),
			zap.String("recipient", recipient),
			zap.String("type", emailType),
			zap.Duration("duration", duration),
			zap.Error(err))
	} else {
		n.logger.Info("email sent successfully",
			zap.String("email_id", emailID),
			zap.String("recipient", recipient),
			zap.String("type", emailType),
			zap.Duration("duration", duration))
	}

	n.logToDatabase(emailID, userID, recipient, subject, emailType, status, errorMessage, duration)
}

func (n *Notifier) logToDatabase(emailID, userID, recipient, subject, emailType, status, errorMessage string, duration time.Duration) {
	bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emailLog := domain.EmailLog{
		ID:             emailID,
		UserID:         userID,
		Subject:        subject,
		RecipientEmail: recipient,
		Type:           emailType,
		Status:         status,
		ErrorMessage:   errorMessage,
		SentAt:         time.Now(),
		Duration:       duration,
	}

	if err := n.repo.LogEmail(bgCtx, emailLog); err != nil {
		n.logger.Error("failed to log email to database",
			zap.String("email_id", emailID),
			zap.String("recipient", recipient),
			zap.String("status", status),
			zap.Error(err))
	}
}
