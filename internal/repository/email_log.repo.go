package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"todo-service/internal/domain"
)

type EmailLogRepo struct {
	db *pgxpool.Pool
}

func NewEmailLogRepo(db *pgxpool.Pool) *EmailLogRepo {
	return &EmailLogRepo{db: db}
}

func (r *EmailLogRepo) LogEmail(ctx context.Context, log domain.EmailLog) error {
	id, err := strconv.ParseInt(log.ID, 10, 64)
	if err != nil {
		return err
	}
	userID, err := strconv.ParseInt(log.UserID, 10, 64)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO email_logs (id, user_id, subject, recipient_email, type, status, error_message, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, userID, log.Subject, log.RecipientEmail, log.Type, log.Status, log.ErrorMessage, log.SentAt)
	return err
}
