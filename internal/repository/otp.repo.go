package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"todo-service/internal/domain"
)

// OTPAuditRepo keeps the postgres audit trail of issued codes. Live
// verification never reads this table.
type OTPAuditRepo struct {
	db *pgxpool.Pool
}

func NewOTPAuditRepo(db *pgxpool.Pool) *OTPAuditRepo {
	return &OTPAuditRepo{db: db}
}

func (r *OTPAuditRepo) Create(ctx context.Context, o *domain.UserOTP) error {
	id, err := strconv.ParseInt(o.ID, 10, 64)
	if err != nil {
		return err
	}
	userID, err := strconv.ParseInt(o.UserID, 10, 64)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO user_otps (id, user_id, code, purpose, issued_at, valid_until, is_verified, is_active, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, id, userID, o.Code, o.Purpose, o.IssuedAt, o.ValidUntil, o.IsVerified, o.IsActive, o.UpdatedAt)
	return err
}

func (r *OTPAuditRepo) MarkVerified(ctx context.Context, userID, purpose, code string) (bool, error) {
	uid, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return false, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var id int64
	var validUntil time.Time
	err = tx.QueryRow(ctx, `
		SELECT id, valid_until FROM user_otps
		WHERE user_id=$1 AND purpose=$2 AND code=$3 AND is_active=TRUE AND is_verified=FALSE
		ORDER BY issued_at DESC
		LIMIT 1
	`, uid, purpose, code).Scan(&id, &validUntil)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if time.Now().After(validUntil) {
		// expired: deactivate without marking verified
		_, _ = tx.Exec(ctx, `UPDATE user_otps SET is_active=FALSE, updated_at=NOW() WHERE id=$1`, id)
		_ = tx.Commit(ctx)
		return false, nil
	}

	_, err = tx.Exec(ctx, `UPDATE user_otps SET is_verified=TRUE, is_active=FALSE, updated_at=NOW() WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
