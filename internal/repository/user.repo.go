package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"todo-service/internal/domain"
	"todo-service/pkg/xerrors"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var userID int64
	err := row.Scan(
		&userID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.IsEmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.ID = strconv.FormatInt(userID, 10)
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	userID, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return nil, xerrors.ErrInvalidRequest
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, is_email_verified, created_at, updated_at
	`, userID, user.Username, user.Email, user.PasswordHash)

	saved, err := scanUser(row)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == xerrors.PGUniqueViolation {
			return nil, xerrors.ErrUserAlreadyExists
		}
		return nil, err
	}
	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, xerrors.ErrUserNotFound
	}
	row := r.db.QueryRow(ctx, `
		SELECT id, username, email, password_hash, is_email_verified, created_at, updated_at
		FROM users WHERE id=$1
	`, userID)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, username, email, password_hash, is_email_verified, created_at, updated_at
		FROM users WHERE username=$1
	`, username)
	return scanUser(row)
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, id string) error {
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return xerrors.ErrUserNotFound
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET is_email_verified=TRUE, updated_at=NOW() WHERE id=$1
	`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrUserNotFound
	}
	return nil
}
