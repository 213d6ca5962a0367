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

type TodoRepository struct {
	db *pgxpool.Pool
}

func NewTodoRepository(db *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{db: db}
}

func scanTodo(row pgx.Row) (*domain.Todo, error) {
	var t domain.Todo
	var todoID, userID int64
	err := row.Scan(
		&todoID,
		&userID,
		&t.Content,
		&t.IsDone,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	t.ID = strconv.FormatInt(todoID, 10)
	t.UserID = strconv.FormatInt(userID, 10)
	return &t, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	todoID, err := strconv.ParseInt(todo.ID, 10, 64)
	if err != nil {
		return nil, xerrors.ErrInvalidRequest
	}
	userID, err := strconv.ParseInt(todo.UserID, 10, 64)
	if err != nil {
		return nil, xerrors.ErrInvalidRequest
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO todos (id, user_id, content, is_done)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, content, is_done, created_at, updated_at
	`, todoID, userID, todo.Content, todo.IsDone)
	return scanTodo(row)
}

func (r *TodoRepository) GetByID(ctx context.Context, todoID string) (*domain.Todo, error) {
	id, err := strconv.ParseInt(todoID, 10, 64)
	if err != nil {
		return nil, xerrors.ErrTodoNotFound
	}
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, content, is_done, created_at, updated_at
		FROM todos WHERE id=$1
	`, id)
	return scanTodo(row)
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Todo, error) {
	uid, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return nil, xerrors.ErrUserNotFound
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, content, is_done, created_at, updated_at
		FROM todos
		WHERE user_id=$1
		ORDER BY id ASC
	`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []*domain.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) UpdateDone(ctx context.Context, todoID string, isDone bool) (*domain.Todo, error) {
	id, err := strconv.ParseInt(todoID, 10, 64)
	if err != nil {
		return nil, xerrors.ErrTodoNotFound
	}
	row := r.db.QueryRow(ctx, `
		UPDATE todos SET is_done=$2, updated_at=NOW()
		WHERE id=$1
		RETURNING id, user_id, content, is_done, created_at, updated_at
	`, id, isDone)
	return scanTodo(row)
}

func (r *TodoRepository) Delete(ctx context.Context, todoID string) error {
	id, err := strconv.ParseInt(todoID, 10, 64)
	if err != nil {
		return xerrors.ErrTodoNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrTodoNotFound
	}
	return nil
}
