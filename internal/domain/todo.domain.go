package domain

import (
	"context"
	"time"
)

type Todo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	IsDone    bool      `json:"is_done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Todo) Done() *Todo {
	t.IsDone = true
	return t
}

func (t *Todo) Undone() *Todo {
	t.IsDone = false
	return t
}

type TodoRepository interface {
	Create(ctx context.Context, todo *Todo) (*Todo, error)
	GetByID(ctx context.Context, todoID string) (*Todo, error)
	ListByUser(ctx context.Context, userID string) ([]*Todo, error)
	UpdateDone(ctx context.Context, todoID string, isDone bool) (*Todo, error)
	Delete(ctx context.Context, todoID string) error
}
