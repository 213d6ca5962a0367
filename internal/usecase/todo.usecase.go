package usecase

import (
	"context"
	"strings"

	"todo-service/internal/domain"
	"todo-service/pkg/id"
	"todo-service/pkg/xerrors"
)

const maxContentLength = 256

type TodoUsecase struct {
	todoRepo domain.TodoRepository
	Sf       *id.Snowflake
}

func NewTodoUsecase(todoRepo domain.TodoRepository, sf *id.Snowflake) *TodoUsecase {
	return &TodoUsecase{
		todoRepo: todoRepo,
		Sf:       sf,
	}
}

// List returns the caller's todos in insertion order; order == "DESC"
// reverses it.
func (u *TodoUsecase) List(ctx context.Context, userID, order string) ([]*domain.Todo, error) {
	todos, err := u.todoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(order, "DESC") {
		for i, j := 0, len(todos)-1; i < j; i, j = i+1, j-1 {
			todos[i], todos[j] = todos[j], todos[i]
		}
	}
	return todos, nil
}

// Get fetches a single todo. A todo owned by another user reads as not
// found so existence does not leak across accounts.
func (u *TodoUsecase) Get(ctx context.Context, userID, todoID string) (*domain.Todo, error) {
	todo, err := u.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo.UserID != userID {
		return nil, xerrors.ErrTodoNotFound
	}
	return todo, nil
}

func (u *TodoUsecase) Create(ctx context.Context, userID, content string, isDone bool) (*domain.Todo, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, xerrors.ErrContentRequired
	}
	if len(content) > maxContentLength {
		return nil, xerrors.ErrContentTooLong
	}

	todo := &domain.Todo{
		ID:      u.Sf.Generate(),
		UserID:  userID,
		Content: content,
		IsDone:  isDone,
	}
	return u.todoRepo.Create(ctx, todo)
}

func (u *TodoUsecase) SetDone(ctx context.Context, userID, todoID string, isDone bool) (*domain.Todo, error) {
	if _, err := u.Get(ctx, userID, todoID); err != nil {
		return nil, err
	}
	return u.todoRepo.UpdateDone(ctx, todoID, isDone)
}

func (u *TodoUsecase) Delete(ctx context.Context, userID, todoID string) error {
	if _, err := u.Get(ctx, userID, todoID); err != nil {
		return err
	}
	return u.todoRepo.Delete(ctx, todoID)
}
