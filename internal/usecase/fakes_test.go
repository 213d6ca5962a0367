package usecase

import (
	"context"
	"sync"
	"time"

	"todo-service/internal/domain"
	"todo-service/pkg/xerrors"
)

// --- in-memory fakes shared by the usecase tests ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, xerrors.ErrUserAlreadyExists
		}
	}
	saved := *user
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	f.users[saved.ID] = &saved
	out := saved
	return &out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

func (f *fakeUserRepo) MarkEmailVerified(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	u.IsEmailVerified = true
	return nil
}

type fakeTodoRepo struct {
	mu    sync.Mutex
	order []string
	todos map[string]*domain.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: map[string]*domain.Todo{}}
}

func (f *fakeTodoRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *todo
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	f.todos[saved.ID] = &saved
	f.order = append(f.order, saved.ID)
	out := saved
	return &out, nil
}

func (f *fakeTodoRepo) GetByID(_ context.Context, todoID string) (*domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.todos[todoID]
	if !ok {
		return nil, xerrors.ErrTodoNotFound
	}
	out := *t
	return &out, nil
}

func (f *fakeTodoRepo) ListByUser(_ context.Context, userID string) ([]*domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Todo
	for _, id := range f.order {
		if t := f.todos[id]; t != nil && t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeTodoRepo) UpdateDone(_ context.Context, todoID string, isDone bool) (*domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.todos[todoID]
	if !ok {
		return nil, xerrors.ErrTodoNotFound
	}
	t.IsDone = isDone
	t.UpdatedAt = time.Now()
	out := *t
	return &out, nil
}

func (f *fakeTodoRepo) Delete(_ context.Context, todoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.todos[todoID]; !ok {
		return xerrors.ErrTodoNotFound
	}
	delete(f.todos, todoID)
	return nil
}

type fakeOTPStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{codes: map[string]string{}}
}

func (f *fakeOTPStore) key(userID, purpose string) string { return userID + ":" + purpose }

func (f *fakeOTPStore) Save(_ context.Context, userID, purpose, code string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes[f.key(userID, purpose)] = code
	return nil
}

func (f *fakeOTPStore) Get(_ context.Context, userID, purpose string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	code, ok := f.codes[f.key(userID, purpose)]
	if !ok {
		return "", xerrors.ErrExpiredOTP
	}
	return code, nil
}

func (f *fakeOTPStore) Delete(_ context.Context, userID, purpose string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.codes, f.key(userID, purpose))
	return nil
}

type fakeOTPAudit struct {
	mu       sync.Mutex
	created  []*domain.UserOTP
	verified []string
	done     chan struct{}
}

func newFakeOTPAudit() *fakeOTPAudit {
	return &fakeOTPAudit{done: make(chan struct{}, 8)}
}

func (f *fakeOTPAudit) Create(_ context.Context, otp *domain.UserOTP) error {
	f.mu.Lock()
	f.created = append(f.created, otp)
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakeOTPAudit) MarkVerified(_ context.Context, userID, purpose, code string) (bool, error) {
	f.mu.Lock()
	f.verified = append(f.verified, userID+":"+purpose+":"+code)
	f.mu.Unlock()
	f.done <- struct{}{}
	return true, nil
}

type delivery struct {
	userID    string
	recipient string
	subject   string
	body      string
	emailType string
}

type fakeNotifier struct {
	deliveries chan delivery
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{deliveries: make(chan delivery, 8)}
}

func (f *fakeNotifier) Deliver(userID, recipient, subject, body, emailType string) {
	f.deliveries <- delivery{userID, recipient, subject, body, emailType}
}
