package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/globoclima/globoclima-api/internal/domain"
	"github.com/globoclima/globoclima-api/internal/store"
)

// MockUserStore is a configurable test double for store.UserStore. When the
// function fields are left nil it behaves as an in-memory store keyed by
// username.
type MockUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User

	CreateFn         func(ctx context.Context, user *domain.User) error
	FindByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	PingFn           func(ctx context.Context) error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty in-memory mock user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users: make(map[string]*domain.User),
	}
}

// Create stores the user, rejecting duplicate usernames. The default
// implementation mirrors the real store by faking the password hash and
// clearing the plaintext.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	if user.Password != "" {
		user.HashedPassword = "hashed:" + user.Password
		user.Password = ""
	}

	stored := *user
	m.users[user.Username] = &stored
	return nil
}

// FindByUsername returns the stored user or store.ErrUserNotFound.
func (m *MockUserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFn != nil {
		return m.FindByUsernameFn(ctx, username)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

// Ping reports the store as reachable unless overridden.
func (m *MockUserStore) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}
