package store

import (
	"context"

	"github.com/globoclima/globoclima-api/internal/domain"
)

// UserStore defines the interface for user credential persistence.
// Implementations are backed by a key-value store reachable through insert
// and scan-by-equality operations only.
type UserStore interface {
	// Create saves a new user to the store.
	// It handles domain validation and password hashing internally; the
	// plaintext password is never persisted.
	// Returns ErrUsernameExists if the username is already taken. Username
	// uniqueness is enforced with a conditional insert, so two concurrent
	// registrations for the same name cannot both succeed.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// FindByUsername retrieves a user by their username.
	// The lookup is a full scan filtered by equality; callers accept the
	// O(n) cost. Returns ErrUserNotFound if no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Ping reports whether the backing store is reachable. Consumed by the
	// health endpoint.
	Ping(ctx context.Context) error
}
