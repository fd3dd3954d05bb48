// Package redisstore implements the credential store interfaces on top of
// Redis. Users are stored as JSON values; username uniqueness is enforced
// with a conditional SETNX reservation rather than a check-then-insert scan.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/globoclima/globoclima-api/internal/domain"
	"github.com/globoclima/globoclima-api/internal/store"
)

// Key layout. Records and the username reservation index live under separate
// prefixes so a record scan never touches index keys.
const (
	userRecordPrefix = "user:record:"
	userNamePrefix   = "user:name:"
)

// scanBatch is the COUNT hint passed to SCAN during username lookups.
const scanBatch = 100

// RedisUserStore implements the store.UserStore interface using Redis as the
// storage backend.
type RedisUserStore struct {
	client     *redis.Client
	bcryptCost int
	logger     *slog.Logger
}

// Ensure RedisUserStore implements store.UserStore interface
var _ store.UserStore = (*RedisUserStore)(nil)

// NewRedisUserStore creates a new Redis implementation of the UserStore
// interface. It accepts a client that should be initialized and closed by the
// caller, and the bcrypt cost used when hashing passwords (0 selects
// bcrypt.DefaultCost).
func NewRedisUserStore(client *redis.Client, bcryptCost int, logger *slog.Logger) *RedisUserStore {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &RedisUserStore{
		client:     client,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// storedUser is the persisted JSON shape. The plaintext password never
// appears here.
type storedUser struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"hashed_password"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Create implements store.UserStore.Create.
// The username reservation is written first with SETNX: if another
// registration holds the name, ErrUsernameExists is returned without touching
// the record keyspace. The record write follows; if it fails the reservation
// is released on a best-effort basis.
func (s *RedisUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = string(hashed)
	user.Password = ""

	nameKey := userNamePrefix + user.Username
	reserved, err := s.client.SetNX(ctx, nameKey, user.ID.String(), 0).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve username: %w", err)
	}
	if !reserved {
		return store.ErrUsernameExists
	}

	record := storedUser{
		ID:             user.ID.String(),
		Username:       user.Username,
		HashedPassword: user.HashedPassword,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
	data, err := json.Marshal(record)
	if err != nil {
		s.releaseReservation(ctx, nameKey)
		return fmt.Errorf("failed to marshal user record: %w", err)
	}

	if err := s.client.Set(ctx, userRecordPrefix+record.ID, data, 0).Err(); err != nil {
		s.releaseReservation(ctx, nameKey)
		return fmt.Errorf("failed to store user record: %w", err)
	}

	return nil
}

// FindByUsername implements store.UserStore.FindByUsername.
// The lookup is a cursor SCAN over all user records with an equality filter
// on the username, matching the store's scan-by-equality contract.
func (s *RedisUserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, userRecordPrefix+"*", scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan user records: %w", err)
		}

		for _, key := range keys {
			data, err := s.client.Get(ctx, key).Result()
			if err == redis.Nil {
				// Deleted between SCAN and GET; skip.
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to read user record %s: %w", key, err)
			}

			var record storedUser
			if err := json.Unmarshal([]byte(data), &record); err != nil {
				s.logger.Warn("skipping undecodable user record", "key", key, "error", err)
				continue
			}
			if record.Username == username {
				return record.toDomain()
			}
		}

		cursor = next
		if cursor == 0 {
			return nil, store.ErrUserNotFound
		}
	}
}

// Ping implements store.UserStore.Ping.
func (s *RedisUserStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// releaseReservation deletes a username reservation after a failed record
// write. Failure here is logged only: the reservation blocks re-registration
// of the name until an operator intervenes, which beats a silent duplicate.
func (s *RedisUserStore) releaseReservation(ctx context.Context, nameKey string) {
	if err := s.client.Del(ctx, nameKey).Err(); err != nil {
		s.logger.Error("failed to release username reservation", "key", nameKey, "error", err)
	}
}

func (r *storedUser) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: user record has invalid ID %q", store.ErrInvalidEntity, r.ID)
	}
	return &domain.User{
		ID:             id,
		Username:       r.Username,
		HashedPassword: r.HashedPassword,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}, nil
}
