package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/globoclima/globoclima-api/internal/service/auth"
)

// MockJWTService is a configurable test double for auth.JWTService. The
// default behavior issues predictable "mock-token-<username>" strings and
// accepts only tokens it has issued.
type MockJWTService struct {
	issued map[string]auth.Claims

	GenerateTokenFn func(ctx context.Context, userID uuid.UUID, username string) (string, time.Time, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

var _ auth.JWTService = (*MockJWTService)(nil)

// NewMockJWTService creates a mock with no issued tokens.
func NewMockJWTService() *MockJWTService {
	return &MockJWTService{
		issued: make(map[string]auth.Claims),
	}
}

// GenerateToken issues a deterministic token for the user and remembers its
// claims for later validation.
func (m *MockJWTService) GenerateToken(
	ctx context.Context,
	userID uuid.UUID,
	username string,
) (string, time.Time, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID, username)
	}

	token := fmt.Sprintf("mock-token-%s", username)
	expiresAt := time.Now().Add(24 * time.Hour)
	m.issued[token] = auth.Claims{
		UserID:    userID,
		Username:  username,
		TokenType: "access",
		ExpiresAt: expiresAt,
	}
	return token, expiresAt, nil
}

// ValidateToken accepts tokens previously issued by GenerateToken and rejects
// everything else with auth.ErrInvalidToken.
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}

	claims, ok := m.issued[tokenString]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &claims, nil
}
