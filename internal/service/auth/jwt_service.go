// Package auth provides token issuance/verification and password comparison
// for the authentication flow. Token validity is stateless: it is determined
// purely by signature and expiry, never by a store lookup.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token embedding the user's
	// ID and username. Returns the token string and its expiry time, or an
	// error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, username string) (string, time.Time, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims containing user information if the token is
	// valid, or an error if validation fails (expired, invalid signature,
	// wrong type, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified content of an access token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid"`

	// Username is the login name embedded at issuance.
	Username string `json:"username"`

	// TokenType indicates the purpose of the token (always "access").
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
