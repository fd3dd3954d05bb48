package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globoclima/globoclima-api/internal/api/middleware"
	"github.com/globoclima/globoclima-api/internal/mocks"
	"github.com/globoclima/globoclima-api/internal/service/auth"
)

func protectedEcho(t *testing.T) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r)
		require.True(t, ok, "user ID must be in the context")
		username, ok := middleware.GetUsername(r)
		require.True(t, ok, "username must be in the context")

		w.Header().Set("X-User-ID", userID.String())
		w.Header().Set("X-Username", username)
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	jwtService := mocks.NewMockJWTService()
	userID := uuid.New()
	token, _, err := jwtService.GenerateToken(context.Background(), userID, "maria")
	require.NoError(t, err)

	handler := middleware.NewAuthMiddleware(jwtService).Authenticate(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, userID.String(), rec.Header().Get("X-User-ID"))
	assert.Equal(t, "maria", rec.Header().Get("X-Username"))
}

func TestAuthenticateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		header      string
		validateErr error
		wantStatus  int
		wantBody    string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization header required",
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization format",
		},
		{
			name:       "no token after scheme",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization format",
		},
		{
			name:        "expired token",
			header:      "Bearer some-token",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantBody:    "Token expired",
		},
		{
			name:        "invalid token",
			header:      "Bearer some-token",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantBody:    "Invalid token",
		},
		{
			name:        "wrong token type",
			header:      "Bearer some-token",
			validateErr: auth.ErrWrongTokenType,
			wantStatus:  http.StatusUnauthorized,
			wantBody:    "Invalid token",
		},
		{
			name:        "unexpected validation failure",
			header:      "Bearer some-token",
			validateErr: errors.New("keystore offline"),
			wantStatus:  http.StatusInternalServerError,
			wantBody:    "Authentication error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := mocks.NewMockJWTService()
			if tt.validateErr != nil {
				jwtService.ValidateTokenFn = func(ctx context.Context, tokenString string) (*auth.Claims, error) {
					return nil, tt.validateErr
				}
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})
			handler := middleware.NewAuthMiddleware(jwtService).Authenticate(next)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.False(t, called, "next handler must not run")
		})
	}
}

func TestGetUserIDMissing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.GetUserID(req)
	assert.False(t, ok)

	_, ok = middleware.GetUsername(req)
	assert.False(t, ok)
}
