package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterResponse defines the successful response for registration.
type RegisterResponse struct {
	// UserID is the unique identifier for the new user
	UserID string `json:"user_id"`

	// Username echoes the registered login name
	Username string `json:"username"`
}

// LoginResponse defines the successful response for login.
type LoginResponse struct {
	// Token is the JWT bearer token used for API authorization
	Token string `json:"token"`

	// Username is the login name of the authenticated user
	Username string `json:"username"`

	// ExpiresAt is the ISO 8601 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// MeResponse defines the response for the authenticated identity endpoint.
type MeResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
