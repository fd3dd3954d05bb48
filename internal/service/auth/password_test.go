package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/globoclima/globoclima-api/internal/service/auth"
)

func TestBcryptVerifierCompare(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := auth.NewBcryptVerifier()

	assert.NoError(t, verifier.Compare(string(hashed), "secret123"))
	assert.Error(t, verifier.Compare(string(hashed), "wrong-password"))
	assert.Error(t, verifier.Compare("not-a-hash", "secret123"))
}
