package mocks

import (
	"github.com/globoclima/globoclima-api/internal/service/auth"
)

// MockPasswordVerifier is a test double for auth.PasswordVerifier. Its
// default pairs with MockUserStore: a hash of "hashed:<password>" matches the
// plaintext <password>.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare reports whether the plaintext corresponds to the fake hash.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return auth.ErrInvalidCredentials
	}
	return nil
}
