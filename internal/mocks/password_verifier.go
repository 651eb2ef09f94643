package mocks

import "github.com/phrazzld/rental-portal-api/internal/service/auth"

// MockPasswordVerifier implements auth.PasswordHasher and
// auth.PasswordVerifier for testing. The default behavior treats the
// hash "hashed:" + password as a match, so tests can wire both sides
// without bcrypt's cost.
type MockPasswordVerifier struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	HashErr    error
	CompareErr error
}

var _ auth.PasswordHasher = (*MockPasswordVerifier)(nil)
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.CompareErr != nil {
		return m.CompareErr
	}
	if hashedPassword != "hashed:"+password {
		return auth.ErrInvalidCredentials
	}
	return nil
}
