package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/phrazzld/taskbook-api/internal/service/auth"
)

var (
	_ auth.JWTService     = (*MockJWTService)(nil)
	_ auth.PasswordHasher = (*MockPasswordHasher)(nil)
)

// MockJWTService implements auth.JWTService for testing.
// Without function fields it issues "token-<username>" and accepts tokens of
// that shape.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, username string) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

const mockTokenPrefix = "token-"

// GenerateToken implements auth.JWTService.
func (m *MockJWTService) GenerateToken(ctx context.Context, username string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, username)
	}
	return mockTokenPrefix + username, nil
}

// ValidateToken implements auth.JWTService.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if len(tokenString) <= len(mockTokenPrefix) || tokenString[:len(mockTokenPrefix)] != mockTokenPrefix {
		return nil, auth.ErrInvalidToken
	}
	now := time.Now()
	return &auth.Claims{
		Subject:   tokenString[len(mockTokenPrefix):],
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}, nil
}

// MockPasswordHasher implements auth.PasswordHasher for testing.
// Without function fields it "hashes" by prefixing "hashed:".
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if password == "" {
		return "", errors.New("empty password")
	}
	return "hashed:" + password, nil
}

// Compare implements auth.PasswordHasher.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return auth.ErrPasswordMismatch
	}
	return nil
}
