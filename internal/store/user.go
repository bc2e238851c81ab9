package store

import (
	"context"

	"github.com/phrazzld/taskbook-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The password must already be hashed.
	// Returns ErrUsernameExists if the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByToken retrieves the user whose active session token equals token.
	// Returns ErrUserNotFound if no user holds it.
	GetByToken(ctx context.Context, token string) (*domain.User, error)

	// Update writes the user's name and password hash.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// SetToken replaces the user's session token; nil clears it.
	// Returns ErrUserNotFound if the user does not exist.
	SetToken(ctx context.Context, username string, token *string) error
}
