package sqlite

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/store"
	"gorm.io/gorm"
)

// UserStore implements store.UserStore.
type UserStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a user store backed by db.
func NewUserStore(db *gorm.DB, log *slog.Logger) *UserStore {
	if log == nil {
		log = slog.Default()
	}
	return &UserStore{db: db, logger: log.With(slog.String("component", "user_store"))}
}

// Create inserts user.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.db.WithContext(ctx).Create(userFromDomain(user)).Error; err != nil {
		mapped := MapError(err, store.ErrUsernameExists, nil)
		if errors.Is(mapped, store.ErrUsernameExists) {
			return store.ErrUsernameExists
		}
		log.Error("failed to insert user", slog.String("error", err.Error()))
		return store.NewStoreError("user", "create", "insert user", mapped)
	}

	log.Debug("user created", slog.String("username", user.Username))
	return nil
}

// GetByUsername looks a user up by primary key.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.first(ctx, "username = ?", username)
}

// GetByToken returns the user whose active session is token.
func (s *UserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, store.ErrUserNotFound
	}
	return s.first(ctx, "token = ?", token)
}

func (s *UserStore) first(ctx context.Context, cond string, arg any) (*domain.User, error) {
	var rec userRecord
	err := s.db.WithContext(ctx).Where(cond, arg).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("user", "get", "load user", MapError(err, nil, nil))
	}
	return rec.toDomain(), nil
}

// Update writes name and password. The token is left to SetToken.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	result := s.db.WithContext(ctx).Model(&userRecord{}).
		Where("username = ?", user.Username).
		Updates(map[string]any{"password": user.Password, "name": user.Name})
	if result.Error != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update user",
			slog.String("username", user.Username),
			slog.String("error", result.Error.Error()))
		return store.NewStoreError("user", "update", "update user", MapError(result.Error, nil, nil))
	}
	if result.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// SetToken replaces the session token. A nil token ends the session.
func (s *UserStore) SetToken(ctx context.Context, username string, token *string) error {
	result := s.db.WithContext(ctx).Model(&userRecord{}).
		Where("username = ?", username).
		Update("token", token)
	if result.Error != nil {
		return store.NewStoreError("user", "set token", "set token", MapError(result.Error, nil, nil))
	}
	if result.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("session token updated",
		slog.String("username", username),
		slog.Bool("active", token != nil))
	return nil
}
