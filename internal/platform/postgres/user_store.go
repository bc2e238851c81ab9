package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/store"
)

const userColumns = "username, password, name, token"

// PostgresUserStore implements store.UserStore.
type PostgresUserStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// NewPostgresUserStore creates a user store backed by db.
func NewPostgresUserStore(db *sqlx.DB, log *slog.Logger) *PostgresUserStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: log.With(slog.String("component", "user_store")),
	}
}

// Create inserts a new user. A taken username yields store.ErrUsernameExists.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `INSERT INTO users (` + userColumns + `) VALUES (:username, :password, :name, :token)`
	if _, err := sqlx.NamedExecContext(ctx, s.db, query, user); err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrDuplicate) {
			log.Debug("username already taken", slog.String("username", user.Username))
			return store.ErrUsernameExists
		}
		log.Error("failed to insert user", slog.String("error", err.Error()))
		return store.NewStoreError("user", "create", "insert user", mapped)
	}

	log.Debug("user created", slog.String("username", user.Username))
	return nil
}

// GetByUsername loads a user by primary key.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user,
		s.db.Rebind(`SELECT `+userColumns+` FROM users WHERE username = ?`), username)
	if err != nil {
		return nil, notFoundAs(err, store.ErrUserNotFound)
	}
	return &user, nil
}

// GetByToken loads the user whose current session token equals token.
func (s *PostgresUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, store.ErrUserNotFound
	}
	var user domain.User
	err := s.db.GetContext(ctx, &user,
		s.db.Rebind(`SELECT `+userColumns+` FROM users WHERE token = ?`), token)
	if err != nil {
		return nil, notFoundAs(err, store.ErrUserNotFound)
	}
	return &user, nil
}

// Update writes name and password for an existing user. The session token
// is only changed through SetToken.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE users SET password = :password, name = :name WHERE username = :username`
	result, err := sqlx.NamedExecContext(ctx, s.db, query, user)
	if err != nil {
		log.Error("failed to update user",
			slog.String("username", user.Username),
			slog.String("error", err.Error()))
		return store.NewStoreError("user", "update", "update user", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// SetToken replaces the session token. A nil token ends the session.
func (s *PostgresUserStore) SetToken(ctx context.Context, username string, token *string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		s.db.Rebind(`UPDATE users SET token = ? WHERE username = ?`), token, username)
	if err != nil {
		log.Error("failed to set session token",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return store.NewStoreError("user", "set token", "set token", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Debug("session token updated",
		slog.String("username", username),
		slog.Bool("active", token != nil))
	return nil
}
