package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/service/auth"
	"github.com/phrazzld/taskbook-api/internal/store"
	"github.com/phrazzld/taskbook-api/internal/validation"
)

// Client-facing messages for rejected credentials.
const (
	msgWrongCredentials = "username or password is wrong"
	msgUnauthorized     = "Unauthorized"
)

// UserService manages accounts and their single active session.
type UserService interface {
	// Register creates an account with a hashed password.
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)

	// Login checks credentials and returns a fresh session token, replacing
	// any previous one.
	Login(ctx context.Context, input LoginUserInput) (string, error)

	// Current returns the profile of the authenticated user.
	Current(ctx context.Context, user *domain.User) (*domain.User, error)

	// Update changes the user's name and/or password.
	Update(ctx context.Context, user *domain.User, input UpdateUserInput) (*domain.User, error)

	// Logout clears the user's session token.
	Logout(ctx context.Context, user *domain.User) error

	// ResolveByToken returns the user holding token as their active session.
	// Any failure is reported as an UnauthorizedError.
	ResolveByToken(ctx context.Context, token string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	users          store.UserStore
	hasher         auth.PasswordHasher
	tokens         auth.JWTService
	registerSchema validation.Schema[RegisterUserInput]
	loginSchema    validation.Schema[LoginUserInput]
	updateSchema   validation.Schema[UpdateUserInput]
	logger         *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	validator *validation.Validator,
	logger *slog.Logger,
) (*UserServiceImpl, error) {
	switch {
	case users == nil:
		return nil, errors.New("user store cannot be nil")
	case hasher == nil:
		return nil, errors.New("password hasher cannot be nil")
	case tokens == nil:
		return nil, errors.New("jwt service cannot be nil")
	case validator == nil:
		return nil, errors.New("validator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		users:          users,
		hasher:         hasher,
		tokens:         tokens,
		registerSchema: validation.Object[RegisterUserInput](validator),
		loginSchema:    validation.Object[LoginUserInput](validator),
		updateSchema:   validation.Object[UpdateUserInput](validator),
		logger:         logger.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.
func (s *UserServiceImpl) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	input, err := s.registerSchema.Validate(input)
	if err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: input.Username,
		Password: hash,
		Name:     input.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("attempted to register an existing username",
				slog.String("username", input.Username))
		} else {
			log.Error("failed to save user",
				slog.String("error", err.Error()),
				slog.String("username", input.Username))
		}
		return nil, translateStoreError("user", "register", "user", err)
	}

	log.Info("user registered", slog.String("username", user.Username))
	return user, nil
}

// Login implements UserService.
func (s *UserServiceImpl) Login(ctx context.Context, input LoginUserInput) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	input, err := s.loginSchema.Validate(input)
	if err != nil {
		return "", err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login for unknown username", slog.String("username", input.Username))
			return "", domain.NewUnauthorizedError(msgWrongCredentials, err)
		}
		log.Error("failed to load user for login", slog.String("error", err.Error()))
		return "", NewServiceError("user", "login", err)
	}

	if err := s.hasher.Compare(user.Password, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Debug("login with wrong password", slog.String("username", input.Username))
			return "", domain.NewUnauthorizedError(msgWrongCredentials, err)
		}
		log.Error("failed to compare password", slog.String("error", err.Error()))
		return "", NewServiceError("user", "login", err)
	}

	token, err := s.tokens.GenerateToken(ctx, user.Username)
	if err != nil {
		return "", NewServiceError("user", "login", err)
	}

	if err := s.users.SetToken(ctx, user.Username, &token); err != nil {
		log.Error("failed to store session token", slog.String("error", err.Error()))
		return "", translateStoreError("user", "login", "user", err)
	}

	log.Info("user logged in", slog.String("username", user.Username))
	return token, nil
}

// Current implements UserService.
func (s *UserServiceImpl) Current(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errUnauthenticated()
	}
	return user, nil
}

// Update implements UserService.
func (s *UserServiceImpl) Update(
	ctx context.Context,
	user *domain.User,
	input UpdateUserInput,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if user == nil {
		return nil, errUnauthenticated()
	}

	input, err := s.updateSchema.Validate(input)
	if err != nil {
		return nil, err
	}

	updated := *user
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Password != nil {
		hash, err := s.hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		updated.Password = hash
	}

	if err := s.users.Update(ctx, &updated); err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return nil, translateStoreError("user", "update", "user", err)
	}

	log.Debug("user updated",
		slog.String("username", user.Username),
		slog.Bool("password_changed", input.Password != nil))
	return &updated, nil
}

// Logout implements UserService.
func (s *UserServiceImpl) Logout(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if user == nil {
		return errUnauthenticated()
	}

	if err := s.users.SetToken(ctx, user.Username, nil); err != nil {
		log.Error("failed to clear session token", slog.String("error", err.Error()))
		return translateStoreError("user", "logout", "user", err)
	}

	log.Info("user logged out", slog.String("username", user.Username))
	return nil
}

// ResolveByToken implements UserService.
func (s *UserServiceImpl) ResolveByToken(ctx context.Context, token string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.NewUnauthorizedError(msgUnauthorized, auth.ErrMissingToken)
	}

	claims, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		log.Debug("token rejected", slog.String("reason", err.Error()))
		return nil, domain.NewUnauthorizedError(msgUnauthorized, err)
	}

	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("token has no active session", slog.String("subject", claims.Subject))
			return nil, domain.NewUnauthorizedError(msgUnauthorized, err)
		}
		log.Error("failed to resolve session token", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "resolve token", err)
	}

	if user.Username != claims.Subject {
		log.Warn("session token subject mismatch",
			slog.String("subject", claims.Subject),
			slog.String("username", user.Username))
		return nil, domain.NewUnauthorizedError(msgUnauthorized, auth.ErrInvalidToken)
	}

	return user, nil
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", domain.NewValidationError("password", "is too long")
	}
	if err != nil {
		return "", NewServiceError("user", "hash password", err)
	}
	return hash, nil
}
