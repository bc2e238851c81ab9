package main

import (
	"context"
	"fmt"
	"log/slog"

	apiMiddleware "github.com/phrazzld/taskbook-api/internal/api/middleware"
	"github.com/phrazzld/taskbook-api/internal/config"
	"github.com/phrazzld/taskbook-api/internal/service"
	"github.com/phrazzld/taskbook-api/internal/service/auth"
	"github.com/phrazzld/taskbook-api/internal/validation"
)

// application holds the shared dependencies of the server and owns their
// cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *datastore

	userService     service.UserService
	categoryService service.CategoryService
	taskService     service.TaskService

	metrics *apiMiddleware.Metrics
}

// newApplication wires stores, services and auth around an open datastore.
func newApplication(cfg *config.Config, logger *slog.Logger, db *datastore) (*application, error) {
	app := &application{config: cfg, logger: logger, db: db}

	tokens, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	hasher := auth.NewBcryptHasher(cfg.Auth.BCryptCost)
	v := validation.New()
	s := db.stores()

	app.userService, err = service.NewUserService(s.users, hasher, tokens, v, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.categoryService, err = service.NewCategoryService(s.categories, v, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	app.taskService, err = service.NewTaskService(s.tasks, v, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	if cfg.Metrics.Enabled {
		app.metrics = apiMiddleware.NewMetrics()
	}

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
