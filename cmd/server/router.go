package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskbook-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskbook-api/internal/api/middleware"
)

// setupRouter builds the chi router with middleware and all routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	if app.metrics != nil {
		r.Use(app.metrics.Middleware)
	}

	userHandler := api.NewUserHandler(app.userService, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.userService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/current", userHandler.Current)
			r.Patch("/users/current", userHandler.Update)
			r.Delete("/users/logout", userHandler.Logout)

			r.Post("/categories", categoryHandler.Create)
			r.Get("/categories", categoryHandler.List)

			r.Post("/tasks", taskHandler.Create)
			r.Get("/tasks", taskHandler.Search)
			r.Get("/tasks/{"+api.TaskIDParam+"}", taskHandler.Get)
			r.Put("/tasks/{"+api.TaskIDParam+"}", taskHandler.Update)
			r.Delete("/tasks/{"+api.TaskIDParam+"}", taskHandler.Remove)
		})
	})

	r.Get("/health", app.health)
	if app.metrics != nil {
		r.Handle("/metrics", app.metrics.Handler())
	}

	return r
}

func (app *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := app.db.ping(ctx); err != nil {
		app.logger.Error("health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		app.logger.Error("failed to write health check response", "error", err)
	}
}
