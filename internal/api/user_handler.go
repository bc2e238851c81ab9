package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskbook-api/internal/api/shared"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/service"
)

// UserHandler serves registration, login and the current-user endpoints.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService, log *slog.Logger) *UserHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}
	return &UserHandler{users: users, logger: log.With(slog.String("component", "user_handler"))}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterUserInput
	if err := shared.DecodeJSON(w, r, &input); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.users.Register(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("user registered",
		slog.String("username", user.Username))
	shared.RespondWithData(w, r, userToResponse(user))
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginUserInput
	if err := shared.DecodeJSON(w, r, &input); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	token, err := h.users.Login(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, TokenResponse{Token: token})
}

// Current handles GET /api/users/current.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	current, err := h.users.Current(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, userToResponse(current))
}

// Update handles PATCH /api/users/current.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var input service.UpdateUserInput
	if err := shared.DecodeJSON(w, r, &input); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	updated, err := h.users.Update(r.Context(), user, input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, userToResponse(updated))
}

// Logout handles DELETE /api/users/logout.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.users.Logout(r.Context(), user); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("user logged out",
		slog.String("username", user.Username))
	shared.RespondNoContent(w)
}
