package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskbook-api/internal/api/shared"
	"github.com/phrazzld/taskbook-api/internal/service"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	categories service.CategoryService
	logger     *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories service.CategoryService, log *slog.Logger) *CategoryHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CategoryHandler")
	}
	return &CategoryHandler{
		categories: categories,
		logger:     log.With(slog.String("component", "category_handler")),
	}
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var input service.CreateCategoryInput
	if err := shared.DecodeJSON(w, r, &input); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	category, err := h.categories.Create(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, categoryToResponse(category))
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	categories, err := h.categories.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, categoriesToResponse(categories))
}
