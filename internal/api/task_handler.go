package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskbook-api/internal/api/shared"
	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/service"
	"github.com/phrazzld/taskbook-api/internal/validation"
)

// TaskIDParam is the chi URL parameter naming a task.
const TaskIDParam = "taskId"

// TaskHandler serves the task endpoints. Every operation is scoped to the
// authenticated user.
type TaskHandler struct {
	tasks  service.TaskService
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}
	return &TaskHandler{tasks: tasks, logger: log.With(slog.String("component", "task_handler"))}
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var input service.CreateTaskInput
	if err := shared.DecodeJSON(w, r, &input); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.tasks.Create(r.Context(), user, input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, taskToResponse(task))
}

// Get handles GET /api/tasks/{taskId}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	user, id, ok := requireUserAndPathID(w, r, TaskIDParam, log)
	if !ok {
		return
	}

	task, err := h.tasks.Get(r.Context(), user, id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, taskToResponse(task))
}

// Update handles PUT /api/tasks/{taskId}. The id in the path wins over any
// id in the body.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	user, id, ok := requireUserAndPathID(w, r, TaskIDParam, log)
	if !ok {
		return
	}

	var input service.UpdateTaskInput
	if err := shared.DecodeJSON(w, r, &input); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	input.ID = id

	task, err := h.tasks.Update(r.Context(), user, input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, taskToResponse(task))
}

// Remove handles DELETE /api/tasks/{taskId}.
func (h *TaskHandler) Remove(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	user, id, ok := requireUserAndPathID(w, r, TaskIDParam, log)
	if !ok {
		return
	}

	if err := h.tasks.Remove(r.Context(), user, id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}

// Search handles GET /api/tasks?title=&page=&size=.
func (h *TaskHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	query, err := parseSearchQuery(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	page, err := h.tasks.Search(r.Context(), user, query)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskPageToResponse(page))
}

// parseSearchQuery reads the raw query string. Defaults and range checks
// are applied by the service.
func parseSearchQuery(r *http.Request) (service.SearchTaskQuery, error) {
	values := r.URL.Query()
	var query service.SearchTaskQuery
	problems := &domain.ValidationError{}

	pageNum, err := validation.ParseOptionalInt("page", values.Get("page"))
	if err != nil {
		problems.Add("page", "must be a number")
	}
	size, err := validation.ParseOptionalInt("size", values.Get("size"))
	if err != nil {
		problems.Add("size", "must be a number")
	}
	if len(problems.Fields) > 0 {
		return query, problems
	}

	query.Page = pageNum
	query.Size = size
	if values.Has("title") {
		title := values.Get("title")
		query.Title = &title
	}
	return query, nil
}
