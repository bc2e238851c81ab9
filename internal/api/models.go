package api

import (
	"time"

	"github.com/phrazzld/taskbook-api/internal/api/shared"
	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/service"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse is returned by login.
type TokenResponse struct {
	Token string `json:"token"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
}

// TaskResponse is the public view of a task. The owner is never exposed.
type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline"`
	Priority    *int       `json:"priority"`
	CategoryID  int64      `json:"category_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name}
}

func categoryToResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Category: c.Category}
}

func categoriesToResponse(cs []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, categoryToResponse(c))
	}
	return out
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Deadline:    t.Deadline,
		Priority:    t.Priority,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func taskPageToResponse(p *service.TaskPage) shared.PagedResponse {
	tasks := make([]TaskResponse, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, taskToResponse(t))
	}
	return shared.PagedResponse{
		Data: tasks,
		Pagination: shared.PaginationResponse{
			Page:      p.Pagination.Page,
			TotalItem: p.Pagination.TotalItem,
			TotalPage: p.Pagination.TotalPage,
		},
	}
}
