package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/phrazzld/taskbook-api/internal/domain"
)

// Search defaults applied when the query omits them.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Date is a task deadline as clients send it: an RFC 3339 timestamp or a
// calendar date such as "2024-05-01", read as midnight UTC.
type Date struct {
	time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// UnmarshalJSON accepts RFC 3339 and date-only strings.
func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("deadline must be a string: %w", err)
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("deadline %q is neither a date nor an RFC 3339 timestamp", raw)
}

// TimePtr returns the wrapped time, or nil when d is nil.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// CreateTaskInput is the payload for creating a task.
type CreateTaskInput struct {
	Title       string            `json:"title"       validate:"required,min=1,max=100"`
	Description string            `json:"description" validate:"required,min=1,max=255"`
	Status      domain.TaskStatus `json:"status"      validate:"omitempty,oneof=NOT_STARTED ON_PROGRESS COMPLETED"`
	Deadline    *Date             `json:"deadline"`
	Priority    *int              `json:"priority"    validate:"omitempty,gt=0,lte=2147483647"`
	CategoryID  int64             `json:"category_id" validate:"required,gt=0"`
}

// ApplyDefaults sets an omitted status to NOT_STARTED.
func (in *CreateTaskInput) ApplyDefaults() {
	if in.Status == "" {
		in.Status = domain.TaskStatusNotStarted
	}
}

// UpdateTaskInput is a full replacement of a task's mutable fields.
// Omitted optional fields are cleared, and an omitted status resets to
// NOT_STARTED, so repeating the same update always yields the same row.
type UpdateTaskInput struct {
	ID          int64             `json:"id"          validate:"required,gt=0"`
	Title       string            `json:"title"       validate:"required,min=1,max=100"`
	Description string            `json:"description" validate:"required,min=1,max=255"`
	Status      domain.TaskStatus `json:"status"      validate:"omitempty,oneof=NOT_STARTED ON_PROGRESS COMPLETED"`
	Deadline    *Date             `json:"deadline"`
	Priority    *int              `json:"priority"    validate:"omitempty,gt=0,lte=2147483647"`
	CategoryID  int64             `json:"category_id" validate:"required,gt=0"`
}

// ApplyDefaults sets an omitted status to NOT_STARTED.
func (in *UpdateTaskInput) ApplyDefaults() {
	if in.Status == "" {
		in.Status = domain.TaskStatusNotStarted
	}
}

// SearchTaskQuery selects one page of the caller's tasks.
type SearchTaskQuery struct {
	Page  *int    `json:"page"  validate:"required,gte=1"`
	Size  *int    `json:"size"  validate:"required,gte=1,lte=100"`
	Title *string `json:"title" validate:"omitempty,max=100"`
}

// ApplyDefaults fills page and size and drops an empty title filter.
func (q *SearchTaskQuery) ApplyDefaults() {
	if q.Page == nil {
		page := DefaultPage
		q.Page = &page
	}
	if q.Size == nil {
		size := DefaultPageSize
		q.Size = &size
	}
	if q.Title != nil && *q.Title == "" {
		q.Title = nil
	}
}

// CreateCategoryInput is the payload for creating a category.
type CreateCategoryInput struct {
	Category string `json:"category" validate:"required,min=1,max=100"`
}

// RegisterUserInput is the payload for registering an account.
// bcrypt only reads the first 72 bytes of a password, so longer ones are refused.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name"     validate:"required,max=100"`
}

// LoginUserInput is the payload for starting a session.
type LoginUserInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

// UpdateUserInput is a partial update of the caller's profile.
type UpdateUserInput struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=1,max=72"`
}
