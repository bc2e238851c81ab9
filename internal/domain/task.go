package domain

import "time"

// TaskStatus represents the progress state of a task
type TaskStatus string

// Possible task status values
const (
	TaskStatusNotStarted TaskStatus = "NOT_STARTED"
	TaskStatusOnProgress TaskStatus = "ON_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// TaskStatuses lists every valid status in display order.
var TaskStatuses = []TaskStatus{
	TaskStatusNotStarted,
	TaskStatusOnProgress,
	TaskStatusCompleted,
}

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Task is a unit of work owned by exactly one user.
// Username is the owner; it is used for scoping and never returned to clients.
type Task struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Status      TaskStatus `db:"status"`
	Deadline    *time.Time `db:"deadline"`
	Priority    *int       `db:"priority"`
	CategoryID  int64      `db:"category_id"`
	Username    string     `db:"username"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// IsOwnedBy reports whether username owns the task.
func (t *Task) IsOwnedBy(username string) bool {
	return t.Username != "" && t.Username == username
}
