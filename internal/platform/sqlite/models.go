package sqlite

import (
	"time"

	"github.com/phrazzld/taskbook-api/internal/domain"
)

type userRecord struct {
	Username string  `gorm:"primaryKey;size:100"`
	Password string  `gorm:"size:100;not null"`
	Name     string  `gorm:"size:100;not null"`
	Token    *string `gorm:"size:512;index"`

	Tasks []taskRecord `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
}

func (userRecord) TableName() string { return "users" }

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{Username: r.Username, Password: r.Password, Name: r.Name, Token: r.Token}
}

func userFromDomain(u *domain.User) *userRecord {
	return &userRecord{Username: u.Username, Password: u.Password, Name: u.Name, Token: u.Token}
}

type categoryRecord struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Category string `gorm:"size:100;not null;uniqueIndex"`
}

func (categoryRecord) TableName() string { return "categories" }

type taskRecord struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"size:100;not null"`
	Description string     `gorm:"size:255;not null"`
	Status      string     `gorm:"size:20;not null;default:NOT_STARTED"`
	Deadline    *time.Time
	Priority    *int
	CategoryID  int64  `gorm:"not null"`
	Username    string `gorm:"size:100;not null;index:idx_tasks_username_id,priority:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *categoryRecord `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

func (taskRecord) TableName() string { return "tasks" }

func (r *taskRecord) toDomain() *domain.Task {
	return &domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.TaskStatus(r.Status),
		Deadline:    r.Deadline,
		Priority:    r.Priority,
		CategoryID:  r.CategoryID,
		Username:    r.Username,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func taskFromDomain(t *domain.Task) *taskRecord {
	return &taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Deadline:    t.Deadline,
		Priority:    t.Priority,
		CategoryID:  t.CategoryID,
		Username:    t.Username,
	}
}

// records lists the tables in dependency order.
var records = []any{&userRecord{}, &categoryRecord{}, &taskRecord{}}
