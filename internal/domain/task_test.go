package domain_test

import (
	"testing"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_IsValid(t *testing.T) {
	tests := []struct {
		status domain.TaskStatus
		want   bool
	}{
		{domain.TaskStatusNotStarted, true},
		{domain.TaskStatusOnProgress, true},
		{domain.TaskStatusCompleted, true},
		{"", false},
		{"INVALID", false},
		{"not_started", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestTask_IsOwnedBy(t *testing.T) {
	task := &domain.Task{ID: 1, Username: "alice"}

	assert.True(t, task.IsOwnedBy("alice"))
	assert.False(t, task.IsOwnedBy("bob"))
	assert.False(t, task.IsOwnedBy(""))
	assert.False(t, (&domain.Task{}).IsOwnedBy(""))
}

func TestUser_HasSession(t *testing.T) {
	token := "abc"
	empty := ""

	assert.True(t, (&domain.User{Token: &token}).HasSession())
	assert.False(t, (&domain.User{Token: &empty}).HasSession())
	assert.False(t, (&domain.User{}).HasSession())
}
