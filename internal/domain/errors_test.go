package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		err := domain.NewValidationError("title", "is required")

		assert.Equal(t, "title is required", err.Error())
		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("multiple fields keep order", func(t *testing.T) {
		err := domain.NewValidationError("title", "is required").
			Add("description", "must be at most 255 characters long")

		assert.Equal(t, "title is required; description must be at most 255 characters long", err.Error())
		require.Len(t, err.Fields, 2)
		assert.Equal(t, "description", err.Fields[1].Field)
	})

	t.Run("empty field list", func(t *testing.T) {
		err := &domain.ValidationError{}
		assert.Equal(t, "validation failed", err.Error())
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("create task: %w", domain.NewValidationError("category_id", "is required"))

		var vErr *domain.ValidationError
		require.True(t, errors.As(wrapped, &vErr))
		assert.Equal(t, "category_id", vErr.Fields[0].Field)
	})
}

func TestUnauthorizedError(t *testing.T) {
	cause := errors.New("signature is invalid")
	err := domain.NewUnauthorizedError("Unauthorized", cause)

	assert.Equal(t, "Unauthorized", err.Error())
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.True(t, errors.Is(err, cause))

	bare := &domain.UnauthorizedError{}
	assert.Equal(t, "unauthorized", bare.Error())
	assert.True(t, errors.Is(bare, domain.ErrUnauthorized))
}

func TestNotFoundError(t *testing.T) {
	err := domain.NewNotFoundError("task")

	assert.Equal(t, "task not found", err.Error())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "not found", (&domain.NotFoundError{}).Error())
}
