package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/store"
)

// ServiceError wraps an unexpected failure with the operation that hit it.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation string, err error) *ServiceError {
	return &ServiceError{Service: service, Operation: operation, Err: err}
}

// errUnauthenticated is returned when an operation that needs a caller gets none.
func errUnauthenticated() error {
	return domain.NewUnauthorizedError("Unauthorized", nil)
}

// translateStoreError maps store sentinels onto the domain taxonomy.
// Errors it does not recognize are wrapped in a ServiceError.
func translateStoreError(service, operation, resource string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUsernameExists):
		return domain.NewValidationError("username", "already exists")
	case errors.Is(err, store.ErrCategoryExists):
		return domain.NewValidationError("category", "already exists")
	case errors.Is(err, store.ErrUnknownCategory):
		return domain.NewValidationError("category_id", "does not exist")
	case errors.Is(err, store.ErrNotFound):
		return domain.NewNotFoundError(resource)
	default:
		return NewServiceError(service, operation, err)
	}
}
