package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/taskbook-api/internal/api/shared"
	"github.com/phrazzld/taskbook-api/internal/domain"
)

// MapErrorToStatusCode maps the domain error taxonomy to HTTP status codes.
// Anything outside the taxonomy is a server fault.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. Taxonomy
// errors carry messages written for clients; everything else is replaced by
// a generic message.
func GetSafeErrorMessage(err error) string {
	var (
		vErr *domain.ValidationError
		uErr *domain.UnauthorizedError
		nErr *domain.NotFoundError
	)
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.As(err, &uErr):
		return uErr.Error()
	case errors.As(err, &nErr):
		return nErr.Error()
	case errors.Is(err, domain.ErrValidation):
		return domain.ErrValidation.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrNotFound.Error()
	default:
		return "Internal server error"
	}
}

// HandleAPIError writes the error envelope for err.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
