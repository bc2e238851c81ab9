package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskbook-api/internal/api/shared"
	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/validation"
)

// requireUser returns the authenticated user or writes a 401.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("authenticated user missing from request context")
		HandleAPIError(w, r, domain.NewUnauthorizedError("Unauthorized", nil))
		return nil, false
	}
	return user, true
}

// pathID parses a numeric path parameter. Range checks happen in services.
func pathID(r *http.Request, param string) (int64, error) {
	return validation.ParseID(param, chi.URLParam(r, param))
}

// requireUserAndPathID combines requireUser and pathID, writing the error
// response if either fails.
func requireUserAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	param string,
	log *slog.Logger,
) (*domain.User, int64, bool) {
	user, ok := requireUser(w, r)
	if !ok {
		return nil, 0, false
	}

	id, err := pathID(r, param)
	if err != nil {
		log.Debug("invalid path parameter",
			slog.String("param_name", param),
			slog.String("value", chi.URLParam(r, param)))
		HandleAPIError(w, r, err)
		return nil, 0, false
	}
	return user, id, true
}
