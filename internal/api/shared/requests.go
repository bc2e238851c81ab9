package shared

import (
	"encoding/json"
	"net/http"

	"github.com/phrazzld/taskbook-api/internal/domain"
)

// MaxBodyBytes caps request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into v. Any decoding failure is
// reported as a validation error with the message "invalid request format".
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return domain.NewValidationError("", "invalid request format")
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("", "invalid request format")
	}
	return nil
}
