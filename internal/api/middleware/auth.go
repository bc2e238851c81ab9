package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/taskbook-api/internal/api/shared"
	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
)

// TokenResolver resolves a session token to its user.
type TokenResolver interface {
	ResolveByToken(ctx context.Context, token string) (*domain.User, error)
}

// AuthMiddleware authorizes requests by session token.
type AuthMiddleware struct {
	resolver TokenResolver
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(resolver TokenResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate reads the token from the Authorization header, either as
// "Bearer <token>" or bare, and puts the resolved user in the request
// context. Unresolvable tokens get 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractToken(r.Header.Get("Authorization"))
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := m.resolver.ResolveByToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Unauthorized", err)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal server error", err)
			return
		}

		ctx := shared.WithUser(r.Context(), user)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With(slog.String("username", user.Username)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExtractToken strips an optional case-insensitive "Bearer " prefix.
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	if strings.EqualFold(header, "bearer") {
		return ""
	}
	return header
}
