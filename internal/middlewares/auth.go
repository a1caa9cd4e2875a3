package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imagevault/image-service/internal/jwt"
	"github.com/imagevault/image-service/internal/logger"
	"github.com/imagevault/image-service/internal/models"
)

// IdentityResolver resolves a request's bearer token to a live user record.
type IdentityResolver interface {
	Resolve(ctx context.Context, r *http.Request) (*models.UserDB, error)
}

// userContextKey is an unexported type for the identity context key.
type userContextKey struct{}

var userKey = userContextKey{}

// SetUserToContext stores the resolved user in the context. Exposed for
// handler tests and any composition that bypasses the middleware.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the resolved user from the context.
// Returns nil if the auth middleware did not run.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// authErrorMessage maps a resolution failure to the response body message.
func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrMissingToken):
		return "No token provided, authorization denied"
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	default:
		return "Token is not valid"
	}
}

// AuthMiddleware composes the identity resolver in front of the wrapped
// handler: it admits the request with the resolved user attached to the
// context, or rejects with 401.
func AuthMiddleware(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := resolver.Resolve(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"message": authErrorMessage(err),
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}
