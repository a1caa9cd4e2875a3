package handlers

import (
	"net/http"

	"github.com/imagevault/image-service/internal/middlewares"
	"github.com/imagevault/image-service/internal/models"
)

// withUser attaches a resolved identity to the request, standing in for the
// auth middleware.
func withUser(r *http.Request, user *models.UserDB) *http.Request {
	return r.WithContext(middlewares.SetUserToContext(r.Context(), user))
}
