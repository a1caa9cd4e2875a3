package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/imagevault/image-service/internal/logger"
	"github.com/imagevault/image-service/internal/middlewares"
	"github.com/imagevault/image-service/internal/models"
	"github.com/imagevault/image-service/internal/services"
)

// ImageRenamer defines the interface that the rename service must implement.
type ImageRenamer interface {
	Rename(ctx context.Context, imageID uuid.UUID, newTitle string) (*models.ImageDB, error)
}

// RenameRequest represents the JSON body for updating an image title
// swagger:model RenameRequest
type RenameRequest struct {
	// New title
	// required: true
	// example: Better title
	NewTitle string `json:"newTitle"`
}

// RenameResponse represents a successful title update response
// swagger:model RenameResponse
type RenameResponse struct {
	// Success message
	// example: Image Title updated
	Message string `json:"message"`

	// Username of the acting identity
	// example: john_doe
	UpdatedBy string `json:"updatedBy"`

	// Updated image record
	UpdatedImage *models.ImageDB `json:"updatedImage"`
}

// RenameErrorResponse represents an error response for the title update
// swagger:model RenameErrorResponse
type RenameErrorResponse struct {
	// Error message
	// example: Image not found
	Message string `json:"message"`
}

// NewRenameHandler returns an HTTP handler for updating an image title.
// @Summary Update image title
// @Description Updates the title of an image by id. Any authenticated identity may rename any image.
// @Tags images
// @Accept json
// @Produce json
// @Param id path string true "Image id"
// @Param request body handlers.RenameRequest true "Rename Request"
// @Success 200 {object} handlers.RenameResponse "Image title updated"
// @Failure 400 {object} handlers.RenameErrorResponse "Invalid image id or request body"
// @Failure 401 {object} handlers.RenameErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.RenameErrorResponse "Image not found"
// @Failure 500 {object} handlers.RenameErrorResponse "Internal server error"
// @Router /image/{id} [put]
// @Security BearerAuth
func NewRenameHandler(svc ImageRenamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RenameErrorResponse{Message: "Unauthorized"})
			return
		}

		imageID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RenameErrorResponse{Message: "Invalid image id"})
			return
		}

		var req RenameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RenameErrorResponse{Message: "Invalid request body"})
			return
		}

		image, err := svc.Rename(ctx, imageID, req.NewTitle)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrImageNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RenameErrorResponse{Message: "Image not found"})
			default:
				logger.Log.Errorw("rename failed", "image_id", imageID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RenameErrorResponse{Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RenameResponse{
			Message:      "Image Title updated",
			UpdatedBy:    user.Username,
			UpdatedImage: image,
		})
	}
}
