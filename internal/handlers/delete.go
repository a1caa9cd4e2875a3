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

// ImageDeleter defines the interface that the deletion service must implement.
type ImageDeleter interface {
	Delete(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error)
}

// DeleteResponse represents a successful deletion summary
// swagger:model DeleteResponse
type DeleteResponse struct {
	// Success message
	// example: Image deleted successfully
	Message string `json:"message"`

	// Username of the acting identity
	// example: john_doe
	DeletedBy string `json:"deletedBy"`

	// Id of the deleted image
	ImageID uuid.UUID `json:"imageId"`

	// Title of the deleted image
	// example: Sunset over the bay
	ImageTitle string `json:"imageTitle"`
}

// DeleteErrorResponse represents an error response for deletion
// swagger:model DeleteErrorResponse
type DeleteErrorResponse struct {
	// Error message
	// example: Image not found
	Message string `json:"message"`
}

// NewDeleteHandler returns an HTTP handler for deleting an image.
// @Summary Delete an image
// @Description Attempts remote object removal, then deletes the metadata record. A failed remote removal is logged and does not abort the metadata deletion. Any authenticated identity may delete any image.
// @Tags images
// @Produce json
// @Param id path string true "Image id"
// @Success 200 {object} handlers.DeleteResponse "Image deleted successfully"
// @Failure 400 {object} handlers.DeleteErrorResponse "Invalid image id"
// @Failure 401 {object} handlers.DeleteErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DeleteErrorResponse "Image not found"
// @Failure 500 {object} handlers.DeleteErrorResponse "Internal server error"
// @Router /image/{id} [delete]
// @Security BearerAuth
func NewDeleteHandler(svc ImageDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeleteErrorResponse{Message: "Unauthorized"})
			return
		}

		imageID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteErrorResponse{Message: "Invalid image id"})
			return
		}

		image, err := svc.Delete(ctx, imageID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrImageNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteErrorResponse{Message: "Image not found"})
			default:
				logger.Log.Errorw("delete failed", "image_id", imageID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteErrorResponse{Message: "Server error during deletion"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteResponse{
			Message:    "Image deleted successfully",
			DeletedBy:  user.Username,
			ImageID:    image.ImageID,
			ImageTitle: image.Title,
		})
	}
}
