package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imagevault/image-service/internal/logger"
	"github.com/imagevault/image-service/internal/middlewares"
	"github.com/imagevault/image-service/internal/models"
	"github.com/imagevault/image-service/internal/services"
)

// AllImagesLister defines the interface that the listing service must implement.
type AllImagesLister interface {
	ListAll(ctx context.Context) ([]models.ImageWithOwner, error)
}

// AllImagesResponse represents a successful listing of every image
// swagger:model AllImagesResponse
type AllImagesResponse struct {
	// Success message
	// example: Images retrieved successfully
	Message string `json:"message"`

	// Username of the requesting identity
	// example: john_doe
	RequestedBy string `json:"requestedBy"`

	// All image records with owner identity
	Images []models.ImageWithOwner `json:"images"`
}

// AllImagesErrorResponse represents an error response for the listing
// swagger:model AllImagesErrorResponse
type AllImagesErrorResponse struct {
	// Error message
	// example: No images found
	Message string `json:"message"`
}

// NewAllImagesHandler returns an HTTP handler listing every image.
// @Summary Get all images
// @Description Returns every image with its owner's public identity. Visibility is not ownership-scoped; an empty store is reported as not found.
// @Tags images
// @Produce json
// @Success 200 {object} handlers.AllImagesResponse "All images"
// @Failure 401 {object} handlers.AllImagesErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AllImagesErrorResponse "No images found"
// @Failure 500 {object} handlers.AllImagesErrorResponse "Internal server error"
// @Router /allImages [get]
// @Security BearerAuth
func NewAllImagesHandler(svc AllImagesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AllImagesErrorResponse{Message: "Unauthorized"})
			return
		}

		images, err := svc.ListAll(ctx)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoImages):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AllImagesErrorResponse{Message: "No images found"})
			default:
				logger.Log.Errorw("failed to list images", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AllImagesErrorResponse{Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AllImagesResponse{
			Message:     "Images retrieved successfully",
			RequestedBy: user.Username,
			Images:      images,
		})
	}
}
