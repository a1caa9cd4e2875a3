package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/imagevault/image-service/internal/logger"
	"github.com/imagevault/image-service/internal/middlewares"
	"github.com/imagevault/image-service/internal/models"
)

// MyImagesLister defines the interface that the listing service must implement.
type MyImagesLister interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]models.ImageWithOwner, error)
}

// MyImagesResponse represents a successful listing of the requester's images
// swagger:model MyImagesResponse
type MyImagesResponse struct {
	// Success message
	// example: Your images retrieved successfully
	Message string `json:"message"`

	// Username of the requesting identity
	// example: john_doe
	RequestedBy string `json:"requestedBy"`

	// Number of images owned by the requester
	// example: 3
	TotalImages int `json:"totalImages"`

	// The requester's image records, newest first
	Images []models.ImageWithOwner `json:"images"`
}

// MyImagesErrorResponse represents an error response for the listing
// swagger:model MyImagesErrorResponse
type MyImagesErrorResponse struct {
	// Error message
	// example: Unauthorized
	Message string `json:"message"`
}

// NewMyImagesHandler returns an HTTP handler listing the requester's images.
// @Summary Get current user's images
// @Description Returns only the images uploaded by the authenticated user, newest first. An empty list is a valid success response.
// @Tags images
// @Produce json
// @Success 200 {object} handlers.MyImagesResponse "The requester's images (possibly empty)"
// @Failure 401 {object} handlers.MyImagesErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.MyImagesErrorResponse "Internal server error"
// @Router /myImages [get]
// @Security BearerAuth
func NewMyImagesHandler(svc MyImagesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MyImagesErrorResponse{Message: "Unauthorized"})
			return
		}

		images, err := svc.ListMine(ctx, user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list user images", "user_id", user.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MyImagesErrorResponse{Message: "Internal server error"})
			return
		}

		if images == nil {
			images = []models.ImageWithOwner{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MyImagesResponse{
			Message:     "Your images retrieved successfully",
			RequestedBy: user.Username,
			TotalImages: len(images),
			Images:      images,
		})
	}
}
