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

// ImageUploader defines the interface that the upload service must implement.
type ImageUploader interface {
	Upload(ctx context.Context, user *models.UserDB, payload, title string) (*models.ImageDB, error)
}

// UploadRequest represents the JSON body for uploading an image
// swagger:model UploadRequest
type UploadRequest struct {
	// Base64-encoded JPEG with the data:image/jpeg;base64, prefix
	// required: true
	Image string `json:"image"`

	// Title
	// example: Sunset over the bay
	Title string `json:"title"`
}

// UploadResponse represents a successful upload response
// swagger:model UploadResponse
type UploadResponse struct {
	// Success message
	// example: Image successfully uploaded
	Message string `json:"message"`

	// Created image record
	Image *models.ImageDB `json:"image"`
}

// UploadErrorResponse represents an error response for upload
// swagger:model UploadErrorResponse
type UploadErrorResponse struct {
	// Error message
	// example: Invalid base64 image
	Message string `json:"message"`
}

// NewUploadHandler returns an HTTP handler for uploading an image.
// @Summary Upload a new image
// @Description Sends the base64 JPEG payload to the remote object store, then records metadata owned by the authenticated user. A failed remote upload leaves no metadata behind.
// @Tags images
// @Accept json
// @Produce json
// @Param request body handlers.UploadRequest true "Upload Request"
// @Success 200 {object} handlers.UploadResponse "Image successfully uploaded"
// @Failure 400 {object} handlers.UploadErrorResponse "Missing or invalid image payload"
// @Failure 401 {object} handlers.UploadErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.UploadErrorResponse "Remote store or internal error"
// @Router /upload [post]
// @Security BearerAuth
func NewUploadHandler(svc ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		user := middlewares.GetUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Unauthorized"})
			return
		}

		var req UploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Invalid request body"})
			return
		}

		if req.Image == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "image not found"})
			return
		}

		image, err := svc.Upload(ctx, user, req.Image, req.Title)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnsupportedPayload):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Invalid base64 image"})
			default:
				logger.Log.Errorw("upload failed", "user_id", user.UserID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Server error during upload"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UploadResponse{
			Message: "Image successfully uploaded",
			Image:   image,
		})
	}
}
