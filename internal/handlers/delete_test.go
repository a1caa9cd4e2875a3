package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/imagevault/image-service/internal/models"
	"github.com/imagevault/image-service/internal/services"
)

func TestNewDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "alice"}
	imageID := uuid.New()

	tests := []struct {
		name        string
		imageID     string
		user        *models.UserDB
		setup       func(svc *MockImageDeleter)
		wantStatus  int
		wantMessage string
	}{
		{
			name:    "successful delete",
			imageID: imageID.String(),
			user:    user,
			setup: func(svc *MockImageDeleter) {
				svc.EXPECT().
					Delete(gomock.Any(), imageID).
					Return(&models.ImageDB{ImageID: imageID, Title: "sunset"}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Image deleted successfully",
		},
		{
			name:        "no identity in context",
			imageID:     imageID.String(),
			setup:       func(svc *MockImageDeleter) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
		{
			name:        "invalid image id",
			imageID:     "not-a-uuid",
			user:        user,
			setup:       func(svc *MockImageDeleter) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid image id",
		},
		{
			name:    "image not found",
			imageID: imageID.String(),
			user:    user,
			setup: func(svc *MockImageDeleter) {
				svc.EXPECT().
					Delete(gomock.Any(), imageID).
					Return(nil, services.ErrImageNotFound)
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Image not found",
		},
		{
			name:    "internal error",
			imageID: imageID.String(),
			user:    user,
			setup: func(svc *MockImageDeleter) {
				svc.EXPECT().
					Delete(gomock.Any(), imageID).
					Return(nil, errors.New("db down"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Server error during deletion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockImageDeleter(ctrl)
			tt.setup(mockSvc)

			router := chi.NewRouter()
			router.Delete("/image/{id}", NewDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/image/"+tt.imageID, nil)
			if tt.user != nil {
				req = withUser(req, tt.user)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp["message"])

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "alice", resp["deletedBy"])
				assert.Equal(t, imageID.String(), resp["imageId"])
				assert.Equal(t, "sunset", resp["imageTitle"])
			}
		})
	}
}
