package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/imagevault/image-service/internal/models"
	"github.com/imagevault/image-service/internal/services"
)

func TestNewUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "alice"}
	imageID := uuid.New()
	payload := "data:image/jpeg;base64,aGVsbG8="

	tests := []struct {
		name        string
		body        string
		user        *models.UserDB
		setup       func(svc *MockImageUploader)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "successful upload",
			body: `{"image":"` + payload + `","title":"sunset"}`,
			user: user,
			setup: func(svc *MockImageUploader) {
				svc.EXPECT().
					Upload(gomock.Any(), user, payload, "sunset").
					Return(&models.ImageDB{ImageID: imageID, Title: "sunset"}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Image successfully uploaded",
		},
		{
			name:        "no identity in context",
			body:        `{"image":"` + payload + `"}`,
			setup:       func(svc *MockImageUploader) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
		{
			name:        "invalid body",
			body:        `{not json`,
			user:        user,
			setup:       func(svc *MockImageUploader) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name:        "missing image",
			body:        `{"title":"sunset"}`,
			user:        user,
			setup:       func(svc *MockImageUploader) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "image not found",
		},
		{
			name: "unsupported payload",
			body: `{"image":"data:image/png;base64,aGVsbG8=","title":"sunset"}`,
			user: user,
			setup: func(svc *MockImageUploader) {
				svc.EXPECT().
					Upload(gomock.Any(), user, "data:image/png;base64,aGVsbG8=", "sunset").
					Return(nil, services.ErrUnsupportedPayload)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid base64 image",
		},
		{
			name: "remote store failure",
			body: `{"image":"` + payload + `","title":"sunset"}`,
			user: user,
			setup: func(svc *MockImageUploader) {
				svc.EXPECT().
					Upload(gomock.Any(), user, payload, "sunset").
					Return(nil, services.ErrRemoteStore)
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Server error during upload",
		},
		{
			name: "metadata write failure",
			body: `{"image":"` + payload + `","title":"sunset"}`,
			user: user,
			setup: func(svc *MockImageUploader) {
				svc.EXPECT().
					Upload(gomock.Any(), user, payload, "sunset").
					Return(nil, errors.New("insert failed"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Server error during upload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockImageUploader(ctrl)
			tt.setup(mockSvc)

			handler := NewUploadHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString(tt.body))
			if tt.user != nil {
				req = withUser(req, tt.user)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp["message"])

			if tt.wantStatus == http.StatusOK {
				image, ok := resp["image"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, imageID.String(), image["image_id"])
				assert.Equal(t, "sunset", image["title"])
			}
		})
	}
}
