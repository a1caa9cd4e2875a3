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

func TestNewLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name        string
		body        string
		setup       func(svc *MockLoginer)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "successful login",
			body: `{"email":"alice@example.com","password":"secret"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret").
					Return("token123", &models.UserPublic{
						UserID:   userID,
						Username: "alice",
						Email:    "alice@example.com",
					}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Login successful",
		},
		{
			name:        "invalid body",
			body:        `{not json`,
			setup:       func(svc *MockLoginer) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name: "invalid credentials",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "alice@example.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid email or password",
		},
		{
			name: "internal error",
			body: `{"email":"alice@example.com","password":"secret"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret").
					Return("", nil, errors.New("db down"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Server error during login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.setup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp["message"])

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "token123", resp["token"])
				user, ok := resp["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, userID.String(), user["id"])
			}
		})
	}
}
