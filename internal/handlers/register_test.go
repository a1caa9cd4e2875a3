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

func TestNewRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name        string
		body        string
		setup       func(svc *MockRegisterer)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "successful registration",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret").
					Return("token123", &models.UserPublic{
						UserID:   userID,
						Username: "alice",
						Email:    "alice@example.com",
					}, nil)
			},
			wantStatus:  http.StatusCreated,
			wantMessage: "User registered successfully",
		},
		{
			name:        "invalid body",
			body:        `{not json`,
			setup:       func(svc *MockRegisterer) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name:        "missing fields",
			body:        `{"username":"alice","email":"","password":"secret"}`,
			setup:       func(svc *MockRegisterer) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username, email and password are required",
		},
		{
			name: "duplicate user",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret").
					Return("", nil, services.ErrUserAlreadyExists)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "User with this email or username already exists",
		},
		{
			name: "internal error",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret").
					Return("", nil, errors.New("db down"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Server error during registration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.setup(mockSvc)

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp["message"])

			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "token123", resp["token"])
				user, ok := resp["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, userID.String(), user["id"])
				assert.Equal(t, "alice", user["username"])
				assert.Equal(t, "alice@example.com", user["email"])
			}
		})
	}
}
