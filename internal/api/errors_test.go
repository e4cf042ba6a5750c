package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		status         int
		code           string
		message        string
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:           "BadRequest",
			status:         http.StatusBadRequest,
			code:           ErrCodeInvalidRequest,
			message:        "invalid request",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrCodeInvalidRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:           "Unauthorized",
			status:         http.StatusUnauthorized,
			code:           ErrCodeInvalidCredentials,
			message:        "invalid email or password",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   ErrCodeInvalidCredentials,
			expectedMsg:    "invalid email or password",
		},
		{
			name:           "InternalError",
			status:         http.StatusInternalServerError,
			code:           ErrCodeInternalError,
			message:        "internal server error",
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrCodeInternalError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponse(c, tt.status, tt.code, tt.message)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var payload APIError
			if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if payload.Code != tt.expectedCode {
				t.Fatalf("expected code %s, got %s", tt.expectedCode, payload.Code)
			}
			if payload.Message != tt.expectedMsg {
				t.Fatalf("expected message %q, got %q", tt.expectedMsg, payload.Message)
			}
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		invoke         func(c *gin.Context)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Unauthorized",
			invoke:         func(c *gin.Context) { Unauthorized(c, "authentication required") },
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   ErrCodeUnauthorized,
		},
		{
			name:           "Forbidden",
			invoke:         func(c *gin.Context) { Forbidden(c, "admin privileges required") },
			expectedStatus: http.StatusForbidden,
			expectedCode:   ErrCodeForbidden,
		},
		{
			name:           "InternalError",
			invoke:         func(c *gin.Context) { InternalError(c, "boom") },
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrCodeInternalError,
		},
		{
			name:           "InvalidPayload",
			invoke:         InvalidPayload,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.invoke(c)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			var payload APIError
			if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if payload.Code != tt.expectedCode {
				t.Fatalf("expected code %s, got %s", tt.expectedCode, payload.Code)
			}
		})
	}
}
