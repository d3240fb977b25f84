package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
)

func TestGetUserID(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name     string
		setup    func(c echo.Context)
		expected string
	}{
		{
			name: "returns user id when present",
			setup: func(c echo.Context) {
				ctx := context.WithValue(c.Request().Context(), UserIDKey, "user_2abc123")
				c.SetRequest(c.Request().WithContext(ctx))
			},
			expected: "user_2abc123",
		},
		{
			name:     "returns empty string when not present",
			setup:    func(c echo.Context) {},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			tt.setup(c)

			result := GetUserID(c)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestExtractToken(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		target     string
		expected   string
		expectCode string
	}{
		{
			name: "bearer header",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer token-123")
			},
			target:   "/",
			expected: "token-123",
		},
		{
			name: "lowercase bearer accepted",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "bearer token-456")
			},
			target:   "/",
			expected: "token-456",
		},
		{
			name: "malformed header",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "token-123")
			},
			target:     "/",
			expectCode: "INVALID_AUTH_HEADER",
		},
		{
			name:     "query parameter fallback",
			setup:    func(req *http.Request) {},
			target:   "/?token=ws-token",
			expected: "ws-token",
		},
		{
			name:       "missing token",
			setup:      func(req *http.Request) {},
			target:     "/",
			expectCode: "MISSING_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			token, err := extractToken(c)
			if tt.expectCode != "" {
				if err == nil {
					t.Fatal("Expected an error")
				}
				if domain.CodeOf(err) != tt.expectCode {
					t.Errorf("Expected code %q, got %q", tt.expectCode, domain.CodeOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if token != tt.expected {
				t.Errorf("Expected token %q, got %q", tt.expected, token)
			}
		})
	}
}
