package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mustafagenc/planly/model"
)

type stubParser struct{}

func (stubParser) ParseAccessToken(tokenString string) (*model.AccessClaims, error) {
	if tokenString != "good" {
		return nil, errors.New("bad token")
	}
	return &model.AccessClaims{UserID: "user-1", Role: model.RoleAdmin}, nil
}

func TestAccessTokenMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", AccessTokenMiddleware(stubParser{}), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userId")+"/"+c.GetString("role"))
	})

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, ""},
		{"empty token", "Bearer ", http.StatusUnauthorized, ""},
		{"invalid token", "Bearer bad", http.StatusForbidden, ""},
		{"valid token", "Bearer good", http.StatusOK, "user-1/ADMIN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Fatalf("expected body %q, got %q", tt.body, w.Body.String())
			}
		})
	}
}
