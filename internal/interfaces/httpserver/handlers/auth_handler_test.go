package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"devhub-server/internal/config"
)

func newAuthRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.POST("/api/auth/verify", NewAuthHandler(cfg, nopLogger()).Verify)
	return router
}

func postJSON(router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestVerifyPassword(t *testing.T) {
	router := newAuthRouter(testConfig())

	tests := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "correct password", payload: `{"password":"letmein"}`, wantStatus: http.StatusOK},
		{name: "wrong password", payload: `{"password":"guess"}`, wantStatus: http.StatusUnauthorized},
		{name: "empty password", payload: `{"password":""}`, wantStatus: http.StatusUnauthorized},
		{name: "malformed body", payload: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/auth/verify", tt.payload)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestVerifyUnsetSecretNeverMatches(t *testing.T) {
	cfg := testConfig()
	cfg.AdminPassword = ""
	router := newAuthRouter(cfg)

	w := postJSON(router, "/api/auth/verify", `{"password":""}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 when no secret is configured", w.Code)
	}
}
