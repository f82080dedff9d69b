package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"devhub-server/internal/config"
)

// AuthHandler verifies the shared admin password for gallery management.
type AuthHandler struct {
	cfg *config.Config
	log zerolog.Logger
}

func NewAuthHandler(cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg: cfg,
		log: log.With().Str("component", "auth-handler").Logger(),
	}
}

type verifyRequest struct {
	Password string `json:"password"`
}

// Verify checks the submitted password against the configured secret.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	if !passwordMatches(h.cfg.AdminPassword, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// passwordMatches compares in constant time. An unset secret never matches.
func passwordMatches(secret, given string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(given)) == 1
}
