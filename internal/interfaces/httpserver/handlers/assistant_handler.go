package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"devhub-server/internal/config"
	"devhub-server/internal/domain/assistant"
)

// AssistantHandler exposes the generative features. Everything except the
// daily quote sits behind the beta flag, injected here at construction.
type AssistantHandler struct {
	service     *assistant.Service
	betaEnabled bool
	log         zerolog.Logger
}

func NewAssistantHandler(cfg *config.Config, service *assistant.Service, log zerolog.Logger) *AssistantHandler {
	return &AssistantHandler{
		service:     service,
		betaEnabled: cfg.BetaFeaturesEnabled,
		log:         log.With().Str("component", "assistant-handler").Logger(),
	}
}

func (h *AssistantHandler) betaGate(c *gin.Context) bool {
	if h.betaEnabled {
		return true
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "coming soon", "beta": true})
	return false
}

// Quote returns a short motivational quote. Never fails; the service falls
// back to a canned default.
func (h *AssistantHandler) Quote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": h.service.Quote(c.Request.Context())})
}

type chatRequest struct {
	Messages []assistant.ChatMessage `json:"messages" binding:"required"`
}

// Chat continues a conversation with the model.
func (h *AssistantHandler) Chat(c *gin.Context) {
	if !h.betaGate(c) {
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), req.Messages)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

type answerRequest struct {
	Query string `json:"query" binding:"required"`
}

// Answer returns a short generated explanation of a search query.
func (h *AssistantHandler) Answer(c *gin.Context) {
	if !h.betaGate(c) {
		return
	}
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	answer, err := h.service.Answer(c.Request.Context(), req.Query)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

type generateJSONRequest struct {
	Description string `json:"description" binding:"required"`
}

// GenerateJSON returns a JSON document matching the description. Invalid
// model output degrades to an empty object.
func (h *AssistantHandler) GenerateJSON(c *gin.Context) {
	if !h.betaGate(c) {
		return
	}
	var req generateJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}

	doc, err := h.service.GenerateJSON(c.Request.Context(), req.Description)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(doc))
}

// respondError reports validation failures. Model failures never reach here;
// the service degrades them to fixed fallbacks.
func (h *AssistantHandler) respondError(c *gin.Context, err error) {
	h.log.Debug().Err(err).Msg("assistant request rejected")
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
