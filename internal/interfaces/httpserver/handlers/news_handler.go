package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"devhub-server/internal/domain/news"
)

// NewsHandler exposes the aggregated developer news feed.
type NewsHandler struct {
	service *news.Service
	log     zerolog.Logger
}

func NewNewsHandler(service *news.Service, log zerolog.Logger) *NewsHandler {
	return &NewsHandler{
		service: service,
		log:     log.With().Str("component", "news-handler").Logger(),
	}
}

// List returns headlines for a source and category. Unknown values fall
// back to defaults; provider failures yield an empty list, never an error.
func (h *NewsHandler) List(c *gin.Context) {
	source := news.ParseSource(c.Query("source"))
	category := news.ParseCategory(c.Query("category"))

	items := h.service.Headlines(c.Request.Context(), source, category)
	c.JSON(http.StatusOK, gin.H{
		"source":   string(source),
		"category": string(category),
		"items":    items,
	})
}
