package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"devhub-server/internal/domain/blog"
)

// BlogHandler serves CMS-backed blog content.
type BlogHandler struct {
	service *blog.Service
	log     zerolog.Logger
}

func NewBlogHandler(service *blog.Service, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		service: service,
		log:     log.With().Str("component", "blog-handler").Logger(),
	}
}

// List returns all published posts, newest first. CMS failures degrade to
// an empty list.
func (h *BlogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": h.service.Posts(c.Request.Context())})
}

// BySlug returns a single post or 404.
func (h *BlogHandler) BySlug(c *gin.Context) {
	post := h.service.PostBySlug(c.Request.Context(), c.Param("slug"))
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}
