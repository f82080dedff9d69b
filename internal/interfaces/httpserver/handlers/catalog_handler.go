package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"devhub-server/internal/domain/catalog"
	"devhub-server/internal/interfaces/httpserver/responses"
	"devhub-server/internal/utils/platformerrors"
)

const learningPathNotFoundUUID = "a7c31d5e-9f02-4b86-b3de-2c4f8a160d97"

// CatalogHandler exposes search, resources and learning paths.
type CatalogHandler struct {
	service *catalog.Service
	log     zerolog.Logger
}

func NewCatalogHandler(service *catalog.Service, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With().Str("component", "catalog-handler").Logger(),
	}
}

// Search returns catalog entries matching the query. A blank query returns
// an empty result set without touching the database.
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")
	results := h.service.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"query": query, "results": results})
}

// Resources returns the curated resource catalog.
func (h *CatalogHandler) Resources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resources": h.service.Resources(c.Request.Context())})
}

// LearningPaths returns all learning paths with their ordered steps.
func (h *CatalogHandler) LearningPaths(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"paths": h.service.LearningPaths(c.Request.Context())})
}

// LearningPathBySkill returns one path looked up by its skill slug.
func (h *CatalogHandler) LearningPathBySkill(c *gin.Context) {
	slug := c.Param("skill")
	path := h.service.LearningPathBySkill(c.Request.Context(), slug)
	if path == nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "learning path not found", learningPathNotFoundUUID)
		return
	}
	c.JSON(http.StatusOK, path)
}
