package api

import (
	"github.com/gin-gonic/gin"

	"devhub-server/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates route registration for the public API.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all routes under the /api prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/api")

	group.GET("/search", r.handlers.Catalog.Search)
	group.GET("/resources", r.handlers.Catalog.Resources)
	group.GET("/learning-paths", r.handlers.Catalog.LearningPaths)
	group.GET("/learning-paths/:skill", r.handlers.Catalog.LearningPathBySkill)

	group.GET("/images", r.handlers.Gallery.List)
	group.POST("/upload", r.handlers.Gallery.Upload)
	group.DELETE("/images", r.handlers.Gallery.Delete)
	group.PUT("/images/rename", r.handlers.Gallery.Rename)
	group.GET("/download", r.handlers.Gallery.Download)
	group.OPTIONS("/download", r.handlers.Gallery.DownloadPreflight)

	group.GET("/news", r.handlers.News.List)

	group.GET("/quote", r.handlers.Assistant.Quote)
	group.POST("/chat", r.handlers.Assistant.Chat)
	group.POST("/ai-answer", r.handlers.Assistant.Answer)
	group.POST("/json", r.handlers.Assistant.GenerateJSON)

	group.GET("/blog", r.handlers.Blog.List)
	group.GET("/blog/:slug", r.handlers.Blog.BySlug)

	group.POST("/auth/verify", r.handlers.Auth.Verify)
}
