package handlers

import (
	"github.com/rs/zerolog"

	"devhub-server/internal/config"
	"devhub-server/internal/domain/assistant"
	"devhub-server/internal/domain/blog"
	"devhub-server/internal/domain/catalog"
	"devhub-server/internal/domain/gallery"
	"devhub-server/internal/domain/news"
)

// Services bundles the domain services the HTTP layer depends on.
type Services struct {
	Catalog   *catalog.Service
	Gallery   *gallery.Service
	News      *news.Service
	Assistant *assistant.Service
	Blog      *blog.Service
}

// Provider wires HTTP handlers.
type Provider struct {
	Catalog   *CatalogHandler
	Gallery   *GalleryHandler
	News      *NewsHandler
	Assistant *AssistantHandler
	Blog      *BlogHandler
	Auth      *AuthHandler
}

func NewProvider(cfg *config.Config, services Services, log zerolog.Logger) *Provider {
	return &Provider{
		Catalog:   NewCatalogHandler(services.Catalog, log),
		Gallery:   NewGalleryHandler(cfg, services.Gallery, log),
		News:      NewNewsHandler(services.News, log),
		Assistant: NewAssistantHandler(cfg, services.Assistant, log),
		Blog:      NewBlogHandler(services.Blog, log),
		Auth:      NewAuthHandler(cfg, log),
	}
}
