package blog

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// CMS is the headless content store the blog reads from.
type CMS interface {
	Posts(ctx context.Context) ([]Post, error)
	PostBySlug(ctx context.Context, slug string) (*Post, error)
}

// Service serves blog content. CMS failures degrade to empty listings so the
// page renders without articles instead of erroring.
type Service struct {
	cms CMS
	log zerolog.Logger
}

func NewService(cms CMS, log zerolog.Logger) *Service {
	return &Service{
		cms: cms,
		log: log.With().Str("component", "blog-service").Logger(),
	}
}

// Posts returns all published posts, newest first.
func (s *Service) Posts(ctx context.Context) []Post {
	posts, err := s.cms.Posts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list posts")
		return []Post{}
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts
}

// PostBySlug returns a single post, or nil when no post has the slug.
func (s *Service) PostBySlug(ctx context.Context, slug string) *Post {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	post, err := s.cms.PostBySlug(ctx, slug)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("failed to load post")
		return nil
	}
	return post
}
