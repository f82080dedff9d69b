package catalog

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Repository defines persistence operations needed by the service.
type Repository interface {
	SearchResults(ctx context.Context, query string) ([]SearchResult, error)
	AllResults(ctx context.Context) ([]SearchResult, error)
	Resources(ctx context.Context) ([]Resource, error)
	LearningPaths(ctx context.Context) ([]LearningPath, error)
	LearningPathBySkill(ctx context.Context, skill string) (*LearningPath, error)
}

// Service exposes read operations over the curated catalog. Data-store
// failures are logged and converted to empty results, never surfaced.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("component", "catalog-service").Logger(),
	}
}

// Search returns all records whose title, description or category contains
// the query as a case-insensitive substring, newest first. An empty or
// whitespace-only query short-circuits to an empty slice without touching
// the repository.
func (s *Service) Search(ctx context.Context, query string) []SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchResult{}
	}

	results, err := s.repo.SearchResults(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("catalog search failed")
		return []SearchResult{}
	}
	if results == nil {
		results = []SearchResult{}
	}
	return results
}

// AllResults lists the full catalog, newest first.
func (s *Service) AllResults(ctx context.Context) []SearchResult {
	results, err := s.repo.AllResults(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("catalog listing failed")
		return []SearchResult{}
	}
	if results == nil {
		results = []SearchResult{}
	}
	return results
}

// Resources lists catalog resources, newest first.
func (s *Service) Resources(ctx context.Context) []Resource {
	resources, err := s.repo.Resources(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("resource listing failed")
		return []Resource{}
	}
	if resources == nil {
		resources = []Resource{}
	}
	return resources
}

// LearningPaths lists all paths with their steps ordered ascending.
func (s *Service) LearningPaths(ctx context.Context) []LearningPath {
	paths, err := s.repo.LearningPaths(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("learning path listing failed")
		return []LearningPath{}
	}
	if paths == nil {
		paths = []LearningPath{}
	}
	return paths
}

// LearningPathBySkill resolves a URL slug such as "full-stack" to the path
// whose skill matches "Full Stack" case-insensitively. Returns nil when no
// path matches or the lookup fails.
func (s *Service) LearningPathBySkill(ctx context.Context, slug string) *LearningPath {
	skill := SkillFromSlug(slug)
	if skill == "" {
		return nil
	}

	path, err := s.repo.LearningPathBySkill(ctx, skill)
	if err != nil {
		s.log.Error().Err(err).Str("skill", skill).Msg("learning path lookup failed")
		return nil
	}
	return path
}

// SkillFromSlug converts a URL slug back to title case for matching,
// e.g. "full-stack" -> "Full Stack".
func SkillFromSlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ""
	}
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
