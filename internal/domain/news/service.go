package news

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"devhub-server/internal/config"
	"devhub-server/internal/infrastructure/metrics"
)

const userAgent = "Mozilla/5.0 (compatible; devhub-news/1.0)"

// Service fetches headlines from external providers and caches them per
// feed URL. Provider failures degrade to stale or empty results, never to
// an error surfaced to the caller.
type Service struct {
	client  *resty.Client
	cache   *feedCache
	feedURL func(Source, Category) string
	log     zerolog.Logger
}

func NewService(cfg *config.Config, log zerolog.Logger) *Service {
	client := resty.New().
		SetTimeout(cfg.NewsFetchTimeout).
		SetHeader("User-Agent", userAgent)

	return &Service{
		client:  client,
		cache:   newFeedCache(cfg.NewsCacheTTL),
		feedURL: FeedURL,
		log:     log.With().Str("component", "news-service").Logger(),
	}
}

// Headlines returns up to ten items for the source and category. Fresh cache
// entries are served without a network call. On fetch or parse failure a
// stale cache entry is served when one exists, otherwise an empty slice.
func (s *Service) Headlines(ctx context.Context, source Source, category Category) []Item {
	url := s.feedURL(source, category)

	if cached, fresh := s.cache.get(url); fresh {
		metrics.NewsCacheHitsTotal.Inc()
		return cached
	}

	items, err := s.fetch(ctx, source, url)
	if err != nil {
		s.log.Error().Err(err).
			Str("source", string(source)).
			Str("url", url).
			Msg("news fetch failed")
		metrics.RecordNewsFetch(string(source), "error")
		if stale, _ := s.cache.get(url); stale != nil {
			s.log.Warn().Str("url", url).Msg("serving stale news cache entry")
			return stale
		}
		return []Item{}
	}

	metrics.RecordNewsFetch(string(source), "success")
	if len(items) == 0 {
		// Usually means the provider changed its markup.
		s.log.Warn().Str("source", string(source)).Str("url", url).Msg("feed parsed to zero items")
	}
	s.cache.set(url, items)
	return items
}

func (s *Service) fetch(ctx context.Context, source Source, url string) ([]Item, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode())
	}

	items, err := parse(source, resp.Body())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}
