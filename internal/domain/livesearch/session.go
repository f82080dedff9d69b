package livesearch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"devhub-server/internal/domain/catalog"
)

// Searcher produces catalog results for a query.
type Searcher interface {
	Search(ctx context.Context, query string) []catalog.SearchResult
}

// Answerer produces a short generated answer for a query. Optional; a nil
// Answerer leaves Update.Answer empty.
type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// Update is one delivered search state. Generation increases monotonically;
// consumers can ignore it, stale generations are never delivered.
type Update struct {
	Query      string                 `json:"query"`
	Results    []catalog.SearchResult `json:"results"`
	Answer     string                 `json:"answer,omitempty"`
	Generation uint64                 `json:"generation"`
}

// Session debounces a stream of query edits and dispatches at most one
// lookup per settled query. Each dispatch takes a new generation token;
// a response whose token is no longer current is discarded, so out-of-order
// completions can never overwrite newer results.
type Session struct {
	searcher Searcher
	answerer Answerer
	debounce time.Duration
	deliver  func(Update)
	log      zerolog.Logger

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	closed     bool
}

// NewSession creates a search session. deliver is called from dispatch
// goroutines; empty-query clears are delivered synchronously from Update.
func NewSession(searcher Searcher, answerer Answerer, debounce time.Duration, deliver func(Update), log zerolog.Logger) *Session {
	if debounce <= 0 {
		debounce = 400 * time.Millisecond
	}
	return &Session{
		searcher: searcher,
		answerer: answerer,
		debounce: debounce,
		deliver:  deliver,
		log:      log.With().Str("component", "livesearch").Logger(),
	}
}

// Update feeds one edit of the query. A blank query cancels any pending
// dispatch and clears results immediately, without the debounce delay.
func (s *Session) Update(query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if query == "" {
		s.generation++
		update := Update{Query: "", Results: []catalog.SearchResult{}, Generation: s.generation}
		s.mu.Unlock()
		s.deliver(update)
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.dispatch(query)
	})
	s.mu.Unlock()
}

// Close stops any pending dispatch. Responses already in flight are
// discarded by the generation check.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) dispatch(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var (
		slotMu  sync.Mutex
		results = []catalog.SearchResult{}
		answer  string
	)

	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		found := s.searcher.Search(gctx, query)
		if found == nil {
			found = []catalog.SearchResult{}
		}
		slotMu.Lock()
		results = found
		slotMu.Unlock()

		// Catalog results render as soon as they arrive; a slow answer
		// must not hold them back.
		if s.current(gen) {
			s.deliver(Update{Query: query, Results: found, Generation: gen})
		}
		return nil
	})
	if s.answerer != nil {
		g.Go(func() error {
			text, err := s.answerer.Answer(gctx, query)
			if err != nil {
				s.log.Warn().Err(err).Str("query", query).Msg("answer generation failed")
				return nil
			}
			slotMu.Lock()
			answer = text
			slotMu.Unlock()
			return nil
		})
	}
	g.Wait()

	if s.answerer == nil || answer == "" {
		return
	}
	if !s.current(gen) {
		s.log.Debug().Str("query", query).Uint64("generation", gen).Msg("discarding stale search response")
		return
	}
	s.deliver(Update{Query: query, Results: results, Answer: answer, Generation: gen})
}

func (s *Session) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && gen == s.generation
}
