package livesearch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"devhub-server/internal/domain/catalog"
)

type fakeSearcher struct {
	mu      sync.Mutex
	queries []string
	// blockOn holds queries that must wait on release before returning.
	blockOn map[string]chan struct{}
	started chan string
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{
		blockOn: make(map[string]chan struct{}),
		started: make(chan string, 16),
	}
}

func (f *fakeSearcher) Search(ctx context.Context, query string) []catalog.SearchResult {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	gate := f.blockOn[query]
	f.mu.Unlock()

	select {
	case f.started <- query:
	default:
	}
	if gate != nil {
		<-gate
	}
	return []catalog.SearchResult{{Title: "result for " + query}}
}

func (f *fakeSearcher) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

type fakeAnswerer struct {
	AnswerFunc func(ctx context.Context, query string) (string, error)
}

func (f *fakeAnswerer) Answer(ctx context.Context, query string) (string, error) {
	if f.AnswerFunc != nil {
		return f.AnswerFunc(ctx, query)
	}
	return "about " + query, nil
}

type updateRecorder struct {
	mu      sync.Mutex
	updates []Update
	signal  chan struct{}
}

func newUpdateRecorder() *updateRecorder {
	return &updateRecorder{signal: make(chan struct{}, 16)}
}

func (r *updateRecorder) deliver(u Update) {
	r.mu.Lock()
	r.updates = append(r.updates, u)
	r.mu.Unlock()
	select {
	case r.signal <- struct{}{}:
	default:
	}
}

func (r *updateRecorder) all() []Update {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Update(nil), r.updates...)
}

func (r *updateRecorder) waitForUpdate(t *testing.T) Update {
	t.Helper()
	select {
	case <-r.signal:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
	}
	updates := r.all()
	return updates[len(updates)-1]
}

func TestRapidEditsDispatchOnlySettledQuery(t *testing.T) {
	searcher := newFakeSearcher()
	recorder := newUpdateRecorder()
	session := NewSession(searcher, nil, 80*time.Millisecond, recorder.deliver, zerolog.Nop())
	defer session.Close()

	// Simulate typing "Goroutine" with pauses shorter than the debounce.
	for _, q := range []string{"G", "Go", "Gor", "Goroutine"} {
		session.Update(q)
		time.Sleep(20 * time.Millisecond)
	}

	update := recorder.waitForUpdate(t)
	if update.Query != "Goroutine" {
		t.Errorf("dispatched query = %q, want Goroutine", update.Query)
	}
	if seen := searcher.seen(); len(seen) != 1 || seen[0] != "Goroutine" {
		t.Errorf("searcher saw %v, want only the settled query", seen)
	}
}

func TestBlankQueryClearsImmediately(t *testing.T) {
	searcher := newFakeSearcher()
	recorder := newUpdateRecorder()
	session := NewSession(searcher, nil, time.Hour, recorder.deliver, zerolog.Nop())
	defer session.Close()

	session.Update("golang")
	session.Update("   ")

	update := recorder.waitForUpdate(t)
	if update.Query != "" {
		t.Errorf("update query = %q, want blank", update.Query)
	}
	if update.Results == nil || len(update.Results) != 0 {
		t.Errorf("results = %v, want empty slice", update.Results)
	}
	if seen := searcher.seen(); len(seen) != 0 {
		t.Errorf("searcher called with %v, want no calls (pending dispatch cancelled)", seen)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	searcher := newFakeSearcher()
	gate := make(chan struct{})
	searcher.blockOn["old"] = gate

	recorder := newUpdateRecorder()
	session := NewSession(searcher, nil, 10*time.Millisecond, recorder.deliver, zerolog.Nop())
	defer session.Close()

	session.Update("old")
	select {
	case q := <-searcher.started:
		if q != "old" {
			t.Fatalf("first dispatch = %q", q)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first dispatch never started")
	}

	// A newer query dispatches and completes while "old" is still in flight.
	session.Update("new")
	update := recorder.waitForUpdate(t)
	if update.Query != "new" {
		t.Fatalf("delivered query = %q, want new", update.Query)
	}

	close(gate)
	time.Sleep(50 * time.Millisecond)

	for _, u := range recorder.all() {
		if u.Query == "old" {
			t.Error("stale response for superseded query was delivered")
		}
	}
	last := recorder.all()[len(recorder.all())-1]
	if last.Query != "new" {
		t.Errorf("latest update = %q, want new", last.Query)
	}
}

func TestGenerationsIncrease(t *testing.T) {
	searcher := newFakeSearcher()
	recorder := newUpdateRecorder()
	session := NewSession(searcher, nil, 10*time.Millisecond, recorder.deliver, zerolog.Nop())
	defer session.Close()

	session.Update("first")
	recorder.waitForUpdate(t)
	session.Update("second")
	recorder.waitForUpdate(t)

	updates := recorder.all()
	if len(updates) != 2 {
		t.Fatalf("got %d updates, want 2", len(updates))
	}
	if updates[1].Generation <= updates[0].Generation {
		t.Errorf("generations %d then %d, want strictly increasing",
			updates[0].Generation, updates[1].Generation)
	}
}

func TestAnswererFailureLeavesAnswerEmpty(t *testing.T) {
	searcher := newFakeSearcher()
	answerer := &fakeAnswerer{
		AnswerFunc: func(ctx context.Context, query string) (string, error) {
			return "", errors.New("model down")
		},
	}
	recorder := newUpdateRecorder()
	session := NewSession(searcher, answerer, 10*time.Millisecond, recorder.deliver, zerolog.Nop())
	defer session.Close()

	session.Update("channels")
	update := recorder.waitForUpdate(t)

	if update.Answer != "" {
		t.Errorf("answer = %q, want empty on model failure", update.Answer)
	}
	if len(update.Results) != 1 {
		t.Errorf("results = %v, want catalog results despite answer failure", update.Results)
	}
}

func TestAnswererRunsAlongsideSearch(t *testing.T) {
	searcher := newFakeSearcher()
	recorder := newUpdateRecorder()
	session := NewSession(searcher, &fakeAnswerer{}, 10*time.Millisecond, recorder.deliver, zerolog.Nop())
	defer session.Close()

	session.Update("generics")

	// The answer slot fills in a separate update from the catalog results;
	// poll until the combined one arrives.
	deadline := time.Now().Add(2 * time.Second)
	var combined *Update
	for time.Now().Before(deadline) {
		for _, u := range recorder.all() {
			if u.Answer != "" {
				c := u
				combined = &c
				break
			}
		}
		if combined != nil {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if combined == nil {
		t.Fatal("no update with an answer arrived")
	}
	if combined.Answer != "about generics" {
		t.Errorf("answer = %q", combined.Answer)
	}
	if len(combined.Results) != 1 || combined.Results[0].Title != "result for generics" {
		t.Errorf("results = %+v", combined.Results)
	}
}

func TestUpdateAfterCloseIsIgnored(t *testing.T) {
	searcher := newFakeSearcher()
	recorder := newUpdateRecorder()
	session := NewSession(searcher, nil, 10*time.Millisecond, recorder.deliver, zerolog.Nop())

	session.Close()
	session.Update("anything")
	time.Sleep(50 * time.Millisecond)

	if updates := recorder.all(); len(updates) != 0 {
		t.Errorf("got %d updates after Close, want 0", len(updates))
	}
}
