package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// MockRepository is a func-field mock of Repository.
type MockRepository struct {
	SearchResultsFunc       func(ctx context.Context, query string) ([]SearchResult, error)
	AllResultsFunc          func(ctx context.Context) ([]SearchResult, error)
	ResourcesFunc           func(ctx context.Context) ([]Resource, error)
	LearningPathsFunc       func(ctx context.Context) ([]LearningPath, error)
	LearningPathBySkillFunc func(ctx context.Context, skill string) (*LearningPath, error)

	searchCalls int
}

func (m *MockRepository) SearchResults(ctx context.Context, query string) ([]SearchResult, error) {
	m.searchCalls++
	if m.SearchResultsFunc != nil {
		return m.SearchResultsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockRepository) AllResults(ctx context.Context) ([]SearchResult, error) {
	if m.AllResultsFunc != nil {
		return m.AllResultsFunc(ctx)
	}
	return nil, nil
}

func (m *MockRepository) Resources(ctx context.Context) ([]Resource, error) {
	if m.ResourcesFunc != nil {
		return m.ResourcesFunc(ctx)
	}
	return nil, nil
}

func (m *MockRepository) LearningPaths(ctx context.Context) ([]LearningPath, error) {
	if m.LearningPathsFunc != nil {
		return m.LearningPathsFunc(ctx)
	}
	return nil, nil
}

func (m *MockRepository) LearningPathBySkill(ctx context.Context, skill string) (*LearningPath, error) {
	if m.LearningPathBySkillFunc != nil {
		return m.LearningPathBySkillFunc(ctx, skill)
	}
	return nil, nil
}

func fixedCatalog() []SearchResult {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []SearchResult{
		{ID: "sr_1", Title: "React Hooks Guide", Description: "Deep dive into hooks", Category: "Frontend", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "sr_2", Title: "Vue Basics", Description: "Getting started", Category: "Frontend", CreatedAt: base.Add(time.Hour)},
		{ID: "sr_3", Title: "Go Concurrency", Description: "Goroutines and channels", Category: "Backend", CreatedAt: base},
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func TestSearchEmptyQuerySkipsRepository(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "empty", query: ""},
		{name: "spaces", query: "   "},
		{name: "tabs and newlines", query: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepository{}
			svc := NewService(repo, zerolog.Nop())

			got := svc.Search(context.Background(), tt.query)
			if len(got) != 0 {
				t.Errorf("Search(%q) returned %d results, want 0", tt.query, len(got))
			}
			if repo.searchCalls != 0 {
				t.Errorf("Search(%q) hit the repository %d times, want 0", tt.query, repo.searchCalls)
			}
		})
	}
}

func TestSearchContainment(t *testing.T) {
	repo := &MockRepository{
		SearchResultsFunc: func(ctx context.Context, query string) ([]SearchResult, error) {
			var matched []SearchResult
			for _, r := range fixedCatalog() {
				if containsFold(r.Title, query) || containsFold(r.Description, query) || containsFold(r.Category, query) {
					matched = append(matched, r)
				}
			}
			return matched, nil
		},
	}
	svc := NewService(repo, zerolog.Nop())

	got := svc.Search(context.Background(), "React")
	if len(got) != 1 {
		t.Fatalf("Search(React) returned %d results, want 1", len(got))
	}
	if got[0].Title != "React Hooks Guide" {
		t.Errorf("Search(React) returned %q, want React Hooks Guide", got[0].Title)
	}

	for _, r := range got {
		if !containsFold(r.Title, "React") && !containsFold(r.Description, "React") && !containsFold(r.Category, "React") {
			t.Errorf("result %q violates substring containment", r.ID)
		}
	}
}

func TestSearchOrdering(t *testing.T) {
	repo := &MockRepository{
		SearchResultsFunc: func(ctx context.Context, query string) ([]SearchResult, error) {
			return fixedCatalog(), nil
		},
	}
	svc := NewService(repo, zerolog.Nop())

	got := svc.Search(context.Background(), "e")
	for i := 1; i < len(got); i++ {
		if got[i-1].CreatedAt.Before(got[i].CreatedAt) {
			t.Errorf("results out of order at %d: %v before %v", i, got[i-1].CreatedAt, got[i].CreatedAt)
		}
	}
}

func TestSearchRepositoryErrorYieldsEmpty(t *testing.T) {
	repo := &MockRepository{
		SearchResultsFunc: func(ctx context.Context, query string) ([]SearchResult, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewService(repo, zerolog.Nop())

	got := svc.Search(context.Background(), "anything")
	if got == nil {
		t.Fatal("Search returned nil slice on repository error, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Search returned %d results on repository error, want 0", len(got))
	}
}

func TestListingErrorsYieldEmpty(t *testing.T) {
	repo := &MockRepository{
		AllResultsFunc: func(ctx context.Context) ([]SearchResult, error) {
			return nil, errors.New("boom")
		},
		ResourcesFunc: func(ctx context.Context) ([]Resource, error) {
			return nil, errors.New("boom")
		},
		LearningPathsFunc: func(ctx context.Context) ([]LearningPath, error) {
			return nil, errors.New("boom")
		},
	}
	svc := NewService(repo, zerolog.Nop())
	ctx := context.Background()

	if got := svc.AllResults(ctx); got == nil || len(got) != 0 {
		t.Errorf("AllResults on error = %v, want empty slice", got)
	}
	if got := svc.Resources(ctx); got == nil || len(got) != 0 {
		t.Errorf("Resources on error = %v, want empty slice", got)
	}
	if got := svc.LearningPaths(ctx); got == nil || len(got) != 0 {
		t.Errorf("LearningPaths on error = %v, want empty slice", got)
	}
}

func TestLearningPathBySkill(t *testing.T) {
	var askedSkill string
	repo := &MockRepository{
		LearningPathBySkillFunc: func(ctx context.Context, skill string) (*LearningPath, error) {
			askedSkill = skill
			if skill == "Full Stack" {
				return &LearningPath{ID: "lp_1", Skill: "Full Stack"}, nil
			}
			return nil, nil
		},
	}
	svc := NewService(repo, zerolog.Nop())

	got := svc.LearningPathBySkill(context.Background(), "full-stack")
	if got == nil {
		t.Fatal("LearningPathBySkill(full-stack) = nil, want path")
	}
	if askedSkill != "Full Stack" {
		t.Errorf("repository queried with %q, want Full Stack", askedSkill)
	}

	if got := svc.LearningPathBySkill(context.Background(), "basket-weaving"); got != nil {
		t.Errorf("LearningPathBySkill(basket-weaving) = %v, want nil", got)
	}
}

func TestSkillFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{slug: "full-stack", want: "Full Stack"},
		{slug: "devops", want: "Devops"},
		{slug: "machine-learning", want: "Machine Learning"},
		{slug: "", want: ""},
		{slug: "  ", want: ""},
	}

	for _, tt := range tests {
		if got := SkillFromSlug(tt.slug); got != tt.want {
			t.Errorf("SkillFromSlug(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}
}

func TestProgressTracker(t *testing.T) {
	tracker := NewProgressTracker()
	path := LearningPath{
		ID: "lp_1",
		Steps: []LearningStep{
			{ID: "st_1"}, {ID: "st_2"}, {ID: "st_3"}, {ID: "st_4"},
		},
	}

	if pct := tracker.Percent(path); pct != 0 {
		t.Errorf("Percent of fresh tracker = %d, want 0", pct)
	}

	if done := tracker.Toggle("lp_1", "st_1"); !done {
		t.Error("first Toggle = false, want true")
	}
	tracker.Toggle("lp_1", "st_2")
	if pct := tracker.Percent(path); pct != 50 {
		t.Errorf("Percent after 2/4 = %d, want 50", pct)
	}

	if done := tracker.Toggle("lp_1", "st_1"); done {
		t.Error("second Toggle = true, want false")
	}
	if pct := tracker.Percent(path); pct != 25 {
		t.Errorf("Percent after untoggle = %d, want 25", pct)
	}

	completed := tracker.Completed("lp_1")
	if !completed["st_2"] || completed["st_1"] {
		t.Errorf("Completed = %v, want only st_2", completed)
	}

	tracker.Reset("lp_1")
	if pct := tracker.Percent(path); pct != 0 {
		t.Errorf("Percent after Reset = %d, want 0", pct)
	}
}
