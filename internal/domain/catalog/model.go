package catalog

import "time"

// SearchResult is a curated catalog entry returned by substring search.
type SearchResult struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Resource is a read-only catalog entry.
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// LearningPath is a guided onboarding track with ordered steps.
type LearningPath struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Skill       string         `json:"skill"`
	Icon        string         `json:"icon"`
	Difficulty  string         `json:"difficulty"`
	Duration    string         `json:"duration"`
	Steps       []LearningStep `json:"steps"`
	CreatedAt   time.Time      `json:"created_at"`
}

// LearningStep is one step within a learning path, ordered ascending by Order.
type LearningStep struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Order          int      `json:"order"`
	Resources      []string `json:"resources"`
	EstimatedHours int      `json:"estimated_hours"`
}

// TotalHours sums the estimated hours across all steps.
func (p LearningPath) TotalHours() int {
	total := 0
	for _, step := range p.Steps {
		total += step.EstimatedHours
	}
	return total
}
