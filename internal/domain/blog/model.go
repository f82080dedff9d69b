package blog

import "time"

// Post is a blog article served from the headless CMS.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Body        string    `json:"body,omitempty"`
	CoverURL    string    `json:"coverUrl,omitempty"`
	Author      string    `json:"author,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}
