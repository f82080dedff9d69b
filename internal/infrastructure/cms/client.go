package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"devhub-server/internal/config"
	"devhub-server/internal/domain/blog"
)

const apiVersion = "v2023-08-01"

var errNotConfigured = errors.New("cms is not configured; set CMS_BASE_URL to enable the blog")

// Client reads blog content from a Sanity-style headless CMS over its GROQ
// query endpoint.
type Client struct {
	http    *resty.Client
	dataset string
	log     zerolog.Logger
}

func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	logger := log.With().Str("component", "cms-client").Logger()

	if cfg.CMSBaseURL == "" {
		logger.Warn().Msg("CMS_BASE_URL is not set; blog content will be empty")
		return &Client{log: logger}
	}

	http := resty.New().
		SetBaseURL(cfg.CMSBaseURL).
		SetTimeout(15 * time.Second)
	if cfg.CMSToken != "" {
		http.SetAuthToken(cfg.CMSToken)
	}

	return &Client{
		http:    http,
		dataset: cfg.CMSDataset,
		log:     logger,
	}
}

type postDocument struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body"`
	CoverURL    string    `json:"coverUrl"`
	Author      string    `json:"author"`
	Categories  []string  `json:"categories"`
	PublishedAt time.Time `json:"publishedAt"`
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

const postProjection = `{_id, title, "slug": slug.current, excerpt, body, "coverUrl": mainImage.asset->url, "author": author->name, "categories": categories[]->title, publishedAt}`

// Posts returns all published posts, newest first.
func (c *Client) Posts(ctx context.Context) ([]blog.Post, error) {
	query := `*[_type == "post" && defined(publishedAt)] | order(publishedAt desc) ` + postProjection

	raw, err := c.query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	var docs []postDocument
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]blog.Post, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, mapPost(doc))
	}
	return posts, nil
}

// PostBySlug returns one post, or nil when no document matches.
func (c *Client) PostBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	query := `*[_type == "post" && slug.current == $slug][0] ` + postProjection

	raw, err := c.query(ctx, query, map[string]string{"$slug": fmt.Sprintf("%q", slug)})
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var doc postDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode post: %w", err)
	}
	post := mapPost(doc)
	return &post, nil
}

func (c *Client) query(ctx context.Context, groq string, params map[string]string) (json.RawMessage, error) {
	if c.http == nil {
		return nil, errNotConfigured
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", groq)
	for name, value := range params {
		req.SetQueryParam(name, value)
	}

	var body queryResponse
	resp, err := req.
		SetResult(&body).
		Get(fmt.Sprintf("/%s/data/query/%s", apiVersion, c.dataset))
	if err != nil {
		return nil, fmt.Errorf("cms query: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cms query: status %d", resp.StatusCode())
	}
	return body.Result, nil
}

func mapPost(doc postDocument) blog.Post {
	return blog.Post{
		ID:          doc.ID,
		Title:       doc.Title,
		Slug:        doc.Slug,
		Excerpt:     doc.Excerpt,
		Body:        doc.Body,
		CoverURL:    doc.CoverURL,
		Author:      doc.Author,
		Categories:  doc.Categories,
		PublishedAt: doc.PublishedAt,
	}
}
