package news

// Item is one headline fetched from an external provider. Items are
// ephemeral; nothing is persisted.
type Item struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
	Points string `json:"points,omitempty"`
	Author string `json:"author,omitempty"`
}

// Source identifies a news provider.
type Source string

const (
	SourceHackerNews Source = "hn"
	SourceDevTo      Source = "devto"
	SourceReddit     Source = "reddit"
	SourceGitHub     Source = "github"
)

// Category selects a provider feed. Not every combination is meaningful;
// unmapped combinations fall back to the provider default.
type Category string

const (
	CategoryLatest Category = "latest"
	CategoryTop    Category = "top"
	CategoryShow   Category = "show"
	CategoryAsk    Category = "ask"
)

// maxItems caps every provider response.
const maxItems = 10

// Label returns the display name of a source.
func (s Source) Label() string {
	switch s {
	case SourceHackerNews:
		return "Hacker News"
	case SourceDevTo:
		return "Dev.to"
	case SourceReddit:
		return "Reddit"
	case SourceGitHub:
		return "GitHub"
	default:
		return string(s)
	}
}

// ParseSource normalizes a raw source string, defaulting to Hacker News.
func ParseSource(raw string) Source {
	switch Source(raw) {
	case SourceHackerNews, SourceDevTo, SourceReddit, SourceGitHub:
		return Source(raw)
	default:
		return SourceHackerNews
	}
}

// ParseCategory normalizes a raw category string, defaulting to latest.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryLatest, CategoryTop, CategoryShow, CategoryAsk:
		return Category(raw)
	default:
		return CategoryLatest
	}
}

// FeedURL maps a source and category to the provider URL. Unmapped
// combinations fall back to the provider default feed.
func FeedURL(source Source, category Category) string {
	switch source {
	case SourceHackerNews:
		switch category {
		case CategoryTop:
			return "https://news.ycombinator.com/"
		case CategoryShow:
			return "https://news.ycombinator.com/show"
		case CategoryAsk:
			return "https://news.ycombinator.com/ask"
		default:
			return "https://news.ycombinator.com/newest"
		}
	case SourceDevTo:
		switch category {
		case CategoryTop:
			return "https://dev.to/top/week"
		default:
			return "https://dev.to/latest"
		}
	case SourceReddit:
		switch category {
		case CategoryTop:
			return "https://www.reddit.com/r/programming/hot/.json"
		default:
			return "https://www.reddit.com/r/programming/new/.json"
		}
	case SourceGitHub:
		return "https://github.com/trending"
	default:
		return "https://news.ycombinator.com/newest"
	}
}
