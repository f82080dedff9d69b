package news

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// parse dispatches raw provider bytes to the right parser.
func parse(source Source, body []byte) ([]Item, error) {
	switch source {
	case SourceHackerNews:
		return parseHackerNews(body)
	case SourceDevTo:
		return parseDevTo(body)
	case SourceReddit:
		return parseReddit(body)
	case SourceGitHub:
		return parseGitHub(body)
	default:
		return nil, fmt.Errorf("unknown news source %q", source)
	}
}

// parseHackerNews extracts stories from the HN front page markup. Each story
// row is a tr.athing holding a span.titleline with the link.
func parseHackerNews(body []byte) ([]Item, error) {
	root, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse hacker news html: %w", err)
	}

	var items []Item
	for i, row := range findAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "tr" && hasClass(n, "athing")
	}) {
		if len(items) >= maxItems {
			break
		}
		titleline := findFirst(row, func(n *html.Node) bool {
			return n.Type == html.ElementNode && hasClass(n, "titleline")
		})
		if titleline == nil {
			continue
		}
		link := findFirst(titleline, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "a"
		})
		if link == nil {
			continue
		}
		title := strings.TrimSpace(textContent(link))
		url := attrVal(link, "href")
		if title == "" || url == "" {
			continue
		}
		if strings.HasPrefix(url, "item?id=") {
			url = "https://news.ycombinator.com/" + url
		}
		items = append(items, Item{
			ID:     fmt.Sprintf("hn-%d", i),
			Title:  title,
			URL:    url,
			Source: SourceHackerNews.Label(),
		})
	}
	return items, nil
}

// parseDevTo extracts articles from dev.to listing markup. Each article is a
// div.crayons-story with the link inside h2.crayons-story__title.
func parseDevTo(body []byte) ([]Item, error) {
	root, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse dev.to html: %w", err)
	}

	var items []Item
	for i, story := range findAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "crayons-story")
	}) {
		if len(items) >= maxItems {
			break
		}
		heading := findFirst(story, func(n *html.Node) bool {
			return n.Type == html.ElementNode && hasClass(n, "crayons-story__title")
		})
		if heading == nil {
			continue
		}
		link := findFirst(heading, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "a"
		})
		if link == nil {
			continue
		}
		title := strings.TrimSpace(textContent(link))
		href := attrVal(link, "href")
		if title == "" || href == "" {
			continue
		}
		if strings.HasPrefix(href, "/") {
			href = "https://dev.to" + href
		}
		items = append(items, Item{
			ID:     fmt.Sprintf("devto-%d", i),
			Title:  title,
			URL:    href,
			Source: SourceDevTo.Label(),
		})
	}
	return items, nil
}

// parseGitHub extracts repositories from the github.com/trending markup.
// Each repository is an article.Box-row with the link in the h2 heading.
func parseGitHub(body []byte) ([]Item, error) {
	root, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse github trending html: %w", err)
	}

	var items []Item
	for i, row := range findAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "article" && hasClass(n, "Box-row")
	}) {
		if len(items) >= maxItems {
			break
		}
		heading := findFirst(row, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "h2"
		})
		if heading == nil {
			continue
		}
		link := findFirst(heading, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "a"
		})
		if link == nil {
			continue
		}
		title := collapseWhitespace(textContent(link))
		href := attrVal(link, "href")
		if title == "" || href == "" {
			continue
		}
		items = append(items, Item{
			ID:     fmt.Sprintf("github-%d", i),
			Title:  title,
			URL:    "https://github.com" + href,
			Source: SourceGitHub.Label(),
		})
	}
	return items, nil
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				ID        string `json:"id"`
				Title     string `json:"title"`
				URL       string `json:"url"`
				Permalink string `json:"permalink"`
				Score     int    `json:"score"`
				Author    string `json:"author"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// parseReddit decodes the subreddit JSON listing.
func parseReddit(body []byte) ([]Item, error) {
	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("decode reddit listing: %w", err)
	}

	var items []Item
	for _, child := range listing.Data.Children {
		if len(items) >= maxItems {
			break
		}
		post := child.Data
		url := post.URL
		if url == "" && post.Permalink != "" {
			url = "https://www.reddit.com" + post.Permalink
		}
		if post.Title == "" || url == "" {
			continue
		}
		items = append(items, Item{
			ID:     "reddit-" + post.ID,
			Title:  post.Title,
			URL:    url,
			Source: SourceReddit.Label(),
			Points: fmt.Sprintf("%d", post.Score),
			Author: post.Author,
		})
	}
	return items, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func attrVal(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// findAll returns every node under root matching the predicate, in document
// order. Matching nodes are not descended into.
func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			found = append(found, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func findFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	var walk func(*html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		if match(n) {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(root)
}
