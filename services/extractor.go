package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// ExtractedArticle is the plain-text result of fetching and parsing a page.
type ExtractedArticle struct {
	Title string
	Text  string
	URL   string
}

// ArticleExtractor fetches a page and extracts its readable content.
type ArticleExtractor interface {
	Extract(ctx context.Context, pageURL string) (*ExtractedArticle, error)
}

type ReadabilityExtractor struct {
	client *http.Client
}

func NewReadabilityExtractor(timeout time.Duration) *ReadabilityExtractor {
	return &ReadabilityExtractor{
		client: &http.Client{Timeout: timeout},
	}
}

func (e *ReadabilityExtractor) Extract(ctx context.Context, pageURL string) (*ExtractedArticle, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", pageURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	doc, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return nil, fmt.Errorf("parse article: %w", err)
	}

	title := strings.TrimSpace(doc.Title)
	text := strings.TrimSpace(doc.TextContent)
	// Empty output is a content-extraction failure, not a partial success.
	if title == "" || text == "" {
		return nil, fmt.Errorf("no article content extracted from %s", pageURL)
	}

	return &ExtractedArticle{
		Title: title,
		Text:  text,
		URL:   pageURL,
	}, nil
}
