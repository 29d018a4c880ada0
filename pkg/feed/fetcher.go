package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// maxFeedSize limits the body of a fetched feed
const maxFeedSize = 10 << 20

// Fetched is a feed document downloaded over HTTP
type Fetched struct {
	Status       int
	Content      string
	ContentType  string
	ETag         string
	LastModified string
}

// NotModified tells if the server answered a conditional request with 304
func (f Fetched) NotModified() bool { return f.Status == http.StatusNotModified }

// HTTPFetcher downloads published feeds and parses them the way feed readers do
type HTTPFetcher struct {
	client  *http.Client
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewHTTPFetcher creates a new feed fetcher
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client:  &http.Client{},
		parser:  gofeed.NewParser(),
		timeout: timeout,
	}
}

// Fetch downloads a feed. A non-empty etag makes the request conditional.
func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL, etag string) (Fetched, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return Fetched{}, fmt.Errorf("make request for %s: %w", feedURL, err)
	}
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/feed+json,application/xml;q=0.9,*/*;q=0.5")
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Fetched{}, fmt.Errorf("fetch %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	res := Fetched{
		Status:       resp.StatusCode,
		ContentType:  resp.Header.Get("Content-Type"),
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
	}
	if res.NotModified() {
		return res, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Fetched{}, fmt.Errorf("fetch %s: unexpected status %d", feedURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return Fetched{}, fmt.Errorf("read %s: %w", feedURL, err)
	}
	res.Content = string(body)
	return res, nil
}

// Parse reads feed content with gofeed, confirming feed readers can consume it
func (f *HTTPFetcher) Parse(content string) (*gofeed.Feed, error) {
	parsed, err := f.parser.ParseString(content)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return parsed, nil
}
