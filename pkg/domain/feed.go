package domain

import (
	"fmt"
	"time"
)

// Format is a syndication feed format
type Format string

const (
	FormatRSS  Format = "rss"
	FormatAtom Format = "atom"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a known feed format
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatRSS, FormatAtom, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown feed format %q", s)
}

// EntryAuthor is the author as presented in a feed entry
type EntryAuthor struct {
	Name       string
	Email      string
	ProfileURL string
}

// EntryCategory is the category as presented in a feed entry
type EntryCategory struct {
	Name string
	Slug string
}

// FeedEntry is one syndicated item, immutable once built
type FeedEntry struct {
	ID          string
	Title       string
	Link        string
	Summary     string
	ContentHTML string
	Author      EntryAuthor
	PublishedAt time.Time
	UpdatedAt   *time.Time
	Category    *EntryCategory
	Image       string
}

// LastTouched returns the latest of published and updated times
func (e FeedEntry) LastTouched() time.Time {
	if e.UpdatedAt != nil && e.UpdatedAt.After(e.PublishedAt) {
		return *e.UpdatedAt
	}
	return e.PublishedAt
}

// FeedURLs holds self links of a feed for each format
type FeedURLs struct {
	RSS  string
	Atom string
	JSON string
}

// For returns self link for the given format
func (u FeedURLs) For(f Format) string {
	switch f {
	case FormatAtom:
		return u.Atom
	case FormatJSON:
		return u.JSON
	default:
		return u.RSS
	}
}

// All returns non-empty self links in rss, atom, json order
func (u FeedURLs) All() []string {
	res := make([]string, 0, 3)
	for _, s := range []string{u.RSS, u.Atom, u.JSON} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

// ChannelMeta holds channel-level inputs for feed building
type ChannelMeta struct {
	Title       string
	Description string
	SiteURL     string
	FeedURLs    FeedURLs
	FeedBaseURL string // where feeds are served, category feed links are built from it
	Language    string
	HubURL      string
	Generator   string
	PageSize    int
}

// FeedDocument is a complete feed, entries ordered by PublishedAt descending
type FeedDocument struct {
	Title       string
	Description string
	SiteURL     string
	FeedURLs    FeedURLs
	Language    string
	UpdatedAt   time.Time
	Entries     []FeedEntry
	HubURL      string
	Generator   string
	Category    *EntryCategory // set for category-scoped feeds
}

// ValidationResult is the outcome of a feed format check
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// CacheDescriptor carries HTTP validators derived from serialized content
type CacheDescriptor struct {
	ETag         string
	LastModified time.Time
}

// NotificationResult is the outcome of one WebSub publish ping
type NotificationResult struct {
	FeedURL    string `json:"feed_url"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}
