package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/craftdays/craftfeed/pkg/domain"
)

// ToJSONFeed1 serializes a feed document as JSON Feed 1.1
func ToJSONFeed1(doc domain.FeedDocument) (string, error) {
	feed := jsonFeed{
		Version:     JSONFeedVersion,
		Title:       doc.Title,
		HomePageURL: siteLink(doc),
		FeedURL:     doc.FeedURLs.JSON,
		Description: doc.Description,
		Language:    doc.Language,
		Items:       make([]jsonItem, 0, len(doc.Entries)),
	}
	if doc.HubURL != "" {
		feed.Hubs = []jsonHub{{Type: "WebSub", URL: doc.HubURL}}
	}

	for _, e := range doc.Entries {
		feed.Items = append(feed.Items, jsonEntry(e))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return "", fmt.Errorf("marshal json feed: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func jsonEntry(e domain.FeedEntry) jsonItem {
	item := jsonItem{
		ID:            e.ID,
		URL:           e.Link,
		Title:         e.Title,
		ContentHTML:   e.ContentHTML,
		Summary:       e.Summary,
		Image:         e.Image,
		DatePublished: e.PublishedAt.UTC().Format(time.RFC3339),
		Authors:       []jsonAuthor{{Name: e.Author.Name, URL: e.Author.ProfileURL}},
	}
	if e.UpdatedAt != nil {
		item.DateModified = e.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if item.ContentHTML == "" {
		item.ContentText = e.Summary
		if item.ContentText == "" {
			item.ContentText = e.Title
		}
	}
	if e.Category != nil {
		item.Tags = []string{e.Category.Name}
	}
	return item
}
