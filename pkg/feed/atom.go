package feed

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/craftdays/craftfeed/pkg/domain"
)

// ToAtom1 serializes a feed document as Atom 1.0
func ToAtom1(doc domain.FeedDocument) (string, error) {
	feed := &atomFeed{
		Title:   atomText{Type: "text", Body: doc.Title},
		ID:      doc.FeedURLs.Atom,
		Updated: doc.UpdatedAt.UTC().Format(time.RFC3339),
		Links:   []atomLink{{Href: siteLink(doc), Rel: "alternate", Type: "text/html"}},
		Entries: make([]*atomEntry, 0, len(doc.Entries)),
	}
	if feed.ID == "" {
		feed.ID = siteLink(doc)
	}
	if doc.Description != "" {
		feed.Subtitle = &atomText{Type: "text", Body: doc.Description}
	}
	if doc.FeedURLs.Atom != "" {
		feed.Links = append(feed.Links, atomLink{Href: doc.FeedURLs.Atom, Rel: "self", Type: "application/atom+xml"})
	}
	if doc.HubURL != "" {
		feed.Links = append(feed.Links, atomLink{Href: doc.HubURL, Rel: "hub"})
	}
	if doc.Generator != "" {
		feed.Generator = &atomGenerator{Value: doc.Generator}
	}

	for _, e := range doc.Entries {
		feed.Entries = append(feed.Entries, atomEntryOf(e))
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal atom: %w", err)
	}
	return xml.Header + string(output), nil
}

func atomEntryOf(e domain.FeedEntry) *atomEntry {
	entry := &atomEntry{
		Title:     atomText{Type: "text", Body: e.Title},
		ID:        e.ID,
		Links:     []atomLink{{Href: e.Link, Rel: "alternate", Type: "text/html"}},
		Published: e.PublishedAt.UTC().Format(time.RFC3339),
		Updated:   e.LastTouched().UTC().Format(time.RFC3339),
		Author:    &atomPerson{Name: e.Author.Name, Email: e.Author.Email, URI: e.Author.ProfileURL},
	}
	if e.Category != nil {
		entry.Categories = []atomCategory{{Term: e.Category.Slug, Label: e.Category.Name}}
	}
	if e.Image != "" {
		entry.Links = append(entry.Links, atomLink{Href: e.Image, Rel: "enclosure", Type: imageType(e.Image)})
	}

	// an entry needs content or summary, title is the last resort
	summary := e.Summary
	if summary == "" && e.ContentHTML == "" {
		summary = e.Title
	}
	if summary != "" {
		entry.Summary = &atomText{Type: "text", Body: summary}
	}
	if e.ContentHTML != "" {
		entry.Content = &atomText{Type: "html", Body: e.ContentHTML}
	}
	return entry
}
