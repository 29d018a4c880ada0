package feed

import (
	"slices"
	"strings"
	"time"

	"github.com/craftdays/craftfeed/pkg/domain"
)

const (
	// DefaultPageSize is the number of entries in a feed when not configured
	DefaultPageSize = 20
	// MaxPageSize caps feed size regardless of configuration
	MaxPageSize = 100
)

// epoch is used as the updated time of a feed without entries
var epoch = time.Unix(0, 0).UTC()

// BuildFeed makes a feed document from normalized entries.
// Entries are sorted by publish time descending, ties by id ascending, and capped to the page size.
// The input slice is not modified.
func BuildFeed(entries []domain.FeedEntry, meta domain.ChannelMeta) domain.FeedDocument {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.FeedEntry) int {
		if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	if size := PageSize(meta.PageSize); len(sorted) > size {
		sorted = sorted[:size]
	}

	return domain.FeedDocument{
		Title:       meta.Title,
		Description: meta.Description,
		SiteURL:     strings.TrimRight(meta.SiteURL, "/"),
		FeedURLs:    meta.FeedURLs,
		Language:    meta.Language,
		UpdatedAt:   latest(sorted),
		Entries:     sorted,
		HubURL:      meta.HubURL,
		Generator:   meta.Generator,
	}
}

// BuildCategoryFeed makes a feed of entries belonging to the category with the given slug.
// A nil category means no category matches the slug and results in domain.NotFoundError.
// A known category without entries gives an empty, valid feed.
func BuildCategoryFeed(category *domain.Category, slug string, entries []domain.FeedEntry, meta domain.ChannelMeta) (domain.FeedDocument, error) {
	if category == nil {
		return domain.FeedDocument{}, &domain.NotFoundError{Kind: "category", Key: slug}
	}

	members := make([]domain.FeedEntry, 0, len(entries))
	for _, e := range entries {
		if e.Category != nil && e.Category.Slug == slug {
			members = append(members, e)
		}
	}

	name := category.Name
	if name == "" {
		name = slug
	}
	if meta.Title != "" {
		meta.Title += " - " + name
	} else {
		meta.Title = name
	}
	if category.Description != "" {
		meta.Description = category.Description
	}

	doc := BuildFeed(members, meta)
	doc.Category = &domain.EntryCategory{Name: name, Slug: slug}
	return doc, nil
}

// PageSize bounds requested page size to 1..MaxPageSize, zero or negative means default
func PageSize(n int) int {
	switch {
	case n <= 0:
		return DefaultPageSize
	case n > MaxPageSize:
		return MaxPageSize
	default:
		return n
	}
}

// latest returns the most recent touch time of entries, epoch for none
func latest(entries []domain.FeedEntry) time.Time {
	res := epoch
	for _, e := range entries {
		if t := e.LastTouched(); t.After(res) {
			res = t
		}
	}
	return res.UTC()
}
