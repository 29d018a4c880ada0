package content

import (
	"cmp"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/craftdays/craftfeed/pkg/domain"
)

const (
	// SummaryLimit is the max length of an entry summary in characters
	SummaryLimit = 160
	// UntitledPost replaces missing post titles
	UntitledPost = "Untitled"
	// AnonymousAuthor replaces unresolved or broken author relations
	AnonymousAuthor = "Anonymous"
	// UncategorizedSlug is used in entry links when a post has no usable category
	UncategorizedSlug = "uncategorized"
)

// Normalizer converts raw CMS posts into feed entries.
// It never fails: missing or broken data degrades to defaults.
type Normalizer struct {
	policy *bluemonday.Policy
}

// NewNormalizer makes a normalizer with UGC sanitizing policy
func NewNormalizer() *Normalizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")
	return &Normalizer{policy: p}
}

// Normalize builds a FeedEntry from a post. Links are rooted at siteURL.
func (n *Normalizer) Normalize(post domain.Post, siteURL string) domain.FeedEntry {
	siteURL = strings.TrimRight(siteURL, "/")

	entry := domain.FeedEntry{
		Title:  strings.TrimSpace(post.Title),
		Author: n.author(post, siteURL),
	}
	if entry.Title == "" {
		lgr.Printf("[DEBUG] post %s has no title, using placeholder", post.ID)
		entry.Title = UntitledPost
	}

	categorySlug := UncategorizedSlug
	switch post.Category.State() {
	case domain.RelationResolved:
		cat, _ := post.Category.Value()
		if cat.Slug != "" {
			categorySlug = cat.Slug
			entry.Category = &domain.EntryCategory{Name: cmp.Or(cat.Name, cat.Slug), Slug: cat.Slug}
		}
	case domain.RelationUnresolved, domain.RelationBroken:
		if ref := post.Category.RefID(); ref != "" {
			lgr.Printf("[DEBUG] post %s has %s category %q, omitted", post.ID, post.Category.State(), ref)
		}
	}

	slug := cmp.Or(strings.TrimSpace(post.Slug), post.ID)
	entry.ID = siteURL + "/blog/" + categorySlug + "/" + slug
	entry.Link = entry.ID

	entry.ContentHTML = n.contentHTML(post.Body, siteURL)
	entry.Summary = n.summary(post.Excerpt, entry.ContentHTML)

	entry.PublishedAt = post.CreatedAt.UTC()
	if post.PublishedAt != nil && !post.PublishedAt.IsZero() {
		entry.PublishedAt = post.PublishedAt.UTC()
	}
	if post.UpdatedAt != nil && !post.UpdatedAt.IsZero() {
		upd := post.UpdatedAt.UTC()
		entry.UpdatedAt = &upd
	}

	entry.Image = AbsoluteURL(siteURL, post.ImageURL)
	return entry
}

// NormalizeAll converts posts in order
func (n *Normalizer) NormalizeAll(posts []domain.Post, siteURL string) []domain.FeedEntry {
	res := make([]domain.FeedEntry, 0, len(posts))
	for _, p := range posts {
		res = append(res, n.Normalize(p, siteURL))
	}
	return res
}

func (n *Normalizer) author(post domain.Post, siteURL string) domain.EntryAuthor {
	switch post.Author.State() {
	case domain.RelationResolved:
		a, _ := post.Author.Value()
		if name := strings.TrimSpace(a.Name); name != "" {
			return domain.EntryAuthor{Name: name, Email: a.Email, ProfileURL: AbsoluteURL(siteURL, a.ProfileURL)}
		}
	case domain.RelationUnresolved, domain.RelationBroken:
	}
	return domain.EntryAuthor{Name: AnonymousAuthor}
}

// contentHTML renders, sanitizes and absolutizes the body
func (n *Normalizer) contentHTML(body domain.RichText, siteURL string) string {
	raw := RenderHTML(body)
	if raw == "" {
		return ""
	}
	return AbsolutizeLinks(n.policy.Sanitize(raw), siteURL)
}

func (n *Normalizer) summary(excerpt, contentHTML string) string {
	text := strings.Join(strings.Fields(excerpt), " ")
	if text == "" {
		text = PlainText(contentHTML)
	}
	return Truncate(text, SummaryLimit)
}
