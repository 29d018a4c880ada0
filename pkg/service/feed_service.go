package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/craftdays/craftfeed/pkg/cache"
	"github.com/craftdays/craftfeed/pkg/content"
	"github.com/craftdays/craftfeed/pkg/domain"
	"github.com/craftdays/craftfeed/pkg/feed"
	"github.com/craftdays/craftfeed/pkg/repository"
)

//go:generate moq -out mocks/content_store.go -pkg mocks -skip-ensure -fmt goimports . ContentStore
//go:generate moq -out mocks/doc_cache.go -pkg mocks -skip-ensure -fmt goimports . DocCache

const (
	siteKey        = "feed:site"
	categoryPrefix = "feed:category:"

	// TagFeeds marks every cached feed document
	TagFeeds = "feeds"
	// TagSite marks the site-wide feed document
	TagSite = "site"
)

// CMS collections and change operations
const (
	CollectionPosts      = "posts"
	CollectionAuthors    = "authors"
	CollectionCategories = "categories"

	OpUpdate = "update"
	OpDelete = "delete"
)

// ErrBadChange is returned for changes that can't be applied to the content mirror
var ErrBadChange = errors.New("bad change")

// ContentStore reads and writes the local mirror of CMS content
type ContentStore interface {
	FetchAllPublishedPosts(ctx context.Context) ([]domain.Post, error)
	FetchCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	FetchAuthorByID(ctx context.Context, id string) (*domain.Author, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	PostCategorySlug(ctx context.Context, postID string) (string, error)

	UpsertPost(ctx context.Context, p domain.Post) error
	UpsertAuthor(ctx context.Context, a domain.Author) error
	UpsertCategory(ctx context.Context, c domain.Category) error
	DeletePost(ctx context.Context, id string) error
	DeleteAuthor(ctx context.Context, id string) error
	DeleteCategory(ctx context.Context, id string) error
}

// DocCache stores built feed documents
type DocCache interface {
	Get(ctx context.Context, key string) (domain.FeedDocument, bool)
	Set(ctx context.Context, key string, doc domain.FeedDocument, ttl time.Duration, tags ...string) error
	Invalidate(ctx context.Context, tags ...string) error
	Stat(ctx context.Context) cache.Stats
}

// FeedService turns stored content into feed documents
type FeedService struct {
	store      ContentStore
	cache      DocCache
	normalizer *content.Normalizer
	meta       domain.ChannelMeta
	ttl        time.Duration
}

// NewFeedService makes a service for the site described by meta. Documents are cached for ttl.
func NewFeedService(store ContentStore, docCache DocCache, meta domain.ChannelMeta, ttl time.Duration) *FeedService {
	meta.SiteURL = strings.TrimRight(meta.SiteURL, "/")
	meta.FeedBaseURL = strings.TrimRight(meta.FeedBaseURL, "/")
	if meta.FeedBaseURL == "" {
		meta.FeedBaseURL = meta.SiteURL
	}
	return &FeedService{store: store, cache: docCache, normalizer: content.NewNormalizer(), meta: meta, ttl: ttl}
}

// Meta returns site channel metadata
func (s *FeedService) Meta() domain.ChannelMeta { return s.meta }

// CategoryFeedURL returns the self link of a category feed
func (s *FeedService) CategoryFeedURL(slug string) string {
	return s.meta.FeedBaseURL + "/feeds/category/" + slug + ".xml"
}

// SiteFeed returns the site-wide feed
func (s *FeedService) SiteFeed(ctx context.Context) (domain.FeedDocument, error) {
	if doc, ok := s.cache.Get(ctx, siteKey); ok {
		return doc, nil
	}

	entries, err := s.entries(ctx)
	if err != nil {
		return domain.FeedDocument{}, err
	}
	doc := feed.BuildFeed(entries, s.meta)
	s.remember(ctx, siteKey, doc, TagFeeds, TagSite)
	return doc, nil
}

// CategoryFeed returns the feed of one category, domain.NotFoundError for unknown slugs
func (s *FeedService) CategoryFeed(ctx context.Context, slug string) (domain.FeedDocument, error) {
	key := categoryPrefix + slug
	if doc, ok := s.cache.Get(ctx, key); ok {
		return doc, nil
	}

	cat, err := s.store.FetchCategoryBySlug(ctx, slug)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.FeedDocument{}, fmt.Errorf("fetch category %s: %w", slug, err)
	}
	if cat == nil {
		return feed.BuildCategoryFeed(nil, slug, nil, s.meta)
	}

	entries, err := s.entries(ctx)
	if err != nil {
		return domain.FeedDocument{}, err
	}

	meta := s.meta
	meta.FeedURLs = domain.FeedURLs{RSS: s.CategoryFeedURL(slug)}
	doc, err := feed.BuildCategoryFeed(cat, slug, entries, meta)
	if err != nil {
		return domain.FeedDocument{}, err
	}
	s.remember(ctx, key, doc, TagFeeds, CategoryTag(slug))
	return doc, nil
}

// CategoryTag returns the cache tag of a category feed
func CategoryTag(slug string) string { return "category:" + slug }

// Change describes an edit reported by the CMS.
// Doc carries the changed record in snapshot form, a change without Doc only drops cached feeds.
type Change struct {
	Collection       string          `json:"collection"`          // posts, categories or authors
	Operation        string          `json:"operation,omitempty"` // update (default) or delete
	ID               string          `json:"id,omitempty"`
	Slug             string          `json:"slug,omitempty"`
	Category         string          `json:"category,omitempty"`          // post category slug after the change
	PreviousCategory string          `json:"previous_category,omitempty"` // post category slug before the change
	Doc              json.RawMessage `json:"doc,omitempty"`
}

// Apply writes the change to the content mirror, then invalidates affected feeds
// and returns their self links. Malformed changes are reported as ErrBadChange.
func (s *FeedService) Apply(ctx context.Context, ch Change) ([]string, error) {
	rec, err := decodeRecord(&ch)
	if err != nil {
		return nil, err
	}

	prevKnown := ch.PreviousCategory != ""
	if ch.Collection == CollectionPosts && ch.ID != "" && !prevKnown {
		prev, err := s.store.PostCategorySlug(ctx, ch.ID)
		if err != nil {
			return nil, fmt.Errorf("load category of post %s: %w", ch.ID, err)
		}
		ch.PreviousCategory, prevKnown = prev, true
	}

	if err := s.write(ctx, ch, rec); err != nil {
		return nil, err
	}

	if _, ok := rec.(repository.SnapshotPost); ok {
		// the stored relation wins over the slug reported by the cms
		cur, err := s.store.PostCategorySlug(ctx, ch.ID)
		if err != nil {
			return nil, fmt.Errorf("load category of post %s: %w", ch.ID, err)
		}
		ch.Category = cur
	}
	if ch.Collection == CollectionPosts && ch.Operation == OpDelete {
		ch.Category = ""
	}
	return s.invalidate(ctx, ch, prevKnown)
}

// invalidate drops cached documents affected by the change and returns
// self links of the feeds that changed, to be announced to the hub.
// Post changes are scoped to the site feed and the post categories only when
// the previous category is known, otherwise every feed is dropped.
func (s *FeedService) invalidate(ctx context.Context, ch Change, prevKnown bool) ([]string, error) {
	tags := []string{TagFeeds}
	urls := s.meta.FeedURLs.All()
	if ch.Collection == CollectionPosts && prevKnown {
		tags = []string{TagSite}
		for _, slug := range ch.categories() {
			tags = append(tags, CategoryTag(slug))
			urls = append(urls, s.CategoryFeedURL(slug))
		}
	}
	if err := s.cache.Invalidate(ctx, tags...); err != nil {
		return nil, fmt.Errorf("invalidate %v: %w", tags, err)
	}
	lgr.Printf("[INFO] invalidated feeds for %s change %q, tags %v", ch.Collection, ch.Slug, tags)
	return urls, nil
}

// categories returns distinct non-empty category slugs the change touches
func (ch Change) categories() []string {
	var res []string
	for _, slug := range []string{ch.Category, ch.PreviousCategory} {
		if slug == "" || (len(res) > 0 && res[0] == slug) {
			continue
		}
		res = append(res, slug)
	}
	return res
}

// write stores or deletes the changed record, rec is nil for delete and notify-only changes
func (s *FeedService) write(ctx context.Context, ch Change, rec any) error {
	var err error
	switch {
	case ch.Operation == OpDelete && ch.Collection == CollectionPosts:
		err = s.store.DeletePost(ctx, ch.ID)
	case ch.Operation == OpDelete && ch.Collection == CollectionAuthors:
		err = s.store.DeleteAuthor(ctx, ch.ID)
	case ch.Operation == OpDelete && ch.Collection == CollectionCategories:
		err = s.store.DeleteCategory(ctx, ch.ID)
	default:
		switch r := rec.(type) {
		case repository.SnapshotPost:
			err = s.store.UpsertPost(ctx, r.ToDomain())
		case repository.SnapshotAuthor:
			err = s.store.UpsertAuthor(ctx, r.ToDomain())
		case repository.SnapshotCategory:
			err = s.store.UpsertCategory(ctx, r.ToDomain())
		}
	}
	if err != nil {
		return fmt.Errorf("apply %s %s %s: %w", ch.Operation, ch.Collection, ch.ID, err)
	}
	return nil
}

// decodeRecord checks the change and decodes its document into a snapshot record.
// The change id is taken from the document when the payload has none.
func decodeRecord(ch *Change) (any, error) {
	switch ch.Collection {
	case CollectionPosts, CollectionAuthors, CollectionCategories:
	default:
		return nil, fmt.Errorf("%w: unknown collection %q", ErrBadChange, ch.Collection)
	}

	switch ch.Operation {
	case "":
		ch.Operation = OpUpdate
	case OpUpdate:
	case OpDelete:
		if ch.ID == "" {
			return nil, fmt.Errorf("%w: delete of %s without id", ErrBadChange, ch.Collection)
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", ErrBadChange, ch.Operation)
	}

	if len(ch.Doc) == 0 || string(ch.Doc) == "null" {
		return nil, nil
	}

	var rec any
	var id string
	var err error
	switch ch.Collection {
	case CollectionPosts:
		var p repository.SnapshotPost
		err = json.Unmarshal(ch.Doc, &p)
		rec, id = p, p.ID
	case CollectionAuthors:
		var a repository.SnapshotAuthor
		err = json.Unmarshal(ch.Doc, &a)
		rec, id = a, a.ID
	case CollectionCategories:
		var c repository.SnapshotCategory
		err = json.Unmarshal(ch.Doc, &c)
		rec, id = c, c.ID
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s document: %v", ErrBadChange, ch.Collection, err)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: %s document without id", ErrBadChange, ch.Collection)
	}
	if ch.ID != "" && ch.ID != id {
		return nil, fmt.Errorf("%w: change id %q doesn't match document id %q", ErrBadChange, ch.ID, id)
	}
	ch.ID = id
	return rec, nil
}

// ValidateFeeds serializes the site feed in every format and validates the output
func (s *FeedService) ValidateFeeds(ctx context.Context) (map[domain.Format]domain.ValidationResult, error) {
	doc, err := s.SiteFeed(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.Format]domain.ValidationResult, 3)
	for _, f := range []domain.Format{domain.FormatRSS, domain.FormatAtom, domain.FormatJSON} {
		out, err := feed.Serialize(doc, f)
		if err != nil {
			return nil, fmt.Errorf("serialize %s: %w", f, err)
		}
		res[f] = feed.Validate(out, f)
	}
	return res, nil
}

// CategorySlugs lists slugs of all known categories
func (s *FeedService) CategorySlugs(ctx context.Context) ([]string, error) {
	cats, err := s.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	res := make([]string, 0, len(cats))
	for _, c := range cats {
		res = append(res, c.Slug)
	}
	return res, nil
}

// CacheStats reports document cache state
func (s *FeedService) CacheStats(ctx context.Context) cache.Stats {
	return s.cache.Stat(ctx)
}

// entries loads published posts, resolves their relations and normalizes them
func (s *FeedService) entries(ctx context.Context) ([]domain.FeedEntry, error) {
	posts, err := s.store.FetchAllPublishedPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch published posts: %w", err)
	}
	posts = s.resolve(ctx, posts)
	return s.normalizer.NormalizeAll(posts, s.meta.SiteURL), nil
}

// resolve loads unresolved authors and categories. Lookups that fail leave the relation broken.
func (s *FeedService) resolve(ctx context.Context, posts []domain.Post) []domain.Post {
	authors := map[string]domain.Relation[domain.Author]{}
	var categories map[string]domain.Relation[domain.Category]

	res := make([]domain.Post, len(posts))
	for i, p := range posts {
		if p.Author.State() == domain.RelationUnresolved {
			ref := p.Author.RefID()
			rel, ok := authors[ref]
			if !ok {
				rel = s.resolveAuthor(ctx, ref)
				authors[ref] = rel
			}
			p.Author = rel
		}
		if p.Category.State() == domain.RelationUnresolved {
			if categories == nil {
				categories = s.loadCategories(ctx)
			}
			rel, ok := categories[p.Category.RefID()]
			if !ok {
				rel = domain.Broken[domain.Category](p.Category.RefID())
			}
			p.Category = rel
		}
		res[i] = p
	}
	return res
}

func (s *FeedService) resolveAuthor(ctx context.Context, id string) domain.Relation[domain.Author] {
	a, err := s.store.FetchAuthorByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			lgr.Printf("[WARN] can't resolve author %s: %v", id, err)
		}
		return domain.Broken[domain.Author](id)
	}
	return domain.Resolved(id, *a)
}

func (s *FeedService) loadCategories(ctx context.Context) map[string]domain.Relation[domain.Category] {
	res := map[string]domain.Relation[domain.Category]{}
	cats, err := s.store.Categories(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't load categories: %v", err)
		return res
	}
	for _, c := range cats {
		res[c.ID] = domain.Resolved(c.ID, c)
	}
	return res
}

// remember saves a document, cache failures are logged and ignored
func (s *FeedService) remember(ctx context.Context, key string, doc domain.FeedDocument, tags ...string) {
	if err := s.cache.Set(ctx, key, doc, s.ttl, tags...); err != nil {
		lgr.Printf("[WARN] can't cache %s: %v", key, err)
	}
}
