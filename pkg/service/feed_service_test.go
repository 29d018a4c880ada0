package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdays/craftfeed/pkg/cache"
	"github.com/craftdays/craftfeed/pkg/domain"
	"github.com/craftdays/craftfeed/pkg/repository"
	"github.com/craftdays/craftfeed/pkg/service/mocks"
)

var baseTime = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func testMeta() domain.ChannelMeta {
	return domain.ChannelMeta{
		Title:       "Craft",
		Description: "100 days of craft",
		SiteURL:     "https://craft.dev/",
		FeedURLs: domain.FeedURLs{
			RSS:  "https://craft.dev/rss.xml",
			Atom: "https://craft.dev/atom.xml",
			JSON: "https://craft.dev/feed.json",
		},
		Language:  "en",
		HubURL:    "https://hub.example.com/",
		Generator: "craftfeed",
		PageSize:  10,
	}
}

func textBody(s string) domain.RichText {
	return domain.RichText{{Type: domain.NodeParagraph, Children: []domain.RichTextNode{{Type: domain.NodeText, Text: s}}}}
}

func testPosts() []domain.Post {
	goCat := domain.Category{ID: "c1", Name: "Go", Slug: "go", Description: "go posts"}
	t1, t2, t3 := baseTime, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)
	return []domain.Post{
		{ID: "p1", Slug: "one", Title: "One", Status: domain.PostPublished, PublishedAt: &t1, CreatedAt: t1,
			Body: textBody("first"), Category: domain.Resolved("c1", goCat), Author: domain.Unresolved[domain.Author]("a1")},
		{ID: "p2", Slug: "two", Title: "Two", Status: domain.PostPublished, PublishedAt: &t2, CreatedAt: t2,
			Body: textBody("second"), Category: domain.Unresolved[domain.Category]("c2"), Author: domain.Unresolved[domain.Author]("a1")},
		{ID: "p3", Slug: "three", Title: "Three", Status: domain.PostPublished, PublishedAt: &t3, CreatedAt: t3,
			Body: textBody("third"), Category: domain.Unresolved[domain.Category]("gone"), Author: domain.Unresolved[domain.Author]("a2")},
	}
}

func testStore() *mocks.ContentStoreMock {
	return &mocks.ContentStoreMock{
		FetchAllPublishedPostsFunc: func(context.Context) ([]domain.Post, error) {
			return testPosts(), nil
		},
		FetchAuthorByIDFunc: func(_ context.Context, id string) (*domain.Author, error) {
			if id == "a1" {
				return &domain.Author{ID: "a1", Name: "Jamie", Email: "jamie@example.com"}, nil
			}
			return nil, &domain.NotFoundError{Kind: "author", Key: id}
		},
		CategoriesFunc: func(context.Context) ([]domain.Category, error) {
			return []domain.Category{
				{ID: "c1", Name: "Go", Slug: "go"},
				{ID: "c2", Name: "Rust", Slug: "rust"},
			}, nil
		},
		FetchCategoryBySlugFunc: func(_ context.Context, slug string) (*domain.Category, error) {
			switch slug {
			case "go":
				return &domain.Category{ID: "c1", Name: "Go", Slug: "go", Description: "go posts"}, nil
			case "empty":
				return &domain.Category{ID: "c9", Name: "Empty", Slug: "empty"}, nil
			}
			return nil, &domain.NotFoundError{Kind: "category", Key: slug}
		},
	}
}

func TestFeedService_SiteFeed(t *testing.T) {
	store := testStore()
	svc := NewFeedService(store, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
	ctx := context.Background()

	doc, err := svc.SiteFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Craft", doc.Title)
	assert.Equal(t, "https://craft.dev", doc.SiteURL)
	assert.Equal(t, "https://hub.example.com/", doc.HubURL)
	assert.Equal(t, baseTime.Add(2*time.Hour), doc.UpdatedAt)
	require.Len(t, doc.Entries, 3)

	t.Run("newest first", func(t *testing.T) {
		assert.Equal(t, "https://craft.dev/blog/uncategorized/three", doc.Entries[0].ID)
		assert.Equal(t, "https://craft.dev/blog/rust/two", doc.Entries[1].ID)
		assert.Equal(t, "https://craft.dev/blog/go/one", doc.Entries[2].ID)
	})

	t.Run("relations resolved once", func(t *testing.T) {
		assert.Equal(t, "Jamie", doc.Entries[1].Author.Name)
		assert.Equal(t, "Jamie", doc.Entries[2].Author.Name)
		assert.Equal(t, "Anonymous", doc.Entries[0].Author.Name)
		assert.Nil(t, doc.Entries[0].Category)
		require.NotNil(t, doc.Entries[1].Category)
		assert.Equal(t, "Rust", doc.Entries[1].Category.Name)

		assert.Len(t, store.FetchAuthorByIDCalls(), 2)
		assert.Len(t, store.CategoriesCalls(), 1)
	})

	t.Run("second call served from cache", func(t *testing.T) {
		again, err := svc.SiteFeed(ctx)
		require.NoError(t, err)
		assert.Equal(t, doc, again)
		assert.Len(t, store.FetchAllPublishedPostsCalls(), 1)
		assert.Equal(t, int64(1), svc.CacheStats(ctx).Hits)
	})
}

func TestFeedService_SiteFeedErrors(t *testing.T) {
	t.Run("store failure", func(t *testing.T) {
		store := testStore()
		store.FetchAllPublishedPostsFunc = func(context.Context) ([]domain.Post, error) {
			return nil, errors.New("db is gone")
		}
		svc := NewFeedService(store, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
		_, err := svc.SiteFeed(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch published posts: db is gone")
	})

	t.Run("lookup failures degrade", func(t *testing.T) {
		store := testStore()
		store.FetchAuthorByIDFunc = func(context.Context, string) (*domain.Author, error) {
			return nil, errors.New("timeout")
		}
		store.CategoriesFunc = func(context.Context) ([]domain.Category, error) {
			return nil, errors.New("timeout")
		}
		svc := NewFeedService(store, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
		doc, err := svc.SiteFeed(context.Background())
		require.NoError(t, err)
		require.Len(t, doc.Entries, 3)
		for _, e := range doc.Entries {
			assert.Equal(t, "Anonymous", e.Author.Name)
		}
		assert.Nil(t, doc.Entries[1].Category)
		require.NotNil(t, doc.Entries[2].Category, "joined category stays resolved")
	})

	t.Run("cache failure is not fatal", func(t *testing.T) {
		dc := &mocks.DocCacheMock{
			GetFunc: func(context.Context, string) (domain.FeedDocument, bool) { return domain.FeedDocument{}, false },
			SetFunc: func(context.Context, string, domain.FeedDocument, time.Duration, ...string) error {
				return errors.New("redis down")
			},
		}
		svc := NewFeedService(testStore(), dc, testMeta(), 5*time.Minute)
		doc, err := svc.SiteFeed(context.Background())
		require.NoError(t, err)
		assert.Len(t, doc.Entries, 3)
		require.Len(t, dc.SetCalls(), 1)
		assert.Equal(t, "feed:site", dc.SetCalls()[0].Key)
		assert.Equal(t, 5*time.Minute, dc.SetCalls()[0].Ttl)
		assert.Equal(t, []string{TagFeeds, TagSite}, dc.SetCalls()[0].Tags)
	})
}

func TestFeedService_CategoryFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("known category", func(t *testing.T) {
		svc := NewFeedService(testStore(), cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
		doc, err := svc.CategoryFeed(ctx, "go")
		require.NoError(t, err)
		assert.Equal(t, "Craft - Go", doc.Title)
		assert.Equal(t, "go posts", doc.Description)
		assert.Equal(t, domain.FeedURLs{RSS: "https://craft.dev/feeds/category/go.xml"}, doc.FeedURLs)
		require.NotNil(t, doc.Category)
		assert.Equal(t, "go", doc.Category.Slug)
		require.Len(t, doc.Entries, 1)
		assert.Equal(t, "https://craft.dev/blog/go/one", doc.Entries[0].ID)
	})

	t.Run("category without posts", func(t *testing.T) {
		svc := NewFeedService(testStore(), cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
		doc, err := svc.CategoryFeed(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, doc.Entries)
		assert.Equal(t, time.Unix(0, 0).UTC(), doc.UpdatedAt)
	})

	t.Run("unknown category", func(t *testing.T) {
		store := testStore()
		dc := cache.NewMemoryCache(time.Hour, 0)
		svc := NewFeedService(store, dc, testMeta(), time.Hour)
		_, err := svc.CategoryFeed(ctx, "nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, store.FetchAllPublishedPostsCalls())
		assert.Equal(t, int64(0), dc.Stat(ctx).Keys)
	})

	t.Run("lookup failure", func(t *testing.T) {
		store := testStore()
		store.FetchCategoryBySlugFunc = func(context.Context, string) (*domain.Category, error) {
			return nil, errors.New("db is gone")
		}
		svc := NewFeedService(store, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
		_, err := svc.CategoryFeed(ctx, "go")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "fetch category go")
	})
}

func TestFeedService_ApplyInvalidates(t *testing.T) {
	ctx := context.Background()
	store := testStore()
	svc := NewFeedService(store, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)

	warm := func(t *testing.T) {
		t.Helper()
		_, err := svc.SiteFeed(ctx)
		require.NoError(t, err)
		_, err = svc.CategoryFeed(ctx, "go")
		require.NoError(t, err)
		_, err = svc.CategoryFeed(ctx, "empty")
		require.NoError(t, err)
		require.Equal(t, int64(3), svc.CacheStats(ctx).Keys)
	}

	t.Run("post change drops site and its categories", func(t *testing.T) {
		warm(t)
		urls, err := svc.Apply(ctx, Change{Collection: "posts", Slug: "one", Category: "go", PreviousCategory: "go"})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://craft.dev/rss.xml", "https://craft.dev/atom.xml",
			"https://craft.dev/feed.json", "https://craft.dev/feeds/category/go.xml"}, urls)
		assert.Equal(t, int64(1), svc.CacheStats(ctx).Keys, "unrelated category stays cached")

		calls := len(store.FetchAllPublishedPostsCalls())
		_, err = svc.SiteFeed(ctx)
		require.NoError(t, err)
		assert.Len(t, store.FetchAllPublishedPostsCalls(), calls+1)
	})

	t.Run("post moved between categories drops both", func(t *testing.T) {
		warm(t)
		urls, err := svc.Apply(ctx, Change{Collection: "posts", Slug: "one", Category: "empty", PreviousCategory: "go"})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://craft.dev/rss.xml", "https://craft.dev/atom.xml", "https://craft.dev/feed.json",
			"https://craft.dev/feeds/category/empty.xml", "https://craft.dev/feeds/category/go.xml"}, urls)
		assert.Equal(t, int64(0), svc.CacheStats(ctx).Keys)
	})

	t.Run("unknown previous category drops everything", func(t *testing.T) {
		warm(t)
		urls, err := svc.Apply(ctx, Change{Collection: "posts", Slug: "one", Category: "empty"})
		require.NoError(t, err)
		assert.Equal(t, testMeta().FeedURLs.All(), urls)
		assert.Equal(t, int64(0), svc.CacheStats(ctx).Keys)
		assert.Empty(t, store.PostCategorySlugCalls(), "no id to look up")
	})

	t.Run("previous category looked up by post id", func(t *testing.T) {
		store.PostCategorySlugFunc = func(context.Context, string) (string, error) { return "go", nil }
		defer func() { store.PostCategorySlugFunc = nil }()
		warm(t)
		urls, err := svc.Apply(ctx, Change{Collection: "posts", ID: "p1", Slug: "one"})
		require.NoError(t, err)
		assert.Equal(t, "https://craft.dev/feeds/category/go.xml", urls[len(urls)-1])
		assert.Equal(t, int64(1), svc.CacheStats(ctx).Keys)
		assert.Equal(t, "p1", store.PostCategorySlugCalls()[0].PostID)
	})

	t.Run("other changes drop everything", func(t *testing.T) {
		warm(t)
		urls, err := svc.Apply(ctx, Change{Collection: "authors", Slug: "jamie"})
		require.NoError(t, err)
		assert.Equal(t, testMeta().FeedURLs.All(), urls)
		assert.Equal(t, int64(0), svc.CacheStats(ctx).Keys)
	})

	t.Run("cache error", func(t *testing.T) {
		dc := &mocks.DocCacheMock{
			InvalidateFunc: func(context.Context, ...string) error { return errors.New("redis down") },
		}
		svc := NewFeedService(testStore(), dc, testMeta(), time.Hour)
		_, err := svc.Apply(ctx, Change{Collection: "posts"})
		require.Error(t, err)
		assert.Equal(t, []string{TagFeeds}, dc.InvalidateCalls()[0].Tags)
	})
}

func TestFeedService_ApplyWrites(t *testing.T) {
	ctx := context.Background()
	newStore := func() *mocks.ContentStoreMock {
		store := testStore()
		store.PostCategorySlugFunc = func(context.Context, string) (string, error) { return "go", nil }
		store.UpsertPostFunc = func(context.Context, domain.Post) error { return nil }
		store.UpsertAuthorFunc = func(context.Context, domain.Author) error { return nil }
		store.UpsertCategoryFunc = func(context.Context, domain.Category) error { return nil }
		store.DeletePostFunc = func(context.Context, string) error { return nil }
		store.DeleteAuthorFunc = func(context.Context, string) error { return nil }
		store.DeleteCategoryFunc = func(context.Context, string) error { return nil }
		return store
	}

	t.Run("post document upserted", func(t *testing.T) {
		store := newStore()
		svc := NewFeedService(store, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
		doc := `{"id":"p1","slug":"one","title":"One, edited","status":"published","category":"c1","author":"a1"}`
		_, err := svc.Apply(ctx, Change{Collection: "posts", Doc: []byte(doc)})
		require.NoError(t, err)

		require.Len(t, store.UpsertPostCalls(), 1)
		p := store.UpsertPostCalls()[0].P
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, "One, edited", p.Title)
		assert.Equal(t, domain.PostPublished, p.Status)
		assert.Equal(t, "c1", p.Category.RefID())
		assert.Len(t, store.PostCategorySlugCalls(), 2, "before and after the write")
	})

	t.Run("author and category documents upserted", func(t *testing.T) {
		store := newStore()
		svc := NewFeedService(store, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
		_, err := svc.Apply(ctx, Change{Collection: "authors", ID: "a1", Doc: []byte(`{"id":"a1","name":"Jamie R."}`)})
		require.NoError(t, err)
		_, err = svc.Apply(ctx, Change{Collection: "categories", Doc: []byte(`{"id":"c1","name":"Golang","slug":"go"}`)})
		require.NoError(t, err)

		require.Len(t, store.UpsertAuthorCalls(), 1)
		assert.Equal(t, domain.Author{ID: "a1", Name: "Jamie R."}, store.UpsertAuthorCalls()[0].A)
		require.Len(t, store.UpsertCategoryCalls(), 1)
		assert.Equal(t, domain.Category{ID: "c1", Name: "Golang", Slug: "go"}, store.UpsertCategoryCalls()[0].C)
		assert.Empty(t, store.PostCategorySlugCalls())
	})

	t.Run("deletes", func(t *testing.T) {
		store := newStore()
		svc := NewFeedService(store, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
		urls, err := svc.Apply(ctx, Change{Collection: "posts", Operation: "delete", ID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, "https://craft.dev/feeds/category/go.xml", urls[len(urls)-1])
		_, err = svc.Apply(ctx, Change{Collection: "authors", Operation: "delete", ID: "a1"})
		require.NoError(t, err)
		_, err = svc.Apply(ctx, Change{Collection: "categories", Operation: "delete", ID: "c1"})
		require.NoError(t, err)

		assert.Equal(t, "p1", store.DeletePostCalls()[0].ID)
		assert.Equal(t, "a1", store.DeleteAuthorCalls()[0].ID)
		assert.Equal(t, "c1", store.DeleteCategoryCalls()[0].ID)
		assert.Empty(t, store.UpsertPostCalls())
	})

	t.Run("bad changes", func(t *testing.T) {
		tbl := []struct {
			name string
			ch   Change
		}{
			{"unknown collection", Change{Collection: "pages"}},
			{"unknown operation", Change{Collection: "posts", Operation: "archive"}},
			{"delete without id", Change{Collection: "posts", Operation: "delete"}},
			{"broken document", Change{Collection: "posts", Doc: []byte(`{"id":`)}},
			{"document without id", Change{Collection: "authors", Doc: []byte(`{"name":"x"}`)}},
			{"id mismatch", Change{Collection: "posts", ID: "p2", Doc: []byte(`{"id":"p1"}`)}},
		}
		for _, tt := range tbl {
			t.Run(tt.name, func(t *testing.T) {
				store := newStore()
				svc := NewFeedService(store, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
				_, err := svc.Apply(ctx, tt.ch)
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadChange)
				assert.Empty(t, store.UpsertPostCalls())
				assert.Empty(t, store.DeletePostCalls())
			})
		}
	})

	t.Run("store failure", func(t *testing.T) {
		store := newStore()
		store.UpsertPostFunc = func(context.Context, domain.Post) error { return errors.New("disk full") }
		dc := cache.NewMemoryCache(time.Hour, 0)
		svc := NewFeedService(store, dc, testMeta(), time.Hour)
		_, err := svc.SiteFeed(ctx)
		require.NoError(t, err)

		_, err = svc.Apply(ctx, Change{Collection: "posts", Doc: []byte(`{"id":"p1"}`)})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrBadChange)
		assert.Contains(t, err.Error(), "apply update posts p1")
		assert.Equal(t, int64(1), dc.Stat(ctx).Keys, "nothing invalidated")
	})
}

func TestFeedService_ApplyMovedPost(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })

	published := baseTime
	_, err = repos.Content.ImportSnapshot(ctx, repository.Snapshot{
		Categories: []repository.SnapshotCategory{{ID: "c1", Name: "Go", Slug: "go"}, {ID: "c2", Name: "Rust", Slug: "rust"}},
		Posts: []repository.SnapshotPost{{ID: "p1", Slug: "one", Title: "One", Status: "published",
			PublishedAt: &published, CreatedAt: published, Category: "c1"}},
	})
	require.NoError(t, err)

	svc := NewFeedService(repos.Content, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
	goFeed, err := svc.CategoryFeed(ctx, "go")
	require.NoError(t, err)
	require.Len(t, goFeed.Entries, 1)

	doc := `{"id":"p1","slug":"one","title":"One","status":"published","published_at":"2024-03-05T10:00:00Z","category":"c2"}`
	urls, err := svc.Apply(ctx, Change{Collection: "posts", Slug: "one", Category: "rust", Doc: []byte(doc)})
	require.NoError(t, err)
	assert.Contains(t, urls, "https://craft.dev/feeds/category/go.xml")
	assert.Contains(t, urls, "https://craft.dev/feeds/category/rust.xml")

	goFeed, err = svc.CategoryFeed(ctx, "go")
	require.NoError(t, err)
	assert.Empty(t, goFeed.Entries, "old category feed rebuilt without the moved post")

	rustFeed, err := svc.CategoryFeed(ctx, "rust")
	require.NoError(t, err)
	require.Len(t, rustFeed.Entries, 1)
	assert.Equal(t, "https://craft.dev/blog/rust/one", rustFeed.Entries[0].ID)

	t.Run("delete drops the post from its category feed", func(t *testing.T) {
		urls, err := svc.Apply(ctx, Change{Collection: "posts", Operation: "delete", ID: "p1"})
		require.NoError(t, err)
		assert.Contains(t, urls, "https://craft.dev/feeds/category/rust.xml")

		rustFeed, err := svc.CategoryFeed(ctx, "rust")
		require.NoError(t, err)
		assert.Empty(t, rustFeed.Entries)
	})
}

func TestFeedService_FeedBaseURL(t *testing.T) {
	meta := testMeta()
	meta.SiteURL = "https://blog.example.com"
	meta.FeedBaseURL = "https://feeds.example.com/"
	meta.FeedURLs = domain.FeedURLs{
		RSS:  "https://feeds.example.com/rss.xml",
		Atom: "https://feeds.example.com/atom.xml",
		JSON: "https://feeds.example.com/feed.json",
	}
	ctx := context.Background()
	svc := NewFeedService(testStore(), cache.NewMemoryCache(time.Hour, 0), meta, time.Hour)

	assert.Equal(t, "https://feeds.example.com/feeds/category/go.xml", svc.CategoryFeedURL("go"))

	doc, err := svc.CategoryFeed(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, "https://feeds.example.com/feeds/category/go.xml", doc.FeedURLs.RSS)
	assert.Equal(t, "https://blog.example.com", doc.SiteURL)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "https://blog.example.com/blog/go/one", doc.Entries[0].ID, "entry links stay on the site")

	urls, err := svc.Apply(ctx, Change{Collection: "posts", Slug: "one", Category: "go", PreviousCategory: "go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://feeds.example.com/rss.xml", "https://feeds.example.com/atom.xml",
		"https://feeds.example.com/feed.json", "https://feeds.example.com/feeds/category/go.xml"}, urls)
	for _, u := range urls {
		assert.NotContains(t, u, "blog.example.com")
	}
}

func TestFeedService_ValidateFeeds(t *testing.T) {
	svc := NewFeedService(testStore(), cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
	res, err := svc.ValidateFeeds(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 3)
	for f, r := range res {
		assert.True(t, r.Valid, "format %s: %v", f, r.Errors)
		assert.Empty(t, r.Errors, "format %s", f)
	}
}

func TestFeedService_Meta(t *testing.T) {
	svc := NewFeedService(testStore(), cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
	assert.Equal(t, "https://craft.dev", svc.Meta().SiteURL)
	assert.Equal(t, "https://craft.dev/feeds/category/rust.xml", svc.CategoryFeedURL("rust"))
}

func TestFeedService_CategorySlugs(t *testing.T) {
	store := testStore()
	svc := NewFeedService(store, cache.NewMemoryCache(time.Hour, 0), testMeta(), time.Hour)
	slugs, err := svc.CategorySlugs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, slugs)

	store.CategoriesFunc = func(context.Context) ([]domain.Category, error) { return nil, errors.New("db is gone") }
	_, err = svc.CategorySlugs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load categories")
}
