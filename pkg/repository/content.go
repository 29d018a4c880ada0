package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"

	"github.com/craftdays/craftfeed/pkg/domain"
)

// ContentRepository is the local mirror of CMS posts, authors and categories
type ContentRepository struct {
	db *sqlx.DB
}

// postSQL is a post row joined with its category, if the category exists
type postSQL struct {
	ID          string         `db:"id"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Excerpt     string         `db:"excerpt"`
	Body        string         `db:"body"`
	Status      string         `db:"status"`
	PublishedAt sql.NullTime   `db:"published_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
	CategoryID  string         `db:"category_id"`
	AuthorID    string         `db:"author_id"`
	ImageURL    string         `db:"image_url"`
	CatID       sql.NullString `db:"cat_id"`
	CatName     sql.NullString `db:"cat_name"`
	CatSlug     sql.NullString `db:"cat_slug"`
	CatDesc     sql.NullString `db:"cat_description"`
}

type authorSQL struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	ProfileURL string `db:"profile_url"`
}

type categorySQL struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// FetchAllPublishedPosts returns published posts, newest first.
// Categories are joined and come back resolved or broken, authors come back unresolved.
func (r *ContentRepository) FetchAllPublishedPosts(ctx context.Context) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.slug, p.title, p.excerpt, p.body, p.status, p.published_at, p.created_at,
		       p.updated_at, p.category_id, p.author_id, p.image_url,
		       c.id AS cat_id, c.name AS cat_name, c.slug AS cat_slug, c.description AS cat_description
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.status = ?
		ORDER BY COALESCE(p.published_at, p.created_at) DESC, p.id`

	var rows []postSQL
	if err := r.db.SelectContext(ctx, &rows, query, string(domain.PostPublished)); err != nil {
		return nil, fmt.Errorf("select published posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toDomain())
	}
	return posts, nil
}

// FetchCategoryBySlug returns a category, NotFoundError if there is no such slug
func (r *ContentRepository) FetchCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var row categorySQL
	err := r.db.GetContext(ctx, &row, `SELECT id, name, slug, description FROM categories WHERE slug = ?`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Kind: "category", Key: slug}
	}
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", slug, err)
	}
	return &domain.Category{ID: row.ID, Name: row.Name, Slug: row.Slug, Description: row.Description}, nil
}

// FetchAuthorByID returns an author, NotFoundError if there is no such id
func (r *ContentRepository) FetchAuthorByID(ctx context.Context, id string) (*domain.Author, error) {
	var row authorSQL
	err := r.db.GetContext(ctx, &row, `SELECT id, name, email, profile_url FROM authors WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Kind: "author", Key: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get author %s: %w", id, err)
	}
	return &domain.Author{ID: row.ID, Name: row.Name, Email: row.Email, ProfileURL: row.ProfileURL}, nil
}

// Categories returns all categories ordered by name
func (r *ContentRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	var rows []categorySQL
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, slug, description FROM categories ORDER BY name, slug`); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	res := make([]domain.Category, 0, len(rows))
	for _, c := range rows {
		res = append(res, domain.Category{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description})
	}
	return res, nil
}

// UpsertAuthor inserts or replaces an author
func (r *ContentRepository) UpsertAuthor(ctx context.Context, a domain.Author) error {
	return withRetry(ctx, func() error {
		return writeErr("upsert author", r.upsertAuthor(ctx, r.db, a))
	})
}

// UpsertCategory inserts or replaces a category
func (r *ContentRepository) UpsertCategory(ctx context.Context, c domain.Category) error {
	return withRetry(ctx, func() error {
		return writeErr("upsert category", r.upsertCategory(ctx, r.db, c))
	})
}

// UpsertPost inserts or replaces a post. Relations are stored by reference id only.
func (r *ContentRepository) UpsertPost(ctx context.Context, p domain.Post) error {
	return withRetry(ctx, func() error {
		return writeErr("upsert post", r.upsertPost(ctx, r.db, p))
	})
}

// DeletePost removes a post by id, missing posts are ignored
func (r *ContentRepository) DeletePost(ctx context.Context, id string) error {
	return withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
		return writeErr("delete post", err)
	})
}

// DeleteAuthor removes an author by id. Posts keep the reference and render without an author.
func (r *ContentRepository) DeleteAuthor(ctx context.Context, id string) error {
	return withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = ?`, id)
		return writeErr("delete author", err)
	})
}

// DeleteCategory removes a category by id. Posts keep the reference, it becomes broken.
func (r *ContentRepository) DeleteCategory(ctx context.Context, id string) error {
	return withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
		return writeErr("delete category", err)
	})
}

// PostCategorySlug returns the slug of the category a stored post belongs to.
// Empty string if the post is unknown, has no category or its category is gone.
func (r *ContentRepository) PostCategorySlug(ctx context.Context, postID string) (string, error) {
	var slug sql.NullString
	err := r.db.GetContext(ctx, &slug, `
		SELECT c.slug FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = ?`, postID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get category of post %s: %w", postID, err)
	}
	return slug.String, nil
}

// Snapshot is a full content export as produced by the CMS
type Snapshot struct {
	Authors    []SnapshotAuthor   `json:"authors"`
	Categories []SnapshotCategory `json:"categories"`
	Posts      []SnapshotPost     `json:"posts"`
}

// SnapshotAuthor is an author record of a snapshot
type SnapshotAuthor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// SnapshotCategory is a category record of a snapshot
type SnapshotCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// SnapshotPost is a post record of a snapshot, relations are reference ids
type SnapshotPost struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Excerpt     string          `json:"excerpt,omitempty"`
	Body        domain.RichText `json:"body"`
	Status      string          `json:"status"`
	PublishedAt *time.Time      `json:"published_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
	Category    string          `json:"category,omitempty"`
	Author      string          `json:"author,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// ImportStats counts imported records
type ImportStats struct {
	Authors    int `json:"authors"`
	Categories int `json:"categories"`
	Posts      int `json:"posts"`
}

// ImportSnapshot loads a snapshot into the mirror in one transaction.
// Existing records with the same ids are replaced, others are kept.
func (r *ContentRepository) ImportSnapshot(ctx context.Context, snap Snapshot) (ImportStats, error) {
	var stats ImportStats
	err := withRetry(ctx, func() error {
		stats = ImportStats{}
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return writeErr("begin import", err)
		}
		defer func() { _ = tx.Rollback() }()

		for _, a := range snap.Authors {
			if err := r.upsertAuthor(ctx, tx, a.ToDomain()); err != nil {
				return writeErr("import author "+a.ID, err)
			}
			stats.Authors++
		}
		for _, c := range snap.Categories {
			if err := r.upsertCategory(ctx, tx, c.ToDomain()); err != nil {
				return writeErr("import category "+c.ID, err)
			}
			stats.Categories++
		}
		for _, p := range snap.Posts {
			if err := r.upsertPost(ctx, tx, p.ToDomain()); err != nil {
				return writeErr("import post "+p.ID, err)
			}
			stats.Posts++
		}
		return writeErr("commit import", tx.Commit())
	})
	if err != nil {
		return ImportStats{}, err
	}
	lgr.Printf("[INFO] imported %d authors, %d categories, %d posts", stats.Authors, stats.Categories, stats.Posts)
	return stats, nil
}

func (r *ContentRepository) upsertAuthor(ctx context.Context, ex sqlx.ExecerContext, a domain.Author) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO authors (id, name, email, profile_url, synced_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, email = excluded.email,
			profile_url = excluded.profile_url, synced_at = CURRENT_TIMESTAMP`,
		a.ID, a.Name, a.Email, a.ProfileURL)
	return err
}

func (r *ContentRepository) upsertCategory(ctx context.Context, ex sqlx.ExecerContext, c domain.Category) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO categories (id, name, slug, description, synced_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, slug = excluded.slug,
			description = excluded.description, synced_at = CURRENT_TIMESTAMP`,
		c.ID, c.Name, c.Slug, c.Description)
	return err
}

func (r *ContentRepository) upsertPost(ctx context.Context, ex sqlx.ExecerContext, p domain.Post) error {
	body, err := json.Marshal(p.Body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	if p.Body == nil {
		body = []byte("[]")
	}
	status := p.Status
	if status == "" {
		status = domain.PostDraft
	}
	_, err = ex.ExecContext(ctx, `
		INSERT INTO posts (id, slug, title, excerpt, body, status, published_at, created_at, updated_at,
			category_id, author_id, image_url, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			slug = excluded.slug, title = excluded.title, excerpt = excluded.excerpt, body = excluded.body,
			status = excluded.status, published_at = excluded.published_at, created_at = excluded.created_at,
			updated_at = excluded.updated_at, category_id = excluded.category_id,
			author_id = excluded.author_id, image_url = excluded.image_url, synced_at = CURRENT_TIMESTAMP`,
		p.ID, p.Slug, p.Title, p.Excerpt, string(body), string(status), nullTime(p.PublishedAt),
		p.CreatedAt.UTC(), nullTime(p.UpdatedAt), p.Category.RefID(), p.Author.RefID(), p.ImageURL)
	return err
}

func (p postSQL) toDomain() domain.Post {
	post := domain.Post{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Status:    domain.PostStatus(p.Status),
		CreatedAt: p.CreatedAt.UTC(),
		ImageURL:  p.ImageURL,
	}
	if p.PublishedAt.Valid {
		t := p.PublishedAt.Time.UTC()
		post.PublishedAt = &t
	}
	if p.UpdatedAt.Valid {
		t := p.UpdatedAt.Time.UTC()
		post.UpdatedAt = &t
	}
	if err := json.Unmarshal([]byte(p.Body), &post.Body); err != nil {
		lgr.Printf("[WARN] post %s has malformed body, treated as empty: %v", p.ID, err)
		post.Body = nil
	}

	switch {
	case p.CategoryID == "":
	case p.CatID.Valid:
		post.Category = domain.Resolved(p.CategoryID, domain.Category{
			ID: p.CatID.String, Name: p.CatName.String, Slug: p.CatSlug.String, Description: p.CatDesc.String,
		})
	default:
		post.Category = domain.Broken[domain.Category](p.CategoryID)
	}
	if p.AuthorID != "" {
		post.Author = domain.Unresolved[domain.Author](p.AuthorID)
	}
	return post
}

// ToDomain converts an author record to the domain author
func (a SnapshotAuthor) ToDomain() domain.Author {
	return domain.Author{ID: a.ID, Name: a.Name, Email: a.Email, ProfileURL: a.ProfileURL}
}

// ToDomain converts a category record to the domain category
func (c SnapshotCategory) ToDomain() domain.Category {
	return domain.Category{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description}
}

// ToDomain converts a post record to a domain post with unresolved relations.
// Missing creation time is set to now.
func (p SnapshotPost) ToDomain() domain.Post {
	post := domain.Post{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Body:        p.Body,
		Status:      domain.PostStatus(p.Status),
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		ImageURL:    p.ImageURL,
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if p.Category != "" {
		post.Category = domain.Unresolved[domain.Category](p.Category)
	}
	if p.Author != "" {
		post.Author = domain.Unresolved[domain.Author](p.Author)
	}
	return post
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
