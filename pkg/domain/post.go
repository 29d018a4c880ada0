package domain

import "time"

// PostStatus is the publication state of a CMS post
type PostStatus string

const (
	PostPublished PostStatus = "published"
	PostDraft     PostStatus = "draft"
)

// Post represents a raw blog post record as stored by the CMS
type Post struct {
	ID          string
	Slug        string
	Title       string
	Excerpt     string // optional, derived from body when empty
	Body        RichText
	Status      PostStatus
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Category    Relation[Category]
	Author      Relation[Author]
	ImageURL    string // optional, may be relative
}

// Author represents a post author
type Author struct {
	ID         string
	Name       string
	Email      string
	ProfileURL string
}

// Category represents a blog category
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
}

// RelationState describes how far a CMS relationship field got resolved
type RelationState int

const (
	// RelationBroken means the reference is missing or points to a deleted record
	RelationBroken RelationState = iota
	// RelationUnresolved means the reference id is known but the record was not loaded
	RelationUnresolved
	// RelationResolved means the related record is available
	RelationResolved
)

// String returns a human-readable relation state
func (s RelationState) String() string {
	switch s {
	case RelationResolved:
		return "resolved"
	case RelationUnresolved:
		return "unresolved"
	default:
		return "broken"
	}
}

// Relation is a lazily-resolved CMS reference. The zero value is a broken relation with no ref.
type Relation[T any] struct {
	state RelationState
	ref   string
	value T
}

// Resolved makes a relation holding the related record
func Resolved[T any](ref string, v T) Relation[T] {
	return Relation[T]{state: RelationResolved, ref: ref, value: v}
}

// Unresolved makes a relation that only knows the referenced id
func Unresolved[T any](ref string) Relation[T] {
	return Relation[T]{state: RelationUnresolved, ref: ref}
}

// Broken makes a relation pointing to a record that could not be found
func Broken[T any](ref string) Relation[T] {
	return Relation[T]{state: RelationBroken, ref: ref}
}

// State returns relation state
func (r Relation[T]) State() RelationState { return r.state }

// RefID returns referenced record id, empty if the relation was never set
func (r Relation[T]) RefID() string { return r.ref }

// Value returns the related record and true only for resolved relations
func (r Relation[T]) Value() (T, bool) {
	if r.state != RelationResolved {
		var zero T
		return zero, false
	}
	return r.value, true
}

// RichTextNodeType enumerates supported rich text node kinds
type RichTextNodeType string

const (
	NodeParagraph RichTextNodeType = "paragraph"
	NodeHeading   RichTextNodeType = "heading"
	NodeText      RichTextNodeType = "text"
	NodeLink      RichTextNodeType = "link"
	NodeList      RichTextNodeType = "list"
	NodeListItem  RichTextNodeType = "listitem"
	NodeQuote     RichTextNodeType = "quote"
	NodeCode      RichTextNodeType = "code"
	NodeImage     RichTextNodeType = "image"
	NodeLineBreak RichTextNodeType = "linebreak"
	NodeHTML      RichTextNodeType = "html"
)

// TextFormat is a bitmask of inline text styles
type TextFormat int

const (
	FormatBold TextFormat = 1 << iota
	FormatItalic
	FormatStrikethrough
	FormatUnderline
	FormatCode
)

// RichTextNode is one node of the CMS rich text tree
type RichTextNode struct {
	Type     RichTextNodeType `json:"type"`
	Text     string           `json:"text,omitempty"`
	Tag      string           `json:"tag,omitempty"` // heading level, e.g. h2
	URL      string           `json:"url,omitempty"`
	Alt      string           `json:"alt,omitempty"`
	Format   TextFormat       `json:"format,omitempty"`
	Ordered  bool             `json:"ordered,omitempty"`
	Children []RichTextNode   `json:"children,omitempty"`
}

// RichText is the post body as a sequence of top-level nodes
type RichText []RichTextNode
