package feed

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/craftdays/craftfeed/pkg/domain"
)

// rssDateLayouts are RFC-822 variants accepted for pubDate and lastBuildDate
var rssDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
}

// Validate checks feed content against the rules of the given format.
// It never fails, parse problems are reported as validation errors.
func Validate(content string, format domain.Format) domain.ValidationResult {
	v := &validation{}
	switch format {
	case domain.FormatRSS:
		v.rss(content)
	case domain.FormatAtom:
		v.atom(content)
	case domain.FormatJSON:
		v.jsonFeed(content)
	default:
		v.errorf("unsupported feed format %q", format)
	}
	return v.result()
}

// DetectFormat sniffs the format of feed content
func DetectFormat(content string) (domain.Format, error) {
	switch gofeed.DetectFeedType(strings.NewReader(content)) {
	case gofeed.FeedTypeRSS:
		return domain.FormatRSS, nil
	case gofeed.FeedTypeAtom:
		return domain.FormatAtom, nil
	case gofeed.FeedTypeJSON:
		return domain.FormatJSON, nil
	default:
		return "", errors.New("unknown feed format")
	}
}

// ValidateDetected detects the format of content and validates it
func ValidateDetected(content string) (domain.Format, domain.ValidationResult) {
	f, err := DetectFormat(content)
	if err != nil {
		v := &validation{}
		v.errorf("%v", err)
		return "", v.result()
	}
	return f, Validate(content, f)
}

type validation struct {
	errs     []string
	warnings []string
}

func (v *validation) errorf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Sprintf(format, args...))
}

func (v *validation) warnf(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validation) result() domain.ValidationResult {
	res := domain.ValidationResult{Valid: len(v.errs) == 0, Errors: []string{}, Warnings: []string{}}
	res.Errors = append(res.Errors, v.errs...)
	res.Warnings = append(res.Warnings, v.warnings...)
	return res
}

func (v *validation) rss(content string) {
	root, err := parseXML(content)
	if err != nil {
		v.errorf("invalid XML: %v", err)
		return
	}
	if root.name.Local != "rss" {
		v.errorf("root element is <%s>, expected <rss>", root.name.Local)
		return
	}
	if ver := root.attr("version"); ver != "2.0" {
		v.warnf("rss version %q, expected 2.0", ver)
	}

	channel := root.child("", "channel")
	if channel == nil {
		v.errorf("missing <channel>")
		return
	}
	for _, name := range []string{"title", "link", "description"} {
		if channel.childText("", name) == "" {
			v.errorf("channel: missing <%s>", name)
		}
	}
	if d := channel.child("", "lastBuildDate"); d != nil && !validRSSDate(d.value()) {
		v.errorf("channel: invalid <lastBuildDate> %q", d.value())
	}

	items := channel.children("", "item")
	if len(items) == 0 {
		v.warnf("no items in feed")
	}
	for i, item := range items {
		n := i + 1
		if item.childText("", "title") == "" && item.childText("", "description") == "" {
			v.errorf("item %d: must have <title> or <description>", n)
		}
		if item.childText("", "link") == "" {
			v.warnf("item %d: missing <link>", n)
		}
		if item.childText("", "guid") == "" {
			v.warnf("item %d: missing <guid>", n)
		}
		switch d := item.child("", "pubDate"); {
		case d == nil || d.value() == "":
			v.warnf("item %d: missing <pubDate>", n)
		case !validRSSDate(d.value()):
			v.errorf("item %d: invalid <pubDate> %q", n, d.value())
		}
	}
}

func (v *validation) atom(content string) {
	root, err := parseXML(content)
	if err != nil {
		v.errorf("invalid XML: %v", err)
		return
	}
	if root.name.Local != "feed" {
		v.errorf("root element is <%s>, expected <feed>", root.name.Local)
		return
	}
	if root.name.Space != nsAtom {
		v.warnf("feed is not in the %s namespace", nsAtom)
	}

	for _, name := range []string{"title", "id"} {
		if root.atomText(name) == "" {
			v.errorf("feed: missing <%s>", name)
		}
	}
	v.atomDate("feed", root, "updated", true)
	feedAuthor := root.atomChild("author") != nil

	entries := root.atomChildren("entry")
	if len(entries) == 0 {
		v.warnf("no items in feed")
	}
	for i, entry := range entries {
		where := fmt.Sprintf("entry %d", i+1)
		for _, name := range []string{"title", "id"} {
			if entry.atomText(name) == "" {
				v.errorf("%s: missing <%s>", where, name)
			}
		}
		v.atomDate(where, entry, "updated", true)
		v.atomDate(where, entry, "published", false)

		content, summary := entry.atomChild("content"), entry.atomChild("summary")
		switch {
		case content == nil && summary == nil:
			v.errorf("%s: must have <content> or <summary>", where)
		case summary == nil:
			v.warnf("%s: missing <summary>", where)
		}
		if !feedAuthor && entry.atomChild("author") == nil {
			v.warnf("%s: missing <author>", where)
		}
		if entry.atomChild("link") == nil {
			v.warnf("%s: missing <link>", where)
		}
	}
}

// atomDate checks an RFC 3339 date element, required ones produce an error when absent
func (v *validation) atomDate(where string, n *xmlNode, name string, required bool) {
	el := n.atomChild(name)
	if el == nil || el.value() == "" {
		if required {
			v.errorf("%s: missing <%s>", where, name)
		}
		return
	}
	if _, err := time.Parse(time.RFC3339, el.value()); err != nil {
		v.errorf("%s: invalid <%s> %q", where, name, el.value())
	}
}

func (v *validation) jsonFeed(content string) {
	var feed struct {
		Version     string      `json:"version"`
		Title       string      `json:"title"`
		HomePageURL string      `json:"home_page_url"`
		FeedURL     string      `json:"feed_url"`
		Items       *[]jsonItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(content), &feed); err != nil {
		v.errorf("invalid JSON: %v", err)
		return
	}

	if !strings.HasPrefix(feed.Version, "https://jsonfeed.org/version/1") {
		v.errorf("version %q is not a JSON Feed 1.x version", feed.Version)
	}
	if strings.TrimSpace(feed.Title) == "" {
		v.errorf("missing title")
	}
	if feed.HomePageURL == "" {
		v.warnf("missing home_page_url")
	}
	if feed.FeedURL == "" {
		v.warnf("missing feed_url")
	}
	if feed.Items == nil {
		v.errorf("missing items")
		return
	}

	if len(*feed.Items) == 0 {
		v.warnf("no items in feed")
	}
	for i, item := range *feed.Items {
		n := i + 1
		if item.ID == "" {
			v.errorf("item %d: missing id", n)
		}
		if item.ContentHTML == "" && item.ContentText == "" {
			v.errorf("item %d: must have content_html or content_text", n)
		}
		if item.Summary == "" {
			v.warnf("item %d: missing summary", n)
		}
		switch {
		case item.DatePublished == "":
			v.warnf("item %d: missing date_published", n)
		case !validRFC3339(item.DatePublished):
			v.errorf("item %d: invalid date_published %q", n, item.DatePublished)
		}
		if item.DateModified != "" && !validRFC3339(item.DateModified) {
			v.errorf("item %d: invalid date_modified %q", n, item.DateModified)
		}
	}
}

func validRSSDate(s string) bool {
	for _, layout := range rssDateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func validRFC3339(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// xmlNode is a minimal element tree used for structural checks
type xmlNode struct {
	name  xml.Name
	attrs []xml.Attr
	text  strings.Builder
	kids  []*xmlNode
}

// parseXML builds an element tree, any well-formedness problem is an error
func parseXML(content string) (*xmlNode, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var root *xmlNode
	var stack []*xmlNode
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &xmlNode{name: t.Name, attrs: t.Copy().Attr}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.kids = append(parent.kids, n)
			} else if root != nil {
				return nil, errors.New("multiple root elements")
			} else {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

func (n *xmlNode) value() string { return strings.TrimSpace(n.text.String()) }

func (n *xmlNode) attr(local string) string {
	for _, a := range n.attrs {
		if a.Name.Local == local && a.Name.Space == "" {
			return a.Value
		}
	}
	return ""
}

func (n *xmlNode) children(space, local string) []*xmlNode {
	var res []*xmlNode
	for _, k := range n.kids {
		if k.name.Space == space && k.name.Local == local {
			res = append(res, k)
		}
	}
	return res
}

func (n *xmlNode) child(space, local string) *xmlNode {
	if res := n.children(space, local); len(res) > 0 {
		return res[0]
	}
	return nil
}

func (n *xmlNode) childText(space, local string) string {
	if c := n.child(space, local); c != nil {
		return c.value()
	}
	return ""
}

// atomChildren matches elements in the Atom namespace, or without namespace for lax documents
func (n *xmlNode) atomChildren(local string) []*xmlNode {
	if res := n.children(nsAtom, local); len(res) > 0 {
		return res
	}
	return n.children("", local)
}

func (n *xmlNode) atomChild(local string) *xmlNode {
	if res := n.atomChildren(local); len(res) > 0 {
		return res[0]
	}
	return nil
}

func (n *xmlNode) atomText(local string) string {
	if c := n.atomChild(local); c != nil {
		return c.value()
	}
	return ""
}
