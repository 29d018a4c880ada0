package feed

import (
	"encoding/xml"
	"fmt"
	"mime"
	"net/url"
	"path"
	"time"

	"github.com/craftdays/craftfeed/pkg/domain"
)

// ToRSS2 serializes a feed document as RSS 2.0 with content, dc and atom extensions
func ToRSS2(doc domain.FeedDocument) (string, error) {
	channel := &rssChannel{
		Title:         doc.Title,
		Link:          siteLink(doc),
		Description:   doc.Description,
		Language:      doc.Language,
		Generator:     doc.Generator,
		LastBuildDate: doc.UpdatedAt.UTC().Format(time.RFC1123Z),
		Items:         make([]*rssItem, 0, len(doc.Entries)),
	}
	if channel.Description == "" {
		channel.Description = doc.Title
	}
	if doc.FeedURLs.RSS != "" {
		channel.AtomLinks = append(channel.AtomLinks, atomLink{Href: doc.FeedURLs.RSS, Rel: "self", Type: "application/rss+xml"})
	}
	if doc.HubURL != "" {
		channel.AtomLinks = append(channel.AtomLinks, atomLink{Href: doc.HubURL, Rel: "hub"})
	}
	if doc.Category != nil {
		channel.Category = doc.Category.Name
	}

	for _, e := range doc.Entries {
		channel.Items = append(channel.Items, rssEntry(e))
	}

	feed := &rssFeed{
		Version: "2.0",
		Atom:    nsAtom,
		Content: nsContent,
		DC:      nsDC,
		Channel: channel,
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func rssEntry(e domain.FeedEntry) *rssItem {
	item := &rssItem{
		Title:       e.Title,
		Link:        e.Link,
		GUID:        rssGUID{IsPermaLink: "true", Value: e.ID},
		Description: e.Summary,
		Content:     e.ContentHTML,
		Creator:     e.Author.Name,
		PubDate:     e.PublishedAt.UTC().Format(time.RFC1123Z),
	}
	if e.ID != e.Link {
		item.GUID.IsPermaLink = "false"
	}
	// rss author element must be an email address
	if e.Author.Email != "" {
		item.Author = fmt.Sprintf("%s (%s)", e.Author.Email, e.Author.Name)
	}
	if e.Category != nil {
		item.Categories = []string{e.Category.Name}
	}
	if e.Image != "" {
		item.Enclosure = &rssEnclosure{URL: e.Image, Length: "0", Type: imageType(e.Image)}
	}
	return item
}

// imageType guesses mime type of an image by its extension
func imageType(link string) string {
	p := link
	if u, err := url.Parse(link); err == nil {
		p = u.Path
	}
	if t := mime.TypeByExtension(path.Ext(p)); t != "" {
		return t
	}
	return "image/jpeg"
}

func siteLink(doc domain.FeedDocument) string {
	if doc.SiteURL == "" {
		return "/"
	}
	return doc.SiteURL + "/"
}
