package feed

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdays/craftfeed/pkg/domain"
)

func testDoc() domain.FeedDocument {
	e1 := testEntry("day-1", "go", baseTime)
	e1.Image = "https://craft.dev/media/a.png"
	upd := baseTime.Add(24 * time.Hour)
	e1.UpdatedAt = &upd
	e2 := testEntry("day-2", "uncategorized", baseTime.Add(time.Hour))
	return BuildFeed([]domain.FeedEntry{e1, e2}, testMeta())
}

var allFormats = []domain.Format{domain.FormatRSS, domain.FormatAtom, domain.FormatJSON}

func TestToRSS2(t *testing.T) {
	rss, err := ToRSS2(testDoc())
	require.NoError(t, err)

	// check basic structure
	assert.True(t, strings.HasPrefix(rss, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:dc="http://purl.org/dc/elements/1.1/">`)
	assert.Contains(t, rss, `<title>100 Days of Craft</title>`)
	assert.Contains(t, rss, `<link>https://craft.dev/</link>`)
	assert.Contains(t, rss, `<description>Daily coding challenge notes</description>`)
	assert.Contains(t, rss, `<language>en</language>`)
	assert.Contains(t, rss, `<lastBuildDate>Wed, 06 Mar 2024 10:00:00 +0000</lastBuildDate>`)
	assert.Contains(t, rss, `<atom:link href="https://craft.dev/rss.xml" rel="self" type="application/rss+xml"></atom:link>`)
	assert.Contains(t, rss, `<atom:link href="https://hub.example.com/" rel="hub"></atom:link>`)

	// check items
	assert.Contains(t, rss, `<guid isPermaLink="true">https://craft.dev/blog/go/day-1</guid>`)
	assert.Contains(t, rss, `<pubDate>Tue, 05 Mar 2024 10:00:00 +0000</pubDate>`)
	assert.Contains(t, rss, `<dc:creator>Jamie</dc:creator>`)
	assert.Contains(t, rss, `<author>jamie@example.com (Jamie)</author>`)
	assert.Contains(t, rss, `<category>Category go</category>`)
	assert.Contains(t, rss, `<content:encoded>&lt;p&gt;Hello from day-1&lt;/p&gt;</content:encoded>`)
	assert.Contains(t, rss, `<enclosure url="https://craft.dev/media/a.png" length="0" type="image/png"></enclosure>`)

	// newest first
	assert.Less(t, strings.Index(rss, "Post day-2"), strings.Index(rss, "Post day-1"))
}

func TestToAtom1(t *testing.T) {
	atom, err := ToAtom1(testDoc())
	require.NoError(t, err)

	assert.Contains(t, atom, `<feed xmlns="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, atom, `<title type="text">100 Days of Craft</title>`)
	assert.Contains(t, atom, `<id>https://craft.dev/atom.xml</id>`)
	assert.Contains(t, atom, `<updated>2024-03-06T10:00:00Z</updated>`)
	assert.Contains(t, atom, `<link href="https://craft.dev/atom.xml" rel="self" type="application/atom+xml"></link>`)
	assert.Contains(t, atom, `<link href="https://hub.example.com/" rel="hub"></link>`)
	assert.Contains(t, atom, `<generator>craftfeed</generator>`)

	assert.Contains(t, atom, `<id>https://craft.dev/blog/go/day-1</id>`)
	assert.Contains(t, atom, `<published>2024-03-05T10:00:00Z</published>`)
	assert.Contains(t, atom, `<category term="go" label="Category go"></category>`)
	assert.Contains(t, atom, `<content type="html">&lt;p&gt;Hello from day-1&lt;/p&gt;</content>`)
	assert.Contains(t, atom, `<summary type="text">Summary of day-1</summary>`)
	assert.Contains(t, atom, `<name>Jamie</name>`)
}

func TestToJSONFeed1(t *testing.T) {
	out, err := ToJSONFeed1(testDoc())
	require.NoError(t, err)

	var feed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &feed))
	assert.Equal(t, JSONFeedVersion, feed["version"])
	assert.Equal(t, "100 Days of Craft", feed["title"])
	assert.Equal(t, "https://craft.dev/", feed["home_page_url"])
	assert.Equal(t, "https://craft.dev/feed.json", feed["feed_url"])
	assert.Equal(t, []any{map[string]any{"type": "WebSub", "url": "https://hub.example.com/"}}, feed["hubs"])

	items, ok := feed["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	second := items[1].(map[string]any)
	assert.Equal(t, "https://craft.dev/blog/go/day-1", second["id"])
	assert.Equal(t, "<p>Hello from day-1</p>", second["content_html"])
	assert.Equal(t, "2024-03-05T10:00:00Z", second["date_published"])
	assert.Equal(t, "2024-03-06T10:00:00Z", second["date_modified"])
	assert.Equal(t, "https://craft.dev/media/a.png", second["image"])
	assert.Equal(t, []any{"Category go"}, second["tags"])

	t.Run("empty feed keeps items array", func(t *testing.T) {
		out, err := ToJSONFeed1(BuildFeed(nil, testMeta()))
		require.NoError(t, err)
		assert.Contains(t, out, `"items": []`)
	})
}

func TestSerializers_Idempotent(t *testing.T) {
	doc := testDoc()
	for _, f := range allFormats {
		t.Run(string(f), func(t *testing.T) {
			first, err := Serialize(doc, f)
			require.NoError(t, err)
			second, err := Serialize(doc, f)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestSerializers_RoundTripValid(t *testing.T) {
	doc := testDoc()
	parser := gofeed.NewParser()
	for _, f := range allFormats {
		t.Run(string(f), func(t *testing.T) {
			out, err := Serialize(doc, f)
			require.NoError(t, err)

			res := Validate(out, f)
			assert.True(t, res.Valid, "errors: %v", res.Errors)
			assert.Empty(t, res.Errors)
			assert.Empty(t, res.Warnings)

			detected, err := DetectFormat(out)
			require.NoError(t, err)
			assert.Equal(t, f, detected)

			parsed, err := parser.ParseString(out)
			require.NoError(t, err)
			require.Len(t, parsed.Items, 2)
			assert.Equal(t, "Post day-2", parsed.Items[0].Title)
			assert.Equal(t, "Post day-1", parsed.Items[1].Title)
		})
	}
}

func TestSerializers_Escaping(t *testing.T) {
	title := `Test & "Quotes" <tag>`
	e := testEntry("esc", "go", baseTime)
	e.Title = title
	e.Summary = "1 < 2 && 3 > 2"
	e.ContentHTML = `<p>a &amp; b</p><script>]]></script>`
	doc := BuildFeed([]domain.FeedEntry{e}, testMeta())

	rss, err := ToRSS2(doc)
	require.NoError(t, err)
	assert.Contains(t, rss, `Test &amp; &#34;Quotes&#34; &lt;tag&gt;`)
	assertWellFormed(t, rss)

	atom, err := ToAtom1(doc)
	require.NoError(t, err)
	assert.Contains(t, atom, `Test &amp; &#34;Quotes&#34; &lt;tag&gt;`)
	assertWellFormed(t, atom)

	js, err := ToJSONFeed1(doc)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(js)))
	assert.Contains(t, js, `"title": "Test & \"Quotes\" <tag>"`)

	parser := gofeed.NewParser()
	for _, out := range []string{rss, atom, js} {
		parsed, err := parser.ParseString(out)
		require.NoError(t, err)
		require.Len(t, parsed.Items, 1)
		assert.Equal(t, title, parsed.Items[0].Title)
	}
}

func TestSerializers_EntryWithoutText(t *testing.T) {
	e := testEntry("bare", "go", baseTime)
	e.Summary, e.ContentHTML = "", ""
	doc := BuildFeed([]domain.FeedEntry{e}, testMeta())

	for _, f := range allFormats {
		out, err := Serialize(doc, f)
		require.NoError(t, err)
		res := Validate(out, f)
		assert.True(t, res.Valid, "%s: %v", f, res.Errors)
	}

	atom, err := ToAtom1(doc)
	require.NoError(t, err)
	assert.Contains(t, atom, `<summary type="text">Post bare</summary>`)
	assert.NotContains(t, atom, "<content")

	js, err := ToJSONFeed1(doc)
	require.NoError(t, err)
	assert.Contains(t, js, `"content_text": "Post bare"`)
}

func TestSerialize_UnknownFormat(t *testing.T) {
	_, err := Serialize(testDoc(), domain.Format("yaml"))
	require.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/rss+xml; charset=utf-8", ContentType(domain.FormatRSS))
	assert.Equal(t, "application/atom+xml; charset=utf-8", ContentType(domain.FormatAtom))
	assert.Equal(t, "application/feed+json; charset=utf-8", ContentType(domain.FormatJSON))
}

func assertWellFormed(t *testing.T, content string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(content))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err)
	}
}
