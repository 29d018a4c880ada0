package content

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/craftdays/craftfeed/pkg/domain"
)

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		name, site, ref, want string
	}{
		{"root relative", "https://craft.dev", "/img/a.png", "https://craft.dev/img/a.png"},
		{"site with trailing slash", "https://craft.dev/", "/img/a.png", "https://craft.dev/img/a.png"},
		{"path relative", "https://craft.dev", "img/a.png", "https://craft.dev/img/a.png"},
		{"site with path prefix", "https://craft.dev/www", "/img/a.png", "https://craft.dev/www/img/a.png"},
		{"already absolute", "https://craft.dev", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"protocol relative", "https://craft.dev", "//cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"mailto", "https://craft.dev", "mailto:me@example.com", "mailto:me@example.com"},
		{"fragment", "https://craft.dev", "#section", "#section"},
		{"empty", "https://craft.dev", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsoluteURL(tt.site, tt.ref))
		})
	}
}

func TestAbsolutizeLinks(t *testing.T) {
	in := `<p>See <a href="/blog/x">x</a> and <a href="https://other.org/">other</a></p><img src="pic.png" alt="a &amp; b"/>`
	out := AbsolutizeLinks(in, "https://craft.dev")
	assert.Contains(t, out, `href="https://craft.dev/blog/x"`)
	assert.Contains(t, out, `href="https://other.org/"`)
	assert.Contains(t, out, `src="https://craft.dev/pic.png"`)
	assert.Contains(t, out, "a &amp; b")
	assert.Contains(t, out, "<p>See ")
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"simple", "<p>Hello <b>world</b></p>", "Hello world"},
		{"blocks separate words", "<h2>Title</h2><p>Body</p>", "Title Body"},
		{"entities decoded", "<p>Tom &amp; Jerry</p>", "Tom & Jerry"},
		{"script skipped", "<p>a</p><script>var x = 1;</script><p>b</p>", "a b"},
		{"whitespace collapsed", "<p>  a \n\n b  </p>", "a b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "hello…", Truncate("hello world", 6))
	assert.Equal(t, "", Truncate("abc", 0))

	t.Run("multi-byte characters are never split", func(t *testing.T) {
		s := strings.Repeat("ж", 200)
		got := Truncate(s, SummaryLimit)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, SummaryLimit, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("trailing space trimmed before ellipsis", func(t *testing.T) {
		assert.Equal(t, "ab…", Truncate("ab cd", 4))
	})
}

func TestRenderHTML(t *testing.T) {
	rt := domain.RichText{
		{Type: domain.NodeHeading, Tag: "h3", Children: []domain.RichTextNode{{Type: domain.NodeText, Text: "Setup"}}},
		{Type: domain.NodeParagraph, Children: []domain.RichTextNode{
			{Type: domain.NodeText, Text: "Use "},
			{Type: domain.NodeText, Text: "go test", Format: domain.FormatCode},
			{Type: domain.NodeText, Text: " & ", Format: 0},
			{Type: domain.NodeText, Text: "relax", Format: domain.FormatBold | domain.FormatItalic},
			{Type: domain.NodeLineBreak},
		}},
		{Type: domain.NodeList, Ordered: true, Children: []domain.RichTextNode{
			{Type: domain.NodeListItem, Children: []domain.RichTextNode{{Type: domain.NodeText, Text: "one"}}},
		}},
		{Type: domain.NodeQuote, Children: []domain.RichTextNode{{Type: domain.NodeText, Text: "quoted"}}},
		{Type: domain.NodeCode, Text: "if a < b {}"},
		{Type: domain.NodeHeading, Tag: "bogus", Children: []domain.RichTextNode{{Type: domain.NodeText, Text: "H"}}},
		{Type: "unknown", Children: []domain.RichTextNode{{Type: domain.NodeText, Text: "kept"}}},
		{Type: domain.NodeImage},
	}

	out := RenderHTML(rt)
	assert.Equal(t, "<h3>Setup</h3>"+
		"<p>Use <code>go test</code> &amp; <strong><em>relax</em></strong><br></p>"+
		"<ol><li>one</li></ol>"+
		"<blockquote>quoted</blockquote>"+
		"<pre><code>if a &lt; b {}</code></pre>"+
		"<h2>H</h2>"+
		"kept", out)
}
