package content

import (
	"html"
	"strings"

	"github.com/craftdays/craftfeed/pkg/domain"
)

// RenderHTML converts CMS rich text into an HTML fragment.
// Unknown node types degrade to their children, never to an error.
func RenderHTML(rt domain.RichText) string {
	var b strings.Builder
	for _, n := range rt {
		renderNode(&b, n)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n domain.RichTextNode) {
	switch n.Type {
	case domain.NodeText:
		renderText(b, n)
	case domain.NodeParagraph:
		wrap(b, "p", n.Children)
	case domain.NodeHeading:
		wrap(b, headingTag(n.Tag), n.Children)
	case domain.NodeQuote:
		wrap(b, "blockquote", n.Children)
	case domain.NodeList:
		tag := "ul"
		if n.Ordered {
			tag = "ol"
		}
		wrap(b, tag, n.Children)
	case domain.NodeListItem:
		wrap(b, "li", n.Children)
	case domain.NodeLink:
		b.WriteString(`<a href="`)
		b.WriteString(html.EscapeString(n.URL))
		b.WriteString(`">`)
		renderChildren(b, n.Children)
		b.WriteString("</a>")
	case domain.NodeCode:
		b.WriteString("<pre><code>")
		b.WriteString(html.EscapeString(nodeText(n)))
		b.WriteString("</code></pre>")
	case domain.NodeImage:
		if n.URL == "" {
			return
		}
		b.WriteString(`<img src="`)
		b.WriteString(html.EscapeString(n.URL))
		b.WriteString(`" alt="`)
		b.WriteString(html.EscapeString(n.Alt))
		b.WriteString(`">`)
	case domain.NodeLineBreak:
		b.WriteString("<br>")
	case domain.NodeHTML:
		b.WriteString(n.Text) // sanitized by the normalizer
	default:
		renderChildren(b, n.Children)
	}
}

func renderChildren(b *strings.Builder, children []domain.RichTextNode) {
	for _, c := range children {
		renderNode(b, c)
	}
}

func wrap(b *strings.Builder, tag string, children []domain.RichTextNode) {
	b.WriteString("<" + tag + ">")
	renderChildren(b, children)
	b.WriteString("</" + tag + ">")
}

// formatTags in nesting order, outermost first
var formatTags = []struct {
	f   domain.TextFormat
	tag string
}{
	{domain.FormatBold, "strong"},
	{domain.FormatItalic, "em"},
	{domain.FormatUnderline, "u"},
	{domain.FormatStrikethrough, "s"},
	{domain.FormatCode, "code"},
}

func renderText(b *strings.Builder, n domain.RichTextNode) {
	for _, ft := range formatTags {
		if n.Format&ft.f != 0 {
			b.WriteString("<" + ft.tag + ">")
		}
	}
	b.WriteString(html.EscapeString(n.Text))
	for i := len(formatTags) - 1; i >= 0; i-- {
		if n.Format&formatTags[i].f != 0 {
			b.WriteString("</" + formatTags[i].tag + ">")
		}
	}
}

func headingTag(tag string) string {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return tag
	}
	return "h2"
}

// nodeText collects raw text of a node and its descendants
func nodeText(n domain.RichTextNode) string {
	if len(n.Children) == 0 {
		return n.Text
	}
	var sb strings.Builder
	sb.WriteString(n.Text)
	for _, c := range n.Children {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
