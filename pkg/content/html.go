package content

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// urlAttrs lists attributes holding links that feed readers must see as absolute
var urlAttrs = map[string]bool{"href": true, "src": true, "poster": true, "cite": true}

// AbsoluteURL turns a site-relative reference into an absolute one by prefixing siteURL.
// Absolute references (any scheme) and fragment-only references are returned as is.
func AbsoluteURL(siteURL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() {
		return ref
	}
	base := strings.TrimRight(siteURL, "/")
	if strings.HasPrefix(ref, "//") {
		scheme := "https"
		if bu, err := url.Parse(base); err == nil && bu.Scheme != "" {
			scheme = bu.Scheme
		}
		return scheme + ":" + ref
	}
	if strings.HasPrefix(ref, "/") {
		return base + ref
	}
	return base + "/" + ref
}

// AbsolutizeLinks rewrites relative href/src attributes of an HTML fragment to absolute URLs
func AbsolutizeLinks(fragment, siteURL string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return b.String() // io.EOF or malformed input, keep what was processed
		}
		tok := z.Token()
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			for i, a := range tok.Attr {
				if a.Namespace == "" && urlAttrs[a.Key] {
					tok.Attr[i].Val = AbsoluteURL(siteURL, a.Val)
				}
			}
		}
		b.WriteString(tok.String())
	}
}

// blockTags produce a word boundary when converting HTML to text
var blockTags = map[atom.Atom]bool{
	atom.P: true, atom.Br: true, atom.Div: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Pre: true, atom.Tr: true, atom.Td: true, atom.Th: true,
}

// PlainText strips tags from an HTML fragment and collapses whitespace
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := 0 // depth inside script/style
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == atom.Script || a == atom.Style {
				if tt == html.StartTagToken {
					skip++
				} else if tt == html.EndTagToken && skip > 0 {
					skip--
				}
			}
			if blockTags[a] {
				b.WriteByte(' ')
			}
		}
	}
}

// Truncate limits s to maxRunes characters, appending an ellipsis when cut.
// The ellipsis counts toward the limit and cuts never split a multi-byte character.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	cut := strings.TrimRight(string(runes[:maxRunes-1]), " \t\n")
	return cut + "…"
}
