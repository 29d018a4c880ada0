package feed

import (
	"fmt"

	"github.com/craftdays/craftfeed/pkg/domain"
)

// ContentType returns http content type for a feed format
func ContentType(f domain.Format) string {
	switch f {
	case domain.FormatAtom:
		return "application/atom+xml; charset=utf-8"
	case domain.FormatJSON:
		return "application/feed+json; charset=utf-8"
	default:
		return "application/rss+xml; charset=utf-8"
	}
}

// Serialize renders a feed document in the given format
func Serialize(doc domain.FeedDocument, f domain.Format) (string, error) {
	switch f {
	case domain.FormatRSS:
		return ToRSS2(doc)
	case domain.FormatAtom:
		return ToAtom1(doc)
	case domain.FormatJSON:
		return ToJSONFeed1(doc)
	}
	return "", fmt.Errorf("unsupported feed format %q", f)
}
