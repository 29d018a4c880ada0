// Package conditional implements HTTP conditional delivery of generated feeds:
// ETag computation, If-None-Match / If-Modified-Since evaluation and 200/304 responses.
// It works on plain headers and bytes and does not depend on any router.
package conditional

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/craftdays/craftfeed/pkg/domain"
)

// CacheControl is the fixed caching policy of all feed responses
const CacheControl = "public, max-age=600, s-maxage=3600, stale-while-revalidate=7200"

// Response is a framework-agnostic HTTP response
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// ComputeETag returns a quoted, deterministic validator for content
func ComputeETag(content []byte) string {
	sum := sha256.Sum256(content)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// Describe makes cache validators for content last changed at lastModified
func Describe(content []byte, lastModified time.Time) domain.CacheDescriptor {
	return domain.CacheDescriptor{ETag: ComputeETag(content), LastModified: lastModified.UTC().Truncate(time.Second)}
}

// ShouldReturn304 tells if the client copy is still fresh.
// If-None-Match matching the etag wins, otherwise If-Modified-Since not older than lastModified does.
func ShouldReturn304(h http.Header, etag string, lastModified time.Time) bool {
	if inm := h.Get("If-None-Match"); inm != "" && matchETag(inm, etag) {
		return true
	}
	ims := h.Get("If-Modified-Since")
	if ims == "" {
		return false
	}
	t, err := http.ParseTime(ims)
	if err != nil {
		return false
	}
	return !t.Before(lastModified.UTC().Truncate(time.Second))
}

// Respond makes a 200 response with body, or an empty 304 when the request is conditional and fresh.
// Both carry identical ETag, Last-Modified and Cache-Control headers.
func Respond(h http.Header, body []byte, lastModified time.Time) Response {
	desc := Describe(body, lastModified)
	header := http.Header{}
	header.Set("ETag", desc.ETag)
	header.Set("Last-Modified", desc.LastModified.Format(http.TimeFormat))
	header.Set("Cache-Control", CacheControl)

	if ShouldReturn304(h, desc.ETag, desc.LastModified) {
		return Response{Status: http.StatusNotModified, Header: header}
	}
	header.Set("Content-Length", strconv.Itoa(len(body)))
	return Response{Status: http.StatusOK, Header: header, Body: body}
}

// Write sends the response. Headers already set on w are kept unless the response overrides them.
func (r Response) Write(w http.ResponseWriter) error {
	for k, v := range r.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(r.Status)
	if len(r.Body) == 0 {
		return nil
	}
	_, err := w.Write(r.Body)
	return err
}

// matchETag checks If-None-Match value against etag, "*" matches anything.
// Weak validators are compared by their opaque part.
func matchETag(inm, etag string) bool {
	if strings.TrimSpace(inm) == "*" {
		return true
	}
	etag = strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(inm, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == etag {
			return true
		}
	}
	return false
}
