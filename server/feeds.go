package server

import (
	"html"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/craftdays/craftfeed/pkg/conditional"
	"github.com/craftdays/craftfeed/pkg/domain"
	"github.com/craftdays/craftfeed/pkg/feed"
)

const feedErrorText = "Error generating feed"

func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	s.serveSiteFeed(w, r, domain.FormatRSS)
}

func (s *Server) atomHandler(w http.ResponseWriter, r *http.Request) {
	s.serveSiteFeed(w, r, domain.FormatAtom)
}

func (s *Server) jsonFeedHandler(w http.ResponseWriter, r *http.Request) {
	s.serveSiteFeed(w, r, domain.FormatJSON)
}

// serveSiteFeed builds the site feed in the given format, failures answer with a plain text 500
func (s *Server) serveSiteFeed(w http.ResponseWriter, r *http.Request, f domain.Format) {
	doc, err := s.feeds.SiteFeed(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] can't build %s feed: %v", f, err)
		writePlainError(w)
		return
	}
	body, err := feed.Serialize(doc, f)
	if err != nil {
		lgr.Printf("[ERROR] can't serialize %s feed: %v", f, err)
		writePlainError(w)
		return
	}

	setFeedHeaders(w.Header(), f)
	if f == domain.FormatJSON {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET")
	}
	writeFeed(w, r, []byte(body), doc.UpdatedAt)
}

// categoryFeedHandler serves /feeds/category/<slug>.xml as RSS.
// Unknown categories and build failures answer with an RSS error document.
func (s *Server) categoryFeedHandler(w http.ResponseWriter, r *http.Request) {
	slug, ok := strings.CutSuffix(r.PathValue("file"), ".xml")
	if !ok || slug == "" {
		http.NotFound(w, r)
		return
	}

	doc, err := s.feeds.CategoryFeed(r.Context(), slug)
	if err != nil {
		lgr.Printf("[ERROR] can't build feed for category %s: %v", slug, err)
		writeRSSError(w, "Could not generate feed for category "+slug)
		return
	}
	body, err := feed.ToRSS2(doc)
	if err != nil {
		lgr.Printf("[ERROR] can't serialize feed for category %s: %v", slug, err)
		writeRSSError(w, "Could not generate feed for category "+slug)
		return
	}

	setFeedHeaders(w.Header(), domain.FormatRSS)
	w.Header().Set("X-Feed-Category", slug)
	writeFeed(w, r, []byte(body), doc.UpdatedAt)
}

func setFeedHeaders(h http.Header, f domain.Format) {
	h.Set("Content-Type", feed.ContentType(f))
	h.Set("X-Robots-Tag", "noindex")
	h.Set("X-Content-Type-Options", "nosniff")
}

// writeFeed answers with the body or an empty 304 if the client copy is fresh
func writeFeed(w http.ResponseWriter, r *http.Request, body []byte, lastModified time.Time) {
	resp := conditional.Respond(r.Header, body, lastModified)
	if err := resp.Write(w); err != nil {
		lgr.Printf("[WARN] can't write feed response: %v", err)
	}
}

func writePlainError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(feedErrorText))
}

// writeRSSError sends a minimal RSS document describing the failure, so readers show something sensible
func writeRSSError(w http.ResponseWriter, msg string) {
	body := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<rss version="2.0"><channel><title>Feed Error</title><link>/</link>` +
		`<description>` + html.EscapeString(msg) + `</description></channel></rss>`
	w.Header().Set("Content-Type", feed.ContentType(domain.FormatRSS))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(body))
}
