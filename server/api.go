package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/craftdays/craftfeed/pkg/service"
)

const recentDeliveries = 20

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, rest.JSON{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"cache":   s.feeds.CacheStats(r.Context()),
		"websub":  s.notifier != nil,
	})
}

// validateHandler serializes the site feed in every format and reports validation results
func (s *Server) validateHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.feeds.ValidateFeeds(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] can't validate feeds: %v", err)
		renderError(w, r, fmt.Errorf("can't validate feeds: %w", err), http.StatusInternalServerError)
		return
	}
	valid := true
	for _, v := range res {
		valid = valid && v.Valid
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"valid": valid, "feeds": res})
}

// websubHandler reports hub reachability and recent notifications
func (s *Server) websubHandler(w http.ResponseWriter, r *http.Request) {
	if s.notifier == nil {
		renderJSON(w, r, http.StatusOK, rest.JSON{"enabled": false})
		return
	}
	resp := rest.JSON{
		"enabled":   true,
		"hub_url":   s.notifier.HubURL(),
		"reachable": s.notifier.TestHub(r.Context()),
	}
	if s.deliveries != nil {
		recent, err := s.deliveries.RecentDeliveries(r.Context(), recentDeliveries)
		if err != nil {
			lgr.Printf("[WARN] can't load websub deliveries: %v", err)
		}
		resp["deliveries"] = recent
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// revalidateHandler is called by the CMS after content changes.
// It stores the changed record, drops affected cached feeds and announces them to the hub in background.
func (s *Server) revalidateHandler(w http.ResponseWriter, r *http.Request) {
	secret := s.config.WebhookSecret()
	if secret == "" {
		renderError(w, r, errors.New("webhook is not configured"), http.StatusServiceUnavailable)
		return
	}
	got := r.Header.Get("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
		lgr.Printf("[WARN] rejected revalidation request from %s", r.RemoteAddr)
		renderError(w, r, errors.New("invalid webhook secret"), http.StatusUnauthorized)
		return
	}

	var ch service.Change
	if err := json.NewDecoder(r.Body).Decode(&ch); err != nil {
		renderError(w, r, fmt.Errorf("invalid payload: %w", err), http.StatusBadRequest)
		return
	}
	if ch.Collection == "" {
		renderError(w, r, errors.New("collection is required"), http.StatusBadRequest)
		return
	}

	urls, err := s.feeds.Apply(r.Context(), ch)
	if errors.Is(err, service.ErrBadChange) {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] can't apply %s change %q: %v", ch.Collection, ch.Slug, err)
		renderError(w, r, errors.New("can't apply change"), http.StatusInternalServerError)
		return
	}
	if s.notifier != nil {
		s.notifier.Publish(r.Context(), urls)
	}

	renderJSON(w, r, http.StatusAccepted, rest.JSON{"revalidated": true, "feeds": urls, "websub": s.notifier != nil})
}
