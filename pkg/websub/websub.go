// Package websub notifies a WebSub hub when feeds change.
// Each feed URL is pinged independently, failures are reported per URL and never retried.
package websub

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/craftdays/craftfeed/pkg/domain"
)

//go:generate moq -out mocks/delivery_log.go -pkg mocks -skip-ensure -fmt goimports . DeliveryLog

// DefaultHubURL is the public hub used when none configured
const DefaultHubURL = "https://pubsubhubbub.appspot.com/"

// DeliveryLog records outcomes of hub pings
type DeliveryLog interface {
	SaveDelivery(ctx context.Context, hubURL string, res domain.NotificationResult) error
}

// Notifier publishes feed updates to a WebSub hub
type Notifier struct {
	client     *http.Client
	hubURL     string
	timeout    time.Duration
	maxWorkers int
	log        DeliveryLog
	wg         sync.WaitGroup
}

// Config holds notifier parameters
type Config struct {
	HubURL     string        // default hub for Publish and TestHub
	Timeout    time.Duration // per request, 10s if not set
	MaxWorkers int           // concurrent pings, 4 if not set
	Client     *http.Client  // optional
	Log        DeliveryLog   // optional
}

// New makes a notifier
func New(cfg Config) *Notifier {
	res := &Notifier{
		client:     cfg.Client,
		hubURL:     cfg.HubURL,
		timeout:    cfg.Timeout,
		maxWorkers: cfg.MaxWorkers,
		log:        cfg.Log,
	}
	if res.client == nil {
		res.client = &http.Client{}
	}
	if res.hubURL == "" {
		res.hubURL = DefaultHubURL
	}
	if res.timeout <= 0 {
		res.timeout = 10 * time.Second
	}
	if res.maxWorkers <= 0 {
		res.maxWorkers = 4
	}
	return res
}

// HubURL returns the configured hub
func (n *Notifier) HubURL() string { return n.hubURL }

// NotifyHub pings the hub once per feed URL. Results are in the order of feedURLs,
// a failed ping never stops the others.
func (n *Notifier) NotifyHub(ctx context.Context, feedURLs []string, hubURL string) []domain.NotificationResult {
	results := make([]domain.NotificationResult, len(feedURLs))
	var g errgroup.Group
	g.SetLimit(n.maxWorkers)
	for i, feedURL := range feedURLs {
		g.Go(func() error {
			results[i] = n.ping(ctx, hubURL, feedURL)
			return nil
		})
	}
	_ = g.Wait() // pings report failures in results

	if n.log != nil {
		for _, r := range results {
			if err := n.log.SaveDelivery(ctx, hubURL, r); err != nil {
				lgr.Printf("[WARN] can't record websub delivery for %s: %v", r.FeedURL, err)
			}
		}
	}
	return results
}

// Publish notifies the configured hub in background, detached from the caller's cancellation
func (n *Notifier) Publish(ctx context.Context, feedURLs []string) {
	if len(feedURLs) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		for _, r := range n.NotifyHub(ctx, feedURLs, n.hubURL) {
			if !r.Success {
				lgr.Printf("[WARN] websub publish of %s to %s failed: %s", r.FeedURL, n.hubURL, r.Error)
				continue
			}
			lgr.Printf("[INFO] websub publish of %s to %s, status %d", r.FeedURL, n.hubURL, r.StatusCode)
		}
	}()
}

// Wait blocks until all background publishes are done
func (n *Notifier) Wait() { n.wg.Wait() }

// TestHub checks the configured hub is reachable
func (n *Notifier) TestHub(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.hubURL, http.NoBody)
	if err != nil {
		lgr.Printf("[WARN] invalid hub url %s: %v", n.hubURL, err)
		return false
	}
	resp, err := n.client.Do(req)
	if err != nil {
		lgr.Printf("[DEBUG] hub %s unreachable: %v", n.hubURL, err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (n *Notifier) ping(ctx context.Context, hubURL, feedURL string) domain.NotificationResult {
	res := domain.NotificationResult{FeedURL: feedURL}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	form := url.Values{"hub.mode": {"publish"}, "hub.url": {feedURL}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hubURL, strings.NewReader(form.Encode()))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	res.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		res.Error = fmt.Sprintf("HTTP %d", resp.StatusCode)
		return res
	}
	res.Success = true
	return res
}
