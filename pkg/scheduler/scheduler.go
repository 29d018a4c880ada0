package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/craftdays/craftfeed/pkg/domain"
)

//go:generate moq -out mocks/feed_warmer.go -pkg mocks -skip-ensure -fmt goimports . FeedWarmer
//go:generate moq -out mocks/delivery_pruner.go -pkg mocks -skip-ensure -fmt goimports . DeliveryPruner

// Scheduler runs background maintenance: rebuilding feeds into the document cache
// and pruning old websub delivery records
type Scheduler struct {
	feeds          FeedWarmer
	deliveries     DeliveryPruner
	warmInterval   time.Duration
	pruneInterval  time.Duration
	keepDeliveries int
	maxWorkers     int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// FeedWarmer builds feeds, caching them as a side effect
type FeedWarmer interface {
	SiteFeed(ctx context.Context) (domain.FeedDocument, error)
	CategoryFeed(ctx context.Context, slug string) (domain.FeedDocument, error)
	CategorySlugs(ctx context.Context) ([]string, error)
}

// DeliveryPruner drops old websub delivery records
type DeliveryPruner interface {
	PruneDeliveries(ctx context.Context, keep int) (int64, error)
}

// Params groups scheduler dependencies and settings. Deliveries is optional.
type Params struct {
	Feeds          FeedWarmer
	Deliveries     DeliveryPruner
	WarmInterval   time.Duration
	PruneInterval  time.Duration
	KeepDeliveries int
	MaxWorkers     int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(p Params) *Scheduler {
	if p.WarmInterval == 0 {
		p.WarmInterval = 15 * time.Minute
	}
	if p.PruneInterval == 0 {
		p.PruneInterval = 24 * time.Hour
	}
	if p.KeepDeliveries == 0 {
		p.KeepDeliveries = 1000
	}
	if p.MaxWorkers == 0 {
		p.MaxWorkers = 4
	}

	return &Scheduler{
		feeds:          p.Feeds,
		deliveries:     p.Deliveries,
		warmInterval:   p.WarmInterval,
		pruneInterval:  p.PruneInterval,
		keepDeliveries: p.KeepDeliveries,
		maxWorkers:     p.MaxWorkers,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.every(ctx, s.warmInterval, func(ctx context.Context) { s.WarmNow(ctx) })

	if s.deliveries != nil {
		s.wg.Add(1)
		go s.every(ctx, s.pruneInterval, s.prune)
	}

	lgr.Printf("[INFO] scheduler started with warm interval %v, prune interval %v", s.warmInterval, s.pruneInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// every runs fn right away and then on each tick until ctx is done
func (s *Scheduler) every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fn(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

// WarmNow builds the site feed and every category feed, returns how many were built.
// Cached documents are served as is, so only expired or invalidated feeds get rebuilt.
func (s *Scheduler) WarmNow(ctx context.Context) int {
	var built atomic.Int32
	if _, err := s.feeds.SiteFeed(ctx); err != nil {
		lgr.Printf("[WARN] can't warm site feed: %v", err)
	} else {
		built.Add(1)
	}

	slugs, err := s.feeds.CategorySlugs(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't list categories to warm: %v", err)
		return int(built.Load())
	}

	sem := make(chan struct{}, s.maxWorkers)
	var wg sync.WaitGroup
	for _, slug := range slugs {
		wg.Add(1)
		go func(slug string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			if _, err := s.feeds.CategoryFeed(ctx, slug); err != nil {
				lgr.Printf("[WARN] can't warm feed for category %s: %v", slug, err)
				return
			}
			built.Add(1)
		}(slug)
	}
	wg.Wait()

	lgr.Printf("[DEBUG] warmed %d feeds", built.Load())
	return int(built.Load())
}

func (s *Scheduler) prune(ctx context.Context) {
	n, err := s.deliveries.PruneDeliveries(ctx, s.keepDeliveries)
	if err != nil {
		lgr.Printf("[WARN] can't prune websub deliveries: %v", err)
		return
	}
	if n > 0 {
		lgr.Printf("[INFO] pruned %d websub deliveries", n)
	}
}
