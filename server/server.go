package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/craftdays/craftfeed/pkg/cache"
	"github.com/craftdays/craftfeed/pkg/domain"
	"github.com/craftdays/craftfeed/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feeds.go -pkg mocks -skip-ensure -fmt goimports . FeedProvider
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/deliveries.go -pkg mocks -skip-ensure -fmt goimports . DeliveryLister

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	feeds      FeedProvider
	notifier   Notifier
	deliveries DeliveryLister
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// FeedProvider builds feed documents and applies content changes
type FeedProvider interface {
	SiteFeed(ctx context.Context) (domain.FeedDocument, error)
	CategoryFeed(ctx context.Context, slug string) (domain.FeedDocument, error)
	Apply(ctx context.Context, ch service.Change) ([]string, error)
	ValidateFeeds(ctx context.Context) (map[domain.Format]domain.ValidationResult, error)
	CacheStats(ctx context.Context) cache.Stats
}

// Notifier announces feed updates to a WebSub hub
type Notifier interface {
	Publish(ctx context.Context, feedURLs []string)
	TestHub(ctx context.Context) bool
	HubURL() string
}

// DeliveryLister returns recorded hub notifications
type DeliveryLister interface {
	RecentDeliveries(ctx context.Context, limit int) ([]domain.Delivery, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	WebhookSecret() string
}

// Params holds server dependencies. Notifier and Deliveries are optional.
type Params struct {
	Config     ConfigProvider
	Feeds      FeedProvider
	Notifier   Notifier
	Deliveries DeliveryLister
	Version    string
	Debug      bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:     p.Config,
		feeds:      p.Feeds,
		notifier:   p.Notifier,
		deliveries: p.Deliveries,
		version:    p.Version,
		debug:      p.Debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("craftfeed", "craftdays", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.RealIP)
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // webhook payloads are small
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /rss.xml", s.rssHandler)
	s.router.HandleFunc("GET /atom.xml", s.atomHandler)
	s.router.HandleFunc("GET /feed.json", s.jsonFeedHandler)
	s.router.HandleFunc("GET /feeds/category/{file}", s.categoryFeedHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /validate", s.validateHandler)
		r.HandleFunc("GET /websub", s.websubHandler)
		r.HandleFunc("POST /revalidate", s.revalidateHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}
