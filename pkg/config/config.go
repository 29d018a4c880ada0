package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/craftdays/craftfeed/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Site     SiteConfig     `yaml:"site" json:"site" jsonschema:"description=Blog the feeds are generated for"`
	Feed     FeedConfig     `yaml:"feed" json:"feed" jsonschema:"description=Feed generation and caching"`
	WebSub   WebSubConfig   `yaml:"websub" json:"websub" jsonschema:"description=WebSub hub notifications"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Webhook  WebhookConfig  `yaml:"webhook" json:"webhook" jsonschema:"description=CMS revalidation webhook"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Background maintenance"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"description=Public URL feeds are served from, defaults to site.url"`
}

// SiteConfig describes the blog
type SiteConfig struct {
	Title       string `yaml:"title" json:"title" jsonschema:"required,description=Feed title"`
	Description string `yaml:"description" json:"description" jsonschema:"description=Feed description"`
	URL         string `yaml:"url" json:"url" jsonschema:"required,description=Public blog URL used for entry links"`
	Language    string `yaml:"language" json:"language" jsonschema:"default=en,description=Feed language code"`
}

// FeedConfig holds feed generation and document cache settings
type FeedConfig struct {
	PageSize    int           `yaml:"page_size" json:"page_size" jsonschema:"default=20,minimum=1,maximum=100,description=Entries per feed"`
	CacheTTL    time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"default=1h,description=How long built feeds are cached"`
	Cache       string        `yaml:"cache" json:"cache" jsonschema:"default=memory,enum=memory,enum=redis,description=Document cache backend"`
	MaxKeys     int           `yaml:"max_keys" json:"max_keys" jsonschema:"default=1000,description=Maximum cached documents for memory cache"`
	RedisAddr   string        `yaml:"redis_addr" json:"redis_addr" jsonschema:"description=Redis address for redis cache"`
	RedisPrefix string        `yaml:"redis_prefix" json:"redis_prefix" jsonschema:"default=craftfeed:,description=Key prefix for redis cache"`
}

// WebSubConfig holds hub notification settings
type WebSubConfig struct {
	Enabled    bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Notify the hub on content changes"`
	HubURL     string        `yaml:"hub_url" json:"hub_url" jsonschema:"default=https://pubsubhubbub.appspot.com/,description=WebSub hub URL"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Timeout of one hub request"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Maximum concurrent hub requests"`
}

// DatabaseConfig holds content mirror database settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:craftfeed.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// WebhookConfig holds CMS webhook settings
type WebhookConfig struct {
	Secret string `yaml:"secret" json:"secret" jsonschema:"description=Shared secret expected in X-Webhook-Secret, empty disables the webhook"`
}

// ScheduleConfig defines background maintenance intervals
type ScheduleConfig struct {
	WarmInterval   time.Duration `yaml:"warm_interval" json:"warm_interval" jsonschema:"default=15m,description=How often feeds are rebuilt into the cache"`
	PruneInterval  time.Duration `yaml:"prune_interval" json:"prune_interval" jsonschema:"default=24h,description=How often old websub deliveries are pruned"`
	KeepDeliveries int           `yaml:"keep_deliveries" json:"keep_deliveries" jsonschema:"default=1000,description=Websub deliveries kept by pruning"`
	MaxWorkers     int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Maximum concurrent feed rebuilds"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	c.Site.URL = strings.TrimRight(c.Site.URL, "/")
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = c.Site.URL
	}
	c.Server.BaseURL = strings.TrimRight(c.Server.BaseURL, "/")
	if c.Site.Language == "" {
		c.Site.Language = "en"
	}

	if c.Feed.PageSize == 0 {
		c.Feed.PageSize = 20
	}
	if c.Feed.CacheTTL == 0 {
		c.Feed.CacheTTL = time.Hour
	}
	if c.Feed.Cache == "" {
		c.Feed.Cache = "memory"
	}
	if c.Feed.MaxKeys == 0 {
		c.Feed.MaxKeys = 1000
	}
	if c.Feed.RedisPrefix == "" {
		c.Feed.RedisPrefix = "craftfeed:"
	}

	if c.WebSub.HubURL == "" {
		c.WebSub.HubURL = "https://pubsubhubbub.appspot.com/"
	}
	if c.WebSub.Timeout == 0 {
		c.WebSub.Timeout = 10 * time.Second
	}
	if c.WebSub.MaxWorkers == 0 {
		c.WebSub.MaxWorkers = 4
	}

	if c.Schedule.WarmInterval == 0 {
		c.Schedule.WarmInterval = 15 * time.Minute
	}
	if c.Schedule.PruneInterval == 0 {
		c.Schedule.PruneInterval = 24 * time.Hour
	}
	if c.Schedule.KeepDeliveries == 0 {
		c.Schedule.KeepDeliveries = 1000
	}
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 4
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:craftfeed.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Site.Title == "" {
		return fmt.Errorf("site.title is required")
	}
	if err := checkURL(cfg.Site.URL); err != nil {
		return fmt.Errorf("site.url: %w", err)
	}
	if err := checkURL(cfg.Server.BaseURL); err != nil {
		return fmt.Errorf("server.base_url: %w", err)
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Feed.PageSize < 1 || cfg.Feed.PageSize > 100 {
		return fmt.Errorf("feed.page_size must be between 1 and 100")
	}
	switch cfg.Feed.Cache {
	case "memory":
	case "redis":
		if cfg.Feed.RedisAddr == "" {
			return fmt.Errorf("feed.redis_addr is required for redis cache")
		}
	default:
		return fmt.Errorf("feed.cache must be memory or redis, got %q", cfg.Feed.Cache)
	}

	if cfg.WebSub.Enabled {
		if err := checkURL(cfg.WebSub.HubURL); err != nil {
			return fmt.Errorf("websub.hub_url: %w", err)
		}
		if cfg.WebSub.Timeout < time.Second {
			return fmt.Errorf("websub timeout must be at least 1 second")
		}
	}

	if cfg.Schedule.WarmInterval < time.Minute {
		return fmt.Errorf("schedule.warm_interval must be at least 1 minute")
	}
	if cfg.Schedule.PruneInterval < time.Minute {
		return fmt.Errorf("schedule.prune_interval must be at least 1 minute")
	}
	return nil
}

func checkURL(s string) error {
	if s == "" {
		return fmt.Errorf("is required")
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", s, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) url", s)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// ChannelMeta returns site-wide feed channel settings
func (c *Config) ChannelMeta(version string) domain.ChannelMeta {
	meta := domain.ChannelMeta{
		Title:       c.Site.Title,
		Description: c.Site.Description,
		SiteURL:     c.Site.URL,
		FeedURLs: domain.FeedURLs{
			RSS:  c.Server.BaseURL + "/rss.xml",
			Atom: c.Server.BaseURL + "/atom.xml",
			JSON: c.Server.BaseURL + "/feed.json",
		},
		FeedBaseURL: c.Server.BaseURL,
		Language:    c.Site.Language,
		Generator:   strings.TrimSpace("craftfeed " + version),
		PageSize:    c.Feed.PageSize,
	}
	if c.WebSub.Enabled {
		meta.HubURL = c.WebSub.HubURL
	}
	return meta
}

// WebhookSecret returns the shared secret of the revalidation webhook
func (c *Config) WebhookSecret() string {
	return c.Webhook.Secret
}
