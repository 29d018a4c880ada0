package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdays/craftfeed/pkg/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  base_url: https://feeds.craft.dev/
site:
  title: 100 Days of Craft
  description: daily engineering notes
  url: https://craft.dev/
  language: en-gb
feed:
  page_size: 50
  cache_ttl: 10m
  cache: redis
  redis_addr: localhost:6379
websub:
  enabled: true
  hub_url: https://hub.example.com/
  timeout: 5s
webhook:
  secret: s3cret
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://feeds.craft.dev", cfg.Server.BaseURL)
		assert.Equal(t, "https://craft.dev", cfg.Site.URL)
		assert.Equal(t, "en-gb", cfg.Site.Language)
		assert.Equal(t, 50, cfg.Feed.PageSize)
		assert.Equal(t, 10*time.Minute, cfg.Feed.CacheTTL)
		assert.Equal(t, "redis", cfg.Feed.Cache)
		assert.Equal(t, "craftfeed:", cfg.Feed.RedisPrefix)
		assert.True(t, cfg.WebSub.Enabled)
		assert.Equal(t, 5*time.Second, cfg.WebSub.Timeout)
		assert.Equal(t, "s3cret", cfg.Webhook.Secret)

		listen, timeout := cfg.GetServerConfig()
		assert.Equal(t, ":9090", listen)
		assert.Equal(t, 45*time.Second, timeout)
	})

	t.Run("defaults", func(t *testing.T) {
		configPath := writeConfig(t, `
site:
  title: Craft
  url: https://craft.dev
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://craft.dev", cfg.Server.BaseURL)
		assert.Equal(t, "en", cfg.Site.Language)
		assert.Equal(t, 20, cfg.Feed.PageSize)
		assert.Equal(t, time.Hour, cfg.Feed.CacheTTL)
		assert.Equal(t, "memory", cfg.Feed.Cache)
		assert.Equal(t, 1000, cfg.Feed.MaxKeys)
		assert.False(t, cfg.WebSub.Enabled)
		assert.Equal(t, "https://pubsubhubbub.appspot.com/", cfg.WebSub.HubURL)
		assert.Equal(t, 10*time.Second, cfg.WebSub.Timeout)
		assert.Equal(t, 4, cfg.WebSub.MaxWorkers)
		assert.Equal(t, "file:craftfeed.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
		assert.Empty(t, cfg.Webhook.Secret)
		assert.Equal(t, 15*time.Minute, cfg.Schedule.WarmInterval)
		assert.Equal(t, 24*time.Hour, cfg.Schedule.PruneInterval)
		assert.Equal(t, 1000, cfg.Schedule.KeepDeliveries)
		assert.Equal(t, 4, cfg.Schedule.MaxWorkers)
	})

	t.Run("environment variables expanded", func(t *testing.T) {
		t.Setenv("CRAFT_WEBHOOK_SECRET", "from-env")
		configPath := writeConfig(t, `
site:
  title: Craft
  url: https://craft.dev
webhook:
  secret: ${CRAFT_WEBHOOK_SECRET}
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Webhook.Secret)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "site: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "missing title", content: "site:\n  url: https://craft.dev\n", errMsg: "site.title is required"},
		{name: "missing url", content: "site:\n  title: Craft\n", errMsg: "site.url: is required"},
		{name: "relative url", content: "site:\n  title: Craft\n  url: /blog\n", errMsg: "not an absolute http(s) url"},
		{name: "page size too big", content: "site:\n  title: Craft\n  url: https://craft.dev\nfeed:\n  page_size: 500\n",
			errMsg: "feed.page_size must be between 1 and 100"},
		{name: "unknown cache", content: "site:\n  title: Craft\n  url: https://craft.dev\nfeed:\n  cache: disk\n",
			errMsg: `feed.cache must be memory or redis, got "disk"`},
		{name: "redis without address", content: "site:\n  title: Craft\n  url: https://craft.dev\nfeed:\n  cache: redis\n",
			errMsg: "feed.redis_addr is required"},
		{name: "short server timeout", content: "site:\n  title: Craft\n  url: https://craft.dev\nserver:\n  timeout: 10ms\n",
			errMsg: "server timeout must be at least 1 second"},
		{name: "bad hub url", content: "site:\n  title: Craft\n  url: https://craft.dev\nwebsub:\n  enabled: true\n  hub_url: hub\n",
			errMsg: "websub.hub_url"},
		{name: "short warm interval", content: "site:\n  title: Craft\n  url: https://craft.dev\nschedule:\n  warm_interval: 5s\n",
			errMsg: "schedule.warm_interval must be at least 1 minute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_ChannelMeta(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{BaseURL: "https://feeds.craft.dev"},
		Site:   SiteConfig{Title: "Craft", Description: "notes", URL: "https://craft.dev", Language: "en"},
		Feed:   FeedConfig{PageSize: 30},
		WebSub: WebSubConfig{Enabled: true, HubURL: "https://hub.example.com/"},
	}

	meta := cfg.ChannelMeta("v1.2.3")
	assert.Equal(t, domain.ChannelMeta{
		Title:       "Craft",
		Description: "notes",
		SiteURL:     "https://craft.dev",
		FeedURLs: domain.FeedURLs{
			RSS:  "https://feeds.craft.dev/rss.xml",
			Atom: "https://feeds.craft.dev/atom.xml",
			JSON: "https://feeds.craft.dev/feed.json",
		},
		FeedBaseURL: "https://feeds.craft.dev",
		Language:    "en",
		HubURL:      "https://hub.example.com/",
		Generator:   "craftfeed v1.2.3",
		PageSize:    30,
	}, meta)

	cfg.WebSub.Enabled = false
	meta = cfg.ChannelMeta("")
	assert.Empty(t, meta.HubURL)
	assert.Equal(t, "craftfeed", meta.Generator)
}
