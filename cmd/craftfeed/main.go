package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/craftdays/craftfeed/pkg/cache"
	"github.com/craftdays/craftfeed/pkg/config"
	"github.com/craftdays/craftfeed/pkg/repository"
	"github.com/craftdays/craftfeed/pkg/scheduler"
	"github.com/craftdays/craftfeed/pkg/service"
	"github.com/craftdays/craftfeed/pkg/websub"
	"github.com/craftdays/craftfeed/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Import string `long:"import" env:"IMPORT" description:"import CMS snapshot (json) before start"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)
	lgr.Printf("[INFO] starting craftfeed version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if secret := cfg.WebhookSecret(); secret != "" {
		setupLog(opts.Debug, secret) // keep webhook secret out of logs
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] can't close database: %v", err)
		}
	}()

	if opts.Import != "" {
		if err := importSnapshot(ctx, repos.Content, opts.Import); err != nil {
			return fmt.Errorf("failed to import %s: %w", opts.Import, err)
		}
	}

	docCache, closeCache, err := makeCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer closeCache()

	feeds := service.NewFeedService(repos.Content, docCache, cfg.ChannelMeta(revision), cfg.Feed.CacheTTL)

	sched := scheduler.NewScheduler(scheduler.Params{
		Feeds:          feeds,
		Deliveries:     repos.Delivery,
		WarmInterval:   cfg.Schedule.WarmInterval,
		PruneInterval:  cfg.Schedule.PruneInterval,
		KeepDeliveries: cfg.Schedule.KeepDeliveries,
		MaxWorkers:     cfg.Schedule.MaxWorkers,
	})
	sched.Start(ctx)
	defer sched.Stop()

	params := server.Params{
		Config:     cfg,
		Feeds:      feeds,
		Deliveries: repos.Delivery,
		Version:    revision,
		Debug:      opts.Debug,
	}
	if cfg.WebSub.Enabled {
		notifier := websub.New(websub.Config{
			HubURL:     cfg.WebSub.HubURL,
			Timeout:    cfg.WebSub.Timeout,
			MaxWorkers: cfg.WebSub.MaxWorkers,
			Log:        repos.Delivery,
		})
		defer notifier.Wait() // let in-flight hub pings finish before the database is closed
		params.Notifier = notifier
		lgr.Printf("[INFO] websub notifications enabled, hub %s", cfg.WebSub.HubURL)
	}

	if err := server.New(params).Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeCache returns the configured document cache and its release func
func makeCache(ctx context.Context, cfg *config.Config) (service.DocCache, func(), error) {
	switch cfg.Feed.Cache {
	case "redis":
		rc, err := cache.NewRedisCache(ctx, cfg.Feed.RedisAddr, cfg.Feed.RedisPrefix, cfg.Feed.CacheTTL)
		if err != nil {
			return nil, nil, err
		}
		return rc, func() {
			if err := rc.Close(); err != nil {
				lgr.Printf("[WARN] can't close redis cache: %v", err)
			}
		}, nil
	default:
		return cache.NewMemoryCache(cfg.Feed.CacheTTL, cfg.Feed.MaxKeys), func() {}, nil
	}
}

// snapshotImporter loads a CMS export into the local mirror
type snapshotImporter interface {
	ImportSnapshot(ctx context.Context, snap repository.Snapshot) (repository.ImportStats, error)
}

func importSnapshot(ctx context.Context, imp snapshotImporter, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from cli
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var snap repository.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}
	if _, err := imp.ImportSnapshot(ctx, snap); err != nil {
		return err
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.Out(os.Stdout), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
