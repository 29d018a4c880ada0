// feedcheck validates published feeds the way a feed reader sees them.
// Targets are URLs or local files. URLs are also re-requested with their ETag to confirm 304 support.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/craftdays/craftfeed/pkg/domain"
	"github.com/craftdays/craftfeed/pkg/feed"
)

// Opts with all CLI options
type Opts struct {
	Timeout time.Duration `short:"t" long:"timeout" env:"TIMEOUT" default:"15s" description:"request timeout"`
	Strict  bool          `long:"strict" description:"treat warnings as failures"`
	NoColor bool          `long:"no-color" env:"NO_COLOR" description:"disable color output"`
	Debug   bool          `long:"dbg" env:"DEBUG" description:"debug mode"`

	Args struct {
		Targets []string `positional-arg-name:"URL|FILE" required:"1"`
	} `positional-args:"yes"`
}

// report is the outcome of checking one target
type report struct {
	Target      string
	Format      domain.Format
	Result      domain.ValidationResult
	Title       string // as parsed by gofeed
	Items       int
	ParseErr    error
	Conditional string // empty for files
}

func (r report) ok(strict bool) bool {
	if !r.Result.Valid || r.ParseErr != nil {
		return false
	}
	return !strict || len(r.Result.Warnings) == 0
}

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if opts.NoColor {
		color.NoColor = true
	}
	if opts.Debug {
		lgr.Setup(lgr.Debug, lgr.Msec, lgr.LevelBraces)
	}

	fetcher := feed.NewHTTPFetcher(opts.Timeout)
	failed := 0
	for _, target := range opts.Args.Targets {
		rep, err := check(context.Background(), fetcher, target)
		if err != nil {
			color.New(color.FgHiRed).Fprintf(os.Stdout, "FAIL %s: %v\n", target, err)
			failed++
			continue
		}
		printReport(os.Stdout, rep, opts.Strict)
		if !rep.ok(opts.Strict) {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// check loads the target, validates it and confirms gofeed can read it
func check(ctx context.Context, fetcher *feed.HTTPFetcher, target string) (report, error) {
	rep := report{Target: target}
	isURL := strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")

	var content, etag string
	if isURL {
		res, err := fetcher.Fetch(ctx, target, "")
		if err != nil {
			return rep, err
		}
		content, etag = res.Content, res.ETag
		lgr.Printf("[DEBUG] fetched %s, %d bytes, etag %s", target, len(content), etag)
	} else {
		data, err := os.ReadFile(target) //nolint:gosec // path comes from cli
		if err != nil {
			return rep, fmt.Errorf("read %s: %w", target, err)
		}
		content = string(data)
	}

	rep.Format, rep.Result = feed.ValidateDetected(content)
	if parsed, err := fetcher.Parse(content); err != nil {
		rep.ParseErr = err
	} else {
		rep.Title, rep.Items = parsed.Title, len(parsed.Items)
	}

	if isURL {
		rep.Conditional = conditionalSupport(ctx, fetcher, target, etag)
	}
	return rep, nil
}

// conditionalSupport re-requests the feed with its ETag and describes how the server answered
func conditionalSupport(ctx context.Context, fetcher *feed.HTTPFetcher, target, etag string) string {
	if etag == "" {
		return "no ETag"
	}
	res, err := fetcher.Fetch(ctx, target, etag)
	switch {
	case err != nil:
		return "conditional request failed: " + err.Error()
	case res.NotModified():
		return "304 on matching ETag"
	default:
		return fmt.Sprintf("ETag ignored, got %d", res.Status)
	}
}

func printReport(w io.Writer, rep report, strict bool) {
	status := color.New(color.FgGreen).Sprint("OK  ")
	if !rep.ok(strict) {
		status = color.New(color.FgHiRed).Sprint("FAIL")
	}
	fmt.Fprintf(w, "%s %s [%s]", status, rep.Target, rep.Format)
	if rep.ParseErr == nil {
		fmt.Fprintf(w, " %q, %d items", rep.Title, rep.Items)
	}
	fmt.Fprintln(w)

	for _, e := range rep.Result.Errors {
		fmt.Fprintf(w, "  %s %s\n", color.New(color.FgHiRed).Sprint("error:"), e)
	}
	for _, e := range rep.Result.Warnings {
		fmt.Fprintf(w, "  %s %s\n", color.New(color.FgYellow).Sprint("warning:"), e)
	}
	if rep.ParseErr != nil {
		fmt.Fprintf(w, "  %s %v\n", color.New(color.FgHiRed).Sprint("reader:"), rep.ParseErr)
	}
	if rep.Conditional != "" {
		fmt.Fprintf(w, "  conditional: %s\n", rep.Conditional)
	}
}
