package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hackeroos/hackfeed/internal/config"
	"github.com/hackeroos/hackfeed/internal/event"
	"github.com/hackeroos/hackfeed/internal/feed"
	"github.com/hackeroos/hackfeed/internal/fetcher"
	"github.com/hackeroos/hackfeed/internal/filter"
	"github.com/hackeroos/hackfeed/internal/logger"
	"github.com/hackeroos/hackfeed/internal/merge"
	"github.com/hackeroos/hackfeed/internal/notifier"
	"github.com/hackeroos/hackfeed/internal/source"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNewEvents = 2
)

var (
	flagFeedPath   string
	flagSources    []string
	flagFormat     string
	flagInterval   time.Duration
	flagNotify     string
	flagDryRun     bool
	flagVerbose    bool
	flagOnlineOnly bool
	flagKeywords   []string
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hackfeed",
		Short: "Scrape hackathon listings into the community feed",
		Long: `hackfeed fetches hackathon listings from Devpost, MLH, and the curated
file, merges them into one deduplicated feed, and atomically rewrites the
JSON file the Discord bot reads. New entries since the previous run can be
pushed to a Discord webhook or cross-posted to Twitter.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagFeedPath, "feed", "", "Feed file path (defaults to config feed_path)")
	cmd.Flags().StringSliceVar(&flagSources, "sources", nil, "Sources to scrape (defaults to config sources)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().DurationVar(&flagInterval, "interval", 0, "Run continuously at this interval (0 = run once)")
	cmd.Flags().StringVar(&flagNotify, "notify", "", "Notify target for new events: discord, twitter, or dry-run")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Skip writing the feed file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flagOnlineOnly, "online-only", false, "Keep only online events in the feed")
	cmd.Flags().StringSliceVar(&flagKeywords, "keyword", nil, "Keep only events whose title contains a keyword")

	return cmd
}

// runScrape is the main command logic.
func runScrape(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	logger.Setup(cfg.Environment)

	if flagFeedPath != "" {
		cfg.FeedPath = flagFeedPath
	}
	if len(flagSources) > 0 {
		cfg.Sources = flagSources
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	notify, err := buildNotifier(flagNotify, cfg)
	if err != nil {
		return err
	}

	f := fetcher.New(cfg.FetchTimeout, cfg.FetchRetries)
	if cfg.RenderJS {
		f = f.WithRenderer(fetcher.NewChromeRenderer(cfg.RenderWait))
	}
	sources := source.Enabled(cfg, f)
	if len(sources) == 0 {
		return fmt.Errorf("no sources enabled (check --sources / config)")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if flagInterval > 0 {
		return runLoop(ctx, cfg, sources, notify, format)
	}

	result, err := runOnce(ctx, cfg, sources, notify)
	if err != nil {
		return err
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(result.NewEvents) > 0 {
		os.Exit(ExitNewEvents)
	}
	os.Exit(ExitSuccess)
	return nil
}

// runLoop runs the pipeline on a fixed interval until the context is
// cancelled. The first run happens immediately.
func runLoop(ctx context.Context, cfg config.Config, sources []source.Source, notify notifier.Notifier, format OutputFormat) error {
	ticker := time.NewTicker(flagInterval)
	defer ticker.Stop()

	for {
		result, err := runOnce(ctx, cfg, sources, notify)
		if err != nil {
			slog.Error("scrape run failed", "err", err)
		} else if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
			slog.Error("writing output", "err", err)
		}

		select {
		case <-ctx.Done():
			slog.Info("shutting down")
			return nil
		case <-ticker.C:
		}
	}
}

// runOnce executes one full scrape: fetch every source, merge, trim, diff
// against the previous feed, write, notify. Per-source failures are logged
// and skipped; only a feed write failure is fatal.
func runOnce(ctx context.Context, cfg config.Config, sources []source.Source, notify notifier.Notifier) (*RunResult, error) {
	result := &RunResult{StartedAt: time.Now().UTC()}

	lists := make([][]event.HackathonEvent, 0, len(sources))
	for _, src := range sources {
		events, err := src.Fetch(ctx)
		if err != nil {
			slog.Warn("source failed, skipping", "source", src.Name(), "err", err)
			result.Sources = append(result.Sources, SourceResult{Name: src.Name(), Error: err.Error()})
			continue
		}

		slog.Debug("source fetched", "source", src.Name(), "count", len(events))
		result.Sources = append(result.Sources, SourceResult{Name: src.Name(), Fetched: len(events)})
		lists = append(lists, events)
	}

	merged := merge.Merge(lists...)
	merged = feed.Trim(merged, time.Now().UTC(), cfg.MaxEvents)

	fl := &filter.Filter{OnlineOnly: flagOnlineOnly, Keywords: flagKeywords}
	merged = fl.Apply(merged)
	result.Merged = len(merged)

	previous, err := feed.Load(cfg.FeedPath)
	if err != nil {
		// A corrupt previous feed only costs us the diff; the rewrite
		// below repairs the file.
		slog.Warn("could not load previous feed", "path", cfg.FeedPath, "err", err)
	}
	result.NewEvents = feed.Diff(previous, merged)

	if flagDryRun {
		slog.Info("dry run, not writing feed", "path", cfg.FeedPath, "events", len(merged))
	} else {
		if err := feed.Write(cfg.FeedPath, merged); err != nil {
			return nil, err
		}
		slog.Info("feed written", "path", cfg.FeedPath, "events", len(merged), "new", len(result.NewEvents))
	}

	if notify != nil && len(result.NewEvents) > 0 {
		if err := notify.Notify(result.NewEvents); err != nil {
			slog.Error("notification failed", "err", err)
		}
	}

	return result, nil
}

// buildNotifier maps the --notify flag to an implementation.
func buildNotifier(target string, cfg config.Config) (notifier.Notifier, error) {
	switch target {
	case "":
		return nil, nil
	case "dry-run":
		return notifier.NewDryRunNotifier(), nil
	case "discord":
		return notifier.NewDiscordNotifier(cfg.DiscordWebhookURL)
	case "twitter":
		return notifier.NewTwitterNotifier()
	default:
		return nil, fmt.Errorf("unknown notify target: %s (must be discord, twitter, or dry-run)", target)
	}
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
