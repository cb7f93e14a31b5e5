package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/etnz/networth/renderer"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/subcommands"
)

type watchCmd struct {
	file  string
	every time.Duration
	width int
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "periodically revalue a list of orders" }
func (*watchCmd) Usage() string {
	return `nw watch -f <orders file> [-every <interval>]

  Like 'chart', but reads the orders file again and displays the portfolio
  at every interval, until interrupted. The default interval is
  NETWORTH_WATCH_INTERVAL.

Usage Examples:
$ nw watch -f orders.txt -every 15m
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "orders.txt", "Orders file")
	f.DurationVar(&c.every, "every", 0, "Refresh interval")
	f.IntVar(&c.width, "width", 0, "Chart width in characters")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.every <= 0 {
		c.every = a.cfg.WatchInterval
	}

	refresh := func(ctx context.Context) error {
		holdings, err := loadHoldings(ctx, a.engine, c.file)
		if err != nil {
			return err
		}
		view := a.engine.Recompute(ctx, holdings)
		printMarkdown(renderer.RenderView(&view, renderer.ViewRenderOptions{Width: c.width}))
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scheduler: %v\n", err)
		return subcommands.ExitFailure
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(c.every),
		gocron.NewTask(withRecover(a.logger, "refresh", refresh)),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scheduling refresh: %v\n", err)
		return subcommands.ExitFailure
	}

	scheduler.Start()
	<-ctx.Done()
	if err := scheduler.Shutdown(); err != nil {
		a.logger.Warn("scheduler shutdown", slog.Any("error", err))
	}
	return subcommands.ExitSuccess
}

// withRecover wraps a job function so that failures and panics are logged instead of stopping the watch.
func withRecover(logger *slog.Logger, name string, fn func(ctx context.Context) error) func(ctx context.Context) {
	return func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered in job",
					slog.String("jobName", name),
					slog.Any("panic", r),
					slog.String("stacktrace", string(debug.Stack())),
				)
			}
		}()
		if err := fn(ctx); err != nil {
			logger.Error("job failed", slog.String("jobName", name), slog.Any("error", err))
		}
	}
}
