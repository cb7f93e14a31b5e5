// Package cmd implements the CLI application to value a portfolio.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/networth"
	"github.com/etnz/networth/config"
	"github.com/etnz/networth/eodhd"
	"github.com/google/subcommands"
	"github.com/redis/go-redis/v9"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "portfolio")
	c.Register(&chartCmd{}, "portfolio")
	c.Register(&watchCmd{}, "portfolio")

	c.Register(&quoteCmd{}, "market")
	c.Register(&searchCmd{}, "market")

	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currencyFlag = flag.String("currency", "", "Reporting currency, overrides NETWORTH_CURRENCY")
var envFile = flag.String("env-file", ".env", "Path to the .env file, missing is ok")
var rawFlag = flag.Bool("raw", false, "Print raw markdown instead of rendering it for the terminal")

// app holds what the commands share.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	market *eodhd.Client
	engine *networth.Engine
}

// newApp loads the configuration and wires the market data client and the engine.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, err
	}
	if *currencyFlag != "" {
		cfg.Currency = *currencyFlag
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	market := eodhd.New(eodhd.Options{
		APIKey:            cfg.EODHD.APIKey,
		BaseURL:           cfg.EODHD.BaseURL,
		Timeout:           cfg.EODHD.Timeout,
		RequestsPerSecond: cfg.EODHD.RequestsPerSecond,
		Burst:             cfg.EODHD.Burst,
		Store:             store,
		Logger:            logger,
	})
	return &app{
		cfg:    cfg,
		logger: logger,
		market: market,
		engine: networth.NewEngine(market, cfg.Currency, logger),
	}, nil
}

// newStore returns the response cache selected by the configuration, nil for none.
func newStore(ctx context.Context, cfg *config.Config) (eodhd.Store, error) {
	switch cfg.Cache.Backend {
	case config.CacheNone:
		return nil, nil
	case config.CacheRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return eodhd.NewRedisStore(rdb), nil
	default:
		return eodhd.DiskStore{Dir: cfg.Cache.Dir}, nil
	}
}

// printMarkdown renders md for the terminal, or prints it raw when asked to or when rendering fails.
func printMarkdown(md string) {
	if !*rawFlag {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err == nil {
			out, err := r.Render(md)
			if err == nil {
				fmt.Print(out)
				return
			}
		}
	}
	fmt.Print(md)
	if !strings.HasSuffix(md, "\n") {
		fmt.Println()
	}
}
