// Package eodhd retrieves market data from the EOD Historical Data API.
//
// The Client implements networth.MarketData. Historical responses are cached
// in a Store for the day, ticker metadata for the month.
package eodhd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the EODHD API root.
const DefaultBaseURL = "https://eodhd.com/api"

// Options configures a Client.
type Options struct {
	APIKey            string
	BaseURL           string        // DefaultBaseURL when empty
	Timeout           time.Duration // 30s when zero
	RequestsPerSecond float64       // unlimited when zero
	Burst             int
	Store             Store // no cache when nil
	Logger            *slog.Logger
	Today             func() date.Date // date.Today when nil
}

// Client is a networth.MarketData backed by EODHD.
type Client struct {
	apiKey  string
	live    *resty.Client // never cached
	daily   *resty.Client
	monthly *resty.Client
	logger  *slog.Logger
}

var _ networth.MarketData = (*Client)(nil)

// limited is an http.RoundTripper waiting for the limiter before each request.
type limited struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (l *limited) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := l.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return l.base.RoundTrip(req)
}

// New returns a Client.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Today == nil {
		opts.Today = date.Today
	}

	// requests are limited below the cache, so cache hits are free.
	var transport http.RoundTripper = http.DefaultTransport
	if opts.RequestsPerSecond > 0 {
		burst := max(opts.Burst, 1)
		transport = &limited{base: transport, limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)}
	}

	newClient := func(rt http.RoundTripper) *resty.Client {
		return resty.New().
			SetBaseURL(opts.BaseURL).
			SetTimeout(opts.Timeout).
			SetTransport(rt)
	}
	cached := func(period date.Period) http.RoundTripper {
		if opts.Store == nil {
			return transport
		}
		return &cache{base: transport, store: opts.Store, period: period, today: opts.Today, logger: opts.Logger}
	}

	return &Client{
		apiKey:  opts.APIKey,
		live:    newClient(transport),
		daily:   newClient(cached(date.Daily)),
		monthly: newClient(cached(date.Monthly)),
		logger:  opts.Logger,
	}
}

// get performs a GET request on path and decodes the JSON response into out.
//
// A 404 is reported as networth.ErrDataUnavailable.
func (c *Client) get(ctx context.Context, rc *resty.Client, path string, params map[string]string, out any) error {
	resp, err := rc.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		SetQueryParam("api_token", c.apiKey).
		SetQueryParam("fmt", "json").
		Get(path)
	if err != nil {
		c.logger.Error("eodhd request failed", slog.String("path", path), slog.String("err", err.Error()))
		return fmt.Errorf("cannot http GET %s: %w", path, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: http GET %s: %s", networth.ErrDataUnavailable, path, resp.Status())
	}
	if resp.IsError() {
		return fmt.Errorf("cannot http GET %s: %s", path, resp.Status())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return nil
}

// DailyCloses returns the daily close prices of ticker within r.
// The EODHD ticker format is typically "SYMBOL.EXCHANGECODE".
func (c *Client) DailyCloses(ctx context.Context, ticker string, r date.Range) (date.History[float64], error) {
	var closes date.History[float64]
	bars, err := c.fetchBars(ctx, ticker, r.From, r.To)
	if err != nil {
		return closes, err
	}
	for _, b := range bars {
		if b.Close.IsPositive() {
			closes.Append(b.Date, b.Close.InexactFloat64())
		}
	}
	if closes.Len() == 0 {
		return closes, fmt.Errorf("%w: no prices for %s from %s to %s", networth.ErrDataUnavailable, ticker, r.From, r.To)
	}
	return closes, nil
}

// ExchangeRates returns the daily rates of the FROMTO.FOREX ticker within r.
func (c *Client) ExchangeRates(ctx context.Context, from, to string, r date.Range) (date.History[float64], error) {
	var rates date.History[float64]
	ticker := fmt.Sprintf("%s%s.FOREX", from, to)
	bars, err := c.fetchBars(ctx, ticker, r.From.Add(1), r.To.Add(1))
	if err != nil {
		return rates, err
	}
	// eodhd forex close is often equal to the open. The open of the next day
	// is closer to the truth, so be it.
	for _, b := range bars {
		if b.Open.IsPositive() {
			rates.Append(b.Date.Add(-1), b.Open.InexactFloat64())
		}
	}
	if rates.Len() == 0 {
		return rates, fmt.Errorf("%w: no rates for %s from %s to %s", networth.ErrDataUnavailable, ticker, r.From, r.To)
	}
	return rates, nil
}
