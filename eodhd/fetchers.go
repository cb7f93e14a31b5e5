package eodhd

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

// bar is a day of the /eod endpoint.
type bar struct {
	Date  date.Date       `json:"date"`
	Open  decimal.Decimal `json:"open"`
	Close decimal.Decimal `json:"close"`
	// AdjustedClose decimal.Decimal `json:"adjusted_close"`
}

// fetchBars returns the daily bars of ticker from 'from' to 'to', bounds included.
func (c *Client) fetchBars(ctx context.Context, ticker string, from, to date.Date) ([]bar, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json&from=2024-01-01&to=2024-02-13
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	},
	// time is limited to 1 year with free subscription.
	params := map[string]string{"from": from.String(), "to": to.String()}
	bars := make([]bar, 0)
	if err := c.get(ctx, c.daily, "/eod/"+url.PathEscape(ticker), params, &bars); err != nil {
		return nil, err
	}
	return bars, nil
}

// Quote returns the live quote of ticker.
//
// The currency is left empty: the real-time endpoint does not report it.
func (c *Client) Quote(ctx context.Context, ticker string) (networth.Quote, error) {
	// https://eodhd.com/api/real-time/AAPL.US?api_token=demo&fmt=json
	// {"code":"AAPL.US","timestamp":1757102400,"gmtoffset":0,"open":240,"high":241.32,
	//  "low":238.49,"close":239.69,"volume":54870397,"previousClose":239.78,"change":-0.09,"change_p":-0.0375}
	// missing values are reported as "NA".
	var payload any
	if err := c.get(ctx, c.live, "/real-time/"+url.PathEscape(ticker), nil, &payload); err != nil {
		return networth.Quote{}, err
	}
	q := networth.Quote{
		Price:         number(payload, "$.close"),
		PreviousClose: number(payload, "$.previousClose"),
	}
	if q.Price <= 0 && q.PreviousClose <= 0 {
		return q, fmt.Errorf("%w: no quote for %s", networth.ErrDataUnavailable, ticker)
	}
	return q, nil
}

// number returns the number at path in the json document, 0 when missing or not a number.
func number(doc any, path string) float64 {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return 0
		}
		v = list[0]
	}
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// SearchResult matches the structure of a single item in the EODHD search API response.
type SearchResult struct {
	Code          string  `json:"Code"`
	Exchange      string  `json:"Exchange"`
	Name          string  `json:"Name"`
	Type          string  `json:"Type"`
	Country       string  `json:"Country"`
	Currency      string  `json:"Currency"`
	ISIN          string  `json:"ISIN"`
	PreviousClose float64 `json:"previousClose"`
}

// Ticker returns the EODHD ticker of the result, like "AAPL.US".
func (r SearchResult) Ticker() string { return r.Code + "." + r.Exchange }

// Search searches for tickers matching term.
func (c *Client) Search(ctx context.Context, term string) ([]SearchResult, error) {
	results := make([]SearchResult, 0)
	if err := c.get(ctx, c.monthly, "/search/"+url.PathEscape(term), nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Info returns the name, type and currency of ticker.
//
// The first trade date is left unknown.
func (c *Client) Info(ctx context.Context, ticker string) (networth.TickerInfo, error) {
	code, exchange, _ := strings.Cut(ticker, ".")
	results, err := c.Search(ctx, code)
	if err != nil {
		return networth.TickerInfo{}, err
	}
	for _, r := range results {
		if !strings.EqualFold(r.Code, code) {
			continue
		}
		if exchange != "" && !strings.EqualFold(r.Exchange, exchange) {
			continue
		}
		return networth.TickerInfo{Name: r.Name, Type: r.Type, Currency: r.Currency}, nil
	}
	return networth.TickerInfo{}, fmt.Errorf("%w: unknown ticker %s", networth.ErrDataUnavailable, ticker)
}
