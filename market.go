package networth

import (
	"context"

	"github.com/etnz/networth/date"
)

// MarketData is the collaborator that retrieves raw market data.
//
// Prices and rates are returned as is: in the ticker native currency,
// reported with the provider raw currency code. Implementations report a
// request that succeeded with nothing to return with an error wrapping
// ErrDataUnavailable. Calls are blocking and attempted once.
type MarketData interface {
	// DailyCloses returns the daily closing prices of ticker within r.
	DailyCloses(ctx context.Context, ticker string, r date.Range) (date.History[float64], error)
	// ExchangeRates returns the daily rates within r, as units of 'to' per one unit of 'from'.
	ExchangeRates(ctx context.Context, from, to string, r date.Range) (date.History[float64], error)
	// Info returns best-effort metadata about ticker.
	Info(ctx context.Context, ticker string) (TickerInfo, error)
	// Quote returns the latest quote of ticker.
	Quote(ctx context.Context, ticker string) (Quote, error)
}
