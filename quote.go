package networth

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/networth/date"
)

// CurrentPrice returns the latest price of ticker in the reporting currency.
//
// The native price is the live quote, else the previous close, else the
// latest close of the last days. It fails with ErrPriceUnavailable when none
// is available and ErrRateUnavailable when it cannot be converted.
func CurrentPrice(ctx context.Context, market MarketData, conv *Converter, ticker string) (float64, error) {
	q, err := market.Quote(ctx, ticker)
	price := q.Price
	if price <= 0 {
		price = q.PreviousClose
	}
	raw := q.Currency

	if price <= 0 {
		// market closed or no live data: fall back to the recent history.
		today := conv.today()
		closes, herr := market.DailyCloses(ctx, ticker, date.Range{From: today.Add(-7), To: today})
		if herr == nil && closes.Len() > 0 {
			_, price = closes.Latest()
		}
		err = errors.Join(err, herr)
	}
	if price <= 0 {
		if err != nil {
			return 0, fmt.Errorf("%w: no price data available for ticker %s: %w", ErrPriceUnavailable, ticker, err)
		}
		return 0, fmt.Errorf("%w: no price data available for ticker %s", ErrPriceUnavailable, ticker)
	}

	if raw == "" {
		raw, _ = conv.TickerCurrency(ctx, ticker)
	}
	price /= MinorUnitDivisor(raw)

	rate, err := conv.SpotRate(ctx, raw)
	if err != nil {
		return 0, err
	}
	return price * rate, nil
}

// FirstTradeDate returns the first day ticker has a price, or the zero Date when unknown.
func FirstTradeDate(ctx context.Context, market MarketData, ticker string, today date.Date) date.Date {
	if info, err := market.Info(ctx, ticker); err == nil && !info.FirstTrade.IsZero() {
		return info.FirstTrade
	}
	closes, err := market.DailyCloses(ctx, ticker, date.Range{From: date.New(1970, 1, 1), To: today})
	if err != nil || closes.Len() == 0 {
		return date.Date{}
	}
	first, _ := closes.First()
	return first
}
