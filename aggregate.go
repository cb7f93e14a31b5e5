package networth

import (
	"context"
	"log/slog"

	"github.com/etnz/networth/date"
)

// Window returns the query window covering all holdings: from the earliest
// purchase date (a year ago if none is known) to tomorrow, so that today's
// bar is included.
func Window(holdings Holdings, today date.Date) date.Range {
	var start date.Date
	for _, h := range holdings {
		if h.PurchaseDate.IsZero() {
			continue
		}
		if start.IsZero() || h.PurchaseDate.Before(start) {
			start = h.PurchaseDate
		}
	}
	if start.IsZero() {
		start = today.Add(-365)
	}
	return date.Range{From: start, To: today.Add(1)}
}

// Aggregate returns the total value series of the holdings.
//
// Every holding series is forward-filled on the union of all dates, and
// contributes nothing before its own first date. When the last date is
// before today, a today value is appended, computed from the holdings
// current price. Holdings that cannot be valued are logged and left out.
func Aggregate(ctx context.Context, v *Valuator, holdings Holdings, today date.Date, logger *slog.Logger) date.History[float64] {
	if logger == nil {
		logger = slog.Default()
	}
	window := Window(holdings, today)

	var series []*date.History[float64]
	for _, h := range holdings {
		if !h.counted() || h.Ticker == "" {
			logger.Debug("holding skipped", slog.String("ticker", h.Ticker), slog.Float64("shares", h.Shares))
			continue
		}
		val := v.Value(ctx, h, window)
		if val.Outcome != Valued {
			logger.Warn("holding omitted from the value series",
				slog.String("ticker", h.Ticker),
				slog.String("outcome", val.Outcome.String()),
				slog.Any("error", val.Err),
			)
			continue
		}
		series = append(series, &val.Series)
	}

	var total date.History[float64]
	if len(series) == 0 {
		return total
	}

	for day := range date.Iterate(series...) {
		sum := 0.0
		for _, s := range series {
			if value, ok := s.ValueAsOf(day); ok {
				sum += value
			}
		}
		total.Append(day, sum)
	}

	if latest, _ := total.Latest(); latest.Before(today) {
		total.Append(today, snapshot(holdings, today))
	}
	return total
}

// snapshot returns the value of the holdings purchased on or before day, at their current price.
func snapshot(holdings Holdings, day date.Date) float64 {
	sum := 0.0
	for _, h := range holdings {
		if !h.counted() || h.PurchaseDate.After(day) {
			continue
		}
		sum += h.Value()
	}
	return sum
}
