package networth

import (
	"context"
	"log/slog"

	"github.com/etnz/networth/date"
)

// Position is the display view of a single holding.
type Position struct {
	Holding
	Profit Money
	Gain   Percent
}

// NewPosition returns the position of h, amounts in currency.
func NewPosition(h Holding, currency string) Position {
	return Position{Holding: h, Profit: M(h.Profit(), currency), Gain: h.Gain()}
}

// View is everything the presentation layer needs after a recompute.
type View struct {
	Currency  string
	Chart     Chart
	Summary   Summary
	Latest    Money // last value of the total series, zero without series
	Positions []Position
}

// Engine computes Views in a reporting currency.
//
// An Engine keeps no state between calls: each Recompute starts from the
// holdings and the market data.
type Engine struct {
	Market   MarketData
	Currency string
	Logger   *slog.Logger     // slog.Default() when nil
	Today    func() date.Date // date.Today when nil
}

// NewEngine returns an Engine reporting in currency.
func NewEngine(market MarketData, currency string, logger *slog.Logger) *Engine {
	return &Engine{Market: market, Currency: currency, Logger: logger}
}

func (e *Engine) today() date.Date {
	if e.Today == nil {
		return date.Today()
	}
	return e.Today()
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Converter returns the currency converter of the engine.
func (e *Engine) Converter() *Converter {
	return &Converter{Market: e.Market, Reporting: e.Currency, Today: e.Today}
}

// Recompute values the holdings and returns the chart and summary of the portfolio.
//
// It never fails: holdings that cannot be valued are left out of the chart
// but still count in the summary.
func (e *Engine) Recompute(ctx context.Context, holdings Holdings) View {
	today := e.today()
	v := View{
		Currency: e.Currency,
		Chart:    EmptyChart(),
		Summary:  Summarize(holdings, e.Currency),
		Latest:   M(0, e.Currency),
	}
	for _, h := range holdings {
		v.Positions = append(v.Positions, NewPosition(h, e.Currency))
	}
	if len(holdings) == 0 {
		return v
	}

	valuator := &Valuator{Market: e.Market, Converter: e.Converter()}
	total := Aggregate(ctx, valuator, holdings, today, e.logger())
	if total.Len() == 0 {
		return v
	}
	_, latest := total.Latest()
	v.Latest = M(latest, e.Currency)
	v.Chart = BuildChart(&total, e.Currency)
	e.logger().Debug("recomputed",
		slog.Int("holdings", len(holdings)),
		slog.Int("points", total.Len()),
		slog.String("latest", v.Latest.String()),
	)
	return v
}

// Add validates the order and appends the new holding to holdings.
func (e *Engine) Add(ctx context.Context, holdings *Holdings, o Order) (Holding, error) {
	h, err := NewHolding(ctx, e.Market, e.Converter(), o, e.today())
	if err != nil {
		return h, err
	}
	holdings.Add(h)
	return h, nil
}
