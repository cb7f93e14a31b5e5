package networth

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/networth/date"
)

// Outcome tells how a holding valuation went.
type Outcome int

const (
	Valued Outcome = iota // the series is usable
	NoData                // the provider had nothing to return
	Failed                // the provider failed
)

func (o Outcome) String() string {
	switch o {
	case Valued:
		return "valued"
	case NoData:
		return "no data"
	default:
		return "failed"
	}
}

// Valuation is the value series of one holding, in the reporting currency.
type Valuation struct {
	Holding Holding
	Series  date.History[float64]
	Outcome Outcome
	Err     error // why the series is missing
}

func (v Valuation) fail(err error) Valuation {
	v.Err = err
	v.Outcome = Failed
	if errors.Is(err, ErrDataUnavailable) {
		v.Outcome = NoData
	}
	return v
}

// Valuator computes holding value series.
type Valuator struct {
	Market    MarketData
	Converter *Converter
}

// Value returns the value series of h within window.
//
// The series starts on the purchase date with exactly the purchase value,
// whatever the market reported that day, then follows the market closes
// converted to the reporting currency.
func (v *Valuator) Value(ctx context.Context, h Holding, window date.Range) Valuation {
	res := Valuation{Holding: h}

	closes, err := v.Market.DailyCloses(ctx, h.Ticker, window)
	if err == nil && closes.Len() == 0 {
		err = fmt.Errorf("%w: no prices for %s", ErrDataUnavailable, h.Ticker)
	}
	if err != nil {
		return res.fail(err)
	}

	raw, code := v.Converter.TickerCurrency(ctx, h.Ticker)
	prices := closes
	if code != v.Converter.Reporting {
		rates, err := v.Converter.RateSeries(ctx, code, window)
		if err != nil {
			return res.fail(err)
		}
		prices = convert(&closes, &rates)
	}

	divisor := MinorUnitDivisor(raw)
	var value date.History[float64]
	for day, price := range prices.Values() {
		value.Append(day, price/divisor*h.Shares)
	}

	// an unknown purchase date keeps the whole series, without anchor.
	if !h.PurchaseDate.IsZero() {
		value = value.Since(h.PurchaseDate)
		if h.PurchasePrice > 0 {
			value.Append(h.PurchaseDate, h.Cost())
		}
	}
	if value.Len() == 0 {
		return res.fail(fmt.Errorf("%w: no prices for %s since %s", ErrDataUnavailable, h.Ticker, h.PurchaseDate))
	}

	res.Series = value
	res.Outcome = Valued
	return res
}

// convert multiplies prices by the rates forward-filled on the price days.
// Days without any previous rate are dropped.
func convert(prices, rates *date.History[float64]) date.History[float64] {
	res := rates.Resample(slices.Values(prices.Days()))
	for day, rate := range res.Values() {
		price, _ := prices.Get(day)
		res.Append(day, price*rate)
	}
	return res
}
