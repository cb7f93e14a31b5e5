package networth

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/networth/date"
)

// minorUnit describes a provider code quoting prices in 1/divisor of a major currency.
type minorUnit struct {
	major   string
	divisor float64
}

// minorUnits lists the raw provider codes of minor-unit quotes.
// Keys are case sensitive: "GBp" is pence, "GBP" is pounds.
var minorUnits = map[string]minorUnit{
	"GBp": {"GBP", 100},
	"GBX": {"GBP", 100},
	"ZAc": {"ZAR", 100},
	"ZAC": {"ZAR", 100},
	"ILA": {"ILS", 100},
}

// MinorUnitDivisor returns the factor native prices quoted in the raw
// provider code must be divided by to be expressed in the normalized currency.
//
// It is 1 for every code but minor-unit ones, and must be applied on the raw
// code since normalization loses that information.
func MinorUnitDivisor(raw string) float64 {
	if m, ok := minorUnits[strings.TrimSpace(raw)]; ok {
		return m.divisor
	}
	return 1
}

// Converter converts native currencies to the reporting currency.
//
// Rates are expressed as units of reporting currency per one unit of native
// currency: native amounts are multiplied by the rate.
type Converter struct {
	Market    MarketData
	Reporting string
	// Today returns the current date, date.Today when nil.
	Today func() date.Date
}

// NewConverter returns a Converter to the reporting currency.
func NewConverter(market MarketData, reporting string) *Converter {
	return &Converter{Market: market, Reporting: reporting}
}

func (c *Converter) today() date.Date {
	if c.Today == nil {
		return date.Today()
	}
	return c.Today()
}

// Normalize maps a raw provider code to a canonical 3-letter code.
//
// An empty code is the reporting currency. Minor-unit codes map to their
// major currency, the magnitude change is not applied, see MinorUnitDivisor.
func (c *Converter) Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return c.Reporting
	}
	if m, ok := minorUnits[code]; ok {
		return m.major
	}
	return strings.ToUpper(code)
}

// SpotRate returns the latest rate from 'from' to the reporting currency.
//
// It is 1 for the reporting currency, without any request.
func (c *Converter) SpotRate(ctx context.Context, from string) (float64, error) {
	from = c.Normalize(from)
	if from == c.Reporting {
		return 1.0, nil
	}
	today := c.today()
	rates, err := c.Market.ExchangeRates(ctx, from, c.Reporting, date.Range{From: today.Add(-7), To: today})
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s: %w", ErrRateUnavailable, from, c.Reporting, err)
	}
	if rates.Len() == 0 {
		return 0, fmt.Errorf("%w: no recent rate for %s%s", ErrRateUnavailable, from, c.Reporting)
	}
	_, rate := rates.Latest()
	return rate, nil
}

// RateSeries returns the daily rates from 'from' to the reporting currency within r.
//
// For the reporting currency it is a daily series of 1, without any request.
func (c *Converter) RateSeries(ctx context.Context, from string, r date.Range) (date.History[float64], error) {
	var rates date.History[float64]
	from = c.Normalize(from)
	if from == c.Reporting {
		for day := range r.Days() {
			rates.Append(day, 1.0)
		}
		return rates, nil
	}
	rates, err := c.Market.ExchangeRates(ctx, from, c.Reporting, r)
	if err != nil {
		return rates, fmt.Errorf("%w: %s%s from %s to %s: %w", ErrRateUnavailable, from, c.Reporting, r.From, r.To, err)
	}
	if rates.Len() == 0 {
		return rates, fmt.Errorf("%w: no rates for %s%s from %s to %s", ErrRateUnavailable, from, c.Reporting, r.From, r.To)
	}
	return rates, nil
}

// TickerCurrency returns the raw provider currency code of ticker and its
// normalized code. On failure it is the reporting currency.
func (c *Converter) TickerCurrency(ctx context.Context, ticker string) (raw, code string) {
	info, err := c.Market.Info(ctx, ticker)
	if err != nil {
		return "", c.Reporting
	}
	return info.Currency, c.Normalize(info.Currency)
}
