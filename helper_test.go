package networth

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/networth/date"
)

// fakeMarket is an in-memory MarketData for tests. It counts requests per method.
type fakeMarket struct {
	closes map[string]date.History[float64] // by ticker
	rates  map[string]date.History[float64] // by "FROMTO"
	infos  map[string]TickerInfo
	quotes map[string]Quote
	err    error // returned by every call when set

	calls map[string]int
}

func newFakeMarket() *fakeMarket {
	return &fakeMarket{
		closes: make(map[string]date.History[float64]),
		rates:  make(map[string]date.History[float64]),
		infos:  make(map[string]TickerInfo),
		quotes: make(map[string]Quote),
		calls:  make(map[string]int),
	}
}

// withCloses registers daily closes of ticker, one value per day starting on from.
func (m *fakeMarket) withCloses(ticker string, from date.Date, values ...float64) *fakeMarket {
	h := m.closes[ticker]
	for i, v := range values {
		h.Append(from.Add(i), v)
	}
	m.closes[ticker] = h
	return m
}

// withRates registers a constant rate from 'from' to 'to' for every day of r.
func (m *fakeMarket) withRates(from, to string, r date.Range, rate float64) *fakeMarket {
	h := m.rates[from+to]
	for day := range r.Days() {
		h.Append(day, rate)
	}
	m.rates[from+to] = h
	return m
}

func (m *fakeMarket) withInfo(ticker string, info TickerInfo) *fakeMarket {
	m.infos[ticker] = info
	return m
}

func (m *fakeMarket) withQuote(ticker string, q Quote) *fakeMarket {
	m.quotes[ticker] = q
	return m
}

// total returns the number of requests made.
func (m *fakeMarket) total() int {
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

// within returns the part of h within r.
func within(h date.History[float64], r date.Range) date.History[float64] {
	var res date.History[float64]
	for day, v := range h.Values() {
		if r.Contains(day) {
			res.Append(day, v)
		}
	}
	return res
}

func (m *fakeMarket) DailyCloses(ctx context.Context, ticker string, r date.Range) (date.History[float64], error) {
	m.calls["DailyCloses"]++
	if m.err != nil {
		return date.History[float64]{}, m.err
	}
	h, ok := m.closes[ticker]
	if !ok {
		return h, fmt.Errorf("%w: unknown ticker %s", ErrDataUnavailable, ticker)
	}
	return within(h, r), nil
}

func (m *fakeMarket) ExchangeRates(ctx context.Context, from, to string, r date.Range) (date.History[float64], error) {
	m.calls["ExchangeRates"]++
	if m.err != nil {
		return date.History[float64]{}, m.err
	}
	h, ok := m.rates[from+to]
	if !ok {
		return h, fmt.Errorf("%w: unknown pair %s%s", ErrDataUnavailable, from, to)
	}
	return within(h, r), nil
}

func (m *fakeMarket) Info(ctx context.Context, ticker string) (TickerInfo, error) {
	m.calls["Info"]++
	if m.err != nil {
		return TickerInfo{}, m.err
	}
	info, ok := m.infos[ticker]
	if !ok {
		return info, fmt.Errorf("%w: no info for %s", ErrDataUnavailable, ticker)
	}
	return info, nil
}

func (m *fakeMarket) Quote(ctx context.Context, ticker string) (Quote, error) {
	m.calls["Quote"]++
	if m.err != nil {
		return Quote{}, m.err
	}
	q, ok := m.quotes[ticker]
	if !ok {
		return q, fmt.Errorf("%w: no quote for %s", ErrDataUnavailable, ticker)
	}
	return q, nil
}

var errNetwork = errors.New("connection refused")

// fixedDay returns a Today function always returning day.
func fixedDay(day date.Date) func() date.Date {
	return func() date.Date { return day }
}

// CHF is a helper for test to create Swiss franc money from const.
func CHF(v float64) Money { return M(v, "CHF") }
