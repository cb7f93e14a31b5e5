package networth

import (
	"context"
	"log/slog"
	"testing"

	"github.com/etnz/networth/date"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	today := date.New(2025, 3, 14)
	holdings := Holdings{
		{Ticker: "A", PurchaseDate: date.New(2025, 2, 1)},
		{Ticker: "B", PurchaseDate: date.New(2024, 12, 24)},
		{Ticker: "C"},
	}
	assert.Equal(t, date.Range{From: date.New(2024, 12, 24), To: date.New(2025, 3, 15)}, Window(holdings, today))
	assert.Equal(t, date.Range{From: today.Add(-365), To: today.Add(1)}, Window(nil, today))
}

func TestAggregate_ForwardFill(t *testing.T) {
	today := date.New(2025, 3, 14)
	d := date.New(2025, 3, 3)
	market := newFakeMarket().
		withCloses("A", d, 10, 11, 12).
		withCloses("B", d.Add(1), 100).
		withCloses("B", d.Add(3), 120)
	v := &Valuator{Market: market, Converter: NewConverter(market, "CHF")}
	holdings := Holdings{
		{Ticker: "A", Shares: 1, PurchaseDate: d, CurrentPrice: 13},
		{Ticker: "B", Shares: 1, PurchaseDate: d.Add(1), CurrentPrice: 130},
	}

	total := Aggregate(context.Background(), v, holdings, today, nil)

	want := []float64{
		10,       // d: B not bought yet
		11 + 100, // d+1
		12 + 100, // d+2: B forward-filled
		12 + 120, // d+3: A forward-filled
		13 + 130, // today snapshot
	}
	var got []float64
	for _, value := range total.Values() {
		got = append(got, value)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, []date.Date{d, d.Add(1), d.Add(2), d.Add(3), today}, total.Days())
}

func TestAggregate_TodaySnapshotOnce(t *testing.T) {
	today := date.New(2025, 3, 14)
	market := newFakeMarket().withCloses("A", today.Add(-2), 10, 11, 12)
	v := &Valuator{Market: market, Converter: NewConverter(market, "CHF")}
	holdings := Holdings{{Ticker: "A", Shares: 2, PurchaseDate: today.Add(-2), CurrentPrice: 50}}

	total := Aggregate(context.Background(), v, holdings, today, nil)
	require.Equal(t, 3, total.Len())
	last, value := total.Latest()
	assert.Equal(t, today, last)
	assert.Equal(t, 24.0, value, "today close is kept, no snapshot")
}

func TestAggregate_TodaySnapshotSkipsFuturePurchases(t *testing.T) {
	today := date.New(2025, 3, 14)
	d := date.New(2025, 3, 10)
	market := newFakeMarket().
		withCloses("A", d, 10, 11, 12).
		withCloses("F", d, 900, 950)
	v := &Valuator{Market: market, Converter: NewConverter(market, "CHF")}
	holdings := Holdings{
		{Ticker: "A", Shares: 1, PurchaseDate: d, CurrentPrice: 13},
		{Ticker: "F", Shares: 1, PurchaseDate: today.Add(5), CurrentPrice: 1000},
	}

	total := Aggregate(context.Background(), v, holdings, today, slog.New(slog.DiscardHandler))
	last, value := total.Latest()
	assert.Equal(t, today, last)
	assert.Equal(t, 13.0, value, "holdings purchased after today are not in the snapshot")
}

func TestAggregate_Excluded(t *testing.T) {
	today := date.New(2025, 3, 14)
	d := date.New(2025, 3, 10)
	market := newFakeMarket().
		withCloses("A", d, 10).
		withCloses("Z", d, 1000)
	v := &Valuator{Market: market, Converter: NewConverter(market, "CHF")}
	holdings := Holdings{
		{Ticker: "A", Shares: 1, PurchaseDate: d, CurrentPrice: 10},
		{Ticker: "Z", Shares: 0, PurchaseDate: d, CurrentPrice: 1000},
		{Ticker: "Z", Shares: -3, PurchaseDate: d, CurrentPrice: 1000},
		{Ticker: "MISSING", Shares: 5, PurchaseDate: d, CurrentPrice: 1},
	}

	total := Aggregate(context.Background(), v, holdings, today, slog.New(slog.DiscardHandler))
	for _, value := range total.Values() {
		assert.Less(t, value, 100.0, "non positive shares are never counted")
	}
	assert.Equal(t, 2, market.calls["DailyCloses"], "no request for excluded holdings")
}

func TestAggregate_Empty(t *testing.T) {
	market := newFakeMarket()
	v := &Valuator{Market: market, Converter: NewConverter(market, "CHF")}
	total := Aggregate(context.Background(), v, Holdings{{Ticker: "X", Shares: 1}}, date.New(2025, 3, 14), nil)
	assert.Zero(t, total.Len())
}

// TestAggregate_Properties checks the series ordering and the purchase anchor
// over random close calendars.
func TestAggregate_Properties(t *testing.T) {
	today := date.New(2025, 3, 14)
	start := today.Add(-60)

	build := func(offsetsA, offsetsB []int, shares, price float64) (Holdings, *Valuator) {
		market := newFakeMarket()
		for _, o := range offsetsA {
			market.withCloses("A", start.Add(o), float64(o+1))
		}
		for _, o := range offsetsB {
			market.withCloses("B", start.Add(o), float64(2*o+1))
		}
		holdings := Holdings{
			{Ticker: "A", Shares: shares, PurchasePrice: price, PurchaseDate: start, CurrentPrice: price},
			{Ticker: "B", Shares: 1, PurchaseDate: start.Add(10), CurrentPrice: 1},
		}
		return holdings, &Valuator{Market: market, Converter: NewConverter(market, "CHF")}
	}

	properties := gopter.NewProperties(nil)

	properties.Property("dates are strictly ascending and end today", prop.ForAll(
		func(offsetsA, offsetsB []int, shares, price float64) bool {
			holdings, v := build(offsetsA, offsetsB, shares, price)
			total := Aggregate(context.Background(), v, holdings, today, slog.New(slog.DiscardHandler))
			if total.Len() == 0 {
				// nothing could be valued.
				return true
			}
			days := total.Days()
			for i := 1; i < len(days); i++ {
				if !days[i-1].Before(days[i]) {
					return false
				}
			}
			last, _ := total.Latest()
			return last == today
		},
		gen.SliceOf(gen.IntRange(0, 60)),
		gen.SliceOf(gen.IntRange(0, 60)),
		gen.Float64Range(0.01, 1000),
		gen.Float64Range(0.01, 1000),
	))

	properties.Property("purchase date value is the purchase cost", prop.ForAll(
		func(offsetsA []int, shares, price float64) bool {
			holdings, v := build(offsetsA, nil, shares, price)
			val := v.Value(context.Background(), holdings[0], Window(holdings, today))
			if val.Outcome != Valued {
				// no close at all for A.
				return len(offsetsA) == 0
			}
			value, ok := val.Series.Get(start)
			return ok && value == shares*price
		},
		gen.SliceOf(gen.IntRange(0, 60)),
		gen.Float64Range(0.01, 1000),
		gen.Float64Range(0.01, 1000),
	))

	properties.TestingRun(t)
}
