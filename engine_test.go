package networth

import (
	"context"
	"log/slog"
	"testing"

	"github.com/etnz/networth/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(market MarketData, today date.Date) *Engine {
	e := NewEngine(market, "CHF", slog.New(slog.DiscardHandler))
	e.Today = fixedDay(today)
	return e
}

func TestRecompute_Empty(t *testing.T) {
	market := newFakeMarket()
	e := newTestEngine(market, date.New(2025, 3, 14))

	v := e.Recompute(context.Background(), nil)
	assert.Equal(t, EmptyChart(), v.Chart)
	assert.True(t, v.Summary.TotalValue.IsZero())
	assert.True(t, v.Latest.IsZero())
	assert.Empty(t, v.Positions)
	assert.Zero(t, market.total(), "nothing to value")
}

func TestRecompute_MixedCurrencies(t *testing.T) {
	today := date.New(2025, 3, 14)
	d := date.New(2025, 3, 10)
	market := newFakeMarket().
		withInfo("NESN.SW", TickerInfo{Currency: "CHF"}).
		withInfo("AAPL", TickerInfo{Currency: "USD"}).
		withCloses("NESN.SW", d, 50, 52).
		withCloses("AAPL", d, 20, 21).
		withRates("USD", "CHF", date.Range{From: d.Add(-5), To: today}, 1.10)
	e := newTestEngine(market, today)

	holdings := Holdings{
		{Ticker: "NESN.SW", Shares: 10, PurchasePrice: 50, PurchaseDate: d, CurrentPrice: 55},
		{Ticker: "AAPL", Shares: 10, PurchasePrice: 20, PurchaseDate: d, CurrentPrice: 22},
	}
	v := e.Recompute(context.Background(), holdings)

	require.False(t, v.Chart.IsEmpty())
	assert.Equal(t, []date.Date{d, d.Add(1), today}, v.Chart.Dates)
	// AAPL is worth 10 x 20 x 1.10 = 220 on d but anchored at its 200 cost.
	assert.Equal(t, 700.0, v.Chart.Points[0].Y)
	assert.InDelta(t, 520+231, v.Chart.Points[1].Y, 1e-9)
	assert.Equal(t, 770.0, v.Chart.Points[2].Y, "today snapshot from current prices")
	assert.True(t, v.Latest.Equal(CHF(770)), "got %s", v.Latest)

	assert.True(t, v.Summary.TotalCost.Equal(CHF(700)))
	assert.True(t, v.Summary.TotalValue.Equal(CHF(770)))
	assert.True(t, v.Summary.Gain.Equal(10))

	require.Len(t, v.Positions, 2)
	assert.Equal(t, "+CHF 50.00", v.Positions[0].Profit.SignedString())
	assert.True(t, v.Positions[1].Gain.Equal(10))
}

func TestRecompute_NothingValued(t *testing.T) {
	today := date.New(2025, 3, 14)
	market := newFakeMarket()
	e := newTestEngine(market, today)

	holdings := Holdings{{Ticker: "GONE", Shares: 3, PurchasePrice: 10, PurchaseDate: today.Add(-3), CurrentPrice: 12}}
	v := e.Recompute(context.Background(), holdings)

	assert.True(t, v.Chart.IsEmpty())
	assert.True(t, v.Summary.TotalValue.Equal(CHF(36)), "the summary does not depend on history")
}

func TestEngine_Add(t *testing.T) {
	today := date.New(2025, 3, 14)
	market := newFakeMarket().
		withInfo("NESN.SW", TickerInfo{Name: "Nestle", Type: "Common Stock", Currency: "CHF", FirstTrade: date.New(2000, 1, 3)}).
		withQuote("NESN.SW", Quote{Price: 55, Currency: "CHF"})
	e := newTestEngine(market, today)

	var holdings Holdings
	h, err := e.Add(context.Background(), &holdings, Order{Ticker: " nesn.sw ", Shares: 10, Price: 50, Date: today.Add(-4)})
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, h, holdings[0])
	assert.Equal(t, "NESN.SW", h.Ticker)
	assert.Equal(t, "Nestle", h.Name)
	assert.Equal(t, Stock, h.Type)
	assert.Equal(t, 55.0, h.CurrentPrice)

	_, err = e.Add(context.Background(), &holdings, Order{Ticker: "NESN.SW", Shares: 0, Price: 50, Date: today})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Len(t, holdings, 1, "a rejected order leaves the holdings unchanged")

	assert.True(t, holdings.Remove(h.ID))
	assert.Empty(t, holdings)
}
