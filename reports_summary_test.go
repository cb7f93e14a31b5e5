package networth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	holdings := Holdings{
		{Ticker: "A", Shares: 10, PurchasePrice: 50, CurrentPrice: 60},
		{Ticker: "B", Shares: 4, PurchasePrice: 25, CurrentPrice: 20},
		{Ticker: "C", Shares: 0, PurchasePrice: 1000, CurrentPrice: 2000},
	}
	s := Summarize(holdings, "CHF")

	assert.Equal(t, "CHF", s.Currency)
	assert.True(t, s.TotalCost.Equal(CHF(600)), "got %s", s.TotalCost)
	assert.True(t, s.TotalValue.Equal(CHF(680)), "got %s", s.TotalValue)
	assert.True(t, s.Profit.Equal(CHF(80)), "got %s", s.Profit)
	assert.True(t, s.Gain.Equal(13.3333), "got %s", s.Gain)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, "USD")
	assert.True(t, s.TotalCost.IsZero())
	assert.True(t, s.TotalValue.IsZero())
	assert.True(t, s.Profit.IsZero())
	assert.Equal(t, Percent(0), s.Gain)
	assert.Equal(t, "USD 0.00", s.TotalValue.String())
}

func TestSummarize_Loss(t *testing.T) {
	s := Summarize(Holdings{{Ticker: "A", Shares: 2, PurchasePrice: 100, CurrentPrice: 75}}, "EUR")
	assert.Equal(t, "-EUR 50.00", s.Profit.String())
	assert.Equal(t, "-25.00%", s.Gain.SignedString())
}

func TestHolding(t *testing.T) {
	h := Holding{Ticker: "A", Shares: 10, PurchasePrice: 50, CurrentPrice: 55}
	assert.Equal(t, 500.0, h.Cost())
	assert.Equal(t, 550.0, h.Value())
	assert.Equal(t, 50.0, h.Profit())
	assert.True(t, h.Gain().Equal(10))

	assert.Equal(t, Percent(0), Holding{Shares: 1, CurrentPrice: 3}.Gain(), "no purchase price")
}

func TestHoldings_FindRemove(t *testing.T) {
	a := Holding{ID: uuid.New(), Ticker: "A"}
	b := Holding{ID: uuid.New(), Ticker: "B"}
	var holdings Holdings
	holdings.Add(a)
	holdings.Add(b)

	got, ok := holdings.Find(b.ID)
	assert.True(t, ok)
	assert.Equal(t, "B", got.Ticker)

	assert.True(t, holdings.Remove(b.ID))
	_, ok = holdings.Find(b.ID)
	assert.False(t, ok, "removed holdings are not found")
	assert.False(t, holdings.RemoveTicker("B"))
	assert.True(t, holdings.RemoveTicker("a"), "tickers are matched upper case")
	assert.Empty(t, holdings)
}
