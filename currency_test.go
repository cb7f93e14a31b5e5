package networth

import (
	"context"
	"testing"

	"github.com/etnz/networth/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	conv := NewConverter(newFakeMarket(), "CHF")
	tests := []struct {
		raw  string
		want string
	}{
		{"", "CHF"},
		{"  ", "CHF"},
		{"usd", "USD"},
		{"EUR", "EUR"},
		{"GBp", "GBP"},
		{"GBX", "GBP"},
		{"GBP", "GBP"},
		{"ZAc", "ZAR"},
		{"ZAC", "ZAR"},
		{"ILA", "ILS"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, conv.Normalize(tt.raw), "Normalize(%q)", tt.raw)
	}
}

func TestMinorUnitDivisor(t *testing.T) {
	assert.Equal(t, 100.0, MinorUnitDivisor("GBp"))
	assert.Equal(t, 100.0, MinorUnitDivisor("GBX"))
	assert.Equal(t, 100.0, MinorUnitDivisor("ZAc"))
	assert.Equal(t, 100.0, MinorUnitDivisor("ILA"))
	assert.Equal(t, 1.0, MinorUnitDivisor("GBP"))
	assert.Equal(t, 1.0, MinorUnitDivisor("USD"))
	assert.Equal(t, 1.0, MinorUnitDivisor(""))
}

func TestSpotRate_Identity(t *testing.T) {
	market := newFakeMarket()
	conv := NewConverter(market, "CHF")

	for _, code := range []string{"CHF", "chf", ""} {
		rate, err := conv.SpotRate(context.Background(), code)
		require.NoError(t, err)
		assert.Equal(t, 1.0, rate)
	}
	assert.Zero(t, market.total(), "identity conversion must not reach the market")
}

func TestSpotRate(t *testing.T) {
	today := date.New(2025, 3, 14)
	market := newFakeMarket().
		withRates("USD", "CHF", date.Range{From: today.Add(-10), To: today.Add(-2)}, 0.9).
		withRates("USD", "CHF", date.Range{From: today.Add(-1), To: today.Add(-1)}, 0.88)
	conv := &Converter{Market: market, Reporting: "CHF", Today: fixedDay(today)}

	rate, err := conv.SpotRate(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, 0.88, rate, "latest rate of the window")

	// pence are converted at the pound rate.
	market.withRates("GBP", "CHF", date.Range{From: today.Add(-3), To: today}, 1.12)
	rate, err = conv.SpotRate(context.Background(), "GBp")
	require.NoError(t, err)
	assert.Equal(t, 1.12, rate)
}

func TestSpotRate_Unavailable(t *testing.T) {
	today := date.New(2025, 3, 14)
	market := newFakeMarket().
		withRates("EUR", "CHF", date.Range{From: today.Add(-60), To: today.Add(-30)}, 0.95)
	conv := &Converter{Market: market, Reporting: "CHF", Today: fixedDay(today)}

	_, err := conv.SpotRate(context.Background(), "EUR")
	assert.ErrorIs(t, err, ErrRateUnavailable, "no rate within the last week")

	_, err = conv.SpotRate(context.Background(), "JPY")
	assert.ErrorIs(t, err, ErrRateUnavailable)
	assert.ErrorIs(t, err, ErrDataUnavailable, "the cause is kept")

	market.err = errNetwork
	_, err = conv.SpotRate(context.Background(), "EUR")
	assert.ErrorIs(t, err, ErrRateUnavailable)
	assert.ErrorIs(t, err, errNetwork)
}

func TestRateSeries_Identity(t *testing.T) {
	market := newFakeMarket()
	conv := NewConverter(market, "USD")
	r := date.Range{From: date.New(2025, 1, 1), To: date.New(2025, 1, 10)}

	rates, err := conv.RateSeries(context.Background(), "USD", r)
	require.NoError(t, err)
	assert.Equal(t, 10, rates.Len())
	for _, rate := range rates.Values() {
		assert.Equal(t, 1.0, rate)
	}
	assert.Zero(t, market.total())
}

func TestRateSeries(t *testing.T) {
	r := date.Range{From: date.New(2025, 1, 1), To: date.New(2025, 1, 10)}
	market := newFakeMarket().withRates("USD", "CHF", r, 0.9)
	conv := NewConverter(market, "CHF")

	rates, err := conv.RateSeries(context.Background(), "usd", r)
	require.NoError(t, err)
	assert.Equal(t, 10, rates.Len())
	assert.Equal(t, 1, market.calls["ExchangeRates"])

	_, err = conv.RateSeries(context.Background(), "SEK", r)
	assert.ErrorIs(t, err, ErrRateUnavailable)
}

func TestTickerCurrency(t *testing.T) {
	market := newFakeMarket().withInfo("VOD.LSE", TickerInfo{Currency: "GBp"})
	conv := NewConverter(market, "CHF")

	raw, code := conv.TickerCurrency(context.Background(), "VOD.LSE")
	assert.Equal(t, "GBp", raw)
	assert.Equal(t, "GBP", code)

	raw, code = conv.TickerCurrency(context.Background(), "UNKNOWN")
	assert.Equal(t, "", raw)
	assert.Equal(t, "CHF", code, "unknown currency falls back to the reporting one")
}
