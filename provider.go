package networth

import "github.com/etnz/networth/date"

// TickerInfo holds the metadata a provider knows about a ticker.
// Any field can be missing.
type TickerInfo struct {
	Name       string
	Type       string    // provider specific type, see ParseAssetType
	Currency   string    // raw provider code, it can be a minor unit like "GBp"
	FirstTrade date.Date // zero when unknown
}

// Quote holds the latest known prices of a ticker, in its native currency.
// Zero means missing.
type Quote struct {
	Price         float64
	PreviousClose float64
	Currency      string // raw provider code
}
