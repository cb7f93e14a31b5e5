package networth

import (
	"slices"
	"strings"

	"github.com/etnz/networth/date"
	"github.com/google/uuid"
)

// Holding is one lot of a ticker, as entered by the user.
//
// Prices are in the reporting currency. A Holding is never edited once
// created, it can only be removed from its Holdings.
type Holding struct {
	ID            uuid.UUID
	Ticker        string
	Name          string
	Type          AssetType
	Shares        float64
	PurchasePrice float64
	PurchaseDate  date.Date
	CurrentPrice  float64 // last known snapshot
}

// Cost returns the purchase value of the holding.
func (h Holding) Cost() float64 { return h.Shares * h.PurchasePrice }

// Value returns the current value of the holding, from its snapshot price.
func (h Holding) Value() float64 { return h.Shares * h.CurrentPrice }

// Profit returns Value() - Cost().
func (h Holding) Profit() float64 { return h.Shares * (h.CurrentPrice - h.PurchasePrice) }

// Gain returns the price change since purchase, relative to the purchase price.
func (h Holding) Gain() Percent {
	if h.PurchasePrice <= 0 {
		return 0
	}
	return Percent(100 * (h.CurrentPrice - h.PurchasePrice) / h.PurchasePrice)
}

// counted reports whether the holding takes part in valuations.
func (h Holding) counted() bool { return h.Shares > 0 }

// Holdings is the ordered, in-memory list of holdings of a portfolio.
//
// It is owned by the caller and passed explicitly to every engine call.
type Holdings []Holding

// Add appends h to the list.
func (l *Holdings) Add(h Holding) { *l = append(*l, h) }

// Remove deletes the holding with the given id, and reports whether it was found.
func (l *Holdings) Remove(id uuid.UUID) bool {
	i := slices.IndexFunc(*l, func(h Holding) bool { return h.ID == id })
	if i < 0 {
		return false
	}
	*l = slices.Delete(*l, i, i+1)
	return true
}

// RemoveTicker deletes the first holding of ticker, and reports whether one was found.
func (l *Holdings) RemoveTicker(ticker string) bool {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	i := slices.IndexFunc(*l, func(h Holding) bool { return h.Ticker == ticker })
	if i < 0 {
		return false
	}
	*l = slices.Delete(*l, i, i+1)
	return true
}

// Find returns the holding with the given id.
func (l Holdings) Find(id uuid.UUID) (Holding, bool) {
	i := slices.IndexFunc(l, func(h Holding) bool { return h.ID == id })
	if i < 0 {
		return Holding{}, false
	}
	return l[i], true
}
