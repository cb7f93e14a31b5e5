package networth

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/networth/date"
	"github.com/google/uuid"
)

// Order is a request to add a holding, as entered by the user.
type Order struct {
	Ticker string
	Shares float64
	Price  float64 // purchase price per share, in the reporting currency
	Date   date.Date
}

// Validate checks the order fields, without any market data.
func (o Order) Validate(today date.Date) error {
	switch {
	case strings.TrimSpace(o.Ticker) == "":
		return fmt.Errorf("%w: ticker is required", ErrInvalidInput)
	case o.Shares <= 0:
		return fmt.Errorf("%w: shares must be positive, got %v", ErrInvalidInput, o.Shares)
	case o.Price <= 0:
		return fmt.Errorf("%w: price must be positive, got %v", ErrInvalidInput, o.Price)
	case o.Date.IsZero():
		return fmt.Errorf("%w: purchase date is required", ErrInvalidInput)
	case o.Date.After(today):
		return fmt.Errorf("%w: purchase date %s cannot be in the future", ErrInvalidInput, o.Date)
	}
	return nil
}

// NewHolding validates an order against the market and returns the new Holding.
//
// It is all or nothing: an invalid order, an unknown current price or rate,
// or a purchase date before the ticker first trade date reject the order.
// Name and type are best effort.
func NewHolding(ctx context.Context, market MarketData, conv *Converter, o Order, today date.Date) (Holding, error) {
	o.Ticker = strings.ToUpper(strings.TrimSpace(o.Ticker))
	if err := o.Validate(today); err != nil {
		return Holding{}, err
	}

	current, err := CurrentPrice(ctx, market, conv, o.Ticker)
	if err != nil {
		return Holding{}, fmt.Errorf("cannot add %s: %w", o.Ticker, err)
	}

	if first := FirstTradeDate(ctx, market, o.Ticker, today); !first.IsZero() && o.Date.Before(first) {
		return Holding{}, fmt.Errorf("%w: %s has price history only from %s", ErrInvalidInput, o.Ticker, first.Short())
	}

	h := Holding{
		ID:            uuid.New(),
		Ticker:        o.Ticker,
		Type:          Unknown,
		Shares:        o.Shares,
		PurchasePrice: o.Price,
		PurchaseDate:  o.Date,
		CurrentPrice:  current,
	}
	if info, err := market.Info(ctx, o.Ticker); err == nil {
		h.Name = info.Name
		h.Type = ParseAssetType(info.Type)
	}
	return h, nil
}
