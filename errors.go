package networth

import "errors"

var (
	// ErrDataUnavailable reports that price, exchange-rate or metadata retrieval failed or returned nothing.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrRateUnavailable reports that no exchange rate could be obtained for a currency.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	// ErrPriceUnavailable reports that no current price could be obtained for a ticker.
	ErrPriceUnavailable = errors.New("price unavailable")
	// ErrInvalidInput reports a rejected holding order.
	ErrInvalidInput = errors.New("invalid input")
)
