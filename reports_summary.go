package networth

// Summary holds the static totals of a portfolio, from the holdings snapshot
// prices. It does not depend on any price history.
type Summary struct {
	Currency   string
	TotalCost  Money
	TotalValue Money
	Profit     Money
	Gain       Percent // Profit relative to TotalCost, 0 when there is no cost
}

// Summarize returns the Summary of the holdings with positive shares.
// It is all zero for an empty list.
func Summarize(holdings Holdings, currency string) Summary {
	cost, value := M(0, currency), M(0, currency)
	for _, h := range holdings {
		if !h.counted() {
			continue
		}
		cost = cost.Add(M(h.PurchasePrice, currency).Mul(h.Shares))
		value = value.Add(M(h.CurrentPrice, currency).Mul(h.Shares))
	}
	profit := value.Sub(cost)

	s := Summary{
		Currency:   currency,
		TotalCost:  cost,
		TotalValue: value,
		Profit:     profit,
	}
	if cost.IsPositive() {
		s.Gain = Percent(100 * profit.Ratio(cost))
	}
	return s
}
