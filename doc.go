// Package networth values a portfolio of holdings over time, in a single
// reporting currency.
//
// The core functionalities include:
//   - Currency conversion: normalizing provider currency codes and converting
//     native prices with spot rates or daily exchange-rate series.
//   - Valuation: a per-holding value series, anchored at the purchase date on
//     the recorded cost basis.
//   - Aggregation: the union of all holding series, forward-filled on a common
//     date axis, summed, and extended to today with a snapshot value.
//   - Summary and chart data: total cost, current value, profit and gain, and
//     render-ready points with evenly spaced axis labels.
//
// The engine is stateless: every call to [Engine.Recompute] recomputes from
// the holdings list it is given and from the [MarketData] collaborator.
//
// Anchoring overwrites the market value at the purchase date with the
// recorded purchase price. When both differ, the series shows a jump on the
// next trading day. This is an accepted approximation.
package networth
