package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the positions as a markdown table, or "" when there is none.
func HoldingsMarkdown(positions []networth.Position) string {
	if len(positions) == 0 {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Ticker", "Name", "Type", "Shares", "Purchase Price", "Purchase Date", "Current Price", "Profit", "Gain"},
		Rows:   [][]string{},
	}
	for _, p := range positions {
		cur := p.Profit.Currency()
		table.Rows = append(table.Rows, []string{
			ShortID(p.Holding),
			p.Ticker,
			p.Name,
			p.Type.String(),
			strconv.FormatFloat(p.Shares, 'f', -1, 64),
			networth.M(p.PurchasePrice, cur).String(),
			p.PurchaseDate.String(),
			networth.M(p.CurrentPrice, cur).String(),
			p.Profit.SignedString(),
			p.Gain.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// ShortID returns the first 8 characters of the holding id, enough to tell holdings apart.
func ShortID(h networth.Holding) string {
	return h.ID.String()[:8]
}
