package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/networth/eodhd"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for tickers using EODHD API" }
func (*searchCmd) Usage() string {
	return `nw search <search term>

  Searches for tickers via EOD Historical Data API and prints the tickers
  ready to be used in orders.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	searchTerm := strings.Join(f.Args(), " ")

	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	results, err := a.market.Search(ctx, searchTerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching tickers: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(results) == 0 {
		fmt.Printf("No results found for '%s'.\n", searchTerm)
		return subcommands.ExitSuccess
	}
	printMarkdown(searchMarkdown(searchTerm, results))
	return subcommands.ExitSuccess
}

func searchMarkdown(term string, results []eodhd.SearchResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Found %d results for '%s'", len(results), term))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Ticker", "Name", "Type", "Country", "Currency", "Prev. Close"},
		Rows:      [][]string{},
	}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{
			r.Ticker(),
			r.Name,
			r.Type,
			r.Country,
			r.Currency,
			strconv.FormatFloat(r.PreviousClose, 'f', 2, 64),
		})
	}
	doc.Table(table)
	return doc.String()
}
