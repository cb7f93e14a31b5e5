package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display the current price of tickers in the reporting currency" }
func (*quoteCmd) Usage() string {
	return `nw quote <ticker>...

  Displays the live price of each ticker, else its previous close, converted
  to the reporting currency.

Usage Examples:
$ nw -currency CHF quote AAPL.US VOD.LSE
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker is required.")
		return subcommands.ExitUsageError
	}
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	conv := a.engine.Converter()
	for _, ticker := range f.Args() {
		ticker = strings.ToUpper(ticker)
		price, err := networth.CurrentPrice(ctx, a.market, conv, ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s\t%s\n", ticker, networth.M(price, a.cfg.Currency))
	}
	return status
}
