package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	file  string
	width int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "value a list of orders and display the portfolio chart" }
func (*chartCmd) Usage() string {
	return `nw chart -f <orders file>

  Reads one order per line, adds each one like the 'add' command of a session
  and displays the summary, the value chart and the holdings.

  An order line is: TICKER SHARES PRICE YYYY-MM-DD
  PRICE is the purchase price per share in the reporting currency.
  Empty lines and lines starting with '#' are ignored.
  Rejected orders are reported, the others are still valued.

Usage Examples:
$ nw -currency USD chart -f orders.txt
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "orders.txt", "Orders file, '-' for stdin")
	f.IntVar(&c.width, "width", 0, "Chart width in characters")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	holdings, err := loadHoldings(ctx, a.engine, c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading orders: %v\n", err)
		return subcommands.ExitFailure
	}
	view := a.engine.Recompute(ctx, holdings)
	printMarkdown(renderer.RenderView(&view, renderer.ViewRenderOptions{Width: c.width}))
	return subcommands.ExitSuccess
}

// loadHoldings reads the orders file and adds every valid order.
// Rejected orders are reported on stderr.
func loadHoldings(ctx context.Context, engine *networth.Engine, file string) (networth.Holdings, error) {
	orders, err := readOrders(file)
	if orders == nil && err != nil {
		return nil, err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some lines were skipped:\n%v\n", err)
	}
	var holdings networth.Holdings
	for _, o := range orders {
		if _, err := engine.Add(ctx, &holdings, o); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: order %s rejected: %v\n", o.Ticker, err)
		}
	}
	return holdings, nil
}
