package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type sessionCmd struct {
	width int
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start an interactive portfolio session" }
func (*sessionCmd) Usage() string {
	return `nw session

  Starts an interactive session on an empty, in-memory portfolio.
  The portfolio is revalued and displayed after every change.

` + sessionHelp
}

const sessionHelp = `Session commands:
  add TICKER SHARES PRICE YYYY-MM-DD   add a holding, PRICE per share in the reporting currency
  rm TICKER|ID                         remove a holding
  ls                                   list the holdings
  show                                 display the portfolio
  help                                 show this help
  quit                                 end the session
`

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "width", 0, "Chart width in characters")
}

func (c *sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	s := &session{engine: a.engine, out: os.Stdout, print: printMarkdown, width: c.width}
	s.run(ctx, os.Stdin)
	return subcommands.ExitSuccess
}

// session is an interactive, in-memory portfolio.
type session struct {
	engine   *networth.Engine
	holdings networth.Holdings
	out      io.Writer
	print    func(md string)
	width    int
}

// run executes the commands read from in until quit, end of input or ctx is done.
func (s *session) run(ctx context.Context, in io.Reader) {
	fmt.Fprintf(s.out, "Reporting in %s. Type 'help' for the commands.\n", s.engine.Currency)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() || ctx.Err() != nil {
			return
		}
		if quit := s.exec(ctx, scanner.Text()); quit {
			return
		}
	}
}

// exec executes a single command line, and reports whether the session is over.
func (s *session) exec(ctx context.Context, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "add":
		o, err := parseOrder(args)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return false
		}
		h, err := s.engine.Add(ctx, &s.holdings, o)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return false
		}
		fmt.Fprintf(s.out, "Added %s %s (%s)\n", renderer.ShortID(h), h.Ticker, h.Name)
		s.show(ctx)
	case "rm":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "Error: rm takes a ticker or a holding id")
			return false
		}
		if !s.remove(args[0]) {
			fmt.Fprintf(s.out, "Error: no holding %q\n", args[0])
			return false
		}
		s.show(ctx)
	case "ls":
		if len(s.holdings) == 0 {
			fmt.Fprintln(s.out, "No holdings.")
			return false
		}
		var positions []networth.Position
		for _, h := range s.holdings {
			positions = append(positions, networth.NewPosition(h, s.engine.Currency))
		}
		s.print(renderer.HoldingsMarkdown(positions))
	case "show":
		s.show(ctx)
	case "help", "?":
		fmt.Fprint(s.out, sessionHelp)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "Error: unknown command %q, type 'help' for the commands\n", cmd)
	}
	return false
}

// remove deletes the holding with the given id, id prefix or ticker.
func (s *session) remove(key string) bool {
	if id, err := uuid.Parse(key); err == nil {
		if _, ok := s.holdings.Find(id); ok {
			return s.holdings.Remove(id)
		}
	}
	for _, h := range s.holdings {
		if renderer.ShortID(h) == key {
			return s.holdings.Remove(h.ID)
		}
	}
	return s.holdings.RemoveTicker(key)
}

// show recomputes the portfolio and prints it.
func (s *session) show(ctx context.Context) {
	view := s.engine.Recompute(ctx, s.holdings)
	s.print(renderer.RenderView(&view, renderer.ViewRenderOptions{Width: s.width}))
}
