// Command nw values a portfolio in a single reporting currency and charts its value over time.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/networth/cmd"
	"github.com/etnz/networth/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// currencies offered by the shell completion, any ISO 4217 code is accepted.
var currencies = predict.Set{"AUD", "CAD", "CHF", "EUR", "GBP", "HKD", "JPY", "SEK", "USD"}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "nw")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion().Complete("nw")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	flag.Parse()
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

// completion describes the commands and flags for shell completion.
func completion() *complete.Command {
	orders := predict.Or(predict.Files("*.txt"), predict.Set{"-"})
	width := predict.Set{"60", "72", "100", "120"}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"session": {Flags: map[string]complete.Predictor{"width": width}},
			"chart":   {Flags: map[string]complete.Predictor{"f": orders, "width": width}},
			"watch": {Flags: map[string]complete.Predictor{
				"f":     orders,
				"every": predict.Set{"1m", "15m", "1h"},
				"width": width,
			}},
			"quote":    {Args: predict.Something},
			"search":   {Args: predict.Something},
			"topic":    {Args: predict.Set(append(docs.Names(), "*"))},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"currency": currencies,
			"env-file": predict.Files("*"),
			"raw":      predict.Nothing,
		},
	}
}
