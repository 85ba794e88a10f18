package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/papertrade/papertrade"
	"github.com/papertrade/papertrade/renderer"
)

// tradeArgs parses the "<symbol> <quantity>" positional arguments shared
// by buy and sell.
func tradeArgs(f *flag.FlagSet) (symbol string, quantity int64, err error) {
	if f.NArg() != 2 {
		return "", 0, fmt.Errorf("expected <symbol> <quantity>")
	}
	symbol = strings.ToUpper(f.Arg(0))
	quantity, err = strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("quantity %q is not a whole number", f.Arg(1))
	}
	return symbol, quantity, nil
}

type buyCmd struct{}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares at the current price" }
func (*buyCmd) Usage() string {
	return `pts buy <symbol> <quantity>

  Executes a market buy and records it in the trade history.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeTrade(ctx, f, papertrade.SideBuy)
}

type sellCmd struct{}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares at the current price" }
func (*sellCmd) Usage() string {
	return `pts sell <symbol> <quantity>

  Executes a market sell, realizes the profit or loss against the average
  cost, and records the trade in the history.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeTrade(ctx, f, papertrade.SideSell)
}

func executeTrade(ctx context.Context, f *flag.FlagSet, side papertrade.Side) subcommands.ExitStatus {
	symbol, quantity, err := tradeArgs(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}

	var rec papertrade.TradeRecord
	switch side {
	case papertrade.SideBuy:
		rec, err = desk.Buy(ctx, symbol, quantity)
	case papertrade.SideSell:
		rec, err = desk.Sell(ctx, symbol, quantity)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TradeMarkdown(rec))
	return subcommands.ExitSuccess
}
