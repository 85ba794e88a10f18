package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/papertrade/papertrade"
	"github.com/papertrade/papertrade/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	watch int
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display cash and holdings marked to market" }
func (*portfolioCmd) Usage() string {
	return `pts portfolio [-w n]

  Displays the cash balance and every open position valued at the current
  price, with unrealized profit and loss.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}
	for {
		v, err := desk.Valuation(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(renderer.PortfolioMarkdown(&v))

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	side string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the trade history, newest first" }
func (*historyCmd) Usage() string {
	return `pts history [-side buy|sell]

  Displays every recorded trade with its realized profit or loss,
  optionally restricted to buys or to sells.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.side, "side", "", "only show 'buy' or 'sell' trades")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var side papertrade.Side
	if c.side != "" {
		var err error
		if side, err = papertrade.ParseSide(c.side); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}
	trades, err := desk.Store.Trades()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HistoryMarkdown(papertrade.SelectTrades(trades, side)))
	return subcommands.ExitSuccess
}
