package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/papertrade/papertrade"
	"github.com/papertrade/papertrade/renderer"
)

type watchCmd struct{}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "add a symbol to the watchlist" }
func (*watchCmd) Usage() string {
	return `pts watch [<symbol>]

  Adds a symbol to the watchlist. Without arguments, displays the
  watchlist.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		return showWatchlist(ctx, desk)
	}

	symbol := strings.ToUpper(f.Arg(0))
	if err := desk.Watch(symbol); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Watching %s\n", symbol)
	return subcommands.ExitSuccess
}

func showWatchlist(ctx context.Context, desk *papertrade.Desk) subcommands.ExitStatus {
	book, err := desk.Store.Book()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading book: %v\n", err)
		return subcommands.ExitFailure
	}
	quotes, err := desk.Quotes.Snapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	var rows []renderer.MarketRow
	for _, symbol := range book.Watchlist {
		inst, ok := desk.Universe.Get(symbol)
		if !ok {
			continue
		}
		q, ok := quotes[symbol]
		if !ok {
			q = papertrade.Quote{Price: inst.BasePrice}
		}
		rows = append(rows, renderer.MarketRow{Instrument: inst, Quote: q, Watched: true})
	}
	printMarkdown(renderer.WatchlistMarkdown(rows))
	return subcommands.ExitSuccess
}

type unwatchCmd struct{}

func (*unwatchCmd) Name() string     { return "unwatch" }
func (*unwatchCmd) Synopsis() string { return "remove a symbol from the watchlist" }
func (*unwatchCmd) Usage() string {
	return `pts unwatch <symbol>

  Removes a symbol from the watchlist.
`
}

func (c *unwatchCmd) SetFlags(f *flag.FlagSet) {}

func (c *unwatchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one symbol")
		return subcommands.ExitUsageError
	}
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}
	symbol := strings.ToUpper(f.Arg(0))
	if err := desk.Unwatch(symbol); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Stopped watching %s\n", symbol)
	return subcommands.ExitSuccess
}
