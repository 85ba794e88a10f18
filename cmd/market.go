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

// marketCmd holds the flags for the 'market' subcommand.
type marketCmd struct {
	query    string
	category string
	gainers  bool
	losers   bool
	watched  bool
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display the quote board" }
func (*marketCmd) Usage() string {
	return `pts market [-q <text>] [-category <name>] [-gainers|-losers] [-w]

  Displays the tradable instruments with their current prices.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter by symbol or name substring")
	f.StringVar(&c.category, "category", "", "Filter by category")
	f.BoolVar(&c.gainers, "gainers", false, "Only instruments trading up")
	f.BoolVar(&c.losers, "losers", false, "Only instruments trading down")
	f.BoolVar(&c.watched, "w", false, "Only watchlisted instruments")
}

func (c *marketCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}
	quotes, err := desk.Quotes.Snapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading quotes: %v\n", err)
		return subcommands.ExitFailure
	}
	book, err := desk.Store.Book()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading book: %v\n", err)
		return subcommands.ExitFailure
	}

	filter := papertrade.Filter{
		Query:    c.query,
		Category: c.category,
		Gainers:  c.gainers,
		Losers:   c.losers,
	}
	if c.watched {
		filter.Watchlist = book.Watchlist
	}

	var rows []renderer.MarketRow
	for _, inst := range desk.Universe.Select(filter, quotes) {
		q, ok := quotes[inst.Symbol]
		if !ok {
			q = papertrade.Quote{Price: inst.BasePrice}
		}
		rows = append(rows, renderer.MarketRow{
			Instrument: inst,
			Quote:      q,
			Watched:    book.Watched(inst.Symbol),
		})
	}
	printMarkdown(renderer.MarketMarkdown(rows))
	return subcommands.ExitSuccess
}

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display one instrument in detail" }
func (*quoteCmd) Usage() string {
	return `pts quote <symbol>

  Displays the instrument details and its current price.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one symbol")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}
	inst, ok := desk.Universe.Get(symbol)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown symbol %q\n", symbol)
		return subcommands.ExitFailure
	}
	q, ok, err := desk.Quotes.Quote(ctx, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading quote: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		q = papertrade.Quote{Price: inst.BasePrice}
	}
	printMarkdown(renderer.QuoteMarkdown(inst, q))
	return subcommands.ExitSuccess
}
