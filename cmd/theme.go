package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/papertrade/papertrade"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "display or set the color theme" }
func (*themeCmd) Usage() string {
	return `pts theme [light|dark|neon]

  Without arguments, displays the current theme. With one, persists it.
`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {}

func (c *themeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		book, err := desk.Store.Book()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading book: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(book.Theme)
		return subcommands.ExitSuccess
	}

	theme, err := papertrade.ParseTheme(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := desk.SetTheme(theme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Theme set to %s\n", theme)
	return subcommands.ExitSuccess
}
