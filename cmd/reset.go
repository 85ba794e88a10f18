package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/papertrade/papertrade"
)

// resetCmd holds the flags for the 'reset' subcommand.
type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "reset the book to starting cash and clear the history" }
func (*resetCmd) Usage() string {
	return `pts reset [-y]

  Discards all holdings, the watchlist and the trade history, and resets
  cash to the configured starting amount. Accounts are kept.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, cfg, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.yes {
		fmt.Print("This discards all holdings and history. Continue? [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y") {
			fmt.Println("Aborted")
			return subcommands.ExitSuccess
		}
	}

	if err := desk.Reset(papertrade.USD(cfg.StartingCash)); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Reset complete, cash back to %s\n", papertrade.USD(cfg.StartingCash))
	return subcommands.ExitSuccess
}
