package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/papertrade/papertrade/renderer"
)

type signalCmd struct{}

func (*signalCmd) Name() string     { return "signal" }
func (*signalCmd) Synopsis() string { return "display a simulated trade signal for a symbol" }
func (*signalCmd) Usage() string {
	return `pts signal <symbol>

  Scores the instrument from its recent movement, volatility and volume
  and prints the resulting recommendation. The signal is simulated and
  has no predictive value.
`
}

func (c *signalCmd) SetFlags(f *flag.FlagSet) {}

func (c *signalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one symbol")
		return subcommands.ExitUsageError
	}
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}
	sig, err := desk.Signal(ctx, strings.ToUpper(f.Arg(0)), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SignalMarkdown(sig))
	return subcommands.ExitSuccess
}
