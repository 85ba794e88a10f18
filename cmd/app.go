// Package cmd implements the CLI application to run the paper-trading
// simulator.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/papertrade/papertrade"
	"github.com/papertrade/papertrade/redisquote"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the selected one.
func Register(c *subcommands.Commander) {
	c.Register(&marketCmd{}, "market")
	c.Register(&quoteCmd{}, "market")
	c.Register(&signalCmd{}, "market")

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&portfolioCmd{}, "trading")
	c.Register(&historyCmd{}, "trading")
	c.Register(&watchCmd{}, "trading")
	c.Register(&unwatchCmd{}, "trading")

	c.Register(&signupCmd{}, "account")
	c.Register(&loginCmd{}, "account")
	c.Register(&logoutCmd{}, "account")
	c.Register(&whoamiCmd{}, "account")
	c.Register(&themeCmd{}, "account")
	c.Register(&resetCmd{}, "account")

	c.Register(&feedCmd{}, "daemon")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML config file (optional)")
var stateDir = flag.String("state-dir", "", "Path to the state directory (overrides config)")

// loadConfig resolves the effective configuration from the global flags
// and the environment.
func loadConfig() (papertrade.Config, error) {
	cfg, err := papertrade.LoadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	if *stateDir != "" {
		cfg.StateDir = *stateDir
	}
	return cfg, nil
}

// openDesk is the central function to open the trading desk. When Redis is
// reachable the quote table is shared with the feed daemon; otherwise
// quotes fall back to an empty in-process table and prices resolve to the
// instruments' base prices.
func openDesk(ctx context.Context) (*papertrade.Desk, papertrade.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	store, err := papertrade.Open(cfg.StateDir, papertrade.USD(cfg.StartingCash))
	if err != nil {
		return nil, cfg, err
	}
	universe := papertrade.DefaultUniverse()

	var quotes papertrade.QuoteStore = papertrade.NewMemoryQuotes()
	if cfg.Redis.Addr != "" {
		dialCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		rq, err := redisquote.Dial(dialCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: no live quotes (%v), using base prices\n", err)
		} else {
			quotes = rq
		}
	}

	return papertrade.NewDesk(universe, store, quotes), cfg, nil
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the renderer cannot be built.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
