package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"github.com/papertrade/papertrade"
	"github.com/papertrade/papertrade/server"
)

// feedCmd holds the flags for the 'feed' subcommand.
type feedCmd struct {
	serve bool
	addr  string
	debug bool
}

func (*feedCmd) Name() string     { return "feed" }
func (*feedCmd) Synopsis() string { return "run the price feed daemon" }
func (*feedCmd) Usage() string {
	return `pts feed [-serve] [-addr <host:port>] [-debug]

  Runs the simulated price feed: every tick each instrument takes a
  bounded random step and the new quotes are published to the quote
  table. With -serve, the HTTP API and websocket stream are served from
  the same process. Stops cleanly on SIGINT or SIGTERM.
`
}

func (c *feedCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.serve, "serve", false, "Also serve the HTTP API")
	f.StringVar(&c.addr, "addr", "", "HTTP listen address (overrides config)")
	f.BoolVar(&c.debug, "debug", false, "Log every published tick")
}

func (c *feedCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	level := slog.LevelInfo
	if c.debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	desk, cfg, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	feed := papertrade.NewFeed(desk.Universe, desk.Quotes,
		papertrade.WithInterval(cfg.FeedInterval()),
		papertrade.WithBand(cfg.Feed.BandPercent),
	)
	if err := feed.Seed(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding quotes: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Info("feed started",
		"instruments", desk.Universe.Len(),
		"interval", cfg.FeedInterval(),
		"band_percent", cfg.Feed.BandPercent,
	)

	errc := make(chan error, 2)
	go func() { errc <- feed.Run(ctx) }()

	if c.serve {
		addr := cfg.Server.Addr
		if c.addr != "" {
			addr = c.addr
		}
		srv := server.New(desk, server.WithLogger(log), server.WithPushInterval(cfg.FeedInterval()))
		go func() { errc <- srv.Run(ctx, addr) }()
	}

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errc:
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
