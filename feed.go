package papertrade

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Feed drives the price simulation: on every tick each instrument takes a
// one-step bounded random walk around its previous price and the resulting
// quote table is published to the QuoteStore. It is not a model of market
// dynamics, only a source of plausible motion.
type Feed struct {
	universe *Universe
	quotes   QuoteStore
	interval time.Duration
	band     float64 // symmetric percent band, e.g. 2 for ±2%
	rng      *rand.Rand
}

const (
	// DefaultInterval is the cadence of the simulated market.
	DefaultInterval = 3 * time.Second
	// DefaultBand is the half-width of the per-tick move, in percent.
	DefaultBand = 2.0
)

// priceFloor keeps a walked price strictly positive.
var priceFloor = USD(0.01)

// FeedOption configures a Feed.
type FeedOption func(*Feed)

// WithInterval sets the tick cadence.
func WithInterval(d time.Duration) FeedOption {
	return func(f *Feed) { f.interval = d }
}

// WithBand sets the symmetric percent band of one step.
func WithBand(percent float64) FeedOption {
	return func(f *Feed) { f.band = percent }
}

// WithRand pins the random source, for deterministic tests.
func WithRand(rng *rand.Rand) FeedOption {
	return func(f *Feed) { f.rng = rng }
}

// NewFeed creates a feed over the universe publishing to quotes.
func NewFeed(universe *Universe, quotes QuoteStore, opts ...FeedOption) *Feed {
	f := &Feed{
		universe: universe,
		quotes:   quotes,
		interval: DefaultInterval,
		band:     DefaultBand,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Feed) Interval() time.Duration { return f.interval }

// Seed publishes a base-price quote for every instrument that has no quote
// yet. Existing quotes are never overwritten, so restarting the feed
// against a shared store resumes the walk where it left off.
func (f *Feed) Seed(ctx context.Context) error {
	fresh := make(map[string]Quote)
	for _, inst := range f.universe.All() {
		if _, ok, err := f.quotes.Quote(ctx, inst.Symbol); err != nil {
			return fmt.Errorf("seeding quotes: %w", err)
		} else if ok {
			continue
		}
		fresh[inst.Symbol] = Quote{Price: inst.BasePrice}
	}
	if len(fresh) == 0 {
		return nil
	}
	return f.quotes.Publish(ctx, fresh)
}

// Tick advances every instrument by one random-walk step and publishes the
// new quote table.
func (f *Feed) Tick(ctx context.Context) error {
	snapshot, err := f.quotes.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("reading quote table: %w", err)
	}

	next := make(map[string]Quote, f.universe.Len())
	for _, inst := range f.universe.All() {
		previous := inst.BasePrice
		if q, ok := snapshot[inst.Symbol]; ok {
			previous = q.Price
		}
		price := f.walk(previous)
		next[inst.Symbol] = Quote{
			Price:         price,
			Change:        price.Sub(previous),
			ChangePercent: PercentChange(previous, price),
		}
	}
	return f.quotes.Publish(ctx, next)
}

// walk draws a uniform percent change in ±band and applies it to previous,
// clamped to the price floor.
func (f *Feed) walk(previous Money) Money {
	delta := (f.random()*2 - 1) * f.band / 100
	price := USD(previous.AsFloat() * (1 + delta)).Round()
	if price.LessThan(priceFloor) {
		return priceFloor
	}
	return price
}

func (f *Feed) random() float64 {
	if f.rng != nil {
		return f.rng.Float64()
	}
	return rand.Float64()
}

// Run seeds the quote table and then ticks on the feed's cadence until the
// context is cancelled. Cancellation is the only way to stop the market.
func (f *Feed) Run(ctx context.Context) error {
	if err := f.Seed(ctx); err != nil {
		return err
	}
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := f.Tick(ctx); err != nil {
				return err
			}
		}
	}
}
