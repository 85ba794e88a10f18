package papertrade

import (
	"context"
	"maps"
	"sync"
)

// Quote is the current simulated price of one instrument. The feed
// overwrites it wholesale on every tick; there is no quote history.
type Quote struct {
	Price         Money   `json:"price"`
	Change        Money   `json:"change"`
	ChangePercent Percent `json:"changePercent"`
}

// QuoteStore publishes the current quote table for cross-component reads:
// the feed writes it, valuation and signal scoring read it. Implementations
// must be safe for concurrent use.
type QuoteStore interface {
	// Publish overwrites the quotes for the given symbols, leaving other
	// symbols untouched.
	Publish(ctx context.Context, quotes map[string]Quote) error
	// Snapshot returns a copy of the whole quote table.
	Snapshot(ctx context.Context) (map[string]Quote, error)
	// Quote returns the current quote for one symbol, false if absent.
	Quote(ctx context.Context, symbol string) (Quote, bool, error)
}

// MemoryQuotes is the in-process QuoteStore used by the CLI and tests.
type MemoryQuotes struct {
	mu     sync.RWMutex
	quotes map[string]Quote
}

func NewMemoryQuotes() *MemoryQuotes {
	return &MemoryQuotes{quotes: make(map[string]Quote)}
}

func (m *MemoryQuotes) Publish(_ context.Context, quotes map[string]Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	maps.Copy(m.quotes, quotes)
	return nil
}

func (m *MemoryQuotes) Snapshot(_ context.Context) (map[string]Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.quotes), nil
}

func (m *MemoryQuotes) Quote(_ context.Context, symbol string) (Quote, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quotes[symbol]
	return q, ok, nil
}
