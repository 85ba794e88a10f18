package papertrade

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Side is the direction of a trade.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// ParseSide parses a trade direction.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideBuy, SideSell:
		return Side(s), nil
	default:
		return "", fmt.Errorf("unknown trade side: %q", s)
	}
}

// TradeRecord is one immutable entry of the append-only trade log.
// RealizedPL is only meaningful on sells and is zero on buys.
type TradeRecord struct {
	ID         string    `json:"id"`
	Side       Side      `json:"side"`
	Symbol     string    `json:"symbol"`
	Name       string    `json:"name"`
	Quantity   Quantity  `json:"quantity"`
	Price      Money     `json:"price"`
	Total      Money     `json:"totalAmount"`
	RealizedPL Money     `json:"realizedPL"`
	Time       time.Time `json:"timestamp"`
}

// SelectTrades returns the records matching side, preserving log order.
// An empty side selects everything.
func SelectTrades(trades []TradeRecord, side Side) []TradeRecord {
	if side == "" {
		return trades
	}
	out := make([]TradeRecord, 0, len(trades))
	for _, rec := range trades {
		if rec.Side == side {
			out = append(out, rec)
		}
	}
	return out
}

// NewestFirst returns a copy of trades in reverse log order. The log is
// appended to chronologically, so the copy reads most recent first.
func NewestFirst(trades []TradeRecord) []TradeRecord {
	out := slices.Clone(trades)
	slices.Reverse(out)
	return out
}

func newTradeRecord(side Side, inst Instrument, quantity Quantity, price, realized Money) TradeRecord {
	return TradeRecord{
		ID:         uuid.NewString(),
		Side:       side,
		Symbol:     inst.Symbol,
		Name:       inst.Name,
		Quantity:   quantity,
		Price:      price,
		Total:      price.Mul(quantity),
		RealizedPL: realized,
		Time:       time.Now().UTC(),
	}
}
