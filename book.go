package papertrade

import (
	"fmt"
	"slices"
)

// Book is the per-user portfolio state: cash, open positions, watchlist
// and display theme. The trade log is kept separately by the Store since
// it is append-only. A Book is not safe for concurrent use; the Store
// serializes access to it.
type Book struct {
	Cash      Money              `json:"cash"`
	Holdings  map[string]Holding `json:"portfolio"`
	Watchlist []string           `json:"watchlist"`
	Theme     Theme              `json:"theme"`
}

// DefaultStartingCash seeds a fresh book.
var DefaultStartingCash = USD(10000)

// NewBook creates an empty book with the given starting cash.
func NewBook(startingCash Money) *Book {
	return &Book{
		Cash:      startingCash,
		Holdings:  make(map[string]Holding),
		Watchlist: []string{},
	}
}

// Holding returns the position in symbol, false when flat.
func (b *Book) Holding(symbol string) (Holding, bool) {
	h, ok := b.Holdings[symbol]
	return h, ok
}

// Buy executes a market buy of quantity shares at price. It fails without
// touching the book when the quantity is not a positive whole number or
// the total would overdraw the cash balance. There are no partial fills.
func (b *Book) Buy(inst Instrument, quantity Quantity, price Money) (TradeRecord, error) {
	if !quantity.IsPositive() || !quantity.IsInteger() {
		return TradeRecord{}, fmt.Errorf("buy %s %s: %w", quantity, inst.Symbol, ErrInvalidQuantity)
	}
	total := price.Mul(quantity)
	if b.Cash.LessThan(total) {
		return TradeRecord{}, fmt.Errorf("buy %s %s for %s with cash %s: %w",
			quantity, inst.Symbol, total, b.Cash, ErrInsufficientFunds)
	}

	b.Cash = b.Cash.Sub(total)
	if b.Holdings == nil {
		b.Holdings = make(map[string]Holding)
	}
	if h, ok := b.Holdings[inst.Symbol]; ok {
		b.Holdings[inst.Symbol] = h.addLot(quantity, price)
	} else {
		b.Holdings[inst.Symbol] = Holding{
			Quantity:      quantity,
			AverageCost:   price,
			TotalInvested: total,
		}
	}
	return newTradeRecord(SideBuy, inst, quantity, price, Money{}), nil
}

// Sell executes a market sell of quantity shares at price. It fails
// without touching the book when the quantity is invalid, there is no
// position, or the position is smaller than the quantity. On success the
// realized P/L against the average cost is carried on the returned record,
// and a position sold down to zero is removed entirely.
func (b *Book) Sell(inst Instrument, quantity Quantity, price Money) (TradeRecord, error) {
	if !quantity.IsPositive() || !quantity.IsInteger() {
		return TradeRecord{}, fmt.Errorf("sell %s %s: %w", quantity, inst.Symbol, ErrInvalidQuantity)
	}
	h, ok := b.Holdings[inst.Symbol]
	if !ok {
		return TradeRecord{}, fmt.Errorf("sell %s: %w", inst.Symbol, ErrNoPosition)
	}
	if h.Quantity.LessThan(quantity) {
		return TradeRecord{}, fmt.Errorf("sell %s %s holding only %s: %w",
			quantity, inst.Symbol, h.Quantity, ErrInsufficientShares)
	}

	b.Cash = b.Cash.Add(price.Mul(quantity))
	realized := price.Sub(h.AverageCost).Mul(quantity)
	if remaining := h.removeLot(quantity); remaining.Quantity.IsZero() {
		delete(b.Holdings, inst.Symbol)
	} else {
		b.Holdings[inst.Symbol] = remaining
	}
	return newTradeRecord(SideSell, inst, quantity, price, realized), nil
}

// Watch adds symbol to the watchlist. Adding a watched symbol is a no-op.
func (b *Book) Watch(symbol string) {
	if !slices.Contains(b.Watchlist, symbol) {
		b.Watchlist = append(b.Watchlist, symbol)
	}
}

// Unwatch removes symbol from the watchlist.
func (b *Book) Unwatch(symbol string) {
	b.Watchlist = slices.DeleteFunc(b.Watchlist, func(s string) bool { return s == symbol })
}

// Watched reports whether symbol is on the watchlist.
func (b *Book) Watched(symbol string) bool {
	return slices.Contains(b.Watchlist, symbol)
}
