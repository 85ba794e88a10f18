package papertrade

import (
	"maps"
	"slices"
)

// HoldingValue is one holding marked to the current market.
type HoldingValue struct {
	Symbol        string
	Name          string
	Quantity      Quantity
	AverageCost   Money
	Price         Money
	MarketValue   Money
	TotalInvested Money
	UnrealizedPL  Money
	PLPercent     Percent
}

// Valuation is the whole book marked to the current market.
type Valuation struct {
	Cash              Money
	TotalValue        Money // cash + market value of all holdings
	TotalInvested     Money
	TotalUnrealizedPL Money
	TotalPLPercent    Percent
	Holdings          []HoldingValue // sorted by symbol
}

// Value marks the book to market. It is a pure function of its inputs and
// is recomputed wholesale on every call rather than cached incrementally;
// the book is small and recomputing avoids staleness.
//
// A held symbol with no quote is priced at the instrument's base price. A
// held symbol absent from the universe is skipped: the position still
// exists in the book but carries no price, so it cannot be valued. This
// mirrors how the quote board treats unknown symbols.
func Value(book *Book, universe *Universe, quotes map[string]Quote) Valuation {
	v := Valuation{Cash: book.Cash, TotalValue: book.Cash}

	for _, symbol := range slices.Sorted(maps.Keys(book.Holdings)) {
		inst, ok := universe.Get(symbol)
		if !ok {
			continue
		}
		h := book.Holdings[symbol]
		price := inst.BasePrice
		if q, ok := quotes[symbol]; ok {
			price = q.Price
		}

		marketValue := price.Mul(h.Quantity)
		unrealized := marketValue.Sub(h.TotalInvested)
		v.Holdings = append(v.Holdings, HoldingValue{
			Symbol:        symbol,
			Name:          inst.Name,
			Quantity:      h.Quantity,
			AverageCost:   h.AverageCost,
			Price:         price,
			MarketValue:   marketValue,
			TotalInvested: h.TotalInvested,
			UnrealizedPL:  unrealized,
			PLPercent:     PercentChange(h.AverageCost, price),
		})

		v.TotalValue = v.TotalValue.Add(marketValue)
		v.TotalInvested = v.TotalInvested.Add(h.TotalInvested)
		v.TotalUnrealizedPL = v.TotalUnrealizedPL.Add(unrealized)
	}

	if v.TotalInvested.IsPositive() {
		v.TotalPLPercent = Percent(v.TotalUnrealizedPL.AsFloat() / v.TotalInvested.AsFloat() * 100)
	}
	return v
}
