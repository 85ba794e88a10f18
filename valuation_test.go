package papertrade

import "testing"

func TestValue_MarksToQuotes(t *testing.T) {
	universe := DefaultUniverse()
	b := NewBook(USD(10000))
	aapl := testInstrument("AAPL")
	if _, err := b.Buy(aapl, Q(10), USD(150)); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}

	quotes := map[string]Quote{
		"AAPL": {Price: USD(180), Change: USD(4.5), ChangePercent: Percent(2.56)},
	}
	v := Value(b, universe, quotes)

	if len(v.Holdings) != 1 {
		t.Fatalf("holdings = %d, want 1", len(v.Holdings))
	}
	h := v.Holdings[0]
	if !h.MarketValue.Equal(USD(1800)) {
		t.Errorf("market value = %s, want 1800.00", h.MarketValue)
	}
	if !h.UnrealizedPL.Equal(USD(300)) {
		t.Errorf("unrealized = %s, want 300.00", h.UnrealizedPL)
	}
	if !h.PLPercent.Equal(Percent(20)) {
		t.Errorf("pl percent = %s, want 20%%", h.PLPercent)
	}
	if !v.TotalValue.Equal(USD(8500).Add(USD(1800))) {
		t.Errorf("total value = %s, want 10300.00", v.TotalValue)
	}
	if !v.TotalPLPercent.Equal(Percent(20)) {
		t.Errorf("total pl percent = %s, want 20%%", v.TotalPLPercent)
	}
}

// With no quote published the base price stands in.
func TestValue_FallsBackToBasePrice(t *testing.T) {
	universe := DefaultUniverse()
	b := NewBook(USD(10000))
	aapl := testInstrument("AAPL")
	if _, err := b.Buy(aapl, Q(2), aapl.BasePrice); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}

	v := Value(b, universe, nil)
	if len(v.Holdings) != 1 {
		t.Fatalf("holdings = %d, want 1", len(v.Holdings))
	}
	if !v.Holdings[0].Price.Equal(aapl.BasePrice) {
		t.Errorf("price = %s, want base %s", v.Holdings[0].Price, aapl.BasePrice)
	}
	if !v.Holdings[0].UnrealizedPL.IsZero() {
		t.Errorf("unrealized = %s, want zero", v.Holdings[0].UnrealizedPL)
	}
}

// A held symbol no longer in the universe carries no price and is left
// out of the valuation.
func TestValue_SkipsUnknownSymbols(t *testing.T) {
	universe := DefaultUniverse()
	b := NewBook(USD(10000))
	b.Holdings["GONE"] = Holding{Quantity: Q(5), AverageCost: USD(10), TotalInvested: USD(50)}

	v := Value(b, universe, nil)
	if len(v.Holdings) != 0 {
		t.Fatalf("holdings = %d, want 0", len(v.Holdings))
	}
	if !v.TotalValue.Equal(b.Cash) {
		t.Errorf("total value = %s, want cash only %s", v.TotalValue, b.Cash)
	}
}

// Valuing the same book twice against the same quotes neither drifts nor
// mutates the book.
func TestValue_Idempotent(t *testing.T) {
	universe := DefaultUniverse()
	b := NewBook(USD(10000))
	aapl := testInstrument("AAPL")
	if _, err := b.Buy(aapl, Q(10), USD(150)); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	quotes := map[string]Quote{"AAPL": {Price: USD(180)}}

	first := Value(b, universe, quotes)
	second := Value(b, universe, quotes)

	if !first.TotalValue.Equal(second.TotalValue) ||
		!first.TotalUnrealizedPL.Equal(second.TotalUnrealizedPL) ||
		!first.TotalPLPercent.Equal(second.TotalPLPercent) {
		t.Errorf("valuations differ: %+v vs %+v", first, second)
	}
	if !b.Cash.Equal(USD(8500)) {
		t.Errorf("cash = %s after valuing, want 8500.00", b.Cash)
	}
	if h := b.Holdings["AAPL"]; !h.TotalInvested.Equal(USD(1500)) {
		t.Errorf("invested = %s after valuing, want 1500.00", h.TotalInvested)
	}
}

func TestValue_EmptyBook(t *testing.T) {
	v := Value(NewBook(USD(10000)), DefaultUniverse(), nil)
	if !v.TotalValue.Equal(USD(10000)) {
		t.Errorf("total value = %s, want 10000.00", v.TotalValue)
	}
	if v.TotalPLPercent != 0 {
		t.Errorf("total pl percent = %s, want 0", v.TotalPLPercent)
	}
}
