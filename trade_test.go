package papertrade

import "testing"

func testLog() []TradeRecord {
	return []TradeRecord{
		{ID: "1", Side: SideBuy, Symbol: "AAPL"},
		{ID: "2", Side: SideBuy, Symbol: "TSLA"},
		{ID: "3", Side: SideSell, Symbol: "AAPL"},
		{ID: "4", Side: SideBuy, Symbol: "KO"},
	}
}

func TestSelectTrades(t *testing.T) {
	tests := []struct {
		name    string
		side    Side
		wantIDs []string
	}{
		{"all", "", []string{"1", "2", "3", "4"}},
		{"buys", SideBuy, []string{"1", "2", "4"}},
		{"sells", SideSell, []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectTrades(testLog(), tt.side)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("SelectTrades() returned %d records, want %d", len(got), len(tt.wantIDs))
			}
			for i, rec := range got {
				if rec.ID != tt.wantIDs[i] {
					t.Errorf("record %d = %q, want %q", i, rec.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestNewestFirst(t *testing.T) {
	log := testLog()
	got := NewestFirst(log)
	want := []string{"4", "3", "2", "1"}
	for i, rec := range got {
		if rec.ID != want[i] {
			t.Errorf("record %d = %q, want %q", i, rec.ID, want[i])
		}
	}
	// the log itself keeps its order
	if log[0].ID != "1" {
		t.Errorf("input mutated, first record now %q", log[0].ID)
	}
}

func TestParseSide(t *testing.T) {
	if side, err := ParseSide("buy"); err != nil || side != SideBuy {
		t.Errorf("ParseSide(buy) = %v, %v", side, err)
	}
	if side, err := ParseSide("sell"); err != nil || side != SideSell {
		t.Errorf("ParseSide(sell) = %v, %v", side, err)
	}
	if _, err := ParseSide("short"); err == nil {
		t.Error("ParseSide(short) succeeded, want error")
	}
}
