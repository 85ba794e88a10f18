package papertrade

import (
	"slices"
	"strings"
	"testing"
)

func TestNewUniverse_RejectsDuplicates(t *testing.T) {
	_, err := NewUniverse(
		Instrument{Symbol: "AAA", Name: "First", BasePrice: USD(1)},
		Instrument{Symbol: "AAA", Name: "Second", BasePrice: USD(2)},
	)
	if err == nil {
		t.Fatal("NewUniverse() accepted a duplicate symbol")
	}
}

func TestDefaultUniverse(t *testing.T) {
	u := DefaultUniverse()
	if u.Len() != 25 {
		t.Fatalf("universe has %d instruments, want 25", u.Len())
	}
	aapl, ok := u.Get("AAPL")
	if !ok {
		t.Fatal("AAPL missing")
	}
	if !aapl.BasePrice.Equal(USD(175.50)) {
		t.Errorf("AAPL base = %s, want 175.50", aapl.BasePrice)
	}
	all := u.All()
	if !slices.IsSortedFunc(all, func(a, b Instrument) int {
		return strings.Compare(a.Symbol, b.Symbol)
	}) {
		t.Error("All() not sorted by symbol")
	}
}

func TestUniverse_Select(t *testing.T) {
	u := DefaultUniverse()
	quotes := map[string]Quote{
		"AAPL": {Price: USD(180), ChangePercent: 2.5},
		"MSFT": {Price: USD(370), ChangePercent: -1.2},
		"TSLA": {Price: USD(250), ChangePercent: 0.8},
	}

	symbols := func(instruments []Instrument) []string {
		var out []string
		for _, inst := range instruments {
			out = append(out, inst.Symbol)
		}
		return out
	}

	tests := []struct {
		name string
		f    Filter
		want []string
	}{
		{
			name: "query matches symbol",
			f:    Filter{Query: "aapl"},
			want: []string{"AAPL"},
		},
		{
			name: "query matches name substring",
			f:    Filter{Query: "motor"},
			want: []string{"F", "GM"},
		},
		{
			name: "category",
			f:    Filter{Category: "Auto"},
			want: []string{"F", "GM", "TSLA"},
		},
		{
			name: "gainers need a positive change",
			f:    Filter{Gainers: true},
			want: []string{"AAPL", "TSLA"},
		},
		{
			name: "losers need a negative change",
			f:    Filter{Losers: true},
			want: []string{"MSFT"},
		},
		{
			name: "watchlist restricts",
			f:    Filter{Watchlist: []string{"TSLA", "KO"}},
			want: []string{"KO", "TSLA"},
		},
		{
			name: "query and category combine",
			f:    Filter{Query: "inc", Category: "Media"},
			want: []string{"NFLX"},
		},
		{
			name: "no match",
			f:    Filter{Query: "zzz"},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := symbols(u.Select(tt.f, quotes))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Select(%+v) = %v, want %v", tt.f, got, tt.want)
			}
		})
	}
}

func TestUniverse_Categories(t *testing.T) {
	got := DefaultUniverse().Categories()
	want := []string{"Auto", "Bank", "Consumer", "Energy", "Finance", "Media", "Pharma", "Retail", "Tech"}
	if !slices.Equal(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}
