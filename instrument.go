package papertrade

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Instrument is immutable reference data for one tradable equity.
type Instrument struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	BasePrice   Money  `json:"basePrice"`
	Volume      int64  `json:"volume"` // average daily volume, shares
	Description string `json:"description,omitempty"`
}

// Universe indexes instruments by symbol.
type Universe struct {
	instruments map[string]Instrument
}

// NewUniverse builds a universe from a list of instruments.
// Symbols must be unique.
func NewUniverse(instruments ...Instrument) (*Universe, error) {
	u := &Universe{instruments: make(map[string]Instrument, len(instruments))}
	for _, inst := range instruments {
		if inst.Symbol == "" {
			return nil, fmt.Errorf("instrument %q has no symbol", inst.Name)
		}
		if _, dup := u.instruments[inst.Symbol]; dup {
			return nil, fmt.Errorf("duplicate symbol %q in universe", inst.Symbol)
		}
		u.instruments[inst.Symbol] = inst
	}
	return u, nil
}

// Get returns the instrument for a symbol.
func (u *Universe) Get(symbol string) (Instrument, bool) {
	inst, ok := u.instruments[symbol]
	return inst, ok
}

func (u *Universe) Has(symbol string) bool {
	_, ok := u.instruments[symbol]
	return ok
}

func (u *Universe) Len() int { return len(u.instruments) }

// All returns all instruments sorted by symbol.
func (u *Universe) All() []Instrument {
	symbols := slices.Sorted(maps.Keys(u.instruments))
	all := make([]Instrument, 0, len(symbols))
	for _, s := range symbols {
		all = append(all, u.instruments[s])
	}
	return all
}

// Categories returns the distinct instrument categories, sorted.
func (u *Universe) Categories() []string {
	seen := make(map[string]struct{})
	for _, inst := range u.instruments {
		seen[inst.Category] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Filter narrows a market listing. Zero values mean "no constraint".
// Gainers/Losers need quotes; Watchlist restricts to the given symbols.
type Filter struct {
	Query     string // substring of symbol or name, case-insensitive
	Category  string
	Gainers   bool
	Losers    bool
	Watchlist []string
}

// Select returns the instruments matching the filter, sorted by symbol.
// An instrument with no quote has a zero change and so is neither gainer
// nor loser.
func (u *Universe) Select(f Filter, quotes map[string]Quote) []Instrument {
	query := strings.ToLower(f.Query)
	var out []Instrument
	for _, inst := range u.All() {
		if query != "" &&
			!strings.Contains(strings.ToLower(inst.Symbol), query) &&
			!strings.Contains(strings.ToLower(inst.Name), query) {
			continue
		}
		if f.Category != "" && inst.Category != f.Category {
			continue
		}
		if f.Gainers && quotes[inst.Symbol].ChangePercent <= 0 {
			continue
		}
		if f.Losers && quotes[inst.Symbol].ChangePercent >= 0 {
			continue
		}
		if f.Watchlist != nil && !slices.Contains(f.Watchlist, inst.Symbol) {
			continue
		}
		out = append(out, inst)
	}
	return out
}

// DefaultUniverse returns the built-in 25-instrument universe.
func DefaultUniverse() *Universe {
	u, err := NewUniverse(defaultInstruments...)
	if err != nil {
		// the built-in list is static and known good
		panic(err)
	}
	return u
}

var defaultInstruments = []Instrument{
	{Symbol: "AAPL", Name: "Apple Inc.", Category: "Tech", BasePrice: USD(175.50), Volume: 45000000, Description: "Technology company known for iPhone, iPad, Mac, and services."},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Category: "Tech", BasePrice: USD(378.90), Volume: 28000000, Description: "Leading software and cloud services provider."},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Category: "Tech", BasePrice: USD(142.30), Volume: 32000000, Description: "Parent company of Google and other subsidiaries."},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Category: "Tech", BasePrice: USD(145.80), Volume: 38000000, Description: "E-commerce and cloud computing giant."},
	{Symbol: "TSLA", Name: "Tesla Inc.", Category: "Auto", BasePrice: USD(248.50), Volume: 95000000, Description: "Electric vehicle and clean energy company."},
	{Symbol: "META", Name: "Meta Platforms Inc.", Category: "Tech", BasePrice: USD(312.40), Volume: 22000000, Description: "Social media and virtual reality company."},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Category: "Tech", BasePrice: USD(485.20), Volume: 55000000, Description: "Graphics processing and AI technology leader."},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Category: "Bank", BasePrice: USD(156.70), Volume: 15000000, Description: "Largest bank in the United States."},
	{Symbol: "V", Name: "Visa Inc.", Category: "Finance", BasePrice: USD(245.60), Volume: 8500000, Description: "Global payments technology company."},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Category: "Pharma", BasePrice: USD(158.90), Volume: 12000000, Description: "Healthcare and pharmaceutical corporation."},
	{Symbol: "WMT", Name: "Walmart Inc.", Category: "Retail", BasePrice: USD(162.40), Volume: 18000000, Description: "World's largest retailer."},
	{Symbol: "PG", Name: "Procter & Gamble Co.", Category: "Consumer", BasePrice: USD(152.30), Volume: 10000000, Description: "Consumer goods manufacturing company."},
	{Symbol: "MA", Name: "Mastercard Inc.", Category: "Finance", BasePrice: USD(398.50), Volume: 6500000, Description: "Global payment processing corporation."},
	{Symbol: "DIS", Name: "The Walt Disney Company", Category: "Media", BasePrice: USD(95.80), Volume: 14000000, Description: "Entertainment and media conglomerate."},
	{Symbol: "NFLX", Name: "Netflix Inc.", Category: "Media", BasePrice: USD(425.60), Volume: 8000000, Description: "Streaming entertainment service provider."},
	{Symbol: "BAC", Name: "Bank of America Corp.", Category: "Bank", BasePrice: USD(33.20), Volume: 45000000, Description: "Major American banking institution."},
	{Symbol: "XOM", Name: "Exxon Mobil Corporation", Category: "Energy", BasePrice: USD(108.40), Volume: 25000000, Description: "Oil and gas exploration company."},
	{Symbol: "CSCO", Name: "Cisco Systems Inc.", Category: "Tech", BasePrice: USD(52.70), Volume: 16000000, Description: "Networking and cybersecurity solutions."},
	{Symbol: "PFE", Name: "Pfizer Inc.", Category: "Pharma", BasePrice: USD(28.90), Volume: 35000000, Description: "Pharmaceutical and biotechnology company."},
	{Symbol: "INTC", Name: "Intel Corporation", Category: "Tech", BasePrice: USD(42.50), Volume: 30000000, Description: "Semiconductor chip manufacturer."},
	{Symbol: "F", Name: "Ford Motor Company", Category: "Auto", BasePrice: USD(12.80), Volume: 55000000, Description: "American automobile manufacturer."},
	{Symbol: "GM", Name: "General Motors", Category: "Auto", BasePrice: USD(38.40), Volume: 18000000, Description: "Automotive manufacturing company."},
	{Symbol: "NKE", Name: "Nike Inc.", Category: "Retail", BasePrice: USD(98.20), Volume: 12000000, Description: "Athletic footwear and apparel company."},
	{Symbol: "KO", Name: "The Coca-Cola Company", Category: "Consumer", BasePrice: USD(58.70), Volume: 15000000, Description: "Beverage manufacturing corporation."},
	{Symbol: "PEP", Name: "PepsiCo Inc.", Category: "Consumer", BasePrice: USD(168.30), Volume: 8000000, Description: "Food and beverage company."},
}
