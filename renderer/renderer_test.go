package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/papertrade/papertrade"
)

func aapl() papertrade.Instrument {
	inst, _ := papertrade.DefaultUniverse().Get("AAPL")
	return inst
}

func TestMarketMarkdown(t *testing.T) {
	rows := []MarketRow{
		{
			Instrument: aapl(),
			Quote: papertrade.Quote{
				Price:         papertrade.USD(180),
				Change:        papertrade.USD(4.50),
				ChangePercent: 2.56,
			},
			Watched: true,
		},
	}
	got := MarketMarkdown(rows)

	for _, want := range []string{
		"# Market",
		"★ AAPL",
		"Apple Inc.",
		"$180.00",
		"+$4.50",
		"+2.56%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("MarketMarkdown() missing %q:\n%s", want, got)
		}
	}
}

func TestPortfolioMarkdown(t *testing.T) {
	v := &papertrade.Valuation{
		Cash:       papertrade.USD(8245),
		TotalValue: papertrade.USD(10045),
		Holdings: []papertrade.HoldingValue{
			{
				Symbol:       "AAPL",
				Name:         "Apple Inc.",
				Quantity:     papertrade.Q(10),
				AverageCost:  papertrade.USD(175.50),
				Price:        papertrade.USD(180),
				MarketValue:  papertrade.USD(1800),
				UnrealizedPL: papertrade.USD(45),
				PLPercent:    2.56,
			},
		},
	}
	got := PortfolioMarkdown(v)

	for _, want := range []string{
		"# Portfolio",
		"## Positions",
		"$8,245.00",
		"$1,800.00",
		"+$45.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PortfolioMarkdown() missing %q:\n%s", want, got)
		}
	}
}

func TestPortfolioMarkdown_Empty(t *testing.T) {
	v := &papertrade.Valuation{
		Cash:       papertrade.USD(10000),
		TotalValue: papertrade.USD(10000),
	}
	got := PortfolioMarkdown(v)
	if !strings.Contains(got, "No open positions.") {
		t.Errorf("PortfolioMarkdown() missing empty notice:\n%s", got)
	}
}

func TestHistoryMarkdown_NewestFirst(t *testing.T) {
	trades := []papertrade.TradeRecord{
		{Side: papertrade.SideBuy, Symbol: "AAPL", Quantity: papertrade.Q(10),
			Price: papertrade.USD(175.50), Total: papertrade.USD(1755),
			Time: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{Side: papertrade.SideSell, Symbol: "AAPL", Quantity: papertrade.Q(4),
			Price: papertrade.USD(180), Total: papertrade.USD(720),
			RealizedPL: papertrade.USD(18),
			Time:       time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
	}
	got := HistoryMarkdown(trades)

	sell := strings.Index(got, "sell")
	buy := strings.Index(got, "buy")
	if sell == -1 || buy == -1 {
		t.Fatalf("HistoryMarkdown() missing sides:\n%s", got)
	}
	if sell > buy {
		t.Errorf("HistoryMarkdown() not newest first:\n%s", got)
	}
	if !strings.Contains(got, "+$18.00") {
		t.Errorf("HistoryMarkdown() missing realized P/L:\n%s", got)
	}
}

func TestSignalMarkdown(t *testing.T) {
	sig := papertrade.Signal{
		Symbol: "AAPL",
		Score:  80,
		Label:  "Strong Buy Signal",
		Advice: "High probability of price increase. Consider buying.",
		Tone:   "success",
		Insights: []papertrade.Insight{
			{Text: "Price movement is relatively stable", Tone: "info"},
		},
	}
	got := SignalMarkdown(sig)

	for _, want := range []string{
		"# Signal for AAPL",
		"**Strong Buy Signal** (score 80/100)",
		"- Price movement is relatively stable",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SignalMarkdown() missing %q:\n%s", want, got)
		}
	}
}
