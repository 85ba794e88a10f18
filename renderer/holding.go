package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/papertrade/papertrade"
)

func PortfolioMarkdown(v *papertrade.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")

	summary := md.TableSet{
		Header: []string{"Cash", "Holdings Value", "Total Value", "Total P/L", "Total P/L %"},
		Rows: [][]string{{
			v.Cash.String(),
			v.TotalValue.Sub(v.Cash).String(),
			v.TotalValue.String(),
			v.TotalUnrealizedPL.SignedString(),
			v.TotalPLPercent.SignedString(),
		}},
	}
	doc.Table(summary)

	if len(v.Holdings) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	doc.H2("Positions")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Qty", "Avg Cost", "Price", "Market Value", "P/L", "P/L %"},
		Rows:   [][]string{},
	}
	for _, h := range v.Holdings {
		table.Rows = append(table.Rows, []string{
			h.Symbol,
			h.Name,
			h.Quantity.String(),
			h.AverageCost.String(),
			h.Price.String(),
			h.MarketValue.String(),
			h.UnrealizedPL.SignedString(),
			h.PLPercent.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// WatchlistMarkdown renders the watched symbols with their quotes.
func WatchlistMarkdown(rows []MarketRow) string {
	if len(rows) == 0 {
		return "# Watchlist\n\nNothing on the watchlist yet.\n"
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Watchlist")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Price", "Change %"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Instrument.Symbol,
			row.Instrument.Name,
			row.Quote.Price.String(),
			row.Quote.ChangePercent.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// TradeMarkdown confirms a single executed trade.
func TradeMarkdown(rec papertrade.TradeRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s %s", rec.Side, rec.Symbol))

	rows := [][]string{
		{"Quantity", rec.Quantity.String()},
		{"Price", rec.Price.String()},
		{"Total", rec.Total.String()},
	}
	if rec.Side == papertrade.SideSell {
		rows = append(rows, []string{"Realized P/L", rec.RealizedPL.SignedString()})
	}
	doc.Table(md.TableSet{Header: []string{"Field", "Value"}, Rows: rows})

	return doc.String()
}
