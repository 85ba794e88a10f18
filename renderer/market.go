// Package renderer turns market and portfolio data into markdown
// suitable for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/papertrade/papertrade"
)

// MarketRow pairs an instrument with its live quote for display.
type MarketRow struct {
	Instrument papertrade.Instrument
	Quote      papertrade.Quote
	Watched    bool
}

func MarketMarkdown(rows []MarketRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Category", "Price", "Change", "Change %"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		symbol := row.Instrument.Symbol
		if row.Watched {
			symbol = "★ " + symbol
		}
		table.Rows = append(table.Rows, []string{
			symbol,
			row.Instrument.Name,
			row.Instrument.Category,
			row.Quote.Price.String(),
			row.Quote.Change.SignedString(),
			row.Quote.ChangePercent.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// QuoteMarkdown renders a single instrument in detail.
func QuoteMarkdown(inst papertrade.Instrument, q papertrade.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", inst.Name, inst.Symbol))
	doc.PlainText(inst.Description)

	table := md.TableSet{
		Header: []string{"Price", "Change", "Change %", "Category", "Volume"},
		Rows: [][]string{{
			q.Price.String(),
			q.Change.SignedString(),
			q.ChangePercent.SignedString(),
			inst.Category,
			fmt.Sprintf("%d", inst.Volume),
		}},
	}
	doc.Table(table)

	return doc.String()
}
