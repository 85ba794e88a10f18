package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/papertrade/papertrade"
)

func HistoryMarkdown(trades []papertrade.TradeRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trade History")

	if len(trades) == 0 {
		doc.PlainText("No trades recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Time", "Side", "Symbol", "Qty", "Price", "Total", "Realized P/L"},
		Rows:   [][]string{},
	}
	// newest first
	for i := len(trades) - 1; i >= 0; i-- {
		rec := trades[i]
		realized := ""
		if rec.Side == papertrade.SideSell {
			realized = rec.RealizedPL.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			rec.Time.Format("2006-01-02 15:04:05"),
			string(rec.Side),
			rec.Symbol,
			rec.Quantity.String(),
			rec.Price.String(),
			rec.Total.String(),
			realized,
		})
	}
	doc.Table(table)

	return doc.String()
}
