package renderer

import (
	"fmt"
	"strings"

	"github.com/papertrade/papertrade"
)

// SignalMarkdown renders a trade signal. Insights are short bullets so a
// hand-built list reads better than a table.
func SignalMarkdown(s papertrade.Signal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Signal for %s\n\n", s.Symbol)
	fmt.Fprintf(&b, "**%s** (score %.0f/100)\n\n", s.Label, s.Score)
	fmt.Fprintf(&b, "%s\n\n", s.Advice)
	for _, insight := range s.Insights {
		fmt.Fprintf(&b, "- %s\n", insight.Text)
	}
	return b.String()
}
