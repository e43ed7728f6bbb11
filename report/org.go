package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/pkg/id"
	"github.com/rustyeddy/tradejournal/stats"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block suitable for
// pasting into a journal. Structured facts go in the PROPERTIES drawer,
// the notes become the Review section.
func FormatTradeOrg(t journal.TradeRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Trade: %s %s (%s)\n", t.Pair, t.Direction, id.Short(t.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", t.ID)
	fmt.Fprintf(&b, ":DATE: %s\n", t.Day())
	fmt.Fprintf(&b, ":PAIR: %s\n", t.Pair)
	fmt.Fprintf(&b, ":DIRECTION: %s\n", t.Direction)
	fmt.Fprintf(&b, ":RESULT: %.2f\n", t.Result)
	fmt.Fprintf(&b, ":CREATED: %s\n", t.Created.UTC().Format(time.RFC3339))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Review\n")
	if t.Notes != "" {
		fmt.Fprintf(&b, "- %s\n", t.Notes)
	} else {
		b.WriteString("- \n")
	}

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []journal.TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

// SessionReport is the data behind the Org session report.
type SessionReport struct {
	Title     string
	Currency  string
	Created   time.Time
	Snapshot  stats.Snapshot
	Trades    []journal.TradeRecord
	ChartPath string
}

var sessionOrgFuncs = template.FuncMap{
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
	"tradeOrg": FormatTradeOrg,
	"wins": func(trades []journal.TradeRecord) int {
		n := 0
		for _, t := range trades {
			if t.IsWin() {
				n++
			}
		}
		return n
	},
	"losses": func(trades []journal.TradeRecord) int {
		n := 0
		for _, t := range trades {
			if t.IsLoss() {
				n++
			}
		}
		return n
	},
}

var sessionOrg = template.Must(template.New("session").Funcs(sessionOrgFuncs).Parse(SessionOrgTemplate))

// RenderSessionOrg executes the session template into w.
func RenderSessionOrg(w io.Writer, r SessionReport) error {
	if r.Title == "" {
		r.Title = "Trading Journal"
	}
	return sessionOrg.Execute(w, r)
}

// WriteSessionOrg renders the session report to path.
func WriteSessionOrg(path string, r SessionReport) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderSessionOrg(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("render org: %w", err)
	}
	return f.Close()
}

const SessionOrgTemplate = `* JOURNAL: {{.Title}}
:PROPERTIES:
:CURRENCY:     {{.Currency}}
:START_BAL:    {{printf "%.2f" .Snapshot.InitialBalance}}
:END_BAL:      {{printf "%.2f" .Snapshot.CurrentBalance}}
:NET_PL:       {{printf "%.2f" .Snapshot.NetPL}}
:MAX_DD:       {{printf "%.2f" .Snapshot.MaxDrawdown}}
:TRADES:       {{.Snapshot.Summary.TotalTrades}}
:WIN_RATE:     {{printf "%.2f" .Snapshot.Summary.WinRate}}
:PROFIT_FAC:   {{printf "%.2f" .Snapshot.Summary.ProfitFactor}}
:CREATED:      [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Performance Summary
| Statistic     | Value |
|---------------+-------|
| Total Trades  | {{.Snapshot.Summary.TotalTrades}} |
| Win Rate      | {{printf "%.2f" .Snapshot.Summary.WinRate}}% |
| Average Win   | {{printf "%.2f" .Snapshot.Summary.AvgWin}} |
| Average Loss  | {{printf "%.2f" .Snapshot.Summary.AvgLoss}} |
| Biggest Win   | {{printf "%.2f" .Snapshot.Summary.BiggestWin}} |
| Biggest Loss  | {{printf "%.2f" .Snapshot.Summary.BiggestLoss}} |
| Profit Factor | {{printf "%.2f" .Snapshot.Summary.ProfitFactor}} |

** Equity Curve
{{- if .ChartPath }}
[[file:{{.ChartPath}}]]
{{- end }}
| Trade | Balance |
|-------+---------|
{{- range .Snapshot.Curve }}
| {{.Label}} | {{printf "%.2f" .Balance}} |
{{- end }}

** Trade Distribution
| Outcome | Count |
|---------+-------|
| Wins    | {{wins .Trades}} |
| Losses  | {{losses .Trades}} |
| Total   | {{len .Trades}} |

{{- if .Trades }}

* Trades
{{ range $i, $t := .Trades }}{{ if $i }}
{{ end }}{{ tradeOrg $t }}{{ end }}
{{- end }}
`
