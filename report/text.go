package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/pkg/id"
	"github.com/rustyeddy/tradejournal/stats"
)

// PrintSnapshot writes the balance and statistics block.
func PrintSnapshot(w io.Writer, snap stats.Snapshot, currency string) {
	s := snap.Summary

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Trading Journal")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Initial Balance: %.2f %s\n", snap.InitialBalance, currency)
	fmt.Fprintf(w, "Current Balance: %.2f %s\n", snap.CurrentBalance, currency)
	fmt.Fprintf(w, "Net P/L:         %.2f\n", snap.NetPL)
	if snap.MaxDrawdown > 0 {
		fmt.Fprintf(w, "Max Drawdown:    %.2f (%.2f%%)\n", snap.MaxDrawdown, snap.MaxDrawdownPct)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Total Trades:    %d\n", s.TotalTrades)
	fmt.Fprintf(w, "Win Rate:        %.2f%%\n", s.WinRate)
	fmt.Fprintf(w, "Average Win:     %.2f\n", s.AvgWin)
	fmt.Fprintf(w, "Average Loss:    %.2f\n", s.AvgLoss)
	fmt.Fprintf(w, "Biggest Win:     %.2f\n", s.BiggestWin)
	fmt.Fprintf(w, "Biggest Loss:    %.2f\n", s.BiggestLoss)
	fmt.Fprintf(w, "Profit Factor:   %.2f\n", s.ProfitFactor)
}

// PrintCurve writes one line per equity point.
func PrintCurve(w io.Writer, curve []stats.EquityPoint) {
	if len(curve) == 0 {
		fmt.Fprintln(w, "no trades")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range curve {
		fmt.Fprintf(tw, "%s\t%.2f\n", p.Label, p.Balance)
	}
	tw.Flush()
}

// PrintTrades writes the trade list as an aligned table.
func PrintTrades(w io.Writer, trades []journal.TradeRecord) {
	if len(trades) == 0 {
		fmt.Fprintln(w, "no trades")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tDATE\tPAIR\tDIR\tRESULT\tNOTES")
	for i, t := range trades {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			i+1, id.Short(t.ID), t.Day(), t.Pair, t.Direction, t.Result, t.Notes)
	}
	tw.Flush()
}
