package stats

import "github.com/rustyeddy/tradejournal/journal"

// Snapshot bundles everything derived from one trade list. It is rebuilt
// from scratch after every change to the list.
type Snapshot struct {
	InitialBalance float64       `json:"initialBalance"`
	CurrentBalance float64       `json:"currentBalance"`
	NetPL          float64       `json:"netPL"`
	MaxDrawdown    float64       `json:"maxDrawdown"`
	MaxDrawdownPct float64       `json:"maxDrawdownPct"`
	Summary        Summary       `json:"summary"`
	Curve          []EquityPoint `json:"curve"`
}

func Derive(trades []journal.TradeRecord, initialBalance float64) Snapshot {
	curve := EquityCurve(trades, initialBalance)
	dd, ddPct := MaxDrawdown(curve, initialBalance)
	net := NetPL(trades)

	return Snapshot{
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance + net,
		NetPL:          net,
		MaxDrawdown:    dd,
		MaxDrawdownPct: ddPct,
		Summary:        Summarize(trades),
		Curve:          curve,
	}
}
