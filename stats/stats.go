// Package stats derives performance figures from a journal's trades.
// Every function here is pure and defined for any input, including an
// empty trade list.
package stats

import (
	"math"

	"github.com/rustyeddy/tradejournal/journal"
)

// Summary is the statistics block shown next to the equity curve.
type Summary struct {
	TotalTrades  int     `json:"totalTrades"`
	WinRate      float64 `json:"winRate"` // percent, 0..100
	AvgWin       float64 `json:"avgWin"`
	AvgLoss      float64 `json:"avgLoss"` // <= 0
	BiggestWin   float64 `json:"biggestWin"`
	BiggestLoss  float64 `json:"biggestLoss"` // <= 0
	ProfitFactor float64 `json:"profitFactor"`
}

// Summarize computes the Summary for trades. Trades with a zero result
// count toward TotalTrades but are neither wins nor losses. Any figure
// whose subset is empty, or whose denominator is zero, is reported as 0.
func Summarize(trades []journal.TradeRecord) Summary {
	var (
		wins, losses        int
		grossWin, grossLoss float64
		biggestWin          float64
		biggestLoss         float64
	)

	for _, t := range trades {
		switch {
		case t.Result > 0:
			wins++
			grossWin += t.Result
			biggestWin = math.Max(biggestWin, t.Result)
		case t.Result < 0:
			losses++
			grossLoss += t.Result
			biggestLoss = math.Min(biggestLoss, t.Result)
		}
	}

	s := Summary{
		TotalTrades: len(trades),
		BiggestWin:  biggestWin,
		BiggestLoss: biggestLoss,
	}
	if s.TotalTrades > 0 {
		s.WinRate = float64(wins) / float64(s.TotalTrades) * 100
	}
	if wins > 0 {
		s.AvgWin = grossWin / float64(wins)
	}
	if losses > 0 {
		s.AvgLoss = grossLoss / float64(losses)
	}
	if grossLoss != 0 {
		s.ProfitFactor = grossWin / math.Abs(grossLoss)
	}
	return s
}

// NetPL is the sum of all trade results.
func NetPL(trades []journal.TradeRecord) float64 {
	var sum float64
	for _, t := range trades {
		sum += t.Result
	}
	return sum
}
