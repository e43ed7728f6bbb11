package stats

import (
	"strconv"

	"github.com/rustyeddy/tradejournal/journal"
)

// EquityPoint is the account balance right after a trade.
type EquityPoint struct {
	Trade   int     `json:"trade"` // 1-based position in the trade list
	Label   string  `json:"label"`
	Balance float64 `json:"balance"`
}

// EquityCurve returns one point per trade where point i holds
// initialBalance plus the results of trades[0..i].
func EquityCurve(trades []journal.TradeRecord, initialBalance float64) []EquityPoint {
	curve := make([]EquityPoint, 0, len(trades))
	balance := initialBalance
	for i, t := range trades {
		balance += t.Result
		curve = append(curve, EquityPoint{
			Trade:   i + 1,
			Label:   "Trade " + strconv.Itoa(i+1),
			Balance: balance,
		})
	}
	return curve
}

// Balance is the account balance after every trade has been applied.
func Balance(trades []journal.TradeRecord, initialBalance float64) float64 {
	return initialBalance + NetPL(trades)
}

// MaxDrawdown returns the largest peak-to-trough fall of the curve, as a
// positive amount and as a percentage of the peak. The initial balance
// counts as the first peak.
func MaxDrawdown(curve []EquityPoint, initialBalance float64) (amount, pct float64) {
	peak := initialBalance
	for _, p := range curve {
		if p.Balance > peak {
			peak = p.Balance
		}
		dd := peak - p.Balance
		if dd > amount {
			amount = dd
			if peak > 0 {
				pct = dd / peak * 100
			}
		}
	}
	return amount, pct
}
