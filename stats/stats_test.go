package stats

import (
	"testing"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/stretchr/testify/assert"
)

func trades(results ...float64) []journal.TradeRecord {
	out := make([]journal.TradeRecord, len(results))
	for i, r := range results {
		out[i] = journal.TradeRecord{Pair: "EUR_USD", Direction: journal.Long, Result: r}
	}
	return out
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Equal(t, Summary{}, Summarize([]journal.TradeRecord{}))
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results []float64
		want    Summary
	}{
		{
			name:    "mixed",
			results: []float64{100, -50, 200},
			want: Summary{
				TotalTrades:  3,
				WinRate:      200.0 / 3.0,
				AvgWin:       150,
				AvgLoss:      -50,
				BiggestWin:   200,
				BiggestLoss:  -50,
				ProfitFactor: 6,
			},
		},
		{
			name:    "all_losses",
			results: []float64{-10, -20},
			want: Summary{
				TotalTrades: 2,
				AvgLoss:     -15,
				BiggestLoss: -20,
			},
		},
		{
			name:    "all_wins_profit_factor_is_zero",
			results: []float64{10, 20},
			want: Summary{
				TotalTrades: 2,
				WinRate:     100,
				AvgWin:      15,
				BiggestWin:  20,
			},
		},
		{
			name:    "breakeven_counts_only_in_total",
			results: []float64{0, 0, 30, -10},
			want: Summary{
				TotalTrades:  4,
				WinRate:      25,
				AvgWin:       30,
				AvgLoss:      -10,
				BiggestWin:   30,
				BiggestLoss:  -10,
				ProfitFactor: 3,
			},
		},
		{
			name:    "only_breakeven",
			results: []float64{0},
			want:    Summary{TotalTrades: 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Summarize(trades(tt.results...))
			assert.Equal(t, tt.want.TotalTrades, got.TotalTrades)
			assert.InDelta(t, tt.want.WinRate, got.WinRate, 1e-9)
			assert.InDelta(t, tt.want.AvgWin, got.AvgWin, 1e-9)
			assert.InDelta(t, tt.want.AvgLoss, got.AvgLoss, 1e-9)
			assert.InDelta(t, tt.want.BiggestWin, got.BiggestWin, 1e-9)
			assert.InDelta(t, tt.want.BiggestLoss, got.BiggestLoss, 1e-9)
			assert.InDelta(t, tt.want.ProfitFactor, got.ProfitFactor, 1e-9)
		})
	}
}

func TestSummarizeWinRateRounds(t *testing.T) {
	t.Parallel()

	got := Summarize(trades(100, -50, 200))
	assert.InDelta(t, 66.67, got.WinRate, 0.005)
}

func TestSummarizeIgnoresDirection(t *testing.T) {
	t.Parallel()

	longs := trades(100, -50)
	shorts := trades(100, -50)
	for i := range shorts {
		shorts[i].Direction = journal.Short
	}
	assert.Equal(t, Summarize(longs), Summarize(shorts))
}

func TestSummarizeIsIdempotent(t *testing.T) {
	t.Parallel()

	list := trades(12.5, -3, 0, 44, -19.25)
	first := Summarize(list)
	second := Summarize(list)
	assert.Equal(t, first, second)
	assert.Equal(t, trades(12.5, -3, 0, 44, -19.25), list, "input must not be modified")
}

func TestNetPL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, NetPL(nil))
	assert.InDelta(t, 250.0, NetPL(trades(100, -50, 200)), 1e-9)
}
