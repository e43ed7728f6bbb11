package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/rustyeddy/tradejournal/stats"
)

const (
	colorBalance = "#8884d8"

	chartHeightPx = 400
)

// EquityChart builds a line chart of the equity curve with a reference
// line at the initial balance.
func EquityChart(snap stats.Snapshot) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Equity Curve",
			Theme:     types.ThemeWesteros,
			Width:     "100%",
			Height:    fmt.Sprintf("%dpx", chartHeightPx),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Equity Curve",
			Subtitle: fmt.Sprintf("initial %.2f, current %.2f, %d trades",
				snap.InitialBalance, snap.CurrentBalance, snap.Summary.TotalTrades),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale:     opts.Bool(true),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true), LineStyle: &opts.LineStyle{Type: "dashed"}},
		}),
	)

	labels := make([]string, 0, len(snap.Curve))
	data := make([]opts.LineData, 0, len(snap.Curve))
	for _, p := range snap.Curve {
		labels = append(labels, p.Label)
		data = append(data, opts.LineData{Value: p.Balance})
	}

	line.SetXAxis(labels).AddSeries("Balance", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorBalance}),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "Initial Balance",
			YAxis: snap.InitialBalance,
		}),
	)
	return line
}

// RenderEquityChart writes a self-contained HTML page with the chart.
func RenderEquityChart(w io.Writer, snap stats.Snapshot) error {
	return EquityChart(snap).Render(w)
}

// WriteEquityChart renders the chart page to path.
func WriteEquityChart(path string, snap stats.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderEquityChart(f, snap); err != nil {
		_ = f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}
