package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute statistics for a list of trade results",
	Long: `Compute statistics and the equity curve for results given on the
command line, in order.

Examples:
  tradejournal stats -r 100 -r -50 -r 200
  tradejournal stats --balance 5000 --result 100,-50,200 --format json
  tradejournal stats -r 100,-50 --chart equity.html`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsResults []string
	statsBalance float64
	statsFormat  string
	statsChart   string
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringSliceVarP(&statsResults, "result", "r", nil, "trade result, repeat or comma separate")
	statsCmd.Flags().Float64VarP(&statsBalance, "balance", "b", 0, "initial balance (default from config)")
	statsCmd.Flags().StringVarP(&statsFormat, "format", "F", "text", "output format: text|json|org")
	statsCmd.Flags().StringVar(&statsChart, "chart", "", "also write the equity chart to this HTML file")
}

func runStats(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	if cmd.Flags().Changed("balance") {
		if err := sess.SetInitialBalance(statsBalance); err != nil {
			return err
		}
	}

	for i, r := range statsResults {
		if _, err := sess.AddTrade(journal.Draft{Result: r}); err != nil {
			return fmt.Errorf("result %d: %w", i+1, err)
		}
	}

	snap, err := sess.Snapshot()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch statsFormat {
	case "text":
		report.PrintSnapshot(out, snap, cfg.Account.Currency)
		fmt.Fprintln(out)
		report.PrintCurve(out, snap.Curve)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return err
		}
	case "org":
		trades, err := sess.Trades()
		if err != nil {
			return err
		}
		if err := report.RenderSessionOrg(out, report.SessionReport{
			Currency:  cfg.Account.Currency,
			Created:   time.Now(),
			Snapshot:  snap,
			Trades:    trades,
			ChartPath: statsChart,
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", statsFormat)
	}

	if statsChart != "" {
		if err := report.WriteEquityChart(statsChart, snap); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
	}
	return nil
}
