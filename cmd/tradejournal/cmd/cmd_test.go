package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradejournal/stats"
)

// run executes the root command with args. Commands share package-level
// flag state, so tests in this package do not run in parallel.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() {
		cfgFile, logLevel = "", ""
		statsResults, statsBalance, statsFormat, statsChart = nil, 0, "text", ""
		configInitOutput, configValidatePath = "journal.yaml", ""
		for _, c := range rootCmd.Commands() {
			c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		}
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tradejournal version "+version)
}

func TestStatsText(t *testing.T) {
	out, err := run(t, "stats", "-r", "100", "-r", "-50", "-r", "200")
	require.NoError(t, err)

	assert.Contains(t, out, "Initial Balance: 10000.00 USD")
	assert.Contains(t, out, "Current Balance: 10250.00 USD")
	assert.Contains(t, out, "Win Rate:        66.67%")
	assert.Contains(t, out, "Profit Factor:   6.00")
	assert.Contains(t, out, "Trade 2  10050.00")
}

func TestStatsJSON(t *testing.T) {
	out, err := run(t, "stats", "--balance", "1000", "--result", "-10,-20", "--format", "json")
	require.NoError(t, err)

	var snap stats.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, 2, snap.Summary.TotalTrades)
	assert.Equal(t, 0.0, snap.Summary.WinRate)
	assert.Equal(t, 0.0, snap.Summary.ProfitFactor)
	assert.Equal(t, -20.0, snap.Summary.BiggestLoss)
	require.Len(t, snap.Curve, 2)
	assert.Equal(t, 970.0, snap.Curve[1].Balance)
}

func TestStatsEmpty(t *testing.T) {
	out, err := run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Trades:    0")
	assert.Contains(t, out, "no trades")
}

func TestStatsOrgAndChart(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "equity.html")
	out, err := run(t, "stats", "-r", "5,-2", "-F", "org", "--chart", chart)
	require.NoError(t, err)
	assert.Contains(t, out, "* JOURNAL: Trading Journal")
	assert.Contains(t, out, "[[file:"+chart+"]]")

	_, err = os.Stat(chart)
	assert.NoError(t, err)
}

func TestStatsRejectsBadResult(t *testing.T) {
	_, err := run(t, "stats", "-r", "100", "-r", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "result 2")
}

func TestStatsRejectsBadFormat(t *testing.T) {
	_, err := run(t, "stats", "-F", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.yaml")

	out, err := run(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")

	out, err = run(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")
	assert.Contains(t, out, "10000.00 USD")
}

func TestConfigFileSetsBalance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  currency: EUR\n  initial_balance: 500\njournal:\n  type: sqlite\n"), 0644))

	out, err := run(t, "-c", path, "stats", "-r", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "Current Balance: 550.00 EUR")
}

func TestBadConfigFile(t *testing.T) {
	_, err := run(t, "-c", "/nonexistent/journal.yaml", "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
