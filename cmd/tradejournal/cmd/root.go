package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/logger"
	"github.com/rustyeddy/tradejournal/session"
)

var rootCmd = &cobra.Command{
	Use:   "tradejournal",
	Short: "Log trade outcomes and track performance",
	Long: `tradejournal records discrete trade results for one session and derives
performance statistics and an equity curve from them.

It provides:
  - An interactive session for entering trades
  - Win rate, average win/loss, biggest win/loss and profit factor
  - A running balance (equity curve) from an initial balance
  - CSV, Org-mode and HTML chart exports
  - An HTTP API serving a single session

Trades live only as long as the process.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	cfgFile  string
	logLevel string

	cfg *config.Config
	log *zap.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer func() {
		if log != nil {
			_ = log.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level: debug|info|warn|error")
}

func setup(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	l, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	log = l
	return nil
}

func newSession() (*session.Session, error) {
	j, err := journal.Open(cfg.Journal.Type, cfg.Journal.DSN)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	log.Debug("journal opened", zap.String("type", cfg.Journal.Type))
	return session.New(j, cfg.Account.InitialBalance, session.WithLogger(log)), nil
}
