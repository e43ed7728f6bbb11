package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a journaling session over HTTP",
	Long: `Start an HTTP server holding a single journaling session.

Endpoints:
  GET  /health        service status
  GET  /trades        all trades in entry order
  POST /trades        record a trade {date, pair, direction, result, notes}
  GET  /trades/:id    one trade
  GET  /stats         statistics summary
  GET  /equity        equity curve
  GET  /snapshot      balances, statistics and curve
  PUT  /balance       set the initial balance {initialBalance}
  GET  /chart         equity chart as HTML

Example:
  tradejournal serve --addr :9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := api.NewHandler(sess, cfg.Account.Currency, log).NewServer(addr)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
