package report

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/stats"
)

var (
	tradesHeader = []string{"trade_id", "date", "pair", "direction", "result", "notes", "created"}
	equityHeader = []string{"trade", "label", "balance"}
)

// CSVExport writes trades and equity points to a pair of CSV files.
type CSVExport struct {
	trades *csv.Writer
	equity *csv.Writer
	tf, ef *os.File
}

func NewCSV(tradesPath, equityPath string) (*CSVExport, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	ef, err := os.Create(equityPath)
	if err != nil {
		_ = tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	ew := csv.NewWriter(ef)

	if err := tw.Write(tradesHeader); err != nil {
		_ = tf.Close()
		_ = ef.Close()
		return nil, err
	}
	if err := ew.Write(equityHeader); err != nil {
		_ = tf.Close()
		_ = ef.Close()
		return nil, err
	}

	return &CSVExport{tw, ew, tf, ef}, nil
}

func (x *CSVExport) WriteTrade(t journal.TradeRecord) error {
	return x.trades.Write([]string{
		t.ID,
		t.Day(),
		t.Pair,
		string(t.Direction),
		f(t.Result),
		t.Notes,
		t.Created.UTC().Format(time.RFC3339),
	})
}

func (x *CSVExport) WriteEquity(p stats.EquityPoint) error {
	return x.equity.Write([]string{
		strconv.Itoa(p.Trade),
		p.Label,
		f(p.Balance),
	})
}

func (x *CSVExport) Close() error {
	x.trades.Flush()
	if err := x.trades.Error(); err != nil {
		return err
	}
	x.equity.Flush()
	if err := x.equity.Error(); err != nil {
		return err
	}

	if err := x.tf.Close(); err != nil {
		return err
	}
	if err := x.ef.Close(); err != nil {
		return err
	}
	return nil
}

// WriteCSV exports a whole session in one call.
func WriteCSV(tradesPath, equityPath string, trades []journal.TradeRecord, curve []stats.EquityPoint) error {
	x, err := NewCSV(tradesPath, equityPath)
	if err != nil {
		return err
	}
	for _, t := range trades {
		if err := x.WriteTrade(t); err != nil {
			_ = x.Close()
			return err
		}
	}
	for _, p := range curve {
		if err := x.WriteEquity(p); err != nil {
			_ = x.Close()
			return err
		}
	}
	return x.Close()
}

// f keeps full precision so an export round-trips the stored value.
func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
