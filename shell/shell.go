// Package shell drives a session from line-oriented commands. It stands
// in for the entry form: fields are set one at a time and submitted, and
// statistics are printed on demand.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/report"
	"github.com/rustyeddy/tradejournal/session"
)

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// ErrQuit is returned by Exec for quit and exit.
var ErrQuit = errors.New("quit")

type Shell struct {
	sess     *session.Session
	currency string
	out      io.Writer
	exports  config.ExportConfig
}

type Option func(*Shell)

// WithExports sets the paths export uses when none are given.
func WithExports(e config.ExportConfig) Option {
	return func(sh *Shell) {
		sh.exports = e
	}
}

func New(sess *session.Session, currency string, out io.Writer, opts ...Option) *Shell {
	sh := &Shell{sess: sess, currency: currency, out: out}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// Run reads commands until EOF or quit. Command errors are printed and
// the loop continues.
func (sh *Shell) Run(r LineReader) error {
	for {
		line, err := r.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		err = sh.Exec(line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
	}
}

// Exec runs a single command line.
func (sh *Shell) Exec(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "help", "?":
		fmt.Fprint(sh.out, helpText)
		return nil
	case "quit", "exit":
		return ErrQuit
	case "set":
		return sh.set(args)
	case "draft":
		return sh.draft()
	case "reset":
		sh.sess.ResetDraft()
		return sh.draft()
	case "submit":
		rec, err := sh.sess.Submit()
		if err != nil {
			return err
		}
		return sh.recorded(rec)
	case "add":
		return sh.add(args)
	case "balance":
		return sh.balance(args)
	case "trades":
		return sh.trades(args)
	case "show":
		return sh.show(args)
	case "stats":
		snap, err := sh.sess.Snapshot()
		if err != nil {
			return err
		}
		report.PrintSnapshot(sh.out, snap, sh.currency)
		return nil
	case "curve":
		snap, err := sh.sess.Snapshot()
		if err != nil {
			return err
		}
		report.PrintCurve(sh.out, snap.Curve)
		return nil
	case "export":
		return sh.export(args)
	}
	return fmt.Errorf("unknown command %q, try help", cmd)
}

func (sh *Shell) set(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: set <field> <value...>")
	}
	return sh.sess.UpdateDraft(args[0], strings.Join(args[1:], " "))
}

func (sh *Shell) draft() error {
	d := sh.sess.Draft()
	fmt.Fprintf(sh.out, "date:      %s\n", d.Date)
	fmt.Fprintf(sh.out, "pair:      %s\n", d.Pair)
	fmt.Fprintf(sh.out, "direction: %s\n", d.Direction)
	fmt.Fprintf(sh.out, "result:    %s\n", d.Result)
	fmt.Fprintf(sh.out, "notes:     %s\n", d.Notes)
	return nil
}

// add <pair> <long|short> <result> [notes...]
func (sh *Shell) add(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: add <pair> <long|short> <result> [notes...]")
	}
	rec, err := sh.sess.AddTrade(journal.Draft{
		Pair:      args[0],
		Direction: args[1],
		Result:    args[2],
		Notes:     strings.Join(args[3:], " "),
	})
	if err != nil {
		return err
	}
	return sh.recorded(rec)
}

func (sh *Shell) recorded(rec journal.TradeRecord) error {
	snap, err := sh.sess.Snapshot()
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "recorded %s %s %s %.2f, balance %.2f\n",
		rec.ID, rec.Pair, rec.Direction, rec.Result, snap.CurrentBalance)
	return nil
}

func (sh *Shell) balance(args []string) error {
	if len(args) == 0 {
		snap, err := sh.sess.Snapshot()
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "initial %.2f, current %.2f\n", snap.InitialBalance, snap.CurrentBalance)
		return nil
	}

	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	if err := sh.sess.SetInitialBalance(v); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "initial balance %.2f\n", v)
	return nil
}

// trades [YYYY-MM-DD]
func (sh *Shell) trades(args []string) error {
	var (
		recs []journal.TradeRecord
		err  error
	)
	if len(args) > 0 {
		day, perr := time.Parse(journal.DateLayout, args[0])
		if perr != nil {
			return fmt.Errorf("date: %w", perr)
		}
		recs, err = sh.sess.TradesOn(day)
	} else {
		recs, err = sh.sess.Trades()
	}
	if err != nil {
		return err
	}
	report.PrintTrades(sh.out, recs)
	return nil
}

func (sh *Shell) show(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: show <trade-id>")
	}
	rec, err := sh.sess.GetTrade(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(sh.out, report.FormatTradeOrg(rec))
	return nil
}

func (sh *Shell) export(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: export csv|org|chart [path...]")
	}

	format, rest := args[0], args[1:]

	var (
		paths []string
		err   error
	)
	switch format {
	case "csv":
		switch len(rest) {
		case 0:
			paths = []string{sh.exports.TradesFile, sh.exports.EquityFile}
		case 2:
			paths = rest
		default:
			err = fmt.Errorf("usage: export csv [<trades.csv> <equity.csv>]")
		}
	case "org":
		paths, err = exportPath(rest, sh.exports.OrgFile)
	case "chart":
		paths, err = exportPath(rest, sh.exports.ChartFile)
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}
	return sh.writeExport(format, paths)
}

// exportPath picks the single path argument, falling back to def.
func exportPath(args []string, def string) ([]string, error) {
	switch len(args) {
	case 0:
		return []string{def}, nil
	case 1:
		return args, nil
	}
	return nil, fmt.Errorf("usage: export org|chart [<file>]")
}

func (sh *Shell) writeExport(format string, paths []string) error {
	for _, p := range paths {
		if p == "" {
			return fmt.Errorf("export %s: no path given and no default configured", format)
		}
	}

	trades, err := sh.sess.Trades()
	if err != nil {
		return err
	}
	snap, err := sh.sess.Snapshot()
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		err = report.WriteCSV(paths[0], paths[1], trades, snap.Curve)
	case "org":
		err = report.WriteSessionOrg(paths[0], report.SessionReport{
			Currency: sh.currency,
			Created:  time.Now(),
			Snapshot: snap,
			Trades:   trades,
		})
	case "chart":
		err = report.WriteEquityChart(paths[0], snap)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	fmt.Fprintf(sh.out, "wrote %s\n", strings.Join(paths, ", "))
	return nil
}

const helpText = `Commands:
  set <field> <value...>                  set a draft field (date, pair, direction, result, notes)
  draft                                   show the draft
  reset                                   reset the draft to defaults
  submit                                  record the draft and reset it
  add <pair> <long|short> <result> [notes...]
                                          record a trade dated today
  balance [amount]                        show or set the initial balance
  trades [YYYY-MM-DD]                     list trades, optionally for one day
  show <trade-id>                         show one trade as an Org block
  stats                                   print statistics
  curve                                   print the equity curve
  export csv [<trades.csv> <equity.csv>]  export trades and equity curve
  export org [<file>]                     export an Org-mode report
  export chart [<file.html>]              export the equity chart
                                          paths default to the config export section
  quit                                    leave; trades are discarded
`
