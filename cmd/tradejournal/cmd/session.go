package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/shell"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive journaling session",
	Long: `Enter trades one at a time and view statistics as you go.

Fill the draft with "set <field> <value>" and record it with "submit", or
record a trade in one line with "add <pair> <long|short> <result> [notes]".
Type "help" for all commands. Trades are discarded when the session ends,
export them first if you want to keep them.

Example:
  tradejournal session --balance 25000`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

var sessionBalance float64

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().Float64VarP(&sessionBalance, "balance", "b", 0, "initial balance (default from config)")
}

// promptReader turns ^C on an empty line into EOF and otherwise
// discards the interrupted line.
type promptReader struct {
	rl *readline.Instance
}

func (p promptReader) Readline() (string, error) {
	for {
		line, err := p.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return "", io.EOF
			}
			continue
		}
		return line, err
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	if cmd.Flags().Changed("balance") {
		if err := sess.SetInitialBalance(sessionBalance); err != nil {
			return err
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "journal> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	out := rl.Stdout()
	fmt.Fprintf(out, "Initial balance %.2f %s. Type help for commands.\n", sess.InitialBalance(), cfg.Account.Currency)
	return shell.New(sess, cfg.Account.Currency, out, shell.WithExports(cfg.Export)).Run(promptReader{rl: rl})
}
