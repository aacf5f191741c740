package cmd

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/acdc/internal/tui/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	Long: `Starts an interactive session that compiles one statement per line.

Declarations persist between lines, so "ia" followed by "a = 1" works.
Each accepted line shows its syntax tree, its dc code and, for prints,
the printed value. Rejected lines show the error under the offending
column.

Navigation:
  Enter      - compile the line
  Up/Down    - walk the input history
  Esc/Ctrl+C - quit`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	// the terminal belongs to the REPL while it runs
	quiet := logger.WithOutput(io.Discard)
	eng, err := newEngineWithLogger(appConfig, quiet)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := repl.Run(ctx, eng, quiet); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
