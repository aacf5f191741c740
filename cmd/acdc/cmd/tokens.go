package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/acdc/foundation/acdc"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <line>",
	Short: "Print the token sequence of one line",
	Long: `Lexes one ACDC statement and prints one token per line with its
line:column position.

Examples:
  acdc tokens "a = 3 + 4*2"
  acdc tokens ia`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(appConfig)
	if err != nil {
		return err
	}

	line := strings.Join(args, " ")
	ts, err := eng.Tokens(line, 1)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(acdc.Diagnostic(line, err)))
		return &reportedError{err: err}
	}
	for _, tok := range ts.Tokens() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", tok.Pos, tok)
	}
	return nil
}
