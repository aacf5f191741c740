package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/acdc/foundation/acdc"
	"github.com/msto63/acdc/foundation/acdc/ast"
)

var parseCmd = &cobra.Command{
	Use:   "parse <line>",
	Short: "Print the syntax tree of one line",
	Long: `Parses one ACDC statement and prints it fully parenthesised,
followed by the tree with node positions.

Example:
  acdc parse "a = 2 ^ 3 ^ 2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(appConfig)
	if err != nil {
		return err
	}

	line := strings.Join(args, " ")
	stmt, err := eng.CompileLine(line, 1)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(acdc.Diagnostic(line, err)))
		return &reportedError{err: err}
	}

	fmt.Fprintln(cmd.OutOrStdout(), stmt.String())
	fmt.Fprint(cmd.OutOrStdout(), ast.Dump(stmt))
	return nil
}
