package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/acdc/foundation/acdc"
	mdwerror "github.com/msto63/acdc/foundation/core/error"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

var compileCmd = &cobra.Command{
	Use:   "compile <in.ac> [out.dc]",
	Short: "Compile an ACDC program to dc",
	Long: `Compiles an ACDC program to dc instructions, one per line.

Without an output file the code is written to stdout. When the program
does not compile, the output receives the error message, the offending
line is shown on stderr and the exit status is 1.

Examples:
  acdc compile prog.ac
  acdc compile prog.ac prog.dc
  acdc compile --revision ^1.0 legacy.ac`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(appConfig)
	if err != nil {
		return err
	}

	out := ""
	if len(args) == 2 {
		out = args[1]
	}
	return compileFile(cmd.Context(), eng, args[0], out, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// compileFile compiles in and writes the code, or the error message, to
// out or to stdout when out is empty
func compileFile(ctx context.Context, eng *acdc.Engine, in, out string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	source, err := os.ReadFile(in)
	if err != nil {
		code := mdwerror.CodeIO
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, "failed to read program").
			WithCode(code).
			WithOperation("acdc.compile").
			WithDetail("path", in)
	}

	var text string
	res, compileErr := eng.Compile(ctx, string(source))
	if compileErr != nil {
		text = compileErr.Error() + "\n"
	} else {
		text = res.Code.String()
	}

	if out == "" {
		if compileErr == nil {
			fmt.Fprint(stdout, text)
		}
	} else if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return mdwerror.Wrap(err, "failed to write output").
			WithCode(mdwerror.CodeIO).
			WithOperation("acdc.compile").
			WithDetail("path", out)
	}

	if compileErr != nil {
		fmt.Fprintln(stderr, errorStyle.Render(in+": "+acdc.Diagnostic(string(source), compileErr)))
		return &reportedError{err: compileErr}
	}

	logger.Debug("Program compiled", mdwlog.Fields{
		"input":        in,
		"output":       out,
		"instructions": res.Code.Len(),
		"request_id":   res.RequestID,
	})
	return nil
}
