package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/acdc/internal/harness"
)

var (
	testsDir   string
	outputsDir string
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the golden-file tests",
	Long: `Compiles every program in the tests directory, writes the dc code
next to it and compares it with the file of the same name in the outputs
directory. Programs without an expected file are reported and skipped.
Exits with status 1 when a comparison fails.

Examples:
  acdc test
  acdc test --tests golden/in --outputs golden/want`,
	Args: cobra.NoArgs,
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)

	testCmd.Flags().StringVar(&testsDir, "tests", "", "directory of test programs (default from config: tests)")
	testCmd.Flags().StringVar(&outputsDir, "outputs", "", "directory of expected outputs (default from config: outputs)")
}

func runTest(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(appConfig)
	if err != nil {
		return err
	}

	opts := harness.Options{
		TestsDir:   appConfig.Harness.TestsDir,
		OutputsDir: appConfig.Harness.OutputsDir,
		SourceExt:  appConfig.Harness.SourceExt,
		OutputExt:  appConfig.Harness.OutputExt,
		Workers:    appConfig.Compile.Workers,
		Logger:     logger,
		Compile: func(ctx context.Context, source string) (string, error) {
			res, err := eng.Compile(ctx, source)
			if err != nil {
				return "", err
			}
			return res.Code.String(), nil
		},
	}
	if testsDir != "" {
		opts.TestsDir = testsDir
	}
	if outputsDir != "" {
		opts.OutputsDir = outputsDir
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := harness.Run(ctx, opts)
	if err != nil {
		return err
	}

	report.WriteText(cmd.OutOrStdout())
	if !report.OK() {
		return &reportedError{err: &exitError{code: 1, msg: fmt.Sprintf("%d of %d tests failed", report.Failed, report.Total())}}
	}
	return nil
}
