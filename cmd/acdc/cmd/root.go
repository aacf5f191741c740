package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/acdc/foundation/acdc"
	mdwerror "github.com/msto63/acdc/foundation/core/error"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
	"github.com/msto63/acdc/pkg/core/config"
	"github.com/msto63/acdc/pkg/core/logging"
)

var (
	cfgFile  string
	verbose  bool
	revision string

	appConfig *config.Config
	logger    *mdwlog.Logger
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))

var rootCmd = &cobra.Command{
	Use:   "acdc",
	Short: "ACDC to dc compiler",
	Long: `acdc compiles programs in the ACDC teaching language to dc.

An ACDC program has one statement per line:
  ia           declare integer variable a
  a = 3 + 4*2  assign an expression (+ - * / ^, parentheses)
  pa           print a

Letters reserved by the language revision (default: f i l n o p s)
cannot be used as variable names.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints any error not already reported
func Execute() error {
	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $ACDC_CONFIG or ./acdc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&revision, "revision", "", "language revision constraint, e.g. ^1.0 (overrides config)")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	appConfig = cfg

	lc := logging.FromConfig(cfg)
	lc.Verbose = verbose
	logger = logging.NewLogger(lc)
	mdwlog.SetDefault(logger)
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	cfg, err := config.LoadFromEnv()
	if mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

// newEngine builds an engine from the loaded configuration and flags
func newEngine(cfg *config.Config) (*acdc.Engine, error) {
	return newEngineWithLogger(cfg, logger)
}

func newEngineWithLogger(cfg *config.Config, lg *mdwlog.Logger) (*acdc.Engine, error) {
	rev := cfg.Language.Revision
	if revision != "" {
		rev = revision
	}
	return acdc.New(acdc.Options{
		Logger:         lg,
		Revision:       rev,
		Reserved:       cfg.Language.Reserved,
		Workers:        cfg.Compile.Workers,
		KeepBlankLines: !cfg.SkipBlank(),
	})
}

// reportedError marks an error whose message was already shown
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// exitError carries an explicit exit status
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		return code.ExitCode()
	}
	return 1
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
}
