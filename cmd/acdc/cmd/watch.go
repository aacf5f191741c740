package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	mdwlog "github.com/msto63/acdc/foundation/core/log"
	"github.com/msto63/acdc/pkg/core/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch <in.ac> [out.dc]",
	Short: "Recompile a program whenever it changes",
	Long: `Compiles the program once and again after every change until
interrupted. When --config names a file, changes to it are picked up
as well.

Example:
  acdc watch prog.ac prog.dc`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	in, out := args[0], ""
	if len(args) == 2 {
		out = args[1]
	}

	eng, err := newEngine(appConfig)
	if err != nil {
		return err
	}
	// mu guards eng and serialises builds
	var mu sync.Mutex
	debounce := appConfig.Watch.Debounce.Duration

	build := func() {
		mu.Lock()
		defer mu.Unlock()

		err := compileFile(ctx, eng, in, out, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "compiled %s\n", in)
			return
		}
		if _, reported := err.(*reportedError); !reported {
			printError(err)
		}
	}
	build()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return config.WatchFile(gctx, in, debounce, build)
	})
	if cfgFile != "" {
		g.Go(func() error {
			return config.Watch(gctx, cfgFile, debounce, func(cfg *config.Config, err error) {
				if err != nil {
					logger.ErrorWithErr("Config reload failed, keeping previous settings", err, mdwlog.Field("path", cfgFile))
					return
				}
				next, err := newEngine(cfg)
				if err != nil {
					logger.ErrorWithErr("Config reload produced an unusable engine", err, mdwlog.Field("path", cfgFile))
					return
				}
				mu.Lock()
				eng = next
				mu.Unlock()
				logger.Info("Config reloaded", mdwlog.Field("path", cfgFile))
				build()
			})
		})
	}

	logger.Info("Watching for changes", mdwlog.Field("input", in))
	return g.Wait()
}
