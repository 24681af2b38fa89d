package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jcorbin/gosicp/internal/logio"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type cli struct {
	out     io.Writer
	timeout time.Duration
	trace   bool
	logger  *zap.Logger
}

func newRootCommand(out io.Writer) *cobra.Command {
	c := cli{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "gosicp",
		Short: "Numeric processes from SICP chapter 1",
		Long: `gosicp prints the demonstrations of SICP sections 1.1 and 1.2:
square roots and cube roots by Newton's method, factorial as a recursive and
as an iterative process, and Ackermann's function from exercise 1.10.

Run without a subcommand to print every exercise in order.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, r *Runner) error {
				return r.Run(ctx)
			})
		},
	}
	root.SetOut(out)
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "specify a time limit")
	root.PersistentFlags().BoolVar(&c.trace, "trace", false, "enable trace logging")

	for _, ex := range exercises {
		root.AddCommand(c.exerciseCommand(ex))
	}
	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, ex := range exercises {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", ex.name, ex.short); err != nil {
					return err
				}
			}
			return nil
		},
	})
	return root
}

func (c *cli) exerciseCommand(ex exercise) *cobra.Command {
	use := ex.name
	if ex.usage != "" {
		use += " " + ex.usage
	}
	return &cobra.Command{
		Use:   use,
		Short: ex.short,
		Args:  cobra.MaximumNArgs(ex.maxArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, r *Runner) error {
				return r.RunExercise(ctx, ex.name, args...)
			})
		},
	}
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	logger, err := c.loggerConfig().Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	return nil
}

func (c *cli) loggerConfig() zap.Config {
	config := zap.NewProductionConfig()
	if c.trace {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		// every traced line shares one message, which sampling would thin out
		config.Sampling = nil
	}
	return config
}

// run calls f under the --timeout context, syncing the logger afterwards
// whether or not f fails.
func (c *cli) run(cmd *cobra.Command, f func(ctx context.Context, r *Runner) error) error {
	defer func() { _ = c.logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	var cancel context.CancelFunc
	if c.timeout != 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	err := f(ctx, c.runner())
	if err != nil {
		c.logger.Debug("failed", zap.Error(err))
	}
	return err
}

func (c *cli) runner() *Runner {
	opts := []RunnerOption{WithOutput(c.out)}
	if c.trace {
		opts = append(opts,
			WithLogf(c.logger.Sugar().Debugf),
			WithTee(&logio.Writer{Log: c.logger, Key: "stdout"}))
	}
	return New(opts...)
}
