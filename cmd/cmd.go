package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/mgnsk/dllist/internal/console"
	"github.com/mgnsk/dllist/internal/envconfig"
	"github.com/mgnsk/dllist/list"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Traversal titles.
const (
	ForwardTitle  = "Nodes..."
	BackwardTitle = "Now in reverse order..."
)

// maxPrealloc bounds the arena reserved up front; larger lists grow on Append.
const maxPrealloc = 1 << 16

type runOptions struct {
	Count int
	Check bool
}

// NewLogger creates a console logger writing to w.
func NewLogger(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core, zap.AddStacktrace(zapcore.PanicLevel))
}

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dllist [VALUE...]",
		Short: "Build a doubly linked list and print it in both directions",
		Long: `Build a doubly linked list by appending values read from standard input
or given as arguments, then print it front to back and back to front.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE:         runHandler,
	}

	rootCmd.Flags().IntP("count", "n", envconfig.Count(), "Number of values to append")
	rootCmd.Flags().String("format", envconfig.Format(), "Output format (text, table)")
	rootCmd.Flags().Bool("debug", envconfig.Debug(), "Show additional debug information")
	rootCmd.Flags().Bool("check", false, "Validate list links before printing")

	return rootCmd
}

func runHandler(cmd *cobra.Command, args []string) error {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}

	if count < 0 {
		return fmt.Errorf("invalid count %d: must not be negative", count)
	}

	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	format, err := console.ParseFormat(formatName)
	if err != nil {
		return err
	}

	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return err
	}

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}

	logger := NewLogger(cmd.ErrOrStderr(), debug)
	defer logger.Sync() //nolint:errcheck

	logger.Debug("config", zap.Any("env", envconfig.Values()))

	var src console.Source
	if len(args) > 0 {
		if !cmd.Flags().Changed("count") {
			count = len(args)
		}
		src = console.NewValues(args)
	} else {
		in := cmd.InOrStdin()
		var prompt io.Writer
		if console.IsTerminal(in) {
			prompt = cmd.OutOrStdout()
		}
		src = console.NewReader(in, prompt)
	}

	opts := runOptions{
		Count: count,
		Check: check,
	}

	return run(opts, src, console.NewPrinter(cmd.OutOrStdout(), format), logger)
}

func run(opts runOptions, src console.Source, p *console.Printer, logger *zap.Logger) error {
	l := list.New[int](list.WithCapacity(min(opts.Count, maxPrealloc)))

	for i := range opts.Count {
		v, err := src.Next()
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("read %d of %d values: %w", i, opts.Count, err)
			}
			return fmt.Errorf("reading value %d: %w", i+1, err)
		}

		h := l.Append(v)
		logger.Debug("appended value",
			zap.Int("value", v),
			zap.Int("handle", int(h)),
			zap.Int("len", l.Len()),
		)
	}

	if opts.Check {
		if err := l.Validate(); err != nil {
			return err
		}
		logger.Debug("list links valid", zap.Stringer("state", l.State()))
	}

	if err := p.Print(ForwardTitle, l.All()); err != nil {
		return err
	}

	return p.Print(BackwardTitle, l.Backward())
}
