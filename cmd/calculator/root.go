package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	wasmcalc "github.com/wippyai/wasm-calculator"
	"github.com/wippyai/wasm-calculator/adder"
	"github.com/wippyai/wasm-calculator/calculator"
	"github.com/wippyai/wasm-calculator/engine"
	"github.com/wippyai/wasm-calculator/errors"
	"github.com/wippyai/wasm-calculator/subtractor"
)

// Version is the program version reported by --version.
var Version = "0.1.0"

const (
	backendNative = "native"
	backendWasm   = "wasm"
)

var componentNamespaces = map[string]string{
	"adder":      adder.Namespace,
	"subtractor": subtractor.Namespace,
	"calculator": calculator.Namespace,
}

type options struct {
	backend     string
	host        []string
	verbose     bool
	interactive bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "calculator <x> <y> <op>",
		Short: "Add or subtract two unsigned 32-bit integers",
		Long: `Add or subtract two unsigned 32-bit integers.

x and y are base-10 integers in [0, 4294967295]; op is "add" or "sub".
Arithmetic wraps modulo 2^32, so "3 5 sub" prints 4294967294.

With --backend wasm the calculation runs through the adder, subtractor and
calculator components linked as WebAssembly modules. --host moves any of
them into Go host modules.`,
		Version: Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.interactive {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.backend, "backend", backendNative, "dispatch backend: native or wasm")
	flags.StringSliceVar(&opts.host, "host", nil, "with --backend wasm, components served by Go host modules (adder, subtractor, calculator)")
	flags.BoolVar(&opts.verbose, "verbose", false, "log engine activity to stderr")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "start the interactive calculator")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	ctx := cmd.Context()

	log := newLogger(opts.verbose, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()
	engine.SetLogger(log)

	var (
		op   wasmcalc.Op
		x, y uint32
		err  error
	)
	if !opts.interactive {
		if x, err = parseOperand("x", args[0]); err != nil {
			return err
		}
		if y, err = parseOperand("y", args[1]); err != nil {
			return err
		}
		if op, err = wasmcalc.ParseOp(args[2]); err != nil {
			return err
		}
	} else if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.InvalidInput(errors.PhaseParse, "interactive mode requires a terminal on stdin")
	}

	calc, closeFn, err := newBackend(ctx, opts)
	if err != nil {
		return err
	}
	defer closeFn()

	if opts.interactive {
		return runInteractive(ctx, calc, opts.backend)
	}

	result, err := calc.Calculate(ctx, op, x, y)
	if err != nil {
		return err
	}

	log.Debug("calculated", zap.Stringer("op", op), zap.Uint32("x", x), zap.Uint32("y", y), zap.Uint32("result", result))
	fmt.Fprintln(cmd.OutOrStdout(), wasmcalc.Expression(op, x, y, result))
	return nil
}

// parseOperand accepts a base-10 u32 with an optional leading '+'.
func parseOperand(name, s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Path(name).
			WitType("u32").
			Value(s).
			Cause(err).
			Detail("invalid operand %q", s).
			Build()
	}
	return uint32(v), nil
}

func newBackend(ctx context.Context, opts *options) (wasmcalc.Calculator, func(), error) {
	switch opts.backend {
	case backendNative:
		if len(opts.host) > 0 {
			return nil, nil, errors.InvalidInput(errors.PhaseParse, "--host requires --backend wasm")
		}
		return calculator.Native{}, func() {}, nil

	case backendWasm:
		cfg := &engine.Config{}
		for _, name := range opts.host {
			ns, ok := componentNamespaces[name]
			if !ok {
				return nil, nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
					Path("host").
					Value(name).
					Detail("unknown component %q", name).
					Build()
			}
			cfg.Host = append(cfg.Host, ns)
		}
		eng, err := engine.NewEngineWithConfig(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return eng, func() { _ = eng.Close(ctx) }, nil

	default:
		return nil, nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Path("backend").
			Value(opts.backend).
			Detail("unknown backend %q (want %s or %s)", opts.backend, backendNative, backendWasm).
			Build()
	}
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
