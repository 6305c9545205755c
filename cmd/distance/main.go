// Command distance prints the Euclidean distance between two points using
// the non-negative float type end to end.
//
//	distance                    # the demo points (3, 4) and (5, 12)
//	distance 1,2,3 4,6,3        # any dimension, equal on both sides
//	distance -f f -p 3 0,0 1,1
//	distance -- -3,4 5,12       # "--" before negative coordinates
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/nonneg/euclid"
	"github.com/katalvlaran/nonneg/unsigned"
)

// ErrPointSyntax is returned for a point argument that is not a
// comma-separated list of numbers.
var ErrPointSyntax = errors.New("distance: point must be comma-separated numbers")

// demoFrom and demoTo are used when no points are given.
var (
	demoFrom = []float64{3, 4}
	demoTo   = []float64{5, 12}
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain executes the command and returns the process exit code. Every
// failure, configuration included, is logged once through zap on stderr.
func runMain(args []string, stdout, stderr io.Writer) int {
	cfg, cfgErr := LoadConfig()
	logger := mainLogger(stderr, cfg)
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Error("invalid configuration", zap.Error(cfgErr))
		return 1
	}

	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		logger.Error("distance failed", zap.Strings("args", args), zap.Error(err))
		return 1
	}

	return 0
}

// mainLogger builds the logger used for failures. An unknown level falls back
// to the default one so that the failure it causes is still reported.
func mainLogger(w io.Writer, cfg Config) *zap.Logger {
	logger, err := newLogger(w, cfg.LogLevel, cfg.LogDev)
	if err == nil {
		return logger
	}

	logger, fallbackErr := newLogger(w, DefaultConfig().LogLevel, cfg.LogDev)
	if fallbackErr != nil {
		return zap.NewNop()
	}
	logger.Warn("unknown log level, using default", zap.String("level", cfg.LogLevel), zap.Error(err))

	return logger
}

// newRootCmd builds the command. cfg supplies flag defaults.
func newRootCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance [FROM TO]",
		Short: "print the Euclidean distance between two points",
		Long: "distance computes sqrt(Σ (from[i] - to[i])²) without ever leaving the\n" +
			"non-negative float type. Points are comma-separated coordinates.",
		Args:          cobra.MatchAll(cobra.RangeArgs(0, 2), rejectSingleArg),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}

	cmd.Flags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "number format for the distance: g, f or e")
	cmd.Flags().IntVarP(&cfg.Precision, "precision", "p", cfg.Precision, "digits after the point (-1 for shortest exact form)")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level written to stderr")
	cmd.Flags().BoolVar(&cfg.LogDev, "log-dev", cfg.LogDev, "human-readable log output")

	return cmd
}

// rejectSingleArg requires either no point or both points.
func rejectSingleArg(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("distance: need both FROM and TO, got only %q", args[0])
	}

	return nil
}

func run(cmd *cobra.Command, cfg Config, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return fmt.Errorf("distance: logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	from, to := demoFrom, demoTo
	if len(args) == 2 {
		if from, err = parsePoint(args[0]); err != nil {
			return err
		}
		if to, err = parsePoint(args[1]); err != nil {
			return err
		}
	}
	logger.Debug("points parsed", zap.Float64s("from", from), zap.Float64s("to", to))

	d, err := euclid.Distance(from, to)
	if err != nil {
		logger.Debug("dimensions", zap.Int("from_dim", len(from)), zap.Int("to_dim", len(to)))
		return err
	}
	logger.Debug("distance computed", zap.Stringer("distance", d), zap.Stringer("class", d.Classify()))

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "The distance between %s and %s is %s\n",
		formatPoint(from), formatPoint(to), formatDistance(d, cfg))

	return err
}

// parsePoint reads "x,y,..." into coordinates.
func parsePoint(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrPointSyntax, s)
		}
		out = append(out, x)
	}

	return out, nil
}

// formatPoint renders coordinates as "(x, y, ...)".
func formatPoint(p []float64) string {
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func formatDistance(d unsigned.F64, cfg Config) string {
	return strconv.FormatFloat(d.Float64(), cfg.Format[0], cfg.Precision, 64)
}
