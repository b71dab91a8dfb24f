// Package speedwatch estimates how long a routine will take on a large input
// by timing it on smaller ones.
//
// WatchTime calls the routine once per sample size and, after each call,
// prints how long the final size would take if the routine grew linearly,
// as n·log₂n, quadratically, cubically or exponentially. The column whose
// estimates stay steady is the routine's growth rate, and its last value
// predicts the final call, which runs last:
//
//	linear nlog2n square   cube    exp | curr   sort(10000000)= ?
//	    2s     4s    33m     1M    inf |    2ms sort(10000)= 2146917379
//	    2s     3s     3m     6h    inf |   20ms sort(100000)= 2147302611
//	calculating final answer...
//	2s     sort(10000000)= 2147477834
package speedwatch

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/agbru/speedwatch/internal/cli"
	"github.com/agbru/speedwatch/internal/growth"
	"github.com/agbru/speedwatch/internal/ui"
	"github.com/agbru/speedwatch/internal/watch"
)

type (
	// RoutineFunc is the code being timed; n is the input size.
	RoutineFunc = watch.RoutineFunc
	// Report holds every sample and the final measurement of a run.
	Report = watch.Report
	// Sample is a measurement at a sample size with its estimates.
	Sample = watch.Sample
	// Measurement is one timed call.
	Measurement = watch.Measurement
	// Estimate is the extrapolated final time under one model.
	Estimate = watch.Estimate
	// Limits bounds the values estimates may reach before saturating to +Inf.
	Limits = growth.Limits
)

// Growth model names accepted by WithModels.
const (
	Linear    = growth.LinearName
	NLog2N    = growth.NLog2NName
	Square    = growth.SquareName
	Cube      = growth.CubeName
	Exp       = growth.ExpName
	Factorial = growth.FactorialName
	// All selects every model.
	All = "all"
)

// Limits of the float64 and float32 ranges.
var (
	Float64Limits = growth.Float64Limits
	Float32Limits = growth.Float32Limits
)

type settings struct {
	out     io.Writer
	models  []string
	final   uint64
	limits  growth.Limits
	noColor bool
	spinner bool
}

// Option configures WatchTime.
type Option func(*settings)

// WithOutput sends the table to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithModels selects the growth models by name. The default is linear,
// nlog2n, square, cube and exp.
func WithModels(names ...string) Option {
	return func(s *settings) { s.models = names }
}

// WithFinal sets the size to extrapolate to; every given size is then a
// sample. By default the last size is the final one.
func WithFinal(n uint64) Option {
	return func(s *settings) { s.final = n }
}

// WithLimits sets the range estimates saturate at.
func WithLimits(l Limits) Option {
	return func(s *settings) { s.limits = l }
}

// WithoutColor disables colored output even on a terminal.
func WithoutColor() Option {
	return func(s *settings) { s.noColor = true }
}

// WithSpinner animates a spinner on terminals while the final size runs.
func WithSpinner() Option {
	return func(s *settings) { s.spinner = true }
}

// WatchTime times fn at each size and prints the estimate table. It returns
// what was measured up to the first error. Errors returned by fn stop the run
// and come back wrapped with the routine name and size.
func WatchTime(ctx context.Context, name string, fn RoutineFunc, sizes []uint64, opts ...Option) (Report, error) {
	s := settings{out: os.Stdout, limits: growth.Float64Limits}
	for _, opt := range opts {
		opt(&s)
	}

	models, err := growth.NewRegistry(s.limits).Lookup(s.models...)
	if err != nil {
		return Report{}, err
	}

	terminal := isTerminal(s.out)
	ui.InitTheme(s.noColor || !terminal)
	table := cli.NewTableReporter(s.out, cli.WithSpinner(s.spinner && terminal))

	watchOpts := []watch.Option{watch.WithModels(models...), watch.WithLimits(s.limits)}
	if s.final > 0 {
		watchOpts = append(watchOpts, watch.WithFinal(s.final))
	}
	report, err := watch.New(watchOpts...).Run(ctx, watch.Routine{Name: name, Func: fn}, sizes, table)
	table.Stop()
	return report, err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
