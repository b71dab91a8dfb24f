package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/agbru/speedwatch/internal/cli"
	apperrors "github.com/agbru/speedwatch/internal/errors"
	"github.com/agbru/speedwatch/internal/format"
	"github.com/agbru/speedwatch/internal/growth"
	"github.com/agbru/speedwatch/internal/logging"
	"github.com/agbru/speedwatch/internal/metrics"
	"github.com/agbru/speedwatch/internal/sysmon"
	"github.com/agbru/speedwatch/internal/ui"
	"github.com/agbru/speedwatch/internal/watch"
)

// runWatch times the configured routine and prints the estimate table.
func (a *Application) runWatch(ctx context.Context, out io.Writer) int {
	rt, err := a.Routines.Get(a.Config.Routine)
	if err != nil {
		return cli.HandleError(err, a.ErrWriter)
	}
	models, err := growth.NewRegistry(a.Limits).Lookup(a.Config.Models...)
	if err != nil {
		return cli.HandleError(err, a.ErrWriter)
	}
	sizes := a.Config.Sizes
	if len(sizes) == 0 {
		sizes = rt.DefaultSizes
	}

	a.warnIfBusy()

	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	table := cli.NewTableReporter(out, cli.WithSpinner(a.Config.Spinner && isTerminal(out)))
	reporter := watch.Reporter(table)
	var recorder *metrics.Recorder
	if a.Config.Metrics {
		recorder = metrics.NewRecorder(metrics.NewMemoryCollector())
		reporter = watch.MultiReporter(table, recorder)
	}

	opts := []watch.Option{
		watch.WithModels(models...),
		watch.WithLimits(a.Limits),
		watch.WithLogger(a.logger),
	}
	if a.Config.Final > 0 {
		opts = append(opts, watch.WithFinal(a.Config.Final))
	}

	start := time.Now()
	report, err := watch.New(opts...).Run(ctx, rt.Watch(), sizes, reporter)
	table.Stop()
	if err != nil {
		return cli.HandleError(err, a.ErrWriter)
	}
	a.logger.Info("run complete",
		logging.String("routine", rt.Name),
		logging.Int("samples", len(report.Samples)),
		logging.Uint64("final", report.Plan.Final),
		logging.String("total", format.FormatExecutionDuration(time.Since(start))),
	)

	if recorder != nil {
		fmt.Fprintln(out)
		if err := recorder.WriteText(out); err != nil {
			a.logger.Error("writing metrics failed", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

// warnIfBusy prints a warning when the system load would skew timings.
func (a *Application) warnIfBusy() {
	if a.Sampler == nil {
		return
	}
	stats := a.Sampler.Sample(sysmon.DefaultInterval)
	a.logger.Debug("system load",
		logging.Float64("cpu_percent", stats.CPUPercent),
		logging.Float64("mem_percent", stats.MemPercent),
	)
	if busy, reason := stats.Busy(); busy {
		fmt.Fprintf(a.ErrWriter, "%sWarning: %s; timings may be unreliable%s\n",
			ui.ColorYellow(), reason, ui.ColorReset())
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
