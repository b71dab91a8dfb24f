package watch

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/agbru/speedwatch/internal/errors"
	"github.com/agbru/speedwatch/internal/format"
	"github.com/agbru/speedwatch/internal/growth"
	"github.com/agbru/speedwatch/internal/logging"
)

// RoutineFunc is the code under test. It receives an input size that should
// be proportional to the true difficulty of the problem, and returns a
// displayable result.
type RoutineFunc func(ctx context.Context, n uint64) (any, error)

// Routine pairs a RoutineFunc with the name shown in reports.
type Routine struct {
	Name string
	Func RoutineFunc
}

// Report collects everything measured during a run.
type Report struct {
	Plan    Plan
	Samples []Sample
	Final   Measurement
}

// Watcher times a routine at increasing sizes and extrapolates the time of
// a final, larger size. A Watcher is not safe for concurrent runs: timings
// taken in parallel would skew each other.
type Watcher struct {
	limits   growth.Limits
	models   []growth.Model
	final    uint64
	hasFinal bool
	now      func() time.Time
	logger   logging.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithModels sets the growth models estimates are computed under.
func WithModels(models ...growth.Model) Option {
	return func(w *Watcher) { w.models = models }
}

// WithFinal sets the final size explicitly. Without it the last size passed
// to Run is the final size and is not sampled.
func WithFinal(n uint64) Option {
	return func(w *Watcher) {
		w.final = n
		w.hasFinal = true
	}
}

// WithLimits sets the floating-point range used to detect overflow.
func WithLimits(l growth.Limits) Option {
	return func(w *Watcher) { w.limits = l }
}

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Watcher) { w.now = now }
}

// WithLogger sets the logger used for per-measurement debug entries.
func WithLogger(l logging.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New creates a Watcher. Unless WithModels is given, the default models of
// a registry bound to the configured limits are used.
func New(opts ...Option) *Watcher {
	w := &Watcher{
		limits: growth.Float64Limits,
		now:    time.Now,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.models == nil {
		// The default names are always registered.
		w.models, _ = growth.NewRegistry(w.limits).Lookup()
	}
	return w
}

// Run executes the three phases of a watch: settle the plan, time and
// extrapolate every sample size, then time the final size. Any error from
// the routine is returned at once as an apperrors.RoutineError and the
// remaining calls are skipped.
func (w *Watcher) Run(ctx context.Context, r Routine, sizes []uint64, rep Reporter) (Report, error) {
	plan, err := w.Plan(r, sizes)
	if err != nil {
		return Report{}, err
	}
	if rep == nil {
		rep = NullReporter{}
	}

	report := Report{Plan: plan, Samples: make([]Sample, 0, len(plan.Samples))}
	rep.Begin(plan)

	for _, size := range plan.Samples {
		m, err := w.measure(ctx, r, size)
		if err != nil {
			return report, err
		}
		sample := Sample{Measurement: m, Estimates: w.Estimates(plan.Final, m)}
		report.Samples = append(report.Samples, sample)
		rep.Sample(sample)
	}

	rep.BeginFinal(plan)
	final, err := w.measure(ctx, r, plan.Final)
	if err != nil {
		return report, err
	}
	report.Final = final
	rep.Final(final)
	return report, nil
}

// Plan settles the sample and final sizes for sizes without running anything.
func (w *Watcher) Plan(r Routine, sizes []uint64) (Plan, error) {
	if r.Func == nil {
		return Plan{}, apperrors.ValidationError{Field: "routine", Message: "no function to time"}
	}
	samples := sizes
	final := w.final
	if !w.hasFinal {
		if len(sizes) == 0 {
			return Plan{}, apperrors.ValidationError{Field: "sizes", Message: "at least one size is required"}
		}
		final = sizes[len(sizes)-1]
		samples = sizes[:len(sizes)-1]
	}
	if final == 0 {
		return Plan{}, apperrors.ValidationError{Field: "final", Message: "must be positive"}
	}
	for _, s := range samples {
		if s == 0 {
			return Plan{}, apperrors.ValidationError{Field: "sizes", Message: "sizes must be positive"}
		}
	}
	return Plan{
		Routine: r.Name,
		Samples: append([]uint64(nil), samples...),
		Final:   final,
		Models:  w.models,
	}, nil
}

// Estimates extrapolates a measurement to the final size under every model.
func (w *Watcher) Estimates(final uint64, m Measurement) []Estimate {
	seconds := m.Seconds()
	estimates := make([]Estimate, len(w.models))
	for i, model := range w.models {
		estimates[i] = Estimate{
			Model:   model.Name,
			Seconds: w.limits.Extrapolate(model, float64(final), float64(m.Size), seconds),
		}
	}
	return estimates
}

func (w *Watcher) measure(ctx context.Context, r Routine, size uint64) (Measurement, error) {
	if err := ctx.Err(); err != nil {
		return Measurement{}, apperrors.WrapError(err, "before %s(%d)", r.Name, size)
	}

	start := w.now()
	result, err := r.Func(ctx, size)
	elapsed := w.now().Sub(start)

	if err != nil {
		w.logger.Error("routine failed", err,
			logging.String("routine", r.Name), logging.Uint64("size", size))
		return Measurement{}, apperrors.RoutineError{Routine: r.Name, Size: size, Cause: err}
	}
	w.logger.Debug("measured",
		logging.String("routine", r.Name),
		logging.Uint64("size", size),
		logging.String("elapsed", format.FormatExecutionDuration(elapsed)),
		logging.String("result", fmt.Sprint(result)))
	return Measurement{Size: size, Elapsed: elapsed, Result: result}, nil
}
