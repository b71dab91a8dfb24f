//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks

package watch

import (
	"time"

	"github.com/agbru/speedwatch/internal/growth"
)

// Plan describes a run once its final size has been settled.
type Plan struct {
	// Routine is the display name of the routine under test.
	Routine string
	// Samples are the sizes timed before the final call, in order.
	Samples []uint64
	// Final is the size every estimate extrapolates to.
	Final uint64
	// Models are the growth models estimates are computed under.
	Models []growth.Model
}

// Measurement is one timed call of the routine.
type Measurement struct {
	Size    uint64
	Elapsed time.Duration
	Result  any
}

// Seconds returns the elapsed time in seconds.
func (m Measurement) Seconds() float64 { return m.Elapsed.Seconds() }

// Estimate is the extrapolated time of the final call under one model.
type Estimate struct {
	Model   string
	Seconds float64
}

// Sample is a measurement at a sample size with one estimate per model, in
// the order of Plan.Models.
type Sample struct {
	Measurement
	Estimates []Estimate
}

// Reporter receives the progress of a run as it happens. Calls arrive in
// order: Begin, Sample once per sample size, BeginFinal, Final. A run that
// fails stops calling the reporter at the failing step.
type Reporter interface {
	// Begin is called once before the first call of the routine.
	Begin(plan Plan)
	// Sample is called after each sample size has been timed.
	Sample(sample Sample)
	// BeginFinal is called right before the final size is timed.
	BeginFinal(plan Plan)
	// Final is called after the final size has been timed.
	Final(m Measurement)
}

// NullReporter is a no-op implementation of Reporter.
type NullReporter struct{}

func (NullReporter) Begin(Plan)        {}
func (NullReporter) Sample(Sample)     {}
func (NullReporter) BeginFinal(Plan)   {}
func (NullReporter) Final(Measurement) {}

type multiReporter []Reporter

// MultiReporter returns a Reporter that forwards every call to each of
// reporters in turn.
func MultiReporter(reporters ...Reporter) Reporter {
	return multiReporter(reporters)
}

func (m multiReporter) Begin(plan Plan) {
	for _, r := range m {
		r.Begin(plan)
	}
}

func (m multiReporter) Sample(sample Sample) {
	for _, r := range m {
		r.Sample(sample)
	}
}

func (m multiReporter) BeginFinal(plan Plan) {
	for _, r := range m {
		r.BeginFinal(plan)
	}
}

func (m multiReporter) Final(measurement Measurement) {
	for _, r := range m {
		r.Final(measurement)
	}
}
