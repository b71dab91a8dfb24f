// Package metrics records the progress of a run as Prometheus metrics on a
// private registry and renders them in the text exposition format.
package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/speedwatch/internal/watch"
)

// MetricPrefix prefixes every metric name.
const MetricPrefix = "speedwatch_"

// Recorder is a watch.Reporter that keeps every measurement and estimate of
// a run as gauges.
type Recorder struct {
	registry *prometheus.Registry
	memory   *MemoryCollector
	routine  string
	baseline MemorySnapshot

	sampleSeconds   *prometheus.GaugeVec
	estimateSeconds *prometheus.GaugeVec
	finalSeconds    *prometheus.GaugeVec
	measurements    *prometheus.CounterVec
	heapBytes       *prometheus.GaugeVec
	allocatedBytes  *prometheus.GaugeVec
	gcCycles        *prometheus.GaugeVec
}

// Verify that Recorder implements watch.Reporter.
var _ watch.Reporter = (*Recorder)(nil)

// NewRecorder creates a recorder with its own registry.
func NewRecorder(memory *MemoryCollector) *Recorder {
	if memory == nil {
		memory = NewMemoryCollector()
	}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		memory:   memory,
		sampleSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricPrefix + "sample_seconds",
			Help: "Measured run time of the routine at a sample size",
		}, []string{"routine", "size"}),
		estimateSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricPrefix + "estimate_seconds",
			Help: "Extrapolated run time at the final size, per growth model and sample size",
		}, []string{"routine", "model", "size"}),
		finalSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricPrefix + "final_seconds",
			Help: "Measured run time of the routine at the final size",
		}, []string{"routine", "size"}),
		measurements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricPrefix + "measurements_total",
			Help: "Number of completed calls of the routine",
		}, []string{"routine"}),
		heapBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricPrefix + "heap_bytes",
			Help: "Heap in use after the last call of the routine",
		}, []string{"routine"}),
		allocatedBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricPrefix + "allocated_bytes",
			Help: "Bytes allocated since the run began",
		}, []string{"routine"}),
		gcCycles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricPrefix + "gc_cycles",
			Help: "Garbage collections since the run began",
		}, []string{"routine"}),
	}
	r.registry.MustRegister(
		r.sampleSeconds,
		r.estimateSeconds,
		r.finalSeconds,
		r.measurements,
		r.heapBytes,
		r.allocatedBytes,
		r.gcCycles,
	)
	return r
}

// Registry returns the registry the recorder writes to.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) Begin(plan watch.Plan) {
	r.routine = plan.Routine
	r.baseline = r.memory.Snapshot()
}

func (r *Recorder) Sample(s watch.Sample) {
	size := strconv.FormatUint(s.Size, 10)
	r.sampleSeconds.WithLabelValues(r.routine, size).Set(s.Seconds())
	for _, e := range s.Estimates {
		r.estimateSeconds.WithLabelValues(r.routine, e.Model, size).Set(e.Seconds)
	}
	r.observe()
}

func (r *Recorder) BeginFinal(watch.Plan) {}

func (r *Recorder) Final(m watch.Measurement) {
	r.finalSeconds.WithLabelValues(r.routine, strconv.FormatUint(m.Size, 10)).Set(m.Seconds())
	r.observe()
}

func (r *Recorder) observe() {
	r.measurements.WithLabelValues(r.routine).Inc()
	delta := r.memory.Snapshot().Since(r.baseline)
	r.heapBytes.WithLabelValues(r.routine).Set(float64(delta.HeapAlloc))
	r.allocatedBytes.WithLabelValues(r.routine).Set(float64(delta.TotalAlloc))
	r.gcCycles.WithLabelValues(r.routine).Set(float64(delta.NumGC))
}

// WriteText writes every recorded metric in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
