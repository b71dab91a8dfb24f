package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/speedwatch/internal/errors"
	"github.com/agbru/speedwatch/internal/growth"
	"github.com/agbru/speedwatch/internal/routines"
	"github.com/agbru/speedwatch/internal/ui"
	"github.com/agbru/speedwatch/internal/watch"
)

func TestMain(m *testing.M) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	os.Exit(m.Run())
}

// MockSpinner records how the reporter drives it.
type MockSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start()                     { m.started = true }
func (m *MockSpinner) Stop()                      { m.stopped = true }
func (m *MockSpinner) UpdateSuffix(suffix string) { m.suffix = suffix }

func testPlan(t *testing.T) watch.Plan {
	t.Helper()
	models, err := growth.NewRegistry(growth.Float64Limits).Lookup(growth.LinearName, growth.SquareName)
	require.NoError(t, err)
	return watch.Plan{Routine: "sum", Samples: []uint64{10}, Final: 1000, Models: models}
}

func TestTableReporterRows(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTableReporter(&buf)
	plan := testPlan(t)

	rep.Begin(plan)
	rep.Sample(watch.Sample{
		Measurement: watch.Measurement{Size: 10, Elapsed: 10 * time.Millisecond, Result: uint64(20)},
		Estimates: []watch.Estimate{
			{Model: growth.LinearName, Seconds: 1},
			{Model: growth.SquareName, Seconds: 100},
		},
	})
	rep.BeginFinal(plan)
	rep.Final(watch.Measurement{Size: 1000, Elapsed: time.Second, Result: uint64(2000)})

	want := strings.Join([]string{
		"linear square | curr   sum(1000)= ?",
		"    1s     2m |   10ms sum(10)= 20",
		"calculating final answer...",
		"1s     sum(1000)= 2000",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTableReporterInfiniteCells(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTableReporter(&buf)
	rep.Begin(testPlan(t))
	buf.Reset()

	rep.Sample(watch.Sample{
		Measurement: watch.Measurement{Size: 10, Elapsed: 0, Result: "x"},
		Estimates: []watch.Estimate{
			{Model: growth.LinearName, Seconds: math.Inf(1)},
			{Model: growth.SquareName, Seconds: math.NaN()},
		},
	})
	assert.Equal(t, "   inf    inf |     0s sum(10)= x\n", buf.String())
}

func TestTableReporterSpinner(t *testing.T) {
	mock := &MockSpinner{}
	original := newSpinner
	newSpinner = func(io.Writer) Spinner { return mock }
	t.Cleanup(func() { newSpinner = original })

	var buf bytes.Buffer
	rep := NewTableReporter(&buf, WithSpinner(true))
	plan := testPlan(t)
	rep.Begin(plan)
	rep.BeginFinal(plan)

	assert.True(t, mock.started)
	assert.Contains(t, mock.suffix, FinalMessage)
	assert.NotContains(t, buf.String(), FinalMessage)

	rep.Final(watch.Measurement{Size: 1000, Elapsed: 2 * time.Second, Result: 7})
	assert.True(t, mock.stopped)
	assert.True(t, strings.HasSuffix(buf.String(), "2s     sum(1000)= 7\n"))
}

func TestTableReporterStopWithoutSpinner(t *testing.T) {
	rep := NewTableReporter(io.Discard)
	assert.NotPanics(t, rep.Stop)
}

func TestTableReporterDrivenByWatcher(t *testing.T) {
	var buf bytes.Buffer
	routine := watch.Routine{Name: "double", Func: func(_ context.Context, n uint64) (any, error) { return n * 2, nil }}
	_, err := watch.New(watch.WithFinal(100)).Run(context.Background(), routine, []uint64{1, 10}, NewTableReporter(&buf))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasSuffix(lines[0], "| curr   double(100)= ?"))
	assert.True(t, strings.HasSuffix(lines[1], " double(1)= 2"))
	assert.True(t, strings.HasSuffix(lines[2], " double(10)= 20"))
	assert.Equal(t, FinalMessage, lines[3])
	assert.True(t, strings.HasSuffix(lines[4], " double(100)= 200"))
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	code := HandleError(apperrors.RoutineError{Routine: "sum", Size: 5, Cause: errors.New("bad")}, &buf)
	assert.Equal(t, apperrors.ExitErrorRoutine, code)
	assert.Equal(t, "Routine failed: sum(5): bad\n", buf.String())
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	reg := growth.NewRegistry(growth.Float64Limits)
	models, err := reg.Lookup("all")
	require.NoError(t, err)

	PrintCatalog(&buf, routines.NewDefaultRegistry(), models)
	out := buf.String()
	assert.Contains(t, out, "Routines:")
	assert.Contains(t, out, "sum")
	assert.Contains(t, out, "100000,1000000,10000000,100000000")
	assert.Contains(t, out, "fact (log-domain overflow check)")
	assert.Contains(t, out, "  linear\n")
}
