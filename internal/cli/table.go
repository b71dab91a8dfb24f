package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/agbru/speedwatch/internal/format"
	"github.com/agbru/speedwatch/internal/watch"
	"github.com/agbru/speedwatch/internal/ui"
)

// CellWidth is the width every time cell is padded to.
const CellWidth = 6

// FinalMessage is printed while the final size is being timed.
const FinalMessage = "calculating final answer..."

// TableReporter renders a run as a table: one column of estimates per growth
// model, followed by the measured time and result of each call.
//
//	linear nlog2n square   cube    exp | curr   sum(1000000)= ?
//	  10ms   13ms  100ms     1s   inf |   1ms  sum(100000)= 42
//	...
//	12ms   sum(1000000)= 4242
type TableReporter struct {
	out        io.Writer
	useSpinner bool
	spinner    Spinner
	plan       watch.Plan
}

// Verify that TableReporter implements watch.Reporter.
var _ watch.Reporter = (*TableReporter)(nil)

// TableOption configures a TableReporter.
type TableOption func(*TableReporter)

// WithSpinner animates a spinner during the final call instead of printing a
// static message.
func WithSpinner(enabled bool) TableOption {
	return func(t *TableReporter) { t.useSpinner = enabled }
}

// NewTableReporter creates a reporter writing to out.
func NewTableReporter(out io.Writer, opts ...TableOption) *TableReporter {
	t := &TableReporter{out: out}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Begin prints the header row.
func (t *TableReporter) Begin(plan watch.Plan) {
	t.plan = plan
	var b strings.Builder
	for _, m := range plan.Models {
		b.WriteString(ui.StyleHeader(pad(m.Name)))
		b.WriteByte(' ')
	}
	b.WriteString(ui.StyleDim("|"))
	fmt.Fprintf(&b, " curr   %s(%d)= ?", plan.Routine, plan.Final)
	fmt.Fprintln(t.out, b.String())
}

// Sample prints one row of estimates followed by the measured call.
func (t *TableReporter) Sample(s watch.Sample) {
	var b strings.Builder
	for _, e := range s.Estimates {
		infinite := math.IsInf(e.Seconds, 0) || math.IsNaN(e.Seconds)
		b.WriteString(ui.StyleEstimate(pad(format.FormatWordTime(e.Seconds)), infinite))
		b.WriteByte(' ')
	}
	b.WriteString(ui.StyleDim("|"))
	b.WriteByte(' ')
	b.WriteString(ui.StyleActual(pad(format.FormatWordTime(s.Seconds()))))
	fmt.Fprintf(&b, " %s(%d)= %v", t.plan.Routine, s.Size, s.Result)
	fmt.Fprintln(t.out, b.String())
}

// BeginFinal announces the final call.
func (t *TableReporter) BeginFinal(watch.Plan) {
	if !t.useSpinner {
		fmt.Fprintln(t.out, FinalMessage)
		return
	}
	t.spinner = newSpinner(t.out)
	t.spinner.UpdateSuffix(" " + FinalMessage)
	t.spinner.Start()
}

// Final prints the measured time and result of the final call.
func (t *TableReporter) Final(m watch.Measurement) {
	t.Stop()
	cell := fmt.Sprintf("%-*s", CellWidth, format.FormatWordTime(m.Seconds()))
	fmt.Fprintf(t.out, "%s %s(%d)= %v\n", ui.StyleActual(cell), t.plan.Routine, m.Size, m.Result)
}

// Stop halts the spinner if one is running. The application calls it when a
// run fails during the final call so the error message starts on a clean
// line.
func (t *TableReporter) Stop() {
	if t.spinner != nil {
		t.spinner.Stop()
		t.spinner = nil
	}
}

func pad(s string) string {
	return fmt.Sprintf("%*s", CellWidth, s)
}
