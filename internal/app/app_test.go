package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/speedwatch/internal/errors"
	"github.com/agbru/speedwatch/internal/growth"
	"github.com/agbru/speedwatch/internal/routines"
	"github.com/agbru/speedwatch/internal/sysmon"
)

func testRegistry() *routines.Registry {
	reg := routines.NewRegistry()
	reg.Register(routines.Routine{
		Name:         "echo",
		Description:  "returns its input",
		Growth:       growth.LinearName,
		DefaultSizes: []uint64{1, 2, 3},
		Func:         func(_ context.Context, n uint64) (any, error) { return n, nil },
	})
	reg.Register(routines.Routine{
		Name:         "broken",
		Growth:       growth.LinearName,
		DefaultSizes: []uint64{1, 2},
		Func:         func(context.Context, uint64) (any, error) { return nil, errors.New("kaput") },
	})
	reg.Register(routines.Routine{
		Name:         "stuck",
		Growth:       growth.LinearName,
		DefaultSizes: []uint64{1, 2},
		Func: func(ctx context.Context, _ uint64) (any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	})
	return reg
}

func idle(time.Duration) sysmon.Stats { return sysmon.Stats{CPUPercent: 1, MemPercent: 10} }

func run(t *testing.T, sampler sysmon.Sampler, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	application, err := New(append([]string{"speedwatch", "--no-color"}, args...), &errOut,
		WithRegistry(testRegistry()), WithSampler(sampler))
	if err != nil {
		t.Fatalf("New(%v) failed: %v\n%s", args, err, errOut.String())
	}
	code = application.Run(context.Background(), &out)
	return code, out.String(), errOut.String()
}

func TestRunPrintsTable(t *testing.T) {
	code, out, _ := run(t, sysmon.SamplerFunc(idle), "--models", "linear,square", "echo", "1", "2", "4")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if lines[0] != "linear square | curr   echo(4)= ?" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " echo(1)= 1") || !strings.HasSuffix(lines[2], " echo(2)= 2") {
		t.Errorf("unexpected sample rows:\n%s\n%s", lines[1], lines[2])
	}
	if lines[3] != "calculating final answer..." {
		t.Errorf("final message = %q", lines[3])
	}
	if !strings.HasSuffix(lines[4], " echo(4)= 4") {
		t.Errorf("final line = %q", lines[4])
	}
}

func TestRunUsesRoutineDefaults(t *testing.T) {
	code, out, _ := run(t, nil, "echo")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "echo(3)= 3") {
		t.Errorf("expected the last default size as final:\n%s", out)
	}
	if !strings.HasPrefix(out, "linear nlog2n square   cube    exp |") {
		t.Errorf("expected the default models in the header:\n%s", out)
	}
}

func TestRunWithMetrics(t *testing.T) {
	code, out, _ := run(t, nil, "--metrics", "--final", "10", "echo", "2", "5")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{
		`speedwatch_final_seconds{routine="echo",size="10"}`,
		`speedwatch_sample_seconds{routine="echo",size="5"}`,
		`speedwatch_measurements_total{routine="echo"} 3`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q:\n%s", want, out)
		}
	}
}

func TestRunList(t *testing.T) {
	code, out, _ := run(t, nil, "--list")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"Routines:", "echo", "Models:", "fact"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"routine failure", []string{"broken"}, apperrors.ExitErrorRoutine, "Routine failed: broken(1): kaput"},
		{"unknown model", []string{"--models", "quartic", "echo"}, apperrors.ExitErrorConfig, "quartic"},
		{"timeout", []string{"--timeout", "20ms", "stuck"}, apperrors.ExitErrorTimeout, "Timed out"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := run(t, nil, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantErr, stderr)
			}
		})
	}
}

func TestRunWarnsWhenBusy(t *testing.T) {
	busy := sysmon.SamplerFunc(func(time.Duration) sysmon.Stats { return sysmon.Stats{CPUPercent: 97} })
	code, _, stderr := run(t, busy, "echo")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr, "Warning: CPU is 97% busy") {
		t.Errorf("expected a load warning, got:\n%s", stderr)
	}
}

func TestNewRejectsUnknownRoutine(t *testing.T) {
	var errOut bytes.Buffer
	_, err := New([]string{"speedwatch", "nope"}, &errOut, WithRegistry(testRegistry()))
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Errorf("got %v, want a config error", err)
	}
	if IsHelpError(err) {
		t.Error("unknown routine is not a help request")
	}
}

func TestNewHelp(t *testing.T) {
	var errOut bytes.Buffer
	_, err := New([]string{"speedwatch", "--help"}, &errOut, WithRegistry(testRegistry()))
	if !IsHelpError(err) {
		t.Fatalf("got %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(errOut.String(), "Usage: speedwatch") {
		t.Errorf("usage not printed:\n%s", errOut.String())
	}
}

func TestVersion(t *testing.T) {
	if !HasVersionFlag([]string{"sum", "--version"}) || !HasVersionFlag([]string{"-V"}) {
		t.Error("version flag not detected")
	}
	if HasVersionFlag([]string{"sum", "10"}) {
		t.Error("version flag detected without one")
	}

	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.HasPrefix(buf.String(), "speedwatch "+Version) {
		t.Errorf("unexpected version output: %s", buf.String())
	}
}
