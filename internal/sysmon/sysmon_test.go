package sysmon

import (
	"strings"
	"testing"
	"time"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample(10 * time.Millisecond)
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestStats_Busy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		stats  Stats
		busy   bool
		reason string
	}{
		{"idle", Stats{CPUPercent: 3, MemPercent: 40}, false, ""},
		{"cpu", Stats{CPUPercent: 75, MemPercent: 40}, true, "CPU is 75% busy"},
		{"memory", Stats{CPUPercent: 5, MemPercent: 95}, true, "memory is 95% used"},
		{"both reports cpu", Stats{CPUPercent: 99, MemPercent: 99}, true, "CPU"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			busy, reason := tt.stats.Busy()
			if busy != tt.busy {
				t.Errorf("Busy() = %v, want %v", busy, tt.busy)
			}
			if !strings.HasPrefix(reason, tt.reason) {
				t.Errorf("reason = %q, want prefix %q", reason, tt.reason)
			}
		})
	}
}

func TestSamplerFunc(t *testing.T) {
	t.Parallel()
	var got time.Duration
	s := SamplerFunc(func(d time.Duration) Stats {
		got = d
		return Stats{CPUPercent: 1}
	})
	if stats := s.Sample(time.Second); stats.CPUPercent != 1 || got != time.Second {
		t.Errorf("SamplerFunc did not forward the call: %+v, %v", stats, got)
	}
}
