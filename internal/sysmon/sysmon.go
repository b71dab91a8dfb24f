// Package sysmon samples system-wide load so a run can warn when timings are
// likely to be skewed by other processes.
package sysmon

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Busy thresholds above which timings are reported as unreliable.
const (
	BusyCPUPercent = 50.0
	BusyMemPercent = 90.0
)

// DefaultInterval is how long CPU usage is measured for.
const DefaultInterval = 200 * time.Millisecond

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Busy reports whether the system is loaded enough to disturb measurements,
// with a short reason when it is.
func (s Stats) Busy() (bool, string) {
	switch {
	case s.CPUPercent >= BusyCPUPercent:
		return true, fmt.Sprintf("CPU is %.0f%% busy", s.CPUPercent)
	case s.MemPercent >= BusyMemPercent:
		return true, fmt.Sprintf("memory is %.0f%% used", s.MemPercent)
	}
	return false, ""
}

// Sampler reads system statistics.
type Sampler interface {
	Sample(interval time.Duration) Stats
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func(interval time.Duration) Stats

func (f SamplerFunc) Sample(interval time.Duration) Stats { return f(interval) }

// System is the Sampler backed by gopsutil.
var System Sampler = SamplerFunc(Sample)

// Sample collects a system-wide CPU and memory snapshot, measuring CPU over
// interval. An interval of zero reports the delta since the previous call.
// Fields that cannot be read are left at zero.
func Sample(interval time.Duration) Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(interval, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}
