// Package sysmon samples host-wide CPU and memory usage so the dashboard
// metrics can show the load the explorer ran under.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is a single snapshot of host resource usage.
type Stats struct {
	CPUPercent   float64 // 0.0 .. 100.0
	MemPercent   float64 // 0.0 .. 100.0
	MemUsedBytes uint64
}

// Sampler returns a host usage snapshot.
type Sampler func() Stats

// Sample collects host CPU and memory usage. CPU usage is the delta since the
// previous call. Fields that cannot be read are left at zero.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = clampPercent(pcts[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = clampPercent(vm.UsedPercent)
		s.MemUsedBytes = vm.Used
	}
	return s
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
