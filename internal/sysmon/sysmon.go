// Package sysmon samples host CPU and memory usage for the dashboard.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one host-wide reading. Percentages are in 0..100.
type Stats struct {
	CPUPercent  float64
	MemPercent  float64
	LogicalCPUs int
}

// Sample reads the host CPU load since the previous call and the current
// memory usage. Fields that cannot be read are left at zero.
func Sample(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = clamp(pcts[0])
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm != nil {
		s.MemPercent = clamp(vm.UsedPercent)
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		s.LogicalCPUs = n
	}
	return s
}

func clamp(p float64) float64 {
	return min(max(p, 0), 100)
}
