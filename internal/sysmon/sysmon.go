// Package sysmon samples host-wide CPU and memory usage for the dashboard,
// next to the process heap figures of the metrics package.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one host usage sample, in percent.
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// Available reports whether the sample holds any value.
func (s Stats) Available() bool {
	return s.CPUPercent > 0 || s.MemPercent > 0
}

// Sample returns the current host usage. CPU usage is measured since the
// previous call, so the first sample of a process reads 0. Values that the
// platform cannot provide are left at 0.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
	}
	return s
}
