package system

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats is a point-in-time snapshot of the host the build ran on, reported
// after a run when -stats is set.
type Stats struct {
	UsedMemMB  uint64
	TotalMemMB uint64
	CPUPercent float64
	Goroutines int
}

// Snapshot collects host stats. Collection failures leave the affected
// fields zero; a stats readout must never fail a build.
func Snapshot() Stats {
	s := Stats{Goroutines: runtime.NumGoroutine()}

	if vm, err := mem.VirtualMemory(); err == nil {
		s.UsedMemMB = vm.Used / 1024 / 1024
		s.TotalMemMB = vm.Total / 1024 / 1024
	}
	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		s.CPUPercent = pct[0]
	}
	return s
}

// Report prints the snapshot in the CLI's log format.
func Report(s Stats) {
	fmt.Printf("[*] Host stats: mem %d/%d MB, cpu %.1f%%, goroutines %d\n",
		s.UsedMemMB, s.TotalMemMB, s.CPUPercent, s.Goroutines)
}
