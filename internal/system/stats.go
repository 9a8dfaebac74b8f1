package system

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/process"
)

// Snapshot captures process resource usage for the CLI stats output.
type Snapshot struct {
	RSSBytes   uint64
	CPUPercent float64
	Goroutines int
}

// Collect reads the current process's memory and CPU usage.
func Collect() (*Snapshot, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("process handle: %w", err)
	}

	snap := &Snapshot{Goroutines: runtime.NumGoroutine()}

	if mem, err := proc.MemoryInfo(); err == nil {
		snap.RSSBytes = mem.RSS
	}
	if cpu, err := proc.CPUPercent(); err == nil {
		snap.CPUPercent = cpu
	}

	return snap, nil
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("rss=%.1fMB cpu=%.1f%% goroutines=%d",
		float64(s.RSSBytes)/(1024*1024), s.CPUPercent, s.Goroutines)
}
