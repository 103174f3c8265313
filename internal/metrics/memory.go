package metrics

import (
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/agbru/fibmod/internal/format"
)

var (
	heapAllocBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fibmod_heap_alloc_bytes",
		Help: "Heap bytes in use at the last memory snapshot",
	})
	gcCycles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fibmod_gc_cycles",
		Help: "Completed GC cycles at the last memory snapshot",
	})
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
}

// MemoryCollector reads runtime memory statistics and publishes the heap
// gauges.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	heapAllocBytes.Set(float64(m.HeapAlloc))
	gcCycles.Set(float64(m.NumGC))
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// MemoryReport is the memory cost of a run, the difference between two
// snapshots.
type MemoryReport struct {
	Allocated uint64
	GCCycles  uint32
	GCPause   time.Duration
	PeakSys   uint64
}

// Since returns the report of the work done between before and s.
func (s MemorySnapshot) Since(before MemorySnapshot) MemoryReport {
	return MemoryReport{
		Allocated: s.TotalAlloc - before.TotalAlloc,
		GCCycles:  s.NumGC - before.NumGC,
		GCPause:   time.Duration(s.PauseTotalNs - before.PauseTotalNs),
		PeakSys:   max(s.Sys, before.Sys),
	}
}

func (r MemoryReport) String() string {
	return fmt.Sprintf("%s allocated, %d GC cycles (%s paused), %s obtained from the OS",
		format.FormatBytes(r.Allocated), r.GCCycles, r.GCPause, format.FormatBytes(r.PeakSys))
}
