package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Stats is one profiler report.
type Stats struct {
	TicksPerSecond float64
	Elapsed        float64 // animation clock at report time, seconds
	HeapMB         float64
	AllocRateMB    float64 // MB/s since the previous report
	GCCount        uint32
	SysMB          float64
}

// Profiler tracks tick rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	mu *sync.Mutex

	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats

	now func() time.Time
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often the profiler reports.
//
// Parameters:
//   - d: the report interval, ignored if not positive
//
// Returns:
//   - ProfilerOption: functional option to set the interval
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: variadic list of ProfilerOption functions
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per engine tick.
// Logs tick rate, the animation clock, heap usage, allocation rate and GC
// count when the update interval has elapsed.
//
// Parameters:
//   - elapsed: the animation clock in seconds
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(elapsed float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tickCount++
	currentTime := p.now()
	window := currentTime.Sub(p.lastTime)
	if window < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	p.last = Stats{
		TicksPerSecond: float64(p.tickCount) / window.Seconds(),
		Elapsed:        elapsed,
		HeapMB:         float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:    float64(allocDelta) / 1024 / 1024 / window.Seconds(),
		GCCount:        p.memStats.NumGC,
		SysMB:          float64(p.memStats.Sys) / 1024 / 1024,
	}

	log.Printf("[Profiler] TPS: %.2f | Elapsed: %.2fs | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d | Sys: %.2f MB",
		p.last.TicksPerSecond, p.last.Elapsed, p.last.HeapMB, p.last.AllocRateMB, p.last.GCCount, p.last.SysMB)

	p.tickCount = 0
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recent report, zero before the first one.
func (p *Profiler) Last() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
