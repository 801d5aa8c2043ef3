package profiler

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"
)

// Gauge is a named integer sampled each time the profiler reports.
type Gauge struct {
	Name   string
	Sample func() int
}

// Profiler tracks frame rate, memory statistics and caller-supplied gauges.
// Frame instants are injected by the caller so reporting follows the frame clock.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	gauges         []Gauge
	logger         *log.Logger
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	lastReport string
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second and output goes to
// the standard logger.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		logger:         log.Default(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Tick should be called once per frame with the frame instant.
// The first call only starts the measurement window. Once the update interval has elapsed
// a report line with FPS, gauges, heap usage, allocation rate and GC pauses is logged.
//
// Parameters:
//   - now: the frame instant
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(now time.Time) bool {
	if p.lastTime.IsZero() {
		p.lastTime = now
		return false
	}
	p.frameCount++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	startIdx := p.lastGCCount
	if gcCount-startIdx > 256 {
		startIdx = gcCount - 256
	}
	for i := startIdx; i < gcCount; i++ {
		if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxPauseUs {
			maxPauseUs = pause
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.2f", fps)
	for _, g := range p.gauges {
		fmt.Fprintf(&b, " | %s: %d", g.Name, g.Sample())
	}
	fmt.Fprintf(&b, " | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max: %d µs)",
		allocMB, allocRateMB, gcCount, maxPauseUs)
	p.lastReport = b.String()
	p.logger.Printf("[Profiler] %s", p.lastReport)

	p.frameCount = 0
	p.lastTime = now
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// LastReport returns the most recent report line without the log prefix.
//
// Returns:
//   - string: the last report, or "" if none has been produced
func (p *Profiler) LastReport() string {
	return p.lastReport
}
