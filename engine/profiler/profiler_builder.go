package profiler

import (
	"log"
	"time"
)

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often the profiler reports.
//
// Parameters:
//   - d: the report interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithGauge adds a named value sampled on each report.
//
// Parameters:
//   - name: label printed in the report
//   - sample: function returning the current value
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithGauge(name string, sample func() int) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.gauges = append(p.gauges, Gauge{Name: name, Sample: sample})
	}
}

// WithLogger redirects report output.
//
// Parameters:
//   - logger: destination logger
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithLogger(logger *log.Logger) ProfilerBuilderOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}
