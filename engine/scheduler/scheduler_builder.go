package scheduler

import "time"

// SchedulerBuilderOption is a functional option for configuring a Scheduler.
type SchedulerBuilderOption func(*schedulerImpl)

// WithStartTime sets the scheduler's initial clock value.
//
// Parameters:
//   - start: the instant Now returns before the first Advance
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithStartTime(start time.Time) SchedulerBuilderOption {
	return func(s *schedulerImpl) {
		s.now = start
	}
}
