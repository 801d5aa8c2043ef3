package scheduler

import (
	"container/heap"
	"sync"
	"time"
)

// TimerFunc is invoked on the frame thread when a timer comes due.
// now is the instant passed to the Advance call that fired it.
type TimerFunc func(now time.Time)

// Handle refers to a scheduled timer.
type Handle interface {
	// Cancel stops the timer. A cancelled timer never fires again, even if it is already
	// due within the Advance call currently running. Safe to call more than once.
	Cancel()

	// Active reports whether the timer can still fire.
	// One-shot timers become inactive once they have fired.
	//
	// Returns:
	//   - bool: true if the timer is pending
	Active() bool
}

// Scheduler is a virtual-time timer facility driven by the frame loop.
// Time only moves when Advance is called, so callers observe timers firing on the same thread
// that runs frame callbacks, and tests can drive time deterministically.
type Scheduler interface {
	// Now returns the scheduler's current instant (the last value given to Advance,
	// or the start time).
	//
	// Returns:
	//   - time.Time: the current instant
	Now() time.Time

	// After schedules fn to run once, d after Now.
	// Timers created while Advance is running are first eligible on the next Advance.
	//
	// Parameters:
	//   - d: delay from Now; negative values are treated as zero
	//   - fn: the callback
	//
	// Returns:
	//   - Handle: handle for cancelling the timer
	After(d time.Duration, fn TimerFunc) Handle

	// Every schedules fn to run every d, starting d after Now.
	// If several periods elapse within one Advance the callback runs once and missed periods
	// are skipped.
	//
	// Parameters:
	//   - d: the period; must be positive
	//   - fn: the callback
	//
	// Returns:
	//   - Handle: handle for cancelling the timer
	Every(d time.Duration, fn TimerFunc) Handle

	// Advance moves the clock to now and fires every due timer in deadline order
	// (ties in scheduling order). A now earlier than Now does not move the clock back.
	//
	// Parameters:
	//   - now: the new current instant
	//
	// Returns:
	//   - int: the number of callbacks run
	Advance(now time.Time) int

	// Pending returns the number of active timers.
	//
	// Returns:
	//   - int: count of timers that can still fire
	Pending() int
}

type timer struct {
	deadline time.Time
	period   time.Duration
	seq      uint64
	fn       TimerFunc

	owner  *schedulerImpl
	active bool
	index  int
}

func (t *timer) Cancel() {
	s := t.owner
	s.mu.Lock()
	defer s.mu.Unlock()
	if !t.active {
		return
	}
	t.active = false
	s.pending--
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
}

func (t *timer) Active() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	return t.active
}

// timerQueue is a min-heap of timers ordered by deadline, then sequence.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

type schedulerImpl struct {
	mu *sync.Mutex

	now     time.Time
	seq     uint64
	queue   timerQueue
	pending int

	advancing bool
	deferred  []*timer
}

var _ Scheduler = &schedulerImpl{}

// NewScheduler creates a Scheduler whose clock starts at time.Now() unless WithStartTime is given.
//
// Parameters:
//   - options: functional options to configure the scheduler
//
// Returns:
//   - Scheduler: the newly created scheduler
func NewScheduler(options ...SchedulerBuilderOption) Scheduler {
	s := &schedulerImpl{
		mu:  &sync.Mutex{},
		now: time.Now(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *schedulerImpl) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *schedulerImpl) After(d time.Duration, fn TimerFunc) Handle {
	if d < 0 {
		d = 0
	}
	return s.schedule(d, 0, fn)
}

func (s *schedulerImpl) Every(d time.Duration, fn TimerFunc) Handle {
	if d <= 0 {
		panic("scheduler: Every requires a positive period")
	}
	return s.schedule(d, d, fn)
}

func (s *schedulerImpl) schedule(d, period time.Duration, fn TimerFunc) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &timer{
		deadline: s.now.Add(d),
		period:   period,
		seq:      s.seq,
		fn:       fn,
		owner:    s,
		active:   true,
		index:    -1,
	}
	s.seq++
	s.pending++

	if s.advancing {
		s.deferred = append(s.deferred, t)
	} else {
		heap.Push(&s.queue, t)
	}
	return t
}

func (s *schedulerImpl) Advance(now time.Time) int {
	s.mu.Lock()
	if now.After(s.now) {
		s.now = now
	}
	now = s.now
	s.advancing = true

	fired := 0
	for len(s.queue) > 0 && !s.queue[0].deadline.After(now) {
		t := heap.Pop(&s.queue).(*timer)

		if t.period > 0 {
			// Next deadline strictly after now; missed periods are dropped.
			missed := now.Sub(t.deadline) / t.period
			t.deadline = t.deadline.Add((missed + 1) * t.period)
			t.seq = s.seq
			s.seq++
			s.deferred = append(s.deferred, t)
		} else {
			t.active = false
			s.pending--
		}

		fn := t.fn
		s.mu.Unlock()
		fn(now)
		fired++
		s.mu.Lock()
	}

	for _, t := range s.deferred {
		if t.active {
			heap.Push(&s.queue, t)
		}
	}
	s.deferred = s.deferred[:0]
	s.advancing = false
	s.mu.Unlock()
	return fired
}

func (s *schedulerImpl) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
