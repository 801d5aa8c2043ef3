package scheduler

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestAfterFiresOnceWhenDue(t *testing.T) {
	s := NewScheduler(WithStartTime(epoch))
	var fires []time.Time
	h := s.After(3*time.Second, func(now time.Time) { fires = append(fires, now) })

	if n := s.Advance(at(2999)); n != 0 {
		t.Fatalf("fired %d timers before deadline", n)
	}
	if !h.Active() {
		t.Fatal("timer should still be active before its deadline")
	}
	if n := s.Advance(at(3000)); n != 1 {
		t.Fatalf("expected 1 fire at deadline, got %d", n)
	}
	if h.Active() {
		t.Error("one-shot timer still active after firing")
	}
	s.Advance(at(10000))
	if len(fires) != 1 || !fires[0].Equal(at(3000)) {
		t.Errorf("unexpected fires: %v", fires)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestDeadlineOrderAndTies(t *testing.T) {
	s := NewScheduler(WithStartTime(epoch))
	var order []string
	s.After(300*time.Millisecond, func(time.Time) { order = append(order, "c") })
	s.After(100*time.Millisecond, func(time.Time) { order = append(order, "a") })
	s.After(200*time.Millisecond, func(time.Time) { order = append(order, "b1") })
	s.After(200*time.Millisecond, func(time.Time) { order = append(order, "b2") })

	s.Advance(at(1000))

	want := []string{"a", "b1", "b2", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name string
		want int
		run  func(s Scheduler) int
	}{
		{
			name: "before deadline",
			run: func(s Scheduler) int {
				fired := 0
				h := s.After(time.Second, func(time.Time) { fired++ })
				h.Cancel()
				h.Cancel()
				s.Advance(at(5000))
				return fired
			},
		},
		{
			name: "by earlier timer in same advance",
			run: func(s Scheduler) int {
				fired := 0
				var victim Handle
				s.After(100*time.Millisecond, func(time.Time) { victim.Cancel() })
				victim = s.After(200*time.Millisecond, func(time.Time) { fired++ })
				s.Advance(at(1000))
				return fired
			},
		},
		{
			name: "periodic from inside its callback",
			want: 1,
			run: func(s Scheduler) int {
				fired := 0
				var h Handle
				h = s.Every(100*time.Millisecond, func(time.Time) {
					fired++
					h.Cancel()
				})
				s.Advance(at(100))
				s.Advance(at(200))
				s.Advance(at(300))
				return fired
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(WithStartTime(epoch))
			got := tt.run(s)
			if got != tt.want {
				t.Errorf("fired %d times, want %d", got, tt.want)
			}
			if s.Pending() != 0 {
				t.Errorf("Pending = %d, want 0", s.Pending())
			}
		})
	}
}

func TestEverySkipsMissedPeriods(t *testing.T) {
	s := NewScheduler(WithStartTime(epoch))
	var fires []time.Time
	h := s.Every(time.Second, func(now time.Time) { fires = append(fires, now) })

	s.Advance(at(1000))
	s.Advance(at(4500)) // three periods late, fires once
	s.Advance(at(4999))
	s.Advance(at(5000))

	if len(fires) != 3 {
		t.Fatalf("fires = %v, want 3 entries", fires)
	}
	if !fires[2].Equal(at(5000)) {
		t.Errorf("third fire at %v, want %v", fires[2], at(5000))
	}
	if !h.Active() {
		t.Error("periodic timer should stay active")
	}
	if s.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", s.Pending())
	}
}

func TestTimerScheduledDuringAdvanceWaitsForNextAdvance(t *testing.T) {
	s := NewScheduler(WithStartTime(epoch))
	inner := 0
	s.After(0, func(time.Time) {
		s.After(0, func(time.Time) { inner++ })
	})

	if n := s.Advance(at(0)); n != 1 {
		t.Fatalf("first advance fired %d, want 1", n)
	}
	if inner != 0 {
		t.Fatal("timer created during Advance fired in the same Advance")
	}
	s.Advance(at(0))
	if inner != 1 {
		t.Errorf("inner fired %d times, want 1", inner)
	}
}

func TestNowDoesNotGoBackwards(t *testing.T) {
	s := NewScheduler(WithStartTime(epoch))
	s.Advance(at(500))
	s.Advance(at(100))
	if got := s.Now(); !got.Equal(at(500)) {
		t.Errorf("Now = %v, want %v", got, at(500))
	}
}

func TestEveryRejectsNonPositivePeriod(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero period")
		}
	}()
	NewScheduler().Every(0, func(time.Time) {})
}
