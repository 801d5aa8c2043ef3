package hero

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/scheduler"
	"github.com/go-gl/mathgl/mgl32"
)

// hoverOut produces the "hover ended at t" starting point used by several scenarios.
func hoverOut(r *rig, ms int) {
	r.step(ms)
	r.ctrl.SetHovered(true)
	r.ctrl.SetHovered(false)
}

func TestReturnAfterHoverEnds(t *testing.T) {
	r := newRig(t, mgl32.Vec3{0, 0, 15})
	hoverOut(r, 0)
	if r.ctrl.State() != Waiting {
		t.Fatalf("state after hover end = %s, want WAITING", r.ctrl.State())
	}
	r.moveOffHome()

	returningAt := -1
	r.run(10, 6000, 10, func(ms int) {
		if returningAt < 0 && r.ctrl.State() == Returning {
			returningAt = ms
		}
		if ms == 4990 && r.cam.Pose().Equal(r.ctrl.HomePose()) {
			t.Error("camera reached home before the animation ended")
		}
		if ms == 5000 {
			if r.ctrl.State() != Waiting {
				t.Errorf("state at 5000ms = %s, want WAITING", r.ctrl.State())
			}
			if got := r.cam.Pose(); !got.Equal(r.ctrl.HomePose()) {
				t.Errorf("pose at 5000ms = %s, want exactly %s", got, r.ctrl.HomePose())
			}
		}
	})
	if returningAt != 3000 {
		t.Errorf("RETURNING began at %dms, want 3000ms", returningAt)
	}
}

func TestIdleTriggerWithinOneFrame(t *testing.T) {
	const frame = 16
	r := newRig(t, mgl32.Vec3{0, 0, 15})
	hoverOut(r, 0)
	r.moveOffHome()

	returningAt, waitingAt := -1, -1
	r.run(frame, 6000, frame, func(ms int) {
		switch {
		case returningAt < 0 && r.ctrl.State() == Returning:
			returningAt = ms
		case returningAt >= 0 && waitingAt < 0 && r.ctrl.State() == Waiting:
			waitingAt = ms
		}
	})

	if returningAt < 3000 || returningAt >= 3000+frame {
		t.Errorf("RETURNING began at %dms, want within [3000, %d)", returningAt, 3000+frame)
	}
	if waitingAt != returningAt+2000 {
		t.Errorf("animation finished at %dms, want %dms", waitingAt, returningAt+2000)
	}
}

func TestHoverBeforeTimerCancelsReturn(t *testing.T) {
	r := newRig(t, mgl32.Vec3{0, 0, 15})
	hoverOut(r, 0)
	r.moveOffHome()
	r.run(10, 500, 10, nil)

	r.ctrl.SetHovered(true)
	if r.ctrl.State() != Active {
		t.Fatalf("state after hover begin = %s, want ACTIVE", r.ctrl.State())
	}
	r.run(510, 5400, 10, func(ms int) {
		if r.ctrl.State() == Returning {
			t.Fatalf("unexpected RETURNING at %dms", ms)
		}
	})
}

func TestInteractionAbortsReturnInPlace(t *testing.T) {
	r := newRig(t, mgl32.Vec3{0, 0, 15})
	hoverOut(r, 0)
	r.moveOffHome()
	r.run(10, 4000, 10, nil)
	if r.ctrl.State() != Returning {
		t.Fatalf("state at 4000ms = %s, want RETURNING", r.ctrl.State())
	}

	frozen := r.cam.Pose()
	if frozen.Equal(r.ctrl.HomePose()) {
		t.Fatal("camera should be mid-animation")
	}
	r.ctrl.OnInteraction(at(4000))
	if r.ctrl.State() != Active {
		t.Fatalf("state after interaction = %s, want ACTIVE", r.ctrl.State())
	}

	r.run(4010, 6000, 10, func(ms int) {
		if got := r.cam.Pose(); !got.Equal(frozen) {
			t.Fatalf("camera moved after abort at %dms: %s, want %s", ms, got, frozen)
		}
	})
}

func TestWatchdogTriggersReturn(t *testing.T) {
	var returnedAt time.Time
	r := newRig(t, mgl32.Vec3{0, 0, 15}, WithStateObserver(func(from, to State, now time.Time) {
		if to == Returning {
			returnedAt = now
		}
	}))
	r.step(0)
	r.ctrl.OnInteraction(at(0))
	r.moveOffHome()

	r.step(6000)

	if r.ctrl.State() != Returning {
		t.Fatalf("state = %s, want RETURNING", r.ctrl.State())
	}
	if !returnedAt.Equal(at(6000)) {
		t.Errorf("return started at %v, want %v", returnedAt, at(6000))
	}
}

func TestWatchdogSkipsWhenHome(t *testing.T) {
	r := newRig(t, mgl32.Vec3{0, 0, 15})
	r.step(0)
	r.ctrl.OnInteraction(at(0))

	r.run(1000, 12000, 1000, func(ms int) {
		if r.ctrl.State() == Returning {
			t.Fatalf("watchdog started a return at %dms with the camera already home", ms)
		}
	})
}

func newIdleReturn(t *testing.T) (IdleReturn, camera.Camera, scheduler.Scheduler) {
	t.Helper()
	sched := scheduler.NewScheduler(scheduler.WithStartTime(epoch))
	cam := camera.NewCamera(camera.WithPosition(0, 0, 15), camera.WithLookAt(0, 0, 0))
	ir := NewIdleReturn(cam, NewInteractionState(epoch), sched, DefaultConfig().IdleReturn)
	t.Cleanup(ir.Close)
	cam.SetPose(common.Pose{Position: mgl32.Vec3{4, 2, 10}, Rotation: mgl32.Vec3{0.1, 0.4, 0}})
	return ir, cam, sched
}

func TestRequestReturnIsIdempotent(t *testing.T) {
	ir, _, _ := newIdleReturn(t)

	ir.RequestReturn(at(0))
	first, ok := ir.Task()
	if !ok || !first.Active {
		t.Fatal("expected an active task")
	}
	ir.Frame(at(100))
	ir.RequestReturn(at(100))

	task, ok := ir.Task()
	if !ok {
		t.Fatal("task disappeared")
	}
	if !task.StartTime.Equal(at(0)) || !task.StartPose.Equal(first.StartPose) {
		t.Errorf("second request replaced the task: %+v", task)
	}
	if ir.State() != Returning {
		t.Errorf("state = %s, want RETURNING", ir.State())
	}
}

func TestAnimationCurve(t *testing.T) {
	ir, cam, _ := newIdleReturn(t)
	start := cam.Pose()
	home := ir.HomePose()
	ir.RequestReturn(at(0))

	tests := []struct {
		ms   int
		want float32
	}{
		{0, 0},
		{500, 0.125},
		{1000, 0.5},
		{1500, 0.875},
	}
	for _, tt := range tests {
		ir.Frame(at(tt.ms))
		want := common.LerpPose(start, home, tt.want)
		got := cam.Pose()
		if !vecNear(got.Position, want.Position, 1e-4) {
			t.Errorf("%dms: position %v, want %v", tt.ms, got.Position, want.Position)
		}
	}

	ir.Frame(at(1999))
	if ir.State() != Returning {
		t.Fatalf("finished early at 1999ms")
	}
	ir.Frame(at(2000))
	if ir.State() != Waiting {
		t.Fatalf("state at 2000ms = %s, want WAITING", ir.State())
	}
	if !cam.Pose().Equal(home) {
		t.Errorf("final pose %s, want exactly %s", cam.Pose(), home)
	}
	if _, ok := ir.Task(); ok {
		t.Error("task should be discarded on completion")
	}
}

func TestCloseCancelsEverything(t *testing.T) {
	ir, cam, sched := newIdleReturn(t)
	ir.RequestReturn(at(0))
	ir.Close()
	ir.Close()

	if sched.Pending() != 0 {
		t.Errorf("Pending timers after Close = %d, want 0", sched.Pending())
	}
	before := cam.Pose()
	sched.Advance(at(10000))
	ir.Frame(at(10000))
	ir.RequestReturn(at(10000))
	if !cam.Pose().Equal(before) {
		t.Error("camera moved after Close")
	}
	if _, ok := ir.Task(); ok {
		t.Error("task survived Close")
	}
}

func TestTransitionLogging(t *testing.T) {
	var buf bytes.Buffer
	r := newRig(t, mgl32.Vec3{0, 0, 15}, WithLogger(log.New(&buf, "", 0)))
	hoverOut(r, 0)

	out := buf.String()
	for _, want := range []string{"[idle-return] WAITING -> ACTIVE", "[idle-return] ACTIVE -> WAITING"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}
