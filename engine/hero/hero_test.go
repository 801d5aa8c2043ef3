package hero

import (
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-hero/engine"
	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/game_object"
	"github.com/Carmen-Shannon/oxy-hero/engine/scheduler"
	"github.com/go-gl/mathgl/mgl32"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

// rig is a showcase wired to an engine driven with explicit frame instants.
type rig struct {
	sched scheduler.Scheduler
	eng   engine.Engine
	cam   camera.Camera
	node  game_object.GameObject
	ctrl  Controller
}

func newRig(t *testing.T, camPos mgl32.Vec3, options ...ControllerBuilderOption) *rig {
	t.Helper()
	sched := scheduler.NewScheduler(scheduler.WithStartTime(epoch))
	eng := engine.NewEngine(engine.WithScheduler(sched))
	cam := camera.NewCamera(camera.WithPosition(camPos[0], camPos[1], camPos[2]), camera.WithLookAt(0, 0, 0))
	group := game_object.NewGameObject(game_object.WithPosition(0, -3.5, 0))
	node := game_object.NewGameObject(game_object.WithParent(group), game_object.WithBoundingRadius(2.5))

	ctrl := NewController(cam, node, nil, sched, options...)
	ctrl.Attach(eng)
	t.Cleanup(ctrl.Close)
	return &rig{sched: sched, eng: eng, cam: cam, node: node, ctrl: ctrl}
}

func (r *rig) step(ms int) {
	r.eng.Step(at(ms))
}

// run steps frames from..to inclusive every frame milliseconds.
func (r *rig) run(from, to, frame int, each func(ms int)) {
	for ms := from; ms <= to; ms += frame {
		r.step(ms)
		if each != nil {
			each(ms)
		}
	}
}

// moveOffHome places the camera away from its home pose, still looking at the origin.
func (r *rig) moveOffHome() {
	r.cam.SetPosition(mgl32.Vec3{0, 5, 12})
	r.cam.LookAt(mgl32.Vec3{})
}

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}
