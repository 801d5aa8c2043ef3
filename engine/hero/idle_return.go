package hero

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/scheduler"
)

// homeTolerance is the distance within which the watchdog treats the camera as already home.
const homeTolerance = 1e-4

// AnimationTask is an in-flight camera return animation.
type AnimationTask struct {
	StartTime  time.Time
	Duration   time.Duration
	StartPose  common.Pose
	TargetPose common.Pose
	Active     bool
}

// Progress returns the linear progress of the task at now, clamped to [0, 1].
// Exactly 1 once Duration has elapsed.
//
// Parameters:
//   - now: the frame instant
//
// Returns:
//   - float32: linear progress
func (t AnimationTask) Progress(now time.Time) float32 {
	elapsed := now.Sub(t.StartTime)
	if elapsed >= t.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float32(float64(elapsed) / float64(t.Duration))
}

// StateObserver is notified on every idle-return state transition.
type StateObserver func(from, to State, at time.Time)

// IdleReturn tracks interaction recency and animates the camera back to its home pose after
// inactivity. Two triggers can start a return: a one-shot inactivity timer armed when hover
// ends, and a periodic watchdog that fires once the last interaction is old enough.
type IdleReturn interface {
	// Interact handles an interaction event: cancels the inactivity timer, aborts a running
	// return animation in place and enters Active.
	//
	// Parameters:
	//   - now: the event instant
	Interact(now time.Time)

	// HoverChanged handles a hover transition. Hover begin counts as an interaction; hover end
	// while Active arms the inactivity timer and enters Waiting.
	//
	// Parameters:
	//   - hovered: the new hover flag
	//   - now: the event instant
	HoverChanged(hovered bool, now time.Time)

	// RequestReturn starts a return animation from the current camera pose.
	// No-op while an animation is already running.
	//
	// Parameters:
	//   - now: the animation start instant
	RequestReturn(now time.Time)

	// Frame advances a running return animation. On completion the camera is set exactly to
	// the home pose and the machine enters Waiting.
	//
	// Parameters:
	//   - now: the frame instant
	Frame(now time.Time)

	// State returns the current phase.
	State() State

	// HomePose returns the pose captured at construction.
	HomePose() common.Pose

	// Task returns a copy of the running animation.
	//
	// Returns:
	//   - AnimationTask: the running task
	//   - bool: false when no animation is running
	Task() (AnimationTask, bool)

	// Close cancels the inactivity timer, the watchdog and any running animation.
	// Every other method is a no-op afterwards.
	Close()
}

type idleReturn struct {
	cam   camera.Camera
	state *InteractionState
	sched scheduler.Scheduler
	cfg   IdleReturnConfig

	home  common.Pose
	phase State

	inactivity scheduler.Handle
	watchdog   scheduler.Handle
	task       *AnimationTask
	closed     bool

	logger   *log.Logger
	observer StateObserver
}

var _ IdleReturn = &idleReturn{}

// NewIdleReturn captures the camera's current pose as home and starts in Waiting with the
// inactivity timer and the watchdog armed.
// Panics if cam or sched is nil.
//
// Parameters:
//   - cam: the camera to return
//   - state: shared interaction state
//   - sched: the timer facility
//   - cfg: timing configuration
//   - options: functional options (logger, observer)
//
// Returns:
//   - IdleReturn: the running machine
func NewIdleReturn(cam camera.Camera, state *InteractionState, sched scheduler.Scheduler, cfg IdleReturnConfig, options ...IdleReturnOption) IdleReturn {
	if cam == nil || sched == nil || state == nil {
		panic("hero: NewIdleReturn requires a camera, interaction state and scheduler")
	}
	ir := &idleReturn{
		cam:   cam,
		state: state,
		sched: sched,
		cfg:   cfg,
		home:  cam.Pose(),
		phase: Waiting,
	}
	for _, option := range options {
		option(ir)
	}

	ir.armInactivity()
	ir.watchdog = sched.Every(cfg.WatchdogInterval, ir.onWatchdog)
	return ir
}

func (ir *idleReturn) Interact(now time.Time) {
	if ir.closed {
		return
	}
	ir.cancelInactivity()
	if ir.task != nil {
		// Abort in place: the camera keeps its last interpolated pose.
		ir.task.Active = false
		ir.task = nil
	}
	ir.transition(Active, now)
}

func (ir *idleReturn) HoverChanged(hovered bool, now time.Time) {
	if ir.closed {
		return
	}
	if hovered {
		ir.Interact(now)
		return
	}
	if ir.phase == Active {
		ir.armInactivity()
		ir.transition(Waiting, now)
	}
}

func (ir *idleReturn) RequestReturn(now time.Time) {
	if ir.closed || ir.task != nil {
		return
	}
	ir.cancelInactivity()
	ir.task = &AnimationTask{
		StartTime:  now,
		Duration:   ir.cfg.ReturnDuration,
		StartPose:  ir.cam.Pose(),
		TargetPose: ir.home,
		Active:     true,
	}
	ir.transition(Returning, now)
}

func (ir *idleReturn) Frame(now time.Time) {
	if ir.closed || ir.task == nil || !ir.task.Active {
		return
	}
	p := ir.task.Progress(now)
	if p >= 1 {
		ir.cam.SetPose(ir.task.TargetPose)
		ir.task.Active = false
		ir.task = nil
		ir.transition(Waiting, now)
		return
	}
	ir.cam.SetPose(common.LerpPose(ir.task.StartPose, ir.task.TargetPose, common.EaseInOutQuad(p)))
}

func (ir *idleReturn) State() State {
	return ir.phase
}

func (ir *idleReturn) HomePose() common.Pose {
	return ir.home
}

func (ir *idleReturn) Task() (AnimationTask, bool) {
	if ir.task == nil {
		return AnimationTask{}, false
	}
	return *ir.task, true
}

func (ir *idleReturn) Close() {
	if ir.closed {
		return
	}
	ir.closed = true
	ir.cancelInactivity()
	if ir.watchdog != nil {
		ir.watchdog.Cancel()
		ir.watchdog = nil
	}
	if ir.task != nil {
		ir.task.Active = false
		ir.task = nil
	}
}

// armInactivity (re)starts the one-shot inactivity timer.
func (ir *idleReturn) armInactivity() {
	ir.cancelInactivity()
	var h scheduler.Handle
	h = ir.sched.After(ir.cfg.InactivityTimeout, func(now time.Time) {
		// Ignore a callback whose handle has been replaced or cancelled.
		if ir.closed || ir.inactivity != h {
			return
		}
		ir.inactivity = nil
		if ir.phase == Waiting {
			ir.RequestReturn(now)
		}
	})
	ir.inactivity = h
}

func (ir *idleReturn) cancelInactivity() {
	if ir.inactivity != nil {
		ir.inactivity.Cancel()
		ir.inactivity = nil
	}
}

// onWatchdog requests a return once the idle threshold has passed with no task in flight.
// Unlike a plain periodic retry it skips when the camera already rests within homeTolerance
// of the home pose, so an idle camera at home does not replay a home-to-home animation.
func (ir *idleReturn) onWatchdog(now time.Time) {
	if ir.closed || ir.task != nil {
		return
	}
	if ir.state.IdleFor(now) < ir.cfg.IdleThreshold {
		return
	}
	if ir.atHome() {
		return
	}
	ir.RequestReturn(now)
}

// atHome reports whether the camera already rests at the home pose.
func (ir *idleReturn) atHome() bool {
	pose := ir.cam.Pose()
	return pose.Position.Sub(ir.home.Position).Len() <= homeTolerance &&
		pose.Rotation.Sub(ir.home.Rotation).Len() <= homeTolerance
}

func (ir *idleReturn) transition(to State, now time.Time) {
	if ir.phase == to {
		return
	}
	from := ir.phase
	ir.phase = to
	if ir.logger != nil {
		ir.logger.Printf("[idle-return] %s -> %s (idle %s)", from, to, ir.state.IdleFor(now).Round(time.Millisecond))
	}
	if ir.observer != nil {
		ir.observer(from, to, now)
	}
}

// IdleReturnOption is a functional option for configuring an IdleReturn.
type IdleReturnOption func(*idleReturn)

// WithTransitionLogger logs every state transition to logger.
//
// Parameters:
//   - logger: destination logger (nil disables logging)
//
// Returns:
//   - IdleReturnOption: option function to apply
func WithTransitionLogger(logger *log.Logger) IdleReturnOption {
	return func(ir *idleReturn) {
		ir.logger = logger
	}
}

// WithTransitionObserver calls observer on every state transition.
//
// Parameters:
//   - observer: the callback
//
// Returns:
//   - IdleReturnOption: option function to apply
func WithTransitionObserver(observer StateObserver) IdleReturnOption {
	return func(ir *idleReturn) {
		ir.observer = observer
	}
}
