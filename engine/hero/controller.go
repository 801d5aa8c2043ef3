package hero

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/Carmen-Shannon/oxy-hero/engine"
	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/game_object"
	"github.com/Carmen-Shannon/oxy-hero/engine/scheduler"
)

// FrameSource registers per-frame callbacks. engine.Engine satisfies it.
type FrameSource interface {
	OnFrame(callback engine.FrameCallback) func()
}

// Controller composes the orientation follower, the idle-return machine and the gated
// orbit/zoom controller around one shared InteractionState.
// Every method must be called on the frame thread.
type Controller interface {
	// SetHovered updates the hover flag from pointer enter/leave on the focal node.
	// Repeating the current value is a no-op.
	//
	// Parameters:
	//   - hovered: true on enter, false on leave
	SetHovered(hovered bool)

	// Hovered returns the hover flag.
	Hovered() bool

	// OnInteraction records an external interaction at ts and forwards it to the idle-return
	// machine.
	//
	// Parameters:
	//   - ts: the interaction instant
	OnInteraction(ts time.Time)

	// Wheel handles a wheel event (see OrbitZoom.Wheel).
	Wheel(ev *WheelEvent)

	// Drag handles a pointer drag (see OrbitZoom.Drag).
	Drag(dx, dy float32, viewportHeight int)

	// RequestReturn starts a return to the home pose now.
	RequestReturn()

	// SetZoomEnabled sets the zoom flag.
	SetZoomEnabled(enabled bool)

	// ZoomEnabled reports the zoom flag.
	ZoomEnabled() bool

	// Frame runs one frame: follower step, orbit update, then return animation.
	//
	// Parameters:
	//   - now: the frame instant
	//   - dt: seconds since the previous frame (unused; smoothing is per frame)
	Frame(now time.Time, dt float32)

	// Attach registers Frame with source.
	//
	// Parameters:
	//   - source: the frame source
	//
	// Returns:
	//   - func(): detaches the controller
	Attach(source FrameSource) func()

	// State returns the idle-return phase.
	State() State

	// HomePose returns the captured home pose.
	HomePose() common.Pose

	// Interaction returns the shared interaction state.
	Interaction() *InteractionState

	// Distance returns the camera's distance from the orbit target.
	Distance() float32

	// Config returns the configuration the controller was built with.
	Config() Config

	// Close tears down timers, animation and listeners. Safe to call more than once.
	Close()
}

type controller struct {
	cam      camera.Camera
	node     game_object.GameObject
	controls camera.OrbitControls
	sched    scheduler.Scheduler

	cfg         Config
	zoomEnabled bool
	logger      *log.Logger
	observer    StateObserver

	state    *InteractionState
	follower OrientationFollower
	idle     IdleReturn
	orbit    OrbitZoom

	detach []func()
	closed bool
}

var _ Controller = &controller{}

// NewController builds the showcase controller. The camera's pose at this moment becomes the
// home pose. When controls is nil, orbit controls are created from the configuration.
// Panics if cam or sched is nil, or if the configuration is invalid.
//
// Parameters:
//   - cam: the showcase camera
//   - node: the focal node (may be nil until the scene is ready)
//   - controls: the orbit capability, or nil
//   - sched: the timer facility and clock
//   - options: functional options
//
// Returns:
//   - Controller: the running controller
func NewController(cam camera.Camera, node game_object.GameObject, controls camera.OrbitControls, sched scheduler.Scheduler, options ...ControllerBuilderOption) Controller {
	if cam == nil || sched == nil {
		panic("hero: NewController requires a camera and a scheduler")
	}
	c := &controller{
		cam:         cam,
		node:        node,
		controls:    controls,
		sched:       sched,
		cfg:         DefaultConfig(),
		zoomEnabled: true,
	}
	for _, option := range options {
		option(c)
	}
	if err := c.cfg.Validate(); err != nil {
		panic(err.Error())
	}

	if c.controls == nil {
		c.controls = NewOrbitControls(cam, c.cfg.Orbit)
	}

	c.state = NewInteractionState(sched.Now())
	c.follower = NewOrientationFollower(node, cam, c.state, c.cfg.Follower)
	c.idle = NewIdleReturn(cam, c.state, sched, c.cfg.IdleReturn,
		WithTransitionLogger(c.logger),
		WithTransitionObserver(c.observer),
	)
	c.orbit = NewOrbitZoom(cam, c.controls, c.state, sched.Now, c.cfg.Orbit, c.idle.Interact)
	c.orbit.SetZoomEnabled(c.zoomEnabled)

	if c.logger != nil {
		c.logger.Printf("[hero] controller ready: home %s, zoom %t", c.idle.HomePose(), c.zoomEnabled)
	}
	return c
}

// NewOrbitControls creates orbit controls configured from cfg: hover-gated (disabled),
// clamped polar angle and distance, configured damping and rotate speed.
//
// Parameters:
//   - cam: the camera to drive
//   - cfg: the orbit configuration
//
// Returns:
//   - camera.OrbitControls: the controls
func NewOrbitControls(cam camera.Camera, cfg OrbitConfig) camera.OrbitControls {
	return camera.NewOrbitControls(cam,
		camera.WithTarget(cfg.Target[0], cfg.Target[1], cfg.Target[2]),
		camera.WithPolarBounds(cfg.MinPolarAngle(), cfg.MaxPolarAngle()),
		camera.WithDistanceBounds(cfg.MinDistance, cfg.MaxDistance),
		camera.WithDampingFactor(cfg.DampingFactor),
		camera.WithRotateSpeed(cfg.RotateSpeed),
		camera.WithEnabled(false),
	)
}

func (c *controller) SetHovered(hovered bool) {
	if c.closed || c.state.Hovered() == hovered {
		return
	}
	now := c.sched.Now()
	c.state.SetHovered(hovered, now)
	c.orbit.SetHovered(hovered)
	c.idle.HoverChanged(hovered, now)
}

func (c *controller) Hovered() bool {
	return c.state.Hovered()
}

func (c *controller) OnInteraction(ts time.Time) {
	if c.closed {
		return
	}
	c.state.Touch(ts)
	c.idle.Interact(ts)
}

func (c *controller) Wheel(ev *WheelEvent) {
	if c.closed {
		return
	}
	c.orbit.Wheel(ev)
}

func (c *controller) Drag(dx, dy float32, viewportHeight int) {
	if c.closed {
		return
	}
	c.orbit.Drag(dx, dy, viewportHeight)
}

func (c *controller) RequestReturn() {
	if c.closed {
		return
	}
	c.idle.RequestReturn(c.sched.Now())
}

func (c *controller) SetZoomEnabled(enabled bool) {
	c.zoomEnabled = enabled
	c.orbit.SetZoomEnabled(enabled)
}

func (c *controller) ZoomEnabled() bool {
	return c.orbit.ZoomEnabled()
}

func (c *controller) Frame(now time.Time, dt float32) {
	if c.closed {
		return
	}
	c.follower.Frame()
	c.orbit.Frame(c.idle.State() == Returning)
	c.idle.Frame(now)
}

func (c *controller) Attach(source FrameSource) func() {
	remove := source.OnFrame(c.Frame)
	c.detach = append(c.detach, remove)
	return remove
}

func (c *controller) State() State {
	return c.idle.State()
}

func (c *controller) HomePose() common.Pose {
	return c.idle.HomePose()
}

func (c *controller) Interaction() *InteractionState {
	return c.state
}

func (c *controller) Distance() float32 {
	return c.orbit.Distance()
}

func (c *controller) Config() Config {
	return c.cfg
}

func (c *controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, remove := range c.detach {
		remove()
	}
	c.detach = nil
	c.orbit.Close()
	c.idle.Close()
	if c.logger != nil {
		c.logger.Printf("[hero] controller closed")
	}
}
