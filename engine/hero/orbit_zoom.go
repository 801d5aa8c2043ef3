package hero

import (
	"math"
	"time"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// WheelEvent is a raw wheel/scroll event. ScrollAmount follows the browser deltaY
// convention: positive moves the camera away from the target.
type WheelEvent struct {
	ScrollAmount float64

	defaultPrevented bool
}

// PreventDefault marks the event as consumed so the host skips its own scroll handling.
func (e *WheelEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler consumed the event.
func (e *WheelEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// OrbitZoom gates an orbit capability on the hover flag and adds a clamped wheel zoom.
type OrbitZoom interface {
	// SetHovered enables the orbit capability while hovered and disables it otherwise.
	// Disabling freezes rotation and drops pending inertia.
	//
	// Parameters:
	//   - hovered: the current hover flag
	SetHovered(hovered bool)

	// Drag feeds a pointer drag into the orbit capability. Ignored unless hovered.
	//
	// Parameters:
	//   - dx, dy: pointer movement in pixels
	//   - viewportHeight: viewport height in pixels
	Drag(dx, dy float32, viewportHeight int)

	// Wheel applies one zoom step when hovered and zoom is enabled, and prevents the
	// event's default. Otherwise the event is left untouched.
	//
	// Parameters:
	//   - ev: the wheel event
	Wheel(ev *WheelEvent)

	// SetZoomEnabled sets the device-derived zoom flag.
	SetZoomEnabled(enabled bool)

	// ZoomEnabled reports the zoom flag.
	ZoomEnabled() bool

	// Frame runs the capability's damped update while it is enabled. While a return animation
	// drives the camera the update only runs when user rotation is pending.
	//
	// Parameters:
	//   - returning: true while the idle-return machine is RETURNING
	Frame(returning bool)

	// Distance returns the camera's distance from the orbit target.
	Distance() float32

	// Close unregisters the change listener and disables the capability.
	Close()
}

type orbitZoom struct {
	cam      camera.Camera
	controls camera.OrbitControls
	state    *InteractionState
	clock    func() time.Time
	cfg      OrbitConfig

	zoomEnabled   bool
	onInteraction func(now time.Time)
	removeChange  func()
}

var _ OrbitZoom = &orbitZoom{}

// NewOrbitZoom wraps controls. Change notifications from the controls and zoom steps record
// an interaction on state and are forwarded to onInteraction.
//
// Parameters:
//   - cam: the camera to zoom (nil makes zoom a no-op)
//   - controls: the orbit capability
//   - state: shared interaction state
//   - clock: source of event instants
//   - cfg: zoom bounds and step
//   - onInteraction: receives each interaction instant (may be nil)
//
// Returns:
//   - OrbitZoom: the new controller
func NewOrbitZoom(cam camera.Camera, controls camera.OrbitControls, state *InteractionState, clock func() time.Time, cfg OrbitConfig, onInteraction func(now time.Time)) OrbitZoom {
	oz := &orbitZoom{
		cam:           cam,
		controls:      controls,
		state:         state,
		clock:         clock,
		cfg:           cfg,
		zoomEnabled:   true,
		onInteraction: onInteraction,
	}
	controls.SetEnabled(state.Hovered())
	oz.removeChange = controls.OnChange(func() {
		oz.interacted()
	})
	return oz
}

func (oz *orbitZoom) SetHovered(hovered bool) {
	oz.controls.SetEnabled(hovered)
}

func (oz *orbitZoom) Drag(dx, dy float32, viewportHeight int) {
	if !oz.state.Hovered() || viewportHeight <= 0 {
		return
	}
	perPixel := 2 * math.Pi / float32(viewportHeight) * oz.controls.RotateSpeed()
	oz.controls.RotateAroundTarget(-dx*perPixel, -dy*perPixel)
}

func (oz *orbitZoom) Wheel(ev *WheelEvent) {
	if ev == nil || oz.cam == nil || !oz.state.Hovered() || !oz.zoomEnabled {
		return
	}
	ev.PreventDefault()

	factor := 1 + common.Sign(ev.ScrollAmount)*oz.cfg.ZoomStep
	target := oz.controls.Target()
	offset := oz.cam.Position().Sub(target)
	dist := offset.Len()
	if dist < 1e-6 {
		// No direction to move along; keep the current position.
		oz.interacted()
		return
	}
	newDist := mgl32.Clamp(dist*factor, oz.cfg.MinDistance, oz.cfg.MaxDistance)
	oz.cam.SetPosition(target.Add(offset.Mul(newDist / dist)))
	oz.cam.LookAt(target)
	oz.interacted()
}

func (oz *orbitZoom) SetZoomEnabled(enabled bool) {
	oz.zoomEnabled = enabled
}

func (oz *orbitZoom) ZoomEnabled() bool {
	return oz.zoomEnabled
}

func (oz *orbitZoom) Frame(returning bool) {
	if !oz.controls.Enabled() || (returning && !oz.controls.Pending()) {
		return
	}
	oz.controls.Update()
}

func (oz *orbitZoom) Distance() float32 {
	if oz.cam == nil {
		return 0
	}
	return oz.cam.DistanceTo(oz.controls.Target())
}

func (oz *orbitZoom) Close() {
	if oz.removeChange != nil {
		oz.removeChange()
		oz.removeChange = nil
	}
	oz.controls.SetEnabled(false)
}

func (oz *orbitZoom) interacted() {
	now := oz.clock()
	oz.state.Touch(now)
	if oz.onInteraction != nil {
		oz.onInteraction(now)
	}
}
