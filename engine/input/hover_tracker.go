package input

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

type hoverTracker struct {
	mu *sync.Mutex

	cam  camera.Camera
	node game_object.GameObject

	width, height int

	cursor   mgl32.Vec2
	inWindow bool
	hovered  bool

	onChange func(hovered bool)
}

// HoverTracker turns raw cursor positions into pointer enter/leave transitions scoped to a
// node's projected bounding sphere. The cursor leaving the window always counts as leaving
// the node.
type HoverTracker interface {
	// MoveCursor records a cursor position in viewport pixels and re-evaluates hover.
	//
	// Parameters:
	//   - x, y: cursor position (origin top-left)
	MoveCursor(x, y float32)

	// LeaveWindow marks the cursor as outside the viewport.
	LeaveWindow()

	// Refresh re-evaluates hover against the current camera and node transforms without a
	// cursor change. Call once per frame so a moving camera updates hover.
	Refresh()

	// SetViewport sets the viewport size used for projection.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	SetViewport(width, height int)

	// Hovered reports whether the cursor is currently over the node.
	//
	// Returns:
	//   - bool: true while hovered
	Hovered() bool

	// OnChange sets the callback invoked on every enter (true) and leave (false) transition.
	//
	// Parameters:
	//   - callback: function receiving the new hover state
	OnChange(callback func(hovered bool))

	// ScreenBounds returns the node's projected center and radius in pixels.
	//
	// Returns:
	//   - mgl32.Vec2: projected center
	//   - float32: projected radius
	//   - bool: false if the node is missing, disabled or behind the camera
	ScreenBounds() (mgl32.Vec2, float32, bool)
}

var _ HoverTracker = &hoverTracker{}

// NewHoverTracker creates a tracker for node as seen through cam.
// Panics if cam is nil. A nil node is never hovered.
//
// Parameters:
//   - cam: the viewing camera
//   - node: the node whose bounds define the hover area
//   - options: functional options to configure the tracker
//
// Returns:
//   - HoverTracker: the newly created tracker
func NewHoverTracker(cam camera.Camera, node game_object.GameObject, options ...HoverTrackerOption) HoverTracker {
	if cam == nil {
		panic("input: NewHoverTracker requires a camera")
	}
	h := &hoverTracker{
		mu:     &sync.Mutex{},
		cam:    cam,
		node:   node,
		width:  1280,
		height: 720,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *hoverTracker) MoveCursor(x, y float32) {
	h.mu.Lock()
	h.cursor = mgl32.Vec2{x, y}
	h.inWindow = true
	notify := h.evaluate()
	h.mu.Unlock()
	notify()
}

func (h *hoverTracker) LeaveWindow() {
	h.mu.Lock()
	h.inWindow = false
	notify := h.evaluate()
	h.mu.Unlock()
	notify()
}

func (h *hoverTracker) Refresh() {
	h.mu.Lock()
	notify := h.evaluate()
	h.mu.Unlock()
	notify()
}

func (h *hoverTracker) SetViewport(width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.width = width
	h.height = height
}

func (h *hoverTracker) Hovered() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hovered
}

func (h *hoverTracker) OnChange(callback func(hovered bool)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = callback
}

func (h *hoverTracker) ScreenBounds() (mgl32.Vec2, float32, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.screenBounds()
}

// evaluate recomputes the hover flag and returns the notification to run after unlocking.
// Caller must hold the mutex.
func (h *hoverTracker) evaluate() func() {
	over := false
	if h.inWindow {
		if center, radius, ok := h.screenBounds(); ok {
			over = h.cursor.Sub(center).Len() <= radius
		}
	}
	if over == h.hovered {
		return func() {}
	}
	h.hovered = over
	cb := h.onChange
	if cb == nil {
		return func() {}
	}
	return func() { cb(over) }
}

// screenBounds projects the node's bounding sphere. Caller must hold the mutex.
func (h *hoverTracker) screenBounds() (mgl32.Vec2, float32, bool) {
	if h.node == nil || !h.node.Enabled() || h.width <= 0 || h.height <= 0 {
		return mgl32.Vec2{}, 0, false
	}
	world := h.node.WorldMatrix()
	center := world.Col(3).Vec3()
	worldRadius := h.node.BoundingRadius() * world.Col(0).Vec3().Len()

	screen, ok := h.cam.Project(center, h.width, h.height)
	if !ok {
		return mgl32.Vec2{}, 0, false
	}
	dist := h.cam.DistanceTo(center)
	if dist <= worldRadius {
		// Camera inside the sphere: everything is over the node.
		return screen, float32(math.Inf(1)), true
	}
	halfFov := float64(h.cam.Fov()) / 2
	pixelsPerUnit := float32(float64(h.height) / 2 / math.Tan(halfFov))
	return screen, worldRadius / dist * pixelsPerUnit, true
}
