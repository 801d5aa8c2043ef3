package showcase

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/Carmen-Shannon/oxy-hero/engine"
	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/game_object"
	"github.com/Carmen-Shannon/oxy-hero/engine/hero"
	"github.com/Carmen-Shannon/oxy-hero/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Showcase wires the camera, the focal node, the hero controller and hover detection onto an
// engine. Host input methods are safe to call from any goroutine: they post onto the frame
// thread, so their effects are visible after the next engine step.
type Showcase struct {
	mu *sync.Mutex

	cfg    hero.Config
	opts   Options
	engine engine.Engine
	cam    camera.Camera
	group  game_object.GameObject
	node   game_object.GameObject
	hover  input.HoverTracker
	ctrl   hero.Controller
	logger *log.Logger

	width   int
	height  int
	device  hero.DeviceClass
	status  string
	returns int
}

// New composes a showcase. The engine is created from opts (tick rate and profiling) followed
// by engineOptions, so callers may supply a window or a scheduler of their own.
//
// Parameters:
//   - cfg: the controller tuning
//   - opts: host settings (viewport, frame rate, logging)
//   - engineOptions: additional engine options applied last
//
// Returns:
//   - *Showcase: the composed showcase, already attached to its engine
//   - error: error if opts or cfg are invalid
func New(cfg hero.Config, opts Options, engineOptions ...engine.EngineBuilderOption) (*Showcase, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Showcase{
		mu:     &sync.Mutex{},
		cfg:    cfg,
		opts:   opts,
		width:  opts.Width,
		height: opts.Height,
		device: hero.ClassifyViewport(opts.Width, cfg.Device),
	}
	if opts.Verbose {
		s.logger = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
	}

	s.engine = engine.NewEngine(append([]engine.EngineBuilderOption{
		engine.WithTickRate(opts.FPS),
		engine.WithProfiling(opts.Profile),
	}, engineOptions...)...)

	scene := cfg.Scene
	target := cfg.Orbit.TargetVec()
	s.cam = camera.NewCamera(
		camera.WithPosition(scene.CameraPosition[0], scene.CameraPosition[1], scene.CameraPosition[2]),
		camera.WithLookAt(target[0], target[1], target[2]),
		camera.WithFov(mgl32.DegToRad(scene.FovDegrees)),
		camera.WithAspect(float32(opts.Width)/float32(opts.Height)),
	)

	// The cube's circumscribed sphere matches the focal radius.
	side := 2 * scene.FocalRadius / float32(math.Sqrt(3))
	s.group = game_object.NewGameObject(
		game_object.WithName("focal-group"),
		game_object.WithPosition(scene.FocalPosition[0], scene.FocalPosition[1], scene.FocalPosition[2]),
		game_object.WithScale(s.device.FocalScale(cfg.Device)),
	)
	s.node = game_object.NewGameObject(
		game_object.WithName("hero"),
		game_object.WithParent(s.group),
		game_object.WithBoundingRadius(scene.FocalRadius),
		game_object.WithEdges(game_object.BoxEdges(side, side, side)...),
	)

	ctrlOptions := []hero.ControllerBuilderOption{
		hero.WithConfig(cfg),
		hero.WithZoomEnabled(s.device.ZoomEnabled()),
		hero.WithStateObserver(s.stateChanged),
	}
	if s.logger != nil {
		ctrlOptions = append(ctrlOptions, hero.WithLogger(s.logger))
	}
	s.ctrl = hero.NewController(s.cam, s.node, nil, s.engine.Scheduler(), ctrlOptions...)

	s.hover = input.NewHoverTracker(s.cam, s.node,
		input.WithViewport(opts.Width, opts.Height),
		input.WithOnChange(s.ctrl.SetHovered),
	)

	s.ctrl.Attach(s.engine)
	// The camera may have moved under a stationary cursor.
	s.engine.OnFrame(func(now time.Time, dt float32) {
		s.hover.Refresh()
		s.refreshStatus()
	})
	s.refreshStatus()

	if s.logger != nil {
		s.logger.Printf("[showcase] %dx%d viewport classified as %s", opts.Width, opts.Height, s.device)
	}
	return s, nil
}

// Engine returns the engine driving the showcase.
func (s *Showcase) Engine() engine.Engine {
	return s.engine
}

// Camera returns the showcase camera.
func (s *Showcase) Camera() camera.Camera {
	return s.cam
}

// Controller returns the hero controller.
func (s *Showcase) Controller() hero.Controller {
	return s.ctrl
}

// Node returns the focal node.
func (s *Showcase) Node() game_object.GameObject {
	return s.node
}

// Hover returns the cursor hover tracker.
func (s *Showcase) Hover() input.HoverTracker {
	return s.hover
}

// Device returns the current device classification.
func (s *Showcase) Device() hero.DeviceClass {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device
}

// Viewport returns the current viewport size in pixels.
func (s *Showcase) Viewport() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// MoveCursor reports the cursor position in viewport pixels.
func (s *Showcase) MoveCursor(x, y float32) {
	s.engine.Post(func() {
		s.hover.MoveCursor(x, y)
	})
}

// LeaveWindow reports that the cursor left the viewport.
func (s *Showcase) LeaveWindow() {
	s.engine.Post(s.hover.LeaveWindow)
}

// Scroll reports a wheel movement using the deltaY convention (positive zooms out).
func (s *Showcase) Scroll(deltaY float32) {
	s.engine.Post(func() {
		s.ctrl.Wheel(&hero.WheelEvent{ScrollAmount: float64(deltaY)})
	})
}

// Drag reports a primary-button drag in pixels.
func (s *Showcase) Drag(dx, dy float32) {
	s.engine.Post(func() {
		_, height := s.Viewport()
		s.ctrl.Drag(dx, dy, height)
	})
}

// KeyDown handles a key press using the common key codes.
// R returns the camera home, Z toggles wheel zoom and Space counts as an interaction.
func (s *Showcase) KeyDown(keyCode uint32) {
	s.engine.Post(func() {
		switch keyCode {
		case common.KeyR:
			s.ctrl.RequestReturn()
		case common.KeyZ:
			s.ctrl.SetZoomEnabled(!s.ctrl.ZoomEnabled())
			if s.logger != nil {
				s.logger.Printf("[showcase] zoom %t", s.ctrl.ZoomEnabled())
			}
		case common.KeySpace:
			s.ctrl.OnInteraction(s.engine.Scheduler().Now())
		}
	})
}

// Resize reports a new viewport size. The device class is recomputed, which updates the
// zoom flag and the focal group's scale.
func (s *Showcase) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.engine.Post(func() {
		device := hero.ClassifyViewport(width, s.cfg.Device)

		s.mu.Lock()
		changed := device != s.device
		s.width, s.height, s.device = width, height, device
		s.mu.Unlock()

		s.cam.SetAspect(float32(width) / float32(height))
		s.hover.SetViewport(width, height)
		if changed {
			s.ctrl.SetZoomEnabled(device.ZoomEnabled())
			s.group.SetScale(device.FocalScale(s.cfg.Device))
			if s.logger != nil {
				s.logger.Printf("[showcase] %dx%d viewport classified as %s", width, height, device)
			}
		}
	})
}

// Status returns a one-line summary suitable for a window title or an overlay.
func (s *Showcase) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Close detaches the controller and stops the engine.
func (s *Showcase) Close() {
	s.ctrl.Close()
	s.engine.Quit()
}

func (s *Showcase) refreshStatus() {
	zoom := "off"
	if s.ctrl.ZoomEnabled() {
		zoom = "on"
	}
	hover := ""
	if s.ctrl.Hovered() {
		hover = " | hover"
	}
	status := fmt.Sprintf("%s | %s | %s | zoom %s | dist %.1f | returns %d%s",
		s.opts.WindowTitle(), s.ctrl.State(), s.Device(), zoom, s.ctrl.Distance(), s.Returns(), hover)

	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// Returns reports how many return animations have started.
func (s *Showcase) Returns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.returns
}

func (s *Showcase) stateChanged(from, to hero.State, at time.Time) {
	if to != hero.Returning {
		return
	}
	s.mu.Lock()
	s.returns++
	s.mu.Unlock()
	if s.logger != nil {
		s.logger.Printf("[showcase] return started from %s at frame %d", from, s.engine.Frames())
	}
}
