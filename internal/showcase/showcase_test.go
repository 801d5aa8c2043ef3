package showcase

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/Carmen-Shannon/oxy-hero/engine"
	"github.com/Carmen-Shannon/oxy-hero/engine/hero"
	"github.com/Carmen-Shannon/oxy-hero/engine/scheduler"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const frame = 16 * time.Millisecond

type harness struct {
	t   *testing.T
	s   *Showcase
	now time.Time
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	s, err := New(hero.DefaultConfig(), opts,
		engine.WithScheduler(scheduler.NewScheduler(scheduler.WithStartTime(epoch))),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Close)
	return &harness{t: t, s: s, now: epoch}
}

// step advances n frames.
func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.now = h.now.Add(frame)
		h.s.Engine().Step(h.now)
	}
}

// hoverNode puts the cursor on the node's projected center.
func (h *harness) hoverNode() {
	h.t.Helper()
	center, _, ok := h.s.Hover().ScreenBounds()
	if !ok {
		h.t.Fatal("node should be on screen")
	}
	h.s.MoveCursor(center[0], center[1])
	h.step(1)
	if !h.s.Controller().Hovered() {
		h.t.Fatal("cursor on the node should hover it")
	}
}

func TestNewStartsWaitingAtHome(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	if got := h.s.Controller().State(); got != hero.Waiting {
		t.Errorf("state = %s, want WAITING", got)
	}
	if h.s.Device() != hero.DeviceDesktop {
		t.Errorf("device = %s, want desktop", h.s.Device())
	}
	status := h.s.Status()
	for _, want := range []string{"oxy-hero", "WAITING", "desktop", "zoom on", "dist 15.0"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}
	if home := h.s.Controller().HomePose(); home.Position != (mgl32.Vec3{0, 0, 15}) {
		t.Errorf("home position = %v", home.Position)
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	badCfg := hero.DefaultConfig()
	badCfg.Orbit.MinDistance = 30

	tests := []struct {
		name string
		cfg  hero.Config
		opts Options
	}{
		{"zero width", hero.DefaultConfig(), Options{Width: 0, Height: 720, FPS: 60}},
		{"zero fps", hero.DefaultConfig(), Options{Width: 1280, Height: 720}},
		{"bad config", badCfg, DefaultOptions()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg, tt.opts); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestHoverZoomAndLeave(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.hoverNode()

	if got := h.s.Controller().State(); got != hero.Active {
		t.Errorf("state while hovered = %s, want ACTIVE", got)
	}

	h.s.Scroll(1)
	h.step(1)
	if d := h.s.Controller().Distance(); math.Abs(float64(d-16.5)) > 1e-3 {
		t.Errorf("distance after zooming out = %v, want 16.5", d)
	}
	if !strings.Contains(h.s.Status(), "hover") {
		t.Errorf("status %q should report the hover", h.s.Status())
	}

	h.s.LeaveWindow()
	h.step(1)
	if h.s.Controller().Hovered() {
		t.Error("leaving the window should end the hover")
	}
	if got := h.s.Controller().State(); got != hero.Waiting {
		t.Errorf("state after leaving = %s, want WAITING", got)
	}
}

func TestScrollIgnoredWithoutHover(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.s.Scroll(1)
	h.step(1)
	if d := h.s.Controller().Distance(); math.Abs(float64(d-15)) > 1e-4 {
		t.Errorf("distance = %v, want 15", d)
	}
}

func TestReturnKeyAnimatesHome(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.hoverNode()
	h.s.Scroll(1)
	h.s.LeaveWindow()
	h.step(1)

	h.s.KeyDown(common.KeyR)
	h.step(1)
	if got := h.s.Controller().State(); got != hero.Returning {
		t.Fatalf("state = %s, want RETURNING", got)
	}
	if h.s.Returns() != 1 {
		t.Errorf("returns = %d, want 1", h.s.Returns())
	}

	h.step(int(2*time.Second/frame) + 2)
	if got := h.s.Controller().State(); got != hero.Waiting {
		t.Errorf("state after the animation = %s, want WAITING", got)
	}
	if pos := h.s.Camera().Position(); pos != (mgl32.Vec3{0, 0, 15}) {
		t.Errorf("camera = %v, want exactly home", pos)
	}
}

func TestZoomKeyToggles(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.s.KeyDown(common.KeyZ)
	h.step(1)
	if h.s.Controller().ZoomEnabled() {
		t.Error("Z should disable zoom")
	}
	if !strings.Contains(h.s.Status(), "zoom off") {
		t.Errorf("status %q should report zoom off", h.s.Status())
	}
	h.s.KeyDown(common.KeyZ)
	h.step(1)
	if !h.s.Controller().ZoomEnabled() {
		t.Error("second Z should enable zoom")
	}
}

func TestResizeReclassifies(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantDevice hero.DeviceClass
		wantZoom   bool
		wantScale  float32
	}{
		{"tablet", 900, 700, hero.DeviceTablet, false, 1},
		{"mobile", 600, 800, hero.DeviceMobile, true, 0.7},
		{"desktop", 1920, 1080, hero.DeviceDesktop, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, DefaultOptions())
			h.s.Resize(tt.width, tt.height)
			h.step(1)

			if h.s.Device() != tt.wantDevice {
				t.Errorf("device = %s, want %s", h.s.Device(), tt.wantDevice)
			}
			if h.s.Controller().ZoomEnabled() != tt.wantZoom {
				t.Errorf("zoom = %t, want %t", h.s.Controller().ZoomEnabled(), tt.wantZoom)
			}
			scale := h.s.Node().WorldMatrix().Col(0).Vec3().Len()
			if math.Abs(float64(scale-tt.wantScale)) > 1e-3 {
				t.Errorf("node world scale = %v, want %v", scale, tt.wantScale)
			}
			if w, hgt := h.s.Viewport(); w != tt.width || hgt != tt.height {
				t.Errorf("viewport = %dx%d", w, hgt)
			}
			if got := h.s.Camera().Aspect(); math.Abs(float64(got-float32(tt.width)/float32(tt.height))) > 1e-6 {
				t.Errorf("aspect = %v", got)
			}
		})
	}
}

func TestSegments(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.step(1)

	counts := map[SegmentKind]int{}
	for _, seg := range h.s.Segments() {
		counts[seg.Kind]++
	}
	if counts[SegmentHero] != 12 {
		t.Errorf("hero segments = %d, want 12", counts[SegmentHero])
	}
	if counts[SegmentTarget] != 3 {
		t.Errorf("target segments = %d, want 3", counts[SegmentTarget])
	}
	if counts[SegmentGrid] != 22 {
		t.Errorf("grid segments = %d, want 22", counts[SegmentGrid])
	}
}

func TestBindFlags(t *testing.T) {
	opts := DefaultOptions()
	cmd := &cobra.Command{Use: "showcase", Run: func(*cobra.Command, []string) {}}
	BindFlags(cmd, &opts)
	cmd.SetArgs([]string{"--width", "640", "--fps", "30", "-v", "--dump-config", "--title", ""})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if opts.Width != 640 || opts.Height != 720 || opts.FPS != 30 {
		t.Errorf("viewport/fps = %dx%d@%v", opts.Width, opts.Height, opts.FPS)
	}
	if !opts.Verbose || !opts.DumpConfig || opts.Profile {
		t.Errorf("flags = %+v", opts)
	}
	if opts.WindowTitle() != "oxy-hero" {
		t.Errorf("empty title should fall back, got %q", opts.WindowTitle())
	}
}

func TestOptionsLoadConfigDefaults(t *testing.T) {
	cfg, err := DefaultOptions().LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != hero.DefaultConfig() {
		t.Error("no config path should yield the defaults")
	}
	if _, err := (Options{ConfigPath: "does-not-exist.yaml"}).LoadConfig(); err == nil {
		t.Error("missing file should fail")
	}
}

func TestDumpConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := DumpConfig(&buf, hero.DefaultConfig()); err != nil {
		t.Fatalf("DumpConfig: %v", err)
	}
	for _, want := range []string{"idleReturn:", "inactivityTimeout: 3s", "zoomStep: 0.1"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("dump missing %q:\n%s", want, buf.String())
		}
	}
}
