package main

import (
	"errors"
	"image/color"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/Carmen-Shannon/oxy-hero/engine/hero"
	"github.com/Carmen-Shannon/oxy-hero/internal/showcase"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff}
	gridColor       = color.RGBA{R: 0x2e, G: 0x33, B: 0x40, A: 0xff}
	targetColor     = color.RGBA{R: 0xe0, G: 0x6c, B: 0x3c, A: 0xff}
	heroColor       = color.RGBA{R: 0x8f, G: 0xd3, B: 0xff, A: 0xff}
	heroHoverColor  = color.RGBA{R: 0xff, G: 0xf1, B: 0x8a, A: 0xff}
)

// keyBindings maps ebiten keys onto the showcase key codes.
var keyBindings = []struct {
	key  ebiten.Key
	code uint32
}{
	{ebiten.KeyR, common.KeyR},
	{ebiten.KeyZ, common.KeyZ},
	{ebiten.KeySpace, common.KeySpace},
}

const helpText = "R: return home  Z: toggle zoom  Esc: quit"

// game adapts the showcase to ebiten. Update translates polled input into showcase events
// and steps the engine, so the engine runs on ebiten's update goroutine.
type game struct {
	s *showcase.Showcase

	width, height int

	inside       bool
	lastX, lastY int
	dragging     bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// ebiten reports positive y when the wheel rolls away from the user.
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.s.Scroll(float32(-wy))
	}

	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < g.width && y < g.height
	switch {
	case inside && (!g.inside || x != g.lastX || y != g.lastY):
		g.s.MoveCursor(float32(x), float32(y))
	case !inside && g.inside:
		g.s.LeaveWindow()
	}
	g.inside = inside

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && inside {
		if g.dragging && (x != g.lastX || y != g.lastY) {
			g.s.Drag(float32(x-g.lastX), float32(y-g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.s.KeyDown(b.code)
		}
	}

	g.s.Engine().Step(time.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	hovered := g.s.Controller().Hovered()
	for _, seg := range g.s.Segments() {
		clr, width := color.Color(gridColor), float32(1)
		switch seg.Kind {
		case showcase.SegmentTarget:
			clr = targetColor
		case showcase.SegmentHero:
			clr, width = heroColor, 2
			if hovered {
				clr = heroHoverColor
			}
		}
		vector.StrokeLine(screen, seg.From[0], seg.From[1], seg.To[0], seg.To[1], width, clr, true)
	}

	ebitenutil.DebugPrint(screen, g.s.Status()+"\n"+helpText)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.s.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// run starts the ebiten loop and blocks until the window closes or Esc is pressed.
func run(opts showcase.Options, cfg hero.Config) error {
	s, err := showcase.New(cfg, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(opts.FPS))

	log.Printf("[showcase] running %dx%d at %.0f tps", opts.Width, opts.Height, opts.FPS)
	err = ebiten.RunGame(&game{s: s, width: opts.Width, height: opts.Height})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
