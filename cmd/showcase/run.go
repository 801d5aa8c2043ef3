package main

import (
	"log"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/Carmen-Shannon/oxy-hero/engine"
	"github.com/Carmen-Shannon/oxy-hero/engine/hero"
	"github.com/Carmen-Shannon/oxy-hero/engine/window"
	"github.com/Carmen-Shannon/oxy-hero/internal/showcase"
)

// run opens the GLFW window, wires its input callbacks into the showcase and blocks until
// the window closes. Callbacks fire on the main thread and are posted to the frame worker.
func run(opts showcase.Options, cfg hero.Config) error {
	win := window.NewWindow(
		window.WithTitle(opts.WindowTitle()),
		window.WithWidth(opts.Width),
		window.WithHeight(opts.Height),
	)

	// The framebuffer can be larger than the requested size on high-DPI displays.
	opts.Width = common.Coalesce(win.Width(), opts.Width)
	opts.Height = common.Coalesce(win.Height(), opts.Height)
	s, err := showcase.New(cfg, opts, engine.WithWindow(win))
	if err != nil {
		win.Close()
		return err
	}

	win.SetMouseMoveCallback(s.MoveCursor)
	win.SetCursorEnterCallback(func(entered bool) {
		if !entered {
			s.LeaveWindow()
		}
	})
	win.SetScrollCallback(s.Scroll)
	win.SetDragCallback(s.Drag)
	win.SetKeyDownCallback(s.KeyDown)
	win.SetResizeCallback(s.Resize)

	title := ""
	win.SetUpdateCallback(func() {
		if status := s.Status(); status != title {
			title = status
			win.SetTitle(status)
		}
	})

	log.Printf("[showcase] running %dx%d at %.0f fps", opts.Width, opts.Height, opts.FPS)
	s.Engine().Run()
	s.Close()
	return win.Close()
}
