package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-hero/engine/profiler"
	"github.com/Carmen-Shannon/oxy-hero/engine/scheduler"
	"github.com/Carmen-Shannon/oxy-hero/engine/window"
)

// FrameCallback is called once per frame on the frame thread.
//
// Parameters:
//   - now: the frame instant (equal to Scheduler().Now() during the call)
//   - dt: seconds since the previous frame, 0 on the first frame
type FrameCallback func(now time.Time, dt float32)

// engine implements the Engine interface.
// All frame work (posted events, timers, frame callbacks) runs serially on one frame thread:
// the caller of Step, or the single frame worker while Run is active.
type engine struct {
	mu *sync.Mutex

	running     bool
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window    window.Window
	scheduler scheduler.Scheduler
	pool      worker.DynamicWorkerPool

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration

	inbox []func()

	nextCallbackID int
	frameCallbacks map[int]FrameCallback
	lastFrame      time.Time
	frameCount     uint64
}

// Engine drives the showcase frame loop.
// It owns the frame clock (a scheduler.Scheduler) and marshals events from input goroutines
// onto the frame thread.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scheduler returns the timer facility advanced by every Step.
	//
	// Returns:
	//   - scheduler.Scheduler: the frame clock
	Scheduler() scheduler.Scheduler

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// OnFrame registers a callback run every frame after timers have fired.
	// Callbacks run in registration order.
	//
	// Parameters:
	//   - callback: the per-frame function
	//
	// Returns:
	//   - func(): removes the callback; safe to call more than once
	OnFrame(callback FrameCallback) func()

	// Post queues fn to run on the frame thread before the next frame's timers.
	// Safe to call from any goroutine. Posted functions run in submission order.
	//
	// Parameters:
	//   - fn: the function to run
	Post(fn func())

	// Step runs one frame at instant now: posted events, due timers, frame callbacks,
	// then the profiler. Use Step directly when the host owns the loop (ebiten, tests);
	// do not mix it with Run.
	//
	// Parameters:
	//   - now: the frame instant
	Step(now time.Time)

	// Frames returns the number of frames stepped so far.
	Frames() uint64

	// Run starts ticking frames at the configured tick rate on the frame worker and blocks.
	// With a window it pumps window messages until the window closes; headless it blocks until Quit.
	Run()

	// Quit signals the engine to stop. Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Done returns a channel closed once Quit has been called.
	Done() <-chan struct{}
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Defaults: 60 ticks per second, a scheduler starting at time.Now(), profiling disabled, headless.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:             &sync.Mutex{},
		quitChannel:    make(chan struct{}),
		engineTickRate: time.Second / 60,
		frameCallbacks: make(map[int]FrameCallback),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.scheduler == nil {
		e.scheduler = scheduler.NewScheduler()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(
			profiler.WithGauge("Timers", e.scheduler.Pending),
			profiler.WithGauge("Queued", e.queued),
		)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scheduler() scheduler.Scheduler {
	return e.scheduler
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) OnFrame(callback FrameCallback) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextCallbackID
	e.nextCallbackID++
	e.frameCallbacks[id] = callback
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.frameCallbacks, id)
	}
}

func (e *engine) Post(fn func()) {
	e.mu.Lock()
	e.inbox = append(e.inbox, fn)
	pool := e.pool
	if !e.running {
		pool = nil
	}
	e.mu.Unlock()

	// The drain task is submitted unlocked: a full queue blocks until the frame worker,
	// which needs the lock, makes progress.
	if pool != nil {
		pool.SubmitTask(worker.Task{
			Payload: "event",
			Do: func() (any, error) {
				e.guard(e.drainInbox)
				return nil, nil
			},
		})
	}
}

func (e *engine) Step(now time.Time) {
	e.drainInbox()
	e.scheduler.Advance(now)

	e.mu.Lock()
	dt := float32(0)
	if !e.lastFrame.IsZero() {
		dt = float32(now.Sub(e.lastFrame).Seconds())
	}
	e.lastFrame = now
	e.frameCount++
	callbacks := make([]FrameCallback, 0, len(e.frameCallbacks))
	for id := 0; id < e.nextCallbackID; id++ {
		if cb, ok := e.frameCallbacks[id]; ok {
			callbacks = append(callbacks, cb)
		}
	}
	profiling := e.profilingEnabled
	e.mu.Unlock()

	for _, cb := range callbacks {
		cb(now, dt)
	}

	if profiling {
		e.profiler.Tick(now)
	}
}

func (e *engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameCount
}

func (e *engine) Run() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.pool = worker.NewDynamicWorkerPool(1, 256, time.Second)
	e.mu.Unlock()

	go e.handleTicks()

	if e.window != nil {
		e.window.ProcessMessages()
		e.Quit()
	}
	<-e.quitChannel
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		pool := e.pool
		e.pool = nil
		e.mu.Unlock()
		if pool != nil {
			pool.Stop()
		}
		close(e.quitChannel)
	})
}

func (e *engine) Done() <-chan struct{} {
	return e.quitChannel
}

// queued returns the number of posted events not yet drained.
func (e *engine) queued() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.inbox)
}

// drainInbox runs every posted function in submission order.
func (e *engine) drainInbox() {
	e.mu.Lock()
	pending := e.inbox
	e.inbox = nil
	e.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// handleTicks submits one frame task per tick to the frame worker until quit.
func (e *engine) handleTicks() {
	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	for {
		select {
		case <-e.quitChannel:
			return
		case now := <-ticker.C:
			e.mu.Lock()
			pool := e.pool
			e.mu.Unlock()
			if pool == nil {
				return
			}
			pool.SubmitTask(worker.Task{
				Payload: "frame",
				Do: func() (any, error) {
					e.guard(func() { e.Step(now) })
					return nil, nil
				},
			})
		}
	}
}

// guard runs fn and converts a panic into a logged shutdown so a faulty frame does not crash
// the process from inside a worker goroutine.
func (e *engine) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[engine] frame task recovered from panic: %v", r)
			go e.Quit()
		}
	}()
	fn()
}
