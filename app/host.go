// Package app drives the life cycle of a single-window OpenGL application:
// startup, a poll/update/swap main loop and ordered teardown. Application
// code plugs in through the Application interface.
package app

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/vkngwrapper/glbase/log"
)

var logger = log.New("app")

// Config wires a Host to its platform.
type Config struct {
	// Platform is the windowing subsystem. Required.
	Platform WindowSystem

	// LoadGL loads GPU entry points for the current context, e.g.
	// gldriver.Init. Nil skips loading.
	LoadGL func() error

	// Options left zero means DefaultOptions. Otherwise empty Title, Width
	// and Height take their defaults, an unset context version becomes the
	// default 3.2 core context, and SwapInterval is used as given.
	Options Options
}

// Host owns the window, its GL context and the main loop. A Host may be run
// again after Run returns, but never concurrently.
type Host struct {
	platform    WindowSystem
	loadGL      func() error
	opts        Options
	application Application

	state         State
	inRun         bool
	running       bool
	width, height int
	window        Window

	acquired bool

	clock *frameClock
	runID uuid.UUID
}

func New(cfg Config, application Application) *Host {
	return &Host{
		platform:    cfg.Platform,
		loadGL:      cfg.LoadGL,
		opts:        cfg.Options.withDefaults(),
		application: application,
		clock:       newFrameClock(),
	}
}

// Run starts the application with the configured size, 512x512 by default.
func (h *Host) Run() error {
	return h.RunSize(h.opts.Width, h.opts.Height)
}

// RunSize starts the application with a window of width x height and blocks
// until the main loop ends and the window is torn down.
//
// Startup failures are returned after releasing whatever was acquired.
// Errors from Initialize are marked ErrInitialization; errors from Update end
// the loop and are returned wrapped. Teardown runs exactly once even if a
// hook panics.
func (h *Host) RunSize(width, height int) error {
	if err := validateSize(width, height); err != nil {
		return err
	}
	if h.platform == nil {
		return errors.Mark(errors.New("no window system configured"), ErrInvalidArgument)
	}
	if h.application == nil {
		return errors.Mark(errors.New("no application configured"), ErrInvalidArgument)
	}
	opts := h.opts
	opts.Width, opts.Height = width, height
	if err := opts.Validate(); err != nil {
		return err
	}
	if h.inRun {
		return errors.Mark(errors.New("host is already running"), ErrInvalidArgument)
	}

	// GL contexts and most windowing event queues are bound to one thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	h.inRun = true
	defer func() { h.inRun = false }()

	h.width, h.height = width, height
	h.runID = uuid.New()
	logger.Infof("run %s: %dx%d %q", h.runID, width, height, h.opts.Title)

	if err := h.startup(); err != nil {
		h.shutdown()
		h.state = StateFaulted
		logger.Errorf("run %s: %v", h.runID, err)
		return err
	}
	defer h.shutdown()
	if r, ok := h.application.(Releaser); ok {
		defer h.teardown("release application", func() error {
			r.Release(h)
			return nil
		})
	}

	h.state = StateReady
	if err := h.application.Initialize(h); err != nil {
		return errors.Mark(errors.Wrap(err, "initialize"), ErrInitialization)
	}

	return h.loop()
}

func (h *Host) startup() error {
	h.state = StateStarting

	if err := acquireSystem(h.platform, h.onPlatformError); err != nil {
		return startupError(ErrWindowSystem, err, "unable to initialize window system")
	}
	h.acquired = true
	logger.Debug("window system initialized")

	hints := ContextHints{
		Major: h.opts.ContextMajor,
		Minor: h.opts.ContextMinor,
		Core:  h.opts.CoreProfile,
	}
	if err := h.platform.ContextHints(hints); err != nil {
		return startupError(ErrWindowSystem, err, "context hints rejected")
	}

	win, err := h.platform.CreateWindow(WindowConfig{
		Width:  h.width,
		Height: h.height,
		Title:  h.opts.Title,
	})
	if err != nil || win == nil {
		return startupError(ErrWindowCreate, err, "failed to create the window")
	}
	h.window = win
	h.running = true
	logger.Debugf("window created, GL %d.%d", hints.Major, hints.Minor)

	if err := win.MakeContextCurrent(); err != nil {
		return startupError(ErrContext, err, "could not make the context current")
	}

	if err := win.SwapInterval(h.opts.SwapInterval); err != nil {
		return startupError(ErrContext, err, "could not set the swap interval")
	}

	if h.loadGL != nil {
		if err := h.loadGL(); err != nil {
			return startupError(ErrContext, err, "could not load GL entry points")
		}
	}
	return nil
}

func (h *Host) loop() error {
	h.state = StateLooping
	h.clock.reset()

	for h.running {
		h.platform.PollEvents()

		// The rest of the iteration still runs so the frame in flight completes.
		if h.window.ShouldClose() {
			h.running = false
		}

		h.clock.tick()
		if err := h.application.Update(h); err != nil {
			h.running = false
			return errors.Wrap(err, "update")
		}
		h.clock.frames++

		h.window.SwapBuffers()
	}
	return nil
}

// Shutdown releases the window and the window system. It is a no-op when
// nothing is held. From inside a hook it only requests the loop to stop; Run
// tears down once the current frame completes.
func (h *Host) Shutdown() {
	if h.inRun && h.state != StateStarting {
		h.Close()
		return
	}
	h.shutdown()
}

func (h *Host) shutdown() {
	if h.window == nil && !h.acquired {
		return
	}
	h.state = StateStopping
	h.running = false

	if win := h.window; win != nil {
		h.window = nil
		h.teardown("detach callbacks", func() error {
			win.ClearCallbacks()
			return nil
		})
		h.teardown("destroy window", win.Destroy)
	}

	if h.acquired {
		h.acquired = false
		h.teardown("terminate window system", func() error {
			releaseSystem(h.platform)
			return nil
		})
	}

	h.state = StateTerminated
	logger.Debugf("run %s: terminated after %d frames", h.runID, h.clock.frames)
}

// teardown runs one shutdown step; failures are logged so later steps still run.
func (h *Host) teardown(step string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warningf("shutdown: %s panicked: %v", step, r)
		}
	}()
	if err := fn(); err != nil {
		logger.Warningf("shutdown: %s: %v", step, err)
	}
}

func (h *Host) onPlatformError(err error) {
	logger.Errorf("window system: %v", err)
}

// Close asks the main loop to stop after the current frame, the same way the
// window's close button does.
func (h *Host) Close() {
	if h.window != nil {
		h.window.SetShouldClose(true)
	}
}

// Running reports whether the main loop will run another iteration.
func (h *Host) Running() bool { return h.running }

func (h *Host) State() State { return h.state }

// Size returns the window dimensions captured at Run.
func (h *Host) Size() (width, height int) { return h.width, h.height }

// Window is valid between startup and shutdown, nil otherwise.
func (h *Host) Window() Window { return h.window }

func (h *Host) Options() Options { return h.opts }

// Time is the number of seconds since the main loop started, sampled at the
// start of the current frame.
func (h *Host) Time() float64 { return h.clock.elapsed }

// DeltaTime is the number of seconds since the previous frame.
func (h *Host) DeltaTime() float64 { return h.clock.delta }

// Frame is the number of completed Update calls.
func (h *Host) Frame() uint64 { return h.clock.frames }

func (h *Host) RunID() uuid.UUID { return h.runID }
