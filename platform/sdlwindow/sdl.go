// Package sdlwindow implements app.WindowSystem on SDL2 with an OpenGL
// context.
package sdlwindow

import (
	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/glbase/app"
)

// System is the SDL2 video subsystem. SDL is process-global, so there is a
// single System.
type System struct {
	onError func(error)
	hints   app.ContextHints
	window  *Window
}

var system = &System{}

func New() *System { return system }

var (
	_ app.WindowSystem = (*System)(nil)
	_ app.Window       = (*Window)(nil)
)

func (s *System) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "unable to initialize SDL")
	}
	return nil
}

func (s *System) Terminate() {
	sdl.Quit()
}

func (s *System) SetErrorCallback(cb func(error)) {
	s.onError = cb
}

func (s *System) ContextHints(hints app.ContextHints) error {
	s.hints = hints

	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, hints.Major); err != nil {
		return err
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, hints.Minor); err != nil {
		return err
	}
	if hints.Core {
		if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE); err != nil {
			return err
		}
		if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG); err != nil {
			return err
		}
	}
	return sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
}

func (s *System) CreateWindow(cfg app.WindowConfig) (app.Window, error) {
	var flags uint32 = sdl.WINDOW_SHOWN | sdl.WINDOW_OPENGL
	if s.hints.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		return nil, errors.Wrap(err, "could not create SDL window")
	}

	context, err := window.GLCreateContext()
	if err != nil {
		_ = window.Destroy()
		return nil, errors.Wrap(err, "could not create GL context")
	}

	id, err := window.GetID()
	if err != nil {
		sdl.GLDeleteContext(context)
		_ = window.Destroy()
		return nil, err
	}

	s.window = &Window{system: s, window: window, context: context, id: id}
	return s.window, nil
}

// PollEvents drains the SDL queue; quit and window-close events raise the
// close flag of the window.
func (s *System) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if s.window == nil {
			continue
		}
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.window.shouldClose = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE && e.WindowID == s.window.id {
				s.window.shouldClose = true
			}
		}
	}
}

func (s *System) report(err error) {
	if s.onError != nil {
		s.onError(err)
	}
}

// Window is an SDL window with its GL context.
type Window struct {
	system  *System
	window  *sdl.Window
	context sdl.GLContext
	id      uint32

	shouldClose bool
}

// Native exposes the SDL window.
func (w *Window) Native() *sdl.Window { return w.window }

func (w *Window) MakeContextCurrent() error {
	return w.window.GLMakeCurrent(w.context)
}

func (w *Window) SwapInterval(interval int) error {
	return sdl.GLSetSwapInterval(interval)
}

func (w *Window) ShouldClose() bool { return w.shouldClose }

func (w *Window) SetShouldClose(value bool) { w.shouldClose = value }

func (w *Window) SwapBuffers() {
	w.window.GLSwap()
}

func (w *Window) FramebufferSize() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

// ClearCallbacks drops queued events so nothing is delivered for this window
// once teardown starts.
func (w *Window) ClearCallbacks() {
	sdl.FlushEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}

func (w *Window) Destroy() error {
	if w.system.window == w {
		w.system.window = nil
	}
	sdl.GLDeleteContext(w.context)
	if err := w.window.Destroy(); err != nil {
		w.system.report(err)
		return err
	}
	return nil
}
