// Package glfwwindow implements app.WindowSystem on GLFW 3.3.
//
// go-gl reports most GLFW errors by panicking; this package turns those
// panics into returned errors or forwards them to the error callback.
package glfwwindow

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/vkngwrapper/glbase/app"
)

// System is the GLFW window system. GLFW is process-global, so there is a
// single System.
type System struct {
	onError func(error)
}

var system = &System{}

func New() *System { return system }

var (
	_ app.WindowSystem = (*System)(nil)
	_ app.Window       = (*Window)(nil)
)

func (s *System) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "unable to initialize GLFW")
	}
	return nil
}

func (s *System) Terminate() {
	glfw.Terminate()
}

func (s *System) SetErrorCallback(cb func(error)) {
	s.onError = cb
}

func (s *System) ContextHints(hints app.ContextHints) (err error) {
	defer recoverInto(&err)

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, hints.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, hints.Minor)
	if hints.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if hints.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	return nil
}

func (s *System) CreateWindow(cfg app.WindowConfig) (app.Window, error) {
	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not create GLFW window")
	}
	if w == nil {
		return nil, nil
	}
	return &Window{system: s, window: w}, nil
}

func (s *System) PollEvents() {
	defer s.recoverToCallback()
	glfw.PollEvents()
}

func (s *System) recoverToCallback() {
	r := recover()
	if r == nil {
		return
	}
	if s.onError != nil {
		s.onError(asError(r))
		return
	}
	panic(r)
}

// Window wraps a *glfw.Window and its context.
type Window struct {
	system *System
	window *glfw.Window
}

// Native exposes the GLFW window for input callbacks.
func (w *Window) Native() *glfw.Window { return w.window }

func (w *Window) MakeContextCurrent() (err error) {
	defer recoverInto(&err)
	w.window.MakeContextCurrent()
	return nil
}

func (w *Window) SwapInterval(interval int) (err error) {
	defer recoverInto(&err)
	glfw.SwapInterval(interval)
	return nil
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

func (w *Window) SwapBuffers() {
	defer w.system.recoverToCallback()
	w.window.SwapBuffers()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *Window) ClearCallbacks() {
	w.window.SetPosCallback(nil)
	w.window.SetSizeCallback(nil)
	w.window.SetFramebufferSizeCallback(nil)
	w.window.SetCloseCallback(nil)
	w.window.SetRefreshCallback(nil)
	w.window.SetFocusCallback(nil)
	w.window.SetIconifyCallback(nil)
	w.window.SetKeyCallback(nil)
	w.window.SetCharCallback(nil)
	w.window.SetMouseButtonCallback(nil)
	w.window.SetCursorPosCallback(nil)
	w.window.SetCursorEnterCallback(nil)
	w.window.SetScrollCallback(nil)
	w.window.SetDropCallback(nil)
}

func (w *Window) Destroy() (err error) {
	defer recoverInto(&err)
	w.window.Destroy()
	return nil
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = asError(r)
	}
}

func asError(r interface{}) error {
	if err, ok := r.(error); ok {
		return errors.Wrap(err, "glfw")
	}
	return errors.New(fmt.Sprint("glfw: ", r))
}
