package app

import (
	"github.com/cockroachdb/errors"
)

// stubSystem records every windowing call in order. closeAfter > 0 makes the
// window report a close request once that many polls have happened.
type stubSystem struct {
	calls []string

	initErr   error
	hintErr   error
	createErr error
	nilWindow bool

	closeAfter int
	polls      int

	initCount      int
	terminateCount int
	errorCallback  func(error)

	window *stubWindow
	hints  ContextHints
	config WindowConfig
}

func (s *stubSystem) Init() error {
	s.calls = append(s.calls, "Init")
	s.initCount++
	return s.initErr
}

func (s *stubSystem) Terminate() {
	s.calls = append(s.calls, "Terminate")
	s.terminateCount++
}

func (s *stubSystem) SetErrorCallback(cb func(error)) {
	if cb == nil {
		s.calls = append(s.calls, "ClearErrorCallback")
	} else {
		s.calls = append(s.calls, "SetErrorCallback")
	}
	s.errorCallback = cb
}

func (s *stubSystem) ContextHints(hints ContextHints) error {
	s.calls = append(s.calls, "ContextHints")
	s.hints = hints
	return s.hintErr
}

func (s *stubSystem) CreateWindow(cfg WindowConfig) (Window, error) {
	s.calls = append(s.calls, "CreateWindow")
	s.config = cfg
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.nilWindow {
		return nil, nil
	}
	s.window = &stubWindow{system: s}
	return s.window, nil
}

func (s *stubSystem) PollEvents() {
	s.calls = append(s.calls, "PollEvents")
	s.polls++
	if s.closeAfter > 0 && s.polls >= s.closeAfter && s.window != nil {
		s.window.shouldClose = true
	}
}

type stubWindow struct {
	system *stubSystem

	shouldClose bool
	interval    int

	currentErr  error
	intervalErr error
	destroyErr  error
	clearPanics bool

	swaps        int
	clearCount   int
	destroyCount int
}

func (w *stubWindow) record(call string) { w.system.calls = append(w.system.calls, call) }

func (w *stubWindow) MakeContextCurrent() error {
	w.record("MakeContextCurrent")
	return w.currentErr
}

func (w *stubWindow) SwapInterval(interval int) error {
	w.record("SwapInterval")
	w.interval = interval
	return w.intervalErr
}

func (w *stubWindow) ShouldClose() bool {
	return w.shouldClose
}

func (w *stubWindow) SetShouldClose(value bool) {
	w.shouldClose = value
}

func (w *stubWindow) SwapBuffers() {
	w.record("SwapBuffers")
	w.swaps++
}

func (w *stubWindow) FramebufferSize() (int, int) {
	return w.system.config.Width, w.system.config.Height
}

func (w *stubWindow) ClearCallbacks() {
	w.record("ClearCallbacks")
	w.clearCount++
	if w.clearPanics {
		panic("callbacks already freed")
	}
}

func (w *stubWindow) Destroy() error {
	w.record("Destroy")
	w.destroyCount++
	return w.destroyErr
}

// counter is an Application that counts hook calls.
type counter struct {
	inits   int
	updates int

	initErr   error
	updateErr error
	failAt    int
	onUpdate  func(h *Host)
}

func (c *counter) Initialize(h *Host) error {
	c.inits++
	return c.initErr
}

func (c *counter) Update(h *Host) error {
	c.updates++
	if c.onUpdate != nil {
		c.onUpdate(h)
	}
	if c.failAt > 0 && c.updates == c.failAt {
		return c.updateErr
	}
	return nil
}

var errBoom = errors.New("boom")
