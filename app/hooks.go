package app

// Application supplies the behaviour the Host drives. Initialize runs once
// after the context is ready; Update runs once per frame. Both run on the
// thread that called Run with the GL context current.
type Application interface {
	Initialize(h *Host) error
	Update(h *Host) error
}

// Releaser is implemented by applications that own GL objects. Release runs
// once Initialize has been called, before teardown, with the context still
// current.
type Releaser interface {
	Release(h *Host)
}

// Hooks adapts two plain functions and an opaque user state to Application.
// A nil function is a no-op.
type Hooks struct {
	State    any
	OnInit   func(h *Host, state any) error
	OnUpdate func(h *Host, state any) error
}

func (k Hooks) Initialize(h *Host) error {
	if k.OnInit == nil {
		return nil
	}
	return k.OnInit(h, k.State)
}

func (k Hooks) Update(h *Host) error {
	if k.OnUpdate == nil {
		return nil
	}
	return k.OnUpdate(h, k.State)
}
