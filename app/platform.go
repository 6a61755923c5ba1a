package app

// ContextHints describes the GL context requested before window creation.
type ContextHints struct {
	Major, Minor int
	Core         bool
	Resizable    bool
}

// WindowConfig is passed to WindowSystem.CreateWindow.
type WindowConfig struct {
	Width, Height int
	Title         string
}

// WindowSystem is a process-wide windowing subsystem such as GLFW or SDL2.
// Every method must be called from the thread that called Host.Run.
type WindowSystem interface {
	Init() error
	Terminate()

	// SetErrorCallback installs the receiver for asynchronous platform
	// errors. A nil callback clears it.
	SetErrorCallback(cb func(error))

	ContextHints(hints ContextHints) error

	// CreateWindow returns the window together with its GL context. A nil
	// window is treated as a failure even without an error.
	CreateWindow(cfg WindowConfig) (Window, error)

	PollEvents()
}

// Window is a native window and its GL context.
type Window interface {
	MakeContextCurrent() error
	SwapInterval(interval int) error

	ShouldClose() bool
	SetShouldClose(value bool)

	SwapBuffers()
	FramebufferSize() (width, height int)

	// ClearCallbacks detaches every input and window callback.
	ClearCallbacks()
	Destroy() error
}
