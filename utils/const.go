package utils

const (
	BackendGLFW = "glfw"
	BackendSDL2 = "sdl2"

	DefaultBackend     = BackendGLFW
	DefaultGLSLVersion = "430"
)
