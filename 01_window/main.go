package main

import (
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/vkngwrapper/glbase/app"
	"github.com/vkngwrapper/glbase/log"
	"github.com/vkngwrapper/glbase/utils"
)

var logger = log.New("window")

func init() {
	// GLFW and Cocoa want the main thread.
	runtime.LockOSThread()
}

type ClearScreenApplication struct{}

func (a *ClearScreenApplication) Initialize(h *app.Host) error {
	width, height := h.Window().FramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

func (a *ClearScreenApplication) Update(h *app.Host) error {
	t := h.Time()
	gl.ClearColor(
		float32(0.5+0.5*math.Sin(t)),
		float32(0.5+0.5*math.Sin(t+2*math.Pi/3)),
		float32(0.5+0.5*math.Sin(t+4*math.Pi/3)),
		1,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

func main() {
	info, err := utils.ProcessCommandLineArgs("window", "open a window and cycle its clear color", os.Args)
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}
	if info == nil {
		return
	}

	host, err := info.NewHost(&ClearScreenApplication{})
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}

	if err := host.Run(); err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}
}
