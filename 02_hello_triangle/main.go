package main

import (
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vkngwrapper/glbase/app"
	"github.com/vkngwrapper/glbase/log"
	"github.com/vkngwrapper/glbase/utils"
)

var logger = log.New("hello_triangle")

func init() {
	runtime.LockOSThread()
}

type HelloTriangleApplication struct {
	info *utils.SampleInfo

	program      uint32
	modelUniform int32
	vertexArray  uint32
	vertexBuffer uint32
	vertexCount  int32
}

func (a *HelloTriangleApplication) Initialize(h *app.Host) error {
	err := a.createGraphicsPipeline()
	if err != nil {
		return err
	}

	a.createVertexBuffer()

	width, height := h.Window().FramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.1, 0.1, 0.12, 1)
	return nil
}

func (a *HelloTriangleApplication) Update(h *app.Host) error {
	// One full turn every four seconds.
	angle := float32(math.Mod(h.Time(), 4.0) * math.Pi / 2.0)
	model := mgl32.HomogRotate3DZ(angle)

	gl.Clear(gl.COLOR_BUFFER_BIT)
	a.drawFrame(model)
	return nil
}

func (a *HelloTriangleApplication) Release(h *app.Host) {
	a.cleanup()
}

func main() {
	info, err := utils.ProcessCommandLineArgs("hello_triangle", "draw a spinning triangle", os.Args)
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}
	if info == nil {
		return
	}

	host, err := info.NewHost(&HelloTriangleApplication{info: info})
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}

	if err := host.Run(); err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}
}
