package main

import (
	"embed"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vkngwrapper/glbase/app"
	"github.com/vkngwrapper/glbase/log"
	"github.com/vkngwrapper/glbase/utils"
)

var logger = log.New("obj_model")

//go:embed shaders
var shaders embed.FS

func init() {
	runtime.LockOSThread()
}

type ModelApplication struct {
	info  *utils.SampleInfo
	model *Model

	program               uint32
	modelUniform          int32
	viewProjectionUniform int32
	lightUniform          int32
	colorUniform          int32

	vertexArray  uint32
	vertexBuffer uint32
}

func (a *ModelApplication) Initialize(h *app.Host) error {
	var err error
	a.model, err = LoadModel("meshes/cube.obj", "meshes/cube.mtl")
	if err != nil {
		return err
	}
	logger.Infof("loaded %d vertices", len(a.model.Vertices))

	a.program, err = a.info.ShaderBuilder().InitFromFS(shaders, "shaders/model.vert", "shaders/model.frag")
	if err != nil {
		return err
	}
	a.modelUniform = gl.GetUniformLocation(a.program, gl.Str("model\x00"))
	a.viewProjectionUniform = gl.GetUniformLocation(a.program, gl.Str("viewProjection\x00"))
	a.lightUniform = gl.GetUniformLocation(a.program, gl.Str("lightDirection\x00"))
	a.colorUniform = gl.GetUniformLocation(a.program, gl.Str("baseColor\x00"))

	a.createVertexBuffer()

	width, height := h.Window().FramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.05, 0.05, 0.08, 1)
	return nil
}

func (a *ModelApplication) Update(h *app.Host) error {
	width, height := h.Window().FramebufferSize()
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}

	projection := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 10)
	view := mgl32.LookAtV(mgl32.Vec3{2, 1.5, 2}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	viewProjection := projection.Mul4(view)

	t := float32(h.Time())
	model := mgl32.HomogRotate3DY(t).Mul4(mgl32.HomogRotate3DX(t * 0.5))
	light := mgl32.Vec3{-0.4, -1, -0.6}.Normalize()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(a.program)
	gl.UniformMatrix4fv(a.modelUniform, 1, false, &model[0])
	gl.UniformMatrix4fv(a.viewProjectionUniform, 1, false, &viewProjection[0])
	gl.Uniform3fv(a.lightUniform, 1, &light[0])
	gl.Uniform3fv(a.colorUniform, 1, &a.model.Color[0])

	gl.BindVertexArray(a.vertexArray)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(a.model.Vertices)))
	gl.BindVertexArray(0)
	return nil
}

func (a *ModelApplication) Release(h *app.Host) {
	if a.vertexBuffer != 0 {
		gl.DeleteBuffers(1, &a.vertexBuffer)
	}
	if a.vertexArray != 0 {
		gl.DeleteVertexArrays(1, &a.vertexArray)
	}
	if a.program != 0 {
		gl.DeleteProgram(a.program)
	}
}

func (a *ModelApplication) createVertexBuffer() {
	const stride = 6 * 4

	gl.GenVertexArrays(1, &a.vertexArray)
	gl.BindVertexArray(a.vertexArray)

	gl.GenBuffers(1, &a.vertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.vertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(a.model.Vertices)*stride, gl.Ptr(a.model.Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)
}

func main() {
	info, err := utils.ProcessCommandLineArgs("obj_model", "render a lit obj model", os.Args)
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}
	if info == nil {
		return
	}

	host, err := info.NewHost(&ModelApplication{info: info})
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}

	if err := host.Run(); err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}
}
