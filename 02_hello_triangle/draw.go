package main

import (
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

const vertexStride = 6 * 4

var vertices = []Vertex{
	{Position: mgl32.Vec3{0, 0.6, 0}, Color: mgl32.Vec3{1, 0, 0}},
	{Position: mgl32.Vec3{-0.6, -0.4, 0}, Color: mgl32.Vec3{0, 1, 0}},
	{Position: mgl32.Vec3{0.6, -0.4, 0}, Color: mgl32.Vec3{0, 0, 1}},
}

func (a *HelloTriangleApplication) createVertexBuffer() {
	gl.GenVertexArrays(1, &a.vertexArray)
	gl.BindVertexArray(a.vertexArray)

	gl.GenBuffers(1, &a.vertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.vertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexStride, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)

	gl.BindVertexArray(0)
	a.vertexCount = int32(len(vertices))
}

func (a *HelloTriangleApplication) drawFrame(model mgl32.Mat4) {
	gl.UseProgram(a.program)
	gl.UniformMatrix4fv(a.modelUniform, 1, false, &model[0])

	gl.BindVertexArray(a.vertexArray)
	gl.DrawArrays(gl.TRIANGLES, 0, a.vertexCount)
	gl.BindVertexArray(0)
}

func (a *HelloTriangleApplication) cleanup() {
	if a.vertexBuffer != 0 {
		gl.DeleteBuffers(1, &a.vertexBuffer)
		a.vertexBuffer = 0
	}

	if a.vertexArray != 0 {
		gl.DeleteVertexArrays(1, &a.vertexArray)
		a.vertexArray = 0
	}

	if a.program != 0 {
		gl.DeleteProgram(a.program)
		a.program = 0
	}
}
