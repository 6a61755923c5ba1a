package main

import (
	"embed"

	"github.com/go-gl/gl/v4.3-core/gl"
)

//go:embed shaders
var shaders embed.FS

func (a *HelloTriangleApplication) createGraphicsPipeline() error {
	program, err := a.info.ShaderBuilder().InitFromFS(shaders, "shaders/triangle.vert", "shaders/triangle.frag")
	if err != nil {
		return err
	}
	a.program = program
	a.modelUniform = gl.GetUniformLocation(program, gl.Str("model\x00"))
	return nil
}
