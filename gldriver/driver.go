// Package gldriver binds the shader Builder and the application host to the
// OpenGL 4.3 core API through go-gl.
package gldriver

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/vkngwrapper/glbase/log"
	"github.com/vkngwrapper/glbase/shader"
)

var logger = log.New("gl")

// Init loads GL entry points for the context current on the calling thread.
// It is meant to be passed as app.Config.LoadGL.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "could not init opengl")
	}
	logger.Infof("OpenGL %s (%s, %s)",
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
	)
	return nil
}

// Driver implements shader.Driver on the current GL context.
type Driver struct{}

var _ shader.Driver = Driver{}

func glStage(stage shader.Stage) uint32 {
	switch stage {
	case shader.Vertex:
		return gl.VERTEX_SHADER
	case shader.Fragment:
		return gl.FRAGMENT_SHADER
	}
	return 0
}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	kind := glStage(stage)
	if kind == 0 {
		return 0
	}
	return gl.CreateShader(kind)
}

func (Driver) ShaderSource(ref uint32, source string) {
	length := int32(len(source))
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(ref, 1, csources, &length)
	free()
}

func (Driver) CompileShader(ref uint32) {
	gl.CompileShader(ref)
}

func (Driver) CompileStatus(ref uint32) bool {
	var status int32
	gl.GetShaderiv(ref, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (Driver) ShaderInfoLog(ref uint32) string {
	var logLength int32
	gl.GetShaderiv(ref, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	infoLog := make([]byte, logLength)
	gl.GetShaderInfoLog(ref, logLength, nil, &infoLog[0])
	return trimLog(infoLog)
}

func (Driver) DeleteShader(ref uint32) {
	gl.DeleteShader(ref)
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) AttachShader(program, ref uint32) {
	gl.AttachShader(program, ref)
}

func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Driver) LinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	infoLog := make([]byte, logLength)
	gl.GetProgramInfoLog(program, logLength, nil, &infoLog[0])
	return trimLog(infoLog)
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}
