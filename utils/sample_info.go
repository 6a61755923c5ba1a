// Package utils holds what the example programs share: command-line
// handling, backend selection and Host construction.
package utils

import (
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli"
	"github.com/vkngwrapper/glbase/app"
	"github.com/vkngwrapper/glbase/gldriver"
	"github.com/vkngwrapper/glbase/platform/glfwwindow"
	"github.com/vkngwrapper/glbase/platform/sdlwindow"
	"github.com/vkngwrapper/glbase/shader"
)

type SampleInfo struct {
	Options     app.Options
	Backend     string
	GLSLVersion string
}

func newSampleInfo(ctx *cli.Context) (*SampleInfo, error) {
	info := &SampleInfo{
		Options:     app.DefaultOptions(),
		Backend:     ctx.String("backend"),
		GLSLVersion: ctx.String("glsl"),
	}

	if path := ctx.String("config"); path != "" {
		opts, err := app.LoadOptionsFile(path)
		if err != nil {
			return nil, err
		}
		info.Options = opts
	}

	// Explicit flags win over the config file.
	if ctx.IsSet("width") || ctx.String("config") == "" {
		info.Options.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") || ctx.String("config") == "" {
		info.Options.Height = ctx.Int("height")
	}

	if err := info.Options.Validate(); err != nil {
		return nil, err
	}
	if _, err := info.Platform(); err != nil {
		return nil, err
	}
	return info, nil
}

// Platform returns the window system selected with --backend.
func (i *SampleInfo) Platform() (app.WindowSystem, error) {
	switch i.Backend {
	case BackendGLFW:
		return glfwwindow.New(), nil
	case BackendSDL2:
		return sdlwindow.New(), nil
	}
	return nil, errors.Mark(errors.Newf("unknown backend %q", i.Backend), app.ErrInvalidArgument)
}

// NewHost builds a Host for application on the selected backend, loading GL
// entry points through gldriver.
func (i *SampleInfo) NewHost(application app.Application) (*app.Host, error) {
	platform, err := i.Platform()
	if err != nil {
		return nil, err
	}
	return app.New(app.Config{
		Platform: platform,
		LoadGL:   gldriver.Init,
		Options:  i.Options,
	}, application), nil
}

// ShaderBuilder returns a Builder on the live GL context using the selected
// GLSL version.
func (i *SampleInfo) ShaderBuilder() *shader.Builder {
	return shader.New(gldriver.Driver{}, shader.WithVersion(i.GLSLVersion))
}
