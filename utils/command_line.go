package utils

import (
	"github.com/urfave/cli"
	"github.com/vkngwrapper/glbase/app"
	"github.com/vkngwrapper/glbase/log"
)

func init() {
	// -v is taken by the verbosity flag.
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}
}

var flags = []cli.Flag{
	cli.BoolFlag{
		Name:  "v",
		Usage: "enable verbose logging",
	},
	cli.BoolFlag{
		Name:  "vv",
		Usage: "enable even more verbose logging",
	},
	cli.StringFlag{
		Name:  "config, c",
		Usage: "load window options from a TOML file",
	},
	cli.IntFlag{
		Name:  "width",
		Value: app.DefaultWidth,
		Usage: "window width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: app.DefaultHeight,
		Usage: "window height",
	},
	cli.StringFlag{
		Name:  "backend, b",
		Value: DefaultBackend,
		Usage: "window system: glfw or sdl2",
	},
	cli.StringFlag{
		Name:  "glsl",
		Value: DefaultGLSLVersion,
		Usage: "GLSL version directive prepended to every shader",
	},
}

// ProcessCommandLineArgs parses args (including the program name) into a
// SampleInfo. It returns nil without error when the arguments only asked
// for help or the version.
func ProcessCommandLineArgs(name, usage string, args []string) (*SampleInfo, error) {
	var info *SampleInfo

	cliApp := cli.NewApp()
	cliApp.Name = name
	cliApp.Usage = usage
	cliApp.Version = "0.0.1"
	cliApp.Flags = flags
	cliApp.Action = func(ctx *cli.Context) error {
		setupLogging(ctx)

		var err error
		info, err = newSampleInfo(ctx)
		return err
	}

	if err := cliApp.Run(args); err != nil {
		return nil, err
	}
	return info, nil
}

func setupLogging(ctx *cli.Context) {
	if ctx.Bool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.Bool("vv") {
		log.SetLevel(log.Debug)
	}
}
