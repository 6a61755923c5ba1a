// Package shader compiles GLSL sources into linked GL programs.
//
// Every GPU object the Builder allocates is released on every failure path;
// on success only the returned program survives and the caller owns it.
package shader

import (
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/glbase/log"
	"golang.org/x/sync/errgroup"
)

// DefaultVersion is the GLSL version directive prepended to every stage.
const DefaultVersion = "#version 430\n"

var logger = log.New("shader")

var errNotUTF8 = errors.New("source is not valid UTF-8")

type Option func(*Builder)

// WithVersion replaces the version directive, e.g. WithVersion("410 core")
// emits "#version 410 core\n".
func WithVersion(version string) Option {
	return func(b *Builder) {
		b.directive = "#version " + version + "\n"
	}
}

// Builder compiles and links shader programs through a Driver.
type Builder struct {
	driver    Driver
	directive string
}

func New(driver Driver, opts ...Option) *Builder {
	b := &Builder{
		driver:    driver,
		directive: DefaultVersion,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Source returns the text submitted to the driver for a stage: the version
// directive followed by source, unchanged.
func (b *Builder) Source(source string) string {
	return b.directive + source
}

// InitShader compiles a single stage and returns its shader handle.
func (b *Builder) InitShader(source string, stage Stage) (uint32, error) {
	ref := b.driver.CreateShader(stage)
	if ref == 0 {
		return 0, &CompileError{Stage: stage, Log: "driver could not allocate a shader object"}
	}

	b.driver.ShaderSource(ref, b.Source(source))
	b.driver.CompileShader(ref)

	if !b.driver.CompileStatus(ref) {
		infoLog := b.driver.ShaderInfoLog(ref)
		b.driver.DeleteShader(ref)
		logger.Debugf("%s shader failed to compile: %s", stage, infoLog)
		return 0, &CompileError{Stage: stage, Log: infoLog}
	}

	return ref, nil
}

// InitProgram compiles both stages and links them into a program. The stage
// shaders never outlive the call.
func (b *Builder) InitProgram(vertexSource, fragmentSource string) (uint32, error) {
	stages := &guard{}
	defer stages.release()

	vertexRef, err := b.InitShader(vertexSource, Vertex)
	if err != nil {
		return 0, err
	}
	stages.add(func() { b.driver.DeleteShader(vertexRef) })

	fragmentRef, err := b.InitShader(fragmentSource, Fragment)
	if err != nil {
		return 0, err
	}
	stages.add(func() { b.driver.DeleteShader(fragmentRef) })

	programRef := b.driver.CreateProgram()
	if programRef == 0 {
		return 0, &LinkError{Log: "driver could not allocate a program object"}
	}
	program := &guard{}
	program.add(func() { b.driver.DeleteProgram(programRef) })
	defer program.release()

	b.driver.AttachShader(programRef, vertexRef)
	b.driver.AttachShader(programRef, fragmentRef)
	b.driver.LinkProgram(programRef)

	if !b.driver.LinkStatus(programRef) {
		infoLog := b.driver.ProgramInfoLog(programRef)
		logger.Debugf("program failed to link: %s", infoLog)
		return 0, &LinkError{Log: infoLog}
	}

	program.dismiss()
	logger.Debugf("linked program %d", programRef)
	return programRef, nil
}

// InitFromFiles reads both sources from the filesystem and links them. No
// GPU call is made unless both files were read.
func (b *Builder) InitFromFiles(vertexPath, fragmentPath string) (uint32, error) {
	return b.initFromReader(ReadFile, vertexPath, fragmentPath)
}

// InitFromFS is InitFromFiles over an fs.FS, typically an embed.FS.
func (b *Builder) InitFromFS(fsys fs.FS, vertexPath, fragmentPath string) (uint32, error) {
	return b.initFromReader(func(path string) (string, error) {
		return ReadFileFS(fsys, path)
	}, vertexPath, fragmentPath)
}

func (b *Builder) initFromReader(read func(string) (string, error), vertexPath, fragmentPath string) (uint32, error) {
	var vertexSource, fragmentSource string
	var vertexErr, fragmentErr error

	var group errgroup.Group
	group.Go(func() error {
		vertexSource, vertexErr = read(vertexPath)
		return vertexErr
	})
	group.Go(func() error {
		fragmentSource, fragmentErr = read(fragmentPath)
		return fragmentErr
	})
	// The vertex failure is reported first regardless of which read finished first.
	if group.Wait() != nil {
		return 0, errors.CombineErrors(vertexErr, fragmentErr)
	}

	program, err := b.InitProgram(vertexSource, fragmentSource)
	var compileErr *CompileError
	if errors.As(err, &compileErr) {
		switch compileErr.Stage {
		case Vertex:
			compileErr.Path = vertexPath
		case Fragment:
			compileErr.Path = fragmentPath
		}
	}
	return program, err
}

// ReadFile returns the whole file at path as UTF-8 text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	return decode(path, data, err)
}

// ReadFileFS returns the whole file at path in fsys as UTF-8 text.
func ReadFileFS(fsys fs.FS, path string) (string, error) {
	data, err := fs.ReadFile(fsys, path)
	return decode(path, data, err)
}

func decode(path string, data []byte, err error) (string, error) {
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &FileError{Path: path, Err: errNotUTF8}
	}
	return string(data), nil
}
