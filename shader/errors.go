package shader

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrShaderFile    = errors.New("shader: file error")
	ErrShaderCompile = errors.New("shader: compile error")
	ErrProgramLink   = errors.New("shader: link error")
)

// FileError reports a failure to read shader source from storage.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read shader %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

func (e *FileError) Is(target error) bool { return target == ErrShaderFile }

// CompileError carries the driver info log of a stage that failed to compile.
// Path is set when the source was read from a file.
type CompileError struct {
	Stage Stage
	Log   string
	Path  string
}

func (e *CompileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("compile-%s (%s): %s", e.Stage, e.Path, e.Log)
	}
	return fmt.Sprintf("compile-%s: %s", e.Stage, e.Log)
}

func (e *CompileError) Is(target error) bool { return target == ErrShaderCompile }

// LinkError carries the driver info log of a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link: %s", e.Log)
}

func (e *LinkError) Is(target error) bool { return target == ErrProgramLink }
