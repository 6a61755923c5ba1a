package shader

import (
	"strings"
)

// countingDriver is a fake GL that tracks live objects. Sources containing
// failToken fail to compile; programs fail to link when linkFails is set.
type countingDriver struct {
	next     uint32
	shaders  map[uint32]Stage
	programs map[uint32][]uint32
	sources  map[uint32]string
	compiled map[uint32]bool
	linked   map[uint32]bool

	failToken string
	linkFails bool
	calls     []string
}

func newCountingDriver() *countingDriver {
	return &countingDriver{
		shaders:   map[uint32]Stage{},
		programs:  map[uint32][]uint32{},
		sources:   map[uint32]string{},
		compiled:  map[uint32]bool{},
		linked:    map[uint32]bool{},
		failToken: "garbage",
	}
}

func (d *countingDriver) record(call string) { d.calls = append(d.calls, call) }

func (d *countingDriver) CreateShader(stage Stage) uint32 {
	d.record("CreateShader")
	d.next++
	d.shaders[d.next] = stage
	return d.next
}

func (d *countingDriver) ShaderSource(shader uint32, source string) {
	d.record("ShaderSource")
	d.sources[shader] = source
}

func (d *countingDriver) CompileShader(shader uint32) {
	d.record("CompileShader")
	src := d.sources[shader]
	body := strings.TrimPrefix(src, DefaultVersion)
	d.compiled[shader] = strings.TrimSpace(body) != "" && !strings.Contains(src, d.failToken)
}

func (d *countingDriver) CompileStatus(shader uint32) bool {
	return d.compiled[shader]
}

func (d *countingDriver) ShaderInfoLog(shader uint32) string {
	return "0:1(1): error: syntax error, unexpected IDENTIFIER"
}

func (d *countingDriver) DeleteShader(shader uint32) {
	d.record("DeleteShader")
	delete(d.shaders, shader)
}

func (d *countingDriver) CreateProgram() uint32 {
	d.record("CreateProgram")
	d.next++
	d.programs[d.next] = nil
	return d.next
}

func (d *countingDriver) AttachShader(program, shader uint32) {
	d.record("AttachShader")
	d.programs[program] = append(d.programs[program], shader)
}

func (d *countingDriver) LinkProgram(program uint32) {
	d.record("LinkProgram")
	d.linked[program] = !d.linkFails
}

func (d *countingDriver) LinkStatus(program uint32) bool {
	return d.linked[program]
}

func (d *countingDriver) ProgramInfoLog(program uint32) string {
	return "error: \"color\" not declared as an output from the previous stage"
}

func (d *countingDriver) DeleteProgram(program uint32) {
	d.record("DeleteProgram")
	delete(d.programs, program)
}

func (d *countingDriver) liveShaders() int { return len(d.shaders) }
func (d *countingDriver) livePrograms() int { return len(d.programs) }
