package sdlwindow

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vkngwrapper/glbase/app"
)

func TestNewIsSingleton(t *testing.T) {
	assert.Same(t, New(), New())
}

func TestCloseFlag(t *testing.T) {
	w := &Window{system: &System{}}
	assert.False(t, w.ShouldClose())
	w.SetShouldClose(true)
	assert.True(t, w.ShouldClose())
}

func TestReportUsesCallback(t *testing.T) {
	s := &System{}
	s.report(errors.New("ignored without a callback"))

	var got error
	s.SetErrorCallback(func(err error) { got = err })
	s.report(errors.New("window destroyed twice"))
	assert.EqualError(t, got, "window destroyed twice")

	s.SetErrorCallback(nil)
	assert.Nil(t, s.onError)
}

func TestImplementsWindow(t *testing.T) {
	var _ app.Window = (*Window)(nil)
}
