package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stdout)
		SetLevel(Notice)
	}()

	logger := New("logtest")

	SetLevel(Warning)
	logger.Info("hidden message")
	logger.Warning("visible message")

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "visible message")
	assert.Contains(t, out, "[logtest]")
}

func TestSetSinkKeepsLevel(t *testing.T) {
	SetLevel(Debug)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	New("logtest").Debugf("frame %d", 3)
	assert.Contains(t, buf.String(), "frame 3")
}

func TestSetLevelIgnoresUnknown(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(Error)
	defer func() {
		SetSink(os.Stdout)
		SetLevel(Notice)
	}()

	SetLevel(Level(42))

	logger := New("logtest")
	logger.Warning("still filtered")
	logger.Error("shown")
	assert.NotContains(t, buf.String(), "still filtered")
	assert.Contains(t, buf.String(), "shown")
}
