package gldriver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimLog(t *testing.T) {
	assert.Equal(t, "0:1(1): error: syntax error", trimLog([]byte("0:1(1): error: syntax error\n\x00")))
	assert.Equal(t, "", trimLog([]byte{0}))
	assert.Equal(t, "a\nb", trimLog([]byte("a\nb\r\n\x00garbage")))
}
