package log

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOutput, oldLevel, oldNoColor := Output, Current, color.NoColor
	Output, Current, color.NoColor = &buf, level, true
	t.Cleanup(func() {
		Output, Current, color.NoColor = oldOutput, oldLevel, oldNoColor
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, level)
	assert.Equal(t, "debug", level.String())

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LevelWarn)
	Infof("hidden %d", 1)
	Debugf("hidden %d", 2)
	Warnf("shown %d", 3)
	assert.Equal(t, "[WARNING] shown 3\n", buf.String())
}

func TestDebugIndent(t *testing.T) {
	buf := capture(t, LevelDebug)
	Debugf("a")
	Enter()
	Debugf("b")
	Leave()
	Leave()
	Debugf("c")
	assert.Equal(t, "a\n  b\nc\n", buf.String())
}
