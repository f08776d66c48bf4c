package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_String(t *testing.T) {
	tests := []struct {
		cat      Category
		expected string
	}{
		{General, "general"},
		{Draw, "draw"},
		{Touch, "touch"},
		{Verbose, "verbose"},
		{Perf, "perf"},
		{Category(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cat.String())
		})
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Infof("hello %d", 1)
	Warnf("careful")
	Errorf("broken: %s", "disk")

	out := buf.String()
	assert.Contains(t, out, "[INFO] hello 1")
	assert.Contains(t, out, "[WARN] careful")
	assert.Contains(t, out, "[ERROR] broken: disk")
}

func TestDebugf_Gating(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer Configure(Flags{General: true})

	Configure(Flags{General: true, Touch: false})
	Debugf(Touch, "miss")
	assert.Empty(t, buf.String())

	Debugf(General, "switch")
	assert.Contains(t, buf.String(), "[DEBUG] switch")

	Configure(Flags{Touch: true})
	assert.True(t, Enabled(Touch))
	assert.False(t, Enabled(General))
	assert.False(t, Enabled(Category(99)))
}
