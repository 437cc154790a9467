package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLevel(t *testing.T) {
	saved := Logger
	t.Cleanup(func() { Logger = saved })

	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "debug shows everything", level: "debug", wantDebug: true, wantInfo: true},
		{name: "info hides debug", level: "info", wantInfo: true},
		{name: "warn hides info", level: "warn"},
		{name: "unknown falls back to info", level: "loud", wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Init(&buf, tt.level)

			Debug("debug line")
			Info("info line")
			Warn("warn line", "key", "value")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains([]byte(out), []byte("debug line")))
			assert.Equal(t, tt.wantInfo, bytes.Contains([]byte(out), []byte("info line")))
			assert.Contains(t, out, "warn line")
			assert.Contains(t, out, "key=value")
		})
	}
}

func TestWithPrefix(t *testing.T) {
	saved := Logger
	t.Cleanup(func() { Logger = saved })

	var buf bytes.Buffer
	Init(&buf, "info")
	WithPrefix("engine").Info("piped")

	assert.Contains(t, buf.String(), "engine")
	assert.Contains(t, buf.String(), "piped")
}
