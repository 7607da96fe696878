package sim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScript_StepHoldLookup(t *testing.T) {
	path := writeScript(t, `
version: 1
keyframes:
  - t: 0s
    throttle: 0.5
  - t: 5s
    throttle: 0.7
    roll: 0.2
    switches: [1]
  - t: 10s
    disconnected: true
`)

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, s.Duration)

	rc := s.At(0)
	assert.True(t, rc.Connected)
	assert.InDelta(t, 0.5, rc.Throttle, 1e-12)
	assert.Zero(t, rc.Roll)

	// Values hold until the next keyframe.
	rc = s.At(4999 * time.Millisecond)
	assert.InDelta(t, 0.5, rc.Throttle, 1e-12)

	rc = s.At(5 * time.Second)
	assert.InDelta(t, 0.7, rc.Throttle, 1e-12)
	assert.InDelta(t, 0.2, rc.Roll, 1e-12)
	assert.Equal(t, uint(1), rc.Switches[0])

	rc = s.At(12 * time.Second)
	assert.False(t, rc.Connected)
}

func TestLoadScript_BeforeFirstKeyframeLinkIsDown(t *testing.T) {
	path := writeScript(t, `
keyframes:
  - t: 2s
    throttle: 0.4
`)
	s, err := LoadScript(path)
	require.NoError(t, err)

	rc := s.At(1 * time.Second)
	assert.False(t, rc.Connected)

	rc = s.At(2 * time.Second)
	assert.True(t, rc.Connected)
}

func TestLoadScript_ExplicitDurationWins(t *testing.T) {
	path := writeScript(t, `
duration: 30s
keyframes:
  - t: 0s
`)
	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, s.Duration)
}

func TestLoadScript_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no keyframes", "version: 1\n"},
		{"unsupported version", "version: 2\nkeyframes:\n  - t: 0s\n"},
		{"unsorted keyframes", "keyframes:\n  - t: 5s\n  - t: 1s\n"},
		{"negative t", "keyframes:\n  - t: -1s\n"},
		{"roll out of range", "keyframes:\n  - t: 0s\n    roll: 1.5\n"},
		{"throttle out of range", "keyframes:\n  - t: 0s\n    throttle: -0.1\n"},
		{"too many switches", "keyframes:\n  - t: 0s\n    switches: [0,0,0,0,0,0,0,0,0]\n"},
		{"bad yaml", "keyframes: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadScript(writeScript(t, tc.body))
			assert.Error(t, err)
		})
	}
}
