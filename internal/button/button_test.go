package button_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomobar/internal/button"
	"pomobar/internal/cycle"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want cycle.Button
	}{
		{"left click toggles pause", 1, cycle.ButtonToggle},
		{"middle click resets", 2, cycle.ButtonReset},
		{"right click skips", 3, cycle.ButtonSkip},
		{"no click", 0, cycle.ButtonNone},
		{"scroll wheel ignored", 4, cycle.ButtonNone},
		{"negative ignored", -1, cycle.ButtonNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, button.Decode(tc.in))
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("BLOCK_BUTTON", "3")
	t.Setenv("POMOBAR_STATE_FILE", "/tmp/pomobar-state.json")

	btn, stateFile := button.FromEnv()

	assert.Equal(t, cycle.ButtonSkip, btn)
	assert.Equal(t, "/tmp/pomobar-state.json", stateFile)
}

func TestFromEnvAbsent(t *testing.T) {
	t.Setenv("BLOCK_BUTTON", "")
	t.Setenv("POMOBAR_STATE_FILE", "")

	btn, stateFile := button.FromEnv()

	assert.Equal(t, cycle.ButtonNone, btn)
	assert.Empty(t, stateFile)
}

func TestFromEnvUnparseable(t *testing.T) {
	t.Setenv("BLOCK_BUTTON", "not-a-number")
	t.Setenv("POMOBAR_STATE_FILE", "/tmp/pomobar-state.json")

	btn, stateFile := button.FromEnv()

	// A garbled click degrades to "no click" without dropping the
	// state file override.
	assert.Equal(t, cycle.ButtonNone, btn)
	assert.Equal(t, "/tmp/pomobar-state.json", stateFile)
}
