// Package button decodes the status bar click forwarded through the
// environment.
package button

import (
	"github.com/kelseyhightower/envconfig"

	"pomobar/internal/cycle"
)

// StateFile is declared first so it survives a parse failure on the
// button value: envconfig populates fields in order and only the
// integer decode can fail.
type env struct {
	StateFile   string `envconfig:"POMOBAR_STATE_FILE"`
	BlockButton int    `envconfig:"BLOCK_BUTTON"`
}

// FromEnv returns the decoded click, if any, and the state file
// override. An absent or unparseable button value degrades to
// "no click".
func FromEnv() (cycle.Button, string) {
	var e env

	if err := envconfig.Process("", &e); err != nil {
		return cycle.ButtonNone, e.StateFile
	}

	return Decode(e.BlockButton), e.StateFile
}

// Decode maps an X11 button number to a cycle action: left toggles
// the pause, middle resets the stage, right skips to the next stage.
func Decode(n int) cycle.Button {
	switch n {
	case 1:
		return cycle.ButtonToggle
	case 2:
		return cycle.ButtonReset
	case 3:
		return cycle.ButtonSkip
	default:
		return cycle.ButtonNone
	}
}
