// Package cycle implements the pomodoro cycle state machine. Each
// invocation of the program advances the cycle exactly one tick:
// load the persisted state, apply the wall clock and any click input,
// persist the result, and render one status line.
package cycle

import (
	"time"

	"pomobar/internal/stage"
	"pomobar/internal/theme"
	"pomobar/internal/timeutil"
)

// Button is a decoded click input.
type Button int

const (
	ButtonNone Button = iota
	ButtonToggle
	ButtonReset
	ButtonSkip
)

// State is the sole durable record, overwritten whole on every
// invocation. Started marks the epoch second at which the current
// stage's clock reads zero while running. SinceStarted, when present,
// freezes the elapsed seconds and marks the timer paused.
type State struct {
	Started      int64  `json:"started"`
	Stage        int    `json:"stage"`
	SinceStarted *int64 `json:"since_started,omitempty"`
}

// NewState returns a fresh state: stage 0, running, clock at zero.
func NewState(now time.Time) State {
	return State{Started: now.Unix()}
}

// Paused reports whether the timer is paused.
func (s State) Paused() bool {
	return s.SinceStarted != nil
}

// Stopped reports the display-only sub-state of paused where the
// frozen elapsed time sits at or past the stage boundary.
func (s State) Stopped() bool {
	return s.SinceStarted != nil && *s.SinceStarted <= 0
}

// Notification is the side effect of a boundary tick.
type Notification struct {
	Title string
	Body  string
}

// Output is what a single invocation renders. On a boundary tick only
// Notification is set; the text line is suppressed for that tick.
type Output struct {
	Text         string
	ShortText    string
	Color        string
	Notification *Notification
}

// Boundary reports whether this tick crossed a stage boundary.
func (o Output) Boundary() bool {
	return o.Notification != nil
}

const notifyTitle = "Pomodoro"

// Advance computes one tick of the cycle and returns the new state
// alongside the rendered output. It is a pure function of its inputs;
// all I/O stays with the caller.
func Advance(
	st State,
	seq stage.Sequence,
	pal theme.Palette,
	now time.Time,
	btn Button,
) (State, Output) {
	def := seq.At(st.Stage)

	elapsed := now.Unix() - st.Started
	if st.Paused() {
		elapsed = *st.SinceStarted
	}

	// The boundary-tick timestamp adjustment can leave the stage clock
	// up to one second ahead of the wall clock.
	if elapsed < -1 {
		elapsed = -1
	}

	// The -1 bias makes the displayed countdown read 00:00 exactly at
	// expiry rather than one tick early or late.
	remaining := def.Seconds() - 1 - elapsed

	if remaining <= 0 {
		st.Stage++
		// One poll interval passes before the new stage is first
		// rendered; starting its clock a second in the future keeps
		// the countdown aligned.
		st.Started = now.Unix() + 1
		st.SinceStarted = nil

		next := seq.At(st.Stage)

		// At most one state change per tick: a click arriving on a
		// boundary tick is dropped, not coalesced with the advance.
		return st, Output{
			Notification: &Notification{
				Title: notifyTitle,
				Body:  next.Icon + " " + next.Message,
			},
		}
	}

	switch btn {
	case ButtonToggle:
		if st.Paused() {
			st.Started = now.Unix() - *st.SinceStarted
			st.SinceStarted = nil
		} else {
			frozen := now.Unix() - st.Started
			st.SinceStarted = &frozen
		}
	case ButtonReset:
		st.Started = now.Unix()
		st.SinceStarted = nil
	case ButtonSkip:
		st.Started = now.Unix()
		st.SinceStarted = nil
		st.Stage++
	case ButtonNone:
	}

	// remaining is deliberately not recomputed after a click; its
	// effect shows up on the next invocation.
	color := def.Color

	switch {
	case st.Stopped():
		color = pal.Alert
	case st.Paused():
		color = pal.Warning
	}

	clock := timeutil.FormatClock(remaining)

	return st, Output{
		Text:      def.Icon + " " + clock,
		ShortText: clock,
		Color:     color,
	}
}
