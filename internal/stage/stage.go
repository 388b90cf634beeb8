// Package stage defines the stages of the pomodoro cycle
package stage

import (
	"time"

	"pomobar/internal/apperr"
)

var (
	errEmptySequence = &apperr.Error{
		Message: "stage sequence must contain at least one stage",
	}

	errNonPositiveDuration = &apperr.Error{
		Message: "stage %q duration must be greater than zero, got %v",
	}
)

// Definition describes a single stage of the cycle. Definitions are
// fixed at startup and never mutated afterwards.
type Definition struct {
	Name     string
	Message  string
	Icon     string
	Color    string
	Duration time.Duration
}

// Seconds returns the stage duration in whole seconds.
func (d Definition) Seconds() int64 {
	return int64(d.Duration / time.Second)
}

// Sequence is the fixed, ordered, cyclic list of stage definitions.
type Sequence struct {
	defs []Definition
}

// NewSequence validates the given definitions and returns a Sequence.
// A non-positive duration is a configuration defect and fails startup.
func NewSequence(defs []Definition) (Sequence, error) {
	if len(defs) == 0 {
		return Sequence{}, errEmptySequence
	}

	for _, d := range defs {
		if d.Duration <= 0 {
			return Sequence{}, errNonPositiveDuration.Fmt(d.Name, d.Duration)
		}
	}

	return Sequence{defs: defs}, nil
}

// At returns the definition at the given index. It is total over all
// integers: the index wraps modulo the sequence length.
func (s Sequence) At(i int) Definition {
	n := len(s.defs)

	i %= n
	if i < 0 {
		i += n
	}

	return s.defs[i]
}

// Len reports the number of stages in one full cycle.
func (s Sequence) Len() int {
	return len(s.defs)
}
