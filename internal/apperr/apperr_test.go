package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"pomobar/internal/apperr"
)

var errSentinel = &apperr.Error{
	Message: "stage %q duration must be greater than zero, got %v",
}

func TestFmt(t *testing.T) {
	err := errSentinel.Fmt("work", 0)

	want := `stage "work" duration must be greater than zero, got 0`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestFmtMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("startup: %w", errSentinel.Fmt("work", 0))

	if !errors.Is(err, errSentinel) {
		t.Fatal("formatted error should match its sentinel")
	}
}
