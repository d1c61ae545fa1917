package ac4

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	expected := []string{
		"No error",
		"Frame rate fraction is not a power of two",
		"Sequence counter did not increase",
		"Frame data queue is full",
		"A-SPX channel index out of range",
		"Queue depth must be positive",
		"Subband group range exceeds maximum number of subband groups",
		"TSG pointer out of range",
	}

	for i, want := range expected {
		if got := Error(i).Error(); got != want {
			t.Errorf("Error(%d).Error() = %q, want %q", i, got, want)
		}
	}
}

func TestErrorUnknown(t *testing.T) {
	for _, e := range []Error{-1, 8, 100} {
		if got := e.Error(); got != "unknown error" {
			t.Errorf("Error(%d).Error() = %q, want %q", e, got, "unknown error")
		}
	}
}

func TestErrorImplementsError(t *testing.T) {
	var err error = ErrQueueFull
	if !errors.Is(err, ErrQueueFull) {
		t.Error("errors.Is(ErrQueueFull, ErrQueueFull) = false")
	}
}
