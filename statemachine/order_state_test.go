package statemachine

import (
	"errors"
	"testing"

	"tastekart/models"
)

func TestRecognized(t *testing.T) {
	for _, s := range AllStatuses {
		if !Recognized(s) {
			t.Errorf("Recognized(%q) = false, want true", s)
		}
	}
	for _, s := range []models.OrderStatus{"", "shipped", "DELIVERED"} {
		if Recognized(s) {
			t.Errorf("Recognized(%q) = true, want false", s)
		}
	}
}

func TestCanTransitionOpenTable(t *testing.T) {
	// The machine is permissive: every recognized pair is allowed,
	// including out of the conventionally terminal states.
	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			if err := CanTransition(from, to); err != nil {
				t.Errorf("CanTransition(%q, %q) = %v, want nil", from, to, err)
			}
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	if err := CanTransition(models.StatusPending, "shipped"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("error = %v, want ErrUnknownStatus", err)
	}
	if err := CanTransition("bogus", models.StatusPending); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("error = %v, want ErrUnknownStatus", err)
	}
}

func TestNextStatuses(t *testing.T) {
	nexts := NextStatuses(models.StatusValidating)
	if len(nexts) != len(AllStatuses)-1 {
		t.Fatalf("NextStatuses returned %d statuses, want %d", len(nexts), len(AllStatuses)-1)
	}
	for _, s := range nexts {
		if s == models.StatusValidating {
			t.Errorf("NextStatuses should not include the current status")
		}
	}
}
