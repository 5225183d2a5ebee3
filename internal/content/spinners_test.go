package content

import (
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/spinner"
)

func TestBuildSpinnersResolvesKnownType(t *testing.T) {
	raw := []RawSpinnerData{{SpinnerType: "movement", Values: []string{"walks", "strides"}, Widths: []int{1, 1}}}
	table, err := buildSpinners(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := table[spinner.Movement]
	if !ok {
		t.Fatal("expected a Movement entry in the table")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 values, got %d", s.Len())
	}
}

func TestBuildSpinnersUnknownTypeErrors(t *testing.T) {
	raw := []RawSpinnerData{{SpinnerType: "not-a-real-type", Values: []string{"x"}}}
	if _, err := buildSpinners(raw); err == nil {
		t.Fatal("expected an error for an unrecognized spinner type")
	}
}
