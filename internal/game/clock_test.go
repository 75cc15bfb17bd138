package game

import "testing"

func TestFixedStepAccumulates(t *testing.T) {
	f := NewFixedStep(0.01, 0.25)

	if n := f.Advance(0.005); n != 0 {
		t.Errorf("Expected 0 steps, got %d", n)
	}
	if n := f.Advance(0.0075); n != 1 {
		t.Errorf("Expected 1 step, got %d", n)
	}
	if a := f.Alpha(); a < 0.24 || a > 0.26 {
		t.Errorf("Expected alpha near 0.25, got %f", a)
	}
}

func TestFixedStepCapsFrame(t *testing.T) {
	f := NewFixedStep(0.125, 0.25)

	if n := f.Advance(5); n != 2 {
		t.Errorf("Expected capped frame to give 2 steps, got %d", n)
	}
}

func TestFixedStepIgnoresNegative(t *testing.T) {
	f := NewFixedStep(0.125, 0.25)
	f.Advance(-1)
	if f.Alpha() != 0 {
		t.Errorf("Expected empty accumulator, got %f", f.Alpha())
	}
	f.Advance(0.0625)
	f.Reset()
	if f.Alpha() != 0 {
		t.Errorf("Expected reset accumulator, got %f", f.Alpha())
	}
}
