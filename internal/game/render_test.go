package game

import "testing"

func TestFuseBlinkSpeedsUp(t *testing.T) {
	cases := []struct {
		fuse, fuseTime float32
		want           float64
	}{
		{1.2, 1.2, 4},
		{0.6, 1.2, 10},
		{0, 1.2, 16},
		{-0.1, 1.2, 16},
		{1, 0, 16},
	}
	for _, c := range cases {
		if got := fuseBlinkHz(c.fuse, c.fuseTime); got < c.want-1e-4 || got > c.want+1e-4 {
			t.Errorf("Expected %.1fHz for fuse %.2f/%.2f, got %f", c.want, c.fuse, c.fuseTime, got)
		}
	}
}

func TestBlinkHalfDuty(t *testing.T) {
	if !blink(0.1, 1) {
		t.Error("Expected on in the first half of the period")
	}
	if blink(0.6, 1) {
		t.Error("Expected off in the second half of the period")
	}
}
