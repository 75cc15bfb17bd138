package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewSnapsToTarget(t *testing.T) {
	target := rl.Vector3{X: 2, Y: 0, Z: 3}
	c := New(target)

	want := rl.Vector3Add(target, c.Offset)
	if c.Position != want {
		t.Errorf("Expected position %v, got %v", want, c.Position)
	}
	if c.GetRaylibCamera().Target != target {
		t.Errorf("Expected camera target %v, got %v", target, c.GetRaylibCamera().Target)
	}
}

func TestUpdateMovesTowardTarget(t *testing.T) {
	c := New(rl.Vector3{})
	c.Update(rl.Vector3{X: 10}, 0.1)

	if c.Target.X <= 0 || c.Target.X >= 10 {
		t.Errorf("Expected target partway to 10, got %f", c.Target.X)
	}
	if c.Position.X != c.Target.X {
		t.Errorf("Expected position to keep the offset, got %f vs %f", c.Position.X, c.Target.X)
	}
}

func TestZeroFollowSpeedSnaps(t *testing.T) {
	c := New(rl.Vector3{})
	c.FollowSpeed = 0
	c.Update(rl.Vector3{Z: 5}, 0.016)

	if c.Target.Z != 5 {
		t.Errorf("Expected snap to 5, got %f", c.Target.Z)
	}
}
