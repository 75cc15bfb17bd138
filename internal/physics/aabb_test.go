package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAABBIntersects(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	b := NewAABBFromCenter(rl.Vector3{X: 1.5}, rl.Vector3{X: 2, Y: 2, Z: 2})
	c := NewAABBFromCenter(rl.Vector3{X: 5}, rl.Vector3{X: 2, Y: 2, Z: 2})

	if !a.Intersects(b) {
		t.Error("Expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Error("Expected a and c not to intersect")
	}
}

func TestAABBResolveXZIgnoresHeight(t *testing.T) {
	// Short actor against a tall wall; the shallowest overlap is on Y.
	actor := NewAABBFromCenter(rl.Vector3{X: 0, Y: 0.1, Z: 0}, rl.Vector3{X: 1, Y: 0.2, Z: 1})
	wall := NewAABBFromCenter(rl.Vector3{X: 0.8, Y: 1.5}, rl.Vector3{X: 1, Y: 3, Z: 10})

	push := actor.ResolveXZ(wall)

	if push.Y != 0 {
		t.Errorf("Expected no vertical push, got %+v", push)
	}
	if push.X >= 0 {
		t.Errorf("Expected push toward -X, got %+v", push)
	}
}

func TestRaycastBox(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 5}, rl.Vector3{X: 2, Y: 2, Z: 2})

	hit, ok := RaycastBox(rl.Vector3{}, rl.Vector3{X: 1}, box, 100)
	if !ok {
		t.Fatal("Expected ray to hit box")
	}
	if abs(hit.Distance-4) > 1e-5 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if hit.Point.X != 4 {
		t.Errorf("Expected entry point at x=4, got %+v", hit.Point)
	}

	if _, ok := RaycastBox(rl.Vector3{}, rl.Vector3{X: 1}, box, 3); ok {
		t.Error("Expected miss beyond max distance")
	}
	if _, ok := RaycastBox(rl.Vector3{}, rl.Vector3{X: -1}, box, 100); ok {
		t.Error("Expected miss when pointing away")
	}
}

func TestRaycastBoxFlatRay(t *testing.T) {
	wall := NewAABBFromCenter(rl.Vector3{X: 5, Y: 1.5}, rl.Vector3{X: 2, Y: 3, Z: 2})

	if _, ok := RaycastBox(rl.Vector3{Y: 0.5}, rl.Vector3{X: 1}, wall, 100); !ok {
		t.Error("Expected flat ray at wall height to hit")
	}
	if _, ok := RaycastBox(rl.Vector3{Y: 4}, rl.Vector3{X: 1}, wall, 100); ok {
		t.Error("Expected flat ray above the wall to miss")
	}
	if _, ok := RaycastBox(rl.Vector3{Y: 0.5, Z: 3}, rl.Vector3{X: 1}, wall, 100); ok {
		t.Error("Expected flat ray beside the wall to miss")
	}
}

func TestRaycastBoxFromInside(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	hit, ok := RaycastBox(rl.Vector3{}, rl.Vector3{Z: 1}, box, 10)
	if !ok {
		t.Fatal("Expected a hit from inside the box")
	}
	if hit.Distance != 0 {
		t.Errorf("Expected distance 0, got %f", hit.Distance)
	}
}
