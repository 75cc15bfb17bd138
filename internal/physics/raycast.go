package physics

import (
	"math"

	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit is where a ray first meets a solid.
type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Distance   float32
}

// RaycastBox reports how far a unit ray travels before entering box. A ray
// starting inside the box hits at distance 0, so a rush that begins against a
// wall goes nowhere. Rays are usually flat, so an axis the ray does not move
// along only needs origin within the box on that axis.
func RaycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	enter := float32(math.Inf(-1))
	exit := float32(math.Inf(1))
	for axis := range o {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return RaycastHit{}, false
			}
			continue
		}
		t0 := (lo[axis] - o[axis]) / d[axis]
		t1 := (hi[axis] - o[axis]) / d[axis]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		enter = max(enter, t0)
		exit = min(exit, t1)
	}

	if enter > exit || exit < 0 {
		return RaycastHit{}, false
	}
	t := max(enter, 0)
	if t > maxDistance {
		return RaycastHit{}, false
	}
	return RaycastHit{Point: rl.Vector3Add(origin, rl.Vector3Scale(direction, t)), Distance: t}, true
}
