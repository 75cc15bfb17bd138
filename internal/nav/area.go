// Package nav answers walkability queries for spawning. The arena floor is
// a rectangle with axis-aligned obstacles cut out of it.
package nav

import (
	"math"

	"reflex3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// edgeEpsilon keeps snapped points strictly outside an obstacle.
const edgeEpsilon = 1e-3

type Area struct {
	Bounds    physics.AABB
	Obstacles []physics.AABB
	// Margin is the clearance kept from walls and obstacles.
	Margin float32
	FloorY float32
}

func NewArea(bounds physics.AABB, margin float32) *Area {
	return &Area{Bounds: bounds, Margin: margin, FloorY: bounds.Min.Y}
}

func (a *Area) AddObstacle(box physics.AABB) {
	a.Obstacles = append(a.Obstacles, box)
}

func (a *Area) Clear() {
	a.Obstacles = a.Obstacles[:0]
}

func (a *Area) inner() physics.AABB {
	return a.Bounds.Expand(-a.Margin)
}

// Walkable reports whether p is on the floor and clear of obstacles.
func (a *Area) Walkable(p rl.Vector3) bool {
	if !a.inner().ContainsXZ(p) {
		return false
	}
	for _, o := range a.Obstacles {
		if o.Expand(a.Margin).ContainsXZ(p) {
			return false
		}
	}
	return true
}

// SamplePosition finds the walkable point nearest to p within maxDistance
// on the ground plane. The result sits at floor height.
func (a *Area) SamplePosition(p rl.Vector3, maxDistance float32) (rl.Vector3, bool) {
	inner := a.inner()
	if inner.Min.X > inner.Max.X || inner.Min.Z > inner.Max.Z {
		return rl.Vector3{}, false
	}

	q := rl.Vector3{
		X: clamp(p.X, inner.Min.X, inner.Max.X),
		Y: a.FloorY,
		Z: clamp(p.Z, inner.Min.Z, inner.Max.Z),
	}

	// Snapping out of one obstacle can land inside a neighbour.
	for i := 0; i <= len(a.Obstacles); i++ {
		moved := false
		for _, o := range a.Obstacles {
			e := o.Expand(a.Margin)
			if e.ContainsXZ(q) {
				q = snapOut(q, e)
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	if !a.Walkable(q) {
		return rl.Vector3{}, false
	}
	dx, dz := q.X-p.X, q.Z-p.Z
	if float32(math.Sqrt(float64(dx*dx+dz*dz))) > maxDistance {
		return rl.Vector3{}, false
	}
	return q, true
}

// snapOut moves q to the nearest side of box on the ground plane.
func snapOut(q rl.Vector3, box physics.AABB) rl.Vector3 {
	left := q.X - box.Min.X
	right := box.Max.X - q.X
	back := q.Z - box.Min.Z
	front := box.Max.Z - q.Z

	min := left
	out := rl.Vector3{X: box.Min.X - edgeEpsilon, Y: q.Y, Z: q.Z}
	if right < min {
		min = right
		out = rl.Vector3{X: box.Max.X + edgeEpsilon, Y: q.Y, Z: q.Z}
	}
	if back < min {
		min = back
		out = rl.Vector3{X: q.X, Y: q.Y, Z: box.Min.Z - edgeEpsilon}
	}
	if front < min {
		out = rl.Vector3{X: q.X, Y: q.Y, Z: box.Max.Z + edgeEpsilon}
	}
	return out
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
