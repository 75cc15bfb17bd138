package physics

import (
	"reflex3d/internal/components"
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World indexes the colliders of a room for geometry queries. It does no
// dynamics: movement is integrated by the simulation and only pushed out of
// solids here.
type World struct {
	Statics []*engine.GameObject // box colliders tagged Solid (walls, pillars)
	Bodies  []*engine.GameObject // sphere colliders (player, enemies)
}

func NewWorld() *World {
	return &World{
		Statics: make([]*engine.GameObject, 0),
		Bodies:  make([]*engine.GameObject, 0),
	}
}

// AddObject files g by collider. Objects without a usable collider are ignored.
func (w *World) AddObject(g *engine.GameObject) {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil && g.HasTag(engine.TagSolid) {
		w.Statics = append(w.Statics, g)
		return
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		w.Bodies = append(w.Bodies, g)
	}
}

func (w *World) RemoveObject(g *engine.GameObject) {
	for i, obj := range w.Bodies {
		if obj == g {
			w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
			return
		}
	}
	for i, obj := range w.Statics {
		if obj == g {
			w.Statics = append(w.Statics[:i], w.Statics[i+1:]...)
			return
		}
	}
}

func (w *World) Clear() {
	w.Statics = w.Statics[:0]
	w.Bodies = w.Bodies[:0]
}

// BoxBounds returns the world-space AABB of a box collider.
func BoxBounds(box *components.BoxCollider) AABB {
	return NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
}

// RaycastSolid returns the closest hit against solid statics.
func (w *World) RaycastSolid(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closest RaycastHit
	closest.Distance = maxDistance
	hit := false

	for _, obj := range w.Statics {
		if obj.Destroyed() {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](obj)
		if box == nil {
			continue
		}
		if h, ok := RaycastBox(origin, direction, BoxBounds(box), maxDistance); ok && h.Distance < closest.Distance {
			closest = h
			closest.GameObject = obj
			hit = true
		}
	}
	return closest, hit
}

// OverlapSphere returns every live body whose collider touches the query
// sphere (center distance <= radius + collider radius), in insertion order.
func (w *World) OverlapSphere(center rl.Vector3, radius float32) []*engine.GameObject {
	var result []*engine.GameObject
	for _, obj := range w.Bodies {
		if obj.Destroyed() || !obj.Active {
			continue
		}
		sphere := engine.GetComponent[*components.SphereCollider](obj)
		if sphere == nil {
			continue
		}
		if rl.Vector3Distance(center, sphere.GetCenter()) <= radius+sphere.Radius {
			result = append(result, obj)
		}
	}
	return result
}

// ResolveSolids pushes g out of every solid it overlaps, using the AABB of
// its sphere collider. Returns the total correction applied.
func (w *World) ResolveSolids(g *engine.GameObject) rl.Vector3 {
	sphere := engine.GetComponent[*components.SphereCollider](g)
	if sphere == nil {
		return rl.Vector3Zero()
	}
	total := rl.Vector3Zero()
	d := sphere.Radius * 2

	for _, obj := range w.Statics {
		if obj.Destroyed() || !obj.Active {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](obj)
		if box == nil {
			continue
		}
		bounds := NewAABBFromCenter(sphere.GetCenter(), rl.Vector3{X: d, Y: d, Z: d})
		pushOut := bounds.ResolveXZ(BoxBounds(box))
		if pushOut.X == 0 && pushOut.Z == 0 {
			continue
		}
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		total = rl.Vector3Add(total, pushOut)
	}
	return total
}
