package physics

import (
	"testing"

	"reflex3d/internal/components"
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newWall(pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject("Wall")
	g.Tags = []string{engine.TagSolid}
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func newBody(name string, pos rl.Vector3, radius float32) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewSphereCollider(radius))
	return g
}

func TestWorldAddObjectFilesByCollider(t *testing.T) {
	w := NewWorld()
	w.AddObject(newWall(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}))
	w.AddObject(newBody("Enemy", rl.Vector3{}, 0.5))
	w.AddObject(engine.NewGameObject("Marker"))

	// Untagged box is decoration, not a solid.
	deco := engine.NewGameObject("Crate")
	deco.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	w.AddObject(deco)

	if len(w.Statics) != 1 {
		t.Errorf("Expected 1 static, got %d", len(w.Statics))
	}
	if len(w.Bodies) != 1 {
		t.Errorf("Expected 1 body, got %d", len(w.Bodies))
	}
}

func TestWorldRaycastSolidIgnoresBodies(t *testing.T) {
	w := NewWorld()
	w.AddObject(newBody("Enemy", rl.Vector3{X: 2, Y: 0.5}, 0.5))
	wall := newWall(rl.Vector3{X: 6, Y: 0.5}, rl.Vector3{X: 2, Y: 3, Z: 10})
	w.AddObject(wall)

	hit, ok := w.RaycastSolid(rl.Vector3{Y: 0.5}, rl.Vector3{X: 1}, 20)
	if !ok {
		t.Fatal("Expected a solid hit")
	}
	if hit.GameObject != wall {
		t.Errorf("Expected the wall, got %s", hit.GameObject.Name)
	}
	if abs(hit.Distance-5) > 1e-4 {
		t.Errorf("Expected distance 5, got %f", hit.Distance)
	}
}

func TestWorldOverlapSphere(t *testing.T) {
	w := NewWorld()
	near := newBody("Near", rl.Vector3{X: 2.4}, 0.5)
	edge := newBody("Edge", rl.Vector3{X: 2.5}, 0.5)
	far := newBody("Far", rl.Vector3{X: 4}, 0.5)
	w.AddObject(near)
	w.AddObject(edge)
	w.AddObject(far)

	got := w.OverlapSphere(rl.Vector3{}, 2)

	if len(got) != 2 || got[0] != near || got[1] != edge {
		t.Errorf("Expected [Near Edge], got %d objects", len(got))
	}
}

func TestWorldResolveSolids(t *testing.T) {
	w := NewWorld()
	w.AddObject(newWall(rl.Vector3{X: 2, Y: 1.5}, rl.Vector3{X: 2, Y: 3, Z: 10}))
	player := newBody("Player", rl.Vector3{X: 0.8, Y: 0.5}, 0.5)

	w.ResolveSolids(player)

	if abs(player.Transform.Position.X-0.5) > 1e-4 {
		t.Errorf("Expected player pushed to x=0.5, got %f", player.Transform.Position.X)
	}
	if player.Transform.Position.Y != 0.5 {
		t.Errorf("Expected height unchanged, got %f", player.Transform.Position.Y)
	}
}
