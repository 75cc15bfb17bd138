package world

import (
	"reflex3d/internal/components"
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerMovement turns the movement stick into the player's planar velocity.
// Input X maps to world X and input Y to world Z.
type PlayerMovement struct {
	engine.BaseComponent
	MoveSpeed float32
	Input     rl.Vector2
}

func NewPlayerMovement(speed float32) *PlayerMovement {
	return &PlayerMovement{MoveSpeed: speed}
}

// Direction is the normalized ground-plane input, or zero.
func (m *PlayerMovement) Direction() rl.Vector3 {
	dir := rl.Vector3{X: m.Input.X, Y: 0, Z: m.Input.Y}
	lenSq := rl.Vector3LengthSqr(dir)
	if lenSq < 1e-6 {
		return rl.Vector3Zero()
	}
	if lenSq > 1 {
		dir = rl.Vector3Normalize(dir)
	}
	return dir
}

// Apply writes the velocity for this tick into the rigidbody and turns the
// player to face where it walks.
func (m *PlayerMovement) Apply(canMove bool, multiplier float32) {
	g := m.GetGameObject()
	rb := engine.GetComponent[*components.Rigidbody](g)
	if g == nil || rb == nil {
		return
	}

	dir := m.Direction()
	if !canMove || (dir.X == 0 && dir.Z == 0) {
		rb.Stop()
		return
	}

	rb.Velocity.X = dir.X * m.MoveSpeed * multiplier
	rb.Velocity.Z = dir.Z * m.MoveSpeed * multiplier
	g.Transform.SetForward(dir)
}

func newPlayer(maxHealth, speed, radius float32) *engine.GameObject {
	g := engine.NewGameObject("Player")
	g.Tags = []string{engine.TagPlayer}
	g.AddComponent(components.NewHealth(maxHealth))
	g.AddComponent(components.NewSphereCollider(radius))
	g.AddComponent(components.NewRigidbody())
	g.AddComponent(NewPlayerMovement(speed))
	g.AddComponent(components.NewMeshRenderer(components.MeshSphere, rl.Lime, rl.Vector3{X: radius, Y: radius, Z: radius}))
	return g
}
