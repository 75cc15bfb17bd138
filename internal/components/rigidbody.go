package components

import (
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody carries the planar velocity integrated by the world's movement
// phase. Kinematic bodies are moved directly by scripts (rush attacks) and
// skip integration.
type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	IsKinematic bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{}
}

// Stop zeroes the horizontal velocity and keeps the vertical component.
func (r *Rigidbody) Stop() {
	r.Velocity.X = 0
	r.Velocity.Z = 0
}

// Integrate advances the owner's position by the current velocity.
func (r *Rigidbody) Integrate(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || r.IsKinematic {
		return
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(r.Velocity, deltaTime))
}
