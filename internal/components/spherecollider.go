package components

import (
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SphereCollider is the hit volume of actors (player, enemies). Combat
// queries treat it as a circle on the ground plane.
type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	if g == nil {
		return s.Offset
	}
	return rl.Vector3Add(g.Transform.Position, s.Offset)
}
