package components

import (
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an axis-aligned solid. Rotation on the owning transform is
// ignored; arena walls and pillars are always axis-aligned.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of the box
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	return rl.Vector3Add(g.Transform.Position, b.Offset)
}

// GetWorldSize returns the box size scaled by the transform, with negative
// scale folded back to positive extents.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	size := b.Size
	if g := b.GetGameObject(); g != nil {
		s := g.Transform.Scale
		size = rl.Vector3{X: size.X * s.X, Y: size.Y * s.Y, Z: size.Z * s.Z}
	}
	return rl.Vector3{X: abs(size.X), Y: abs(size.Y), Z: abs(size.Z)}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
