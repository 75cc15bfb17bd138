package components

import (
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshCylinder
	MeshPlane
)

// ParseMeshType maps scene file mesh names. Unknown names draw as cubes.
func ParseMeshType(name string) MeshType {
	switch name {
	case "sphere":
		return MeshSphere
	case "cylinder":
		return MeshCylinder
	case "plane":
		return MeshPlane
	default:
		return MeshCube
	}
}

// MeshRenderer draws a primitive at the owner's position. Size is the full
// extent for cubes and planes; X is the radius for spheres and cylinders.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	m.DrawTinted(m.Color)
}

// DrawTinted draws with a substitute color, e.g. a hit flash.
func (m *MeshRenderer) DrawTinted(color rl.Color) {
	g := m.GetGameObject()
	if g == nil || !g.Active || g.Destroyed() {
		return
	}

	pos := g.Transform.Position

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, m.Size, color)
		rl.DrawCubeWiresV(pos, m.Size, rl.Fade(rl.Black, 0.3))
	case MeshSphere:
		rl.DrawSphere(pos, m.Size.X, color)
	case MeshCylinder:
		base := rl.Vector3{X: pos.X, Y: pos.Y - m.Size.Y/2, Z: pos.Z}
		rl.DrawCylinder(base, m.Size.X, m.Size.X, m.Size.Y, 16, color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, color)
	}
}
