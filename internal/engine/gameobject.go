package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tags used to classify objects in queries.
const (
	TagPlayer = "Player"
	TagEnemy  = "Enemy"
	TagSolid  = "Solid"
	TagDoor   = "Door"
	TagFloor  = "Floor"
	TagSpawn  = "Spawn"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees, Y is yaw
	Scale    rl.Vector3
}

// Forward returns the unit vector on the ground plane the yaw points at.
// Yaw 0 faces +Z.
func (t Transform) Forward() rl.Vector3 {
	yaw := float64(t.Rotation.Y) * math.Pi / 180
	return rl.Vector3{X: float32(math.Sin(yaw)), Y: 0, Z: float32(math.Cos(yaw))}
}

// SetForward points the yaw along dir projected onto the ground plane.
// A zero direction leaves the rotation unchanged.
func (t *Transform) SetForward(dir rl.Vector3) {
	if dir.X == 0 && dir.Z == 0 {
		return
	}
	t.Rotation.Y = float32(math.Atan2(float64(dir.X), float64(dir.Z))) * rl.Rad2deg
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent returns the first component implementing interface T.
// Unlike GetComponent, T does not have to be a Component itself.
func FindComponent[T any](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Destroyed reports whether Destroy was called on the object's scene for it.
func (g *GameObject) Destroyed() bool {
	return g.destroyed
}

