package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TopDown follows a target from a fixed offset, looking down at it.
type TopDown struct {
	Position rl.Vector3
	Target   rl.Vector3
	// Offset from the target to the camera.
	Offset rl.Vector3
	// FollowSpeed is the exponential catch-up rate (1/s); 0 snaps.
	FollowSpeed float32
	Fovy        float32
}

func New(target rl.Vector3) *TopDown {
	c := &TopDown{
		Offset:      rl.Vector3{X: 0, Y: 18, Z: 10},
		FollowSpeed: 8.0,
		Fovy:        45,
	}
	c.Snap(target)
	return c
}

// Snap jumps straight to target, e.g. after a room load.
func (c *TopDown) Snap(target rl.Vector3) {
	c.Target = target
	c.Position = rl.Vector3Add(target, c.Offset)
}

func (c *TopDown) Update(target rl.Vector3, deltaTime float32) {
	if c.FollowSpeed <= 0 {
		c.Snap(target)
		return
	}
	// Frame-rate independent smoothing
	t := 1 - float32(math.Exp(float64(-c.FollowSpeed*deltaTime)))
	c.Target = rl.Vector3Lerp(c.Target, target, t)
	c.Position = rl.Vector3Add(c.Target, c.Offset)
}

func (c *TopDown) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
