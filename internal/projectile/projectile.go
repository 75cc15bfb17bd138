package projectile

import (
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Faction decides who a projectile can hurt.
type Faction int

const (
	FactionEnemy Faction = iota
	FactionPlayer
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	default:
		return "enemy"
	}
}

// FactionOf classifies a game object. Anything that isn't the player shoots
// for the enemy side.
func FactionOf(g *engine.GameObject) Faction {
	if g != nil && g.HasTag(engine.TagPlayer) {
		return FactionPlayer
	}
	return FactionEnemy
}

// Projectile is a bolt in flight. Owner is the object that last fired or
// reflected it.
type Projectile struct {
	ID        uint64
	Owner     *engine.GameObject
	Faction   Faction
	Position  rl.Vector3
	Direction rl.Vector3 // unit, on the ground plane
	Speed     float32
	Damage    float32
	Radius    float32
	// Lifetime counts down; the projectile expires at zero.
	Lifetime float32
	// Friendly is set once the projectile has been reflected.
	Friendly bool

	dead bool
}

// Alive reports whether the projectile is still tracked and not pending removal.
func (p *Projectile) Alive() bool {
	return p != nil && !p.dead
}

// Velocity returns Direction scaled by Speed.
func (p *Projectile) Velocity() rl.Vector3 {
	return rl.Vector3Scale(p.Direction, p.Speed)
}

// Hurts reports whether the projectile damages members of faction f.
func (p *Projectile) Hurts(f Faction) bool {
	return p.Faction != f
}

// flatten projects dir onto the ground plane and normalizes it. A zero
// vector falls back to +X.
func flatten(dir rl.Vector3) rl.Vector3 {
	dir.Y = 0
	if rl.Vector3LengthSqr(dir) < 1e-12 {
		return rl.Vector3{X: 1}
	}
	return rl.Vector3Normalize(dir)
}
