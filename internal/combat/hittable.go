package combat

import (
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HitKind tags what an overlap query found.
type HitKind int

const (
	HitOther HitKind = iota
	HitEnemy
	HitProjectile
)

func (k HitKind) String() string {
	switch k {
	case HitEnemy:
		return "enemy"
	case HitProjectile:
		return "projectile"
	default:
		return "other"
	}
}

// EnemyTarget is the damage surface of an enemy.
type EnemyTarget interface {
	Alive() bool
	// CanBeHit reports whether the per-enemy hit cooldown has elapsed.
	CanBeHit(now float64) bool
	TakeHit(damage float32) float32
	StartHitCooldown(now float64, cooldown float32)
}

// Hittable is one result of an overlap query. Enemy is set for HitEnemy.
type Hittable struct {
	Kind   HitKind
	Object *engine.GameObject
	Enemy  EnemyTarget
}

// Environment is the slice of the world the attack controller reads and
// acts on.
type Environment interface {
	// Now is the simulation clock in seconds.
	Now() float64
	Overlap(center rl.Vector3, radius float32) []Hittable
	// RaycastSolid returns the distance to the first solid along the ray.
	RaycastSolid(origin, direction rl.Vector3, maxDistance float32) (float32, bool)
	ReflectInArea(center rl.Vector3, radius float32, newOwner *engine.GameObject) int
}

type hitHandler func(a *AttackController, h Hittable, now float64)

var hitHandlers = map[HitKind]hitHandler{
	HitEnemy: (*AttackController).hitEnemy,
	// Projectiles are reflected as an area once per tick, and other
	// objects (props, doors) don't react to attacks.
	HitProjectile: nil,
	HitOther:      nil,
}
