package enemies

import (
	"fmt"

	"reflex3d/internal/components"
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type EnemyType int

const (
	EnemyBomb EnemyType = iota
	EnemyTurret
)

func (t EnemyType) String() string {
	switch t {
	case EnemyBomb:
		return "bomb"
	case EnemyTurret:
		return "turret"
	default:
		return fmt.Sprintf("enemy(%d)", int(t))
	}
}

// ParseEnemyType maps a spawner.types name to its type.
func ParseEnemyType(name string) (EnemyType, error) {
	switch name {
	case "bomb":
		return EnemyBomb, nil
	case "turret":
		return EnemyTurret, nil
	}
	return 0, fmt.Errorf("unknown enemy type %q", name)
}

// AllTypes lists the types the spawner picks from.
func AllTypes() []EnemyType {
	return []EnemyType{EnemyBomb, EnemyTurret}
}

// Target is what enemy AI knows about the player each tick.
type Target struct {
	Position rl.Vector3
	Velocity rl.Vector3
}

// Brain is implemented by enemy behaviours driven in the AI phase.
type Brain interface {
	Think(deltaTime float32, target Target)
}

// Enemy marks a game object as hostile and tracks its hit cooldown. Health
// lives on the same object.
type Enemy struct {
	engine.BaseComponent
	Type EnemyType

	hitUntil float64
	expired  bool
}

func NewEnemy(t EnemyType) *Enemy {
	return &Enemy{Type: t}
}

func (e *Enemy) health() *components.Health {
	return engine.GetComponent[*components.Health](e.GetGameObject())
}

// Alive is false once health runs out, the enemy removed itself, or the
// object was destroyed.
func (e *Enemy) Alive() bool {
	g := e.GetGameObject()
	if g == nil || g.Destroyed() || e.expired {
		return false
	}
	h := e.health()
	return h == nil || !h.IsDead()
}

// Killed reports whether health ran out, as opposed to self-removal.
func (e *Enemy) Killed() bool {
	h := e.health()
	return h != nil && h.IsDead()
}

// Expire removes the enemy without a kill, e.g. a bomb that went off.
func (e *Enemy) Expire() {
	e.expired = true
}

func (e *Enemy) CanBeHit(now float64) bool {
	return now >= e.hitUntil
}

func (e *Enemy) StartHitCooldown(now float64, cooldown float32) {
	e.hitUntil = now + float64(cooldown)
}

// TakeHit applies damage and returns the amount applied. Hits against a
// dead enemy are no-ops.
func (e *Enemy) TakeHit(damage float32) float32 {
	if !e.Alive() {
		return 0
	}
	h := e.health()
	if h == nil {
		return 0
	}
	return h.Damage(damage)
}
