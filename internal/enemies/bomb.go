package enemies

import (
	"log"

	"reflex3d/internal/audio"
	"reflex3d/internal/components"
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BombSettings struct {
	MaxHealth       float32 `json:"maxHealth"`
	Radius          float32 `json:"radius"`
	MoveSpeed       float32 `json:"moveSpeed"`
	ArmRadius       float32 `json:"armRadius"`
	FuseTime        float32 `json:"fuseTime"`
	ExplosionRadius float32 `json:"explosionRadius"`
	ExplosionDamage float32 `json:"explosionDamage"`
}

func DefaultBombSettings() BombSettings {
	return BombSettings{
		MaxHealth:       2,
		Radius:          0.5,
		MoveSpeed:       3.5,
		ArmRadius:       2.0,
		FuseTime:        1.2,
		ExplosionRadius: 3.0,
		ExplosionDamage: 3,
	}
}

type BombState int

const (
	BombChasing BombState = iota
	BombArmed
	BombExploded
)

// Blaster applies area damage from an explosion.
type Blaster interface {
	Explode(source *engine.GameObject, center rl.Vector3, radius, damage float32)
}

// Bomb chases the player, arms when close, and blows up when the fuse runs
// out. Movement goes through the Rigidbody so the world can push it out of
// walls.
type Bomb struct {
	engine.BaseComponent
	Settings BombSettings
	Blaster  Blaster
	Cues     audio.CuePlayer

	state BombState
	fuse  float32
}

func NewBomb(settings BombSettings, blaster Blaster, cues audio.CuePlayer) *Bomb {
	return &Bomb{Settings: settings, Blaster: blaster, Cues: cues}
}

func (b *Bomb) State() BombState { return b.state }

// Fuse is the time left before an armed bomb explodes.
func (b *Bomb) Fuse() float32 { return b.fuse }

func (b *Bomb) Think(deltaTime float32, target Target) {
	g := b.GetGameObject()
	if g == nil || b.state == BombExploded {
		return
	}
	if e := engine.GetComponent[*Enemy](g); e != nil && !e.Alive() {
		b.setVelocity(g, rl.Vector3Zero())
		return
	}

	switch b.state {
	case BombChasing:
		to := rl.Vector3Subtract(target.Position, g.Transform.Position)
		to.Y = 0
		dist := rl.Vector3Length(to)
		if dist <= b.Settings.ArmRadius {
			b.arm(g)
			return
		}
		dir := rl.Vector3Scale(to, 1/dist)
		g.Transform.SetForward(dir)
		b.setVelocity(g, rl.Vector3Scale(dir, b.Settings.MoveSpeed))

	case BombArmed:
		b.fuse -= deltaTime
		if b.fuse <= 0 {
			b.explode(g)
		}
	}
}

func (b *Bomb) arm(g *engine.GameObject) {
	b.state = BombArmed
	b.fuse = b.Settings.FuseTime
	b.setVelocity(g, rl.Vector3Zero())
	if b.Cues != nil {
		b.Cues.Play(audio.CueBombArmed)
	}
}

func (b *Bomb) explode(g *engine.GameObject) {
	b.state = BombExploded
	b.fuse = 0
	if b.Blaster != nil {
		b.Blaster.Explode(g, g.Transform.Position, b.Settings.ExplosionRadius, b.Settings.ExplosionDamage)
	}
	if b.Cues != nil {
		b.Cues.Play(audio.CueExplosion)
	}
	if e := engine.GetComponent[*Enemy](g); e != nil {
		e.Expire()
	}
	log.Printf("Bomb: %s exploded", g.Name)
}

func (b *Bomb) setVelocity(g *engine.GameObject, v rl.Vector3) {
	if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
		rb.Velocity.X = v.X
		rb.Velocity.Z = v.Z
	}
}
