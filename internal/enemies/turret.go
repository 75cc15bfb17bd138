package enemies

import (
	"math"
	"math/rand"

	"reflex3d/internal/audio"
	"reflex3d/internal/engine"
	"reflex3d/internal/projectile"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pattern is the firing pattern a turret keeps for its whole life.
type Pattern int

const (
	PatternSpread Pattern = iota
	PatternCardinal
	PatternPredictive
)

func (p Pattern) String() string {
	switch p {
	case PatternSpread:
		return "spread"
	case PatternCardinal:
		return "cardinal"
	default:
		return "predictive"
	}
}

// RandomPattern picks one of the three patterns uniformly.
func RandomPattern(r *rand.Rand) Pattern {
	return Pattern(r.Intn(3))
}

// Shooter spawns projectiles. Satisfied by *projectile.Registry.
type Shooter interface {
	Spawn(owner *engine.GameObject, direction rl.Vector3, speed, damage float32) *projectile.Projectile
}

type TurretSettings struct {
	MaxHealth    float32 `json:"maxHealth"`
	Radius       float32 `json:"radius"`
	Cooldown     float32 `json:"cooldown"`
	BulletSpeed  float32 `json:"bulletSpeed"`
	BulletDamage float32 `json:"bulletDamage"`
	// LeadCap is the longest travel time the predictive pattern will lead.
	LeadCap float32 `json:"leadCap"`
}

func DefaultTurretSettings() TurretSettings {
	return TurretSettings{
		MaxHealth:    3,
		Radius:       0.6,
		Cooldown:     2.0,
		BulletSpeed:  10,
		BulletDamage: 1,
		LeadCap:      2.0,
	}
}

// Turret stands still and fires volleys on a fixed cooldown.
type Turret struct {
	engine.BaseComponent
	Settings TurretSettings
	Pattern  Pattern
	Shooter  Shooter
	Cues     audio.CuePlayer

	// HeadYaw is in degrees, 0 faces +Z.
	HeadYaw float32

	attackTimer float32
	volleys     int
}

func NewTurret(settings TurretSettings, pattern Pattern, shooter Shooter, cues audio.CuePlayer) *Turret {
	return &Turret{
		Settings:    settings,
		Pattern:     pattern,
		Shooter:     shooter,
		Cues:        cues,
		attackTimer: settings.Cooldown,
	}
}

// Volleys counts volleys fired so far.
func (t *Turret) Volleys() int { return t.volleys }

func (t *Turret) Think(deltaTime float32, target Target) {
	g := t.GetGameObject()
	if g == nil {
		return
	}

	to := rl.Vector3Subtract(target.Position, g.Transform.Position)
	if to.X != 0 || to.Z != 0 {
		t.HeadYaw = float32(math.Atan2(float64(to.X), float64(to.Z))) * rl.Rad2deg
	}

	t.attackTimer -= deltaTime
	if t.attackTimer < 0 {
		t.fire(g, target)
		t.attackTimer = t.Settings.Cooldown
	}
}

func (t *Turret) fire(g *engine.GameObject, target Target) {
	var dirs []rl.Vector3
	switch t.Pattern {
	case PatternSpread:
		dirs = SpreadDirections()
	case PatternCardinal:
		dirs = CardinalDirections()
	default:
		dirs = []rl.Vector3{PredictiveAim(g.Transform.Position, target, t.Settings.BulletSpeed, t.Settings.LeadCap)}
	}

	if t.Shooter != nil {
		for _, d := range dirs {
			t.Shooter.Spawn(g, d, t.Settings.BulletSpeed, t.Settings.BulletDamage)
		}
	}
	t.volleys++
	if t.Cues != nil {
		t.Cues.Play(audio.CueEnemyShoot)
	}
}

// SpreadDirections returns six bolts at 60° steps offset by 30°.
func SpreadDirections() []rl.Vector3 {
	dirs := make([]rl.Vector3, 6)
	for i := range dirs {
		angle := 2*math.Pi/6*float64(i) + math.Pi/6
		dirs[i] = planar(angle)
	}
	return dirs
}

// CardinalDirections returns four bolts along +X, +Z, -X and -Z.
func CardinalDirections() []rl.Vector3 {
	dirs := make([]rl.Vector3, 4)
	for i := range dirs {
		dirs[i] = planar(float64(i) * math.Pi / 2)
	}
	return dirs
}

func planar(angle float64) rl.Vector3 {
	return rl.Vector3{X: float32(math.Cos(angle)), Y: 0, Z: float32(math.Sin(angle))}
}

// PredictiveAim leads a moving target on the ground plane. When the bolt
// would take leadCap seconds or longer to arrive, it aims at the target's
// current position instead.
func PredictiveAim(from rl.Vector3, target Target, bulletSpeed, leadCap float32) rl.Vector3 {
	aim := target.Position
	to := rl.Vector3{X: target.Position.X - from.X, Z: target.Position.Z - from.Z}
	if bulletSpeed > 0 {
		travelTime := rl.Vector3Length(to) / bulletSpeed
		if travelTime < leadCap {
			aim = rl.Vector3Add(target.Position, rl.Vector3Scale(target.Velocity, travelTime))
		}
	}

	dir := rl.Vector3{X: aim.X - from.X, Z: aim.Z - from.Z}
	if rl.Vector3LengthSqr(dir) < 1e-12 {
		return rl.Vector3{X: 1}
	}
	return rl.Vector3Normalize(dir)
}
