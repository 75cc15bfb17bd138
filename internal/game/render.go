package game

import (
	"math"

	"reflex3d/internal/combat"
	"reflex3d/internal/components"
	"reflex3d/internal/enemies"
	"reflex3d/internal/engine"
	"reflex3d/internal/projectile"
	"reflex3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBackground  = rl.NewColor(12, 14, 22, 255)
	colorEnemyBolt   = rl.NewColor(255, 80, 70, 255)
	colorPlayerBolt  = rl.NewColor(120, 230, 255, 255)
	colorAttackRing  = rl.NewColor(167, 139, 250, 255)
	colorChargeRing  = rl.NewColor(108, 99, 255, 160)
	colorDoorOpen    = rl.NewColor(80, 220, 120, 255)
	colorImmuneFlash = rl.NewColor(255, 255, 255, 255)
)

// ring is the expanding circle drawn for an attack.
type ring struct {
	center   rl.Vector3
	radius   float32
	duration float32
	age      float32
}

// Renderer draws the world with raylib primitives.
type Renderer struct {
	world *world.World
	rings []ring
}

func NewRenderer(w *world.World) *Renderer {
	r := &Renderer{world: w}
	w.Attack().OnAttackStarted.AddListener(func(a combat.AttackStarted) {
		r.rings = append(r.rings, ring{center: a.Center, radius: a.Profile.Radius, duration: a.Profile.Duration})
	})
	w.OnRoomLoaded.AddListener(func(int) {
		r.rings = r.rings[:0]
	})
	return r
}

func (r *Renderer) Update(deltaTime float32) {
	live := r.rings[:0]
	for _, rg := range r.rings {
		rg.age += deltaTime
		if rg.age < rg.duration {
			live = append(live, rg)
		}
	}
	r.rings = live
}

func (r *Renderer) Draw3D() {
	w := r.world

	for _, g := range w.Scene.GameObjects {
		if g == w.Player {
			continue
		}
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			continue
		}
		switch {
		case g == w.Door() && w.DoorOpen():
			mr.DrawTinted(colorDoorOpen)
		case g.HasTag(engine.TagEnemy):
			r.drawEnemy(g, mr)
		default:
			mr.Draw()
		}
	}

	r.drawPlayer()

	w.Projectiles.Each(func(p *projectile.Projectile) {
		c := colorEnemyBolt
		if p.Faction == projectile.FactionPlayer {
			c = colorPlayerBolt
		}
		rl.DrawSphere(p.Position, p.Radius, c)
	})

	for _, rg := range r.rings {
		t := rg.age / rg.duration
		c := rl.Fade(colorAttackRing, 1-t)
		center := rg.center
		center.Y = 0.05
		rl.DrawCircle3D(center, rg.radius*(0.6+0.4*t), rl.Vector3{X: 1}, 90, c)
	}
}

func (r *Renderer) drawPlayer() {
	w := r.world
	mr := engine.GetComponent[*components.MeshRenderer](w.Player)
	if mr == nil {
		return
	}

	if !w.PlayerHealth().CanTakeDamage && blink(w.Time(), 12) {
		mr.DrawTinted(colorImmuneFlash)
	} else {
		mr.Draw()
	}

	// Facing
	pos := w.Player.Transform.Position
	tip := rl.Vector3Add(pos, rl.Vector3Scale(w.Player.Transform.Forward(), 0.9))
	rl.DrawLine3D(pos, tip, rl.White)

	attack := w.Attack()
	if attack.State() == combat.StateCharging {
		if idx, ok := combat.SelectProfile(attack.Settings.Profiles, attack.ChargeTime()); ok {
			center := pos
			center.Y = 0.05
			rl.DrawCircle3D(center, attack.Settings.Profiles[idx].Radius, rl.Vector3{X: 1}, 90, colorChargeRing)
		}
	}
}

func (r *Renderer) drawEnemy(g *engine.GameObject, mr *components.MeshRenderer) {
	e := engine.GetComponent[*enemies.Enemy](g)
	if e != nil && !e.CanBeHit(r.world.Time()) {
		mr.DrawTinted(colorImmuneFlash)
	} else if b := engine.GetComponent[*enemies.Bomb](g); b != nil && b.State() == enemies.BombArmed &&
		blink(r.world.Time(), fuseBlinkHz(b.Fuse(), b.Settings.FuseTime)) {
		mr.DrawTinted(rl.Red)
	} else {
		mr.Draw()
	}

	if t := engine.GetComponent[*enemies.Turret](g); t != nil {
		yaw := float64(t.HeadYaw) * math.Pi / 180
		pos := g.Transform.Position
		pos.Y += 0.7
		tip := rl.Vector3{X: pos.X + float32(math.Sin(yaw)), Y: pos.Y, Z: pos.Z + float32(math.Cos(yaw))}
		rl.DrawLine3D(pos, tip, rl.Yellow)
	}
}

// fuseBlinkHz speeds an armed bomb's flashing from 4Hz up to 16Hz as the
// fuse burns down.
func fuseBlinkHz(fuse, fuseTime float32) float64 {
	if fuseTime <= 0 {
		return 16
	}
	left := float64(fuse / fuseTime)
	left = math.Max(0, math.Min(1, left))
	return 16 - 12*left
}

func blink(t float64, hz float64) bool {
	return math.Mod(t*hz, 1) < 0.5
}
