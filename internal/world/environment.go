package world

import (
	"reflex3d/internal/combat"
	"reflex3d/internal/components"
	"reflex3d/internal/enemies"
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// environment exposes the world to the attack controller.
type environment struct {
	w *World
}

func (e environment) Now() float64 {
	return e.w.time
}

func (e environment) Overlap(center rl.Vector3, radius float32) []combat.Hittable {
	objs := e.w.Physics.OverlapSphere(center, radius)
	hits := make([]combat.Hittable, 0, len(objs))
	for _, g := range objs {
		if g == e.w.Player {
			continue
		}
		if enemy := engine.GetComponent[*enemies.Enemy](g); enemy != nil {
			hits = append(hits, combat.Hittable{Kind: combat.HitEnemy, Object: g, Enemy: enemy})
			continue
		}
		hits = append(hits, combat.Hittable{Kind: combat.HitOther, Object: g})
	}
	return hits
}

func (e environment) RaycastSolid(origin, direction rl.Vector3, maxDistance float32) (float32, bool) {
	hit, ok := e.w.Physics.RaycastSolid(origin, direction, maxDistance)
	if !ok {
		return 0, false
	}
	return hit.Distance, true
}

func (e environment) ReflectInArea(center rl.Vector3, radius float32, newOwner *engine.GameObject) int {
	// Bolts fly at a fixed height; measure from that plane so a reflect
	// radius means the same thing as on the ground.
	center.Y = e.w.Projectiles.Settings.Height
	n := e.w.Projectiles.ReflectInArea(center, radius, newOwner)
	e.w.stats.Reflected += n
	return n
}

// Explode damages the player if it is inside the blast.
func (w *World) Explode(source *engine.GameObject, center rl.Vector3, radius, damage float32) {
	if w.Player == nil {
		return
	}
	reach := radius
	if s := engine.GetComponent[*components.SphereCollider](w.Player); s != nil {
		reach += s.Radius
	}
	to := rl.Vector3Subtract(w.Player.Transform.Position, center)
	to.Y = 0
	if rl.Vector3Length(to) <= reach {
		w.playerHealth.Damage(damage)
	}
}
