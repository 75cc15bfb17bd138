package main

import (
	"reflex3d/internal/combat"
	"reflex3d/internal/engine"
	"reflex3d/internal/projectile"
	"reflex3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	threatRadius = 2.6
	strikeRadius = 1.8
	tapTicks     = 6
)

// bot plays the world with simple rules: tap-attack when bolts close in,
// walk to the nearest enemy and spin, then take the door.
type bot struct {
	w    *world.World
	held int
}

func (b *bot) think() world.Input {
	w := b.w
	pos := w.Player.Transform.Position
	var in world.Input

	if b.held > 0 {
		b.held--
		in.Attack = b.held > 0
		return in
	}
	if w.Attack().State() == combat.StateExecuting {
		return in
	}

	if b.threatened(pos) {
		b.held = tapTicks
		in.Attack = true
		return in
	}

	if w.DoorOpen() && w.Door() != nil {
		door := w.Door().Transform.Position
		if flatDistance(pos, door) <= w.Config.Rooms.DoorRadius*0.8 {
			b.held = 2
			in.Attack = true
			return in
		}
		in.Move = toward(pos, door)
		return in
	}

	target := nearest(pos, w.Enemies())
	if target == nil {
		return in
	}
	if flatDistance(pos, target.Transform.Position) <= strikeRadius {
		b.held = tapTicks
		in.Attack = true
		return in
	}
	in.Move = toward(pos, target.Transform.Position)
	return in
}

func (b *bot) threatened(pos rl.Vector3) bool {
	threat := false
	b.w.Projectiles.Each(func(p *projectile.Projectile) {
		if p.Hurts(projectile.FactionPlayer) && flatDistance(pos, p.Position) <= threatRadius {
			threat = true
		}
	})
	return threat
}

func nearest(pos rl.Vector3, objs []*engine.GameObject) *engine.GameObject {
	var best *engine.GameObject
	bestDist := float32(-1)
	for _, g := range objs {
		d := flatDistance(pos, g.Transform.Position)
		if best == nil || d < bestDist {
			best, bestDist = g, d
		}
	}
	return best
}

func toward(from, to rl.Vector3) rl.Vector2 {
	v := rl.Vector2{X: to.X - from.X, Y: to.Z - from.Z}
	if rl.Vector2LengthSqr(v) < 1e-6 {
		return rl.Vector2{}
	}
	return rl.Vector2Normalize(v)
}

func flatDistance(a, b rl.Vector3) float32 {
	return rl.Vector2Distance(rl.Vector2{X: a.X, Y: a.Z}, rl.Vector2{X: b.X, Y: b.Z})
}
