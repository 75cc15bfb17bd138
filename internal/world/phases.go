package world

import (
	"reflex3d/internal/audio"
	"reflex3d/internal/components"
	"reflex3d/internal/enemies"
	"reflex3d/internal/engine"
	"reflex3d/internal/physics"
	"reflex3d/internal/projectile"
)

// Step advances the simulation by one fixed tick. Phases run in order:
// input, attack, enemy AI, movement, collision, cleanup.
func (w *World) Step(deltaTime float32) {
	if w.gameOver || deltaTime <= 0 {
		return
	}

	w.applyInput()
	w.resolveAttack(deltaTime)
	w.thinkEnemies(deltaTime)
	w.integrate(deltaTime)
	w.resolveCollisions()
	w.cleanup()

	w.time += float64(deltaTime)
	w.ticks++
}

func (w *World) applyInput() {
	in := w.input
	w.attack.SetMoveInput(in.Move)
	w.movement.Input = in.Move
	if in.Attack != w.attackHeld {
		w.attackHeld = in.Attack
		w.attack.OnAttackPressed(in.Attack)
	}
}

func (w *World) resolveAttack(deltaTime float32) {
	w.attack.Tick(deltaTime)
}

func (w *World) playerTarget() enemies.Target {
	return enemies.Target{
		Position: w.Player.Transform.Position,
		Velocity: w.playerBody.Velocity,
	}
}

func (w *World) thinkEnemies(deltaTime float32) {
	target := w.playerTarget()
	for _, g := range w.Scene.FindByTag(engine.TagEnemy) {
		e := engine.GetComponent[*enemies.Enemy](g)
		if e == nil || !e.Alive() {
			continue
		}
		if brain := engine.FindComponent[enemies.Brain](g); brain != nil {
			brain.Think(deltaTime, target)
		}
	}
}

func (w *World) integrate(deltaTime float32) {
	w.movement.Apply(w.attack.CanMove(), w.attack.MoveMultiplier())

	for _, g := range w.Scene.GameObjects {
		if g.Destroyed() || !g.Active {
			continue
		}
		if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
			rb.Integrate(deltaTime)
		}
	}

	w.Projectiles.Update(deltaTime)
}

func (w *World) resolveCollisions() {
	for _, g := range w.Physics.Bodies {
		if !g.Destroyed() {
			w.Physics.ResolveSolids(g)
		}
	}

	w.Projectiles.Each(w.collideProjectile)
}

// collideProjectile destroys p on the first solid or opposing body it
// touches. Same-faction bodies let it pass.
func (w *World) collideProjectile(p *projectile.Projectile) {
	for _, g := range w.Physics.Statics {
		box := engine.GetComponent[*components.BoxCollider](g)
		if box == nil || g.Destroyed() {
			continue
		}
		if physics.BoxBounds(box).Expand(p.Radius).Contains(p.Position) {
			w.Projectiles.Destroy(p)
			return
		}
	}

	for _, g := range w.Physics.OverlapSphere(p.Position, p.Radius) {
		if g == p.Owner || !p.Hurts(projectile.FactionOf(g)) {
			continue
		}
		if g == w.Player {
			w.playerHealth.Damage(p.Damage)
			w.Projectiles.Destroy(p)
			return
		}
		if e := engine.GetComponent[*enemies.Enemy](g); e != nil && e.Alive() {
			e.TakeHit(p.Damage)
			w.Projectiles.Destroy(p)
			return
		}
	}
}

func (w *World) cleanup() {
	w.Projectiles.Flush()

	for _, g := range w.Scene.FindByTag(engine.TagEnemy) {
		if e := engine.GetComponent[*enemies.Enemy](g); e != nil && !e.Alive() {
			w.Scene.Destroy(g)
		}
	}

	for _, g := range w.Scene.FlushDestroyed() {
		w.Physics.RemoveObject(g)
		if e := engine.GetComponent[*enemies.Enemy](g); e != nil {
			w.enemyRemoved(g, e)
		}
	}

	if !w.roomCleared && len(w.Enemies()) == 0 {
		w.clearRoom()
	}

	if w.pendingRoom != nil {
		next := *w.pendingRoom
		w.pendingRoom = nil
		w.LoadRoom(next)
	}
}

func (w *World) enemyRemoved(g *engine.GameObject, e *enemies.Enemy) {
	if t := engine.GetComponent[*enemies.Turret](g); t != nil {
		w.stats.Volleys += t.Volleys()
	}
	killed := e.Killed()
	if killed {
		w.stats.Kills++
		w.Cues.Play(audio.CueEnemyDeath)
	}
	w.OnEnemyDestroyed.Invoke(EnemyDestroyed{
		Object:   g,
		Type:     e.Type,
		Position: g.Transform.Position,
		Killed:   killed,
	})
}
