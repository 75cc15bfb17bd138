package projectile

import (
	"log"

	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Settings are the registry defaults applied to every spawned projectile.
type Settings struct {
	Radius   float32 `json:"radius"`
	Lifetime float32 `json:"lifetime"`
	// Height is the y at which bolts fly, regardless of the owner's pivot.
	Height float32 `json:"height"`
	// Bounds is the half-extent of the playfield on X and Z. Projectiles
	// leaving it are destroyed. 0 disables the check.
	Bounds float32 `json:"bounds"`
}

func DefaultSettings() Settings {
	return Settings{
		Radius:   0.25,
		Lifetime: 8,
		Height:   0.75,
		Bounds:   40,
	}
}

// Registry owns every live projectile of a room. Destroy is deferred until
// Flush so it is safe while iterating.
type Registry struct {
	Settings Settings

	live    []*Projectile
	pending []*Projectile
	nextID  uint64
}

func NewRegistry(settings Settings) *Registry {
	return &Registry{
		Settings: settings,
		live:     make([]*Projectile, 0, 64),
	}
}

// Spawn creates a projectile at the owner's position.
func (r *Registry) Spawn(owner *engine.GameObject, direction rl.Vector3, speed, damage float32) *Projectile {
	var pos rl.Vector3
	if owner != nil {
		pos = owner.Transform.Position
	}
	return r.SpawnAt(owner, pos, direction, speed, damage)
}

// SpawnAt creates a projectile at an explicit position, e.g. a muzzle.
func (r *Registry) SpawnAt(owner *engine.GameObject, pos, direction rl.Vector3, speed, damage float32) *Projectile {
	r.nextID++
	pos.Y = r.Settings.Height
	p := &Projectile{
		ID:        r.nextID,
		Owner:     owner,
		Faction:   FactionOf(owner),
		Position:  pos,
		Direction: flatten(direction),
		Speed:     speed,
		Damage:    damage,
		Radius:    r.Settings.Radius,
		Lifetime:  r.Settings.Lifetime,
	}
	r.live = append(r.live, p)
	return p
}

// Destroy marks p for removal on the next Flush. Repeated calls are no-ops.
func (r *Registry) Destroy(p *Projectile) {
	if !p.Alive() {
		return
	}
	p.dead = true
	r.pending = append(r.pending, p)
}

// Flush drops destroyed projectiles from the tracked set and returns how
// many were removed.
func (r *Registry) Flush() int {
	if len(r.pending) == 0 {
		return 0
	}
	n := 0
	kept := r.live[:0]
	for _, p := range r.live {
		if p.dead {
			n++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(r.live); i++ {
		r.live[i] = nil
	}
	r.live = kept
	r.pending = r.pending[:0]
	return n
}

// Update moves every live projectile and expires those that ran out of
// lifetime or left the playfield.
func (r *Registry) Update(deltaTime float32) {
	bounds := r.Settings.Bounds
	for _, p := range r.live {
		if p.dead {
			continue
		}
		p.Position = rl.Vector3Add(p.Position, rl.Vector3Scale(p.Velocity(), deltaTime))
		p.Lifetime -= deltaTime
		if p.Lifetime <= 0 {
			r.Destroy(p)
			continue
		}
		if bounds > 0 && (p.Position.X < -bounds || p.Position.X > bounds ||
			p.Position.Z < -bounds || p.Position.Z > bounds) {
			r.Destroy(p)
		}
	}
}

// ReflectInArea sends every projectile within radius of center (inclusive)
// that newOwner doesn't already own back outward and hands it to newOwner.
// Returns the number reflected.
func (r *Registry) ReflectInArea(center rl.Vector3, radius float32, newOwner *engine.GameObject) int {
	n := 0
	for _, p := range r.live {
		if p.dead || p.Owner == newOwner {
			continue
		}
		if rl.Vector3Distance(p.Position, center) > radius {
			continue
		}
		away := rl.Vector3Subtract(p.Position, center)
		away.Y = 0
		if rl.Vector3LengthSqr(away) < 1e-12 {
			p.Direction = rl.Vector3Negate(p.Direction)
		} else {
			p.Direction = rl.Vector3Normalize(away)
		}
		p.Owner = newOwner
		p.Faction = FactionOf(newOwner)
		p.Friendly = true
		n++
	}
	return n
}

// Clear tears down every projectile immediately.
func (r *Registry) Clear() {
	if len(r.live) > 0 {
		log.Printf("Projectiles: cleared %d", len(r.live))
	}
	for _, p := range r.live {
		p.dead = true
	}
	clear(r.live)
	r.live = r.live[:0]
	r.pending = r.pending[:0]
}

// Each calls fn for every live projectile. fn may call Destroy.
func (r *Registry) Each(fn func(p *Projectile)) {
	for _, p := range r.live {
		if !p.dead {
			fn(p)
		}
	}
}

// Len counts live projectiles, excluding those pending removal.
func (r *Registry) Len() int {
	n := 0
	for _, p := range r.live {
		if !p.dead {
			n++
		}
	}
	return n
}
