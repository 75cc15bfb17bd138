package combat

import (
	"log"

	"reflex3d/internal/audio"
	"reflex3d/internal/components"
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type State int

const (
	StateIdle State = iota
	StateCharging
	StateExecuting
)

func (s State) String() string {
	switch s {
	case StateCharging:
		return "charging"
	case StateExecuting:
		return "executing"
	default:
		return "idle"
	}
}

// AttackStarted is published when a profile begins executing.
type AttackStarted struct {
	Index   int
	Profile AttackProfile
	Center  rl.Vector3
	// Scale is the radius relative to the first profile, for sizing VFX.
	Scale float32
}

// minRushInput is the squared stick length below which a rush attack
// stays in place.
const minRushInput = 0.001

// AttackController turns attack button presses into charged area attacks.
// Tick must be called once per simulation step.
type AttackController struct {
	engine.BaseComponent
	Settings Settings
	Env      Environment
	Cues     audio.CuePlayer

	// Interact is offered each press before charging starts. Returning true
	// consumes the press.
	Interact func() bool

	OnAttackStarted  engine.EventWithArg[AttackStarted]
	OnAttackFinished engine.EventWithArg[AttackProfile]

	state      State
	chargeTime float32
	drainTimer float32
	active     int
	remaining  float32
	moveInput  rl.Vector2

	rushing   bool
	rushPoint rl.Vector3
	rushSpeed float32

	hits int
}

func NewAttackController(settings Settings, env Environment, cues audio.CuePlayer) *AttackController {
	return &AttackController{
		Settings: settings,
		Env:      env,
		Cues:     cues,
		active:   -1,
	}
}

func (a *AttackController) State() State { return a.state }

func (a *AttackController) ChargeTime() float32 { return a.chargeTime }

// Remaining is the time left on the executing attack.
func (a *AttackController) Remaining() float32 { return a.remaining }

func (a *AttackController) Rushing() bool { return a.rushing }

// Hits counts enemy hits landed since creation.
func (a *AttackController) Hits() int { return a.hits }

// ActiveProfile returns the executing profile.
func (a *AttackController) ActiveProfile() (AttackProfile, bool) {
	if a.state != StateExecuting || a.active < 0 {
		return AttackProfile{}, false
	}
	return a.Settings.Profiles[a.active], true
}

// SetMoveInput records the latest movement stick for rush direction.
func (a *AttackController) SetMoveInput(v rl.Vector2) {
	a.moveInput = v
}

// CanMove reports whether manual movement is allowed.
func (a *AttackController) CanMove() bool {
	return a.state != StateExecuting
}

// MoveMultiplier scales movement speed for the current state.
func (a *AttackController) MoveMultiplier() float32 {
	switch a.state {
	case StateCharging:
		return a.Settings.ChargeMoveMultiplier
	case StateExecuting:
		return 0
	default:
		return 1
	}
}

// OnAttackPressed handles an edge of the attack button.
func (a *AttackController) OnAttackPressed(down bool) {
	if down {
		a.press()
	} else {
		a.release()
	}
}

func (a *AttackController) press() {
	if a.state != StateIdle {
		return
	}
	if a.Interact != nil && a.Interact() {
		return
	}
	a.state = StateCharging
	a.chargeTime = 0
	a.drainTimer = 0
	a.play(audio.CuePlayerCharging)
}

func (a *AttackController) release() {
	if a.state != StateCharging {
		return
	}
	idx, ok := SelectProfile(a.Settings.Profiles, a.chargeTime)
	if !ok {
		a.state = StateIdle
		a.chargeTime = 0
		return
	}
	a.begin(idx)
}

// Tick advances charging or the executing attack by deltaTime.
func (a *AttackController) Tick(deltaTime float32) {
	switch a.state {
	case StateCharging:
		a.tickCharge(deltaTime)
	case StateExecuting:
		a.tickExecute(deltaTime)
	}
}

func (a *AttackController) tickCharge(deltaTime float32) {
	a.chargeTime += deltaTime
	if a.Settings.DrainInterval <= 0 {
		return
	}
	a.drainTimer += deltaTime
	for a.drainTimer >= a.Settings.DrainInterval {
		a.drainTimer -= a.Settings.DrainInterval
		if h := a.health(); h != nil {
			h.Drain(a.Settings.DrainDamage)
		}
	}
	if h := a.health(); h != nil && h.IsDead() {
		a.state = StateIdle
		a.chargeTime = 0
	}
}

func (a *AttackController) begin(idx int) {
	p := a.Settings.Profiles[idx]
	g := a.GetGameObject()

	a.state = StateExecuting
	a.active = idx
	a.remaining = p.Duration
	a.setRushing(false)

	if p.HasImmunity {
		if h := a.health(); h != nil {
			h.CanTakeDamage = false
		}
	}

	if p.IsRushAttack && g != nil && rl.Vector2LengthSqr(a.moveInput) > minRushInput {
		a.startRush(g, p)
	}

	if p.IsRushAttack {
		a.play(audio.CuePlayerAttackCharged)
	} else {
		a.play(audio.CuePlayerAttack)
	}

	log.Printf("Attack: %s after %.2fs charge", p.Name, a.chargeTime)

	scale := float32(1)
	if base := a.Settings.Profiles[0].Radius; base > 0 {
		scale = p.Radius / base
	}
	var center rl.Vector3
	if g != nil {
		center = g.Transform.Position
	}
	a.OnAttackStarted.Invoke(AttackStarted{Index: idx, Profile: p, Center: center, Scale: scale})
}

func (a *AttackController) startRush(g *engine.GameObject, p AttackProfile) {
	dir := rl.Vector3Normalize(rl.Vector3{X: a.moveInput.X, Y: 0, Z: a.moveInput.Y})
	g.Transform.SetForward(dir)

	distance := p.RushDistance
	if a.Env != nil {
		if hit, ok := a.Env.RaycastSolid(g.Transform.Position, dir, p.RushDistance); ok {
			// Stop with the body against the obstacle, not inside it.
			distance = hit - a.bodyRadius()
			if distance < 0 {
				distance = 0
			}
		}
	}

	a.rushPoint = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(dir, distance))
	a.rushSpeed = p.RushDistance / p.Duration
	a.setRushing(true)
}

func (a *AttackController) tickExecute(deltaTime float32) {
	p := a.Settings.Profiles[a.active]
	g := a.GetGameObject()

	if g != nil && a.Env != nil {
		center := g.Transform.Position
		now := a.Env.Now()
		for _, h := range a.Env.Overlap(center, p.Radius) {
			if handle := hitHandlers[h.Kind]; handle != nil {
				handle(a, h, now)
			}
		}
		if p.CanReflect {
			a.Env.ReflectInArea(center, p.Radius, g)
		}
	}

	a.remaining -= deltaTime

	if a.rushing && g != nil {
		a.stepRush(g, deltaTime)
	}

	if a.remaining <= 0 {
		a.finish()
	}
}

// stepRush moves toward the rush point without overshooting it.
func (a *AttackController) stepRush(g *engine.GameObject, deltaTime float32) {
	pos := g.Transform.Position
	toPoint := rl.Vector3Subtract(a.rushPoint, pos)
	toPoint.Y = 0
	dist := rl.Vector3Length(toPoint)
	step := a.rushSpeed * deltaTime
	if dist <= step || dist < 1e-5 {
		g.Transform.Position.X = a.rushPoint.X
		g.Transform.Position.Z = a.rushPoint.Z
		a.setRushing(false)
		return
	}
	g.Transform.Position = rl.Vector3Add(pos, rl.Vector3Scale(toPoint, step/dist))
}

func (a *AttackController) hitEnemy(h Hittable, now float64) {
	if h.Enemy == nil || !h.Enemy.Alive() || !h.Enemy.CanBeHit(now) {
		return
	}
	p := a.Settings.Profiles[a.active]
	h.Enemy.TakeHit(p.Damage)
	h.Enemy.StartHitCooldown(now, p.EnemyHitCooldown)
	a.hits++
	if h.Object != nil {
		log.Printf("Attack: hit %s", h.Object.Name)
	}
}

func (a *AttackController) finish() {
	p := a.Settings.Profiles[a.active]
	a.state = StateIdle
	a.remaining = 0
	a.chargeTime = 0
	a.setRushing(false)
	a.active = -1
	if h := a.health(); h != nil {
		h.CanTakeDamage = true
	}
	a.OnAttackFinished.Invoke(p)
}

// Cancel drops any charge or attack without side effects, e.g. on room load.
func (a *AttackController) Cancel() {
	a.state = StateIdle
	a.chargeTime = 0
	a.remaining = 0
	a.setRushing(false)
	a.active = -1
	if h := a.health(); h != nil && !h.IsDead() {
		h.CanTakeDamage = true
	}
}

// setRushing hands the body to the rush while it lasts so velocity
// integration doesn't fight it.
func (a *AttackController) setRushing(rushing bool) {
	a.rushing = rushing
	if rb := engine.GetComponent[*components.Rigidbody](a.GetGameObject()); rb != nil {
		rb.IsKinematic = rushing
	}
}

func (a *AttackController) health() *components.Health {
	return engine.GetComponent[*components.Health](a.GetGameObject())
}

func (a *AttackController) bodyRadius() float32 {
	if s := engine.GetComponent[*components.SphereCollider](a.GetGameObject()); s != nil {
		return s.Radius
	}
	return 0
}

func (a *AttackController) play(cue audio.Cue) {
	if a.Cues != nil {
		a.Cues.Play(cue)
	}
}
