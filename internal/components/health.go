package components

import "reflex3d/internal/engine"

// HealthChange is published on every applied change.
type HealthChange struct {
	Previous float32
	Current  float32
	Max      float32
	// Silent changes (charge drain) should not trigger hurt feedback.
	Silent bool
}

// Fraction is Current/Max clamped to [0,1].
func (c HealthChange) Fraction() float32 {
	return fraction(c.Current, c.Max)
}

// Health tracks hit points. Damage against a dead or immune owner is
// ignored and reported as zero applied.
type Health struct {
	engine.BaseComponent
	Max           float32
	Current       float32
	CanTakeDamage bool

	OnHealthChanged engine.EventWithArg[HealthChange]
	OnDied          engine.Event

	dead bool
}

func NewHealth(max float32) *Health {
	return &Health{
		Max:           max,
		Current:       max,
		CanTakeDamage: true,
	}
}

// Damage subtracts amount and returns the health actually removed.
func (h *Health) Damage(amount float32) float32 {
	if !h.CanTakeDamage {
		return 0
	}
	return h.apply(amount, false)
}

// Drain removes health without hurt feedback. Immunity does not block it.
func (h *Health) Drain(amount float32) float32 {
	return h.apply(amount, true)
}

func (h *Health) apply(amount float32, silent bool) float32 {
	if h.dead || amount <= 0 {
		return 0
	}
	prev := h.Current
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	applied := prev - h.Current
	h.OnHealthChanged.Invoke(HealthChange{Previous: prev, Current: h.Current, Max: h.Max, Silent: silent})
	if h.Current <= 0 {
		h.dead = true
		h.OnDied.Invoke()
	}
	return applied
}

// Reset revives to full health and re-enables damage.
func (h *Health) Reset() {
	prev := h.Current
	h.Current = h.Max
	h.dead = false
	h.CanTakeDamage = true
	h.OnHealthChanged.Invoke(HealthChange{Previous: prev, Current: h.Current, Max: h.Max})
}

func (h *Health) IsDead() bool { return h.dead }

func (h *Health) Fraction() float32 { return fraction(h.Current, h.Max) }

func fraction(current, max float32) float32 {
	if max <= 0 {
		return 0
	}
	f := current / max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
