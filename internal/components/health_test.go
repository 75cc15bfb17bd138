package components

import "testing"

func TestHealthDamage(t *testing.T) {
	h := NewHealth(10)
	var changes []HealthChange
	h.OnHealthChanged.AddListener(func(c HealthChange) { changes = append(changes, c) })

	applied := h.Damage(3)

	if applied != 3 {
		t.Errorf("Expected 3 applied, got %f", applied)
	}
	if h.Current != 7 {
		t.Errorf("Expected 7 health, got %f", h.Current)
	}
	if len(changes) != 1 || changes[0].Previous != 10 || changes[0].Current != 7 {
		t.Errorf("Unexpected change events: %+v", changes)
	}
}

func TestHealthImmunityBlocksDamageButNotDrain(t *testing.T) {
	h := NewHealth(10)
	h.CanTakeDamage = false

	if applied := h.Damage(5); applied != 0 {
		t.Errorf("Expected immune damage to apply 0, got %f", applied)
	}

	var silent bool
	h.OnHealthChanged.AddListener(func(c HealthChange) { silent = c.Silent })
	if applied := h.Drain(1); applied != 1 {
		t.Errorf("Expected drain to apply 1, got %f", applied)
	}
	if !silent {
		t.Error("Drain should publish a silent change")
	}
}

func TestHealthDiesOnce(t *testing.T) {
	h := NewHealth(2)
	deaths := 0
	h.OnDied.AddListener(func() { deaths++ })

	applied := h.Damage(5)
	h.Damage(1)

	if applied != 2 {
		t.Errorf("Expected overkill clamped to 2, got %f", applied)
	}
	if !h.IsDead() {
		t.Error("Expected health to be dead")
	}
	if deaths != 1 {
		t.Errorf("Expected 1 death event, got %d", deaths)
	}
	if h.Damage(1) != 0 {
		t.Error("Damage against a dead target should be a no-op")
	}
}

func TestHealthReset(t *testing.T) {
	h := NewHealth(10)
	h.Damage(10)
	if !h.IsDead() {
		t.Fatal("Expected dead after full damage")
	}

	h.Reset()
	if h.IsDead() || h.Current != 10 || !h.CanTakeDamage {
		t.Errorf("Reset should revive to full, got %+v", h)
	}
}

func TestProgressBarPercent(t *testing.T) {
	pb := NewUIProgressBar()
	pb.MaxValue = 200
	pb.SetPercent(0.25)

	if pb.Value != 50 {
		t.Errorf("Expected value 50, got %f", pb.Value)
	}
	if pb.GetPercent() != 0.25 {
		t.Errorf("Expected 0.25, got %f", pb.GetPercent())
	}

	pb.Value = 500
	if pb.GetPercent() != 1 {
		t.Error("Percent should clamp to 1")
	}

	pb.WarnAt = 0.8
	if pb.CurrentFillColor() != pb.WarnColor {
		t.Error("Expected warn color past threshold")
	}
}
