package combat

import (
	"errors"
	"fmt"
)

// AttackProfile describes one tier of the charge attack. A release whose
// charge time falls in [ChargeTimeMin, ChargeTimeMax) selects the profile.
type AttackProfile struct {
	Name             string  `json:"name"`
	ChargeTimeMin    float32 `json:"chargeTimeMin"`
	ChargeTimeMax    float32 `json:"chargeTimeMax"`
	Radius           float32 `json:"radius"`
	Duration         float32 `json:"duration"`
	Damage           float32 `json:"damage"`
	EnemyHitCooldown float32 `json:"enemyHitCooldown"`
	CanReflect       bool    `json:"canReflect"`
	HasImmunity      bool    `json:"hasImmunity"`
	IsRushAttack     bool    `json:"isRushAttack"`
	RushDistance     float32 `json:"rushDistance"`
}

// SelectProfile picks the profile for a charge of the given duration.
// Profiles are tried in order and the first window that contains charge
// wins; a charge past every window, or in a gap between windows, falls
// through to the last profile. A charge under the first minimum selects
// nothing.
func SelectProfile(profiles []AttackProfile, charge float32) (int, bool) {
	if len(profiles) == 0 || charge < profiles[0].ChargeTimeMin {
		return -1, false
	}
	for i, p := range profiles {
		if charge >= p.ChargeTimeMin && charge < p.ChargeTimeMax {
			return i, true
		}
	}
	return len(profiles) - 1, true
}

// ValidateProfiles reports every problem found in the profile list.
func ValidateProfiles(profiles []AttackProfile) error {
	if len(profiles) == 0 {
		return errors.New("no attack profiles")
	}
	var errs []error
	for i, p := range profiles {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if p.ChargeTimeMin < 0 {
			errs = append(errs, fmt.Errorf("profile %s: negative charge time", name))
		}
		if p.ChargeTimeMax <= p.ChargeTimeMin {
			errs = append(errs, fmt.Errorf("profile %s: empty charge window [%g, %g)", name, p.ChargeTimeMin, p.ChargeTimeMax))
		}
		if p.Radius <= 0 {
			errs = append(errs, fmt.Errorf("profile %s: radius must be positive", name))
		}
		if p.Duration <= 0 {
			errs = append(errs, fmt.Errorf("profile %s: duration must be positive", name))
		}
		if p.EnemyHitCooldown < 0 {
			errs = append(errs, fmt.Errorf("profile %s: negative hit cooldown", name))
		}
		if p.IsRushAttack && p.RushDistance <= 0 {
			errs = append(errs, fmt.Errorf("profile %s: rush attack needs a rush distance", name))
		}
		if i > 0 && p.ChargeTimeMin < profiles[i-1].ChargeTimeMin {
			errs = append(errs, fmt.Errorf("profile %s: charge windows out of order", name))
		}
	}
	return errors.Join(errs...)
}

// Settings configures the player's attack controller.
type Settings struct {
	Profiles []AttackProfile `json:"profiles"`
	// ChargeMoveMultiplier scales movement speed while charging.
	ChargeMoveMultiplier float32 `json:"chargeMoveMultiplier"`
	// Holding a charge drains DrainDamage health every DrainInterval seconds.
	DrainInterval float32 `json:"drainInterval"`
	DrainDamage   float32 `json:"drainDamage"`
}

func DefaultSettings() Settings {
	return Settings{
		Profiles: []AttackProfile{
			{
				Name:             "spin",
				ChargeTimeMin:    0.05,
				ChargeTimeMax:    0.6,
				Radius:           2.0,
				Duration:         0.3,
				Damage:           1,
				EnemyHitCooldown: 0.25,
				CanReflect:       true,
			},
			{
				Name:             "charged-spin",
				ChargeTimeMin:    0.6,
				ChargeTimeMax:    1.5,
				Radius:           3.5,
				Duration:         0.5,
				Damage:           2,
				EnemyHitCooldown: 0.3,
				CanReflect:       true,
				HasImmunity:      true,
			},
			{
				Name:             "rush",
				ChargeTimeMin:    1.5,
				ChargeTimeMax:    3.0,
				Radius:           2.5,
				Duration:         0.4,
				Damage:           3,
				EnemyHitCooldown: 0.2,
				CanReflect:       true,
				HasImmunity:      true,
				IsRushAttack:     true,
				RushDistance:     8,
			},
		},
		ChargeMoveMultiplier: 0.5,
		DrainInterval:        1.0,
		DrainDamage:          1,
	}
}

func (s Settings) Validate() error {
	var errs []error
	if err := ValidateProfiles(s.Profiles); err != nil {
		errs = append(errs, err)
	}
	if s.ChargeMoveMultiplier < 0 {
		errs = append(errs, errors.New("charge move multiplier must not be negative"))
	}
	if s.DrainInterval <= 0 {
		errs = append(errs, errors.New("drain interval must be positive"))
	}
	return errors.Join(errs...)
}
