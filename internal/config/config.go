// Package config loads the game's JSON settings. A config file only needs
// the keys it changes; everything else keeps its default.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"reflex3d/internal/audio"
	"reflex3d/internal/combat"
	"reflex3d/internal/enemies"
	"reflex3d/internal/projectile"
)

type Window struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	Title     string `json:"title"`
	TargetFPS int32  `json:"targetFPS"`
}

type Sim struct {
	// TickRate is the fixed simulation rate in Hz.
	TickRate float32 `json:"tickRate"`
	// MaxFrameDelta caps the real time fed to the accumulator per frame.
	MaxFrameDelta float32 `json:"maxFrameDelta"`
	// Seed 0 seeds from the clock.
	Seed int64 `json:"seed"`
}

type Player struct {
	MaxHealth float32 `json:"maxHealth"`
	MoveSpeed float32 `json:"moveSpeed"`
	Radius    float32 `json:"radius"`
}

type Rooms struct {
	// Arena is the scene file rebuilt on every room load. Empty uses the
	// built-in arena.
	Arena      string  `json:"arena"`
	DoorRadius float32 `json:"doorRadius"`
	// NavMargin is the clearance the spawner keeps from walls.
	NavMargin float32 `json:"navMargin"`
}

type Audio struct {
	Volume float32 `json:"volume"`
	Muted  bool    `json:"muted"`
	// Clips maps cue names ("enemy-shoot") to sound files.
	Clips map[string]string `json:"clips"`
}

type Config struct {
	Window      Window                  `json:"window"`
	Sim         Sim                     `json:"sim"`
	Player      Player                  `json:"player"`
	Attack      combat.Settings         `json:"attack"`
	Projectiles projectile.Settings     `json:"projectiles"`
	Turret      enemies.TurretSettings  `json:"turret"`
	Bomb        enemies.BombSettings    `json:"bomb"`
	Spawner     enemies.SpawnerSettings `json:"spawner"`
	Rooms       Rooms                   `json:"rooms"`
	Audio       Audio                   `json:"audio"`
}

func Default() Config {
	clips := make(map[string]string)
	for _, cue := range []audio.Cue{
		audio.CueTakeDamage, audio.CuePlayerCharging, audio.CuePlayerAttack,
		audio.CuePlayerAttackCharged, audio.CueGameOver, audio.CueEnemyShoot,
		audio.CueEnemyDeath, audio.CueBombArmed, audio.CueExplosion,
		audio.CueDoorOpen, audio.CueBackground1, audio.CueBackground2,
		audio.CueBackground3, audio.CueStartUp,
	} {
		clips[cue.String()] = "assets/audio/" + cue.String() + ".wav"
	}

	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "reflex3d",
			TargetFPS: 144,
		},
		Sim: Sim{
			TickRate:      60,
			MaxFrameDelta: 0.25,
		},
		Player: Player{
			MaxHealth: 20,
			MoveSpeed: 6,
			Radius:    0.5,
		},
		Attack:      combat.DefaultSettings(),
		Projectiles: projectile.DefaultSettings(),
		Turret:      enemies.DefaultTurretSettings(),
		Bomb:        enemies.DefaultBombSettings(),
		Spawner:     enemies.DefaultSpawnerSettings(),
		Rooms: Rooms{
			DoorRadius: 2.0,
			NavMargin:  1.0,
		},
		Audio: Audio{
			Volume: 0.8,
			Clips:  clips,
		},
	}
}

// Load overlays the file at path onto Default and validates the result.
// Arrays in the file replace the default arrays element by element.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// TickInterval is the fixed step in seconds.
func (c Config) TickInterval() float32 {
	return 1 / c.Sim.TickRate
}

func (c Config) Validate() error {
	var errs []error

	if c.Sim.TickRate <= 0 {
		errs = append(errs, errors.New("sim.tickRate must be positive"))
	}
	if c.Sim.MaxFrameDelta <= 0 {
		errs = append(errs, errors.New("sim.maxFrameDelta must be positive"))
	}
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, errors.New("player.maxHealth must be positive"))
	}
	if c.Player.MoveSpeed < 0 {
		errs = append(errs, errors.New("player.moveSpeed must not be negative"))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, errors.New("player.radius must be positive"))
	}
	if err := c.Attack.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("attack: %w", err))
	}
	if c.Projectiles.Lifetime <= 0 {
		errs = append(errs, errors.New("projectiles.lifetime must be positive"))
	}
	if c.Turret.Cooldown <= 0 {
		errs = append(errs, errors.New("turret.cooldown must be positive"))
	}
	if c.Turret.BulletSpeed <= 0 {
		errs = append(errs, errors.New("turret.bulletSpeed must be positive"))
	}
	if c.Bomb.FuseTime <= 0 {
		errs = append(errs, errors.New("bomb.fuseTime must be positive"))
	}
	s := c.Spawner
	if s.MinCount < 0 || s.MaxCount < s.MinCount {
		errs = append(errs, fmt.Errorf("spawner: bad count range [%d, %d]", s.MinCount, s.MaxCount))
	}
	if s.MinDistance < 0 || s.MaxDistance < s.MinDistance {
		errs = append(errs, fmt.Errorf("spawner: bad distance range [%g, %g)", s.MinDistance, s.MaxDistance))
	}
	if s.MaxAttempts <= 0 {
		errs = append(errs, errors.New("spawner.maxAttempts must be positive"))
	}
	for _, name := range s.Types {
		if _, err := enemies.ParseEnemyType(name); err != nil {
			errs = append(errs, fmt.Errorf("spawner.types: %w", err))
		}
	}
	if c.Rooms.DoorRadius <= 0 {
		errs = append(errs, errors.New("rooms.doorRadius must be positive"))
	}
	for name := range c.Audio.Clips {
		if _, err := audio.ParseCue(name); err != nil {
			errs = append(errs, fmt.Errorf("audio.clips: %w", err))
		}
	}

	return errors.Join(errs...)
}
