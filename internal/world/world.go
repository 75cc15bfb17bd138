// Package world runs the game simulation: one player, the current room's
// enemies and projectiles, advanced in fixed steps.
package world

import (
	"fmt"
	"log"
	"math/rand"
	"slices"
	"time"

	"reflex3d/internal/audio"
	"reflex3d/internal/combat"
	"reflex3d/internal/components"
	"reflex3d/internal/config"
	"reflex3d/internal/enemies"
	"reflex3d/internal/engine"
	"reflex3d/internal/nav"
	"reflex3d/internal/physics"
	"reflex3d/internal/projectile"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RootRoom is the enemy-free room a run starts in.
const RootRoom = -1

// Input is the player's controls for one step. Move is the unit stick with
// Y pointing toward world +Z.
type Input struct {
	Move   rl.Vector2
	Attack bool
}

// EnemyDestroyed is published when an enemy leaves the room.
type EnemyDestroyed struct {
	Object   *engine.GameObject
	Type     enemies.EnemyType
	Position rl.Vector3
	// Killed is false for enemies that removed themselves (bombs going off).
	Killed bool
}

// Stats are run totals. Hits counts melee hits since the player was built.
// Volleys counts turret volleys, including those of turrets still alive.
type Stats struct {
	Kills        int
	Hits         int
	Reflected    int
	DamageTaken  float32
	RoomsCleared int
	Volleys      int
}

type World struct {
	Config      config.Config
	Scene       *engine.Scene
	Physics     *physics.World
	Projectiles *projectile.Registry
	Nav         *nav.Area
	Catalog     *enemies.Catalog
	Spawner     *enemies.Spawner
	Cues        audio.CuePlayer
	Rand        *rand.Rand

	Player *engine.GameObject

	OnPlayerHealthChanged engine.EventWithArg[components.HealthChange]
	OnPlayerDied          engine.Event
	OnRoomLoaded          engine.EventWithArg[int]
	OnNewRoomLoaded       engine.EventWithArg[int]
	OnRoomCleared         engine.EventWithArg[int]
	OnEnemyDestroyed      engine.EventWithArg[EnemyDestroyed]

	playerHealth *components.Health
	playerBody   *components.Rigidbody
	movement     *PlayerMovement
	attack       *combat.AttackController

	arena      *SceneFile
	spawnPoint rl.Vector3
	door       *engine.GameObject

	input       Input
	attackHeld  bool
	time        float64
	ticks       uint64
	room        int
	roomCleared bool
	doorOpen    bool
	pendingRoom *int
	gameOver    bool
	stats       Stats
}

// New builds a world from cfg and loads the root room. arena may be nil to
// use cfg.Rooms.Arena, or the built-in arena when that is empty.
func New(cfg config.Config, arena *SceneFile, cues audio.CuePlayer, r *rand.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if arena == nil {
		if cfg.Rooms.Arena != "" {
			sf, err := LoadSceneFile(cfg.Rooms.Arena)
			if err != nil {
				return nil, err
			}
			arena = sf
		} else {
			arena = DefaultArena()
		}
	} else if err := arena.Validate(); err != nil {
		return nil, fmt.Errorf("arena %s: %w", arena.Name, err)
	}
	if cues == nil {
		cues = audio.NewController(nil)
	}
	if r == nil {
		seed := cfg.Sim.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		r = rand.New(rand.NewSource(seed))
	}

	w := &World{
		Config:      cfg,
		Scene:       engine.NewScene("Room"),
		Physics:     physics.NewWorld(),
		Projectiles: projectile.NewRegistry(cfg.Projectiles),
		Catalog:     enemies.NewCatalog(),
		Cues:        cues,
		Rand:        r,
		arena:       arena,
		room:        RootRoom,
	}

	w.buildPlayer()
	w.registerEnemies()
	types, err := w.spawnTypes()
	if err != nil {
		return nil, err
	}
	w.Spawner = enemies.NewSpawner(cfg.Spawner, w, w, r, func() rl.Vector3 {
		return w.Player.Transform.Position
	})
	w.Spawner.Types = types
	w.OnNewRoomLoaded.AddListener(func(index int) {
		w.Spawner.OnNewRoomLoaded(index)
	})

	w.LoadRoom(RootRoom)
	return w, nil
}

func (w *World) buildPlayer() {
	cfg := w.Config
	w.Player = newPlayer(cfg.Player.MaxHealth, cfg.Player.MoveSpeed, cfg.Player.Radius)
	w.playerHealth = engine.GetComponent[*components.Health](w.Player)
	w.playerBody = engine.GetComponent[*components.Rigidbody](w.Player)
	w.movement = engine.GetComponent[*PlayerMovement](w.Player)

	w.attack = combat.NewAttackController(cfg.Attack, environment{w}, w.Cues)
	w.attack.Interact = w.interact
	w.Player.AddComponent(w.attack)

	w.playerHealth.OnHealthChanged.AddListener(w.onPlayerHealthChanged)
	w.playerHealth.OnDied.AddListener(w.onPlayerDied)
}

func (w *World) registerEnemies() {
	cfg := w.Config
	w.Catalog.Register(enemies.EnemyTurret, func(pos rl.Vector3) *engine.GameObject {
		g := engine.NewGameObject("Turret")
		g.Name = fmt.Sprintf("Turret_%d", g.UID)
		g.Tags = []string{engine.TagEnemy}
		g.Transform.Position = pos
		g.AddComponent(enemies.NewEnemy(enemies.EnemyTurret))
		g.AddComponent(components.NewHealth(cfg.Turret.MaxHealth))
		g.AddComponent(components.NewSphereCollider(cfg.Turret.Radius))
		g.AddComponent(components.NewMeshRenderer(components.MeshCylinder, rl.Orange,
			rl.Vector3{X: cfg.Turret.Radius, Y: 1.2, Z: cfg.Turret.Radius}))
		g.AddComponent(enemies.NewTurret(cfg.Turret, enemies.RandomPattern(w.Rand), w.Projectiles, w.Cues))
		return g
	})
	w.Catalog.Register(enemies.EnemyBomb, func(pos rl.Vector3) *engine.GameObject {
		g := engine.NewGameObject("Bomb")
		g.Name = fmt.Sprintf("Bomb_%d", g.UID)
		g.Tags = []string{engine.TagEnemy}
		g.Transform.Position = pos
		g.AddComponent(enemies.NewEnemy(enemies.EnemyBomb))
		g.AddComponent(components.NewHealth(cfg.Bomb.MaxHealth))
		g.AddComponent(components.NewSphereCollider(cfg.Bomb.Radius))
		g.AddComponent(components.NewRigidbody())
		g.AddComponent(components.NewMeshRenderer(components.MeshSphere, rl.Maroon,
			rl.Vector3{X: cfg.Bomb.Radius, Y: cfg.Bomb.Radius, Z: cfg.Bomb.Radius}))
		g.AddComponent(enemies.NewBomb(cfg.Bomb, w, w.Cues))
		return g
	})
}

// spawnTypes resolves spawner.types against the catalog. An empty list
// spawns every registered type.
func (w *World) spawnTypes() ([]enemies.EnemyType, error) {
	registered := w.Catalog.Types()
	names := w.Config.Spawner.Types
	if len(names) == 0 {
		return registered, nil
	}

	types := make([]enemies.EnemyType, 0, len(names))
	for _, name := range names {
		t, err := enemies.ParseEnemyType(name)
		if err != nil {
			return nil, fmt.Errorf("spawner: %w", err)
		}
		if !slices.Contains(registered, t) {
			return nil, fmt.Errorf("spawner: enemy %q has no factory", t)
		}
		types = append(types, t)
	}
	return types, nil
}

// SpawnEnemy places an enemy into the current room.
func (w *World) SpawnEnemy(t enemies.EnemyType, pos rl.Vector3) *engine.GameObject {
	g, err := w.Catalog.Create(t, pos)
	if err != nil {
		log.Printf("World: spawn %s: %v", t, err)
		return nil
	}
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	g.Start()
	return g
}

// SamplePosition implements enemies.Sampler over the room's nav area.
func (w *World) SamplePosition(p rl.Vector3, maxDistance float32) (rl.Vector3, bool) {
	if w.Nav == nil {
		return rl.Vector3{}, false
	}
	return w.Nav.SamplePosition(p, maxDistance)
}

// SetInput records the controls used by the next Step.
func (w *World) SetInput(in Input) {
	w.input = in
}

// Reset starts a new run from the root room with full health.
func (w *World) Reset() {
	w.gameOver = false
	w.stats = Stats{}
	w.input = Input{}
	w.attackHeld = false
	w.attack.Cancel()
	w.playerHealth.Reset()
	w.LoadRoom(RootRoom)
}

func (w *World) onPlayerHealthChanged(c components.HealthChange) {
	if c.Current < c.Previous {
		w.stats.DamageTaken += c.Previous - c.Current
		if !c.Silent {
			w.Cues.Play(audio.CueTakeDamage)
		}
	}
	w.OnPlayerHealthChanged.Invoke(c)
}

func (w *World) onPlayerDied() {
	w.gameOver = true
	w.attack.Cancel()
	w.Cues.Play(audio.CueGameOver)
	log.Printf("World: player died in room %d after %.1fs", w.room, w.time)
	w.OnPlayerDied.Invoke()
}

func (w *World) Attack() *combat.AttackController { return w.attack }

func (w *World) PlayerHealth() *components.Health { return w.playerHealth }

func (w *World) Room() int { return w.room }

func (w *World) RoomCleared() bool { return w.roomCleared }

func (w *World) Door() *engine.GameObject { return w.door }

func (w *World) DoorOpen() bool { return w.doorOpen }

func (w *World) GameOver() bool { return w.gameOver }

// Time is the simulation clock in seconds.
func (w *World) Time() float64 { return w.time }

func (w *World) Ticks() uint64 { return w.ticks }

func (w *World) Stats() Stats {
	s := w.stats
	s.Hits = w.attack.Hits()
	for _, g := range w.Scene.FindByTag(engine.TagEnemy) {
		if t := engine.GetComponent[*enemies.Turret](g); t != nil {
			s.Volleys += t.Volleys()
		}
	}
	return s
}

// Enemies returns the live enemies of the room.
func (w *World) Enemies() []*engine.GameObject {
	var live []*engine.GameObject
	for _, g := range w.Scene.FindByTag(engine.TagEnemy) {
		if e := engine.GetComponent[*enemies.Enemy](g); e != nil && e.Alive() {
			live = append(live, g)
		}
	}
	return live
}
