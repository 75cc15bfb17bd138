package world

import (
	"math/rand"
	"testing"

	"reflex3d/internal/audio"
	"reflex3d/internal/combat"
	"reflex3d/internal/components"
	"reflex3d/internal/config"
	"reflex3d/internal/enemies"
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const dt = float32(1.0 / 60.0)

type cueLog []audio.Cue

func (c *cueLog) Play(cue audio.Cue) { *c = append(*c, cue) }

func (c cueLog) count(cue audio.Cue) int {
	n := 0
	for _, got := range c {
		if got == cue {
			n++
		}
	}
	return n
}

func newTestWorld(t *testing.T, tweak func(*config.Config)) (*World, *cueLog) {
	t.Helper()
	cfg := config.Default()
	cfg.Spawner.MinCount = 0
	cfg.Spawner.MaxCount = 0
	cfg.Turret.Cooldown = 100
	if tweak != nil {
		tweak(&cfg)
	}
	cues := &cueLog{}
	w, err := New(cfg, DefaultArena(), cues, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return w, cues
}

func steps(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step(dt)
	}
}

func TestNewStartsInRootRoom(t *testing.T) {
	w, _ := newTestWorld(t, nil)

	if w.Room() != RootRoom {
		t.Errorf("Expected room %d, got %d", RootRoom, w.Room())
	}
	if len(w.Enemies()) != 0 {
		t.Errorf("Expected no enemies in the root room, got %d", len(w.Enemies()))
	}
	want := rl.Vector3{X: 0, Y: 0.5, Z: 0}
	if w.Player.Transform.Position != want {
		t.Errorf("Expected player at spawn %v, got %v", want, w.Player.Transform.Position)
	}
	if w.Door() == nil {
		t.Fatal("Expected a door")
	}
	if w.Nav == nil {
		t.Fatal("Expected a nav area from the floor")
	}
	if w.Nav.FloorY != 0 {
		t.Errorf("Expected floor top at 0, got %f", w.Nav.FloorY)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Player.MaxHealth = 0
	if _, err := New(cfg, DefaultArena(), nil, nil); err == nil {
		t.Error("Expected error for zero max health")
	}
}

func TestPlayerMovesWithInput(t *testing.T) {
	w, _ := newTestWorld(t, nil)

	w.SetInput(Input{Move: rl.Vector2{X: 1, Y: 0}})
	steps(w, 60)

	x := w.Player.Transform.Position.X
	if x < 5.9 || x > 6.1 {
		t.Errorf("Expected player near x=6 after 1s, got %f", x)
	}
	if w.Ticks() != 60 {
		t.Errorf("Expected 60 ticks, got %d", w.Ticks())
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.Player.Transform.Position = rl.Vector3{X: 17, Y: 0.5, Z: 0}

	w.SetInput(Input{Move: rl.Vector2{X: 1, Y: 0}})
	steps(w, 120)

	maxX := float32(20 - 0.5 + 1e-3)
	if x := w.Player.Transform.Position.X; x > maxX {
		t.Errorf("Expected player stopped by wall at x<=%f, got %f", maxX, x)
	}
}

func TestReflectedBoltDamagesTurret(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	turret := w.SpawnEnemy(enemies.EnemyTurret, rl.Vector3{X: 6, Y: 0.5, Z: 0})
	if turret == nil {
		t.Fatal("Expected turret to spawn")
	}
	health := engine.GetComponent[*components.Health](turret)

	w.SetInput(Input{Attack: true})
	steps(w, 6)
	if w.Attack().State() != combat.StateCharging {
		t.Fatalf("Expected charging, got %v", w.Attack().State())
	}

	bolt := w.Projectiles.SpawnAt(turret, rl.Vector3{X: 1.5, Z: 0}, rl.Vector3{X: -1}, 10, 1)
	w.SetInput(Input{})
	w.Step(dt)

	if bolt.Owner != w.Player {
		t.Fatalf("Expected bolt owned by player after reflect, got %v", bolt.Owner)
	}
	if bolt.Direction.X <= 0 {
		t.Errorf("Expected bolt heading toward turret, got %v", bolt.Direction)
	}

	steps(w, 60)

	if health.Current != health.Max-1 {
		t.Errorf("Expected turret health %f, got %f", health.Max-1, health.Current)
	}
	if w.Projectiles.Len() != 0 {
		t.Errorf("Expected bolt consumed, got %d live", w.Projectiles.Len())
	}
	if w.PlayerHealth().Current != w.PlayerHealth().Max {
		t.Errorf("Expected player unharmed, got %f", w.PlayerHealth().Current)
	}
	if w.Stats().Reflected != 1 {
		t.Errorf("Expected 1 reflection, got %d", w.Stats().Reflected)
	}
}

func TestEnemyBoltDamagesPlayer(t *testing.T) {
	w, cues := newTestWorld(t, nil)
	turret := w.SpawnEnemy(enemies.EnemyTurret, rl.Vector3{X: 6, Y: 0.5, Z: 0})

	var changes []components.HealthChange
	w.OnPlayerHealthChanged.AddListener(func(c components.HealthChange) {
		changes = append(changes, c)
	})

	w.Projectiles.SpawnAt(turret, rl.Vector3{X: 3}, rl.Vector3{X: -1}, 10, 1)
	steps(w, 30)

	if w.PlayerHealth().Current != w.PlayerHealth().Max-1 {
		t.Errorf("Expected player hit once, got health %f", w.PlayerHealth().Current)
	}
	if len(changes) != 1 {
		t.Errorf("Expected 1 health event, got %d", len(changes))
	}
	if cues.count(audio.CueTakeDamage) != 1 {
		t.Errorf("Expected 1 take-damage cue, got %d", cues.count(audio.CueTakeDamage))
	}
	if w.Projectiles.Len() != 0 {
		t.Errorf("Expected bolt consumed, got %d", w.Projectiles.Len())
	}
}

func TestBoltStopsAtPillar(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	turret := w.SpawnEnemy(enemies.EnemyTurret, rl.Vector3{X: 12, Y: 0.5, Z: 8})

	w.Projectiles.SpawnAt(turret, rl.Vector3{X: 11, Z: 8}, rl.Vector3{X: -1}, 10, 1)
	steps(w, 30)

	if w.Projectiles.Len() != 0 {
		t.Errorf("Expected bolt destroyed by pillar, got %d", w.Projectiles.Len())
	}
}

func TestKilledEnemyIsRemoved(t *testing.T) {
	w, cues := newTestWorld(t, nil)
	turret := w.SpawnEnemy(enemies.EnemyTurret, rl.Vector3{X: 1.5, Y: 0.5, Z: 0})

	var destroyed []EnemyDestroyed
	w.OnEnemyDestroyed.AddListener(func(e EnemyDestroyed) {
		destroyed = append(destroyed, e)
	})

	engine.GetComponent[*enemies.Enemy](turret).TakeHit(100)
	w.Step(dt)

	if !turret.Destroyed() {
		t.Error("Expected dead turret destroyed")
	}
	if len(w.Enemies()) != 0 {
		t.Errorf("Expected no enemies, got %d", len(w.Enemies()))
	}
	if len(destroyed) != 1 || !destroyed[0].Killed || destroyed[0].Type != enemies.EnemyTurret {
		t.Errorf("Expected one killed turret event, got %+v", destroyed)
	}
	if w.Stats().Kills != 1 {
		t.Errorf("Expected 1 kill, got %d", w.Stats().Kills)
	}
	if cues.count(audio.CueEnemyDeath) != 1 {
		t.Errorf("Expected 1 death cue, got %d", cues.count(audio.CueEnemyDeath))
	}
}

func TestBombExplodesOnPlayer(t *testing.T) {
	w, cues := newTestWorld(t, nil)
	bomb := w.SpawnEnemy(enemies.EnemyBomb, rl.Vector3{X: 1.5, Y: 0.5, Z: 0})

	var destroyed []EnemyDestroyed
	w.OnEnemyDestroyed.AddListener(func(e EnemyDestroyed) {
		destroyed = append(destroyed, e)
	})

	steps(w, 90)

	want := w.PlayerHealth().Max - w.Config.Bomb.ExplosionDamage
	if w.PlayerHealth().Current != want {
		t.Errorf("Expected player health %f, got %f", want, w.PlayerHealth().Current)
	}
	if !bomb.Destroyed() {
		t.Error("Expected bomb gone after exploding")
	}
	if len(destroyed) != 1 || destroyed[0].Killed {
		t.Errorf("Expected one self-destroy event, got %+v", destroyed)
	}
	if w.Stats().Kills != 0 {
		t.Errorf("Expected explosion not counted as kill, got %d", w.Stats().Kills)
	}
	if cues.count(audio.CueExplosion) != 1 {
		t.Errorf("Expected 1 explosion cue, got %d", cues.count(audio.CueExplosion))
	}
}

func TestLoadRoomTearsDown(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.Config) {
		c.Spawner.MinCount = 3
		c.Spawner.MaxCount = 3
	})

	w.LoadRoom(0)
	extra := w.SpawnEnemy(enemies.EnemyTurret, rl.Vector3{X: 5, Y: 0.5, Z: 5})
	w.Projectiles.Spawn(extra, rl.Vector3{X: 1}, 10, 1)
	w.Projectiles.Spawn(extra, rl.Vector3{Z: 1}, 10, 1)
	old := w.Enemies()
	if len(old) == 0 {
		t.Fatal("Expected enemies before teardown")
	}

	w.Player.Transform.Position = rl.Vector3{X: 10, Y: 0.5, Z: 10}
	w.LoadRoom(1)

	if w.Projectiles.Len() != 0 {
		t.Errorf("Expected 0 projectiles after load, got %d", w.Projectiles.Len())
	}
	for _, g := range old {
		if !g.Destroyed() {
			t.Errorf("Expected %s destroyed by teardown", g.Name)
		}
		if w.Scene.FindByUID(g.UID) != nil {
			t.Errorf("Expected %s out of the scene", g.Name)
		}
	}
	if w.Player.Destroyed() {
		t.Error("Expected player to survive teardown")
	}
	if w.Scene.FindByUID(w.Player.UID) == nil {
		t.Error("Expected player back in the scene")
	}
	if w.Player.Transform.Position != (rl.Vector3{X: 0, Y: 0.5, Z: 0}) {
		t.Errorf("Expected player at spawn, got %v", w.Player.Transform.Position)
	}
	stale := make(map[uint64]bool, len(old))
	for _, g := range old {
		stale[g.UID] = true
	}
	for _, g := range w.Enemies() {
		if stale[g.UID] {
			t.Errorf("Expected only fresh enemies, found %s", g.Name)
		}
	}
}

func TestRoomEventsFireInOrder(t *testing.T) {
	w, _ := newTestWorld(t, nil)

	var order []string
	w.OnRoomLoaded.AddListener(func(i int) { order = append(order, "loaded") })
	w.OnNewRoomLoaded.AddListener(func(i int) { order = append(order, "new") })
	w.OnRoomCleared.AddListener(func(i int) { order = append(order, "cleared") })

	w.LoadRoom(0)
	w.Step(dt)

	want := []string{"loaded", "new", "cleared"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, order)
			break
		}
	}
	if !w.DoorOpen() || !w.RoomCleared() {
		t.Error("Expected empty room cleared with door open")
	}
	if w.Stats().RoomsCleared != 1 {
		t.Errorf("Expected 1 room cleared, got %d", w.Stats().RoomsCleared)
	}
}

func TestRoomStaysLockedWhileEnemiesLive(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.LoadRoom(0)
	turret := w.SpawnEnemy(enemies.EnemyTurret, rl.Vector3{X: 10, Y: 0.5, Z: 0})

	steps(w, 5)
	if w.DoorOpen() {
		t.Error("Expected door closed while the turret lives")
	}

	engine.GetComponent[*enemies.Enemy](turret).TakeHit(100)
	w.Step(dt)
	if !w.DoorOpen() {
		t.Error("Expected door open after the last enemy died")
	}
}

func TestDoorLoadsNextRoom(t *testing.T) {
	w, cues := newTestWorld(t, nil)
	w.Step(dt)
	if !w.DoorOpen() {
		t.Fatal("Expected root room door open")
	}

	door := w.Door().Transform.Position
	w.Player.Transform.Position = rl.Vector3{X: door.X, Y: 0.5, Z: door.Z - 1}
	w.SetInput(Input{Attack: true})
	w.Step(dt)

	if w.Room() != 0 {
		t.Errorf("Expected room 0 after using door, got %d", w.Room())
	}
	if w.Attack().State() != combat.StateIdle {
		t.Errorf("Expected door press not to charge, got %v", w.Attack().State())
	}
	if cues.count(audio.CuePlayerCharging) != 0 {
		t.Errorf("Expected no charging cue, got %d", cues.count(audio.CuePlayerCharging))
	}
}

func TestDoorOutOfReachCharges(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.Step(dt)

	w.SetInput(Input{Attack: true})
	w.Step(dt)

	if w.Room() != RootRoom {
		t.Errorf("Expected to stay in root room, got %d", w.Room())
	}
	if w.Attack().State() != combat.StateCharging {
		t.Errorf("Expected charging, got %v", w.Attack().State())
	}
}

func TestGameOverAndReset(t *testing.T) {
	w, cues := newTestWorld(t, nil)

	died := 0
	w.OnPlayerDied.AddListener(func() { died++ })

	w.PlayerHealth().Damage(w.PlayerHealth().Max)
	if !w.GameOver() {
		t.Fatal("Expected game over")
	}
	if died != 1 {
		t.Errorf("Expected 1 died event, got %d", died)
	}
	if cues.count(audio.CueGameOver) != 1 {
		t.Errorf("Expected game-over cue, got %d", cues.count(audio.CueGameOver))
	}

	ticks := w.Ticks()
	w.Step(dt)
	if w.Ticks() != ticks {
		t.Error("Expected Step to do nothing after game over")
	}

	w.LoadRoom(2)
	w.Reset()
	if w.GameOver() {
		t.Error("Expected game over cleared by Reset")
	}
	if w.PlayerHealth().Current != w.PlayerHealth().Max {
		t.Errorf("Expected full health, got %f", w.PlayerHealth().Current)
	}
	if w.Room() != RootRoom {
		t.Errorf("Expected root room after reset, got %d", w.Room())
	}
}

func TestStatsCountTurretVolleys(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.Config) {
		c.Turret.Cooldown = 0.1
	})
	g := w.SpawnEnemy(enemies.EnemyTurret, rl.Vector3{X: 6, Y: 0.5, Z: 0})
	turret := engine.GetComponent[*enemies.Turret](g)

	steps(w, 30)
	fired := turret.Volleys()
	if fired == 0 {
		t.Fatal("Expected the turret to fire")
	}
	if w.Stats().Volleys != fired {
		t.Errorf("Expected %d volleys from the live turret, got %d", fired, w.Stats().Volleys)
	}

	engine.GetComponent[*enemies.Enemy](g).TakeHit(100)
	w.Step(dt)
	if !g.Destroyed() {
		t.Fatal("Expected dead turret destroyed")
	}
	if w.Stats().Volleys != fired {
		t.Errorf("Expected %d volleys kept after removal, got %d", fired, w.Stats().Volleys)
	}
}

func TestSpawnerTypesFromConfig(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	if len(w.Spawner.Types) != 2 {
		t.Errorf("Expected every registered type by default, got %v", w.Spawner.Types)
	}

	w, _ = newTestWorld(t, func(c *config.Config) {
		c.Spawner.Types = []string{"bomb"}
		c.Spawner.MinCount = 4
		c.Spawner.MaxCount = 4
	})
	if len(w.Spawner.Types) != 1 || w.Spawner.Types[0] != enemies.EnemyBomb {
		t.Fatalf("Expected [bomb], got %v", w.Spawner.Types)
	}
	w.LoadRoom(0)
	for _, g := range w.Enemies() {
		if e := engine.GetComponent[*enemies.Enemy](g); e.Type != enemies.EnemyBomb {
			t.Errorf("Expected only bombs, got %s", e.Type)
		}
	}
}

func TestNewRejectsUnknownSpawnerType(t *testing.T) {
	cfg := config.Default()
	cfg.Spawner.Types = []string{"dragon"}
	if _, err := New(cfg, DefaultArena(), nil, nil); err == nil {
		t.Error("Expected error for unknown spawner type")
	}
}
