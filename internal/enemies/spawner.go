package enemies

import (
	"log"
	"math"
	"math/rand"

	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sampler snaps a point to the walkable area.
type Sampler interface {
	SamplePosition(p rl.Vector3, maxDistance float32) (rl.Vector3, bool)
}

// EnemySpawner places an enemy into the running room.
type EnemySpawner interface {
	SpawnEnemy(t EnemyType, pos rl.Vector3) *engine.GameObject
}

type SpawnerSettings struct {
	MinCount     int     `json:"minCount"`
	MaxCount     int     `json:"maxCount"`
	MinDistance  float32 `json:"minDistance"`
	MaxDistance  float32 `json:"maxDistance"`
	SampleRadius float32 `json:"sampleRadius"`
	MaxAttempts  int     `json:"maxAttempts"`
	// Lift raises spawned enemies above the sampled ground point.
	Lift float32 `json:"lift"`
	// Types names the enemies rooms draw from ("bomb", "turret"). Empty
	// means all of them.
	Types []string `json:"types,omitempty"`
}

func DefaultSpawnerSettings() SpawnerSettings {
	return SpawnerSettings{
		MinCount:     3,
		MaxCount:     8,
		MinDistance:  10,
		MaxDistance:  20,
		SampleRadius: 2.0,
		MaxAttempts:  10,
		Lift:         0.5,
	}
}

// Spawner fills a freshly loaded room with enemies around the player.
type Spawner struct {
	Settings SpawnerSettings
	Sampler  Sampler
	Target   EnemySpawner
	Rand     *rand.Rand
	// Origin returns the point enemies are scattered around.
	Origin func() rl.Vector3
	Types  []EnemyType
}

func NewSpawner(settings SpawnerSettings, sampler Sampler, target EnemySpawner, r *rand.Rand, origin func() rl.Vector3) *Spawner {
	return &Spawner{
		Settings: settings,
		Sampler:  sampler,
		Target:   target,
		Rand:     r,
		Origin:   origin,
		Types:    AllTypes(),
	}
}

// OnNewRoomLoaded spawns the room's enemies and returns how many were placed.
// Negative indices are rooms without enemies.
func (s *Spawner) OnNewRoomLoaded(index int) int {
	if index < 0 || len(s.Types) == 0 {
		return 0
	}

	count := s.Settings.MinCount
	if span := s.Settings.MaxCount - s.Settings.MinCount; span > 0 {
		count += s.Rand.Intn(span + 1)
	}

	placed := 0
	for i := 0; i < count; i++ {
		t := s.Types[s.Rand.Intn(len(s.Types))]
		if s.place(t) {
			placed++
		}
	}
	log.Printf("Spawner: room %d spawned %d/%d enemies", index, placed, count)
	return placed
}

// place tries up to MaxAttempts random points; a spawn whose attempts all
// fail is dropped.
func (s *Spawner) place(t EnemyType) bool {
	var origin rl.Vector3
	if s.Origin != nil {
		origin = s.Origin()
	}

	for attempt := 0; attempt < s.Settings.MaxAttempts; attempt++ {
		candidate := rl.Vector3Add(origin, s.randomOffset())
		pos, ok := s.Sampler.SamplePosition(candidate, s.Settings.SampleRadius)
		if !ok {
			continue
		}
		pos.Y += s.Settings.Lift
		if s.Target != nil {
			s.Target.SpawnEnemy(t, pos)
		}
		return true
	}
	return false
}

func (s *Spawner) randomOffset() rl.Vector3 {
	angle := s.Rand.Float64() * 2 * math.Pi
	span := s.Settings.MaxDistance - s.Settings.MinDistance
	dist := s.Settings.MinDistance + float32(s.Rand.Float64())*span
	return rl.Vector3{
		X: float32(math.Cos(angle)) * dist,
		Z: float32(math.Sin(angle)) * dist,
	}
}
