// Headless batch runner: plays the arena with a scripted bot and prints
// one results row per run.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"reflex3d/internal/config"
	"reflex3d/internal/world"
)

type result struct {
	seed     int64
	rooms    int
	stats    world.Stats
	simTime  float64
	wallTime time.Duration
	died     bool
}

func main() {
	configPath := flag.String("config", "", "config file (defaults when empty)")
	scenePath := flag.String("scene", "", "arena scene file")
	runs := flag.Int("runs", 5, "number of runs")
	seconds := flag.Float64("seconds", 120, "simulated seconds per run")
	seed := flag.Int64("seed", 42, "seed of the first run")
	quiet := flag.Bool("quiet", true, "suppress simulation logs")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	var arena *world.SceneFile
	if *scenePath != "" {
		var err error
		if arena, err = world.LoadSceneFile(*scenePath); err != nil {
			log.Fatal(err)
		}
	}

	if *quiet {
		log.SetOutput(io.Discard)
	}

	fmt.Printf("%4s %8s %6s %6s %6s %10s %8s %8s %9s %10s %s\n",
		"run", "seed", "rooms", "kills", "hits", "reflected", "volleys", "damage", "sim", "wall", "outcome")

	for i := 0; i < *runs; i++ {
		r, err := simulate(cfg, arena, *seed+int64(i), *seconds)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		outcome := "survived"
		if r.died {
			outcome = "died"
		}
		fmt.Printf("%4d %8d %6d %6d %6d %10d %8d %8.1f %8.1fs %10v %s\n",
			i+1, r.seed, r.rooms, r.stats.Kills, r.stats.Hits, r.stats.Reflected,
			r.stats.Volleys, r.stats.DamageTaken, r.simTime, r.wallTime.Round(time.Microsecond), outcome)
	}
}

func simulate(cfg config.Config, arena *world.SceneFile, seed int64, seconds float64) (result, error) {
	w, err := world.New(cfg, arena, nil, rand.New(rand.NewSource(seed)))
	if err != nil {
		return result{}, err
	}

	b := &bot{w: w}
	step := cfg.TickInterval()
	start := time.Now()
	for w.Time() < seconds && !w.GameOver() {
		w.SetInput(b.think())
		w.Step(step)
	}

	return result{
		seed:     seed,
		rooms:    w.Stats().RoomsCleared,
		stats:    w.Stats(),
		simTime:  w.Time(),
		wallTime: time.Since(start),
		died:     w.GameOver(),
	}, nil
}
