package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"reflex3d/internal/config"
	"reflex3d/internal/game"
	"reflex3d/internal/world"
)

func main() {
	configPath := flag.String("config", "assets/config.json", "config file; missing file uses defaults")
	scenePath := flag.String("scene", "", "arena scene file (overrides rooms.arena)")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var arena *world.SceneFile
	if *scenePath != "" {
		arena, err = world.LoadSceneFile(*scenePath)
		if err != nil {
			log.Fatal(err)
		}
	}

	g, err := game.New(cfg, arena)
	if err != nil {
		log.Fatal(err)
	}
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("Config: %s not found, using defaults", path)
		return config.Default(), nil
	}
	return config.Load(path)
}
