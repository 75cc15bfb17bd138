package game

import (
	"log"
	"time"

	"reflex3d/internal/audio"
	"reflex3d/internal/camera"
	"reflex3d/internal/components"
	"reflex3d/internal/config"
	"reflex3d/internal/ui"
	"reflex3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    config.Config
	World     *world.World
	HUD       *ui.HUD
	Audio     *audio.Controller
	Camera    *camera.TopDown
	Renderer  *Renderer
	DebugMode bool

	arena *world.SceneFile
	clock *FixedStep
	quit  bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New prepares a game; the window and audio device open in Run. arena may
// be nil to use the configured or built-in arena.
func New(cfg config.Config, arena *world.SceneFile) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		Config: cfg,
		arena:  arena,
		clock:  NewFixedStep(cfg.TickInterval(), cfg.Sim.MaxFrameDelta),
	}, nil
}

func (g *Game) Run() error {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.TargetFPS)
	// Escape pauses instead of closing
	rl.SetExitKey(rl.KeyNull)
	initRayguiStyle()

	g.Audio = audio.NewController(audio.NewRaylibBackend())
	defer g.Audio.Close()
	g.Audio.SetVolume(g.Config.Audio.Volume)
	g.Audio.SetMuted(g.Config.Audio.Muted)
	if err := g.Audio.LoadClips(g.Config.Audio.Clips); err != nil {
		// Missing clips only silence their cues
		log.Printf("Audio: %v", err)
	}
	g.Audio.Play(audio.CueStartUp)

	w, err := world.New(g.Config, g.arena, g.Audio, nil)
	if err != nil {
		return err
	}
	g.World = w
	g.Renderer = NewRenderer(w)
	g.Camera = camera.New(w.Player.Transform.Position)

	g.HUD = ui.NewHUD()
	g.HUD.Directory.Alignment = components.TextAlignRight
	g.HUD.Bind(w)

	w.OnRoomLoaded.AddListener(g.onRoomLoaded)
	g.onRoomLoaded(w.Room())

	for !rl.WindowShouldClose() && !g.quit {
		g.Update()
		g.Draw()
		g.Audio.Flush()
	}
	return nil
}

func (g *Game) onRoomLoaded(room int) {
	g.Camera.Snap(g.World.Player.Transform.Position)
	g.clock.Reset()

	tracks := audio.BackgroundCues()
	if room < 0 {
		g.Audio.PlayMusic(tracks[0])
		return
	}
	g.Audio.PlayMusic(tracks[room%len(tracks)])
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if pausePressed() {
		g.HUD.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) && g.HUD.ShowLostWindow() {
		g.HUD.Restart()
	}

	if !g.HUD.Paused && !g.World.GameOver() {
		g.World.SetInput(readInput())
		for n := g.clock.Advance(deltaTime); n > 0; n-- {
			g.World.Step(g.clock.Interval)
		}
	} else {
		g.clock.Reset()
	}

	g.Renderer.Update(deltaTime)
	g.Camera.Update(g.World.Player.Transform.Position, deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	drawStart := time.Now()
	rl.BeginMode3D(g.Camera.GetRaylibCamera())
	g.Renderer.Draw3D()
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	switch g.drawHUD() {
	case hudResume:
		g.HUD.TogglePause()
	case hudRestart:
		g.HUD.Restart()
	case hudQuit:
		g.quit = true
	}
	rl.EndDrawing()
}
