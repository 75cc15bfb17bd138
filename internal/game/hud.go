package game

import (
	"fmt"

	"reflex3d/internal/combat"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel   = rl.NewColor(18, 18, 24, 230)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextMuted = rl.NewColor(119, 119, 119, 255)
)

// initRayguiStyle applies the dark indigo theme.
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}

// hudAction is what the player clicked on an overlay window.
type hudAction int

const (
	hudNone hudAction = iota
	hudResume
	hudRestart
	hudQuit
)

func (g *Game) drawHUD() hudAction {
	h := g.HUD
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	// Health window, top left
	rl.DrawRectangleRec(rl.Rectangle{X: 10, Y: 10, Width: 260, Height: 64}, colorBgPanel)
	rl.DrawText("CORRUPTION", 20, 16, 14, colorTextMuted)
	h.HealthBar.Draw(rl.Rectangle{X: 20, Y: 36, Width: 180, Height: 24})
	h.HealthText.Draw(rl.Rectangle{X: 210, Y: 36, Width: 60, Height: 24})

	// Directory and objective, top right
	h.Directory.Draw(rl.Rectangle{X: screenW - 330, Y: 10, Width: 320, Height: 28})
	h.Objective.Draw(rl.Rectangle{X: screenW - 330, Y: 40, Width: 320, Height: 110})

	g.drawChargeMeter(screenW, screenH)

	if g.DebugMode {
		g.drawDebug()
	}

	switch {
	case h.ShowLostWindow():
		s := g.World.Stats()
		summary := fmt.Sprintf("Rooms cleared %d, processes deleted %d", s.RoomsCleared, s.Kills)
		return drawWindow(screenW, screenH, "CONNECTION LOST", summary, "Restart", hudRestart)
	case h.Paused:
		return drawWindow(screenW, screenH, "PAUSED", h.Directory.Text, "Resume", hudResume)
	}
	return hudNone
}

func (g *Game) drawChargeMeter(screenW, screenH float32) {
	attack := g.World.Attack()
	if attack.State() != combat.StateCharging {
		return
	}
	profiles := attack.Settings.Profiles
	maxCharge := profiles[len(profiles)-1].ChargeTimeMax

	label := "--"
	if idx, ok := combat.SelectProfile(profiles, attack.ChargeTime()); ok {
		label = profiles[idx].Name
	}
	bounds := rl.Rectangle{X: screenW/2 - 120, Y: screenH - 60, Width: 240, Height: 20}
	gui.ProgressBar(bounds, "", label, attack.ChargeTime(), 0, maxCharge)
}

func (g *Game) drawDebug() {
	w := g.World
	s := w.Stats()
	lines := []string{
		fmt.Sprintf("Room %d  t=%.1fs  ticks=%d", w.Room(), w.Time(), w.Ticks()),
		fmt.Sprintf("Enemies %d  Bolts %d", len(w.Enemies()), w.Projectiles.Len()),
		fmt.Sprintf("Kills %d  Hits %d  Reflected %d  Volleys %d", s.Kills, s.Hits, s.Reflected, s.Volleys),
		fmt.Sprintf("Attack %v  charge %.2f", w.Attack().State(), w.Attack().ChargeTime()),
		fmt.Sprintf("Step %.2f ms  Draw %.2f ms  alpha %.2f", g.updateMs, g.drawMs, g.clock.Alpha()),
	}
	for i, line := range lines {
		rl.DrawText(line, 10, int32(90+i*18), 16, rl.Green)
	}
	rl.DrawFPS(10, int32(90+len(lines)*18))
}

// drawWindow draws a centered modal with one primary button and Quit.
func drawWindow(screenW, screenH float32, title, subtitle, primary string, action hudAction) hudAction {
	rl.DrawRectangle(0, 0, int32(screenW), int32(screenH), rl.Fade(rl.Black, 0.5))

	bounds := rl.Rectangle{X: screenW/2 - 160, Y: screenH/2 - 90, Width: 320, Height: 190}
	gui.Panel(bounds, title)
	gui.Label(rl.Rectangle{X: bounds.X + 20, Y: bounds.Y + 32, Width: bounds.Width - 40, Height: 24}, subtitle)

	btn := rl.Rectangle{X: bounds.X + 40, Y: bounds.Y + 64, Width: bounds.Width - 80, Height: 36}
	if gui.Button(btn, primary) {
		return action
	}
	btn.Y += 48
	if gui.Button(btn, "Quit") {
		return hudQuit
	}
	return hudNone
}
