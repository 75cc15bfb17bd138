// Package ui holds the HUD state driven by world events. Drawing lives in
// the game package.
package ui

import (
	"fmt"
	"math"

	"reflex3d/internal/components"
	"reflex3d/internal/world"
)

const rootDirectory = `\ROOT`

// DirectoryPath is the folder-style label of a room.
func DirectoryPath(room int) string {
	if room < 0 {
		return rootDirectory
	}
	return fmt.Sprintf(`%s\room_%d`, rootDirectory, room+1)
}

// HUD mirrors what the player sees. The health bar fills as the player
// loses health.
type HUD struct {
	HealthBar  *components.UIProgressBar
	HealthText *components.UIText
	Directory  *components.UIText
	Objective  *components.UIText

	Lost   bool
	Paused bool

	remaining int

	w         *world.World
	listeners []func()
}

func NewHUD() *HUD {
	bar := components.NewUIProgressBar()
	bar.MaxValue = 1
	bar.WarnAt = 0.75

	h := &HUD{
		HealthBar:  bar,
		HealthText: components.NewUIText(),
		Directory:  components.NewUIText(),
		Objective:  components.NewUIText(),
	}
	h.Objective.FontSize = 18
	h.Objective.Alignment = components.TextAlignRight
	h.reset()
	return h
}

func (h *HUD) reset() {
	h.Lost = false
	h.Paused = false
	h.remaining = 0
	h.HealthBar.SetPercent(0)
	h.HealthText.Text = "0 %"
	h.Directory.Text = rootDirectory
	h.Objective.Text = ""
}

// Bind subscribes the HUD to w and syncs it with the current state. A HUD
// bound to another world is unbound first.
func (h *HUD) Bind(w *world.World) {
	h.Unbind()
	h.w = w
	h.reset()

	health := w.OnPlayerHealthChanged.AddListener(h.OnPlayerHealthChanged)
	died := w.OnPlayerDied.AddListener(h.OnPlayerDied)
	loaded := w.OnRoomLoaded.AddListener(h.OnRoomLoaded)
	newRoom := w.OnNewRoomLoaded.AddListener(h.OnNewRoomLoaded)
	cleared := w.OnRoomCleared.AddListener(h.OnRoomCleared)
	destroyed := w.OnEnemyDestroyed.AddListener(h.OnEnemyDestroyed)

	h.listeners = []func(){
		func() { w.OnPlayerHealthChanged.RemoveListener(health) },
		func() { w.OnPlayerDied.RemoveListener(died) },
		func() { w.OnRoomLoaded.RemoveListener(loaded) },
		func() { w.OnNewRoomLoaded.RemoveListener(newRoom) },
		func() { w.OnRoomCleared.RemoveListener(cleared) },
		func() { w.OnEnemyDestroyed.RemoveListener(destroyed) },
	}

	h.setHealth(w.PlayerHealth().Fraction())
	h.OnRoomLoaded(w.Room())
	h.OnNewRoomLoaded(w.Room())
	h.Lost = w.GameOver()
}

func (h *HUD) Unbind() {
	for _, remove := range h.listeners {
		remove()
	}
	h.listeners = nil
	h.w = nil
}

func (h *HUD) OnPlayerHealthChanged(c components.HealthChange) {
	h.setHealth(c.Fraction())
}

func (h *HUD) setHealth(fraction float32) {
	lost := 1 - fraction
	h.HealthBar.SetPercent(lost)
	h.HealthText.Text = fmt.Sprintf("%d %%", int(math.Round(float64(lost*100))))
}

func (h *HUD) OnPlayerDied() {
	h.Lost = true
	h.Paused = false
}

func (h *HUD) OnRoomLoaded(room int) {
	h.Directory.Text = DirectoryPath(room)
}

func (h *HUD) OnNewRoomLoaded(room int) {
	h.remaining = 0
	if h.w != nil {
		h.remaining = len(h.w.Enemies())
	}
	h.updateObjective(room)
}

func (h *HUD) OnRoomCleared(room int) {
	h.remaining = 0
	h.updateObjective(room)
}

func (h *HUD) OnEnemyDestroyed(e world.EnemyDestroyed) {
	if h.remaining > 0 {
		h.remaining--
	}
	if h.w != nil {
		h.updateObjective(h.w.Room())
	}
}

// Remaining is the number of enemies the objective still counts.
func (h *HUD) Remaining() int { return h.remaining }

func (h *HUD) updateObjective(room int) {
	switch {
	case room < 0:
		h.Objective.Text = "Objective is\nOPEN\n" + DirectoryPath(0)
	case h.remaining > 0:
		h.Objective.Text = fmt.Sprintf("Objective is\nDELETE\n%d processes", h.remaining)
	default:
		h.Objective.Text = "Objective is\nMOVE\nto\n" + DirectoryPath(room+1)
	}
}

// TogglePause flips the pause window. A lost run cannot be paused.
func (h *HUD) TogglePause() bool {
	if h.Lost {
		return false
	}
	h.Paused = !h.Paused
	return h.Paused
}

// ShowLostWindow reports whether the restart window should be drawn.
func (h *HUD) ShowLostWindow() bool { return h.Lost }

// Restart resets the bound world and the HUD with it.
func (h *HUD) Restart() {
	w := h.w
	if w == nil {
		return
	}
	w.Reset()
	h.Lost = false
	h.Paused = false
	h.setHealth(w.PlayerHealth().Fraction())
}
