package world

import (
	"log"

	"reflex3d/internal/audio"
	"reflex3d/internal/components"
	"reflex3d/internal/engine"
	"reflex3d/internal/nav"
	"reflex3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadRoom tears the current room down and builds room index from the
// arena. Enemies and projectiles do not survive the switch.
func (w *World) LoadRoom(index int) {
	w.attack.Cancel()
	w.Projectiles.Clear()

	w.Scene.RemoveGameObject(w.Player)
	w.Scene.Clear()
	w.Physics.Clear()
	w.Nav = nil
	w.door = nil
	w.doorOpen = false
	w.roomCleared = false
	w.pendingRoom = nil
	w.room = index

	w.buildArena()

	w.Player.Transform.Position = w.spawnPoint
	w.playerBody.Velocity = rl.Vector3Zero()
	w.Scene.AddGameObject(w.Player)
	w.Physics.AddObject(w.Player)

	log.Printf("World: loaded room %d", index)
	w.OnRoomLoaded.Invoke(index)
	w.OnNewRoomLoaded.Invoke(index)
	w.Scene.Start()
}

func (w *World) buildArena() {
	w.spawnPoint = rl.Vector3{Y: w.Config.Player.Radius}
	var obstacles []physics.AABB

	for _, def := range w.arena.Objects {
		g := Instantiate(def)
		switch {
		case g.HasTag(engine.TagSpawn):
			w.spawnPoint = g.Transform.Position
			continue
		case g.HasTag(engine.TagFloor):
			if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
				bounds := physics.BoxBounds(box)
				w.Nav = nav.NewArea(bounds, w.Config.Rooms.NavMargin)
				w.Nav.FloorY = bounds.Max.Y
			}
		case g.HasTag(engine.TagDoor):
			w.door = g
		case g.HasTag(engine.TagSolid):
			if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
				obstacles = append(obstacles, physics.BoxBounds(box))
			}
		}
		w.Scene.AddGameObject(g)
		w.Physics.AddObject(g)
	}

	if w.Nav != nil {
		for _, box := range obstacles {
			w.Nav.AddObstacle(box)
		}
	}
}

// clearRoom runs once when the last enemy of the room is gone.
func (w *World) clearRoom() {
	w.roomCleared = true
	if w.room < 0 {
		// The root room starts clear; its door is open from the start.
		w.doorOpen = w.door != nil
		return
	}
	w.stats.RoomsCleared++
	if w.door != nil {
		w.doorOpen = true
		w.Cues.Play(audio.CueDoorOpen)
	}
	log.Printf("World: room %d cleared", w.room)
	w.OnRoomCleared.Invoke(w.room)
}

// interact is offered every attack press before charging starts. It uses
// the open door when the player stands next to it.
func (w *World) interact() bool {
	if !w.doorOpen || w.door == nil || w.pendingRoom != nil {
		return false
	}
	to := rl.Vector3Subtract(w.door.Transform.Position, w.Player.Transform.Position)
	to.Y = 0
	if rl.Vector3Length(to) > w.Config.Rooms.DoorRadius {
		return false
	}
	next := w.room + 1
	w.pendingRoom = &next
	return true
}
