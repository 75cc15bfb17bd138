package game

import (
	"reflex3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// The camera looks toward -Z, so screen up is world -Z.
func readInput() world.Input {
	var in world.Input
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		in.Move.Y -= 1
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		in.Move.Y += 1
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		in.Move.X -= 1
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		in.Move.X += 1
	}

	// Gamepad stick overrides keys when pushed past the deadzone
	if rl.IsGamepadAvailable(0) {
		stick := rl.Vector2{
			X: rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftX),
			Y: rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftY),
		}
		if rl.Vector2LengthSqr(stick) > 0.04 {
			in.Move = stick
		}
	}

	if rl.Vector2LengthSqr(in.Move) > 1 {
		in.Move = rl.Vector2Normalize(in.Move)
	}

	in.Attack = rl.IsKeyDown(rl.KeySpace) ||
		rl.IsMouseButtonDown(rl.MouseLeftButton) ||
		(rl.IsGamepadAvailable(0) && rl.IsGamepadButtonDown(0, rl.GamepadButtonRightFaceDown))
	return in
}

func pausePressed() bool {
	return rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyP) ||
		(rl.IsGamepadAvailable(0) && rl.IsGamepadButtonPressed(0, rl.GamepadButtonMiddleRight))
}
