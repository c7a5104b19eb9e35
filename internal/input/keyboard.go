package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Actions represents the one-shot action inputs read from the keyboard.
type Actions struct {
	TogglePause bool
	Reverse     bool
}

// KeyboardHandler handles keyboard input.
type KeyboardHandler struct {
	keyStates  map[int32]bool
	keyPressed map[int32]bool
}

// NewKeyboardHandler creates a new keyboard handler.
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		keyStates:  make(map[int32]bool),
		keyPressed: make(map[int32]bool),
	}
}

// SetKeyState sets the state of a key (for testing).
func (k *KeyboardHandler) SetKeyState(key int32, pressed bool) {
	k.keyStates[key] = pressed
}

// SetKeyPressed sets whether a key was just pressed (for testing).
func (k *KeyboardHandler) SetKeyPressed(key int32, pressed bool) {
	k.keyPressed[key] = pressed
}

// IsKeyDown checks if a key is currently held down.
func (k *KeyboardHandler) IsKeyDown(key int32) bool {
	return k.keyStates[key]
}

// IsKeyPressed checks if a key was just pressed.
func (k *KeyboardHandler) IsKeyPressed(key int32) bool {
	return k.keyPressed[key]
}

// ProcessActions processes the one-shot action keys: Space toggles pause,
// R reverses the integrator's time direction.
func (k *KeyboardHandler) ProcessActions() *Actions {
	return &Actions{
		TogglePause: k.IsKeyPressed(rl.KeySpace),
		Reverse:     k.IsKeyPressed(rl.KeyR),
	}
}

// ProcessThetaAdjustment returns the signed change to apply to the
// Barnes-Hut opening angle this frame: Up increases it (coarser, faster),
// Down decreases it (finer, more accurate).
func (k *KeyboardHandler) ProcessThetaAdjustment(thetaStep float64) float64 {
	delta := 0.0
	if k.IsKeyDown(rl.KeyUp) {
		delta += thetaStep
	}
	if k.IsKeyDown(rl.KeyDown) {
		delta -= thetaStep
	}
	return delta
}

// UpdateFromRaylib updates key states from raylib, for production use.
func (k *KeyboardHandler) UpdateFromRaylib() {
	k.keyPressed = make(map[int32]bool)

	k.keyPressed[rl.KeySpace] = rl.IsKeyPressed(rl.KeySpace)
	k.keyPressed[rl.KeyR] = rl.IsKeyPressed(rl.KeyR)

	k.keyStates[rl.KeyUp] = rl.IsKeyDown(rl.KeyUp)
	k.keyStates[rl.KeyDown] = rl.IsKeyDown(rl.KeyDown)
}
