package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pan represents the camera pan requested by a mouse drag this frame.
type Pan struct {
	Active bool
	DX, DY float32
}

// MouseHandler handles mouse input.
type MouseHandler struct {
	buttonStates map[rl.MouseButton]bool
	deltaX       float32
	deltaY       float32
	wheelMove    float32
}

// NewMouseHandler creates a new mouse handler.
func NewMouseHandler() *MouseHandler {
	return &MouseHandler{
		buttonStates: make(map[rl.MouseButton]bool),
	}
}

// SetButtonDown sets the state of a mouse button (for testing).
func (m *MouseHandler) SetButtonDown(button rl.MouseButton, down bool) {
	m.buttonStates[button] = down
}

// SetMouseDelta sets the mouse movement delta (for testing).
func (m *MouseHandler) SetMouseDelta(x, y float32) {
	m.deltaX = x
	m.deltaY = y
}

// SetWheelMove sets the mouse wheel delta (for testing).
func (m *MouseHandler) SetWheelMove(delta float32) {
	m.wheelMove = delta
}

// IsButtonDown checks if a mouse button is held down.
func (m *MouseHandler) IsButtonDown(button rl.MouseButton) bool {
	return m.buttonStates[button]
}

// GetMouseDelta gets the mouse movement delta.
func (m *MouseHandler) GetMouseDelta() (float32, float32) {
	return m.deltaX, m.deltaY
}

// GetWheelMove gets the mouse wheel delta.
func (m *MouseHandler) GetWheelMove() float32 {
	return m.wheelMove
}

// ProcessPan processes left-button-drag panning. The returned delta is in
// screen pixels; the caller converts it to world units via the camera's zoom.
func (m *MouseHandler) ProcessPan() Pan {
	if !m.IsButtonDown(rl.MouseLeftButton) {
		return Pan{}
	}
	dx, dy := m.GetMouseDelta()
	return Pan{Active: true, DX: dx, DY: dy}
}

// ProcessZoom returns the zoom multiplier to apply this frame, derived from
// the wheel delta: positive wheel movement zooms in.
func (m *MouseHandler) ProcessZoom(zoomStep float64) float64 {
	if m.wheelMove == 0 {
		return 1.0
	}
	if m.wheelMove > 0 {
		return 1.0 + zoomStep
	}
	return 1.0 / (1.0 + zoomStep)
}

// UpdateFromRaylib updates mouse state from raylib, for production use.
func (m *MouseHandler) UpdateFromRaylib() {
	m.buttonStates[rl.MouseLeftButton] = rl.IsMouseButtonDown(rl.MouseLeftButton)

	delta := rl.GetMouseDelta()
	m.deltaX = delta.X
	m.deltaY = delta.Y

	m.wheelMove = rl.GetMouseWheelMove()
}
