package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"nbodysim/internal/renderer"
)

// SimulationState holds the simulation-facing state that input can change.
type SimulationState struct {
	Paused           bool
	Theta            float64
	ReverseRequested bool
}

// InputConfig holds the tunables that scale raw input into state changes.
type InputConfig struct {
	ThetaStep    float64
	ZoomStep     float64
	MinTheta     float64
	MaxTheta     float64
	ScreenWidth  int
	ScreenHeight int
}

// InputController coordinates keyboard and mouse input for the 2D
// simulation view: panning and zooming the camera, adjusting the opening
// angle, toggling pause, and requesting an integrator time reversal.
type InputController struct {
	keyboard *KeyboardHandler
	mouse    *MouseHandler
}

// NewInputController creates a new input controller.
func NewInputController() *InputController {
	return &InputController{
		keyboard: NewKeyboardHandler(),
		mouse:    NewMouseHandler(),
	}
}

// ProcessInput applies one frame of input to the camera and simulation
// state. ReverseRequested is a one-shot flag the caller is expected to read
// and clear after acting on it.
func (c *InputController) ProcessInput(camera *renderer.Camera, state *SimulationState, config *InputConfig) {
	actions := c.keyboard.ProcessActions()
	if actions.TogglePause {
		state.Paused = !state.Paused
	}
	state.ReverseRequested = actions.Reverse

	state.Theta += c.keyboard.ProcessThetaAdjustment(config.ThetaStep)
	if state.Theta < config.MinTheta {
		state.Theta = config.MinTheta
	}
	if state.Theta > config.MaxTheta {
		state.Theta = config.MaxTheta
	}

	if pan := c.mouse.ProcessPan(); pan.Active {
		camera.Pan(-float64(pan.DX)/camera.Zoom, float64(pan.DY)/camera.Zoom)
	}

	camera.AdjustZoom(c.mouse.ProcessZoom(config.ZoomStep))
}

// UpdateFromRaylib updates input states from raylib, for production use.
func (c *InputController) UpdateFromRaylib() {
	c.keyboard.UpdateFromRaylib()
	c.mouse.UpdateFromRaylib()
}

// Reset clears all input states.
func (c *InputController) Reset() {
	c.keyboard.keyStates = make(map[int32]bool)
	c.keyboard.keyPressed = make(map[int32]bool)
	c.mouse.buttonStates = make(map[rl.MouseButton]bool)
	c.mouse.deltaX = 0
	c.mouse.deltaY = 0
	c.mouse.wheelMove = 0
}
