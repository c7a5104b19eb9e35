package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIColor represents an RGBA color for UI elements.
type UIColor struct {
	R, G, B, A uint8
}

func (c UIColor) toRaylib() rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// UIState is the set of values the HUD displays each frame.
type UIState struct {
	ParticleCount  int
	IntegratorName string
	Theta          float64
	TargetFPS      int
	ActualFPS      int
	FrameTime      float64
	Paused         bool
	SimulationTime float64
}

// UIRenderer draws the simulation's heads-up display: particle count,
// integrator name, opening angle, frame timing, and a pause indicator.
type UIRenderer struct {
	screenWidth  int
	screenHeight int
	fontSize     int

	title string
	state UIState
}

// NewUIRenderer creates a new UI renderer for the given window size.
func NewUIRenderer(screenWidth, screenHeight int) *UIRenderer {
	return &UIRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontSize:     20,
		title:        "Barnes-Hut N-Body Simulation",
	}
}

// GetScreenDimensions returns the screen dimensions.
func (ui *UIRenderer) GetScreenDimensions() (int, int) {
	return ui.screenWidth, ui.screenHeight
}

// SetTitle sets the UI title.
func (ui *UIRenderer) SetTitle(title string) {
	ui.title = title
}

// GetTitle returns the UI title.
func (ui *UIRenderer) GetTitle() string {
	return ui.title
}

// UpdateState replaces the displayed state wholesale, ahead of the next Render.
func (ui *UIRenderer) UpdateState(state UIState) {
	ui.state = state
}

// GetControlInstructions returns the control instruction lines shown at the
// bottom-left of the HUD.
func (ui *UIRenderer) GetControlInstructions() []string {
	return []string{
		"Mouse drag to pan, wheel to zoom",
		"Up/Down to adjust theta",
		"Space to pause, R to reverse time",
	}
}

// GetTitlePosition returns the title text position.
func (ui *UIRenderer) GetTitlePosition() (int, int) {
	return 10, 10
}

// GetParticleCountPosition returns the particle count text position.
func (ui *UIRenderer) GetParticleCountPosition() (int, int) {
	return 10, 40
}

// GetIntegratorPosition returns the integrator/theta text position.
func (ui *UIRenderer) GetIntegratorPosition() (int, int) {
	return 10, 70
}

// GetFPSPosition returns the FPS display position.
func (ui *UIRenderer) GetFPSPosition() (int, int) {
	return ui.screenWidth - 200, 10
}

// GetPausePosition returns the pause indicator position, centered.
func (ui *UIRenderer) GetPausePosition() (int, int) {
	return ui.screenWidth/2 - 150, ui.screenHeight/2 - 10
}

// GetTitleColor returns the title color.
func (ui *UIRenderer) GetTitleColor() UIColor {
	return UIColor{R: 0, G: 255, B: 0, A: 255}
}

// GetDefaultTextColor returns the default text color.
func (ui *UIRenderer) GetDefaultTextColor() UIColor {
	return UIColor{R: 255, G: 255, B: 255, A: 255}
}

// GetPauseColor returns the pause indicator color.
func (ui *UIRenderer) GetPauseColor() UIColor {
	return UIColor{R: 255, G: 255, B: 0, A: 255}
}

// GetFontSize returns the font size.
func (ui *UIRenderer) GetFontSize() int {
	return ui.fontSize
}

// SetFontSize sets the font size.
func (ui *UIRenderer) SetFontSize(size int) {
	ui.fontSize = size
}

// GetParticleCountText returns formatted particle count text.
func (ui *UIRenderer) GetParticleCountText() string {
	return fmt.Sprintf("Particles: %d", ui.state.ParticleCount)
}

// GetIntegratorText returns formatted integrator/theta text.
func (ui *UIRenderer) GetIntegratorText() string {
	return fmt.Sprintf("%s  theta=%.2f", ui.state.IntegratorName, ui.state.Theta)
}

// GetSimulationTimeText returns formatted elapsed simulation time text.
func (ui *UIRenderer) GetSimulationTimeText() string {
	return fmt.Sprintf("t = %.3e yr", ui.state.SimulationTime)
}

// GetActualFPSText returns formatted actual FPS text.
func (ui *UIRenderer) GetActualFPSText() string {
	return fmt.Sprintf("FPS: %d", ui.state.ActualFPS)
}

// GetFrameTimeText returns formatted frame time text.
func (ui *UIRenderer) GetFrameTimeText() string {
	return fmt.Sprintf("Frame Time: %.3fs", ui.state.FrameTime)
}

// GetControlPosition returns the position for a control instruction line at
// the given index.
func (ui *UIRenderer) GetControlPosition(index int) (int, int) {
	return 10, ui.screenHeight - 100 + index*25
}

// GetPauseText returns the pause indicator text.
func (ui *UIRenderer) GetPauseText() string {
	return "PAUSED (Space to resume)"
}

// Render draws the HUD through raylib's text primitives.
func (ui *UIRenderer) Render() error {
	tx, ty := ui.GetTitlePosition()
	rl.DrawText(ui.title, int32(tx), int32(ty), int32(ui.fontSize), ui.GetTitleColor().toRaylib())

	px, py := ui.GetParticleCountPosition()
	rl.DrawText(ui.GetParticleCountText(), int32(px), int32(py), int32(ui.fontSize), ui.GetDefaultTextColor().toRaylib())

	ix, iy := ui.GetIntegratorPosition()
	rl.DrawText(ui.GetIntegratorText(), int32(ix), int32(iy), int32(ui.fontSize), ui.GetDefaultTextColor().toRaylib())

	fx, fy := ui.GetFPSPosition()
	rl.DrawText(ui.GetActualFPSText(), int32(fx), int32(fy), int32(ui.fontSize), ui.GetDefaultTextColor().toRaylib())
	rl.DrawText(ui.GetFrameTimeText(), int32(fx), int32(fy+25), int32(ui.fontSize), ui.GetDefaultTextColor().toRaylib())

	for i, line := range ui.GetControlInstructions() {
		lx, ly := ui.GetControlPosition(i)
		rl.DrawText(line, int32(lx), int32(ly), int32(ui.fontSize-4), ui.GetDefaultTextColor().toRaylib())
	}

	if ui.state.Paused {
		qx, qy := ui.GetPausePosition()
		rl.DrawText(ui.GetPauseText(), int32(qx), int32(qy), int32(ui.fontSize), ui.GetPauseColor().toRaylib())
	}

	return nil
}
