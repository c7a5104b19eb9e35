package renderer

import "testing"

func TestUIRendererCreation(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	if ui == nil {
		t.Fatal("failed to create UI renderer")
	}

	w, h := ui.GetScreenDimensions()
	if w != 800 || h != 600 {
		t.Errorf("screen dimensions incorrect: expected 800x600, got %dx%d", w, h)
	}
}

func TestUITitle(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	ui.SetTitle("Barnes-Hut N-Body Simulation")
	if ui.GetTitle() != "Barnes-Hut N-Body Simulation" {
		t.Error("failed to set title")
	}
}

func TestUIControls(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	controls := ui.GetControlInstructions()
	if len(controls) < 3 {
		t.Error("missing control instructions")
	}
}

func TestUITextReflectsState(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	ui.UpdateState(UIState{
		ParticleCount:  500,
		IntegratorName: "RK4",
		Theta:          0.5,
		TargetFPS:      60,
		ActualFPS:      59,
		FrameTime:      0.016,
		Paused:         false,
		SimulationTime: 1234.5,
	})

	if got := ui.GetParticleCountText(); got != "Particles: 500" {
		t.Errorf("unexpected particle count text: %s", got)
	}
	if got := ui.GetIntegratorText(); got != "RK4  theta=0.50" {
		t.Errorf("unexpected integrator text: %s", got)
	}
	if got := ui.GetActualFPSText(); got != "FPS: 59" {
		t.Errorf("unexpected FPS text: %s", got)
	}
}

func TestUITextPositions(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	x, y := ui.GetTitlePosition()
	if x != 10 || y != 10 {
		t.Errorf("title position incorrect: expected (10,10), got (%d,%d)", x, y)
	}

	x, y = ui.GetParticleCountPosition()
	if x != 10 || y != 40 {
		t.Errorf("particle count position incorrect: expected (10,40), got (%d,%d)", x, y)
	}

	x, y = ui.GetFPSPosition()
	if x != 600 || y != 10 {
		t.Errorf("FPS position incorrect: expected (600,10), got (%d,%d)", x, y)
	}

	x, y = ui.GetPausePosition()
	expectedX := 800/2 - 150
	expectedY := 600/2 - 10
	if x != expectedX || y != expectedY {
		t.Errorf("pause position incorrect: expected (%d,%d), got (%d,%d)", expectedX, expectedY, x, y)
	}
}

func TestUIColors(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	color := ui.GetTitleColor()
	if color.R != 0 || color.G != 255 || color.B != 0 {
		t.Error("title color should be lime/green")
	}

	color = ui.GetDefaultTextColor()
	if color.R != 255 || color.G != 255 || color.B != 255 {
		t.Error("default text color should be white")
	}

	color = ui.GetPauseColor()
	if color.R < 200 || color.G < 200 || color.B != 0 {
		t.Error("pause color should be yellow")
	}
}

func TestUIFontSize(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	if ui.GetFontSize() != 20 {
		t.Errorf("default font size should be 20, got %d", ui.GetFontSize())
	}

	ui.SetFontSize(24)
	if ui.GetFontSize() != 24 {
		t.Error("failed to set font size")
	}
}

func TestUIPauseText(t *testing.T) {
	ui := NewUIRenderer(800, 600)

	ui.UpdateState(UIState{Paused: true})
	if !ui.state.Paused {
		t.Error("expected paused state to be recorded")
	}
	if got := ui.GetPauseText(); got != "PAUSED (Space to resume)" {
		t.Errorf("unexpected pause text: %s", got)
	}
}
