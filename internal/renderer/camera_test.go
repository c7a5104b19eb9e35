package renderer

import (
	"testing"

	"nbodysim/internal/vector"
)

func TestNewCamera(t *testing.T) {
	cam := NewCamera(2.0)

	if cam.Zoom != 2.0 {
		t.Errorf("expected zoom 2.0, got %f", cam.Zoom)
	}
	if cam.Center != (vector.Vector2D{}) {
		t.Errorf("expected camera centered at origin, got %v", cam.Center)
	}
}

func TestWorldToScreenAtOrigin(t *testing.T) {
	cam := NewCamera(1.0)

	x, y := cam.WorldToScreen(vector.New(0, 0), 400, 300)
	if x != 400 || y != 300 {
		t.Errorf("expected world origin to map to screen center (400,300), got (%f,%f)", x, y)
	}
}

func TestWorldToScreenAppliesZoomAndFlipsY(t *testing.T) {
	cam := NewCamera(2.0)

	x, y := cam.WorldToScreen(vector.New(10, 5), 0, 0)
	if x != 20 {
		t.Errorf("expected x=20 (10*zoom), got %f", x)
	}
	if y != -10 {
		t.Errorf("expected y=-10 (screen Y grows downward), got %f", y)
	}
}

func TestPanMovesCenter(t *testing.T) {
	cam := NewCamera(1.0)
	cam.Pan(5, -3)

	if cam.Center.X != 5 || cam.Center.Y != -3 {
		t.Errorf("expected center (5,-3), got %v", cam.Center)
	}
}

func TestAdjustZoomScales(t *testing.T) {
	cam := NewCamera(1.0)
	cam.AdjustZoom(2.0)

	if cam.Zoom != 2.0 {
		t.Errorf("expected zoom 2.0, got %f", cam.Zoom)
	}
}

func TestAdjustZoomClampsAwayFromZero(t *testing.T) {
	cam := NewCamera(1.0)
	cam.AdjustZoom(0)

	if cam.Zoom <= 0 {
		t.Errorf("expected zoom to stay positive, got %f", cam.Zoom)
	}
}

func TestCenterOn(t *testing.T) {
	cam := NewCamera(1.0)
	target := vector.New(100, -50)
	cam.CenterOn(target)

	if cam.Center != target {
		t.Errorf("expected center %v, got %v", target, cam.Center)
	}

	x, y := cam.WorldToScreen(target, 0, 0)
	if x != 0 || y != 0 {
		t.Errorf("expected the centered point to map to the screen origin, got (%f,%f)", x, y)
	}
}
