package renderer

import "nbodysim/internal/vector"

// Camera is a 2D pan/zoom camera: a world-space center point and a scale
// factor from world units (parsecs) to screen pixels. Unlike the teacher's
// free-flying 3D camera, there is no rotation - the simulation is viewed
// straight down, matching spec.md §1's 2D scope.
type Camera struct {
	Center vector.Vector2D
	Zoom   float64 // screen pixels per parsec
}

// NewCamera creates a camera centered at the origin with the given zoom.
func NewCamera(zoom float64) *Camera {
	return &Camera{Zoom: zoom}
}

// WorldToScreen converts a world-space point to screen pixels relative to
// the given screen center (typically half the window size).
func (c *Camera) WorldToScreen(world vector.Vector2D, screenCenterX, screenCenterY float64) (x, y float64) {
	x = screenCenterX + (world.X-c.Center.X)*c.Zoom
	y = screenCenterY - (world.Y-c.Center.Y)*c.Zoom // screen Y grows downward
	return x, y
}

// Pan moves the camera's center by a world-space offset.
func (c *Camera) Pan(dx, dy float64) {
	c.Center.X += dx
	c.Center.Y += dy
}

// AdjustZoom multiplies the zoom factor, clamping it away from zero or
// negative values.
func (c *Camera) AdjustZoom(factor float64) {
	c.Zoom *= factor
	if c.Zoom < 1e-9 {
		c.Zoom = 1e-9
	}
}

// CenterOn recenters the camera on a world-space point, e.g. the
// simulation's current mass center.
func (c *Camera) CenterOn(point vector.Vector2D) {
	c.Center = point
}
