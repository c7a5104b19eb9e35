package renderer

import (
	"errors"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"nbodysim/internal/particle"
	"nbodysim/internal/quadtree"
	"nbodysim/internal/vector"
)

// RenderMode represents the particle rendering mode
type RenderMode int

const (
	// RenderModePoints renders particles as single pixels
	RenderModePoints RenderMode = iota
	// RenderModeCircles renders particles as filled circles scaled by mass
	RenderModeCircles
)

// Color represents an RGBA color
type Color struct {
	R, G, B, A float32
}

// toRaylib converts a Color to raylib's color type.
func (c Color) toRaylib() rl.Color {
	return rl.NewColor(
		uint8(c.R*255),
		uint8(c.G*255),
		uint8(c.B*255),
		uint8(c.A*255),
	)
}

// BatchInfo contains batch rendering information
type BatchInfo struct {
	TotalBatches      int
	ParticlesPerBatch int
}

// ParticleRenderer draws the simulation's particles and, optionally, the
// Barnes-Hut cells opened while evaluating particle 0.
type ParticleRenderer struct {
	states     []particle.State
	params     []particle.Parameters
	camera     *Camera
	tree       *quadtree.Tree
	drawTree   bool
	baseSize   float32
	renderMode RenderMode

	screenCenterX, screenCenterY float64

	visibleCount int
	maxBatchSize int
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{
		baseSize:     1.0,
		renderMode:   RenderModeCircles,
		maxBatchSize: 1000,
	}
}

// Setup initializes the renderer. Drawing primitives are issued directly
// through raylib's immediate-mode API, so there is no shader or buffer setup
// to perform; Setup exists to keep the same lifecycle shape as the rest of
// the renderer package (Setup/Render/Cleanup).
func (r *ParticleRenderer) Setup() error {
	return nil
}

// SetParticles sets the particle states and parameters to render.
func (r *ParticleRenderer) SetParticles(states []particle.State, params []particle.Parameters) {
	r.states = states
	r.params = params
	r.updateVisibleCount()
}

// SetTree sets the quadtree whose opened cells are drawn alongside the
// particles, and whether that overlay is enabled.
func (r *ParticleRenderer) SetTree(tree *quadtree.Tree, draw bool) {
	r.tree = tree
	r.drawTree = draw
}

// GetParticleCount returns the number of particles.
func (r *ParticleRenderer) GetParticleCount() int {
	return len(r.states)
}

// GetParticleSize returns the base particle size in pixels.
func (r *ParticleRenderer) GetParticleSize() float32 {
	return r.baseSize
}

// SetParticleSize sets the base particle size in pixels.
func (r *ParticleRenderer) SetParticleSize(size float32) {
	r.baseSize = size
}

// SetScreenCenter sets the pixel coordinates the camera's world origin maps
// to, typically half the window's width and height.
func (r *ParticleRenderer) SetScreenCenter(x, y float64) {
	r.screenCenterX = x
	r.screenCenterY = y
}

// GetBatchInfo returns batch rendering information.
func (r *ParticleRenderer) GetBatchInfo() BatchInfo {
	if len(r.states) == 0 {
		return BatchInfo{TotalBatches: 0, ParticlesPerBatch: 0}
	}

	totalBatches := (len(r.states) + r.maxBatchSize - 1) / r.maxBatchSize
	return BatchInfo{
		TotalBatches:      totalBatches,
		ParticlesPerBatch: r.maxBatchSize,
	}
}

// GetParticleColor returns the draw color for a particle based on its mass:
// bulges (radius > 0) render in a warm core color, ordinary stars in a
// mass-graded blue-to-white.
func GetParticleColor(p particle.Parameters) Color {
	if p.IsBulge() {
		return Color{R: 1.0, G: 0.8, B: 0.2, A: 1.0}
	}

	massNorm := math.Min(p.Mass/1.0, 1.0)
	return Color{
		R: float32(massNorm),
		G: float32(0.5 + 0.5*massNorm),
		B: 1.0,
		A: 1.0,
	}
}

// GetScaledParticleSize returns the draw radius for a particle, scaled by
// the cube root of its mass (volume scaling), floored so stars stay visible
// at typical zoom levels.
func (r *ParticleRenderer) GetScaledParticleSize(p particle.Parameters) float32 {
	if p.IsBulge() {
		return r.baseSize * 4
	}
	massScale := float32(math.Cbrt(p.Mass))
	size := r.baseSize * massScale
	if size < 1 {
		size = 1
	}
	return size
}

// SetCamera sets the camera used for coordinate mapping.
func (r *ParticleRenderer) SetCamera(camera *Camera) {
	r.camera = camera
	r.updateVisibleCount()
}

// GetVisibleParticleCount returns the number of particles set for drawing.
// No view-bounds culling is applied, so this equals the particle count.
func (r *ParticleRenderer) GetVisibleParticleCount() int {
	return r.visibleCount
}

func (r *ParticleRenderer) updateVisibleCount() {
	r.visibleCount = len(r.states)
}

// SetRenderMode sets the rendering mode.
func (r *ParticleRenderer) SetRenderMode(mode RenderMode) {
	r.renderMode = mode
}

// GetRenderMode returns the current rendering mode.
func (r *ParticleRenderer) GetRenderMode() RenderMode {
	return r.renderMode
}

// Render draws every particle, and the opened quadtree cells if enabled,
// through raylib's 2D primitives.
func (r *ParticleRenderer) Render() error {
	if r.camera == nil {
		return errors.New("camera not set")
	}

	if r.drawTree && r.tree != nil {
		r.drawNode(r.tree.Root())
	}

	for i, s := range r.states {
		point := vector.New(s.PositionX, s.PositionY)
		x, y := r.camera.WorldToScreen(point, r.screenCenterX, r.screenCenterY)

		p := r.params[i]
		color := GetParticleColor(p).toRaylib()

		switch r.renderMode {
		case RenderModePoints:
			rl.DrawPixel(int32(x), int32(y), color)
		default:
			radius := r.GetScaledParticleSize(p) * float32(r.camera.Zoom) / 4
			if radius < 1 {
				radius = 1
			}
			rl.DrawCircle(int32(x), int32(y), radius, color)
		}
	}

	return nil
}

// drawNode draws the node's bounding box and, if the last tracked force
// query opened it, recurses into its children: the drawing shows the root,
// every opened cell, and the children of each opened cell.
func (r *ParticleRenderer) drawNode(n *quadtree.Node) {
	if n == nil {
		return
	}

	min, max := n.Bounds()
	x0, y0 := r.camera.WorldToScreen(min, r.screenCenterX, r.screenCenterY)
	x1, y1 := r.camera.WorldToScreen(max, r.screenCenterX, r.screenCenterY)

	width := float32(x1 - x0)
	height := float32(y0 - y1)
	rl.DrawRectangleLines(int32(x0), int32(y1), int32(width), int32(height), rl.NewColor(0, 255, 0, 60))

	if !n.Subdivided() {
		return
	}
	for _, child := range n.Children() {
		r.drawNode(child)
	}
}

// RenderBatch draws a single batch of particles, identified by index, for
// callers that want to spread a large particle count across frames.
func (r *ParticleRenderer) RenderBatch(batchIndex int) error {
	if r.camera == nil {
		return errors.New("camera not set")
	}

	batchInfo := r.GetBatchInfo()
	if batchIndex >= batchInfo.TotalBatches {
		return errors.New("batch index out of range")
	}

	start := batchIndex * r.maxBatchSize
	end := start + r.maxBatchSize
	if end > len(r.states) {
		end = len(r.states)
	}

	for i := start; i < end; i++ {
		s := r.states[i]
		p := r.params[i]
		point := vector.New(s.PositionX, s.PositionY)
		x, y := r.camera.WorldToScreen(point, r.screenCenterX, r.screenCenterY)
		radius := r.GetScaledParticleSize(p) * float32(r.camera.Zoom) / 4
		if radius < 1 {
			radius = 1
		}
		rl.DrawCircle(int32(x), int32(y), radius, GetParticleColor(p).toRaylib())
	}

	return nil
}

// Cleanup releases renderer state between runs.
func (r *ParticleRenderer) Cleanup() error {
	r.states = nil
	r.params = nil
	r.visibleCount = 0
	return nil
}

// SetMaxBatchSize sets the maximum number of particles drawn per batch.
func (r *ParticleRenderer) SetMaxBatchSize(size int) {
	if size > 0 {
		r.maxBatchSize = size
	}
}
