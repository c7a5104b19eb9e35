// Package model implements the N-body gravitational model: scenario
// synthesis (Single Galaxy, Galaxy Collision) and the derivative function
// an integrator drives through the Barnes-Hut tree.
package model

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"nbodysim/internal/config"
	"nbodysim/internal/particle"
	"nbodysim/internal/quadtree"
	"nbodysim/internal/vector"
)

const (
	secondsPerYear         = 365.25 * 86400
	kilogramsPerSolarMass  = 1.988435e30
	metersPerParsec        = 3.08567758129e16
	gravitationalConstant  = 6.67428e-11 // G, SI units
)

// gravitationalConstantInModelUnits converts G from SI units (m^3 kg^-1
// s^-2) to the model's units of parsecs, solar masses and years.
func gravitationalConstantInModelUnits() float64 {
	return gravitationalConstant / (metersPerParsec * metersPerParsec * metersPerParsec) *
		kilogramsPerSolarMass * secondsPerYear * secondsPerYear
}

// NBody is the N-body gravitational model: owned particle state, a
// Barnes-Hut tree rebuilt every derivative evaluation, and the scenario
// that produced the initial conditions.
type NBody struct {
	states []particle.State
	params []particle.Parameters

	tree *quadtree.Tree
	g    float64

	massCenter     vector.Vector2D
	areaOfInterest float64

	workers int
}

// New builds an NBody model from a validated configuration, synthesizing
// initial conditions for the scenario it names.
func New(cfg *config.Config) (*NBody, error) {
	m := &NBody{
		g:              gravitationalConstantInModelUnits(),
		areaOfInterest: 1,
		workers:        runtime.NumCPU(),
	}

	switch cfg.Simulation {
	case config.ScenarioGalaxyCollision:
		if err := m.galaxyCollision(cfg.Settings.GalaxyCollision); err != nil {
			return nil, err
		}
	default: // Single Galaxy; config.Validate rejects any other name, so only an unvalidated config lands here with one
		if err := m.singleGalaxy(cfg.Settings.SingleGalaxy); err != nil {
			return nil, err
		}
	}

	m.tree = quadtree.New(vector.New(0, 0), vector.New(0, 0), m.g)
	return m, nil
}

// Dimension returns the model's flat state-vector length, 4*N.
func (m *NBody) Dimension() int { return 4 * len(m.states) }

// GetInitialState returns the model's synthesized initial conditions as a
// flat state vector, suitable for Integrator.SetInitialState.
func (m *NBody) GetInitialState() []float64 {
	return particle.AsFlatSlice(m.states)
}

// ParticleCount returns the number of particles in the model.
func (m *NBody) ParticleCount() int { return len(m.states) }

// Parameters returns the time-invariant parameters of every particle.
// Callers must not mutate the returned slice.
func (m *NBody) Parameters() []particle.Parameters { return m.params }

// MassCenter returns the tree's aggregate mass center as of the last
// Evaluate call.
func (m *NBody) MassCenter() vector.Vector2D { return m.massCenter }

// Tree returns the Barnes-Hut tree as of the last Evaluate call, for
// renderers that draw the cells opened while evaluating particle 0.
func (m *NBody) Tree() *quadtree.Tree { return m.tree }

// SetTheta forwards to the underlying tree's opening-angle parameter.
func (m *NBody) SetTheta(theta float64) { m.tree.SetTheta(theta) }

// GetTheta forwards to the underlying tree's opening-angle parameter.
func (m *NBody) GetTheta() float64 { return m.tree.GetTheta() }

func galaxyBounds(states []particle.State) (min, max vector.Vector2D) {
	min = vector.New(math.Inf(1), math.Inf(1))
	max = vector.New(math.Inf(-1), math.Inf(-1))
	for _, s := range states {
		min.X = math.Min(min.X, s.PositionX)
		min.Y = math.Min(min.Y, s.PositionY)
		max.X = math.Max(max.X, s.PositionX)
		max.Y = math.Max(max.Y, s.PositionY)
	}
	return min, max
}

// buildTree rebuilds the tree from scratch around the current state - the
// lifecycle spec.md §3 mandates: a fresh Reset/Insert pass on every
// derivative evaluation, not an incremental update.
func (m *NBody) buildTree(states []particle.State) {
	half := vector.New(m.areaOfInterest, m.areaOfInterest)
	m.tree.Reset(m.massCenter.Sub(half), m.massCenter.Add(half), states, m.params)

	for i := range states {
		// A particle outside the area of interest is dropped for this
		// step rather than treated as fatal (spec.md §7); its contribution
		// to this step's forces is simply absent.
		_ = m.tree.Insert(i)
	}

	m.tree.ComputeMassDistribution()
	m.massCenter = m.tree.MassCenter()
}

// Evaluate computes d(state)/dt at the given time, implementing
// integrator.DerivativeFunc's contract. Particles 1..N-1 are
// evaluated in parallel across a bounded worker pool since their
// derivative writes are disjoint; particle 0 is evaluated serially,
// immediately after ClearStatistics, so the tree's subdivided flags
// reflect exactly the cells opened for it (spec.md §4.3 step 6, §5).
func (m *NBody) Evaluate(state []float64, time float64, deriv []float64) {
	states := particle.StatesFromFlat(state)
	m.buildTree(states)

	n := len(states)
	derivs := make([]particle.Derivative, n)

	if n > 1 {
		indices := make(chan int, n-1)
		for i := 1; i < n; i++ {
			indices <- i
		}
		close(indices)

		var wg sync.WaitGroup
		workers := m.workers
		if workers > n-1 {
			workers = n - 1
		}
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range indices {
					accel := m.tree.CalculateForce(i, false)
					derivs[i] = particle.Derivative{
						VelocityX:     states[i].VelocityX,
						VelocityY:     states[i].VelocityY,
						AccelerationX: accel.X,
						AccelerationY: accel.Y,
					}
				}
			}()
		}
		wg.Wait()
	}

	m.tree.ClearStatistics()
	accel := m.tree.CalculateForce(0, true)
	derivs[0] = particle.Derivative{
		VelocityX:     states[0].VelocityX,
		VelocityY:     states[0].VelocityY,
		AccelerationX: accel.X,
		AccelerationY: accel.Y,
	}

	copy(deriv, particle.DerivativesAsFlatSlice(derivs))
}

// orbitalVelocity computes the circular-orbit velocity a particle at
// (x, y) needs to stay in orbit around a mass m at (centerX, centerY),
// matching the original's GetOrbitalVelocity.
func orbitalVelocity(g, centerX, centerY, centerMass, x, y float64) (vx, vy float64) {
	rx := centerX - x
	ry := centerY - y
	dist := math.Sqrt(rx*rx + ry*ry)
	v := math.Sqrt(g * centerMass / dist)
	vx = (ry / dist) * v
	vy = (-rx / dist) * v
	return vx, vy
}

func (m *NBody) synthesizeGalaxy(settings *config.GalaxySettings, states []particle.State, params []particle.Parameters) {
	ic := settings.InitialConditions
	states[0] = particle.State{
		PositionX: ic.PositionX,
		PositionY: ic.PositionY,
		VelocityX: ic.VelocityX,
		VelocityY: ic.VelocityY,
	}
	params[0] = particle.Parameters{Mass: settings.BulgeMass, Radius: settings.BulgeRadius}

	for i := 1; i < len(states); i++ {
		radius := settings.BulgeRadius + rand.Float64()*(settings.DiskRadius-settings.BulgeRadius)
		alpha := rand.Float64() * 2 * math.Pi
		mass := settings.MinimumStellarMass + rand.Float64()*(settings.MaximumStellarMass-settings.MinimumStellarMass)

		x := ic.PositionX + radius*math.Sin(alpha)
		y := ic.PositionY + radius*math.Cos(alpha)

		vx, vy := orbitalVelocity(m.g, ic.PositionX, ic.PositionY, settings.BulgeMass, x, y)

		states[i] = particle.State{
			PositionX: x,
			PositionY: y,
			VelocityX: ic.VelocityX + vx,
			VelocityY: ic.VelocityY + vy,
		}
		params[i] = particle.Parameters{Mass: mass}
	}
}

func (m *NBody) singleGalaxy(settings *config.GalaxySettings) error {
	if settings == nil {
		return fmt.Errorf("model: Single Galaxy scenario requires settings")
	}
	if settings.NumberOfParticles <= 0 {
		return fmt.Errorf("model: invalid number of particles: %d", settings.NumberOfParticles)
	}

	states := make([]particle.State, settings.NumberOfParticles)
	params := make([]particle.Parameters, settings.NumberOfParticles)
	m.synthesizeGalaxy(settings, states, params)

	m.states, m.params = states, params
	min, max := galaxyBounds(states)
	m.areaOfInterest = 1.5 * 1.05 * math.Max(max.X-min.X, max.Y-min.Y)
	return nil
}

// galaxyCollision synthesizes one or more galaxies into a shared particle
// array. Keys are parsed and sorted numerically ("1".."K") rather than
// relying on a 1-based fixed-size array, so the ordering is deterministic
// regardless of map iteration order (spec.md §9's redesign (a)).
func (m *NBody) galaxyCollision(galaxies map[string]config.GalaxySettings) error {
	if len(galaxies) == 0 {
		return fmt.Errorf("model: Galaxy Collision scenario requires at least one galaxy")
	}

	keys := make([]string, 0, len(galaxies))
	for k := range galaxies {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})

	total := 0
	for _, k := range keys {
		settings := galaxies[k]
		if settings.NumberOfParticles <= 0 {
			return fmt.Errorf("model: galaxy %q has invalid number of particles: %d", k, settings.NumberOfParticles)
		}
		total += settings.NumberOfParticles
	}

	states := make([]particle.State, total)
	params := make([]particle.Parameters, total)

	offset := 0
	for _, k := range keys {
		settings := galaxies[k]
		n := settings.NumberOfParticles
		m.synthesizeGalaxy(&settings, states[offset:offset+n], params[offset:offset+n])
		offset += n
	}

	m.states, m.params = states, params
	min, max := galaxyBounds(states)
	m.areaOfInterest = 1.5 * 1.05 * math.Max(max.X-min.X, max.Y-min.Y)
	return nil
}
