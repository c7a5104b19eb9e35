// Package simulation wires a model and an integrator together into a
// single steppable simulation, the shape a renderer or driver loop holds.
package simulation

import (
	"fmt"

	"nbodysim/internal/config"
	"nbodysim/internal/integrator"
	"nbodysim/internal/model"
	"nbodysim/internal/particle"
	"nbodysim/internal/quadtree"
	"nbodysim/internal/vector"
)

// Simulation holds the entire state of one running simulation: the model
// that produces derivatives and the integrator that advances them.
type Simulation struct {
	Config *config.Config

	model      *model.NBody
	integrator integrator.Integrator
}

// NewSimulation builds a Simulation from a validated configuration: it
// constructs the N-body model for the configured scenario, then the
// integrator named by cfg.Integrator, seeded with the model's initial
// state.
func NewSimulation(cfg *config.Config) (*Simulation, error) {
	m, err := model.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	integ, err := newIntegrator(cfg.Integrator, cfg.TimeStep, m)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	if err := integ.SetInitialState(m.GetInitialState()); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	return &Simulation{Config: cfg, model: m, integrator: integ}, nil
}

func newIntegrator(name string, dt float64, m *model.NBody) (integrator.Integrator, error) {
	dimension := m.Dimension()

	switch name {
	case config.IntegratorEuler:
		return integrator.NewEuler(m.Evaluate, dimension, dt)
	case config.IntegratorRK4:
		return integrator.NewRK4(m.Evaluate, dimension, dt)
	default: // Heun, and the documented fallback for anything else
		return integrator.NewHeun(m.Evaluate, dimension, dt)
	}
}

// Step advances the simulation by one configured time step.
func (s *Simulation) Step() {
	s.integrator.SingleStep()
}

// SetTimeStep changes the integrator's time step.
func (s *Simulation) SetTimeStep(dt float64) error {
	return s.integrator.SetTimeStep(dt)
}

// Reverse flips the integrator's time direction, retracing the trajectory
// already advanced.
func (s *Simulation) Reverse() {
	s.integrator.Reverse()
}

// SetTheta adjusts the Barnes-Hut opening angle used by the next
// derivative evaluation.
func (s *Simulation) SetTheta(theta float64) {
	s.model.SetTheta(theta)
}

// GetTheta returns the current Barnes-Hut opening angle.
func (s *Simulation) GetTheta() float64 {
	return s.model.GetTheta()
}

// Particles returns the current particle states, decoded from the
// integrator's flat state vector.
func (s *Simulation) Particles() []particle.State {
	return particle.StatesFromFlat(s.integrator.GetState())
}

// Parameters returns the time-invariant particle parameters.
func (s *Simulation) Parameters() []particle.Parameters {
	return s.model.Parameters()
}

// MassCenter returns the tree's aggregate mass center as of the last step.
func (s *Simulation) MassCenter() vector.Vector2D {
	return s.model.MassCenter()
}

// Tree returns the Barnes-Hut tree as of the last step, for a renderer
// drawing the cells opened while evaluating particle 0.
func (s *Simulation) Tree() *quadtree.Tree {
	return s.model.Tree()
}

// Time returns the current simulation time.
func (s *Simulation) Time() float64 {
	return s.integrator.GetTime()
}

// IntegratorName returns the active integrator's short name ("Euler",
// "Heun", "RK4").
func (s *Simulation) IntegratorName() string {
	return s.integrator.GetName()
}

// ParticleCount returns the number of particles in the simulation.
func (s *Simulation) ParticleCount() int {
	return s.model.ParticleCount()
}
