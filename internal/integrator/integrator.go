// Package integrator provides a family of explicit Runge-Kutta time
// integrators - Euler, Heun and classical RK4 - driven by a single
// DerivativeFunc capability rather than a class hierarchy. Every integrator
// advances the same flat []float64 state vector and differs only in how
// many times, and at which intermediate points, it samples the derivative.
package integrator

import (
	"errors"
	"fmt"
)

// ErrNilDerivativeFunc is returned by the New* constructors when passed a
// nil DerivativeFunc.
var ErrNilDerivativeFunc = errors.New("integrator: derivative function may not be nil")

// ErrNonPositiveTimeStep is returned by the New* constructors and SetTimeStep
// when given a step size that is zero or negative.
var ErrNonPositiveTimeStep = errors.New("integrator: time step must be positive")

// ErrDimensionMismatch is returned by SetInitialState when the given slice's
// length does not match the integrator's fixed dimension.
var ErrDimensionMismatch = errors.New("integrator: initial state dimension mismatch")

// DerivativeFunc evaluates d(state)/dt at the given time, writing the result
// into deriv. state and deriv both have the integrator's fixed dimension.
// Implementations must not retain state or deriv past the call.
type DerivativeFunc func(state []float64, time float64, deriv []float64)

// Integrator advances a flat state vector forward (or backward) in time by
// repeated calls to SingleStep. It generalizes the original implementation's
// IIntegrator base class into a Go interface: every concrete integrator
// below implements this same contract against an injected DerivativeFunc,
// rather than inheriting from a common base.
type Integrator interface {
	// SingleStep advances the state by one time step, calling the
	// derivative function one or more times depending on the scheme.
	SingleStep()

	// SetInitialState resets the integrator's internal state to a copy of
	// initialState and resets time to 0. Returns ErrDimensionMismatch if
	// initialState's length does not equal the integrator's dimension.
	SetInitialState(initialState []float64) error

	// GetState returns the integrator's current state. Callers must not
	// mutate the returned slice.
	GetState() []float64

	// GetTime returns the current simulation time.
	GetTime() float64

	// GetTimeStep returns the current time step, which may be negative
	// after Reverse.
	GetTimeStep() float64

	// SetTimeStep changes the time step. Returns ErrNonPositiveTimeStep if
	// dt is not strictly positive; Reverse, not SetTimeStep, is how a
	// caller runs the simulation backward.
	SetTimeStep(dt float64) error

	// Reverse flips the sign of the time step, letting SingleStep retrace
	// the trajectory it has already advanced (property P7).
	Reverse()

	// GetName returns a short human-readable identifier for the scheme
	// ("Euler", "Heun", "RK4"), used in logs and the renderer's HUD.
	GetName() string
}

// base holds the fields and behavior common to every concrete integrator,
// mirroring the shared state the original IIntegrator base class held.
type base struct {
	derivative DerivativeFunc
	timeStep   float64
	time       float64
	dimension  int
	name       string
	state      []float64
}

func newBase(derivative DerivativeFunc, dimension int, dt float64, name string) (base, error) {
	if derivative == nil {
		return base{}, ErrNilDerivativeFunc
	}
	if dt <= 0 {
		return base{}, ErrNonPositiveTimeStep
	}
	return base{
		derivative: derivative,
		timeStep:   dt,
		dimension:  dimension,
		name:       name,
		state:      make([]float64, dimension),
	}, nil
}

func (b *base) GetState() []float64    { return b.state }
func (b *base) GetTime() float64       { return b.time }
func (b *base) GetTimeStep() float64   { return b.timeStep }
func (b *base) GetName() string        { return b.name }
func (b *base) Reverse()               { b.timeStep = -b.timeStep }

func (b *base) SetTimeStep(dt float64) error {
	if dt <= 0 {
		return ErrNonPositiveTimeStep
	}
	b.timeStep = dt
	return nil
}

func (b *base) SetInitialState(initialState []float64) error {
	if len(initialState) != b.dimension {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(initialState), b.dimension)
	}
	copy(b.state, initialState)
	b.time = 0
	return nil
}

func scaleAdd(dst, src []float64, scale float64, deriv []float64) {
	for i := range dst {
		dst[i] = src[i] + scale*deriv[i]
	}
}
