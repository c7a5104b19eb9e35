// Package particle defines the phase-state, derivative and parameter
// records the integrator and model operate on. Field order within State and
// Derivative is part of the contract: a []State is viewable as a flat
// []float64 of length 4*N, matching the integrator's generic state vector.
package particle

// State is the phase-state of one particle: position and velocity.
// Field order is fixed by contract (see AsFlatSlice).
type State struct {
	PositionX, PositionY float64
	VelocityX, VelocityY float64
}

// Derivative is the time-derivative of a State: d(position)/dt = velocity,
// d(velocity)/dt = acceleration. Field order matches State componentwise.
type Derivative struct {
	VelocityX, VelocityY         float64
	AccelerationX, AccelerationY float64
}

// Parameters are the time-invariant properties of a particle. Radius > 0
// marks a bulge/core; radius == 0 marks an ordinary star.
type Parameters struct {
	Mass   float64
	Radius float64
}

// IsBulge reports whether this particle is a bulge/core rather than a star.
func (p Parameters) IsBulge() bool {
	return p.Radius > 0
}

// AsFlatSlice reinterprets a []State as a flat []float64 of length 4*len(s).
// This realizes the spec's "packed sequence of doubles" contract explicitly,
// since Go has no sanctioned way to alias a struct slice across types.
func AsFlatSlice(states []State) []float64 {
	flat := make([]float64, 4*len(states))
	for i, s := range states {
		flat[4*i+0] = s.PositionX
		flat[4*i+1] = s.PositionY
		flat[4*i+2] = s.VelocityX
		flat[4*i+3] = s.VelocityY
	}
	return flat
}

// StatesFromFlat is the inverse of AsFlatSlice: it copies a flat []float64 of
// length 4*N into a []State of length N.
func StatesFromFlat(flat []float64) []State {
	n := len(flat) / 4
	states := make([]State, n)
	for i := range states {
		states[i] = State{
			PositionX: flat[4*i+0],
			PositionY: flat[4*i+1],
			VelocityX: flat[4*i+2],
			VelocityY: flat[4*i+3],
		}
	}
	return states
}

// DerivativesFromFlat is the Derivative analogue of StatesFromFlat.
func DerivativesFromFlat(flat []float64) []Derivative {
	n := len(flat) / 4
	derivs := make([]Derivative, n)
	for i := range derivs {
		derivs[i] = Derivative{
			VelocityX:     flat[4*i+0],
			VelocityY:     flat[4*i+1],
			AccelerationX: flat[4*i+2],
			AccelerationY: flat[4*i+3],
		}
	}
	return derivs
}

// DerivativesAsFlatSlice copies a []Derivative into a flat []float64,
// mirroring AsFlatSlice.
func DerivativesAsFlatSlice(derivs []Derivative) []float64 {
	flat := make([]float64, 4*len(derivs))
	for i, d := range derivs {
		flat[4*i+0] = d.VelocityX
		flat[4*i+1] = d.VelocityY
		flat[4*i+2] = d.AccelerationX
		flat[4*i+3] = d.AccelerationY
	}
	return flat
}
