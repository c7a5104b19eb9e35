package integrator

// Euler is the forward (explicit) Euler method: one derivative evaluation
// per step, first-order accurate. It is the cheapest scheme in the family
// and the least accurate.
type Euler struct {
	base
	k1 []float64
}

// NewEuler constructs an Euler integrator of the given dimension, sampling
// derivatives from the given DerivativeFunc at the given fixed time step.
func NewEuler(derivative DerivativeFunc, dimension int, dt float64) (*Euler, error) {
	b, err := newBase(derivative, dimension, dt, "Euler")
	if err != nil {
		return nil, err
	}
	return &Euler{base: b, k1: make([]float64, dimension)}, nil
}

func (e *Euler) SingleStep() {
	e.derivative(e.state, e.time, e.k1)
	scaleAdd(e.state, e.state, e.timeStep, e.k1)
	e.time += e.timeStep
}
