package integrator

// RK4 is the classical four-stage, fourth-order Runge-Kutta method: two
// evaluations at the midpoint, one at the current point and one at the
// endpoint, combined with Simpson-like weights 1-2-2-1.
type RK4 struct {
	base
	temp, k1, k2, k3, k4 []float64
}

// NewRK4 constructs an RK4 integrator of the given dimension.
func NewRK4(derivative DerivativeFunc, dimension int, dt float64) (*RK4, error) {
	b, err := newBase(derivative, dimension, dt, "RK4")
	if err != nil {
		return nil, err
	}
	return &RK4{
		base: b,
		temp: make([]float64, dimension),
		k1:   make([]float64, dimension),
		k2:   make([]float64, dimension),
		k3:   make([]float64, dimension),
		k4:   make([]float64, dimension),
	}, nil
}

func (r *RK4) SingleStep() {
	half := 0.5 * r.timeStep

	r.derivative(r.state, r.time, r.k1)
	scaleAdd(r.temp, r.state, half, r.k1)

	r.derivative(r.temp, r.time+half, r.k2)
	scaleAdd(r.temp, r.state, half, r.k2)

	r.derivative(r.temp, r.time+half, r.k3)
	scaleAdd(r.temp, r.state, r.timeStep, r.k3)

	r.derivative(r.temp, r.time+r.timeStep, r.k4)

	for i := range r.state {
		r.state[i] += r.timeStep / 6.0 * (r.k1[i] + 2*(r.k2[i]+r.k3[i]) + r.k4[i])
	}

	r.time += r.timeStep
}
