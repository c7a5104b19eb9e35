package integrator

// Heun is Ralston's two-stage, second-order Runge-Kutta method (sometimes
// called the "improved Euler" or "Heun" method): it samples the derivative
// at the current point and at 2/3 of the way through the step, then
// combines them with weights 1/4 and 3/4.
type Heun struct {
	base
	temp, k1, k2 []float64
}

// NewHeun constructs a Heun integrator of the given dimension.
func NewHeun(derivative DerivativeFunc, dimension int, dt float64) (*Heun, error) {
	b, err := newBase(derivative, dimension, dt, "Heun")
	if err != nil {
		return nil, err
	}
	return &Heun{
		base: b,
		temp: make([]float64, dimension),
		k1:   make([]float64, dimension),
		k2:   make([]float64, dimension),
	}, nil
}

func (h *Heun) SingleStep() {
	const twoThirds = 2.0 / 3.0

	h.derivative(h.state, h.time, h.k1)
	scaleAdd(h.temp, h.state, twoThirds*h.timeStep, h.k1)

	h.derivative(h.temp, h.time+twoThirds*h.timeStep, h.k2)

	for i := range h.state {
		h.state[i] += h.timeStep / 4.0 * (h.k1[i] + 3*h.k2[i])
	}

	h.time += h.timeStep
}
