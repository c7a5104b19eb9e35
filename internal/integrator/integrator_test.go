package integrator

import (
	"errors"
	"math"
	"testing"
)

// constantVelocity returns a DerivativeFunc for a trivial 1D particle
// (position, velocity) with a fixed acceleration, used across the tests
// below because its exact analytic solution is known.
func constantVelocity(accel float64) DerivativeFunc {
	return func(state []float64, t float64, deriv []float64) {
		deriv[0] = state[1]
		deriv[1] = accel
	}
}

func TestNewEulerRejectsNilDerivative(t *testing.T) {
	if _, err := NewEuler(nil, 2, 0.1); !errors.Is(err, ErrNilDerivativeFunc) {
		t.Errorf("expected ErrNilDerivativeFunc, got %v", err)
	}
}

func TestNewRejectsNonPositiveTimeStep(t *testing.T) {
	d := constantVelocity(0)
	if _, err := NewEuler(d, 2, 0); !errors.Is(err, ErrNonPositiveTimeStep) {
		t.Errorf("dt=0: expected ErrNonPositiveTimeStep, got %v", err)
	}
	if _, err := NewHeun(d, 2, -1); !errors.Is(err, ErrNonPositiveTimeStep) {
		t.Errorf("dt=-1: expected ErrNonPositiveTimeStep, got %v", err)
	}
}

func TestSetInitialStateRoundTrip(t *testing.T) {
	integ, err := NewRK4(constantVelocity(0), 2, 0.1)
	if err != nil {
		t.Fatalf("NewRK4: %v", err)
	}
	initial := []float64{3, 4}
	if err := integ.SetInitialState(initial); err != nil {
		t.Fatalf("SetInitialState: %v", err)
	}
	got := integ.GetState()
	if got[0] != initial[0] || got[1] != initial[1] {
		t.Errorf("expected state %v, got %v", initial, got)
	}
	if integ.GetTime() != 0 {
		t.Errorf("expected time reset to 0, got %f", integ.GetTime())
	}
}

func TestSetInitialStateDimensionMismatch(t *testing.T) {
	integ, _ := NewEuler(constantVelocity(0), 2, 0.1)
	if err := integ.SetInitialState([]float64{1, 2, 3}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

// RK4 is exact for constant acceleration (the true solution is a quadratic
// polynomial, within RK4's order-4 exactness), so this pins the Butcher
// weights rather than just checking qualitative behavior.
func TestRK4ExactForConstantAcceleration(t *testing.T) {
	const accel = -2.0
	integ, err := NewRK4(constantVelocity(accel), 2, 0.5)
	if err != nil {
		t.Fatalf("NewRK4: %v", err)
	}
	if err := integ.SetInitialState([]float64{0, 10}); err != nil {
		t.Fatalf("SetInitialState: %v", err)
	}

	for i := 0; i < 4; i++ {
		integ.SingleStep()
	}

	elapsed := integ.GetTime()
	wantPosition := 10*elapsed + 0.5*accel*elapsed*elapsed
	wantVelocity := 10 + accel*elapsed

	got := integ.GetState()
	if math.Abs(got[0]-wantPosition) > 1e-9 {
		t.Errorf("position: expected %f, got %f", wantPosition, got[0])
	}
	if math.Abs(got[1]-wantVelocity) > 1e-9 {
		t.Errorf("velocity: expected %f, got %f", wantVelocity, got[1])
	}
}

// P7: stepping forward N times and then, after Reverse, stepping backward N
// times returns (approximately) to the initial state, for every scheme in
// the family.
func TestReverseRetracesTrajectory(t *testing.T) {
	factories := map[string]func() (Integrator, error){
		"Euler": func() (Integrator, error) { return NewEuler(constantVelocity(-9.8), 2, 0.01) },
		"Heun":  func() (Integrator, error) { return NewHeun(constantVelocity(-9.8), 2, 0.01) },
		"RK4":   func() (Integrator, error) { return NewRK4(constantVelocity(-9.8), 2, 0.01) },
	}

	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			integ, err := factory()
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			initial := []float64{0, 5}
			if err := integ.SetInitialState(initial); err != nil {
				t.Fatalf("SetInitialState: %v", err)
			}

			const steps = 100
			for i := 0; i < steps; i++ {
				integ.SingleStep()
			}

			integ.Reverse()
			for i := 0; i < steps; i++ {
				integ.SingleStep()
			}

			got := integ.GetState()
			if math.Abs(got[0]-initial[0]) > 1e-6 || math.Abs(got[1]-initial[1]) > 1e-6 {
				t.Errorf("%s: expected to retrace to %v, got %v", name, initial, got)
			}
			if math.Abs(integ.GetTime()) > 1e-9 {
				t.Errorf("%s: expected time to return to 0, got %f", name, integ.GetTime())
			}
		})
	}
}

func TestGetName(t *testing.T) {
	euler, _ := NewEuler(constantVelocity(0), 1, 0.1)
	heun, _ := NewHeun(constantVelocity(0), 1, 0.1)
	rk4, _ := NewRK4(constantVelocity(0), 1, 0.1)

	if euler.GetName() != "Euler" {
		t.Errorf("expected Euler, got %s", euler.GetName())
	}
	if heun.GetName() != "Heun" {
		t.Errorf("expected Heun, got %s", heun.GetName())
	}
	if rk4.GetName() != "RK4" {
		t.Errorf("expected RK4, got %s", rk4.GetName())
	}
}

func TestSetTimeStepRejectsNonPositive(t *testing.T) {
	integ, _ := NewEuler(constantVelocity(0), 1, 0.1)
	if err := integ.SetTimeStep(0); !errors.Is(err, ErrNonPositiveTimeStep) {
		t.Errorf("expected ErrNonPositiveTimeStep, got %v", err)
	}
	if err := integ.SetTimeStep(0.5); err != nil {
		t.Errorf("SetTimeStep(0.5): unexpected error %v", err)
	}
	if integ.GetTimeStep() != 0.5 {
		t.Errorf("expected time step 0.5, got %f", integ.GetTimeStep())
	}
}
