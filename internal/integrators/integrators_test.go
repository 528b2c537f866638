package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/velosim/internal/vehicle"
)

type oscillator struct{}

func (oscillator) Derive(x State, u Control, t float64) State {
	return State{x[1], -x[0]}
}

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()

	x := State{1.0, 0.0}
	u := Control{}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(oscillator{}, x, u, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestEulerMatchesModelStep(t *testing.T) {
	// One generic Euler step on the bicycle ODE must agree with the model's
	// built-in update (up to yaw wrapping, which stays inactive here).
	m, err := vehicle.New(vehicle.Params{Wheelbase: 2.5, Dt: 0.1})
	if err != nil {
		t.Fatal(err)
	}

	p := vehicle.Pose{X: 1, Y: -0.5, Yaw: 0.3, Velocity: 2}
	want, err := m.Step(p, 0.5, 0.2)
	if err != nil {
		t.Fatal(err)
	}

	integ := NewEuler()
	got := integ.Step(Bicycle{Wheelbase: 2.5}, State{p.X, p.Y, p.Yaw, p.Velocity}, Control{0.5, 0.2}, 0, 0.1)

	for i, pair := range [][2]float64{
		{got[0], want.X}, {got[1], want.Y}, {got[2], want.Yaw}, {got[3], want.Velocity},
	} {
		if math.Abs(pair[0]-pair[1]) > 1e-12 {
			t.Errorf("component %d: euler %v vs model %v", i, pair[0], pair[1])
		}
	}
}

func TestRK4TracksCircle(t *testing.T) {
	// Constant steer at constant speed traces a circle of radius L/tan(steer).
	wheelbase, steer, v := 2.5, 0.3, 2.0
	radius := wheelbase / math.Tan(steer)
	omega := v / radius

	sys := Bicycle{Wheelbase: wheelbase}
	u := Control{0, steer}
	integ := NewRK4()

	x := State{0, 0, 0, v}
	dt := 0.01
	steps := 500
	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, u, float64(i)*dt, dt)
	}

	tEnd := float64(steps) * dt
	wantX := radius * math.Sin(omega*tEnd)
	wantY := radius * (1 - math.Cos(omega*tEnd))

	if math.Abs(x[0]-wantX) > 1e-5 {
		t.Errorf("x = %v, want %v", x[0], wantX)
	}
	if math.Abs(x[1]-wantY) > 1e-5 {
		t.Errorf("y = %v, want %v", x[1], wantY)
	}
}
