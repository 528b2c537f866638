// Package integrators provides generic fixed-step ODE integrators used to
// cross-check the model's built-in forward Euler update against a
// higher-order scheme.
package integrators

import "math"

// State is a flat state vector.
type State []float64

// Control is a flat control vector.
type Control []float64

// System is the right-hand side of an ODE: dx/dt at state x under control u.
type System interface {
	Derive(x State, u Control, t float64) State
}

// Integrator advances a state vector by one timestep.
type Integrator interface {
	Step(sys System, x State, u Control, t, dt float64) State
}

// Bicycle is the continuous-time kinematic bicycle ODE with state
// [x, y, yaw, v] and control [accel, steer].
type Bicycle struct {
	Wheelbase float64
}

func (b Bicycle) Derive(x State, u Control, t float64) State {
	yaw, v := x[2], x[3]
	accel, steer := 0.0, 0.0
	if len(u) >= 2 {
		accel, steer = u[0], u[1]
	}
	return State{
		v * math.Cos(yaw),
		v * math.Sin(yaw),
		v * math.Tan(steer) / b.Wheelbase,
		accel,
	}
}
