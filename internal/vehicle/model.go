package vehicle

import (
	"fmt"
	"math"
)

// singularEps is the margin kept between the clamped steering angle and
// pi/2, where tan diverges.
const singularEps = 1e-9

// Model advances a Pose one timestep at a time. It holds only immutable
// parameters, so a single Model may be shared across goroutines.
type Model struct {
	params Params
}

// New validates the parameters and returns a ready Model.
func New(p Params) (*Model, error) {
	if math.IsNaN(p.Wheelbase) || math.IsInf(p.Wheelbase, 0) || p.Wheelbase <= 0 {
		return nil, fmt.Errorf("%w, got %g", ErrWheelbase, p.Wheelbase)
	}
	if math.IsNaN(p.Dt) || math.IsInf(p.Dt, 0) || p.Dt <= 0 {
		return nil, fmt.Errorf("%w, got %g", ErrTimestep, p.Dt)
	}
	if math.IsNaN(p.MaxSteer) || p.MaxSteer < 0 || p.MaxSteer >= math.Pi/2 {
		return nil, fmt.Errorf("%w, got %g", ErrSteerLimit, p.MaxSteer)
	}
	return &Model{params: p}, nil
}

// Params returns the model's configuration.
func (m *Model) Params() Params {
	return m.params
}

// Step computes the pose one timestep after p under the given acceleration
// (m/s^2) and steering angle (rad). The input pose is not modified.
//
// Steering is clamped to the configured limit before use. The integration is
// forward Euler evaluated at the pre-update state, so accuracy degrades with
// large timesteps; no stability bound is enforced.
func (m *Model) Step(p Pose, accel, steer float64) (Pose, error) {
	delta := steer
	if m.params.MaxSteer > 0 {
		delta = clamp(delta, -m.params.MaxSteer, m.params.MaxSteer)
	}
	if math.Abs(math.Pi/2-math.Abs(delta)) < singularEps {
		return p, fmt.Errorf("%w: %g rad", ErrSteerSingular, delta)
	}

	// Zero velocity gives zero yaw rate without a special case.
	yawRate := p.Velocity * math.Tan(delta) / m.params.Wheelbase

	dt := m.params.Dt
	return Pose{
		X:        p.X + p.Velocity*math.Cos(p.Yaw)*dt,
		Y:        p.Y + p.Velocity*math.Sin(p.Yaw)*dt,
		Yaw:      NormalizeAngle(p.Yaw + yawRate*dt),
		Velocity: p.Velocity + accel*dt,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
