package control

import "github.com/san-kum/velosim/internal/vehicle"

// Cruise is a PID loop on velocity; its output is the acceleration command.
// Steering stays at zero.
type Cruise struct {
	Kp       float64
	Ki       float64
	Kd       float64
	Target   float64
	integral float64
	prevErr  float64
	prevT    float64
	first    bool
}

func NewCruise(kp, ki, kd, target float64) *Cruise {
	return &Cruise{
		Kp:     kp,
		Ki:     ki,
		Kd:     kd,
		Target: target,
		first:  true,
	}
}

func (c *Cruise) Compute(p vehicle.Pose, t float64) vehicle.Control {
	err := c.Target - p.Velocity

	if c.first {
		c.prevErr = err
		c.prevT = t
		c.first = false
		return vehicle.Control{Acceleration: c.Kp * err}
	}

	dt := t - c.prevT
	if dt > 0 {
		c.integral += err * dt
		derivative := (err - c.prevErr) / dt

		c.prevErr = err
		c.prevT = t

		return vehicle.Control{Acceleration: c.Kp*err + c.Ki*c.integral + c.Kd*derivative}
	}
	return vehicle.Control{Acceleration: c.Kp * err}
}
