package vehicle

import "math"

// Pose is the vehicle's instantaneous configuration at the rear axle.
// Yaw is always normalized to (-pi, pi]. Velocity is signed: negative
// means reversing.
type Pose struct {
	X        float64
	Y        float64
	Yaw      float64
	Velocity float64
}

// Control is the command applied for one timestep.
type Control struct {
	Acceleration float64
	Steering     float64
}

// Params configure a Model for its lifetime.
type Params struct {
	// Wheelbase is the rear-to-front axle distance in metres. Must be positive.
	Wheelbase float64

	// MaxSteer clamps the steering input to [-MaxSteer, MaxSteer] radians.
	// Zero disables the clamp. Must be below pi/2.
	MaxSteer float64

	// Dt is the integration timestep in seconds. Must be positive.
	Dt float64
}

// IsValid reports whether the pose contains no NaN or Inf components.
func (p Pose) IsValid() bool {
	for _, v := range [...]float64{p.X, p.Y, p.Yaw, p.Velocity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// NormalizeAngle wraps an angle into (-pi, pi].
func NormalizeAngle(angle float64) float64 {
	return math.Atan2(math.Sin(angle), math.Cos(angle))
}
