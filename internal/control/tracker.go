package control

import (
	"math"

	"github.com/san-kum/velosim/internal/vehicle"
)

// Tracker steers toward successive waypoints using the heading error and
// holds a cruise speed with a proportional throttle. Waypoints are captured
// once the vehicle comes within Capture metres; after the last waypoint the
// list wraps around, so a closed track is followed indefinitely.
type Tracker struct {
	Waypoints   [][2]float64
	Capture     float64
	CruiseSpeed float64
	SpeedGain   float64
	target      int
}

func NewTracker(waypoints [][2]float64, cruiseSpeed float64) *Tracker {
	return &Tracker{
		Waypoints:   waypoints,
		Capture:     2.0,
		CruiseSpeed: cruiseSpeed,
		SpeedGain:   1.0,
	}
}

func (tr *Tracker) Compute(p vehicle.Pose, t float64) vehicle.Control {
	if len(tr.Waypoints) == 0 {
		return vehicle.Control{}
	}

	wp := tr.Waypoints[tr.target]
	dx, dy := wp[0]-p.X, wp[1]-p.Y
	if math.Hypot(dx, dy) < tr.Capture {
		tr.target = (tr.target + 1) % len(tr.Waypoints)
		wp = tr.Waypoints[tr.target]
		dx, dy = wp[0]-p.X, wp[1]-p.Y
	}

	steer := vehicle.NormalizeAngle(math.Atan2(dy, dx) - p.Yaw)
	accel := tr.SpeedGain * (tr.CruiseSpeed - p.Velocity)

	return vehicle.Control{Acceleration: accel, Steering: steer}
}
