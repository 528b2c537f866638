// Package control provides per-tick command sources for the simulator:
// a zero controller, scripted command sequences, a PID cruise controller
// and a waypoint tracker.
package control

import "github.com/san-kum/velosim/internal/vehicle"

// None holds the wheel straight and coasts.
type None struct{}

func NewNone() *None {
	return &None{}
}

func (n *None) Compute(p vehicle.Pose, t float64) vehicle.Control {
	return vehicle.Control{}
}
