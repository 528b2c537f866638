// Package metrics provides per-run scalar summaries collected by the
// simulator: steering effort, distance travelled and peak lateral
// acceleration.
package metrics

import (
	"math"

	"github.com/san-kum/velosim/internal/vehicle"
)

// SteerEffort is the mean absolute steering command.
type SteerEffort struct {
	sum     float64
	samples int
}

func NewSteerEffort() *SteerEffort {
	return &SteerEffort{}
}

func (s *SteerEffort) Name() string { return "steer_effort" }

func (s *SteerEffort) Observe(p vehicle.Pose, u vehicle.Control, t float64) {
	s.sum += math.Abs(u.Steering)
	s.samples++
}

func (s *SteerEffort) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sum / float64(s.samples)
}

func (s *SteerEffort) Reset() {
	s.sum = 0
	s.samples = 0
}

// Distance accumulates path length from successive poses.
type Distance struct {
	total float64
	prev  vehicle.Pose
	first bool
}

func NewDistance() *Distance {
	return &Distance{first: true}
}

func (d *Distance) Name() string { return "distance" }

func (d *Distance) Observe(p vehicle.Pose, u vehicle.Control, t float64) {
	if d.first {
		d.prev = p
		d.first = false
		return
	}
	d.total += math.Hypot(p.X-d.prev.X, p.Y-d.prev.Y)
	d.prev = p
}

func (d *Distance) Value() float64 { return d.total }

func (d *Distance) Reset() {
	d.total = 0
	d.first = true
}

// PeakLateralAccel tracks the maximum of v^2 * tan(steer) / wheelbase, the
// centripetal acceleration implied by the commanded steering.
type PeakLateralAccel struct {
	Wheelbase float64
	peak      float64
}

func NewPeakLateralAccel(wheelbase float64) *PeakLateralAccel {
	return &PeakLateralAccel{Wheelbase: wheelbase}
}

func (m *PeakLateralAccel) Name() string { return "peak_lateral_accel" }

func (m *PeakLateralAccel) Observe(p vehicle.Pose, u vehicle.Control, t float64) {
	a := math.Abs(p.Velocity * p.Velocity * math.Tan(u.Steering) / m.Wheelbase)
	if a > m.peak {
		m.peak = a
	}
}

func (m *PeakLateralAccel) Value() float64 { return m.peak }

func (m *PeakLateralAccel) Reset() { m.peak = 0 }
