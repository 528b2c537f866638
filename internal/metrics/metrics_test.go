package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/velosim/internal/vehicle"
)

func TestSteerEffort(t *testing.T) {
	m := NewSteerEffort()

	m.Observe(vehicle.Pose{}, vehicle.Control{Steering: 0.2}, 0)
	m.Observe(vehicle.Pose{}, vehicle.Control{Steering: -0.4}, 0.1)

	if math.Abs(m.Value()-0.3) > 1e-12 {
		t.Errorf("value = %v, want 0.3", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("value after reset = %v", m.Value())
	}
}

func TestDistance(t *testing.T) {
	m := NewDistance()

	m.Observe(vehicle.Pose{X: 0, Y: 0}, vehicle.Control{}, 0)
	m.Observe(vehicle.Pose{X: 3, Y: 4}, vehicle.Control{}, 0.1)
	m.Observe(vehicle.Pose{X: 3, Y: 10}, vehicle.Control{}, 0.2)

	if math.Abs(m.Value()-11) > 1e-12 {
		t.Errorf("distance = %v, want 11", m.Value())
	}
}

func TestPeakLateralAccel(t *testing.T) {
	m := NewPeakLateralAccel(2.5)

	m.Observe(vehicle.Pose{Velocity: 2}, vehicle.Control{Steering: 0.1}, 0)
	m.Observe(vehicle.Pose{Velocity: 5}, vehicle.Control{Steering: 0.3}, 0.1)
	m.Observe(vehicle.Pose{Velocity: 1}, vehicle.Control{Steering: 0.5}, 0.2)

	want := 25 * math.Tan(0.3) / 2.5
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("peak = %v, want %v", m.Value(), want)
	}
}
