package control

import (
	"math"
	"testing"

	"github.com/san-kum/velosim/internal/vehicle"
)

func TestNoneIsZero(t *testing.T) {
	c := NewNone()
	u := c.Compute(vehicle.Pose{Velocity: 5, Yaw: 1}, 3.0)
	if u != (vehicle.Control{}) {
		t.Errorf("expected zero control, got %+v", u)
	}
}

func TestScriptReplaysAndHolds(t *testing.T) {
	cmds := []vehicle.Control{
		{Acceleration: 1},
		{Acceleration: 2},
		{Acceleration: 3},
	}
	s := NewScript(cmds, 0.1)

	if got := s.Compute(vehicle.Pose{}, 0); got.Acceleration != 1 {
		t.Errorf("t=0: accel = %v, want 1", got.Acceleration)
	}
	if got := s.Compute(vehicle.Pose{}, 0.1); got.Acceleration != 2 {
		t.Errorf("t=0.1: accel = %v, want 2", got.Acceleration)
	}
	// Past the end the last command is held.
	if got := s.Compute(vehicle.Pose{}, 5.0); got.Acceleration != 3 {
		t.Errorf("t=5.0: accel = %v, want 3", got.Acceleration)
	}
}

func TestScriptEmpty(t *testing.T) {
	s := NewScript(nil, 0.1)
	if got := s.Compute(vehicle.Pose{}, 1.0); got != (vehicle.Control{}) {
		t.Errorf("empty script: got %+v", got)
	}
}

func TestCruisePushesTowardTarget(t *testing.T) {
	c := NewCruise(1.0, 0, 0, 5.0)

	below := c.Compute(vehicle.Pose{Velocity: 2}, 0)
	if below.Acceleration <= 0 {
		t.Errorf("below target: accel = %v, want positive", below.Acceleration)
	}

	above := c.Compute(vehicle.Pose{Velocity: 8}, 0.1)
	if above.Acceleration >= 0 {
		t.Errorf("above target: accel = %v, want negative", above.Acceleration)
	}
}

func TestCruiseSettles(t *testing.T) {
	c := NewCruise(2.0, 0.1, 0.5, 5.0)

	// Forward-simulate velocity only; position is irrelevant to the loop.
	v := 0.0
	dt := 0.05
	for i := 0; i < 400; i++ {
		u := c.Compute(vehicle.Pose{Velocity: v}, float64(i)*dt)
		v += u.Acceleration * dt
	}

	if math.Abs(v-5.0) > 0.1 {
		t.Errorf("velocity settled at %v, want ~5.0", v)
	}
}

func TestTrackerSteersTowardWaypoint(t *testing.T) {
	tr := NewTracker([][2]float64{{0, 10}}, 2.0)

	// Waypoint due left of a vehicle heading along +x.
	u := tr.Compute(vehicle.Pose{Velocity: 2}, 0)
	if u.Steering <= 0 {
		t.Errorf("steer = %v, want positive (left)", u.Steering)
	}
	if math.Abs(u.Steering-math.Pi/2) > 1e-9 {
		t.Errorf("steer = %v, want pi/2", u.Steering)
	}
}

func TestTrackerAdvancesOnCapture(t *testing.T) {
	tr := NewTracker([][2]float64{{1, 0}, {10, 0}}, 2.0)
	tr.Capture = 2.0

	// Inside the capture radius of the first waypoint: aim at the second.
	u := tr.Compute(vehicle.Pose{}, 0)
	if math.Abs(u.Steering) > 1e-9 {
		t.Errorf("steer = %v, want 0 (second waypoint dead ahead)", u.Steering)
	}
	if tr.target != 1 {
		t.Errorf("target = %d, want 1", tr.target)
	}
}
