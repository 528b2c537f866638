package control

import "github.com/san-kum/velosim/internal/vehicle"

// Script replays a pre-recorded command sequence, one entry per timestep.
// Past the end of the sequence the last command is held.
type Script struct {
	commands []vehicle.Control
	dt       float64
}

func NewScript(commands []vehicle.Control, dt float64) *Script {
	return &Script{commands: commands, dt: dt}
}

func (s *Script) Compute(p vehicle.Pose, t float64) vehicle.Control {
	if len(s.commands) == 0 {
		return vehicle.Control{}
	}
	idx := int(t/s.dt + 0.5)
	if idx >= len(s.commands) {
		idx = len(s.commands) - 1
	}
	return s.commands[idx]
}
