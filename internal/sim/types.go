package sim

import (
	"fmt"

	"github.com/san-kum/velosim/internal/vehicle"
)

// Controller produces the control pair for the current tick.
type Controller interface {
	Compute(p vehicle.Pose, t float64) vehicle.Control
}

// Metric accumulates a scalar over the course of a run.
type Metric interface {
	Name() string
	Observe(p vehicle.Pose, u vehicle.Control, t float64)
	Value() float64
	Reset()
}

// Observer is notified of every step, before integration.
type Observer interface {
	OnStep(p vehicle.Pose, u vehicle.Control, t float64)
}

// Config holds per-run settings. The timestep itself belongs to the model.
type Config struct {
	Duration     float64
	ValidatePose bool
}

// Result collects the trajectory of a run. Poses has one more entry than
// Controls and Times aligns with Poses.
type Result struct {
	Poses      []vehicle.Pose
	Controls   []vehicle.Control
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// SimError records where in a run a failure occurred.
type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
