// Package sim drives a vehicle model through time. The simulator owns the
// current pose; the model itself is a pure per-step transformation.
package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/velosim/internal/vehicle"
)

type Simulator struct {
	model      *vehicle.Model
	controller Controller
	metrics    []Metric
	observers  []Observer
}

func New(model *vehicle.Model, controller Controller) *Simulator {
	return &Simulator{
		model:      model,
		controller: controller,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances the pose from start until cfg.Duration has elapsed, recording
// every pose and control. A steering singularity or invalid pose ends the run
// early with the error recorded in Result.Errors.
func (s *Simulator) Run(ctx context.Context, start vehicle.Pose, cfg Config) (*Result, error) {
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}

	dt := s.model.Params().Dt
	steps := int(cfg.Duration / dt)
	result := &Result{
		Poses:    make([]vehicle.Pose, 0, steps+1),
		Controls: make([]vehicle.Control, 0, steps),
		Times:    make([]float64, 0, steps+1),
		Metrics:  make(map[string]float64),
		Errors:   make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	p := start
	t := 0.0

	result.Poses = append(result.Poses, p)
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		u := s.controller.Compute(p, t)

		for _, m := range s.metrics {
			m.Observe(p, u, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(p, u, t)
		}

		next, err := s.model.Step(p, u.Acceleration, u.Steering)
		if err != nil {
			result.Errors = append(result.Errors, SimError{Time: t, Step: i, Message: err.Error()})
			break
		}

		if cfg.ValidatePose && !next.IsValid() {
			result.Errors = append(result.Errors, SimError{Time: t, Step: i, Message: "invalid pose (NaN/Inf)"})
			break
		}

		p = next
		t += dt
		result.StepsTaken++

		result.Poses = append(result.Poses, p)
		result.Controls = append(result.Controls, u)
		result.Times = append(result.Times, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps the simulation, invoking callback before each step.
// Returning false from the callback stops the run.
func (s *Simulator) RunWithCallback(ctx context.Context, start vehicle.Pose, cfg Config, callback func(vehicle.Pose, vehicle.Control, float64) bool) error {
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}

	dt := s.model.Params().Dt
	p := start
	t := 0.0

	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u := s.controller.Compute(p, t)

		if !callback(p, u, t) {
			return nil
		}

		next, err := s.model.Step(p, u.Acceleration, u.Steering)
		if err != nil {
			return fmt.Errorf("at t=%.4f: %w", t, err)
		}
		p = next
		t += dt

		if cfg.ValidatePose && !p.IsValid() {
			return fmt.Errorf("invalid pose at t=%.4f", t)
		}
	}

	return nil
}
