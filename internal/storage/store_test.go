package storage

import (
	"math"
	"testing"

	"github.com/san-kum/velosim/internal/sim"
	"github.com/san-kum/velosim/internal/vehicle"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		Poses: []vehicle.Pose{
			{X: 0, Y: 0, Yaw: 0, Velocity: 1},
			{X: 0.1, Y: 0, Yaw: 0.01, Velocity: 1},
			{X: 0.2, Y: 0.001, Yaw: 0.02, Velocity: 1},
		},
		Controls: []vehicle.Control{
			{Acceleration: 0, Steering: 0.1},
			{Acceleration: 0, Steering: 0.1},
		},
		Times:      []float64{0, 0.1, 0.2},
		Metrics:    map[string]float64{"distance": 0.2},
		StepsTaken: 2,
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	params := vehicle.Params{Wheelbase: 2.5, MaxSteer: 0.5, Dt: 0.1}
	runID, err := store.Save(params, 0.2, "script", sampleResult())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Wheelbase != 2.5 || meta.Dt != 0.1 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Controller != "script" {
		t.Errorf("controller = %q, want script", meta.Controller)
	}
	if meta.Metrics["distance"] != 0.2 {
		t.Errorf("metrics not persisted: %v", meta.Metrics)
	}
}

func TestLoadPoses(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	params := vehicle.Params{Wheelbase: 2.5, Dt: 0.1}
	result := sampleResult()
	runID, err := store.Save(params, 0.2, "none", result)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	poses, times, err := store.LoadPoses(runID)
	if err != nil {
		t.Fatalf("LoadPoses: %v", err)
	}
	if len(poses) != len(result.Poses) {
		t.Fatalf("poses = %d, want %d", len(poses), len(result.Poses))
	}

	for i := range poses {
		if math.Abs(poses[i].X-result.Poses[i].X) > 1e-5 ||
			math.Abs(poses[i].Yaw-result.Poses[i].Yaw) > 1e-5 {
			t.Errorf("pose %d: %+v vs %+v", i, poses[i], result.Poses[i])
		}
		if math.Abs(times[i]-result.Times[i]) > 1e-5 {
			t.Errorf("time %d: %v vs %v", i, times[i], result.Times[i])
		}
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty store, got %d runs", len(runs))
	}

	params := vehicle.Params{Wheelbase: 2.5, Dt: 0.1}
	if _, err := store.Save(params, 0.2, "none", sampleResult()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("runs = %d, want 1", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	store := New(t.TempDir() + "/does-not-exist")

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("runs = %d, want 0", len(runs))
	}
}
