// Package storage persists simulation runs: one directory per run holding
// metadata.json and the full pose trace in poses.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/velosim/internal/sim"
	"github.com/san-kum/velosim/internal/vehicle"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Wheelbase  float64            `json:"wheelbase"`
	MaxSteer   float64            `json:"max_steer"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Controller string             `json:"controller"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) Save(params vehicle.Params, duration float64, controller string, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", controller, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Wheelbase:  params.Wheelbase,
		MaxSteer:   params.MaxSteer,
		Dt:         params.Dt,
		Duration:   duration,
		Controller: controller,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "poses.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time", "x", "y", "yaw", "velocity", "accel", "steer"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, p := range result.Poses {
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 6, 64),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Yaw, 'f', 6, 64),
			strconv.FormatFloat(p.Velocity, 'f', 6, 64),
		}

		// Controls lag poses by one entry; the final pose has no command.
		if i < len(result.Controls) {
			row = append(row,
				strconv.FormatFloat(result.Controls[i].Acceleration, 'f', 6, 64),
				strconv.FormatFloat(result.Controls[i].Steering, 'f', 6, 64))
		} else {
			row = append(row, "0", "0")
		}

		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadPoses reads back the pose trace and step times of a stored run.
func (s *Store) LoadPoses(runID string) ([]vehicle.Pose, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "poses.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []vehicle.Pose{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	poses := make([]vehicle.Pose, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 5 {
			continue
		}

		vals := make([]float64, 5)
		ok := true
		for j := 0; j < 5; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		times = append(times, vals[0])
		poses = append(poses, vehicle.Pose{X: vals[1], Y: vals[2], Yaw: vals[3], Velocity: vals[4]})
	}

	return poses, times, nil
}

// PosesPath returns the on-disk location of a run's CSV trace.
func (s *Store) PosesPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "poses.csv")
}
