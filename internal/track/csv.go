package track

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV stores waypoints as a two-column CSV file with a header row.
func WriteCSV(path string, points [][2]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p[0], 'f', 6, 64),
			strconv.FormatFloat(p[1], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// ReadCSV loads waypoints written by WriteCSV.
func ReadCSV(path string) ([][2]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("track: %s contains no waypoints", path)
	}

	points := make([][2]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < 2 {
			return nil, fmt.Errorf("track: %s row %d: expected 2 columns, got %d", path, i+2, len(record))
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("track: %s row %d: %w", path, i+2, err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("track: %s row %d: %w", path, i+2, err)
		}
		points = append(points, [2]float64{x, y})
	}
	return points, nil
}
