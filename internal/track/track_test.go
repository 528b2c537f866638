package track

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestCircleGeometry(t *testing.T) {
	points := Circle(50, 100)

	if len(points) != 100 {
		t.Fatalf("points = %d, want 100", len(points))
	}
	for i, p := range points {
		r := math.Hypot(p[0], p[1])
		if math.Abs(r-50) > 1e-9 {
			t.Errorf("point %d at radius %v, want 50", i, r)
		}
	}

	first, last := points[0], points[len(points)-1]
	if math.Abs(first[0]-last[0]) > 1e-9 || math.Abs(first[1]-last[1]) > 1e-9 {
		t.Errorf("track not closed: %v vs %v", first, last)
	}
}

func TestEllipseGeometry(t *testing.T) {
	points := Ellipse(60, 30, 100)

	for i, p := range points {
		v := (p[0]/60)*(p[0]/60) + (p[1]/30)*(p[1]/30)
		if math.Abs(v-1) > 1e-9 {
			t.Errorf("point %d off the ellipse: %v", i, v)
		}
	}
}

func TestResampleCircleCurvature(t *testing.T) {
	points := Circle(50, 200)

	path, err := Resample(points, 0.5)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if path.Len() == 0 {
		t.Fatal("empty path")
	}

	// Skip the open ends where the natural boundary condition distorts
	// curvature.
	for i := 20; i < path.Len()-20; i++ {
		k := math.Abs(path.Curvature[i])
		if math.Abs(k-0.02) > 1e-3 {
			t.Errorf("sample %d: |curvature| = %v, want 0.02", i, k)
		}
	}
}

func TestResampleYawFollowsTangent(t *testing.T) {
	points := Circle(50, 200)

	path, err := Resample(points, 0.5)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	// On a CCW circle the heading leads the position angle by pi/2.
	for i := 20; i < path.Len()-20; i++ {
		positionAngle := math.Atan2(path.Y[i], path.X[i])
		want := math.Atan2(math.Sin(positionAngle+math.Pi/2), math.Cos(positionAngle+math.Pi/2))
		diff := math.Atan2(math.Sin(path.Yaw[i]-want), math.Cos(path.Yaw[i]-want))
		if math.Abs(diff) > 1e-2 {
			t.Errorf("sample %d: yaw = %v, want %v", i, path.Yaw[i], want)
		}
	}
}

func TestResampleArcLengthSpacing(t *testing.T) {
	points := Circle(50, 200)

	path, err := Resample(points, 0.5)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	for i := 1; i < path.Len(); i++ {
		if math.Abs(path.S[i]-path.S[i-1]-0.5) > 1e-9 {
			t.Errorf("sample %d: arc step %v, want 0.5", i, path.S[i]-path.S[i-1])
		}
	}
}

func TestResampleRejectsDuplicates(t *testing.T) {
	points := [][2]float64{{0, 0}, {1, 1}, {1, 1}, {2, 0}}

	if _, err := Resample(points, 0.1); !errors.Is(err, ErrDuplicatePoint) {
		t.Errorf("err = %v, want ErrDuplicatePoint", err)
	}
}

func TestResampleRejectsTooFewPoints(t *testing.T) {
	if _, err := Resample([][2]float64{{0, 0}, {1, 1}}, 0.1); err == nil {
		t.Error("expected error for 2 waypoints")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "circle.csv")
	points := Circle(10, 25)

	if err := WriteCSV(file, points); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	got, err := ReadCSV(file)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(got) != len(points) {
		t.Fatalf("read %d points, want %d", len(got), len(points))
	}
	for i := range points {
		if math.Abs(got[i][0]-points[i][0]) > 1e-5 || math.Abs(got[i][1]-points[i][1]) > 1e-5 {
			t.Errorf("point %d: %v vs %v", i, got[i], points[i])
		}
	}
}
