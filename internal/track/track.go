// Package track generates reference paths for the vehicle to follow:
// parametric circle and ellipse tracks, cubic-spline resampling to a fixed
// arc-length step, and CSV persistence of waypoint lists.
package track

import "math"

// Circle returns n points evenly spaced around a circle of the given radius,
// centred at the origin. The first and last points coincide, closing the loop.
func Circle(radius float64, n int) [][2]float64 {
	points := make([][2]float64, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n-1)
		points[i] = [2]float64{radius * math.Cos(angle), radius * math.Sin(angle)}
	}
	return points
}

// Ellipse returns n points around an ellipse with the given semi-axes.
func Ellipse(semiMinor, semiMajor float64, n int) [][2]float64 {
	points := make([][2]float64, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n-1)
		points[i] = [2]float64{semiMinor * math.Cos(angle), semiMajor * math.Sin(angle)}
	}
	return points
}
