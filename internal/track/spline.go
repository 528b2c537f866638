package track

import (
	"errors"
	"fmt"
	"math"
)

// ErrDuplicatePoint indicates consecutive identical waypoints, which leave
// the spline parameterization degenerate.
var ErrDuplicatePoint = errors.New("track: consecutive duplicate waypoints")

// Path is a reference path sampled at a fixed arc-length step.
type Path struct {
	X         []float64
	Y         []float64
	Yaw       []float64 // tangent heading, (-pi, pi]
	Curvature []float64
	S         []float64 // arc length at each sample
}

// Len returns the number of samples.
func (p *Path) Len() int { return len(p.X) }

// Waypoints returns the sampled positions as point pairs.
func (p *Path) Waypoints() [][2]float64 {
	pts := make([][2]float64, len(p.X))
	for i := range p.X {
		pts[i] = [2]float64{p.X[i], p.Y[i]}
	}
	return pts
}

// Resample fits natural cubic splines through the waypoints, parameterized by
// cumulative chord length, and samples position, heading and curvature every
// ds metres.
func Resample(points [][2]float64, ds float64) (*Path, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("track: need at least 3 waypoints, got %d", len(points))
	}
	if ds <= 0 {
		return nil, fmt.Errorf("track: sample step must be positive, got %g", ds)
	}

	dist := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		seg := math.Hypot(points[i][0]-points[i-1][0], points[i][1]-points[i-1][1])
		if seg == 0 {
			return nil, fmt.Errorf("%w at index %d", ErrDuplicatePoint, i)
		}
		dist[i] = dist[i-1] + seg
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p[0]
		ys[i] = p[1]
	}

	sx := newSpline(dist, xs)
	sy := newSpline(dist, ys)

	n := int(dist[len(dist)-1] / ds)
	path := &Path{
		X:         make([]float64, 0, n),
		Y:         make([]float64, 0, n),
		Yaw:       make([]float64, 0, n),
		Curvature: make([]float64, 0, n),
		S:         make([]float64, 0, n),
	}

	for s := 0.0; s < dist[len(dist)-1]; s += ds {
		x, dx, ddx := sx.eval(s)
		y, dy, ddy := sy.eval(s)

		path.X = append(path.X, x)
		path.Y = append(path.Y, y)
		path.Yaw = append(path.Yaw, math.Atan2(dy, dx))
		path.Curvature = append(path.Curvature, (ddy*dx-ddx*dy)/math.Pow(dx*dx+dy*dy, 1.5))
		path.S = append(path.S, s)
	}

	return path, nil
}

// spline is a 1D natural cubic spline: second derivatives vanish at both
// endpoints.
type spline struct {
	t []float64 // knots, strictly increasing
	y []float64
	m []float64 // second derivatives at knots
}

func newSpline(t, y []float64) *spline {
	n := len(t)
	m := make([]float64, n)
	if n < 3 {
		return &spline{t: t, y: y, m: m}
	}

	// Thomas algorithm on the interior tridiagonal system.
	diag := make([]float64, n)
	rhs := make([]float64, n)
	for i := 1; i < n-1; i++ {
		h0 := t[i] - t[i-1]
		h1 := t[i+1] - t[i]
		diag[i] = 2 * (h0 + h1)
		rhs[i] = 6 * ((y[i+1]-y[i])/h1 - (y[i]-y[i-1])/h0)
	}

	for i := 2; i < n-1; i++ {
		h := t[i] - t[i-1]
		w := h / diag[i-1]
		diag[i] -= w * h
		rhs[i] -= w * rhs[i-1]
	}

	for i := n - 2; i >= 1; i-- {
		h := t[i+1] - t[i]
		m[i] = (rhs[i] - h*m[i+1]) / diag[i]
	}

	return &spline{t: t, y: y, m: m}
}

// eval returns the value and first two derivatives at s, clamped to the
// spline's domain.
func (sp *spline) eval(s float64) (val, d1, d2 float64) {
	n := len(sp.t)
	if s <= sp.t[0] {
		s = sp.t[0]
	}
	if s >= sp.t[n-1] {
		s = sp.t[n-1]
	}

	// Binary search for the segment containing s.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if sp.t[mid] <= s {
			lo = mid
		} else {
			hi = mid
		}
	}

	h := sp.t[hi] - sp.t[lo]
	a := sp.t[hi] - s
	b := s - sp.t[lo]

	val = sp.m[lo]*a*a*a/(6*h) + sp.m[hi]*b*b*b/(6*h) +
		(sp.y[lo]/h-sp.m[lo]*h/6)*a + (sp.y[hi]/h-sp.m[hi]*h/6)*b
	d1 = -sp.m[lo]*a*a/(2*h) + sp.m[hi]*b*b/(2*h) +
		(sp.y[hi]-sp.y[lo])/h - (sp.m[hi]-sp.m[lo])*h/6
	d2 = (sp.m[lo]*a + sp.m[hi]*b) / h
	return val, d1, d2
}
