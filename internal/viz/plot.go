// Package viz renders trajectories and live simulations in the terminal
// using a braille canvas, asciigraph profiles and a bubbletea view.
package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/velosim/internal/vehicle"
)

const (
	plotWidth  = 80
	plotHeight = 24
)

// TrajectoryPlot renders the x-y trace of a run on a braille canvas.
func TrajectoryPlot(poses []vehicle.Pose) string {
	if len(poses) == 0 {
		return "(empty run)"
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range poses {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad degenerate extents so a straight line still renders.
	if maxX-minX < 1 {
		minX, maxX = minX-1, maxX+1
	}
	if maxY-minY < 1 {
		minY, maxY = minY-1, maxY+1
	}
	padX := 0.05 * (maxX - minX)
	padY := 0.05 * (maxY - minY)

	canvas := NewCanvas(plotWidth, plotHeight)
	vp := NewViewport(canvas, minX-padX, maxX+padX, minY-padY, maxY+padY)
	for i := 1; i < len(poses); i++ {
		vp.Line(poses[i-1].X, poses[i-1].Y, poses[i].X, poses[i].Y)
	}

	var b strings.Builder
	b.WriteString(canvas.String())
	b.WriteString(fmt.Sprintf("x: [%.1f, %.1f]  y: [%.1f, %.1f]\n", minX, maxX, minY, maxY))
	return b.String()
}

// VelocityProfile renders velocity over time as an asciigraph line chart.
func VelocityProfile(poses []vehicle.Pose) string {
	if len(poses) == 0 {
		return "(empty run)"
	}

	data := make([]float64, len(poses))
	for i, p := range poses {
		data[i] = p.Velocity
	}

	return graphStyle.Render(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(plotWidth-10),
		asciigraph.Caption("velocity (m/s)")))
}

// YawProfile renders heading over time as an asciigraph line chart.
func YawProfile(poses []vehicle.Pose) string {
	if len(poses) == 0 {
		return "(empty run)"
	}

	data := make([]float64, len(poses))
	for i, p := range poses {
		data[i] = p.Yaw
	}

	return graphStyle.Render(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(plotWidth-10),
		asciigraph.Caption("yaw (rad)")))
}
