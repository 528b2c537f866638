package viz

import (
	"strings"

	"github.com/san-kum/velosim/internal/geom"
	"github.com/san-kum/velosim/internal/vehicle"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights a pixel at (x, y) in sub-pixel coordinates. The canvas size in
// sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Viewport maps world coordinates (metres, y up) onto canvas sub-pixels
// (y down). Aspect ratio is not preserved; callers pick matching bounds.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
	canvas     *Canvas
}

func NewViewport(c *Canvas, minX, maxX, minY, maxY float64) *Viewport {
	return &Viewport{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY, canvas: c}
}

func (v *Viewport) pixel(x, y float64) (int, int) {
	px := (x - v.MinX) / (v.MaxX - v.MinX) * float64(v.canvas.Width*2-1)
	py := (v.MaxY - y) / (v.MaxY - v.MinY) * float64(v.canvas.Height*4-1)
	return int(px + 0.5), int(py + 0.5)
}

// Plot lights the pixel nearest a world coordinate.
func (v *Viewport) Plot(x, y float64) {
	v.canvas.Set(v.pixel(x, y))
}

// Line draws a world-coordinate segment.
func (v *Viewport) Line(x0, y0, x1, y1 float64) {
	px0, py0 := v.pixel(x0, y0)
	px1, py1 := v.pixel(x1, y1)
	v.canvas.DrawLine(px0, py0, px1, py1)
}

// Polygon draws the edges of a polygon given as an already-closed point list.
func (v *Viewport) Polygon(poly []geom.Point) {
	for i := 1; i < len(poly); i++ {
		v.Line(poly[i-1].X, poly[i-1].Y, poly[i].X, poly[i].Y)
	}
}

// Trail plots a sequence of poses.
func (v *Viewport) Trail(poses []vehicle.Pose) {
	for _, p := range poses {
		v.Plot(p.X, p.Y)
	}
}

// Car draws the full vehicle outline at a pose.
func (v *Viewport) Car(out geom.Outline) {
	v.Polygon(out.Body)
	v.Polygon(out.FrontLeft)
	v.Polygon(out.FrontRight)
	v.Polygon(out.RearLeft)
	v.Polygon(out.RearRight)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
