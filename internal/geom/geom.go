// Package geom computes the vehicle's body and wheel outlines for rendering.
// All polygons are built once in the rear-axle frame; At transforms them to
// world coordinates for a given pose and steering angle.
package geom

import (
	"math"

	"github.com/san-kum/velosim/internal/vehicle"
)

// Point is a planar position in metres.
type Point struct {
	X, Y float64
}

// CarParams hold the body dimensions used for drawing.
// Defaults follow a Tesla Model S 100D.
type CarParams struct {
	Length       float64
	Width        float64
	TireDiameter float64
	TireWidth    float64
	AxleTrack    float64
	Wheelbase    float64
	MaxSteer     float64
}

func DefaultCarParams() CarParams {
	return CarParams{
		Length:       4.97,
		Width:        1.964,
		TireDiameter: 0.4826,
		TireWidth:    0.265,
		AxleTrack:    1.7,
		Wheelbase:    2.96,
		MaxSteer:     33 * math.Pi / 180,
	}
}

// RearOverhang is the distance from the rear axle to the rear bumper.
func (p CarParams) RearOverhang() float64 {
	return 0.5 * (p.Length - p.Wheelbase)
}

// Outline holds the world-frame polygons for one rendered frame. Each
// polygon is closed: its first and last points coincide.
type Outline struct {
	Body       []Point
	FrontLeft  []Point
	FrontRight []Point
	RearLeft   []Point
	RearRight  []Point
}

// Description precomputes the rear-axle-frame polygons of a car.
type Description struct {
	body       []Point
	rearLeft   []Point
	rearRight  []Point
	frontLeft  []Point // relative to the front-left wheel centre
	frontRight []Point // relative to the front-right wheel centre
	flCentre   Point
	frCentre   Point
}

// NewDescription builds the body rectangle and the four wheel rectangles.
// Everything is referenced to the rear axle, matching the model.
func NewDescription(p CarParams) *Description {
	rearAxleToFrontBumper := p.Length - p.RearOverhang()
	halfTrack := 0.5 * p.AxleTrack
	halfWidth := 0.5 * p.Width

	body := closed([]Point{
		{-p.RearOverhang(), halfWidth},
		{rearAxleToFrontBumper, halfWidth},
		{rearAxleToFrontBumper, -halfWidth},
		{-p.RearOverhang(), -halfWidth},
	})

	halfTire := 0.5 * p.TireWidth
	inner := halfTrack - halfTire
	outer := halfTrack + halfTire

	rearRight := closed([]Point{
		{-p.TireDiameter, -inner},
		{p.TireDiameter, -inner},
		{p.TireDiameter, -outer},
		{-p.TireDiameter, -outer},
	})
	rearLeft := mirrorY(rearRight)

	frCentre := Point{p.Wheelbase, -halfTrack}
	flCentre := Point{p.Wheelbase, halfTrack}

	// Front wheels are stored centred on the origin so they can spin about
	// their own axis before translation.
	frontRight := make([]Point, len(rearRight))
	frontLeft := make([]Point, len(rearLeft))
	for i := range rearRight {
		frontRight[i] = Point{rearRight[i].X, rearRight[i].Y + halfTrack}
		frontLeft[i] = Point{rearLeft[i].X, rearLeft[i].Y - halfTrack}
	}

	return &Description{
		body:       body,
		rearLeft:   rearLeft,
		rearRight:  rearRight,
		frontLeft:  frontLeft,
		frontRight: frontRight,
		flCentre:   flCentre,
		frCentre:   frCentre,
	}
}

// At returns the outline transformed to world coordinates for the pose, with
// the front wheels turned by steer radians.
func (d *Description) At(pose vehicle.Pose, steer float64) Outline {
	fl := make([]Point, len(d.frontLeft))
	fr := make([]Point, len(d.frontRight))
	for i := range d.frontLeft {
		fl[i] = translate(rotate(d.frontLeft[i], steer), d.flCentre)
		fr[i] = translate(rotate(d.frontRight[i], steer), d.frCentre)
	}

	origin := Point{pose.X, pose.Y}
	return Outline{
		Body:       transform(d.body, pose.Yaw, origin),
		FrontLeft:  transform(fl, pose.Yaw, origin),
		FrontRight: transform(fr, pose.Yaw, origin),
		RearLeft:   transform(d.rearLeft, pose.Yaw, origin),
		RearRight:  transform(d.rearRight, pose.Yaw, origin),
	}
}

func rotate(p Point, angle float64) Point {
	c, s := math.Cos(angle), math.Sin(angle)
	return Point{p.X*c - p.Y*s, p.X*s + p.Y*c}
}

func translate(p, by Point) Point {
	return Point{p.X + by.X, p.Y + by.Y}
}

func transform(poly []Point, yaw float64, origin Point) []Point {
	out := make([]Point, len(poly))
	for i, p := range poly {
		out[i] = translate(rotate(p, yaw), origin)
	}
	return out
}

func closed(poly []Point) []Point {
	return append(poly, poly[0])
}

func mirrorY(poly []Point) []Point {
	out := make([]Point, len(poly))
	for i, p := range poly {
		out[i] = Point{p.X, -p.Y}
	}
	return out
}
