package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/velosim/internal/geom"
	"github.com/san-kum/velosim/internal/sim"
	"github.com/san-kum/velosim/internal/vehicle"
)

const (
	liveWidth     = 80
	liveHeight    = 24
	trailCapacity = 2000
)

type TickMsg time.Time

// Live is the bubbletea model for the interactive drive view. It advances
// the vehicle at a fixed frame rate and draws the car outline, its trail and
// an optional reference track.
type Live struct {
	model      *vehicle.Model
	controller sim.Controller
	desc       *geom.Description

	pose      vehicle.Pose
	startPose vehicle.Pose
	u         vehicle.Control
	t         float64

	trail     []vehicle.Pose
	track     [][2]float64
	running   bool
	frameRate int
	err       error
}

func NewLive(model *vehicle.Model, controller sim.Controller, car geom.CarParams, start vehicle.Pose, frameRate int) Live {
	return Live{
		model:      model,
		controller: controller,
		desc:       geom.NewDescription(car),
		pose:       start,
		startPose:  start,
		trail:      make([]vehicle.Pose, 0, trailCapacity),
		running:    true,
		frameRate:  frameRate,
	}
}

// SetTrack adds a reference track drawn behind the vehicle.
func (l *Live) SetTrack(points [][2]float64) {
	l.track = points
}

func (l Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(l.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (l Live) Init() tea.Cmd {
	return l.tick()
}

func (l Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return l, tea.Quit
		case " ":
			l.running = !l.running
		case "r":
			l.pose = l.startPose
			l.t = 0
			l.trail = l.trail[:0]
			l.err = nil
			l.running = true
		}
		return l, nil

	case TickMsg:
		if l.running && l.err == nil {
			// Several integration steps per frame keep sim time at real time.
			steps := int(1.0/(float64(l.frameRate)*l.model.Params().Dt) + 0.5)
			if steps < 1 {
				steps = 1
			}
			for i := 0; i < steps; i++ {
				l.u = l.controller.Compute(l.pose, l.t)
				next, err := l.model.Step(l.pose, l.u.Acceleration, l.u.Steering)
				if err != nil {
					l.err = err
					l.running = false
					break
				}
				l.pose = next
				l.t += l.model.Params().Dt
			}

			if len(l.trail) < trailCapacity {
				l.trail = append(l.trail, l.pose)
			}
		}
		return l, l.tick()
	}

	return l, nil
}

func (l Live) View() string {
	canvas := NewCanvas(liveWidth, liveHeight)

	// Camera window follows the vehicle, sized for the track if present.
	span := 30.0
	vp := NewViewport(canvas, l.pose.X-span, l.pose.X+span, l.pose.Y-span*0.45, l.pose.Y+span*0.45)

	for _, p := range l.track {
		vp.Plot(p[0], p[1])
	}
	vp.Trail(l.trail)
	vp.Car(l.desc.At(l.pose, l.u.Steering))

	stats := l.renderStats()
	view := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(canvas.String()), stats)
	help := helpStyle.Render("space pause · r reset · q quit")
	return view + "\n" + help
}

func (l Live) renderStats() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("velosim") + "\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("t", fmt.Sprintf("%.2f s", l.t))
	row("x", fmt.Sprintf("%.2f m", l.pose.X))
	row("y", fmt.Sprintf("%.2f m", l.pose.Y))
	row("yaw", fmt.Sprintf("%.3f rad", l.pose.Yaw))
	row("velocity", fmt.Sprintf("%.2f m/s", l.pose.Velocity))
	row("accel", fmt.Sprintf("%.2f m/s²", l.u.Acceleration))
	row("steer", fmt.Sprintf("%.3f rad", l.u.Steering))

	if !l.running {
		b.WriteString("\n" + headerStyle.Render("paused"))
	}
	if l.err != nil {
		b.WriteString("\n" + valueStyle.Render(l.err.Error()))
	}

	return statsStyle.Render(b.String())
}

// Run starts the live view and blocks until the user quits.
func Run(l Live) error {
	_, err := tea.NewProgram(l).Run()
	return err
}
