package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/velosim/internal/config"
	"github.com/san-kum/velosim/internal/control"
	"github.com/san-kum/velosim/internal/geom"
	"github.com/san-kum/velosim/internal/integrators"
	"github.com/san-kum/velosim/internal/metrics"
	"github.com/san-kum/velosim/internal/sim"
	"github.com/san-kum/velosim/internal/storage"
	"github.com/san-kum/velosim/internal/track"
	"github.com/san-kum/velosim/internal/vehicle"
	"github.com/san-kum/velosim/internal/viz"
)

var (
	dataDir    string
	configFile string

	wheelbase float64
	maxSteer  float64
	dt        float64
	duration  float64

	initX        float64
	initY        float64
	initYaw      float64
	initVelocity float64

	controllerName string
	kp             float64
	ki             float64
	kd             float64
	target         float64

	trackFile string
	radius    float64
	semiMinor float64
	semiMajor float64
	numPoints int
	outFile   string

	frameRate int
	steer     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "velosim",
		Short: "kinematic bicycle vehicle simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".velosim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and store the result",
		RunE:  runSimulation,
	}
	addModelFlags(runCmd)
	addControllerFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation with live visualization",
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	addControllerFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored run's pose trace to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare euler and rk4 on a constant-steer circle",
		RunE:  compareIntegrators,
	}
	addModelFlags(compareCmd)
	compareCmd.Flags().Float64Var(&steer, "steer", 0.3, "constant steering angle")

	trackCmd := &cobra.Command{
		Use:   "track [circle|ellipse]",
		Short: "generate a track CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  generateTrack,
	}
	trackCmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "circle radius")
	trackCmd.Flags().Float64Var(&semiMinor, "semi-minor", 60, "ellipse semi-minor axis")
	trackCmd.Flags().Float64Var(&semiMajor, "semi-major", 30, "ellipse semi-major axis")
	trackCmd.Flags().IntVar(&numPoints, "points", config.DefaultPoints, "number of points")
	trackCmd.Flags().StringVar(&outFile, "out", "track.csv", "output file")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, compareCmd, trackCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&wheelbase, "wheelbase", config.DefaultWheelbase, "axle distance (m)")
	cmd.Flags().Float64Var(&maxSteer, "max-steer", config.DefaultMaxSteer, "steering clamp (rad)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
	cmd.Flags().Float64Var(&initX, "x", 0, "initial x")
	cmd.Flags().Float64Var(&initY, "y", 0, "initial y")
	cmd.Flags().Float64Var(&initYaw, "yaw", 0, "initial yaw")
	cmd.Flags().Float64Var(&initVelocity, "velocity", config.DefaultVelocity, "initial velocity")
}

func addControllerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&controllerName, "controller", "none", "controller (none|cruise|tracker)")
	cmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "cruise kp")
	cmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "cruise ki")
	cmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "cruise kd")
	cmd.Flags().Float64Var(&target, "target", config.DefaultVelocity, "cruise target velocity")
	cmd.Flags().StringVar(&trackFile, "track", "", "track CSV for the tracker controller")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "generated track radius (tracker)")
	cmd.Flags().IntVar(&numPoints, "points", config.DefaultPoints, "generated track points (tracker)")
}

func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}

	cfg := config.DefaultConfig()
	cfg.Wheelbase = wheelbase
	cfg.MaxSteer = maxSteer
	cfg.Dt = dt
	cfg.Duration = duration
	cfg.Controller = controllerName
	cfg.InitPose = config.PoseConfig{X: initX, Y: initY, Yaw: initYaw, Velocity: initVelocity}
	cfg.Cruise = config.CruiseConfig{Kp: kp, Ki: ki, Kd: kd, Target: target}
	cfg.Track = config.TrackConfig{File: trackFile, Radius: radius, Points: numPoints}
	return cfg, nil
}

func buildController(cfg *config.Config) (sim.Controller, [][2]float64, error) {
	switch cfg.Controller {
	case "none", "":
		return control.NewNone(), nil, nil

	case "cruise":
		return control.NewCruise(cfg.Cruise.Kp, cfg.Cruise.Ki, cfg.Cruise.Kd, cfg.Cruise.Target), nil, nil

	case "tracker":
		var points [][2]float64
		var err error
		if cfg.Track.File != "" {
			points, err = track.ReadCSV(cfg.Track.File)
			if err != nil {
				return nil, nil, err
			}
		} else {
			points = track.Circle(cfg.Track.Radius, cfg.Track.Points)
		}

		path, err := track.Resample(points, 1.0)
		if err != nil {
			return nil, nil, err
		}
		waypoints := path.Waypoints()
		return control.NewTracker(waypoints, cfg.Cruise.Target), waypoints, nil
	}

	return nil, nil, fmt.Errorf("unknown controller: %s", cfg.Controller)
}

func vehicleModel(cfg *config.Config) (*vehicle.Model, error) {
	return vehicle.New(cfg.ModelParams())
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	model, err := vehicleModel(cfg)
	if err != nil {
		return err
	}

	controller, _, err := buildController(cfg)
	if err != nil {
		return err
	}

	simulator := sim.New(model, controller)
	simulator.AddMetric(metrics.NewDistance())
	simulator.AddMetric(metrics.NewSteerEffort())
	simulator.AddMetric(metrics.NewPeakLateralAccel(cfg.Wheelbase))

	result, err := simulator.Run(context.Background(), cfg.StartPose(), sim.Config{
		Duration:     cfg.Duration,
		ValidatePose: true,
	})
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(model.Params(), cfg.Duration, cfg.Controller, result)
	if err != nil {
		return err
	}

	final := result.Poses[len(result.Poses)-1]
	fmt.Printf("run %s: %d steps\n", runID, result.StepsTaken)
	fmt.Printf("final pose: x=%.2f y=%.2f yaw=%.3f v=%.2f\n", final.X, final.Y, final.Yaw, final.Velocity)
	for name, value := range result.Metrics {
		fmt.Printf("  %s: %.4f\n", name, value)
	}
	for _, e := range result.Errors {
		fmt.Printf("  error: %v\n", e)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	model, err := vehicleModel(cfg)
	if err != nil {
		return err
	}

	controller, waypoints, err := buildController(cfg)
	if err != nil {
		return err
	}

	car := geom.DefaultCarParams()
	car.Wheelbase = cfg.Wheelbase
	car.MaxSteer = cfg.MaxSteer

	live := viz.NewLive(model, controller, car, cfg.StartPose(), frameRate)
	if waypoints != nil {
		live.SetTrack(waypoints)
	}
	return viz.Run(live)
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)

	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCONTROLLER\tWHEELBASE\tDT\tDURATION")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.3f\t%.1f\n",
			run.ID, run.Controller, run.Wheelbase, run.Dt, run.Duration)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)

	poses, _, err := store.LoadPoses(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.TrajectoryPlot(poses))
	fmt.Println(viz.VelocityProfile(poses))
	fmt.Println()
	fmt.Println(viz.YawProfile(poses))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)

	file, err := os.Open(store.PosesPath(args[0]))
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(os.Stdout, file)
	return err
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if steer >= math.Pi/2 {
		return fmt.Errorf("steer must be below pi/2, got %g", steer)
	}

	// Constant steer at constant speed traces a circle with a closed form,
	// which exposes each scheme's drift.
	v := cfg.InitPose.Velocity
	r := cfg.Wheelbase / math.Tan(steer)
	omega := v / r
	steps := int(cfg.Duration / cfg.Dt)
	tEnd := float64(steps) * cfg.Dt
	wantX := r * math.Sin(omega*tEnd)
	wantY := r * (1 - math.Cos(omega*tEnd))

	sys := integrators.Bicycle{Wheelbase: cfg.Wheelbase}
	u := integrators.Control{0, steer}

	schemes := []struct {
		name  string
		integ integrators.Integrator
	}{
		{"euler", integrators.NewEuler()},
		{"rk4", integrators.NewRK4()},
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tFINAL X\tFINAL Y\tPOSITION ERROR")
	for _, s := range schemes {
		x := integrators.State{0, 0, 0, v}
		for i := 0; i < steps; i++ {
			x = s.integ.Step(sys, x, u, float64(i)*cfg.Dt, cfg.Dt)
		}
		errDist := math.Hypot(x[0]-wantX, x[1]-wantY)
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.6f\n", s.name, x[0], x[1], errDist)
	}
	return w.Flush()
}

func generateTrack(cmd *cobra.Command, args []string) error {
	var points [][2]float64
	switch args[0] {
	case "circle":
		points = track.Circle(radius, numPoints)
	case "ellipse":
		points = track.Ellipse(semiMinor, semiMajor, numPoints)
	default:
		return fmt.Errorf("unknown track shape: %s", args[0])
	}

	if err := track.WriteCSV(outFile, points); err != nil {
		return err
	}
	fmt.Printf("wrote %d points to %s\n", len(points), outFile)
	return nil
}
