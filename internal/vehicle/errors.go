package vehicle

import "errors"

// Configuration errors surface once at construction; ErrSteerSingular is the
// only per-call error and is recoverable by lowering the steering command.
var (
	// ErrWheelbase indicates a non-positive or non-finite wheelbase.
	ErrWheelbase = errors.New("vehicle: wheelbase must be positive")

	// ErrTimestep indicates a non-positive or non-finite timestep.
	ErrTimestep = errors.New("vehicle: timestep must be positive")

	// ErrSteerLimit indicates a steering clamp outside [0, pi/2).
	ErrSteerLimit = errors.New("vehicle: max steering angle must be in [0, pi/2)")

	// ErrSteerSingular indicates a steering angle at the tangent singularity.
	ErrSteerSingular = errors.New("vehicle: steering angle too close to pi/2")
)
