// Package vehicle implements the kinematic bicycle model: a planar vehicle
// reduced to a single rigid rod between rear and front axle with a steerable
// front wheel, referenced at the rear axle.
//
// The model is a pure transformation. [Model.Step] maps the current [Pose]
// and a control pair (acceleration, steering angle) to the next pose using
// forward Euler integration over a fixed timestep:
//
//	m, _ := vehicle.New(vehicle.Params{Wheelbase: 2.96, MaxSteer: 0.576, Dt: 0.05})
//	next, err := m.Step(pose, accel, steer)
//
// The model keeps no state between calls and is safe for concurrent use.
// Tire forces, slip and load transfer are outside its scope.
package vehicle
