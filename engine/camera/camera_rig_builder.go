package camera

import "github.com/vamsipaul1/Python-Project-Rollercoaster/common"

// CameraRigBuilderOption is a functional option for configuring a CameraRig.
type CameraRigBuilderOption func(*cameraRigImpl)

// WithMode sets the initial camera behavior.
//
// Parameters:
//   - mode: the behavior to start in
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the mode
func WithMode(mode Mode) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.mode = mode
	}
}

// WithSmoothing selects the smoothing strategy.
//
// Parameters:
//   - s: the strategy to use
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the strategy
func WithSmoothing(s SmoothingStrategy) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.smoothing = s
	}
}

// WithSmoothConst sets the smoothing time constant. Lower values lag more.
//
// Parameters:
//   - c: the smoothing constant in seconds
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the constant
func WithSmoothConst(c float32) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.smoothConst = c
	}
}

// WithTransitionDuration sets how long the eased strategy takes to ramp into a
// new mode after a switch.
//
// Parameters:
//   - d: the transition duration in seconds
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the duration
func WithTransitionDuration(d float32) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.transitionDuration = d
	}
}

// WithChaseOffsets sets the chase-mode geometry.
//
// Parameters:
//   - distance: how far behind the cart the eye sits
//   - height: how far above the cart the eye sits
//   - lookahead: how far ahead of the cart the look target sits
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the chase offsets
func WithChaseOffsets(distance, height, lookahead float32) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.followDistance = distance
		r.followHeight = height
		r.lookahead = lookahead
	}
}

// WithCockpitOffsets sets the cockpit-mode geometry.
//
// Parameters:
//   - eyeHeight: driver eye height above the cart position
//   - lookDistance: how far ahead the driver looks
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the cockpit offsets
func WithCockpitOffsets(eyeHeight, lookDistance float32) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.eyeHeight = eyeHeight
		r.lookDistance = lookDistance
	}
}

// WithCinematicPath sets the cinematic-mode circle.
//
// Parameters:
//   - radius: horizontal distance from the cart
//   - height: base height above the cart
//   - speed: angular speed in radians per second
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the cinematic path
func WithCinematicPath(radius, height, speed float32) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.cinematicRadius = radius
		r.cinematicHeight = height
		r.cinematicSpeed = speed
	}
}

// WithOrbitPath sets the orbit-mode circle.
//
// Parameters:
//   - radius: horizontal distance from the cart
//   - height: height above the cart
//   - speed: angular speed in radians per second
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the orbit path
func WithOrbitPath(radius, height, speed float32) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.orbitRadius = radius
		r.orbitHeight = height
		r.orbitSpeed = speed
	}
}

// WithFlybyPath sets the flyby-mode arc.
//
// Parameters:
//   - radius: horizontal distance from the cart
//   - height: base height above the cart
//   - speed: angular speed in radians per second
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the flyby path
func WithFlybyPath(radius, height, speed float32) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.flybyRadius = radius
		r.flybyHeight = height
		r.flybySpeed = speed
	}
}

// WithInitialView sets the starting camera state the smoothing blends from.
//
// Parameters:
//   - eye: initial camera position
//   - target: initial look-at point
//   - up: initial up vector (normalized internally)
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the initial view
func WithInitialView(eye, target, up common.Vec3) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.position = eye
		r.target = target
		r.up = up.Normalize()
	}
}

// WithFreePosition sets the starting free-fly eye position.
//
// Parameters:
//   - pos: the free-fly position
//
// Returns:
//   - CameraRigBuilderOption: functional option to set the free-fly position
func WithFreePosition(pos common.Vec3) CameraRigBuilderOption {
	return func(r *cameraRigImpl) {
		r.freePosition = pos
	}
}
