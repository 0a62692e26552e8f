package animator

// AnimatorBuilderOption is a functional option for configuring an Animator.
type AnimatorBuilderOption func(*animatorImpl)

// WithSpeed sets the initial speed in loop fractions per second.
// The value is clamped to the speed bounds after all options apply.
//
// Parameters:
//   - speed: the initial speed
//
// Returns:
//   - AnimatorBuilderOption: functional option to set the speed
func WithSpeed(speed float32) AnimatorBuilderOption {
	return func(a *animatorImpl) {
		a.speed = speed
	}
}

// WithSpeedBounds sets the inclusive clamp range for speed adjustments.
//
// Parameters:
//   - min: the minimum speed
//   - max: the maximum speed
//
// Returns:
//   - AnimatorBuilderOption: functional option to set the bounds
func WithSpeedBounds(min, max float32) AnimatorBuilderOption {
	return func(a *animatorImpl) {
		a.minSpeed = min
		a.maxSpeed = max
	}
}

// WithSpeedStep sets the increment used by IncreaseSpeed and DecreaseSpeed.
//
// Parameters:
//   - step: the speed adjustment per call
//
// Returns:
//   - AnimatorBuilderOption: functional option to set the step
func WithSpeedStep(step float32) AnimatorBuilderOption {
	return func(a *animatorImpl) {
		a.speedStep = step
	}
}

// WithPaused sets the initial pause state.
//
// Parameters:
//   - paused: true to start frozen
//
// Returns:
//   - AnimatorBuilderOption: functional option to set the pause state
func WithPaused(paused bool) AnimatorBuilderOption {
	return func(a *animatorImpl) {
		a.paused = paused
	}
}
