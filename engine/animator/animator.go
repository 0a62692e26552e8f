package animator

import (
	"math"
	"sync"
)

// Defaults match the reference track layout: a slow cart with speed adjustable
// between a full stop and 0.3 loop fractions per second.
const (
	defaultSpeed     = 0.05
	defaultMinSpeed  = 0.0
	defaultMaxSpeed  = 0.3
	defaultSpeedStep = 0.015
)

// animatorImpl is the single implementation of Animator.
type animatorImpl struct {
	mu *sync.Mutex

	t      float32
	speed  float32
	paused bool

	minSpeed  float32
	maxSpeed  float32
	speedStep float32
}

// Animator is the animation clock: it owns the path parameter t in [0,1) and
// advances it by speed × elapsed time each tick, wrapping around the loop.
// Speed is clamped to configured bounds; pausing freezes t exactly. The clock
// assumes dt has already been sanitized upstream (the engine clamps stalls),
// so a tick never replays missed frames.
type Animator interface {
	// Tick advances the path parameter by speed * dt, wrapping into [0,1).
	// No-op while paused.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous tick, already clamped
	Tick(dt float32)

	// T returns the current path parameter in [0,1).
	//
	// Returns:
	//   - float32: the path parameter
	T() float32

	// SetT sets the path parameter directly, wrapped into [0,1).
	//
	// Parameters:
	//   - t: the new path parameter
	SetT(t float32)

	// Speed returns the current speed in loop fractions per second.
	//
	// Returns:
	//   - float32: the current speed
	Speed() float32

	// SetSpeed sets the speed directly, clamped to the configured bounds.
	//
	// Parameters:
	//   - speed: the new speed
	SetSpeed(speed float32)

	// IncreaseSpeed raises the speed by one step, clamped to the maximum.
	IncreaseSpeed()

	// DecreaseSpeed lowers the speed by one step, clamped to the minimum.
	DecreaseSpeed()

	// SpeedBounds returns the configured speed clamp range.
	//
	// Returns:
	//   - min, max: the inclusive speed bounds
	SpeedBounds() (min, max float32)

	// Paused reports whether the clock is paused.
	//
	// Returns:
	//   - bool: true while paused
	Paused() bool

	// Pause freezes the clock; subsequent ticks leave t unchanged.
	Pause()

	// Resume unfreezes the clock.
	Resume()

	// TogglePause flips the pause state.
	TogglePause()
}

var _ Animator = &animatorImpl{}

// NewAnimator creates an animation clock with the reference defaults.
//
// Parameters:
//   - options: functional options to configure the clock
//
// Returns:
//   - Animator: the newly created clock
func NewAnimator(options ...AnimatorBuilderOption) Animator {
	a := &animatorImpl{
		mu:        &sync.Mutex{},
		speed:     defaultSpeed,
		minSpeed:  defaultMinSpeed,
		maxSpeed:  defaultMaxSpeed,
		speedStep: defaultSpeedStep,
	}
	for _, option := range options {
		option(a)
	}
	a.speed = clamp(a.speed, a.minSpeed, a.maxSpeed)
	return a
}

// wrapUnit maps t into [0,1), matching Python-style modulo for negative input.
func wrapUnit(t float32) float32 {
	w := float32(math.Mod(float64(t), 1.0))
	if w < 0 {
		w += 1
	}
	return w
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (a *animatorImpl) Tick(dt float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.paused {
		return
	}
	a.t = wrapUnit(a.t + a.speed*dt)
}

func (a *animatorImpl) T() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.t
}

func (a *animatorImpl) SetT(t float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.t = wrapUnit(t)
}

func (a *animatorImpl) Speed() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.speed
}

func (a *animatorImpl) SetSpeed(speed float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.speed = clamp(speed, a.minSpeed, a.maxSpeed)
}

func (a *animatorImpl) IncreaseSpeed() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.speed = clamp(a.speed+a.speedStep, a.minSpeed, a.maxSpeed)
}

func (a *animatorImpl) DecreaseSpeed() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.speed = clamp(a.speed-a.speedStep, a.minSpeed, a.maxSpeed)
}

func (a *animatorImpl) SpeedBounds() (min, max float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.minSpeed, a.maxSpeed
}

func (a *animatorImpl) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

func (a *animatorImpl) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.paused = true
}

func (a *animatorImpl) Resume() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.paused = false
}

func (a *animatorImpl) TogglePause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.paused = !a.paused
}
