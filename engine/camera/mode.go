package camera

// Mode selects the camera rig's behavior. The set is closed; values outside it
// fall back to a fixed chase-like default view instead of failing, so a bad
// input signal can never interrupt the animation.
type Mode int

const (
	// ModeChase follows behind and above the cart, looking ahead of it.
	ModeChase Mode = iota

	// ModeCockpit rides inside the cart at driver eye height.
	ModeCockpit

	// ModeCinematic circles the cart on a bobbing orbit phased by the path
	// parameter, tracking just ahead of it.
	ModeCinematic

	// ModeOrbit circles the cart at a fixed radius and height, looking at it.
	ModeOrbit

	// ModeFlyby sweeps past the cart on a wide phase-offset arc, so the camera
	// appears to race past rather than circle.
	ModeFlyby

	// ModeFreeFly decouples the camera from the cart; eye and look direction
	// are driven directly by externally supplied position and yaw/pitch, with
	// no smoothing applied.
	ModeFreeFly

	modeCount
)

// String returns a human-readable name for the mode.
//
// Returns:
//   - string: the mode name, or "Unknown" for out-of-range values
func (m Mode) String() string {
	switch m {
	case ModeChase:
		return "Chase"
	case ModeCockpit:
		return "Cockpit"
	case ModeCinematic:
		return "Cinematic"
	case ModeOrbit:
		return "Orbit"
	case ModeFlyby:
		return "Flyby"
	case ModeFreeFly:
		return "Free-Fly"
	default:
		return "Unknown"
	}
}

// Next returns the following mode in cycle order, wrapping after ModeFreeFly.
//
// Returns:
//   - Mode: the next mode
func (m Mode) Next() Mode {
	if m < 0 || m >= modeCount-1 {
		return ModeChase
	}
	return m + 1
}

// SmoothingStrategy selects how the rig blends the current camera state toward
// the per-mode target each frame.
type SmoothingStrategy int

const (
	// SmoothingExponential blends with factor = min(smoothConst/dt, 1) each
	// frame. Frame-rate compensated: slower frames produce a larger factor so
	// the camera approaches its target at a rate independent of frame rate.
	// When dt grows large relative to smoothConst the factor saturates at 1
	// and the camera snaps; this is preserved intended behavior, not a bug.
	SmoothingExponential SmoothingStrategy = iota

	// SmoothingEased scales the exponential factor by a quintic ease of the
	// time since the last mode switch, so the camera eases into each new
	// behavior instead of cutting to it.
	SmoothingEased
)
