package camera

import (
	"github.com/vamsipaul1/Python-Project-Rollercoaster/common"
	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/track"
)

// CameraRig owns the camera's positional state (eye, look target, up) and
// recomputes it once per frame from the cart's sample and orientation frame.
// The rig is the only core state with temporal memory: smoothing blends the
// previous state toward the active mode's target so camera motion stays
// continuous even when the cart's frame changes abruptly near sharp curvature.
// The Camera reads eye/target/up from the rig and builds view matrices.
type CameraRig interface {
	// Mode returns the active camera behavior.
	//
	// Returns:
	//   - Mode: the active mode
	Mode() Mode

	// SetMode switches the active behavior. Switching resets the eased
	// transition clock so SmoothingEased ramps into the new behavior.
	// Setting the current mode again is a no-op.
	//
	// Parameters:
	//   - mode: the behavior to activate
	SetMode(mode Mode)

	// CycleMode advances to the next behavior in cycle order.
	CycleMode()

	// Update recomputes the camera state for this frame. Compute the active
	// mode's target eye/look/up from the cart state, then blend the current
	// state toward it per the smoothing strategy. ModeFreeFly assigns
	// directly with no smoothing. Call exactly once per tick.
	//
	// Parameters:
	//   - sample: the cart's current track sample
	//   - frame: the cart's current orientation frame
	//   - tParam: the animation clock's path parameter, used for phase offsets
	//   - dt: elapsed seconds since the previous tick, already clamped
	Update(sample track.Sample, frame common.Frame, tParam, dt float32)

	// Eye returns the current smoothed camera position.
	//
	// Returns:
	//   - common.Vec3: the eye position
	Eye() common.Vec3

	// Target returns the current smoothed look-at point.
	//
	// Returns:
	//   - common.Vec3: the look target
	Target() common.Vec3

	// UpVector returns the current smoothed up vector. Unit length every frame.
	//
	// Returns:
	//   - common.Vec3: the up vector
	UpVector() common.Vec3

	// Smoothing returns the active smoothing strategy.
	//
	// Returns:
	//   - SmoothingStrategy: the active strategy
	Smoothing() SmoothingStrategy

	// SetSmoothing selects the smoothing strategy.
	//
	// Parameters:
	//   - s: the strategy to use
	SetSmoothing(s SmoothingStrategy)

	// SmoothFactor returns the blend factor the rig would apply for the given
	// dt under the active strategy.
	//
	// Parameters:
	//   - dt: elapsed seconds
	//
	// Returns:
	//   - float32: the blend factor in [0, 1]
	SmoothFactor(dt float32) float32

	// FreePosition returns the externally driven eye position for ModeFreeFly.
	//
	// Returns:
	//   - common.Vec3: the free-fly position
	FreePosition() common.Vec3

	// SetFreePosition sets the free-fly eye position directly.
	//
	// Parameters:
	//   - pos: the new eye position
	SetFreePosition(pos common.Vec3)

	// FreeLook returns the free-fly view angles.
	//
	// Returns:
	//   - yaw: horizontal angle in radians around the Y axis
	//   - pitch: vertical angle in radians, clamped short of straight up/down
	FreeLook() (yaw, pitch float32)

	// SetFreeLook sets the free-fly view angles. Pitch is clamped short of
	// the poles to keep the look direction and world up independent.
	//
	// Parameters:
	//   - yaw: horizontal angle in radians
	//   - pitch: vertical angle in radians
	SetFreeLook(yaw, pitch float32)

	// FreeMove translates the free-fly position along the current view axes.
	//
	// Parameters:
	//   - forward: distance along the look direction
	//   - right: distance along the view-right axis
	//   - up: distance along world up
	FreeMove(forward, right, up float32)
}
