package camera

import (
	"math"
	"sync"

	"github.com/vamsipaul1/Python-Project-Rollercoaster/common"
	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/track"
)

// Defaults carried over from the reference track layout.
const (
	defaultSmoothConst        = 0.15
	defaultTransitionDuration = 1.0

	defaultFollowDistance = 6.0
	defaultFollowHeight   = 3.0
	defaultLookahead      = 2.5

	defaultEyeHeight    = 0.5
	defaultLookDistance = 3.0

	defaultCinematicRadius = 8.0
	defaultCinematicHeight = 4.0
	defaultCinematicSpeed  = 0.4

	defaultOrbitRadius = 12.0
	defaultOrbitHeight = 6.0
	defaultOrbitSpeed  = 0.2

	defaultFlybyRadius = 15.0
	defaultFlybyHeight = 8.0
	defaultFlybySpeed  = 0.3

	// maxPitch keeps the free-fly look direction off the poles so the fixed
	// world-up vector never becomes parallel to it.
	maxPitch = float32(math.Pi/2 - 0.05)
)

var worldUp = common.Vec3{Y: 1}

// cameraRigImpl is the single implementation of CameraRig.
type cameraRigImpl struct {
	mu *sync.Mutex

	mode      Mode
	smoothing SmoothingStrategy

	// Smoothed camera state. The only temporal memory in the core.
	position common.Vec3
	target   common.Vec3
	up       common.Vec3

	// elapsed accumulates wall-clock time for the orbit/flyby phase angle.
	// transitionElapsed accumulates time since the last mode switch.
	elapsed            float32
	transitionElapsed  float32
	transitionDuration float32
	smoothConst        float32

	// Chase offsets.
	followDistance float32
	followHeight   float32
	lookahead      float32

	// Cockpit offsets.
	eyeHeight    float32
	lookDistance float32

	// Circling-mode parameters: radius, base height, angular speed.
	cinematicRadius, cinematicHeight, cinematicSpeed float32
	orbitRadius, orbitHeight, orbitSpeed             float32
	flybyRadius, flybyHeight, flybySpeed             float32

	// Free-fly state, externally driven.
	freePosition common.Vec3
	yaw, pitch   float32
}

var _ CameraRig = &cameraRigImpl{}

// NewCameraRig creates a camera rig with the reference defaults: chase mode,
// exponential smoothing, and the camera parked above and behind the origin.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - CameraRig: the newly created rig
func NewCameraRig(options ...CameraRigBuilderOption) CameraRig {
	r := &cameraRigImpl{
		mu: &sync.Mutex{},

		mode:      ModeChase,
		smoothing: SmoothingExponential,

		position: common.Vec3{Y: 5, Z: 10},
		target:   common.Vec3{},
		up:       worldUp,

		transitionDuration: defaultTransitionDuration,
		smoothConst:        defaultSmoothConst,

		followDistance: defaultFollowDistance,
		followHeight:   defaultFollowHeight,
		lookahead:      defaultLookahead,

		eyeHeight:    defaultEyeHeight,
		lookDistance: defaultLookDistance,

		cinematicRadius: defaultCinematicRadius,
		cinematicHeight: defaultCinematicHeight,
		cinematicSpeed:  defaultCinematicSpeed,

		orbitRadius: defaultOrbitRadius,
		orbitHeight: defaultOrbitHeight,
		orbitSpeed:  defaultOrbitSpeed,

		flybyRadius: defaultFlybyRadius,
		flybyHeight: defaultFlybyHeight,
		flybySpeed:  defaultFlybySpeed,

		freePosition: common.Vec3{Y: 5, Z: 10},
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// --- internal helpers ---

// freeDirection converts yaw/pitch to a unit look direction, using the same
// spherical convention as the circling modes (yaw 0 faces +Z).
func freeDirection(yaw, pitch float32) common.Vec3 {
	cosPitch := float32(math.Cos(float64(pitch)))
	return common.Vec3{
		X: cosPitch * float32(math.Sin(float64(yaw))),
		Y: float32(math.Sin(float64(pitch))),
		Z: cosPitch * float32(math.Cos(float64(yaw))),
	}
}

// circleOffset is the shared eye offset for the circling modes: a point on a
// horizontal circle of the given radius at the given height, at phase angle.
func circleOffset(radius, height, angle float32) common.Vec3 {
	return common.Vec3{
		X: radius * float32(math.Cos(float64(angle))),
		Y: height,
		Z: radius * float32(math.Sin(float64(angle))),
	}
}

// targetsFor computes the active mode's desired eye/look/up triple. Unknown
// modes yield the fixed default view behind and above the cart. ModeFreeFly is
// handled by the caller and never reaches here. Caller must hold the mutex.
func (r *cameraRigImpl) targetsFor(sample track.Sample, frame common.Frame, tParam float32) (eye, look, up common.Vec3) {
	pos := sample.Position
	fwd := frame.Forward

	switch r.mode {
	case ModeChase:
		eye = pos.Sub(fwd.Scale(r.followDistance)).Add(frame.Up.Scale(r.followHeight))
		look = pos.Add(fwd.Scale(r.lookahead))
		up = frame.Up

	case ModeCockpit:
		eye = pos.Add(frame.Up.Scale(r.eyeHeight))
		look = pos.Add(fwd.Scale(r.lookDistance)).Add(frame.Up.Scale(r.eyeHeight))
		up = frame.Up

	case ModeCinematic:
		angle := r.cinematicSpeed*r.elapsed + 2*tParam
		offset := circleOffset(r.cinematicRadius, r.cinematicHeight, angle)
		offset.Y += 2 * float32(math.Sin(float64(angle*0.7)))
		eye = pos.Add(offset)
		look = pos.Add(fwd)
		up = worldUp

	case ModeOrbit:
		angle := r.orbitSpeed * r.elapsed
		eye = pos.Add(circleOffset(r.orbitRadius, r.orbitHeight, angle))
		look = pos
		up = worldUp

	case ModeFlyby:
		angle := r.flybySpeed*r.elapsed + 3*tParam + float32(math.Pi/4)
		offset := circleOffset(r.flybyRadius, r.flybyHeight, angle)
		offset.Y += 3 * float32(math.Sin(float64(angle*0.5)))
		eye = pos.Add(offset)
		look = pos.Add(fwd.Scale(2))
		up = worldUp

	default:
		eye = pos.Add(common.Vec3{Y: 5, Z: 10})
		look = pos
		up = worldUp
	}
	return eye, look, up
}

// smoothFactor computes the blend factor for this frame. Caller must hold the
// mutex.
func (r *cameraRigImpl) smoothFactor(dt float32) float32 {
	base := float32(1)
	if dt > 0 {
		base = r.smoothConst / dt
		if base > 1 {
			base = 1
		}
	}

	if r.smoothing == SmoothingEased {
		u := float32(1)
		if r.transitionDuration > 0 {
			u = r.transitionElapsed / r.transitionDuration
			if u > 1 {
				u = 1
			}
		}
		return common.QuinticEase(u) * base
	}
	return base
}

// --- CameraRig implementation ---

func (r *cameraRigImpl) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

func (r *cameraRigImpl) SetMode(mode Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if mode == r.mode {
		return
	}
	r.mode = mode
	r.transitionElapsed = 0
}

func (r *cameraRigImpl) CycleMode() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = r.mode.Next()
	r.transitionElapsed = 0
}

func (r *cameraRigImpl) Update(sample track.Sample, frame common.Frame, tParam, dt float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.elapsed += dt
	r.transitionElapsed += dt

	if r.mode == ModeFreeFly {
		// Manual control implies no smoothing: assign directly.
		r.position = r.freePosition
		r.target = r.freePosition.Add(freeDirection(r.yaw, r.pitch))
		r.up = worldUp
		return
	}

	eye, look, up := r.targetsFor(sample, frame, tParam)
	factor := r.smoothFactor(dt)

	r.position = r.position.Lerp(eye, factor)
	r.target = r.target.Lerp(look, factor)
	r.up = r.up.Lerp(up, factor).Normalize()
}

func (r *cameraRigImpl) Eye() common.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position
}

func (r *cameraRigImpl) Target() common.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

func (r *cameraRigImpl) UpVector() common.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.up
}

func (r *cameraRigImpl) Smoothing() SmoothingStrategy {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.smoothing
}

func (r *cameraRigImpl) SetSmoothing(s SmoothingStrategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.smoothing = s
}

func (r *cameraRigImpl) SmoothFactor(dt float32) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.smoothFactor(dt)
}

func (r *cameraRigImpl) FreePosition() common.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.freePosition
}

func (r *cameraRigImpl) SetFreePosition(pos common.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.freePosition = pos
}

func (r *cameraRigImpl) FreeLook() (yaw, pitch float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.yaw, r.pitch
}

func (r *cameraRigImpl) SetFreeLook(yaw, pitch float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pitch > maxPitch {
		pitch = maxPitch
	}
	if pitch < -maxPitch {
		pitch = -maxPitch
	}
	r.yaw = yaw
	r.pitch = pitch
}

func (r *cameraRigImpl) FreeMove(forward, right, up float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir := freeDirection(r.yaw, r.pitch)
	rightAxis := dir.Cross(worldUp).Normalize()

	r.freePosition = r.freePosition.
		Add(dir.Scale(forward)).
		Add(rightAxis.Scale(right)).
		Add(worldUp.Scale(up))
}
