package track

import "github.com/vamsipaul1/Python-Project-Rollercoaster/common"

// TrackBuilderOption is a functional option for configuring a Track.
type TrackBuilderOption func(*trackImpl)

// WithControlPoints sets the ordered control path. The slice is copied so the
// track stays immutable after construction. The path is treated as a closed
// loop; the last point conceptually connects back to the first.
//
// Parameters:
//   - points: the ordered 3-D control points (at least 4 for spline evaluation)
//
// Returns:
//   - TrackBuilderOption: functional option to set the control path
func WithControlPoints(points []common.Vec3) TrackBuilderOption {
	return func(tr *trackImpl) {
		tr.points = make([]common.Vec3, len(points))
		copy(tr.points, points)
	}
}

// WithDelta sets the finite-difference step for tangent and curvature
// estimation. Non-positive values are ignored and the default is kept.
//
// Parameters:
//   - delta: the parameter-space step size
//
// Returns:
//   - TrackBuilderOption: functional option to set the step
func WithDelta(delta float32) TrackBuilderOption {
	return func(tr *trackImpl) {
		if delta > 0 {
			tr.delta = delta
		}
	}
}
