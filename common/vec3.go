package common

import "math"

// Vec3 is a 3-component float32 vector with named components.
// It is a plain value type; all operations are pure functions returning new values.
type Vec3 struct {
	X, Y, Z float32
}

// DefaultUnit is the fallback direction returned by Normalize for zero-length input.
// Degenerate geometry (coincident sample points) must never produce NaN components,
// so callers always receive a finite unit vector.
var DefaultUnit = Vec3{0, 0, 1}

// Add returns the component-wise sum v + o.
//
// Parameters:
//   - o: the vector to add
//
// Returns:
//   - Vec3: the sum
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
//
// Parameters:
//   - o: the vector to subtract
//
// Returns:
//   - Vec3: the difference
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
//
// Parameters:
//   - s: the scalar multiplier
//
// Returns:
//   - Vec3: the scaled vector
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
//
// Parameters:
//   - o: the other vector
//
// Returns:
//   - float32: the dot product
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o. No guarantees beyond IEEE-754 semantics.
//
// Parameters:
//   - o: the right-hand operand
//
// Returns:
//   - Vec3: the cross product
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean magnitude of v.
//
// Returns:
//   - float32: the vector length
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to unit length. A zero-length vector returns
// DefaultUnit instead of failing; the result is always finite and unit length.
//
// Returns:
//   - Vec3: the unit vector, or DefaultUnit if v has zero length
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return DefaultUnit
	}
	return v.Scale(1 / l)
}

// Lerp returns the linear interpolation of v toward o by factor f.
// f is not clamped; 0 returns v, 1 returns o.
//
// Parameters:
//   - o: the target vector
//   - f: the blend factor
//
// Returns:
//   - Vec3: the interpolated vector
func (v Vec3) Lerp(o Vec3, f float32) Vec3 {
	return v.Add(o.Sub(v).Scale(f))
}

// Frame is a right-handed orthonormal orientation basis. Each pair of axes is
// perpendicular and each axis is unit length, within floating tolerance.
// Frames are rebuilt from a forward vector on every query and never cached,
// since forward is recomputed each frame from a moving sample point.
type Frame struct {
	Right, Up, Forward Vec3
}

// Reorthogonalize builds a right-handed orthonormal Frame from a forward vector
// and an up hint. The hint does not need to be perpendicular to forward; the up
// axis is recomputed as right × forward after right = forward × hint. Degenerate
// input (zero or parallel vectors) resolves through Normalize's fallback so the
// result is always a valid basis.
//
// Parameters:
//   - forward: the desired forward direction (normalized internally)
//   - upHint: approximate up direction used to seat the right axis
//
// Returns:
//   - Frame: the orthonormal right/up/forward triple
func Reorthogonalize(forward, upHint Vec3) Frame {
	f := forward.Normalize()
	r := f.Cross(upHint).Normalize()
	u := r.Cross(f).Normalize()
	return Frame{Right: r, Up: u, Forward: f}
}

// QuinticEase maps normalized time to a blend weight with zero velocity and zero
// acceleration at both ends: 6u⁵ - 15u⁴ + 10u³. Input is clamped to [0, 1].
//
// Parameters:
//   - u: normalized time
//
// Returns:
//   - float32: the eased blend weight in [0, 1]
func QuinticEase(u float32) float32 {
	if u < 0 {
		u = 0
	}
	if u > 1 {
		u = 1
	}
	return u * u * u * (u*(u*6-15) + 10)
}
