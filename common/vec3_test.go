package common

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const floatTol = 1e-5

// TestVec3Normalize tests unit scaling and the zero-length fallback.
func TestVec3Normalize(t *testing.T) {
	t.Parallel()

	t.Run("scales to unit length", func(t *testing.T) {
		t.Parallel()
		v := Vec3{X: 3, Y: 4, Z: 0}.Normalize()
		assert.InDelta(t, 1.0, float64(v.Length()), floatTol)
		assert.InDelta(t, 0.6, float64(v.X), floatTol)
		assert.InDelta(t, 0.8, float64(v.Y), floatTol)
	})

	t.Run("zero vector falls back to default unit", func(t *testing.T) {
		t.Parallel()
		v := Vec3{}.Normalize()
		assert.Equal(t, DefaultUnit, v)
		assert.InDelta(t, 1.0, float64(v.Length()), floatTol)
	})

	t.Run("never produces NaN", func(t *testing.T) {
		t.Parallel()
		v := Vec3{}.Normalize()
		assert.False(t, math.IsNaN(float64(v.X)))
		assert.False(t, math.IsNaN(float64(v.Y)))
		assert.False(t, math.IsNaN(float64(v.Z)))
	})
}

// TestVec3Cross tests the cross product against the right-hand axes.
func TestVec3Cross(t *testing.T) {
	t.Parallel()

	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := Vec3{Z: 1}

	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, Vec3{}, x.Cross(x))
}

// TestVec3Lerp tests endpoint and midpoint interpolation.
func TestVec3Lerp(t *testing.T) {
	t.Parallel()

	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 5, Y: 6, Z: 7}

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))

	mid := a.Lerp(b, 0.5)
	want := Vec3{X: 3, Y: 4, Z: 5}
	assert.Empty(t, cmp.Diff(want, mid, cmpopts.EquateApprox(0, floatTol)))
}

// assertOrthonormal checks that the frame axes are unit length and mutually
// perpendicular within tolerance.
func assertOrthonormal(t *testing.T, f Frame) {
	t.Helper()
	assert.InDelta(t, 1.0, float64(f.Right.Length()), floatTol)
	assert.InDelta(t, 1.0, float64(f.Up.Length()), floatTol)
	assert.InDelta(t, 1.0, float64(f.Forward.Length()), floatTol)
	assert.InDelta(t, 0.0, float64(f.Right.Dot(f.Up)), floatTol)
	assert.InDelta(t, 0.0, float64(f.Right.Dot(f.Forward)), floatTol)
	assert.InDelta(t, 0.0, float64(f.Up.Dot(f.Forward)), floatTol)
}

// TestReorthogonalize tests frame construction from forward and an up hint.
func TestReorthogonalize(t *testing.T) {
	t.Parallel()

	t.Run("axis-aligned forward", func(t *testing.T) {
		t.Parallel()
		f := Reorthogonalize(Vec3{Z: 1}, Vec3{Y: 1})
		assertOrthonormal(t, f)
		assert.Empty(t, cmp.Diff(Vec3{Z: 1}, f.Forward, cmpopts.EquateApprox(0, floatTol)))
	})

	t.Run("tilted forward with non-perpendicular hint", func(t *testing.T) {
		t.Parallel()
		f := Reorthogonalize(Vec3{X: 1, Y: 1, Z: 1}, Vec3{Y: 1})
		assertOrthonormal(t, f)
	})

	t.Run("unnormalized forward is normalized", func(t *testing.T) {
		t.Parallel()
		f := Reorthogonalize(Vec3{X: 10}, Vec3{Y: 1})
		assertOrthonormal(t, f)
		assert.Empty(t, cmp.Diff(Vec3{X: 1}, f.Forward, cmpopts.EquateApprox(0, floatTol)))
	})

	t.Run("degenerate hint still yields a finite basis", func(t *testing.T) {
		t.Parallel()
		// Hint parallel to forward: the cross product collapses and should
		// resolve through the normalize fallback, never NaN.
		f := Reorthogonalize(Vec3{Y: 1}, Vec3{Y: 1})
		for _, axis := range []Vec3{f.Right, f.Up, f.Forward} {
			require.False(t, math.IsNaN(float64(axis.X)))
			require.False(t, math.IsNaN(float64(axis.Y)))
			require.False(t, math.IsNaN(float64(axis.Z)))
			assert.InDelta(t, 1.0, float64(axis.Length()), floatTol)
		}
	})
}

// TestQuinticEase tests the ease curve endpoints, midpoint, and clamping.
func TestQuinticEase(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0, float64(QuinticEase(0)), floatTol)
	assert.InDelta(t, 1.0, float64(QuinticEase(1)), floatTol)
	assert.InDelta(t, 0.5, float64(QuinticEase(0.5)), floatTol)

	// Out-of-range input clamps rather than extrapolating.
	assert.InDelta(t, 0.0, float64(QuinticEase(-2)), floatTol)
	assert.InDelta(t, 1.0, float64(QuinticEase(3)), floatTol)

	// Monotonic over [0,1].
	prev := float32(0)
	for i := 1; i <= 20; i++ {
		v := QuinticEase(float32(i) / 20)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}
