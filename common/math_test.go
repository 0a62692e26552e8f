package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// transformPoint applies a column-major 4x4 matrix to a point (w = 1).
func transformPoint(m []float32, p Vec3) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// TestMul4 tests matrix multiplication against the identity.
func TestMul4(t *testing.T) {
	t.Parallel()

	var id, out [16]float32
	Identity(id[:])

	a := [16]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	Mul4(out[:], a[:], id[:])
	assert.Equal(t, a, out)

	Mul4(out[:], id[:], a[:])
	assert.Equal(t, a, out)
}

// TestLookAt tests the view transform against known eye and target points.
func TestLookAt(t *testing.T) {
	t.Parallel()

	t.Run("eye maps to view-space origin", func(t *testing.T) {
		t.Parallel()
		eye := Vec3{X: 3, Y: 5, Z: -2}
		var view [16]float32
		LookAt(view[:], eye, Vec3{}, Vec3{Y: 1})

		p := transformPoint(view[:], eye)
		assert.InDelta(t, 0.0, float64(p.X), floatTol)
		assert.InDelta(t, 0.0, float64(p.Y), floatTol)
		assert.InDelta(t, 0.0, float64(p.Z), floatTol)
	})

	t.Run("target lies on the negative view z axis", func(t *testing.T) {
		t.Parallel()
		eye := Vec3{Z: 10}
		center := Vec3{}
		var view [16]float32
		LookAt(view[:], eye, center, Vec3{Y: 1})

		p := transformPoint(view[:], center)
		assert.InDelta(t, 0.0, float64(p.X), floatTol)
		assert.InDelta(t, 0.0, float64(p.Y), floatTol)
		assert.InDelta(t, -10.0, float64(p.Z), floatTol)
	})

	t.Run("up vector controls roll", func(t *testing.T) {
		t.Parallel()
		var view [16]float32
		LookAt(view[:], Vec3{Z: 5}, Vec3{}, Vec3{Y: 1})

		// A point above the target should land on the positive view y axis.
		p := transformPoint(view[:], Vec3{Y: 1})
		assert.InDelta(t, 1.0, float64(p.Y), floatTol)
		assert.InDelta(t, 0.0, float64(p.X), floatTol)
	})
}

// TestPerspective tests the projection's near and far plane mapping in
// [0, 1] clip space.
func TestPerspective(t *testing.T) {
	t.Parallel()

	var proj [16]float32
	Perspective(proj[:], 1.0, 16.0/9.0, 0.1, 100)

	project := func(z float32) float32 {
		// Column-major multiply of (0, 0, z, 1), then perspective divide.
		clipZ := proj[10]*z + proj[14]
		clipW := proj[11] * z
		return clipZ / clipW
	}

	// View-space z is negative in front of the camera.
	assert.InDelta(t, 0.0, float64(project(-0.1)), floatTol)
	assert.InDelta(t, 1.0, float64(project(-100)), 1e-4)
}
