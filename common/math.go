// package common contains common types that are used throughout this project. They are not interface-wrapped structs, just plain value
// types and pure functions over them.
package common

import "math"

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order. Result: out = a * b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix with clip space [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// LookAt creates a view matrix from an eye position, a target point, and an up
// vector. The resulting matrix transforms world coordinates to view space; eye,
// center, and up are the same triple the camera rig produces each frame.
// Degenerate input (eye equal to center, or up parallel to the view direction)
// resolves through Normalize's fallback rather than failing.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera roll
func LookAt(out []float32, eye, center, up Vec3) {
	// backward is the view-space +Z axis.
	backward := eye.Sub(center).Normalize()
	right := up.Cross(backward).Normalize()
	trueUp := backward.Cross(right)

	out[0], out[4], out[8], out[12] = right.X, right.Y, right.Z, -right.Dot(eye)
	out[1], out[5], out[9], out[13] = trueUp.X, trueUp.Y, trueUp.Z, -trueUp.Dot(eye)
	out[2], out[6], out[10], out[14] = backward.X, backward.Y, backward.Z, -backward.Dot(eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}
