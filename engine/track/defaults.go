package track

import "github.com/vamsipaul1/Python-Project-Rollercoaster/common"

// DefaultControlPoints returns the reference roller coaster loop: a closed
// track with hills, a sharp turn, and a final approach back to the start.
// The returned slice is a fresh copy each call.
//
// Returns:
//   - []common.Vec3: the default control path
func DefaultControlPoints() []common.Vec3 {
	return []common.Vec3{
		{X: 0.0, Y: 0.0, Z: 0.0},   // start
		{X: 5.0, Y: 0.0, Z: 2.0},   // first curve up
		{X: 10.0, Y: 2.0, Z: 5.0},  // hill top
		{X: 15.0, Y: 0.0, Z: 8.0},  // downhill
		{X: 20.0, Y: -1.0, Z: 5.0}, // valley
		{X: 25.0, Y: 1.0, Z: 2.0},  // back uphill
		{X: 30.0, Y: 3.0, Z: 0.0},  // high point
		{X: 35.0, Y: 0.0, Z: -3.0}, // sharp turn
		{X: 40.0, Y: -2.0, Z: 0.0}, // low point
		{X: 35.0, Y: 0.0, Z: 3.0},  // turn back
		{X: 30.0, Y: 1.0, Z: 0.0},  // approach start
		{X: 25.0, Y: 0.0, Z: -2.0}, // final curve
		{X: 20.0, Y: 0.0, Z: 0.0},  // back near start
		{X: 15.0, Y: 0.0, Z: 2.0},  // curve around
		{X: 10.0, Y: 0.0, Z: 0.0},  // near start
		{X: 5.0, Y: 0.0, Z: -1.0},  // final approach
		{X: 0.0, Y: 0.0, Z: 0.0},   // back to start
	}
}
