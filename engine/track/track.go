package track

import (
	"math"

	"github.com/vamsipaul1/Python-Project-Rollercoaster/common"
)

// defaultDelta is the finite-difference step used for tangent and curvature
// estimation. Too large a step biases both estimates toward chord averages;
// too small a step risks floating-point cancellation in the second difference.
const defaultDelta = 1e-3

// defaultLengthSamples is the polyline resolution used by Length when the
// caller passes a non-positive sample count.
const defaultLengthSamples = 1000

// tangentFallback is returned when two consecutive samples coincide and no
// direction can be derived from them.
var tangentFallback = common.Vec3{X: 1}

// Sample is the derived state of the track at a single parameter value.
// Samples are recomputed on demand and never stored.
type Sample struct {
	// Position is the interpolated point on the curve.
	Position common.Vec3

	// Tangent is the unit forward direction of travel at the sample.
	Tangent common.Vec3

	// Curvature is |v1 × v2| / |v1|³ over the finite-difference derivatives.
	// Always >= 0; exactly 0 on straight spans and at zero speed.
	Curvature float32
}

type trackImpl struct {
	// points is the configured control path. Immutable after construction, so
	// no lock is needed; every evaluator is a pure read.
	points []common.Vec3

	// extended is points plus the first three points appended again, giving the
	// spline valid neighbors across the loop seam.
	extended []common.Vec3

	delta float32
}

// Track maps a scalar parameter t in [0,1) to a smooth closed-loop 3-D curve
// using Catmull-Rom interpolation over an ordered control-point sequence.
// Every method is total: degenerate input (fewer than four control points,
// coincident samples, out-of-range t) yields well-defined fallback values,
// never a panic or an error.
type Track interface {
	// Position evaluates the interpolated position at parameter t.
	// t wraps modulo 1. Paths with fewer than four control points return the
	// first point verbatim; an empty path returns the zero vector.
	//
	// Parameters:
	//   - t: path parameter, wrapped into [0,1)
	//
	// Returns:
	//   - common.Vec3: the position on the curve
	Position(t float32) common.Vec3

	// Tangent evaluates the unit forward direction at parameter t using a
	// forward finite difference. Coincident samples fall back to a fixed
	// unit direction, so the result is always unit length.
	//
	// Parameters:
	//   - t: path parameter, wrapped into [0,1)
	//
	// Returns:
	//   - common.Vec3: the unit tangent
	Tangent(t float32) common.Vec3

	// Curvature evaluates the curvature at parameter t from first and second
	// finite differences: |v1 × v2| / |v1|³. Returns 0 when the speed |v1|
	// is zero.
	//
	// Parameters:
	//   - t: path parameter, wrapped into [0,1)
	//
	// Returns:
	//   - float32: the curvature, always >= 0
	Curvature(t float32) float32

	// SampleAt evaluates position, tangent, and curvature in one call.
	//
	// Parameters:
	//   - t: path parameter, wrapped into [0,1)
	//
	// Returns:
	//   - Sample: the combined sample at t
	SampleAt(t float32) Sample

	// Length approximates the total arc length of the loop as a polyline over
	// uniform parameter steps. Diagnostic only; nothing in the per-frame path
	// depends on it.
	//
	// Parameters:
	//   - samples: number of uniform steps (defaults to 1000 when <= 0)
	//
	// Returns:
	//   - float32: the approximate curve length
	Length(samples int) float32

	// ControlPoints returns a copy of the configured control path.
	//
	// Returns:
	//   - []common.Vec3: the control points in order
	ControlPoints() []common.Vec3

	// SegmentCount returns the number of spline segments in the closed loop.
	// Zero when the path is degenerate (fewer than four points).
	//
	// Returns:
	//   - int: the segment count
	SegmentCount() int

	// Delta returns the finite-difference step used for tangent and curvature.
	//
	// Returns:
	//   - float32: the configured step
	Delta() float32
}

var _ Track = &trackImpl{}

// NewTrack creates a Track from functional options. When no control points are
// supplied, the default reference loop is used.
//
// Parameters:
//   - options: functional options to configure the track
//
// Returns:
//   - Track: the newly created track
func NewTrack(options ...TrackBuilderOption) Track {
	tr := &trackImpl{
		delta: defaultDelta,
	}
	for _, option := range options {
		option(tr)
	}
	if tr.points == nil {
		tr.points = DefaultControlPoints()
	}
	if len(tr.points) >= 4 {
		tr.extended = make([]common.Vec3, 0, len(tr.points)+3)
		tr.extended = append(tr.extended, tr.points...)
		tr.extended = append(tr.extended, tr.points[:3]...)
	}
	return tr
}

// catmullRom evaluates the standard Catmull-Rom cubic through p1 and p2 with
// neighbor points p0 and p3, at local parameter u in [0,1].
func catmullRom(p0, p1, p2, p3 common.Vec3, u float32) common.Vec3 {
	u2 := u * u
	u3 := u2 * u

	out := p1.Scale(2)
	out = out.Add(p2.Sub(p0).Scale(u))
	out = out.Add(p0.Scale(2).Sub(p1.Scale(5)).Add(p2.Scale(4)).Sub(p3).Scale(u2))
	out = out.Add(p0.Scale(-1).Add(p1.Scale(3)).Sub(p2.Scale(3)).Add(p3).Scale(u3))
	return out.Scale(0.5)
}

// wrap maps t into [0,1), matching Python-style modulo for negative input.
func wrap(t float32) float32 {
	w := float32(math.Mod(float64(t), 1.0))
	if w < 0 {
		w += 1
	}
	return w
}

func (tr *trackImpl) Position(t float32) common.Vec3 {
	if len(tr.points) == 0 {
		return common.Vec3{}
	}
	if len(tr.points) < 4 {
		return tr.points[0]
	}

	segCount := len(tr.extended) - 3
	tScaled := wrap(t) * float32(segCount)
	segIndex := int(tScaled)
	if segIndex > segCount-1 {
		segIndex = segCount - 1
	}
	localT := tScaled - float32(segIndex)

	return catmullRom(
		tr.extended[segIndex],
		tr.extended[segIndex+1],
		tr.extended[segIndex+2],
		tr.extended[segIndex+3],
		localT,
	)
}

func (tr *trackImpl) Tangent(t float32) common.Vec3 {
	p1 := tr.Position(t)
	p2 := tr.Position(wrap(t + tr.delta))

	diff := p2.Sub(p1)
	if diff.Length() == 0 {
		return tangentFallback
	}
	return diff.Normalize()
}

func (tr *trackImpl) Curvature(t float32) float32 {
	p1 := tr.Position(t)
	p2 := tr.Position(wrap(t + tr.delta))
	p3 := tr.Position(wrap(t + 2*tr.delta))

	v1 := p2.Sub(p1).Scale(1 / tr.delta)
	v2 := p3.Sub(p2.Scale(2)).Add(p1).Scale(1 / (tr.delta * tr.delta))

	speed := v1.Length()
	if speed == 0 {
		return 0
	}
	return v1.Cross(v2).Length() / (speed * speed * speed)
}

func (tr *trackImpl) SampleAt(t float32) Sample {
	return Sample{
		Position:  tr.Position(t),
		Tangent:   tr.Tangent(t),
		Curvature: tr.Curvature(t),
	}
}

func (tr *trackImpl) Length(samples int) float32 {
	if samples <= 0 {
		samples = defaultLengthSamples
	}

	total := float32(0)
	prev := tr.Position(0)
	for i := 1; i <= samples; i++ {
		curr := tr.Position(float32(i) / float32(samples))
		total += curr.Sub(prev).Length()
		prev = curr
	}
	return total
}

func (tr *trackImpl) ControlPoints() []common.Vec3 {
	cp := make([]common.Vec3, len(tr.points))
	copy(cp, tr.points)
	return cp
}

func (tr *trackImpl) SegmentCount() int {
	if len(tr.extended) < 4 {
		return 0
	}
	return len(tr.extended) - 3
}

func (tr *trackImpl) Delta() float32 {
	return tr.delta
}
