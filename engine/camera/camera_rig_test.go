package camera

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsipaul1/Python-Project-Rollercoaster/common"
	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/track"
)

// stationarySample is a fixed cart state used to drive the rig in isolation.
func stationarySample() (track.Sample, common.Frame) {
	s := track.Sample{
		Position: common.Vec3{X: 20, Y: 3, Z: -5},
		Tangent:  common.Vec3{X: 1},
	}
	return s, common.Reorthogonalize(s.Tangent, common.Vec3{Y: 1})
}

// TestModeCycle tests mode enumeration and wraparound.
func TestModeCycle(t *testing.T) {
	t.Parallel()

	r := NewCameraRig()
	seen := map[Mode]bool{}
	for i := 0; i < int(modeCount); i++ {
		seen[r.Mode()] = true
		r.CycleMode()
	}

	assert.Len(t, seen, int(modeCount))
	assert.Equal(t, ModeChase, r.Mode())
}

// TestModeString tests the display names used by the HUD.
func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Chase", ModeChase.String())
	assert.Equal(t, "Free-Fly", ModeFreeFly.String())
	assert.NotEmpty(t, Mode(99).String())
}

// TestSmoothFactor tests the frame-rate compensated blend factor.
func TestSmoothFactor(t *testing.T) {
	t.Parallel()

	t.Run("proportional to inverse dt", func(t *testing.T) {
		t.Parallel()
		r := NewCameraRig(WithSmoothConst(0.15))
		assert.InDelta(t, 0.15, float64(r.SmoothFactor(1.0)), 1e-5)
		assert.InDelta(t, 0.3, float64(r.SmoothFactor(0.5)), 1e-5)
	})

	t.Run("saturates at one for slow frames", func(t *testing.T) {
		t.Parallel()
		r := NewCameraRig(WithSmoothConst(0.15))
		assert.Equal(t, float32(1), r.SmoothFactor(0.15))
		assert.Equal(t, float32(1), r.SmoothFactor(10))
	})

	t.Run("zero dt yields a full snap", func(t *testing.T) {
		t.Parallel()
		r := NewCameraRig()
		assert.Equal(t, float32(1), r.SmoothFactor(0))
	})

	t.Run("eased strategy starts at zero after a mode switch", func(t *testing.T) {
		t.Parallel()
		r := NewCameraRig(WithSmoothing(SmoothingEased))
		r.SetMode(ModeOrbit)
		assert.Equal(t, float32(0), r.SmoothFactor(1.0))
	})
}

// TestChaseConvergence tests that the smoothed camera converges to the chase
// target when the cart holds still.
func TestChaseConvergence(t *testing.T) {
	t.Parallel()

	sample, frame := stationarySample()
	r := NewCameraRig()

	const dt = 1.0 / 60.0
	for i := 0; i < 2000; i++ {
		r.Update(sample, frame, 0, dt)
		assert.InDelta(t, 1.0, float64(r.UpVector().Length()), 1e-4)
	}

	// Chase: behind along forward, lifted along up, looking ahead of the cart.
	wantEye := sample.Position.Sub(frame.Forward.Scale(6)).Add(frame.Up.Scale(3))
	wantTarget := sample.Position.Add(frame.Forward.Scale(2.5))

	opt := cmpopts.EquateApprox(0, 1e-2)
	assert.Empty(t, cmp.Diff(wantEye, r.Eye(), opt))
	assert.Empty(t, cmp.Diff(wantTarget, r.Target(), opt))
}

// TestCockpitTargets tests the cockpit eye and look placement after
// convergence.
func TestCockpitTargets(t *testing.T) {
	t.Parallel()

	sample, frame := stationarySample()
	r := NewCameraRig(WithMode(ModeCockpit))

	for i := 0; i < 2000; i++ {
		r.Update(sample, frame, 0, 1.0/60.0)
	}

	wantEye := sample.Position.Add(frame.Up.Scale(0.5))
	wantTarget := sample.Position.Add(frame.Forward.Scale(3)).Add(frame.Up.Scale(0.5))

	opt := cmpopts.EquateApprox(0, 1e-2)
	assert.Empty(t, cmp.Diff(wantEye, r.Eye(), opt))
	assert.Empty(t, cmp.Diff(wantTarget, r.Target(), opt))
}

// TestOrbitMode tests that the orbit eye circles the cart at the configured
// radius and height.
func TestOrbitMode(t *testing.T) {
	t.Parallel()

	sample, frame := stationarySample()
	r := NewCameraRig(WithMode(ModeOrbit), WithOrbitPath(12, 6, 0.2))

	for i := 0; i < 4000; i++ {
		r.Update(sample, frame, 0, 1.0/60.0)
	}

	offset := r.Eye().Sub(sample.Position)
	horizontal := common.Vec3{X: offset.X, Z: offset.Z}

	// The eye keeps pace with a slowly advancing angle, so the smoothed state
	// lags slightly behind the exact circle.
	assert.InDelta(t, 12.0, float64(horizontal.Length()), 0.2)
	assert.InDelta(t, 6.0, float64(offset.Y), 0.1)
	assert.Empty(t, cmp.Diff(sample.Position, r.Target(), cmpopts.EquateApprox(0, 0.1)))
}

// TestUnknownModeFallback tests the fixed default view for an out-of-range
// mode value.
func TestUnknownModeFallback(t *testing.T) {
	t.Parallel()

	sample, frame := stationarySample()
	r := NewCameraRig(WithMode(Mode(99)))

	for i := 0; i < 2000; i++ {
		r.Update(sample, frame, 0, 1.0/60.0)
	}

	wantEye := sample.Position.Add(common.Vec3{Y: 5, Z: 10})
	opt := cmpopts.EquateApprox(0, 1e-2)
	assert.Empty(t, cmp.Diff(wantEye, r.Eye(), opt))
	assert.Empty(t, cmp.Diff(sample.Position, r.Target(), opt))
}

// TestFreeFly tests direct manual control: no smoothing lag, clamped pitch,
// and movement along the look direction.
func TestFreeFly(t *testing.T) {
	t.Parallel()

	t.Run("position applies immediately", func(t *testing.T) {
		t.Parallel()
		sample, frame := stationarySample()
		r := NewCameraRig(WithMode(ModeFreeFly))

		pos := common.Vec3{X: 7, Y: 8, Z: 9}
		r.SetFreePosition(pos)
		r.Update(sample, frame, 0, 1.0/60.0)

		assert.Equal(t, pos, r.Eye())
	})

	t.Run("target follows the look direction", func(t *testing.T) {
		t.Parallel()
		sample, frame := stationarySample()
		r := NewCameraRig(WithMode(ModeFreeFly), WithFreePosition(common.Vec3{}))

		// Yaw 0, pitch 0 looks along +Z.
		r.SetFreeLook(0, 0)
		r.Update(sample, frame, 0, 1.0/60.0)
		assert.Empty(t, cmp.Diff(common.Vec3{Z: 1}, r.Target(), cmpopts.EquateApprox(0, 1e-5)))
	})

	t.Run("pitch clamps short of the poles", func(t *testing.T) {
		t.Parallel()
		r := NewCameraRig()
		r.SetFreeLook(0, 10)
		_, pitch := r.FreeLook()
		assert.Less(t, pitch, float32(1.58))

		r.SetFreeLook(0, -10)
		_, pitch = r.FreeLook()
		assert.Greater(t, pitch, float32(-1.58))
	})

	t.Run("forward movement follows the look direction", func(t *testing.T) {
		t.Parallel()
		r := NewCameraRig(WithFreePosition(common.Vec3{}))
		r.SetFreeLook(0, 0)
		r.FreeMove(2, 0, 0)

		assert.Empty(t, cmp.Diff(common.Vec3{Z: 2}, r.FreePosition(), cmpopts.EquateApprox(0, 1e-5)))
	})

	t.Run("vertical movement ignores pitch", func(t *testing.T) {
		t.Parallel()
		r := NewCameraRig(WithFreePosition(common.Vec3{}))
		r.SetFreeLook(0.3, 0.8)
		r.FreeMove(0, 0, 5)

		pos := r.FreePosition()
		assert.InDelta(t, 5.0, float64(pos.Y), 1e-5)
		assert.InDelta(t, 0.0, float64(pos.X), 1e-5)
		assert.InDelta(t, 0.0, float64(pos.Z), 1e-5)
	})
}

// TestSetMode tests transition bookkeeping on mode switches.
func TestSetMode(t *testing.T) {
	t.Parallel()

	t.Run("switch resets the transition clock", func(t *testing.T) {
		t.Parallel()
		sample, frame := stationarySample()
		r := NewCameraRig(WithSmoothing(SmoothingEased), WithTransitionDuration(1.0))

		// Run well past the transition so the eased factor saturates.
		for i := 0; i < 120; i++ {
			r.Update(sample, frame, 0, 1.0/60.0)
		}
		require.Greater(t, r.SmoothFactor(0.05), float32(0.9))

		r.SetMode(ModeFlyby)
		assert.Equal(t, float32(0), r.SmoothFactor(0.05))
	})

	t.Run("setting the same mode is a no-op", func(t *testing.T) {
		t.Parallel()
		sample, frame := stationarySample()
		r := NewCameraRig(WithSmoothing(SmoothingEased))

		for i := 0; i < 120; i++ {
			r.Update(sample, frame, 0, 1.0/60.0)
		}
		before := r.SmoothFactor(0.05)
		require.Greater(t, before, float32(0))

		r.SetMode(ModeChase)
		assert.Equal(t, before, r.SmoothFactor(0.05))
	})
}

// TestWithInitialView tests the initial camera state option.
func TestWithInitialView(t *testing.T) {
	t.Parallel()

	eye := common.Vec3{X: 1, Y: 2, Z: 3}
	target := common.Vec3{X: 4, Y: 5, Z: 6}
	up := common.Vec3{Y: 1}

	r := NewCameraRig(WithInitialView(eye, target, up))
	assert.Equal(t, eye, r.Eye())
	assert.Equal(t, target, r.Target())
	assert.Equal(t, up, r.UpVector())
}
