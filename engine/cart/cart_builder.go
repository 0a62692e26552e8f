package cart

import (
	"github.com/vamsipaul1/Python-Project-Rollercoaster/common"
	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/track"
)

// CartBuilderOption is a functional option for configuring a Cart.
type CartBuilderOption func(*cartImpl)

// WithTrack sets the track the cart rides. Required.
//
// Parameters:
//   - trk: the track to attach
//
// Returns:
//   - CartBuilderOption: functional option to set the track
func WithTrack(trk track.Track) CartBuilderOption {
	return func(c *cartImpl) {
		c.trk = trk
	}
}

// WithUpHint sets the reference up direction used to seat the orientation
// frame. Defaults to world +Y.
//
// Parameters:
//   - up: the approximate up direction
//
// Returns:
//   - CartBuilderOption: functional option to set the up hint
func WithUpHint(up common.Vec3) CartBuilderOption {
	return func(c *cartImpl) {
		c.upHint = up
	}
}
