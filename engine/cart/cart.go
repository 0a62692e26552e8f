package cart

import (
	"sync"

	"github.com/vamsipaul1/Python-Project-Rollercoaster/common"
	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/track"
)

// cartImpl is the single implementation of Cart.
type cartImpl struct {
	mu *sync.Mutex

	trk    track.Track
	upHint common.Vec3

	sample track.Sample
	frame  common.Frame
}

// Cart is the vehicle riding the track. Each Update it samples the track at the
// clock's parameter and rebuilds its orientation frame from the tangent and the
// configured up hint. The frame is reorthogonalized on every update and never
// carried across updates, since the tangent moves continuously.
type Cart interface {
	// Update samples the track at parameter t and rebuilds the orientation
	// frame. This is the single mutation point; call it once per tick.
	//
	// Parameters:
	//   - t: the path parameter from the animation clock
	Update(t float32)

	// Position returns the cart's world position from the latest Update.
	//
	// Returns:
	//   - common.Vec3: the current position
	Position() common.Vec3

	// Frame returns the cart's right/up/forward orientation basis from the
	// latest Update.
	//
	// Returns:
	//   - common.Frame: the current orthonormal frame
	Frame() common.Frame

	// Sample returns the full track sample (position, tangent, curvature) from
	// the latest Update.
	//
	// Returns:
	//   - track.Sample: the current sample
	Sample() track.Sample

	// ModelMatrix returns a column-major 4x4 matrix placing cart-local geometry
	// in the world: basis columns are right, up, and forward with the position
	// in the translation column. Ready for a renderer's model transform.
	//
	// Returns:
	//   - [16]float32: the model matrix
	ModelMatrix() [16]float32

	// Track returns the track the cart rides.
	//
	// Returns:
	//   - track.Track: the attached track
	Track() track.Track
}

var _ Cart = &cartImpl{}

// NewCart creates a Cart on the given track. A track is required; NewCart
// panics when none is supplied. The initial state is the sample at t = 0.
//
// Parameters:
//   - options: functional options to configure the cart
//
// Returns:
//   - Cart: the newly created cart
func NewCart(options ...CartBuilderOption) Cart {
	c := &cartImpl{
		mu:     &sync.Mutex{},
		upHint: common.Vec3{Y: 1},
	}
	for _, option := range options {
		option(c)
	}
	if c.trk == nil {
		panic("cart: NewCart requires a non-nil Track")
	}
	c.update(0)
	return c
}

// update samples the track and rebuilds the frame. Caller must hold the mutex
// (or, during construction, have exclusive access).
func (c *cartImpl) update(t float32) {
	c.sample = c.trk.SampleAt(t)
	c.frame = common.Reorthogonalize(c.sample.Tangent, c.upHint)
}

func (c *cartImpl) Update(t float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.update(t)
}

func (c *cartImpl) Position() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sample.Position
}

func (c *cartImpl) Frame() common.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

func (c *cartImpl) Sample() track.Sample {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sample
}

func (c *cartImpl) ModelMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := c.frame
	p := c.sample.Position
	return [16]float32{
		f.Right.X, f.Right.Y, f.Right.Z, 0,
		f.Up.X, f.Up.Y, f.Up.Z, 0,
		f.Forward.X, f.Forward.Y, f.Forward.Z, 0,
		p.X, p.Y, p.Z, 1,
	}
}

func (c *cartImpl) Track() track.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trk
}
