// Command coaster is a wireframe viewer for the roller coaster simulation.
// The engine tick loop drives the animation clock, track sampling, cart frame,
// and camera rig; ebiten projects the track and cart through the camera's
// view-projection matrix and handles keyboard input.
package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vamsipaul1/Python-Project-Rollercoaster/common"
	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine"
	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/animator"
	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/camera"
	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/cart"
	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/track"
)

const (
	screenWidth  = 1280
	screenHeight = 800
	tickRate     = 60.0

	// trackSamples is the polyline resolution for the drawn track.
	trackSamples = 300

	// railOffset is the half-gauge of the two drawn rails.
	railOffset = 0.4

	// Cart half-extents, elongated along the travel direction.
	cartHalfLength = 0.45
	cartHalfHeight = 0.24
	cartHalfWidth  = 0.3

	// freeMoveSpeed and freeLookSpeed drive free-fly input, per second.
	freeMoveSpeed = 8.0
	freeLookSpeed = 1.5
)

var modeKeys = map[ebiten.Key]camera.Mode{
	ebiten.Key1: camera.ModeChase,
	ebiten.Key2: camera.ModeCockpit,
	ebiten.Key3: camera.ModeCinematic,
	ebiten.Key4: camera.ModeOrbit,
	ebiten.Key5: camera.ModeFlyby,
	ebiten.Key6: camera.ModeFreeFly,
}

var (
	skyColor   = color.RGBA{R: 0x12, G: 0x1a, B: 0x2b, A: 0xff}
	trackColor = color.RGBA{R: 0x8a, G: 0x8f, B: 0x98, A: 0xff}
	railColor  = color.RGBA{R: 0xc8, G: 0x50, B: 0x3c, A: 0xff}
	cartColor  = color.RGBA{R: 0xff, G: 0x4d, B: 0x4d, A: 0xff}
)

// segment is a precomputed world-space line to stroke each frame.
type segment struct {
	a, b common.Vec3
	clr  color.Color
}

type game struct {
	eng  engine.Engine
	anim animator.Animator
	crt  cart.Cart
	rig  camera.CameraRig
	cam  camera.Camera

	static []segment // track centerline, rails, and cross ties
}

// buildStaticGeometry samples the track once and precomputes the centerline,
// the two rails offset along each sample's right axis, and periodic cross
// ties. The track is immutable so this never needs refreshing.
func buildStaticGeometry(trk track.Track) []segment {
	centers := make([]common.Vec3, trackSamples+1)
	lefts := make([]common.Vec3, trackSamples+1)
	rights := make([]common.Vec3, trackSamples+1)

	for i := 0; i <= trackSamples; i++ {
		t := float32(i) / trackSamples
		s := trk.SampleAt(t)
		f := common.Reorthogonalize(s.Tangent, common.Vec3{Y: 1})
		centers[i] = s.Position
		lefts[i] = s.Position.Sub(f.Right.Scale(railOffset))
		rights[i] = s.Position.Add(f.Right.Scale(railOffset))
	}

	segs := make([]segment, 0, 4*trackSamples)
	for i := 0; i < trackSamples; i++ {
		segs = append(segs,
			segment{centers[i], centers[i+1], trackColor},
			segment{lefts[i], lefts[i+1], railColor},
			segment{rights[i], rights[i+1], railColor},
		)
		if i%10 == 0 {
			segs = append(segs, segment{lefts[i], rights[i], trackColor})
		}
	}
	return segs
}

// project maps a world point through the view-projection matrix to screen
// coordinates. Returns ok=false for points at or behind the eye plane.
func project(vp *[16]float32, p common.Vec3) (x, y float32, ok bool) {
	w := vp[3]*p.X + vp[7]*p.Y + vp[11]*p.Z + vp[15]
	if w < 1e-4 {
		return 0, 0, false
	}
	cx := (vp[0]*p.X + vp[4]*p.Y + vp[8]*p.Z + vp[12]) / w
	cy := (vp[1]*p.X + vp[5]*p.Y + vp[9]*p.Z + vp[13]) / w

	return (cx + 1) / 2 * screenWidth, (1 - cy) / 2 * screenHeight, true
}

func strokeSegment(screen *ebiten.Image, vp *[16]float32, s segment) {
	x0, y0, ok0 := project(vp, s.a)
	x1, y1, ok1 := project(vp, s.b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, s.clr, true)
}

// cartSegments builds the cart's wireframe box edges from its model matrix.
func cartSegments(m [16]float32) []segment {
	toWorld := func(lx, ly, lz float32) common.Vec3 {
		return common.Vec3{
			X: m[0]*lx + m[4]*ly + m[8]*lz + m[12],
			Y: m[1]*lx + m[5]*ly + m[9]*lz + m[13],
			Z: m[2]*lx + m[6]*ly + m[10]*lz + m[14],
		}
	}

	// Eight corners: bit 0 = right, bit 1 = up, bit 2 = forward.
	var corners [8]common.Vec3
	for i := range corners {
		sx, sy, sz := float32(-1), float32(-1), float32(-1)
		if i&1 != 0 {
			sx = 1
		}
		if i&2 != 0 {
			sy = 1
		}
		if i&4 != 0 {
			sz = 1
		}
		corners[i] = toWorld(sx*cartHalfWidth, sy*cartHalfHeight, sz*cartHalfLength)
	}

	edges := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	segs := make([]segment, 0, len(edges))
	for _, e := range edges {
		segs = append(segs, segment{corners[e[0]], corners[e[1]], cartColor})
	}
	return segs
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.anim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.anim.IncreaseSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.anim.DecreaseSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.rig.CycleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if g.rig.Smoothing() == camera.SmoothingExponential {
			g.rig.SetSmoothing(camera.SmoothingEased)
		} else {
			g.rig.SetSmoothing(camera.SmoothingExponential)
		}
	}

	for key, mode := range modeKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.rig.SetMode(mode)
		}
	}

	if g.rig.Mode() == camera.ModeFreeFly {
		g.handleFreeFly(1.0 / tickRate)
	}
	return nil
}

// handleFreeFly applies WASD translation and arrow-key look to the rig.
func (g *game) handleFreeFly(dt float32) {
	var fwd, right, up float32
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		fwd += freeMoveSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		fwd -= freeMoveSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		right += freeMoveSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		right -= freeMoveSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		up += freeMoveSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		up -= freeMoveSpeed * dt
	}
	if fwd != 0 || right != 0 || up != 0 {
		g.rig.FreeMove(fwd, right, up)
	}

	yaw, pitch := g.rig.FreeLook()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		yaw += freeLookSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		yaw -= freeLookSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pitch += freeLookSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pitch -= freeLookSpeed * dt
	}
	g.rig.SetFreeLook(yaw, pitch)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	vp := g.cam.ViewProjectionMatrix()
	for _, s := range g.static {
		strokeSegment(screen, &vp, s)
	}
	for _, s := range cartSegments(g.crt.ModelMatrix()) {
		strokeSegment(screen, &vp, s)
	}

	state := "RUNNING"
	if g.anim.Paused() {
		state = "PAUSED"
	}
	sample := g.crt.Sample()
	hud := fmt.Sprintf(
		"Speed: %.3f | Camera: %s | %s\nt: %.3f | curvature: %.3f\n"+
			"Space pause  +/- speed  1-6 camera  C cycle  T smoothing  Esc quit\n"+
			"Free-fly: WASD/QE move, arrows look",
		g.anim.Speed(), g.rig.Mode(), state, g.anim.T(), sample.Curvature,
	)
	ebitenutil.DebugPrint(screen, hud)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	trk := track.NewTrack()
	anim := animator.NewAnimator()
	crt := cart.NewCart(cart.WithTrack(trk))
	rig := camera.NewCameraRig()
	cam := camera.NewCamera(
		camera.WithFov(float32(60.0*math.Pi/180.0)),
		camera.WithAspect(float32(screenWidth)/float32(screenHeight)),
		camera.WithNear(0.1),
		camera.WithFar(500),
		camera.WithRig(rig),
	)

	g := &game{
		anim:   anim,
		crt:    crt,
		rig:    rig,
		cam:    cam,
		static: buildStaticGeometry(trk),
	}

	g.eng = engine.NewEngine(
		engine.WithTickRate(tickRate),
		engine.WithTickCallback(func(dt float32) {
			anim.Tick(dt)
			t := anim.T()
			crt.Update(t)
			rig.Update(crt.Sample(), crt.Frame(), t, dt)
			cam.Update()
		}),
	)
	g.eng.Start()
	defer func() {
		g.eng.Quit()
		g.eng.Wait()
	}()

	log.Printf("track length: %.2f units over %d segments", trk.Length(0), trk.SegmentCount())

	ebiten.SetWindowTitle("Roller Coaster")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetTPS(tickRate)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
