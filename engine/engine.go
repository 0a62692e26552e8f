package engine

import (
	"sync"
	"time"

	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/profiler"
)

// dtClampFactor caps the delta time handed to the tick callback at this
// multiple of the nominal tick interval. After a stall the simulation advances
// by at most one clamped step instead of replaying the missed time, so the
// cart never jumps down the track.
const dtClampFactor = 1.5

// engine implements the Engine interface.
// Runs the fixed-rate tick loop that drives the per-frame update chain:
// animation clock, track sampling, cart frame, camera rig.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	wg sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
	startOnce   sync.Once

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
}

// Engine owns the frame loop. Exactly one tick fires per interval; the tick
// callback is the single mutation point for all simulation state, receiving a
// wall-clock delta time clamped to avoid catch-up jumps after a stall.
type Engine interface {
	// Start launches the tick loop goroutine. Safe to call multiple times;
	// subsequent calls are no-ops.
	Start()

	// Quit signals the tick loop to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Wait blocks until the tick loop has exited after Quit.
	Wait()

	// SetTickRate sets the tick rate in ticks per second.
	// Takes effect immediately when the engine is running.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each tick with the clamped
	// delta time in seconds. Use it for the per-frame update chain.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate
	SetTickCallback(callback func(deltaTime float32))

	// EnableProfiler enables tick-rate and memory profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables profiling output.
	DisableProfiler()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (tick rate, callback, profiling)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Start() {
	e.startOnce.Do(func() {
		e.wg.Add(1)
		go e.handleTicks()
	})
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) Wait() {
	e.wg.Wait()
}

// handleTicks runs the fixed-rate tick loop in its own goroutine.
// Computes and clamps the delta time, fires the tick callback, and listens for
// dynamic rate changes via tickRateChannel. Exits when the quit channel closes.
func (e *engine) handleTicks() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			// Clamp stalls; a slow frame advances less precisely, it does not
			// replay missed frames.
			maxDt := dtClampFactor * float32(e.engineTickRate.Seconds())
			if dt > maxDt {
				dt = maxDt
			}

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// SetTickRate sets the tick rate in ticks per second.
// If the engine is running, the change takes effect on the next loop pass.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	// Non-blocking send - if the channel holds a pending value, replace it.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

// SetTickCallback registers the function called each tick.
// Must be set before Start; the callback is read without synchronization by
// the tick goroutine.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// EnableProfiler enables profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}
