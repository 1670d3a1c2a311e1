package engine

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-haunted/engine/camera"
	"github.com/Carmen-Shannon/oxy-haunted/engine/profiler"
	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer"
	"github.com/Carmen-Shannon/oxy-haunted/engine/scene"
)

// State is the lifecycle state of an Engine.
type State int

const (
	// StateStopped is the initial state, and the state after Stop.
	StateStopped State = iota
	// StateRunning means the frame loop goroutine is ticking.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	default:
		return "stopped"
	}
}

var (
	// ErrAlreadyRunning is returned by Start while the loop is running.
	ErrAlreadyRunning = errors.New("engine: already running")

	// ErrTickInProgress is returned by Tick when another tick has not finished.
	ErrTickInProgress = errors.New("engine: tick already in progress")
)

// TickCallback is called once per tick with the animation clock and the
// delta that advanced it, both in seconds.
type TickCallback func(elapsed, dt float64)

// engine implements the Engine interface.
type engine struct {
	mu *sync.Mutex

	tickMu sync.Mutex // held for the duration of a tick

	state       State
	wg          sync.WaitGroup
	quitChannel chan struct{}
	quitOnce    *sync.Once // Ensures quitChannel is only closed once per run

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates
	engineTickRate  time.Duration
	tickCallback    TickCallback

	clock Clock

	scene    scene.Scene
	camera   camera.Camera
	renderer renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool
}

// Engine drives the per-frame step of a scene: it advances the animation clock,
// runs the tick callback, reconciles camera input and renders.
//
// Start arms a ticker-driven loop on its own goroutine; Tick can also be called
// directly when the host owns the frame loop. Ticks never overlap.
type Engine interface {
	// Start launches the frame loop.
	//
	// Returns:
	//   - error: ErrAlreadyRunning if the loop is already running
	Start() error

	// Stop cancels the loop and waits for the in-flight tick to finish.
	// Safe to call multiple times and when never started. Must not be called
	// from the tick callback.
	Stop()

	// State returns the lifecycle state.
	State() State

	// Tick runs one frame step: clock, tick callback, camera, render,
	// profiler. Negative deltas leave the clock unchanged.
	//
	// Parameters:
	//   - dt: seconds since the previous tick
	//
	// Returns:
	//   - error: ErrTickInProgress on re-entry, or the wrapped render error
	Tick(dt float64) error

	// Elapsed returns the animation clock in seconds.
	Elapsed() float64

	// SetTickRate sets the loop rate in ticks per second.
	// If the engine is running, the change takes effect on the next tick.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// TickRate returns the loop interval.
	TickRate() time.Duration

	// SetTickCallback registers the function called each tick.
	//
	// Parameters:
	//   - callback: the callback, nil to clear
	SetTickCallback(callback TickCallback)

	// Scene returns the scene being driven, or nil.
	Scene() scene.Scene

	// Camera returns the camera the scene is viewed through, or nil.
	Camera() camera.Camera

	// Renderer returns the renderer, or nil.
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()
}

var _ Engine = &engine{}

// NewEngine creates a stopped Engine with the provided options. The tick rate
// defaults to 60 per second.
//
// Parameters:
//   - options: functional options for engine configuration (scene, camera, renderer, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:              &sync.Mutex{},
		state:           StateStopped,
		tickRateChannel: make(chan time.Duration, 1),
		engineTickRate:  time.Second / 60,
		profiler:        profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateRunning {
		return ErrAlreadyRunning
	}

	// Drain a stale rate change left from a previous run; the field already holds it.
	select {
	case <-e.tickRateChannel:
	default:
	}

	e.quitChannel = make(chan struct{})
	e.quitOnce = &sync.Once{}
	e.state = StateRunning

	e.wg.Add(1)
	go e.handleEngine(e.quitChannel, e.engineTickRate)
	return nil
}

func (e *engine) Stop() {
	e.signalQuit()
	e.wg.Wait()
}

// signalQuit closes the quit channel of the current run and marks the engine
// stopped. Safe to call from the loop goroutine.
func (e *engine) signalQuit() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return
	}
	e.state = StateStopped
	quit, once := e.quitChannel, e.quitOnce
	once.Do(func() {
		close(quit)
	})
}

func (e *engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Listens for dynamic rate changes via tickRateChannel. Exits when quit is closed.
// Recovers from panics to avoid crashing the process and stops the engine on recovery.
func (e *engine) handleEngine(quit <-chan struct{}, rate time.Duration) {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] tick goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	// GPU submission stays on one OS thread for the lifetime of the loop.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-quit:
			return
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			if err := e.Tick(dt); err != nil && !errors.Is(err, ErrTickInProgress) {
				log.Printf("[Engine] tick failed: %v", err)
			}
		}
	}
}

func (e *engine) Tick(dt float64) error {
	if !e.tickMu.TryLock() {
		return ErrTickInProgress
	}
	defer e.tickMu.Unlock()

	if !validDelta(dt) {
		dt = 0
	}
	elapsed := e.clock.Advance(dt)

	e.mu.Lock()
	callback := e.tickCallback
	s, cam, r := e.scene, e.camera, e.renderer
	profiling := e.profilingEnabled
	e.mu.Unlock()

	if callback != nil {
		callback(elapsed, dt)
	}

	if cam != nil {
		if ctrl := cam.Controller(); ctrl != nil {
			ctrl.Update()
		}
		cam.Update()
	}

	var renderErr error
	if r != nil && s != nil && cam != nil {
		if err := r.Render(s, cam); err != nil {
			renderErr = fmt.Errorf("render at %.3fs: %w", elapsed, err)
		}
	}

	if profiling && e.profiler != nil {
		e.profiler.Tick(elapsed)
	}

	return renderErr
}

func (e *engine) Elapsed() float64 {
	return e.clock.Elapsed()
}

func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.engineTickRate = newRate
	if e.state != StateRunning {
		return
	}
	// Non-blocking send; replace a pending value the loop has not picked up.
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

func (e *engine) TickRate() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.engineTickRate
}

func (e *engine) SetTickCallback(callback TickCallback) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) Scene() scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scene
}

func (e *engine) Camera() camera.Camera {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.camera
}

func (e *engine) Renderer() renderer.Renderer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.renderer
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
