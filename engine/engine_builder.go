package engine

import (
	"github.com/Carmen-Shannon/oxy-haunted/engine/camera"
	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer"
	"github.com/Carmen-Shannon/oxy-haunted/engine/scene"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables profiling output.
//
// Parameters:
//   - enabled: true to log profiler reports
//
// Returns:
//   - EngineBuilderOption: functional option to set profiling
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the loop rate in ticks per second.
//
// Parameters:
//   - fps: target ticks per second (defaults to 60 if <= 0)
//
// Returns:
//   - EngineBuilderOption: functional option to set the tick rate
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickInterval(fps)
	}
}

// WithTickCallback registers the function called each tick.
//
// Parameters:
//   - callback: the tick callback
//
// Returns:
//   - EngineBuilderOption: functional option to set the callback
func WithTickCallback(callback TickCallback) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}

// WithScene sets the scene the engine drives.
//
// Parameters:
//   - s: the scene
//
// Returns:
//   - EngineBuilderOption: functional option to set the scene
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithCamera sets the camera the scene is rendered through.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: functional option to set the camera
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithRenderer sets the renderer called at the end of each tick.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: functional option to set the renderer
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}
