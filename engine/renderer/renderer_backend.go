package renderer

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota

	// BackendTypeHeadless selects a backend that keeps frames in memory and
	// never touches a GPU. Used by tests and by headless runs.
	BackendTypeHeadless
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// RendererBackend consumes frame packets built by the Renderer.
type RendererBackend interface {
	// ConfigureSurface (re)creates size-dependent resources.
	//
	// Parameters:
	//   - width, height: the surface size in pixels, both positive
	//
	// Returns:
	//   - error: error if the surface could not be configured
	ConfigureSurface(width, height int) error

	// SetPresentMode changes the present mode used on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the present mode
	SetPresentMode(mode PresentMode)

	// SubmitFrame uploads and draws one frame.
	//
	// Parameters:
	//   - f: the frame to draw
	//
	// Returns:
	//   - error: error if the frame could not be drawn
	SubmitFrame(f *Frame) error

	// Release frees every resource held by the backend.
	Release()
}
