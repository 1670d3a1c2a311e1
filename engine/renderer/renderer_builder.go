package renderer

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4; higher values are adapter-dependent.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the WGPU backend.
// When not specified, the default is MSAA4x.
//
// Parameters:
//   - count: MSAAOff or MSAA4x
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingMSAA = &count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithSize overrides the initial surface size.
//
// Parameters:
//   - width, height: the size in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the size option to a renderer
func WithSize(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.width, r.height = width, height
	}
}

// WithBackend supplies a ready-made backend, bypassing backend creation.
//
// Parameters:
//   - b: the backend to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(b RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = b
	}
}
