package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-haunted/common"
	"github.com/Carmen-Shannon/oxy-haunted/engine/camera"
	"github.com/Carmen-Shannon/oxy-haunted/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNoSurface is returned when a GPU backend is requested without a surface.
var ErrNoSurface = errors.New("renderer: no surface to render to")

// ErrReleased is returned by Render after Release.
var ErrReleased = errors.New("renderer: released")

// Surface is the host window area a GPU backend presents into.
type Surface interface {
	// SurfaceDescriptor returns the platform surface descriptor.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	// Width returns the drawable width in pixels.
	Width() int
	// Height returns the drawable height in pixels.
	Height() int
}

type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width  int
	height int

	frames    uint64
	lastFrame *Frame
	released  bool

	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Renderer draws a scene through a camera once per call to Render.
//
// The renderer flattens the scene into a Frame on the caller's goroutine and
// hands it to its backend. A zero-sized surface (a minimized window) skips
// drawing without error.
type Renderer interface {
	// Render draws one frame.
	//
	// Parameters:
	//   - s: the scene to draw
	//   - cam: the camera to draw it through
	//
	// Returns:
	//   - error: backend error wrapped with the frame index, or ErrReleased
	Render(s scene.Scene, cam camera.Camera) error

	// Resize reconfigures the surface. Non-positive sizes pause drawing until
	// the next positive Resize.
	//
	// Parameters:
	//   - width, height: the new surface size in pixels
	Resize(width, height int)

	// Size returns the current surface size.
	//
	// Returns:
	//   - width, height: the size in pixels
	Size() (width, height int)

	// SetPresentMode changes the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the present mode
	SetPresentMode(mode PresentMode)

	// FrameCount returns the number of frames submitted successfully.
	FrameCount() uint64

	// LastFrame returns the most recently submitted frame, or nil.
	LastFrame() *Frame

	// Release frees the backend. Further Render calls fail with ErrReleased.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given backend type.
//
// The WGPU backend requires a surface, and takes its initial size from it.
// The headless backend ignores the surface; its size comes from WithSize or
// the surface when one is given.
//
// Parameters:
//   - backendType: the backend to create
//   - surface: the host surface, may be nil for BackendTypeHeadless
//   - options: variadic list of RendererBuilderOption functions
//
// Returns:
//   - Renderer: the renderer
//   - error: ErrNoSurface, or the backend initialization error
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	for _, opt := range options {
		opt(r)
	}

	if surface != nil {
		r.width = common.Coalesce(r.width, surface.Width())
		r.height = common.Coalesce(r.height, surface.Height())
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	if r.backend == nil {
		switch backendType {
		case BackendTypeHeadless:
			r.backend = NewHeadlessBackend()
		case BackendTypeWGPU:
			fallthrough
		default:
			if surface == nil {
				return nil, ErrNoSurface
			}
			b, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
			if err != nil {
				return nil, fmt.Errorf("failed to create wgpu backend: %w", err)
			}
			r.backend = b
		}
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	if r.width > 0 && r.height > 0 {
		if err := r.backend.ConfigureSurface(r.width, r.height); err != nil {
			r.backend.Release()
			return nil, fmt.Errorf("failed to configure surface: %w", err)
		}
	}
	return r, nil
}

func (r *renderer) Render(s scene.Scene, cam camera.Camera) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return ErrReleased
	}
	if r.width <= 0 || r.height <= 0 {
		return nil
	}

	f := BuildFrame(s, cam, r.width, r.height)
	f.Index = r.frames + 1
	if err := r.backend.SubmitFrame(f); err != nil {
		return fmt.Errorf("frame %d: %w", f.Index, err)
	}
	r.frames++
	r.lastFrame = f
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	if width <= 0 || height <= 0 {
		r.width, r.height = 0, 0
		return
	}
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		log.Printf("[Renderer] resize to %dx%d failed: %v", width, height, err)
		r.width, r.height = 0, 0
		return
	}
	r.width, r.height = width, height
}

func (r *renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	r.backend.SetPresentMode(mode)
	if r.width > 0 && r.height > 0 {
		if err := r.backend.ConfigureSurface(r.width, r.height); err != nil {
			log.Printf("[Renderer] present mode change failed: %v", err)
		}
	}
}

func (r *renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *renderer) LastFrame() *Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastFrame
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	r.released = true
	r.backend.Release()
}
