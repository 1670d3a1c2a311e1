package renderer

import (
	"sync"
)

// HeadlessBackend is a RendererBackend that keeps submitted frames in memory.
type HeadlessBackend struct {
	mu *sync.Mutex

	width       int
	height      int
	presentMode PresentMode
	configured  int
	submitted   int
	last        *Frame
	released    bool
}

var _ RendererBackend = &HeadlessBackend{}

// NewHeadlessBackend creates an empty headless backend.
//
// Returns:
//   - *HeadlessBackend: the backend
func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{mu: &sync.Mutex{}, presentMode: PresentModeUncapped}
}

func (b *HeadlessBackend) ConfigureSurface(width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = width, height
	b.configured++
	return nil
}

func (b *HeadlessBackend) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.presentMode = mode
}

func (b *HeadlessBackend) SubmitFrame(f *Frame) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return ErrReleased
	}
	b.submitted++
	b.last = f
	return nil
}

func (b *HeadlessBackend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.released = true
	b.last = nil
}

// Size returns the last configured surface size.
func (b *HeadlessBackend) Size() (width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// Configured returns how many times the surface has been configured.
func (b *HeadlessBackend) Configured() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.configured
}

// Submitted returns how many frames have been submitted.
func (b *HeadlessBackend) Submitted() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.submitted
}

// Last returns the most recent frame, or nil.
func (b *HeadlessBackend) Last() *Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// PresentMode returns the last present mode set.
func (b *HeadlessBackend) PresentMode() PresentMode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.presentMode
}

// Released reports whether Release has been called.
func (b *HeadlessBackend) Released() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released
}
