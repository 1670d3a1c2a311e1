package texture

import "sync"

// WrapMode controls how texture coordinates outside [0, 1] are resolved.
type WrapMode int

const (
	// WrapClampToEdge clamps coordinates to the edge texels. This is the default.
	WrapClampToEdge WrapMode = iota

	// WrapRepeat tiles the texture.
	WrapRepeat

	// WrapMirroredRepeat tiles the texture, mirroring every other tile.
	WrapMirroredRepeat
)

// ColorSpace identifies how texel values are encoded.
type ColorSpace int

const (
	// ColorSpaceLinear marks data textures (normals, roughness, displacement).
	ColorSpaceLinear ColorSpace = iota

	// ColorSpaceSRGB marks color textures that must be decoded to linear on sampling.
	ColorSpaceSRGB
)

// textureImpl is the implementation of the Texture interface.
type textureImpl struct {
	mu         sync.RWMutex
	id         string
	width      int
	height     int
	pixels     []byte
	fallback   bool
	repeat     [2]float32
	wrap       [2]WrapMode
	colorSpace ColorSpace
}

// Texture defines the interface for a decoded image handle along with its
// sampling configuration.
//
// Pixel data is immutable after decoding. Sampling parameters (repeat, wrap,
// color space) are configured once when a material binds the texture, and
// read by the renderer when building samplers.
type Texture interface {
	// ID returns the asset identifier the texture was loaded from.
	//
	// Returns:
	//   - string: the asset identifier
	ID() string

	// Width returns the texture width in texels.
	//
	// Returns:
	//   - int: the width
	Width() int

	// Height returns the texture height in texels.
	//
	// Returns:
	//   - int: the height
	Height() int

	// Pixels returns the tightly packed RGBA8 texel data, row-major from the top row.
	//
	// Returns:
	//   - []byte: width*height*4 bytes
	Pixels() []byte

	// Fallback reports whether this texture is the placeholder substituted for an
	// asset that failed to load.
	//
	// Returns:
	//   - bool: true for a placeholder texture
	Fallback() bool

	// Repeat returns the UV repeat factors.
	//
	// Returns:
	//   - [2]float32: repeat along U and V
	Repeat() [2]float32

	// SetRepeat sets the UV repeat factors.
	//
	// Parameters:
	//   - u, v: repeat along U and V
	SetRepeat(u, v float32)

	// Wrap returns the wrap modes along S and T.
	//
	// Returns:
	//   - WrapMode: wrap mode along S
	//   - WrapMode: wrap mode along T
	Wrap() (WrapMode, WrapMode)

	// SetWrap sets the wrap modes along S and T.
	//
	// Parameters:
	//   - s: wrap mode along S (U)
	//   - t: wrap mode along T (V)
	SetWrap(s, t WrapMode)

	// ColorSpace returns the color space of the texel data.
	//
	// Returns:
	//   - ColorSpace: linear or sRGB
	ColorSpace() ColorSpace

	// SetColorSpace sets the color space of the texel data.
	//
	// Parameters:
	//   - cs: the color space
	SetColorSpace(cs ColorSpace)
}

var _ Texture = &textureImpl{}

// NewTexture creates a Texture over already decoded RGBA8 pixel data.
//
// Parameters:
//   - id: the asset identifier
//   - width, height: dimensions in texels
//   - pixels: width*height*4 bytes of RGBA8 data
//
// Returns:
//   - Texture: the new texture, clamp-to-edge with repeat (1, 1) in linear space
func NewTexture(id string, width, height int, pixels []byte) Texture {
	return &textureImpl{
		id:     id,
		width:  width,
		height: height,
		pixels: pixels,
		repeat: [2]float32{1, 1},
	}
}

// newFallback creates the 1x1 placeholder texture substituted for failed loads.
func newFallback(id string, rgba [4]byte) *textureImpl {
	return &textureImpl{
		id:       id,
		width:    1,
		height:   1,
		pixels:   []byte{rgba[0], rgba[1], rgba[2], rgba[3]},
		fallback: true,
		repeat:   [2]float32{1, 1},
	}
}

func (t *textureImpl) ID() string {
	return t.id
}

func (t *textureImpl) Width() int {
	return t.width
}

func (t *textureImpl) Height() int {
	return t.height
}

func (t *textureImpl) Pixels() []byte {
	return t.pixels
}

func (t *textureImpl) Fallback() bool {
	return t.fallback
}

func (t *textureImpl) Repeat() [2]float32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.repeat
}

func (t *textureImpl) SetRepeat(u, v float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.repeat = [2]float32{u, v}
}

func (t *textureImpl) Wrap() (WrapMode, WrapMode) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.wrap[0], t.wrap[1]
}

func (t *textureImpl) SetWrap(s, tm WrapMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wrap = [2]WrapMode{s, tm}
}

func (t *textureImpl) ColorSpace() ColorSpace {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.colorSpace
}

func (t *textureImpl) SetColorSpace(cs ColorSpace) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.colorSpace = cs
}
