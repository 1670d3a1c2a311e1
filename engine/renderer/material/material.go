package material

import (
	"github.com/Carmen-Shannon/oxy-haunted/engine/texture"
)

// Slot names a texture binding point of a standard material.
type Slot int

const (
	SlotColor Slot = iota
	SlotAlpha
	SlotAmbientOcclusion
	SlotRoughness
	SlotMetalness
	SlotNormal
	SlotDisplacement

	slotCount
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotColor:
		return "color"
	case SlotAlpha:
		return "alpha"
	case SlotAmbientOcclusion:
		return "ambientOcclusion"
	case SlotRoughness:
		return "roughness"
	case SlotMetalness:
		return "metalness"
	case SlotNormal:
		return "normal"
	case SlotDisplacement:
		return "displacement"
	default:
		return "unknown"
	}
}

// Slots returns every texture slot in binding order.
func Slots() []Slot {
	out := make([]Slot, 0, slotCount)
	for s := Slot(0); s < slotCount; s++ {
		out = append(out, s)
	}
	return out
}

// Side selects which faces of a mesh are rasterized.
type Side int

const (
	SideFront Side = iota
	SideBack
	SideDouble
)

// SkyParameters configures the analytic atmospheric scattering of a sky dome material.
type SkyParameters struct {
	Turbidity       float32
	Rayleigh        float32
	MieCoefficient  float32
	MieDirectionalG float32
	SunPosition     [3]float32
}

// material is the implementation of the Material interface.
type material struct {
	name              string
	baseColor         [4]float32
	metalness         float32
	roughness         float32
	textures          [slotCount]texture.Texture
	displacementScale float32
	displacementBias  float32
	transparent       bool
	side              Side
	sky               *SkyParameters
}

// Material defines the interface for a physically based surface description,
// encapsulating scalar factors, bound textures, and blend state needed for draw calls.
//
// Materials are built once when the scene is assembled and are read-only
// through this interface.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the albedo RGBA color multiplied with the color map.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// Metalness retrieves the metalness factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metalness factor
	Metalness() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// Texture retrieves the texture bound to a slot, or nil if none is set.
	//
	// Parameters:
	//   - slot: the binding point
	//
	// Returns:
	//   - texture.Texture: the bound texture, or nil
	Texture(slot Slot) texture.Texture

	// DisplacementScale retrieves the world-space scale applied to the displacement map.
	//
	// Returns:
	//   - float32: the displacement scale
	DisplacementScale() float32

	// DisplacementBias retrieves the world-space offset applied after displacement scaling.
	//
	// Returns:
	//   - float32: the displacement bias
	DisplacementBias() float32

	// Transparent reports whether the material is alpha blended.
	//
	// Returns:
	//   - bool: true if transparent
	Transparent() bool

	// Side retrieves which faces are rasterized.
	//
	// Returns:
	//   - Side: front, back, or double
	Side() Side

	// Sky retrieves the sky scattering parameters, or nil for a surface material.
	//
	// Returns:
	//   - *SkyParameters: the sky parameters, or nil
	Sky() *SkyParameters
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor: [4]float32{1, 1, 1, 1},
		metalness: 0.0,
		roughness: 1.0,
		side:      SideFront,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Default returns the untextured fallback material used for surfaces whose
// assets failed to load.
//
// Returns:
//   - Material: a white, fully rough dielectric material
func Default() Material {
	return NewMaterial(WithName("default"))
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) Metalness() float32 {
	return m.metalness
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) Texture(slot Slot) texture.Texture {
	if slot < 0 || slot >= slotCount {
		return nil
	}
	return m.textures[slot]
}

func (m *material) DisplacementScale() float32 {
	return m.displacementScale
}

func (m *material) DisplacementBias() float32 {
	return m.displacementBias
}

func (m *material) Transparent() bool {
	return m.transparent
}

func (m *material) Side() Side {
	return m.side
}

func (m *material) Sky() *SkyParameters {
	return m.sky
}
