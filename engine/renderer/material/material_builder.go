package material

import (
	"github.com/Carmen-Shannon/oxy-haunted/engine/texture"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the albedo RGBA color of the material.
//
// Parameters:
//   - color: the base color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithMetalness is an option builder that sets the metalness factor of the material.
//
// Parameters:
//   - metalness: the metalness factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metalness option to a material
func WithMetalness(metalness float32) MaterialBuilderOption {
	return func(m *material) {
		m.metalness = metalness
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.roughness = roughness
	}
}

// WithTexture is an option builder that binds a texture to a slot. A nil
// texture clears the slot.
//
// Parameters:
//   - slot: the binding point
//   - tex: the texture to bind
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture option to a material
func WithTexture(slot Slot, tex texture.Texture) MaterialBuilderOption {
	return func(m *material) {
		if slot < 0 || slot >= slotCount {
			return
		}
		m.textures[slot] = tex
	}
}

// WithARMTexture is an option builder that binds a packed ambient occlusion /
// roughness / metalness texture to all three slots it feeds.
//
// Parameters:
//   - tex: the packed ARM texture
//
// Returns:
//   - MaterialBuilderOption: a function that applies the ARM texture option to a material
func WithARMTexture(tex texture.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.textures[SlotAmbientOcclusion] = tex
		m.textures[SlotRoughness] = tex
		m.textures[SlotMetalness] = tex
	}
}

// WithDisplacement is an option builder that sets the displacement scale and bias.
//
// Parameters:
//   - scale: world-space scale applied to the displacement map
//   - bias: world-space offset applied after scaling
//
// Returns:
//   - MaterialBuilderOption: a function that applies the displacement option to a material
func WithDisplacement(scale, bias float32) MaterialBuilderOption {
	return func(m *material) {
		m.displacementScale = scale
		m.displacementBias = bias
	}
}

// WithTransparent is an option builder that enables alpha blending.
//
// Parameters:
//   - transparent: true to alpha blend
//
// Returns:
//   - MaterialBuilderOption: a function that applies the transparency option to a material
func WithTransparent(transparent bool) MaterialBuilderOption {
	return func(m *material) {
		m.transparent = transparent
	}
}

// WithSide is an option builder that selects which faces are rasterized.
//
// Parameters:
//   - side: front, back, or double
//
// Returns:
//   - MaterialBuilderOption: a function that applies the side option to a material
func WithSide(side Side) MaterialBuilderOption {
	return func(m *material) {
		m.side = side
	}
}

// WithSky is an option builder that turns the material into a sky dome shaded
// by analytic atmospheric scattering. Sky materials render their back faces.
//
// Parameters:
//   - params: the scattering parameters
//
// Returns:
//   - MaterialBuilderOption: a function that applies the sky option to a material
func WithSky(params SkyParameters) MaterialBuilderOption {
	return func(m *material) {
		p := params
		m.sky = &p
		m.side = SideBack
	}
}
