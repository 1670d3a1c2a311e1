package light

import (
	"math"

	"github.com/Carmen-Shannon/oxy-haunted/common"
)

// DefaultShadowMapSize is the default width and height in texels of a light's
// shadow depth texture.
const DefaultShadowMapSize = 512

// DefaultShadowHalfExtent is the default orthographic half-extent (in world units)
// of a directional light's shadow camera.
const DefaultShadowHalfExtent float32 = 5.0

// DefaultShadowNear is the default near plane of a shadow camera.
const DefaultShadowNear float32 = 0.5

// DefaultShadowFar is the default far plane of a shadow camera.
const DefaultShadowFar float32 = 500.0

// DefaultShadowBias is the constant depth bias applied to shadow comparisons
// to reduce shadow acne artifacts.
const DefaultShadowBias float32 = 0.0

// DefaultShadowNormalBiasScale is the multiplier applied to the shadow map
// texel world-size to compute the normal-offset bias. Typical values are 2.0–4.0.
const DefaultShadowNormalBiasScale float32 = 3.0

// ShadowProjection selects how a shadow camera projects the scene.
type ShadowProjection int

const (
	// ShadowProjectionOrthographic is used by directional lights.
	ShadowProjectionOrthographic ShadowProjection = iota

	// ShadowProjectionPerspective is used by point lights, one 90° face per cube side.
	ShadowProjectionPerspective
)

// Shadow holds the shadow camera and depth map configuration of a light.
type Shadow struct {
	MapWidth   int
	MapHeight  int
	Projection ShadowProjection

	// Orthographic bounds, used when Projection is ShadowProjectionOrthographic.
	Left, Right, Top, Bottom float32

	// FovDeg is the vertical field of view for perspective shadow cameras.
	FovDeg float32

	Near, Far  float32
	Bias       float32
	NormalBias float32
}

// DefaultShadow returns the default shadow configuration for a light type.
//
// Parameters:
//   - lightType: the type of the owning light
//
// Returns:
//   - Shadow: the default shadow configuration
func DefaultShadow(lightType LightType) Shadow {
	s := Shadow{
		MapWidth:  DefaultShadowMapSize,
		MapHeight: DefaultShadowMapSize,
		Near:      DefaultShadowNear,
		Far:       DefaultShadowFar,
		Bias:      DefaultShadowBias,
	}
	switch lightType {
	case LightTypePoint:
		s.Projection = ShadowProjectionPerspective
		s.FovDeg = 90
	default:
		s.Projection = ShadowProjectionOrthographic
		s.Left, s.Right = -DefaultShadowHalfExtent, DefaultShadowHalfExtent
		s.Top, s.Bottom = DefaultShadowHalfExtent, -DefaultShadowHalfExtent
	}
	return s
}

// TexelSize returns the size of one shadow map texel in UV space.
//
// Returns:
//   - [2]float32: (1/width, 1/height), zero for an unsized map
func (s *Shadow) TexelSize() [2]float32 {
	if s.MapWidth <= 0 || s.MapHeight <= 0 {
		return [2]float32{}
	}
	return [2]float32{1.0 / float32(s.MapWidth), 1.0 / float32(s.MapHeight)}
}

// ProjectionMatrix writes the shadow camera projection into out.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
func (s *Shadow) ProjectionMatrix(out []float32) {
	if s.Projection == ShadowProjectionPerspective {
		aspect := float32(1)
		if s.MapHeight > 0 {
			aspect = float32(s.MapWidth) / float32(s.MapHeight)
		}
		common.Perspective(out, s.FovDeg*math.Pi/180.0, aspect, s.Near, s.Far)
		return
	}
	common.Ortho(out, s.Left, s.Right, s.Bottom, s.Top, s.Near, s.Far)
}

// ComputeNormalBias derives the world-space normal-offset bias from the map
// resolution and the orthographic frustum width, and stores it in NormalBias.
//
// Parameters:
//   - scale: multiplier on the per-texel world size (typically 2.0–4.0)
func (s *Shadow) ComputeNormalBias(scale float32) {
	if s.MapWidth <= 0 {
		return
	}
	texelWorldSize := (s.Right - s.Left) / float32(s.MapWidth)
	s.NormalBias = texelWorldSize * scale
}

// DirectionalViewProjection builds the view-projection matrix of a directional
// light's shadow camera, looking from position toward target.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - position: world-space light position
//   - target: world-space point the light aims at
func (s *Shadow) DirectionalViewProjection(out []float32, position, target [3]float32) {
	dir := common.Normalize3(target[0]-position[0], target[1]-position[1], target[2]-position[2])

	// Choose a stable up vector that isn't parallel to the light direction.
	upX, upY, upZ := float32(0), float32(1), float32(0)
	if absF32(dir[1]) > 0.99 {
		upX, upY, upZ = 1, 0, 0
	}

	var view, proj [16]float32
	common.LookAt(view[:],
		position[0], position[1], position[2],
		target[0], target[1], target[2],
		upX, upY, upZ,
	)
	s.ProjectionMatrix(proj[:])
	common.Mul4(out, proj[:], view[:])
}

// cubeFaces are the look directions and up vectors of the six point light
// shadow faces, in +X, -X, +Y, -Y, +Z, -Z order.
var cubeFaces = [6][2][3]float32{
	{{1, 0, 0}, {0, -1, 0}},
	{{-1, 0, 0}, {0, -1, 0}},
	{{0, 1, 0}, {0, 0, 1}},
	{{0, -1, 0}, {0, 0, -1}},
	{{0, 0, 1}, {0, -1, 0}},
	{{0, 0, -1}, {0, -1, 0}},
}

// CubeViewProjections builds the six view-projection matrices of a point
// light's omnidirectional shadow camera.
//
// Parameters:
//   - position: world-space light position
//
// Returns:
//   - [6][16]float32: one matrix per cube face
func (s *Shadow) CubeViewProjections(position [3]float32) [6][16]float32 {
	var out [6][16]float32
	var proj, view [16]float32
	s.ProjectionMatrix(proj[:])
	for i, face := range cubeFaces {
		dir, up := face[0], face[1]
		common.LookAt(view[:],
			position[0], position[1], position[2],
			position[0]+dir[0], position[1]+dir[1], position[2]+dir[2],
			up[0], up[1], up[2],
		)
		common.Mul4(out[i][:], proj[:], view[:])
	}
	return out
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
