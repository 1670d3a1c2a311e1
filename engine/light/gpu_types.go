package light

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-haunted/common"
)

// MaxGPULights is the maximum number of lights that can be marshaled into the
// GPU storage buffer per frame. Ambient lights are folded into the header and
// do not count against this budget.
const MaxGPULights = 64

// NoShadow marks a GPULight that has no shadow map slot.
const NoShadow = ^uint32(0)

// GPULight is the GPU-aligned representation of a single light source.
// Size: 64 bytes (std430 / WGSL aligned).
type GPULight struct {
	Position     [3]float32 // offset  0: world-space position
	LightType    uint32     // offset 12: 0 = directional, 1 = point
	Color        [3]float32 // offset 16: RGB color
	Intensity    float32    // offset 28: scalar multiplier
	Direction    [3]float32 // offset 32: normalized direction (directional) or unused (point)
	Distance     float32    // offset 44: attenuation cutoff distance, 0 = unlimited
	Decay        float32    // offset 48: attenuation exponent
	CastsShadows uint32     // offset 52: 1 = casts shadows, 0 = does not
	ShadowIndex  uint32     // offset 56: first shadow matrix slot, NoShadow if none
	_pad         uint32     // offset 60: padding to 64-byte alignment
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 64)
	putVec3(buf[0:12], g.Position)
	binary.LittleEndian.PutUint32(buf[12:16], g.LightType)
	putVec3(buf[16:28], g.Color)
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Intensity))
	putVec3(buf[32:44], g.Direction)
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.Distance))
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(g.Decay))
	binary.LittleEndian.PutUint32(buf[52:56], g.CastsShadows)
	binary.LittleEndian.PutUint32(buf[56:60], g.ShadowIndex)
	binary.LittleEndian.PutUint32(buf[60:64], 0) // padding
	return buf
}

// GPULightHeader is the header prepended to the light storage buffer.
// Contains the summed ambient color and the active light count.
// Size: 16 bytes (vec3 + u32, std430 aligned).
type GPULightHeader struct {
	AmbientColor [3]float32 // offset 0: scene ambient RGB, pre-multiplied by intensity
	LightCount   uint32     // offset 12: number of active lights following the header
}

// Size returns the size of the GPULightHeader struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (h *GPULightHeader) Size() int {
	return int(unsafe.Sizeof(*h))
}

// Marshal serializes the GPULightHeader struct into a byte buffer suitable for
// GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (h *GPULightHeader) Marshal() []byte {
	buf := make([]byte, 16)
	putVec3(buf[0:12], h.AmbientColor)
	binary.LittleEndian.PutUint32(buf[12:16], h.LightCount)
	return buf
}

// GPUShadowData is the GPU-aligned representation of one shadow camera.
// Directional lights own one entry, point lights own six (one per cube face).
// Size: 80 bytes (std430 / WGSL aligned).
//
// Layout:
//
//	mat4x4<f32> light_vp       (64 bytes, offset 0)
//	vec2<f32>   texel_size     ( 8 bytes, offset 64)
//	f32         bias           ( 4 bytes, offset 72)
//	f32         normal_bias    ( 4 bytes, offset 76)
type GPUShadowData struct {
	LightVP    [16]float32 // view-projection from the light's perspective
	TexelSize  [2]float32  // 1.0 / shadow map resolution for PCF offset calculations
	Bias       float32     // depth comparison bias to reduce shadow acne
	NormalBias float32     // world-space normal-offset distance for shadow lookup
}

// Size returns the size of the GPUShadowData struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (s *GPUShadowData) Size() int {
	return int(unsafe.Sizeof(*s))
}

// Marshal serializes the GPUShadowData struct into a byte buffer suitable for
// GPU uniform upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (s *GPUShadowData) Marshal() []byte {
	buf := make([]byte, 80)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(s.LightVP[i]))
	}
	binary.LittleEndian.PutUint32(buf[64:68], math.Float32bits(s.TexelSize[0]))
	binary.LittleEndian.PutUint32(buf[68:72], math.Float32bits(s.TexelSize[1]))
	binary.LittleEndian.PutUint32(buf[72:76], math.Float32bits(s.Bias))
	binary.LittleEndian.PutUint32(buf[76:80], math.Float32bits(s.NormalBias))
	return buf
}

// ToGPULight converts a Light into the GPU-aligned GPULight struct suitable for
// writing into the light storage buffer. The world position comes from the
// entity carrying the light.
//
// Parameters:
//   - l: the Light to convert
//   - position: the light's world-space position
//   - shadowIndex: first shadow slot of the light, NoShadow if it has none
//
// Returns:
//   - GPULight: the GPU-aligned representation
func ToGPULight(l Light, position [3]float32, shadowIndex uint32) GPULight {
	shadowVal := uint32(0)
	if l.CastsShadows() {
		shadowVal = 1
	}
	var dir [3]float32
	if l.Type() == LightTypeDirectional {
		t := l.Target()
		dir = common.Normalize3(t[0]-position[0], t[1]-position[1], t[2]-position[2])
	}
	c := l.Color()
	return GPULight{
		Position:     position,
		LightType:    uint32(l.Type()),
		Color:        c,
		Intensity:    l.Intensity(),
		Direction:    dir,
		Distance:     l.Distance(),
		Decay:        l.Decay(),
		CastsShadows: shadowVal,
		ShadowIndex:  shadowIndex,
	}
}

// ToGPUShadowData builds the shadow camera records of a shadow-casting light.
// Directional lights yield one record, point lights yield six.
//
// Parameters:
//   - l: the shadow-casting Light
//   - position: the light's world-space position
//
// Returns:
//   - []GPUShadowData: the shadow records, nil if the light casts no shadows
func ToGPUShadowData(l Light, position [3]float32) []GPUShadowData {
	if !l.CastsShadows() {
		return nil
	}
	s := l.Shadow()
	base := GPUShadowData{
		TexelSize:  s.TexelSize(),
		Bias:       s.Bias,
		NormalBias: s.NormalBias,
	}
	switch l.Type() {
	case LightTypeDirectional:
		s.DirectionalViewProjection(base.LightVP[:], position, l.Target())
		return []GPUShadowData{base}
	case LightTypePoint:
		faces := s.CubeViewProjections(position)
		out := make([]GPUShadowData, len(faces))
		for i := range faces {
			out[i] = base
			out[i].LightVP = faces[i]
		}
		return out
	default:
		return nil
	}
}

func putVec3(buf []byte, v [3]float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v[2]))
}
