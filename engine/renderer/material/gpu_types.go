package material

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Material flag bits written to GPUMaterialParams.Flags.
const (
	FlagTransparent uint32 = 1 << iota
	FlagSky
)

// GPUMaterialParams is the GPU-aligned per-draw material uniform.
// Size: 48 bytes (std430 / WGSL aligned).
//
// Layout:
//
//	vec4<f32> base_color          (16 bytes, offset  0)
//	f32       metalness           ( 4 bytes, offset 16)
//	f32       roughness           ( 4 bytes, offset 20)
//	f32       displacement_scale  ( 4 bytes, offset 24)
//	f32       displacement_bias   ( 4 bytes, offset 28)
//	u32       texture_mask        ( 4 bytes, offset 32)
//	u32       flags               ( 4 bytes, offset 36)
//	vec2<f32> _pad                ( 8 bytes, offset 40)
type GPUMaterialParams struct {
	BaseColor         [4]float32
	Metalness         float32
	Roughness         float32
	DisplacementScale float32
	DisplacementBias  float32
	TextureMask       uint32 // bit i set when Slot(i) has a texture bound
	Flags             uint32
	_pad              [2]float32
}

// Size returns the size of the GPUMaterialParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes (48)
func (g *GPUMaterialParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterialParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPUMaterialParams) Marshal() []byte {
	buf := make([]byte, 48)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.BaseColor[i]))
	}
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Metalness))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Roughness))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.DisplacementScale))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.DisplacementBias))
	binary.LittleEndian.PutUint32(buf[32:36], g.TextureMask)
	binary.LittleEndian.PutUint32(buf[36:40], g.Flags)
	return buf
}

// ToGPUMaterialParams converts a Material into its per-draw GPU uniform.
//
// Parameters:
//   - m: the material to convert
//
// Returns:
//   - GPUMaterialParams: the GPU-aligned representation
func ToGPUMaterialParams(m Material) GPUMaterialParams {
	var mask, flags uint32
	for _, s := range Slots() {
		if m.Texture(s) != nil {
			mask |= 1 << uint(s)
		}
	}
	if m.Transparent() {
		flags |= FlagTransparent
	}
	if m.Sky() != nil {
		flags |= FlagSky
	}
	return GPUMaterialParams{
		BaseColor:         m.BaseColor(),
		Metalness:         m.Metalness(),
		Roughness:         m.Roughness(),
		DisplacementScale: m.DisplacementScale(),
		DisplacementBias:  m.DisplacementBias(),
		TextureMask:       mask,
		Flags:             flags,
	}
}
