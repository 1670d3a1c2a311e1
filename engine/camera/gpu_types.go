package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniform is the GPU-aligned representation of the per-frame camera
// uniform. Fog parameters ride along because every lit fragment needs both.
// Size: 96 bytes (std430 / WGSL aligned).
type GPUCameraUniform struct {
	ViewProj       [16]float32 // offset  0: combined view-projection matrix (mat4x4<f32>)
	CameraPosition [3]float32  // offset 64: world-space camera position (vec3<f32>)
	FogDensity     float32     // offset 76: exponential-squared fog density, 0 disables fog
	FogColor       [3]float32  // offset 80: fog RGB (vec3<f32>)
	_pad           float32     // offset 92: padding to 96 bytes
}

// NewGPUCameraUniform captures the camera's current matrices and position.
//
// Parameters:
//   - c: the camera to capture
//
// Returns:
//   - GPUCameraUniform: the uniform, with fog disabled
func NewGPUCameraUniform(c Camera) GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj:       c.ViewProjectionMatrix(),
		CameraPosition: c.Position(),
	}
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	binary.LittleEndian.PutUint32(buf[76:], math.Float32bits(g.FogDensity))
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[80+i*4:], math.Float32bits(g.FogColor[i]))
	}
	binary.LittleEndian.PutUint32(buf[92:], 0) // _pad
	return buf
}
