package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// clipDepthRemap converts OpenGL clip depth [-1, 1] into the WebGPU range [0, 1].
var clipDepthRemap = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	id := mgl32.Ident4()
	copy(m, id[:])
}

// Mul4 multiplies two 4x4 column-major matrices. out may alias a or b.
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var ma, mb mgl32.Mat4
	copy(ma[:], a)
	copy(mb[:], b)
	m := ma.Mul4(mb)
	copy(out, m[:])
}

// Perspective creates a right-handed perspective projection with WebGPU
// depth in [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	m := clipDepthRemap.Mul4(mgl32.Perspective(fovY, aspect, near, far))
	copy(out, m[:])
}

// Ortho creates a right-handed orthographic projection with WebGPU depth in
// [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - left, right: horizontal bounds of the view volume
//   - bottom, top: vertical bounds of the view volume
//   - near, far: depth bounds of the view volume
func Ortho(out []float32, left, right, bottom, top, near, far float32) {
	m := clipDepthRemap.Mul4(mgl32.Ortho(left, right, bottom, top, near, far))
	copy(out, m[:])
}

// LookAt writes the view matrix of an eye looking at center. A degenerate
// eye == center yields the identity.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point the camera looks at
//   - upX, upY, upZ: up vector, must not be parallel to the view direction
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	eye := mgl32.Vec3{eyeX, eyeY, eyeZ}
	center := mgl32.Vec3{centerX, centerY, centerZ}
	if eye.ApproxEqual(center) {
		Identity(out)
		return
	}
	m := mgl32.LookAtV(eye, center, mgl32.Vec3{upX, upY, upZ})
	copy(out, m[:])
}

// Normalize3 normalizes a 3-component vector. Returns a zero vector if the input
// has zero length.
//
// Parameters:
//   - x, y, z: vector components
//
// Returns:
//   - [3]float32: the unit-length vector, or zero
func Normalize3(x, y, z float32) [3]float32 {
	v := mgl32.Vec3{x, y, z}
	if v.Len() == 0 {
		return [3]float32{}
	}
	return v.Normalize()
}
