package scene

import "github.com/go-gl/mathgl/mgl64"

// Transform is the local placement of an entity relative to its parent.
// Rotation holds Euler angles in radians applied in X, Y, Z order.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Scale: mgl64.Vec3{1, 1, 1}}
}

// SetPosition sets the local translation.
func (t *Transform) SetPosition(x, y, z float64) {
	t.Position = mgl64.Vec3{x, y, z}
}

// SetRotation sets the local Euler rotation in radians.
func (t *Transform) SetRotation(x, y, z float64) {
	t.Rotation = mgl64.Vec3{x, y, z}
}

// SetScale sets a uniform local scale.
func (t *Transform) SetScale(s float64) {
	t.Scale = mgl64.Vec3{s, s, s}
}

// Matrix composes the local matrix as T * Rx * Ry * Rz * S.
func (t Transform) Matrix() mgl64.Mat4 {
	m := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl64.HomogRotate3DX(t.Rotation.X()))
	m = m.Mul4(mgl64.HomogRotate3DY(t.Rotation.Y()))
	m = m.Mul4(mgl64.HomogRotate3DZ(t.Rotation.Z()))
	return m.Mul4(mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}
