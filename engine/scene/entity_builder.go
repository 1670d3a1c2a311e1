package scene

import (
	"github.com/Carmen-Shannon/oxy-haunted/engine/geometry"
	"github.com/Carmen-Shannon/oxy-haunted/engine/light"
	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer/material"
)

// EntityBuilderOption is a functional option for configuring an Entity.
type EntityBuilderOption func(e *Entity)

// WithMesh attaches a renderable mesh.
//
// Parameters:
//   - g: the primitive
//   - m: the material it is drawn with
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithMesh(g geometry.Geometry, m material.Material) EntityBuilderOption {
	return func(e *Entity) {
		e.mesh = &Mesh{Geometry: g, Material: m}
	}
}

// WithLight attaches a light.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithLight(l light.Light) EntityBuilderOption {
	return func(e *Entity) {
		e.light = l
	}
}

// WithPosition sets the local translation.
//
// Parameters:
//   - x, y, z: translation components
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithPosition(x, y, z float64) EntityBuilderOption {
	return func(e *Entity) {
		e.transform.SetPosition(x, y, z)
	}
}

// WithRotation sets the local Euler rotation in radians, applied in X, Y, Z order.
//
// Parameters:
//   - x, y, z: rotation angles
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithRotation(x, y, z float64) EntityBuilderOption {
	return func(e *Entity) {
		e.transform.SetRotation(x, y, z)
	}
}

// WithScale sets a uniform local scale.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithScale(s float64) EntityBuilderOption {
	return func(e *Entity) {
		e.transform.SetScale(s)
	}
}

// WithShadow sets the shadow participation of the mesh.
//
// Parameters:
//   - cast: draw into shadow maps
//   - receive: sample shadow maps
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithShadow(cast, receive bool) EntityBuilderOption {
	return func(e *Entity) {
		e.castShadow = cast
		e.receiveShadow = receive
	}
}

// WithChildren attaches children in order.
//
// Parameters:
//   - children: the entities to attach
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithChildren(children ...*Entity) EntityBuilderOption {
	return func(e *Entity) {
		e.Add(children...)
	}
}
