package scene

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-haunted/engine/geometry"
	"github.com/Carmen-Shannon/oxy-haunted/engine/light"
	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl64"
)

var nextEntityID atomic.Uint64

// Mesh pairs a primitive with the material it is drawn with.
type Mesh struct {
	Geometry geometry.Geometry
	Material material.Material
}

// Entity is a node of the scene graph. It owns a local transform, optional
// renderable mesh, optional attached light, and an ordered list of children.
// An entity has at most one parent.
//
// Entities are not safe for concurrent mutation. The engine serializes all
// mutation on its tick goroutine.
type Entity struct {
	id            uint64
	name          string
	transform     Transform
	mesh          *Mesh
	light         light.Light
	castShadow    bool
	receiveShadow bool
	visible       bool
	parent        *Entity
	children      []*Entity
}

// NewEntity creates a detached entity with an identity transform.
//
// Parameters:
//   - name: the entity name used for lookups
//   - opts: variadic list of EntityBuilderOption functions to configure the entity
//
// Returns:
//   - *Entity: the new entity
func NewEntity(name string, opts ...EntityBuilderOption) *Entity {
	e := &Entity{
		id:        nextEntityID.Add(1),
		name:      name,
		transform: NewTransform(),
		visible:   true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the process-unique identifier of the entity.
func (e *Entity) ID() uint64 {
	return e.id
}

// Name returns the entity name.
func (e *Entity) Name() string {
	return e.name
}

// Transform returns the local transform for in-place modification.
func (e *Entity) Transform() *Transform {
	return &e.transform
}

// Mesh returns the renderable mesh, or nil for groups and lights.
func (e *Entity) Mesh() *Mesh {
	return e.mesh
}

// SetMesh replaces the renderable mesh.
func (e *Entity) SetMesh(m *Mesh) {
	e.mesh = m
}

// Light returns the attached light, or nil.
func (e *Entity) Light() light.Light {
	return e.light
}

// SetLight attaches a light to the entity. The light follows the entity's
// world position.
func (e *Entity) SetLight(l light.Light) {
	e.light = l
}

// CastShadow reports whether the mesh is drawn into shadow maps.
func (e *Entity) CastShadow() bool {
	return e.castShadow
}

// ReceiveShadow reports whether the mesh samples shadow maps.
func (e *Entity) ReceiveShadow() bool {
	return e.receiveShadow
}

// SetShadow sets the shadow participation of the mesh.
//
// Parameters:
//   - cast: draw into shadow maps
//   - receive: sample shadow maps
func (e *Entity) SetShadow(cast, receive bool) {
	e.castShadow = cast
	e.receiveShadow = receive
}

// Visible reports whether the entity and its subtree are rendered.
func (e *Entity) Visible() bool {
	return e.visible
}

// SetVisible shows or hides the entity and its subtree.
func (e *Entity) SetVisible(visible bool) {
	e.visible = visible
}

// Parent returns the parent entity, or nil for a detached or root entity.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Children returns a copy of the ordered child list.
func (e *Entity) Children() []*Entity {
	out := make([]*Entity, len(e.children))
	copy(out, e.children)
	return out
}

// Add appends children in order. A child that already has a parent is moved.
// Nil entries, the entity itself, and its ancestors are ignored.
//
// Parameters:
//   - children: the entities to attach
func (e *Entity) Add(children ...*Entity) {
	for _, c := range children {
		if c == nil || c == e || c.isAncestorOf(e) {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = e
		e.children = append(e.children, c)
	}
}

// Remove detaches a direct child.
//
// Parameters:
//   - child: the entity to detach
//
// Returns:
//   - bool: true if child was a direct child of e
func (e *Entity) Remove(child *Entity) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Child returns the first direct child with the given name, or nil.
func (e *Entity) Child(name string) *Entity {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Find returns the first entity named name in a depth-first, pre-order walk
// of the subtree rooted at e (including e), or nil.
func (e *Entity) Find(name string) *Entity {
	if e.name == name {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// WorldMatrix composes the local matrices from the root down to e.
func (e *Entity) WorldMatrix() mgl64.Mat4 {
	m := e.transform.Matrix()
	for p := e.parent; p != nil; p = p.parent {
		m = p.transform.Matrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the translation part of the world matrix.
func (e *Entity) WorldPosition() mgl64.Vec3 {
	return e.WorldMatrix().Col(3).Vec3()
}

// Traverse walks the subtree rooted at e depth-first in child order, passing
// each entity with its world matrix. Returning false from fn skips that
// entity's children.
//
// Parameters:
//   - fn: the visitor
func (e *Entity) Traverse(fn func(e *Entity, world mgl64.Mat4) bool) {
	var parentWorld mgl64.Mat4
	if e.parent != nil {
		parentWorld = e.parent.WorldMatrix()
	} else {
		parentWorld = mgl64.Ident4()
	}
	e.traverse(parentWorld, fn)
}

func (e *Entity) traverse(parentWorld mgl64.Mat4, fn func(*Entity, mgl64.Mat4) bool) {
	world := parentWorld.Mul4(e.transform.Matrix())
	if !fn(e, world) {
		return
	}
	for _, c := range e.children {
		c.traverse(world, fn)
	}
}

func (e *Entity) isAncestorOf(other *Entity) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == e {
			return true
		}
	}
	return false
}
