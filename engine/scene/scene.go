package scene

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-haunted/engine/light"
	"github.com/go-gl/mathgl/mgl64"
)

// Fog is exponential-squared distance fog. The renderer also clears to its color.
type Fog struct {
	Color   [3]float32
	Density float32
}

// Factor returns the fog blend factor at a view distance, 0 for no fog and 1
// for fully fogged.
func (f Fog) Factor(distance float64) float64 {
	d := float64(f.Density) * distance
	return 1 - mgl64.Clamp(math.Exp(-d*d), 0, 1)
}

// LightInstance is an enabled light together with the entity carrying it and
// that entity's world matrix at collection time.
type LightInstance struct {
	Entity *Entity
	Light  light.Light
	World  mgl64.Mat4
}

// Position returns the world-space light position.
func (li LightInstance) Position() [3]float32 {
	p := li.World.Col(3)
	return [3]float32{float32(p.X()), float32(p.Y()), float32(p.Z())}
}

// Scene owns the root of an entity graph together with scene-wide settings
// such as fog. Structural operations and fog access are guarded by the scene;
// entity transforms are mutated by the caller's tick.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Root returns the root entity. Top-level entities are its children.
	Root() *Entity

	// Add attaches entities to the root in order.
	//
	// Parameters:
	//   - entities: the entities to attach
	Add(entities ...*Entity)

	// Remove detaches a top-level entity.
	//
	// Parameters:
	//   - e: the entity to detach
	//
	// Returns:
	//   - bool: true if e was a direct child of the root
	Remove(e *Entity) bool

	// Find returns the first entity with the given name in depth-first order,
	// or nil.
	//
	// Parameters:
	//   - name: the entity name
	//
	// Returns:
	//   - *Entity: the entity or nil
	Find(name string) *Entity

	// Fog returns the scene fog, or nil if fog is disabled.
	//
	// Returns:
	//   - *Fog: a copy of the fog settings, or nil
	Fog() *Fog

	// SetFog replaces the scene fog. Nil disables fog.
	//
	// Parameters:
	//   - f: the fog settings
	SetFog(f *Fog)

	// Traverse walks every entity depth-first in child order with its world
	// matrix. Returning false from fn skips the entity's children.
	//
	// Parameters:
	//   - fn: the visitor
	Traverse(fn func(e *Entity, world mgl64.Mat4) bool)

	// Lights collects every enabled light attached to a visible entity, in
	// traversal order.
	//
	// Returns:
	//   - []LightInstance: the collected lights
	Lights() []LightInstance

	// Count returns the number of entities below the root.
	//
	// Returns:
	//   - int: the entity count
	Count() int
}

type scene struct {
	mu   sync.RWMutex
	name string
	root *Entity
	fog  *Fog
}

var _ Scene = &scene{}

// NewScene creates an empty scene.
//
// Parameters:
//   - name: the scene identifier
//   - options: variadic list of SceneBuilderOption functions to configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		name: name,
		root: NewEntity(name),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Root() *Entity {
	return s.root
}

func (s *scene) Add(entities ...*Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root.Add(entities...)
}

func (s *scene) Remove(e *Entity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root.Remove(e)
}

func (s *scene) Find(name string) *Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.root.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

func (s *scene) Fog() *Fog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fog == nil {
		return nil
	}
	f := *s.fog
	return &f
}

func (s *scene) SetFog(f *Fog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f == nil {
		s.fog = nil
		return
	}
	cp := *f
	s.fog = &cp
}

func (s *scene) Traverse(fn func(e *Entity, world mgl64.Mat4) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.root.Traverse(fn)
}

func (s *scene) Lights() []LightInstance {
	var out []LightInstance
	s.Traverse(func(e *Entity, world mgl64.Mat4) bool {
		if !e.visible {
			return false
		}
		if e.light != nil && e.light.Enabled() {
			out = append(out, LightInstance{Entity: e, Light: e.light, World: world})
		}
		return true
	})
	return out
}

func (s *scene) Count() int {
	n := 0
	s.Traverse(func(e *Entity, _ mgl64.Mat4) bool {
		if e != s.root {
			n++
		}
		return true
	})
	return n
}
