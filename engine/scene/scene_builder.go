package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithFog enables exponential-squared fog.
//
// Parameters:
//   - color: the fog and clear color
//   - density: the fog density
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFog(color [3]float32, density float32) SceneBuilderOption {
	return func(s *scene) {
		s.fog = &Fog{Color: color, Density: density}
	}
}

// WithEntities attaches initial top-level entities in order.
//
// Parameters:
//   - entities: the entities to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithEntities(entities ...*Entity) SceneBuilderOption {
	return func(s *scene) {
		s.root.Add(entities...)
	}
}
