package haunted

import (
	"math"

	"github.com/Carmen-Shannon/oxy-haunted/engine/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// OrbitLight is a point light entity moving on a closed parametric path
// around the house. The path is a function of elapsed time only.
type OrbitLight struct {
	Entity *scene.Entity
	Radius float64
	Speed  float64 // radians per second, the sign sets the direction
	Phase  float64
}

// PositionAt returns the path position at elapsed time t. The light circles
// in the XZ plane while bobbing vertically.
//
// Parameters:
//   - t: elapsed seconds
//
// Returns:
//   - mgl64.Vec3: the world position
func (o *OrbitLight) PositionAt(t float64) mgl64.Vec3 {
	angle := t*o.Speed + o.Phase
	return mgl64.Vec3{
		math.Cos(angle) * o.Radius,
		math.Sin(angle*GhostWobbleA) * math.Sin(angle*GhostWobbleB) * o.Radius,
		math.Sin(angle) * o.Radius,
	}
}

// Update moves the light entity to its path position at t.
func (o *OrbitLight) Update(t float64) {
	if o.Entity == nil {
		return
	}
	o.Entity.Transform().Position = o.PositionAt(t)
}

// UpdateGhosts moves every ghost to its position at elapsed. Each ghost
// writes only its own transform.
//
// Parameters:
//   - ghosts: the orbit lights to move
//   - elapsed: the animation clock in seconds
func UpdateGhosts(ghosts []*OrbitLight, elapsed float64) {
	for _, g := range ghosts {
		g.Update(elapsed)
	}
}
