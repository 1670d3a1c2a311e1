package haunted

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// GravePlacement is one generated grave marker. Position is the jittered
// polar position (y is the small random lift), Rotation the per-axis tilt in
// radians.
type GravePlacement struct {
	Radius   float64
	Angle    float64
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

// NewSeededRand returns a deterministic generator for GenerateGraveLayout.
// Two generators built from the same seed produce identical layouts.
//
// Parameters:
//   - seed: the PCG seed
//
// Returns:
//   - *rand.Rand: the seeded generator
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GenerateGraveLayout places count graves around the origin.
//
// For every index, in order, it draws the angle in [0, 2π), the radius in
// [innerRadius, innerRadius+outerRadiusExtra), the lift in [0, 0.3) and three
// tilts in [-0.2, 0.2). The output order matches the draw order so a seeded
// generator replays bit for bit.
//
// Parameters:
//   - count: number of graves, 0 for an empty layout
//   - innerRadius: closest distance to the house center, must exceed HouseBoundingRadius
//   - outerRadiusExtra: width of the ring the graves are scattered in, must not be negative
//   - rng: the random source
//
// Returns:
//   - []GravePlacement: the placements in index order
//   - error: a *ConfigurationError if a parameter is invalid
func GenerateGraveLayout(count int, innerRadius, outerRadiusExtra float64, rng *rand.Rand) ([]GravePlacement, error) {
	switch {
	case count < 0:
		return nil, &ConfigurationError{Field: "grave count", Value: count, Reason: "must not be negative"}
	case !(innerRadius > HouseBoundingRadius) || math.IsInf(innerRadius, 0):
		return nil, &ConfigurationError{Field: "inner radius", Value: innerRadius, Reason: "graves would overlap the house"}
	case !(outerRadiusExtra >= 0) || math.IsInf(outerRadiusExtra, 0):
		return nil, &ConfigurationError{Field: "outer radius extra", Value: outerRadiusExtra, Reason: "must be a finite non-negative width"}
	case rng == nil:
		return nil, &ConfigurationError{Field: "random source", Value: nil, Reason: "required"}
	}

	outer := innerRadius + outerRadiusExtra
	placements := make([]GravePlacement, count)
	for i := range placements {
		angle := rng.Float64() * 2 * math.Pi
		radius := innerRadius + rng.Float64()*outerRadiusExtra
		if outerRadiusExtra > 0 && radius >= outer {
			// Float64 < 1 can still round the sum up to the open bound.
			radius = math.Nextafter(outer, innerRadius)
		}
		lift := rng.Float64() * graveMaxLift

		tilt := mgl64.Vec3{
			(rng.Float64() - 0.5) * 2 * graveMaxTilt,
			(rng.Float64() - 0.5) * 2 * graveMaxTilt,
			(rng.Float64() - 0.5) * 2 * graveMaxTilt,
		}

		placements[i] = GravePlacement{
			Radius:   radius,
			Angle:    angle,
			Position: mgl64.Vec3{math.Sin(angle) * radius, lift, math.Cos(angle) * radius},
			Rotation: tilt,
		}
	}
	return placements, nil
}
