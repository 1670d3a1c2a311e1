// Package geometry describes the parametric primitives the diorama is built from.
// Geometry values are plain descriptions; tessellation is left to the renderer.
package geometry

import "math"

// Kind identifies the primitive a Geometry describes.
type Kind int

const (
	KindPlane Kind = iota
	KindBox
	KindCone
	KindSphere
)

// String returns the primitive name.
func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindBox:
		return "box"
	case KindCone:
		return "cone"
	case KindSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Geometry is a parametric primitive. Only the fields relevant to Kind are set.
type Geometry struct {
	Kind Kind

	// Width, Height and Depth size planes and boxes. Height is also the cone height.
	Width, Height, Depth float64

	// Radius sizes cones and spheres.
	Radius float64

	// WidthSegments and HeightSegments control tessellation. Planes use both,
	// cones use WidthSegments as the radial segment count, spheres use both.
	WidthSegments, HeightSegments int
}

// Plane returns a plane of the given size in its local XY plane, facing +Z.
//
// Parameters:
//   - width: extent along X
//   - height: extent along Y
//   - widthSegments, heightSegments: subdivisions, clamped to at least 1
//
// Returns:
//   - Geometry: the plane description
func Plane(width, height float64, widthSegments, heightSegments int) Geometry {
	return Geometry{
		Kind:           KindPlane,
		Width:          width,
		Height:         height,
		WidthSegments:  max(widthSegments, 1),
		HeightSegments: max(heightSegments, 1),
	}
}

// Box returns an axis-aligned box centered on its origin.
//
// Parameters:
//   - width, height, depth: extents along X, Y and Z
//
// Returns:
//   - Geometry: the box description
func Box(width, height, depth float64) Geometry {
	return Geometry{Kind: KindBox, Width: width, Height: height, Depth: depth, WidthSegments: 1, HeightSegments: 1}
}

// Cone returns a cone centered on its origin with the apex pointing +Y.
//
// Parameters:
//   - radius: base radius
//   - height: apex to base distance
//   - radialSegments: number of sides, clamped to at least 3
//
// Returns:
//   - Geometry: the cone description
func Cone(radius, height float64, radialSegments int) Geometry {
	return Geometry{Kind: KindCone, Radius: radius, Height: height, WidthSegments: max(radialSegments, 3), HeightSegments: 1}
}

// Sphere returns a UV sphere centered on its origin.
//
// Parameters:
//   - radius: sphere radius
//   - widthSegments: longitudinal segments, clamped to at least 3
//   - heightSegments: latitudinal segments, clamped to at least 2
//
// Returns:
//   - Geometry: the sphere description
func Sphere(radius float64, widthSegments, heightSegments int) Geometry {
	return Geometry{Kind: KindSphere, Radius: radius, WidthSegments: max(widthSegments, 3), HeightSegments: max(heightSegments, 2)}
}

// HalfExtents returns half the size of the local bounding box.
func (g Geometry) HalfExtents() [3]float64 {
	switch g.Kind {
	case KindPlane:
		return [3]float64{g.Width / 2, g.Height / 2, 0}
	case KindBox:
		return [3]float64{g.Width / 2, g.Height / 2, g.Depth / 2}
	case KindCone:
		return [3]float64{g.Radius, g.Height / 2, g.Radius}
	case KindSphere:
		return [3]float64{g.Radius, g.Radius, g.Radius}
	default:
		return [3]float64{}
	}
}

// BoundingRadius returns the radius of the smallest origin-centered sphere
// enclosing the primitive.
func (g Geometry) BoundingRadius() float64 {
	h := g.HalfExtents()
	if g.Kind == KindSphere {
		return g.Radius
	}
	return math.Sqrt(h[0]*h[0] + h[1]*h[1] + h[2]*h[2])
}

// VertexCount returns the number of vertices the primitive tessellates to.
func (g Geometry) VertexCount() int {
	switch g.Kind {
	case KindPlane:
		return (g.WidthSegments + 1) * (g.HeightSegments + 1)
	case KindBox:
		return 24
	case KindCone:
		// side ring plus apex copies, base ring plus center
		return (g.WidthSegments+1)*2 + g.WidthSegments + 2
	case KindSphere:
		return (g.WidthSegments + 1) * (g.HeightSegments + 1)
	default:
		return 0
	}
}
