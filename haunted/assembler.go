package haunted

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-haunted/common"
	"github.com/Carmen-Shannon/oxy-haunted/engine/geometry"
	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-haunted/engine/scene"
)

// SkyParameters is the atmospheric scattering of the dusk sky dome.
var SkyParameters = material.SkyParameters{
	Turbidity:       10,
	Rayleigh:        3,
	MieCoefficient:  0.1,
	MieDirectionalG: 0.95,
	SunPosition:     [3]float32{0.3, -0.038, -0.95},
}

// bush is the fixed transform of one decorative bush.
type bush struct {
	scale   float64
	x, y, z float64
}

var bushes = []bush{
	{scale: 0.5, x: 0.8, y: 0.2, z: 2.2},
	{scale: 0.25, x: 1.4, y: 0.1, z: 2.1},
	{scale: 0.4, x: -0.8, y: 0.1, z: 2.2},
	{scale: 0.15, x: -1, y: 0.05, z: 2.6},
}

// AssembleScene composes the diorama graph: floor, house (walls, roof, door,
// bushes), graves, sky dome and fog. Lights are attached separately by
// ConfigureLighting.
//
// Parameters:
//   - materials: the bound surface materials, missing surfaces use the default material
//   - layout: the grave placements, one grave entity each in order
//
// Returns:
//   - scene.Scene: the assembled scene
func AssembleScene(materials Materials, layout []GravePlacement) scene.Scene {
	floor := scene.NewEntity(NameFloor,
		scene.WithMesh(geometry.Plane(20, 20, 100, 100), materials.Get(SurfaceFloor)),
		scene.WithRotation(-math.Pi/2, 0, 0),
	)

	house := scene.NewEntity(NameHouse,
		scene.WithChildren(
			scene.NewEntity(NameWalls,
				scene.WithMesh(geometry.Box(4, 2.5, 4), materials.Get(SurfaceWall)),
				scene.WithPosition(0, 1.25, 0),
			),
			scene.NewEntity(NameRoof,
				scene.WithMesh(geometry.Cone(3.5, 1.5, 4), materials.Get(SurfaceRoof)),
				scene.WithPosition(0, 2.5+0.75, 0),
				scene.WithRotation(0, math.Pi/4, 0),
			),
			scene.NewEntity(NameDoor,
				scene.WithMesh(geometry.Plane(1.5, 2, 100, 100), materials.Get(SurfaceDoor)),
				scene.WithPosition(0, 1, 2+0.001),
			),
		),
	)

	bushMesh := geometry.Sphere(1, 16, 16)
	for i, b := range bushes {
		house.Add(scene.NewEntity(fmt.Sprintf("bush-%d", i+1),
			scene.WithMesh(bushMesh, materials.Get(SurfaceBush)),
			scene.WithScale(b.scale),
			scene.WithPosition(b.x, b.y, b.z),
			scene.WithRotation(-0.75, 0, 0),
		))
	}

	graves := scene.NewEntity(NameGraves)
	graveMesh := geometry.Box(0.6, 0.8, 0.2)
	for i, p := range layout {
		graves.Add(scene.NewEntity(fmt.Sprintf("grave-%02d", i),
			scene.WithMesh(graveMesh, materials.Get(SurfaceGrave)),
			scene.WithPosition(p.Position.X(), p.Position.Y(), p.Position.Z()),
			scene.WithRotation(p.Rotation.X(), p.Rotation.Y(), p.Rotation.Z()),
		))
	}

	sky := scene.NewEntity(NameSky,
		scene.WithMesh(geometry.Sphere(1, 32, 16), material.NewMaterial(
			material.WithName(NameSky),
			material.WithSky(SkyParameters),
		)),
		scene.WithScale(skyScale),
	)

	return scene.NewScene("haunted-house",
		scene.WithFog(common.HexColor(fogColor), fogDensity),
		scene.WithEntities(floor, house, graves, sky),
	)
}
