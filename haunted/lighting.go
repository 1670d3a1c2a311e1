package haunted

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-haunted/engine/light"
	"github.com/Carmen-Shannon/oxy-haunted/engine/scene"
)

// Lighting holds the light entities attached by ConfigureLighting.
type Lighting struct {
	Ambient   *scene.Entity
	Moon      *scene.Entity
	DoorLight *scene.Entity
	Ghosts    []*OrbitLight
}

// ghostSpec is the fixed description of one orbiting ghost light.
type ghostSpec struct {
	name   string
	color  uint32
	radius float64
	speed  float64
}

var ghostSpecs = []ghostSpec{
	{name: "ghost-1", color: 0x8800ff, radius: 4, speed: 0.5},
	{name: "ghost-2", color: 0xff0088, radius: 5, speed: -0.38},
	{name: "ghost-3", color: 0xff0000, radius: 6, speed: 0.23},
}

// ConfigureLighting attaches the diorama lights to an assembled scene and sets
// the shadow flags of its structural entities.
//
// Calling it again on the same scene reuses the light entities and resets
// them to the same parameters, so the result is identical. The house, floor,
// walls, roof and graves entities must exist; a missing one is a programming
// error and panics.
//
// Parameters:
//   - s: the assembled scene
//
// Returns:
//   - *Lighting: the configured light entities
func ConfigureLighting(s scene.Scene) *Lighting {
	house := mustFind(s, NameHouse)
	floor := mustFind(s, NameFloor)
	walls := mustFind(s, NameWalls)
	roof := mustFind(s, NameRoof)
	graves := mustFind(s, NameGraves)

	l := &Lighting{}

	l.Ambient = attachLight(s.Root(), NameAmbient, light.NewLight(light.LightTypeAmbient,
		light.WithHexColor(ambientColor),
		light.WithIntensity(ambientIntensity),
	))
	l.Ambient.Transform().SetPosition(0, 0, 0)

	l.Moon = attachLight(s.Root(), NameMoon, light.NewLight(light.LightTypeDirectional,
		light.WithHexColor(moonColor),
		light.WithIntensity(moonIntensity),
		light.WithTarget(0, 0, 0),
		light.WithCastsShadows(true),
		light.WithShadowMapSize(shadowMapSize, shadowMapSize),
		light.WithShadowBounds(-moonShadowHalfSize, moonShadowHalfSize, moonShadowHalfSize, -moonShadowHalfSize),
		light.WithShadowNearFar(moonShadowNear, moonShadowFar),
	))
	l.Moon.Transform().SetPosition(10, 8, -8)

	// The door light follows the house.
	l.DoorLight = attachLight(house, NameDoorLight, light.NewLight(light.LightTypePoint,
		light.WithHexColor(doorLightColor),
		light.WithIntensity(doorLightIntensity),
	))
	l.DoorLight.Transform().SetPosition(0, 2.2, 2.5)

	for _, spec := range ghostSpecs {
		e := attachLight(s.Root(), spec.name, light.NewLight(light.LightTypePoint,
			light.WithHexColor(spec.color),
			light.WithIntensity(ghostIntensity),
			light.WithCastsShadows(true),
			light.WithShadowMapSize(shadowMapSize, shadowMapSize),
			light.WithShadowNearFar(ghostShadowNear, ghostShadowFar),
		))
		ghost := &OrbitLight{Entity: e, Radius: spec.radius, Speed: spec.speed}
		ghost.Update(0)
		l.Ghosts = append(l.Ghosts, ghost)
	}

	floor.SetShadow(false, true)
	walls.SetShadow(true, true)
	roof.SetShadow(true, false)
	for _, g := range graves.Children() {
		g.SetShadow(true, true)
	}

	return l
}

// attachLight finds the named child of parent or creates it, then installs l
// on it. Existing entities keep their identity so repeated configuration does
// not grow the graph.
func attachLight(parent *scene.Entity, name string, l light.Light) *scene.Entity {
	e := parent.Child(name)
	if e == nil {
		e = scene.NewEntity(name)
		parent.Add(e)
	}
	e.SetLight(l)
	e.SetVisible(true)
	return e
}

func mustFind(s scene.Scene, name string) *scene.Entity {
	e := s.Find(name)
	if e == nil {
		panic(fmt.Sprintf("haunted: scene has no %q entity", name))
	}
	return e
}
