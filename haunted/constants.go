package haunted

// Entity names. Lighting looks structural entities up by these.
const (
	NameFloor     = "floor"
	NameHouse     = "house"
	NameWalls     = "walls"
	NameRoof      = "roof"
	NameDoor      = "door"
	NameGraves    = "graves"
	NameSky       = "sky"
	NameAmbient   = "ambient-light"
	NameMoon      = "moon-light"
	NameDoorLight = "door-light"
)

// Grave field.
const (
	GraveCount       = 31
	GraveInnerRadius = 3.0
	GraveRadiusExtra = 4.0

	// HouseBoundingRadius is half the width of the wall box. Graves must start
	// outside it.
	HouseBoundingRadius = 2.0

	graveMaxLift = 0.3
	graveMaxTilt = 0.2
)

// Palette and light levels.
const (
	moonColor      = 0x86cdff
	ambientColor   = 0x86cdff
	doorLightColor = 0xff7d46
	fogColor       = 0x04343f

	ambientIntensity   = 0.275
	moonIntensity      = 1.0
	doorLightIntensity = 2.0
	ghostIntensity     = 6.0

	fogDensity = 0.1
	skyScale   = 100.0
)

// Shadow setup.
const (
	shadowMapSize      = 256
	moonShadowHalfSize = 8
	moonShadowNear     = 1
	moonShadowFar      = 20
	ghostShadowNear    = 0.5
	ghostShadowFar     = 10
)

// Orbit wobble factors applied to the orbit angle for the vertical bob.
const (
	GhostWobbleA = 2.34
	GhostWobbleB = 3.34
)

// Camera defaults.
const (
	cameraFovDegrees = 50.0
	cameraNear       = 0.1
	cameraFar        = 100.0
	cameraDistance   = 5.0
	cameraMinRadius  = 1.0
	cameraMaxRadius  = 40.0
)
