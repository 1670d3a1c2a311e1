package light

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no falloff that shines from its
	// position toward a target. The moon over the diorama is a directional light.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position.
	// Attenuates with distance according to its distance and decay settings.
	LightTypePoint

	// LightTypeAmbient represents a uniform, non-directional contribution added to
	// every fragment. Ambient lights never cast shadows.
	LightTypeAmbient
)

// String returns a short human readable name for the light type.
func (t LightType) String() string {
	switch t {
	case LightTypeDirectional:
		return "directional"
	case LightTypePoint:
		return "point"
	case LightTypeAmbient:
		return "ambient"
	default:
		return "unknown"
	}
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType    LightType
	color        [3]float32
	intensity    float32
	distance     float32 // 0 means unlimited range
	decay        float32
	target       [3]float32
	enabled      bool
	castsShadows bool
	shadow       Shadow
}

// Light defines the interface for a light source attached to a scene entity.
//
// A Light carries no position of its own. Its world-space position is taken
// from the entity it is attached to, so moving the entity moves the light.
// Directional lights shine from that position toward Target.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional, point, or ambient)
	Type() LightType

	// Color returns the linear RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Distance returns the maximum range of a point light. Zero means the light
	// has no cutoff. Meaningless for directional and ambient lights.
	//
	// Returns:
	//   - float32: the cutoff distance
	Distance() float32

	// Decay returns the distance attenuation exponent of a point light.
	//
	// Returns:
	//   - float32: the decay exponent
	Decay() float32

	// Target returns the world-space point a directional light aims at.
	//
	// Returns:
	//   - [3]float32: target as (x, y, z)
	Target() [3]float32

	// Enabled returns whether this light is active for rendering.
	// Disabled lights are skipped during GPU buffer marshaling.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// CastsShadows returns whether this light renders a shadow map.
	// Always false for ambient lights.
	//
	// Returns:
	//   - bool: true if the light casts shadows
	CastsShadows() bool

	// Shadow returns the shadow camera and map configuration of the light.
	// The returned pointer may be modified in place.
	//
	// Returns:
	//   - *Shadow: the shadow configuration
	Shadow() *Shadow

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetDistance sets the cutoff distance of a point light.
	//
	// Parameters:
	//   - distance: the cutoff, 0 for unlimited
	SetDistance(distance float32)

	// SetTarget sets the point a directional light aims at.
	//
	// Parameters:
	//   - x, y, z: target components
	SetTarget(x, y, z float32)

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetCastsShadows sets whether the light renders a shadow map. Ignored for
	// ambient lights.
	//
	// Parameters:
	//   - castsShadows: true to enable shadow casting
	SetCastsShadows(castsShadows bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (directional, point, or ambient)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		color:     [3]float32{1, 1, 1},
		intensity: 1.0,
		distance:  0,
		decay:     2.0,
		enabled:   true,
		shadow:    DefaultShadow(lightType),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.lightType == LightTypeAmbient {
		l.castsShadows = false
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Distance() float32 {
	return l.distance
}

func (l *lightImpl) Decay() float32 {
	return l.decay
}

func (l *lightImpl) Target() [3]float32 {
	return l.target
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) CastsShadows() bool {
	return l.castsShadows
}

func (l *lightImpl) Shadow() *Shadow {
	return &l.shadow
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetDistance(distance float32) {
	l.distance = distance
}

func (l *lightImpl) SetTarget(x, y, z float32) {
	l.target = [3]float32{x, y, z}
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *lightImpl) SetCastsShadows(castsShadows bool) {
	if l.lightType == LightTypeAmbient {
		return
	}
	l.castsShadows = castsShadows
}
