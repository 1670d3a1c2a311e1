package light

import "github.com/Carmen-Shannon/oxy-haunted/common"

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithHexColor is an option builder that sets the light color from a packed
// 0xRRGGBB value.
//
// Parameters:
//   - hex: the packed color
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithHexColor(hex uint32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = common.HexColor(hex)
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithDistance is an option builder that sets the cutoff distance of a point light.
//
// Parameters:
//   - distance: the cutoff distance, 0 for unlimited
//
// Returns:
//   - LightBuilderOption: a function that applies the distance option to a lightImpl
func WithDistance(distance float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.distance = distance
	}
}

// WithDecay is an option builder that sets the distance attenuation exponent.
//
// Parameters:
//   - decay: the decay exponent
//
// Returns:
//   - LightBuilderOption: a function that applies the decay option to a lightImpl
func WithDecay(decay float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.decay = decay
	}
}

// WithTarget is an option builder that sets the point a directional light aims at.
//
// Parameters:
//   - x, y, z: target position components
//
// Returns:
//   - LightBuilderOption: a function that applies the target option to a lightImpl
func WithTarget(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.target = [3]float32{x, y, z}
	}
}

// WithEnabled is an option builder that sets whether the light is active for rendering.
//
// Parameters:
//   - enabled: true to enable the light
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

// WithCastsShadows is an option builder that sets whether the light renders a
// shadow map.
//
// Parameters:
//   - castsShadows: true to enable shadow casting
//
// Returns:
//   - LightBuilderOption: a function that applies the shadow casting option to a lightImpl
func WithCastsShadows(castsShadows bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.castsShadows = castsShadows
	}
}

// WithShadowMapSize is an option builder that sets the shadow map resolution.
//
// Parameters:
//   - width: shadow map width in texels
//   - height: shadow map height in texels
//
// Returns:
//   - LightBuilderOption: a function that applies the map size option to a lightImpl
func WithShadowMapSize(width, height int) LightBuilderOption {
	return func(l *lightImpl) {
		l.shadow.MapWidth = width
		l.shadow.MapHeight = height
	}
}

// WithShadowBounds is an option builder that sets the orthographic shadow
// camera bounds of a directional light.
//
// Parameters:
//   - left, right, top, bottom: frustum bounds in light view space
//
// Returns:
//   - LightBuilderOption: a function that applies the bounds option to a lightImpl
func WithShadowBounds(left, right, top, bottom float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.shadow.Left = left
		l.shadow.Right = right
		l.shadow.Top = top
		l.shadow.Bottom = bottom
	}
}

// WithShadowNearFar is an option builder that sets the shadow camera clip planes.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - LightBuilderOption: a function that applies the clip plane option to a lightImpl
func WithShadowNearFar(near, far float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.shadow.Near = near
		l.shadow.Far = far
	}
}
