package camera

import (
	"math"
	"sync"
)

// settleEpsilon is the pending delta magnitude below which damped motion stops.
const settleEpsilon = 1e-5

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position [3]float32
	target   [3]float32

	radius    float32
	azimuth   float32 // Horizontal angle around Y axis, 0 looks down -Z from +Z
	elevation float32 // Vertical angle from horizontal plane

	// Queued input, applied on Update
	pendingAzimuth   float32
	pendingElevation float32
	pendingDolly     float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed       float32
	mouseSensitivity float32

	// dampingFactor in (0, 1]; 1 applies all pending input at once.
	dampingFactor float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new orbit camera controller with sensible defaults.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		radius:    5.0,
		azimuth:   0.0,
		elevation: 0.0,

		minRadius:    0.0,
		maxRadius:    float32(math.Inf(1)),
		minElevation: -float32(math.Pi/2 - 0.01),
		maxElevation: float32(math.Pi/2 - 0.01),

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		dampingFactor:    1.0,
	}

	for _, option := range options {
		option(cc)
	}

	cc.clamp()
	cc.updatePosition()
	return cc
}

// updatePosition recomputes the camera position from spherical coordinates.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	cosElev := float32(math.Cos(float64(cc.elevation)))
	sinElev := float32(math.Sin(float64(cc.elevation)))
	cosAzim := float32(math.Cos(float64(cc.azimuth)))
	sinAzim := float32(math.Sin(float64(cc.azimuth)))

	cc.position[0] = cc.target[0] + cc.radius*cosElev*sinAzim
	cc.position[1] = cc.target[1] + cc.radius*sinElev
	cc.position[2] = cc.target[2] + cc.radius*cosElev*cosAzim
}

// clamp holds radius and elevation inside their bounds. Caller must hold the mutex.
func (cc *cameraControllerImpl) clamp() {
	cc.radius = clampF32(cc.radius, cc.minRadius, cc.maxRadius)
	cc.elevation = clampF32(cc.elevation, cc.minElevation, cc.maxElevation)
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = [3]float32{x, y, z}
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Rotate(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pendingAzimuth -= dx * cc.mouseSensitivity
	cc.pendingElevation += dy * cc.mouseSensitivity
}

func (cc *cameraControllerImpl) Dolly(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pendingDolly += delta
}

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pendingAzimuth -= cc.orbitSpeed
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pendingAzimuth += cc.orbitSpeed
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pendingElevation += cc.orbitSpeed
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pendingElevation -= cc.orbitSpeed
}

func (cc *cameraControllerImpl) Update() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if cc.pendingAzimuth == 0 && cc.pendingElevation == 0 && cc.pendingDolly == 0 {
		return false
	}

	f := cc.dampingFactor
	before := cc.position

	cc.azimuth += cc.pendingAzimuth * f
	cc.elevation += cc.pendingElevation * f
	// Each unit of dolly scales the radius by 0.95, matching scroll wheel zoom.
	cc.radius *= float32(math.Pow(0.95, float64(cc.pendingDolly*f)))
	cc.clamp()
	cc.updatePosition()

	if f >= 1 {
		cc.pendingAzimuth, cc.pendingElevation, cc.pendingDolly = 0, 0, 0
	} else {
		keep := 1 - f
		cc.pendingAzimuth = settle(cc.pendingAzimuth * keep)
		cc.pendingElevation = settle(cc.pendingElevation * keep)
		cc.pendingDolly = settle(cc.pendingDolly * keep)
	}

	return before != cc.position
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = radius
	cc.clamp()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) SetAzimuth(azimuth float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = azimuth
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) SetElevation(elevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = elevation
	cc.clamp()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) RadiusBounds() (min, max float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minRadius, cc.maxRadius
}

func (cc *cameraControllerImpl) ElevationBounds() (min, max float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minElevation, cc.maxElevation
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func settle(v float32) float32 {
	if v > -settleEpsilon && v < settleEpsilon {
		return 0
	}
	return v
}
