package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-haunted/common"
)

// cameraImpl is the implementation of the Camera interface.
type cameraImpl struct {
	mu *sync.Mutex

	up [3]float32

	fov    float32 // vertical, radians
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32

	controller CameraController
}

// Camera defines the interface for a perspective camera whose placement is
// owned by a CameraController.
//
// All matrices are column-major and map depth into the WebGPU [0, 1] range.
// Matrices are recomputed on Update and whenever a projection parameter changes.
type Camera interface {
	// Up returns the camera up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: the field of view
	Fov() float32

	// Aspect returns the viewport aspect ratio (width/height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clip plane distance.
	//
	// Returns:
	//   - float32: the near plane
	Near() float32

	// Far returns the far clip plane distance.
	//
	// Returns:
	//   - float32: the far plane
	Far() float32

	// Position returns the world-space eye position, taken from the controller.
	//
	// Returns:
	//   - [3]float32: the eye position, or zero without a controller
	Position() [3]float32

	// ViewMatrix returns the world-to-view matrix.
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the view-to-clip matrix.
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - [16]float32: the combined matrix
	ViewProjectionMatrix() [16]float32

	// Controller returns the controller driving the camera placement.
	//
	// Returns:
	//   - CameraController: the controller, or nil
	Controller() CameraController

	// Update recomputes the matrices from the controller's current placement.
	Update()

	// SetUp sets the camera up vector.
	//
	// Parameters:
	//   - x, y, z: up vector components
	SetUp(x, y, z float32)

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: the field of view
	SetFov(fov float32)

	// SetAspect sets the viewport aspect ratio. Non-positive values are ignored.
	//
	// Parameters:
	//   - aspect: width/height
	SetAspect(aspect float32)

	// SetNear sets the near clip plane distance.
	//
	// Parameters:
	//   - near: the near plane
	SetNear(near float32)

	// SetFar sets the far clip plane distance.
	//
	// Parameters:
	//   - far: the far plane
	SetFar(far float32)

	// SetController replaces the controller driving the camera placement.
	//
	// Parameters:
	//   - ctrl: the new controller
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a perspective camera with a 50° vertical field of view,
// square aspect, and clip planes at 0.1 and 100.
//
// Parameters:
//   - options: variadic list of CameraBuilderOption functions to configure the camera
//
// Returns:
//   - Camera: a new Camera instance
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		up:     [3]float32{0, 1, 0},
		fov:    50.0 * (math.Pi / 180.0),
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	common.Identity(c.viewMatrix[:])
	common.Identity(c.viewProjectionMatrix[:])
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Up() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Position() [3]float32 {
	c.mu.Lock()
	ctrl := c.controller
	c.mu.Unlock()
	if ctrl == nil {
		return [3]float32{}
	}
	x, y, z := ctrl.Position()
	return [3]float32{x, y, z}
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

func (c *cameraImpl) SetUp(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if aspect <= 0 || math.IsNaN(float64(aspect)) || math.IsInf(float64(aspect), 0) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recomputes projection, and view when a controller is set.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	common.Perspective(c.projectionMatrix[:], c.fov, c.aspect, c.near, c.far)

	if c.controller != nil {
		px, py, pz := c.controller.Position()
		tx, ty, tz := c.controller.Target()
		common.LookAt(c.viewMatrix[:],
			px, py, pz,
			tx, ty, tz,
			c.up[0], c.up[1], c.up[2],
		)
	}

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
