package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithRadius sets the starting distance from the orbit target.
//
// Parameters:
//   - radius: the orbit radius, clamped to the radius bounds
//
// Returns:
//   - CameraControllerOption: functional option to set the radius
func WithRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithTarget sets the point the camera orbits and looks at.
//
// Parameters:
//   - x, y, z: the pivot in world space
//
// Returns:
//   - CameraControllerOption: functional option to set the pivot
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = [3]float32{x, y, z}
	}
}

// WithRadiusBounds limits how far Dolly can move the camera.
//
// Parameters:
//   - min: closest allowed radius
//   - max: farthest allowed radius
//
// Returns:
//   - CameraControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minRadius, cc.maxRadius = min, max
	}
}

// WithElevationBounds limits the vertical orbit angle. The defaults stop just
// short of the poles.
//
// Parameters:
//   - min, max: elevation limits in radians
//
// Returns:
//   - CameraControllerOption: functional option to set elevation bounds
func WithElevationBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minElevation, cc.maxElevation = min, max
	}
}

// WithOrbitSpeed sets the angle one arrow key step adds, in radians.
func WithOrbitSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orbitSpeed = speed
	}
}

// WithMouseSensitivity sets radians of orbit per pixel of drag.
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithDamping enables inertial motion. Each Update applies factor of the
// pending input and carries the remainder over to the next call.
//
// Parameters:
//   - factor: fraction of pending input applied per update, clamped to (0, 1]
//
// Returns:
//   - CameraControllerOption: functional option to set damping
func WithDamping(factor float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if factor <= 0 || factor > 1 {
			factor = 1
		}
		cc.dampingFactor = factor
	}
}
