package camera

// CameraController defines the interface for an orbit camera control system.
//
// Controllers own positional state (position, target) expressed as spherical
// coordinates (radius, azimuth, elevation) around the target. Pointer and
// keyboard input is queued as pending deltas and reconciled on Update, so
// input can arrive on the window thread while the camera is read on the
// engine's tick goroutine. Camera reads from the controller and computes
// view/projection matrices.
type CameraController interface {
	// Position returns the camera's world-space position.
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at/pivot point and recomputes position from spherical coordinates.
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Rotate queues a pointer drag. Dragging right orbits the camera left
	// around the target, dragging down raises it.
	// Parameters:
	//   - dx, dy: pointer movement in pixels, scaled by MouseSensitivity
	Rotate(dx, dy float32)

	// Dolly queues a zoom step. Positive delta moves toward the target.
	// Parameters:
	//   - delta: scroll amount, each unit scales the radius by 0.95
	Dolly(delta float32)

	// OrbitLeft queues a keyboard rotation left by one orbit speed step.
	OrbitLeft()

	// OrbitRight queues a keyboard rotation right by one orbit speed step.
	OrbitRight()

	// OrbitUp queues a keyboard tilt upward by one orbit speed step.
	OrbitUp()

	// OrbitDown queues a keyboard tilt downward by one orbit speed step.
	OrbitDown()

	// Update applies pending input, clamps the result to the configured bounds,
	// and recomputes the camera position. With damping enabled only a fraction
	// of the pending input is applied per call and the rest carries over.
	// Returns:
	//   - bool: true if the camera moved
	Update() bool

	// Radius returns the current orbit radius (distance from target).
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the current horizontal angle around the Y axis.
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal angle directly and recomputes position.
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the current vertical angle from the horizontal plane.
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// SetElevation sets the vertical angle directly, clamped to min/max bounds.
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float32)

	// RadiusBounds returns the allowed orbit radius range.
	// Returns:
	//   - min, max: zoom distance limits
	RadiusBounds() (min, max float32)

	// ElevationBounds returns the allowed elevation range.
	// Returns:
	//   - min, max: elevation limits in radians
	ElevationBounds() (min, max float32)
}
