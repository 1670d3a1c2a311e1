package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyR     = 82  // R key (ASCII)
	KeyP     = 80  // P key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)

	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)
