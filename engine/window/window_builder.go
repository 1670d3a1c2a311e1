package window

// WindowBuilderOption is a functional option for configuring a window.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title bar text
//
// Returns:
//   - WindowBuilderOption: functional option to set the title
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the requested window size.
//
// Parameters:
//   - width, height: the size in screen coordinates, ignored if not positive
//
// Returns:
//   - WindowBuilderOption: functional option to set the size
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 && height > 0 {
			w.width, w.height = width, height
		}
	}
}

// WithMinSize sets the smallest size the user can resize the window to.
//
// Parameters:
//   - width, height: the minimum size, 0 for no limit
//
// Returns:
//   - WindowBuilderOption: functional option to set the minimum size
func WithMinSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth, w.minHeight = width, height
	}
}

// WithMaxSize sets the largest size the user can resize the window to.
//
// Parameters:
//   - width, height: the maximum size, 0 for no limit
//
// Returns:
//   - WindowBuilderOption: functional option to set the maximum size
func WithMaxSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.maxWidth, w.maxHeight = width, height
	}
}
