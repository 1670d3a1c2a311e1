package texture

// LoaderBuilderOption is a function that configures a Loader instance during construction.
type LoaderBuilderOption func(*loaderImpl)

// WithWorkers is an option builder that sets the maximum number of goroutines
// LoadAll decodes on.
//
// Parameters:
//   - n: the worker count, ignored if less than 1
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker option to a loaderImpl
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loaderImpl) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithQueueSize is an option builder that sets the task queue capacity of the
// loader's worker pool.
//
// Parameters:
//   - n: the queue capacity, ignored if less than 1
//
// Returns:
//   - LoaderBuilderOption: a function that applies the queue size option to a loaderImpl
func WithQueueSize(n int) LoaderBuilderOption {
	return func(l *loaderImpl) {
		if n > 0 {
			l.queueSize = n
		}
	}
}

// WithFallbackColor is an option builder that sets the RGBA color of the 1x1
// placeholder returned for assets that fail to load.
//
// Parameters:
//   - rgba: the placeholder texel
//
// Returns:
//   - LoaderBuilderOption: a function that applies the fallback color option to a loaderImpl
func WithFallbackColor(rgba [4]byte) LoaderBuilderOption {
	return func(l *loaderImpl) {
		l.fallbackColor = rgba
	}
}
