package glbackend

import (
	log "github.com/sirupsen/logrus"
)

// BackendBuilderOption is a functional option applied to a backend during construction via NewBackend.
type BackendBuilderOption func(*backend)

// WithLogger sets the logger used for shader translation and initialization messages.
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - BackendBuilderOption: a function that applies the logger option to a backend
func WithLogger(logger log.FieldLogger) BackendBuilderOption {
	return func(b *backend) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithSizeSource sets the function that reports the default framebuffer size, typically the
// window's framebuffer size. Without it the initial viewport is used.
//
// Parameters:
//   - source: returns width and height in pixels
//
// Returns:
//   - BackendBuilderOption: a function that applies the size source option to a backend
func WithSizeSource(source func() (int, int)) BackendBuilderOption {
	return func(b *backend) {
		b.sizeSource = source
	}
}
