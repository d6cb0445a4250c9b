package texture

import log "github.com/sirupsen/logrus"

// LoaderOption is a functional option applied to a Loader during construction via NewLoader.
type LoaderOption func(*Loader)

// WithWorkers sets the number of decode workers. Defaults to half the CPU count.
//
// Parameters:
//   - n: the worker count, values below 1 are ignored
//
// Returns:
//   - LoaderOption: a function that applies the worker count to a Loader
func WithWorkers(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithMaxSize downscales any decoded image whose larger side exceeds size, keeping the aspect ratio.
//
// Parameters:
//   - size: the maximum width or height in pixels, 0 disables downscaling
//
// Returns:
//   - LoaderOption: a function that applies the size limit to a Loader
func WithMaxSize(size int) LoaderOption {
	return func(l *Loader) {
		l.maxSize = size
	}
}

// WithLogger sets the logger used for load failures. Defaults to the logrus standard logger.
func WithLogger(logger log.FieldLogger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}
