package renderer

import "errors"

var (
	// ErrNoCamera is returned when a render task and its scene both lack a camera.
	ErrNoCamera = errors.New("no camera")

	// ErrUnknownLightCategory is returned when a scene holds lights of a category with no uniform array.
	ErrUnknownLightCategory = errors.New("unknown light category")

	// ErrUnknownResourceCategory is the panic value for a resource category outside the fixed set.
	ErrUnknownResourceCategory = errors.New("unknown resource category")

	// ErrNotTexture is returned when a sampler uniform is given a value that is not a texture.
	ErrNotTexture = errors.New("sampler value is not a texture")
)
