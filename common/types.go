// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"fmt"

	"github.com/google/uuid"
)

// ResourceID is the stable identity of a logical GPU resource (geometry, shader, texture, framebuffer or renderbuffer).
// Two ResourceIDs are equal iff they denote the same logical resource, and the value is used directly as a cache key.
type ResourceID string

// NewResourceID generates a unique ResourceID for resources that were not given an explicit name.
//
// Parameters:
//   - prefix: a readable prefix for the id, typically the resource kind (e.g. "texture")
//
// Returns:
//   - ResourceID: the generated identity in the form "<prefix>_<uuid>"
func NewResourceID(prefix string) ResourceID {
	return ResourceID(prefix + "_" + uuid.NewString())
}

// String returns the identity as a plain string.
func (id ResourceID) String() string {
	return string(id)
}

// ResourceCategory identifies one of the fixed resource caches owned by a render context.
type ResourceCategory int

const (
	// ResourceShader is a linked shader program together with its introspected uniform table.
	ResourceShader ResourceCategory = iota

	// ResourceGeometry is a set of vertex/index buffers plus draw-range descriptors.
	ResourceGeometry

	// ResourceTexture is a GPU image with its sampler state.
	ResourceTexture

	// ResourceFramebuffer is an offscreen render target with its attachments.
	ResourceFramebuffer

	// ResourceRenderbuffer is a non-sampled attachment, usually depth or stencil.
	ResourceRenderbuffer

	resourceCategoryCount
)

// ResourceCategories lists every valid ResourceCategory in declaration order.
var ResourceCategories = []ResourceCategory{
	ResourceShader,
	ResourceGeometry,
	ResourceTexture,
	ResourceFramebuffer,
	ResourceRenderbuffer,
}

// Valid reports whether c is one of the fixed resource categories.
func (c ResourceCategory) Valid() bool {
	return c >= 0 && c < resourceCategoryCount
}

func (c ResourceCategory) String() string {
	switch c {
	case ResourceShader:
		return "shader"
	case ResourceGeometry:
		return "geometry"
	case ResourceTexture:
		return "texture"
	case ResourceFramebuffer:
		return "framebuffer"
	case ResourceRenderbuffer:
		return "renderbuffer"
	}
	return fmt.Sprintf("ResourceCategory(%d)", int(c))
}

// Size is a width/height pair in pixels.
// A zero Size on a texture or renderbuffer descriptor means "track the screen size".
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether neither dimension has been set.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Aspect returns Width/Height, or 1 when Height is zero.
func (s Size) Aspect() float32 {
	if s.Height == 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}
