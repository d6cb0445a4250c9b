package target

import (
	"fmt"

	"github.com/Carmen-Shannon/glue/common"
)

// RenderbufferFormat is the storage format of a renderbuffer.
type RenderbufferFormat int

const (
	// RenderbufferDepth24 is a 24 bit depth buffer.
	RenderbufferDepth24 RenderbufferFormat = iota

	// RenderbufferDepth24Stencil8 is a packed depth and stencil buffer.
	RenderbufferDepth24Stencil8

	// RenderbufferRGBA8 is an 8 bit per channel color buffer.
	RenderbufferRGBA8
)

func (f RenderbufferFormat) String() string {
	switch f {
	case RenderbufferDepth24:
		return "depth24"
	case RenderbufferDepth24Stencil8:
		return "depth24stencil8"
	case RenderbufferRGBA8:
		return "rgba8"
	}
	return fmt.Sprintf("RenderbufferFormat(%d)", int(f))
}

// renderbuffer is the implementation of the Renderbuffer interface.
type renderbuffer struct {
	id     common.ResourceID
	format RenderbufferFormat
	size   common.Size
}

// Renderbuffer is a non-sampled framebuffer attachment. A zero Size tracks the screen:
// the render context re-allocates its storage whenever the context size changes.
type Renderbuffer interface {
	// ID retrieves the resource identity used as the renderbuffer cache key.
	//
	// Returns:
	//   - common.ResourceID: the renderbuffer's identity
	ID() common.ResourceID

	// Format returns the storage format.
	//
	// Returns:
	//   - RenderbufferFormat: the format
	Format() RenderbufferFormat

	// Size returns the fixed size, or a zero size for screen-tracking renderbuffers.
	//
	// Returns:
	//   - common.Size: the size
	Size() common.Size

	// TracksScreen reports whether the storage follows the context size.
	//
	// Returns:
	//   - bool: true if Size is zero
	TracksScreen() bool
}

var _ Renderbuffer = &renderbuffer{}

// NewRenderbuffer creates a Renderbuffer descriptor. It defaults to a screen-tracking depth buffer.
//
// Parameters:
//   - id: the renderbuffer identity, an empty id is replaced by a generated one
//   - options: variadic list of RenderbufferBuilderOption functions
//
// Returns:
//   - Renderbuffer: the renderbuffer descriptor
func NewRenderbuffer(id common.ResourceID, options ...RenderbufferBuilderOption) Renderbuffer {
	if id == "" {
		id = common.NewResourceID("renderbuffer")
	}
	rb := &renderbuffer{id: id, format: RenderbufferDepth24}
	for _, opt := range options {
		opt(rb)
	}
	return rb
}

func (r *renderbuffer) ID() common.ResourceID {
	return r.id
}

func (r *renderbuffer) Format() RenderbufferFormat {
	return r.format
}

func (r *renderbuffer) Size() common.Size {
	return r.size
}

func (r *renderbuffer) TracksScreen() bool {
	return r.size.IsZero()
}
