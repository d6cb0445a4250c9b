// Package target describes offscreen render targets: framebuffers built from texture and
// renderbuffer attachments. Descriptors carry no native state; the render context creates
// the native objects the first time a render task draws into them.
package target

import (
	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/texture"
)

// framebuffer is the implementation of the Framebuffer interface.
type framebuffer struct {
	id                common.ResourceID
	color             []texture.Texture
	depthTexture      texture.Texture
	depthRenderbuffer Renderbuffer
	size              common.Size
}

// Framebuffer is an offscreen render target.
//
// Color attachments are textures so later passes can sample them. Depth is either a depth
// texture (for shadow maps) or a renderbuffer. A framebuffer without an explicit size takes
// the size of its first sized attachment and, failing that, the context size.
type Framebuffer interface {
	// ID retrieves the resource identity used as the framebuffer cache key.
	//
	// Returns:
	//   - common.ResourceID: the framebuffer's identity
	ID() common.ResourceID

	// Color returns the color attachments in attachment order.
	//
	// Returns:
	//   - []texture.Texture: the color textures
	Color() []texture.Texture

	// DepthTexture returns the sampled depth attachment, or nil.
	//
	// Returns:
	//   - texture.Texture: the depth texture
	DepthTexture() texture.Texture

	// DepthRenderbuffer returns the non-sampled depth attachment, or nil.
	//
	// Returns:
	//   - Renderbuffer: the depth renderbuffer
	DepthRenderbuffer() Renderbuffer

	// Size returns the drawing size, or a zero size when every attachment tracks the screen.
	//
	// Returns:
	//   - common.Size: the framebuffer size
	Size() common.Size
}

var _ Framebuffer = &framebuffer{}

// NewFramebuffer creates a Framebuffer descriptor with the specified options applied.
//
// Parameters:
//   - id: the framebuffer identity, an empty id is replaced by a generated one
//   - options: variadic list of FramebufferBuilderOption functions
//
// Returns:
//   - Framebuffer: the framebuffer descriptor
func NewFramebuffer(id common.ResourceID, options ...FramebufferBuilderOption) Framebuffer {
	if id == "" {
		id = common.NewResourceID("framebuffer")
	}
	fb := &framebuffer{id: id}
	for _, opt := range options {
		opt(fb)
	}
	return fb
}

func (f *framebuffer) ID() common.ResourceID {
	return f.id
}

func (f *framebuffer) Color() []texture.Texture {
	return f.color
}

func (f *framebuffer) DepthTexture() texture.Texture {
	return f.depthTexture
}

func (f *framebuffer) DepthRenderbuffer() Renderbuffer {
	return f.depthRenderbuffer
}

func (f *framebuffer) Size() common.Size {
	if !f.size.IsZero() {
		return f.size
	}
	for _, c := range f.color {
		if s := c.Size(); !s.IsZero() {
			return s
		}
	}
	if f.depthTexture != nil {
		if s := f.depthTexture.Size(); !s.IsZero() {
			return s
		}
	}
	if f.depthRenderbuffer != nil {
		return f.depthRenderbuffer.Size()
	}
	return common.Size{}
}
