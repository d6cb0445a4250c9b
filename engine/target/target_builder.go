package target

import (
	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/texture"
)

// FramebufferBuilderOption is a functional option for configuring a Framebuffer via NewFramebuffer.
type FramebufferBuilderOption func(*framebuffer)

// RenderbufferBuilderOption is a functional option for configuring a Renderbuffer via NewRenderbuffer.
type RenderbufferBuilderOption func(*renderbuffer)

// WithColor is an option builder that appends color attachments to the Framebuffer.
//
// Parameters:
//   - textures: the color textures, attached in order
//
// Returns:
//   - FramebufferBuilderOption: a function that applies the color option to a framebuffer
func WithColor(textures ...texture.Texture) FramebufferBuilderOption {
	return func(f *framebuffer) {
		f.color = append(f.color, textures...)
	}
}

// WithDepthTexture is an option builder that attaches a sampled depth texture.
// It replaces any depth renderbuffer.
//
// Parameters:
//   - tex: a FormatDepth24 texture
//
// Returns:
//   - FramebufferBuilderOption: a function that applies the depth option to a framebuffer
func WithDepthTexture(tex texture.Texture) FramebufferBuilderOption {
	return func(f *framebuffer) {
		f.depthTexture = tex
		f.depthRenderbuffer = nil
	}
}

// WithDepthRenderbuffer is an option builder that attaches a depth renderbuffer.
// It replaces any depth texture.
//
// Parameters:
//   - rb: the depth renderbuffer
//
// Returns:
//   - FramebufferBuilderOption: a function that applies the depth option to a framebuffer
func WithDepthRenderbuffer(rb Renderbuffer) FramebufferBuilderOption {
	return func(f *framebuffer) {
		f.depthRenderbuffer = rb
		f.depthTexture = nil
	}
}

// WithFramebufferSize is an option builder that fixes the Framebuffer's drawing size.
func WithFramebufferSize(width, height int) FramebufferBuilderOption {
	return func(f *framebuffer) {
		f.size = common.Size{Width: width, Height: height}
	}
}

// WithRenderbufferFormat is an option builder that sets the Renderbuffer's storage format.
func WithRenderbufferFormat(format RenderbufferFormat) RenderbufferBuilderOption {
	return func(r *renderbuffer) {
		r.format = format
	}
}

// WithRenderbufferSize is an option builder that fixes the Renderbuffer's size.
func WithRenderbufferSize(width, height int) RenderbufferBuilderOption {
	return func(r *renderbuffer) {
		r.size = common.Size{Width: width, Height: height}
	}
}
