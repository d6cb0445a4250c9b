package renderer

import (
	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/geometry"
	"github.com/Carmen-Shannon/glue/engine/renderer/shader"
	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/Carmen-Shannon/glue/engine/target"
	"github.com/Carmen-Shannon/glue/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// Handle is an opaque native object name. Zero means "none" (or the default framebuffer).
type Handle uint32

// FramebufferAttachments lists the native objects attached to a framebuffer.
type FramebufferAttachments struct {
	// Color holds one texture per color attachment, in attachment order.
	Color []Handle
	// ColorKinds holds the texture kind of each Color entry.
	ColorKinds []texture.Kind
	// DepthTexture is a sampled depth attachment, or zero.
	DepthTexture Handle
	// DepthRenderbuffer is a non-sampled depth attachment, or zero.
	DepthRenderbuffer Handle
	// DepthStencil reports whether DepthRenderbuffer also carries stencil.
	DepthStencil bool
}

// RendererBackend is the native graphics API driven by the render context.
//
// Every method is called from the goroutine that owns the native context. The backend
// holds no caches of its own: the render context decides when objects are created, bound
// and uploaded, so each call maps to a native call (or a short fixed sequence of them).
type RendererBackend interface {
	uniform.Uploader

	// IsContextLost reports whether the native context is gone. While it is, Render draws nothing.
	//
	// Returns:
	//   - bool: true if the context is lost
	IsContextLost() bool

	// DrawingBufferSize returns the size of the default framebuffer in pixels.
	//
	// Returns:
	//   - common.Size: the drawing buffer size
	DrawingBufferSize() common.Size

	// MaxTextureUnits returns the device limit of combined texture image units.
	//
	// Returns:
	//   - int: the number of texture slots
	MaxTextureUnits() int

	// InitState sets the fixed pipeline state after a context (re)initialization:
	// clear color, depth test, back face culling, LEQUAL depth function. It then clears
	// the default framebuffer.
	//
	// Parameters:
	//   - clearColor: the RGBA clear color
	InitState(clearColor mgl32.Vec4)

	// CreateProgram compiles and links a shader and introspects its active uniforms.
	//
	// Parameters:
	//   - s: the shader descriptor
	//   - attributes: fixed attribute locations bound before linking, nil to let the linker choose
	//
	// Returns:
	//   - Handle: the program
	//   - []uniform.Info: the active uniforms
	//   - error: a compile or link error including the info log
	CreateProgram(s shader.Shader, attributes map[string]uint32) (Handle, []uniform.Info, error)

	// UseProgram makes a program current.
	UseProgram(program Handle)

	// CreateGeometry uploads vertex attributes and indices into native buffers.
	//
	// Parameters:
	//   - g: the geometry descriptor
	//
	// Returns:
	//   - Handle: the geometry's vertex state object
	//   - error: an error if buffer creation fails
	CreateGeometry(g geometry.Geometry) (Handle, error)

	// BindGeometry binds a geometry's vertex state and points every attribute the program
	// declares at the matching buffer.
	//
	// Parameters:
	//   - geom: the geometry handle
	//   - program: the current program
	BindGeometry(geom Handle, program Handle)

	// Draw issues one draw call for a range of the bound geometry.
	//
	// Parameters:
	//   - r: the draw range
	//   - indexed: true to draw from the index buffer
	Draw(r geometry.DrawRange, indexed bool)

	// CreateTexture allocates a texture name without storage.
	//
	// Returns:
	//   - Handle: the texture
	//   - error: an error if allocation fails
	CreateTexture() (Handle, error)

	// BindTexture binds a texture to a texture slot.
	//
	// Parameters:
	//   - unit: the slot index
	//   - kind: the texture target
	//   - tex: the texture handle
	BindTexture(unit int, kind texture.Kind, tex Handle)

	// UploadTexture specifies the storage and pixel data of a texture through the given slot.
	// Textures without a source get uninitialized storage of the given size.
	//
	// Parameters:
	//   - unit: the slot the texture is bound to
	//   - handle: the texture handle
	//   - tex: the texture descriptor
	//   - size: the storage size for textures without a source
	//
	// Returns:
	//   - error: an error if the upload fails
	UploadTexture(unit int, handle Handle, tex texture.Texture, size common.Size) error

	// CreateRenderbuffer allocates renderbuffer storage.
	//
	// Parameters:
	//   - rb: the renderbuffer descriptor
	//   - size: the storage size
	//
	// Returns:
	//   - Handle: the renderbuffer
	//   - error: an error if allocation fails
	CreateRenderbuffer(rb target.Renderbuffer, size common.Size) (Handle, error)

	// ResizeRenderbuffer re-allocates renderbuffer storage at a new size.
	ResizeRenderbuffer(handle Handle, rb target.Renderbuffer, size common.Size)

	// CreateFramebuffer creates a framebuffer from existing attachments and checks completeness.
	//
	// Parameters:
	//   - attachments: the attached objects
	//
	// Returns:
	//   - Handle: the framebuffer
	//   - error: an error if the framebuffer is incomplete
	CreateFramebuffer(attachments FramebufferAttachments) (Handle, error)

	// BindFramebuffer makes a framebuffer the draw target. Zero binds the default framebuffer.
	BindFramebuffer(fb Handle)

	// Viewport sets the viewport rectangle.
	Viewport(x, y, width, height int)

	// Clear clears the color and depth buffers of the current target.
	Clear()
}
