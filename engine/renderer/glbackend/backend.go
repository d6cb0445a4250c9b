// Package glbackend implements the render context backend on desktop OpenGL 4.1 core.
package glbackend

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	gst "github.com/richinsley/goshadertranslator"
	log "github.com/sirupsen/logrus"
)

var glInitOnce sync.Once
var glInitErr error

// backend is the implementation of the Backend interface.
type backend struct {
	logger     log.FieldLogger
	sizeSource func() (int, int)
	lost       atomic.Bool

	translator *gst.ShaderTranslator

	programs   map[renderer.Handle]*glProgram
	geometries map[renderer.Handle]*glGeometry
}

// Backend is a renderer.RendererBackend on an OpenGL 4.1 core context.
//
// All methods must be called on the goroutine the context is current on.
type Backend interface {
	renderer.RendererBackend

	// SetContextLost marks the native context as lost or restored. While lost, the render
	// context skips frames. After a restore the render context must be Reset.
	//
	// Parameters:
	//   - lost: true if the context is gone
	SetContextLost(lost bool)
}

var _ Backend = &backend{}

// NewBackend loads the OpenGL function pointers and creates a Backend.
// The OpenGL context must be current on the calling goroutine.
//
// Parameters:
//   - options: functional options to configure the backend
//
// Returns:
//   - Backend: the backend
//   - error: an error if the OpenGL bindings could not be initialized
func NewBackend(options ...BackendBuilderOption) (Backend, error) {
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("glbackend: failed to initialize OpenGL: %w", glInitErr)
	}

	b := &backend{
		logger:     log.StandardLogger(),
		programs:   make(map[renderer.Handle]*glProgram),
		geometries: make(map[renderer.Handle]*glGeometry),
	}
	for _, option := range options {
		option(b)
	}
	if b.sizeSource == nil {
		b.sizeSource = b.viewportSize
	}

	b.logger.WithFields(log.Fields{
		"version":  gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer": gl.GoStr(gl.GetString(gl.RENDERER)),
	}).Info("OpenGL backend initialized")
	return b, nil
}

func (b *backend) SetContextLost(lost bool) {
	b.lost.Store(lost)
}

func (b *backend) IsContextLost() bool {
	return b.lost.Load()
}

func (b *backend) DrawingBufferSize() common.Size {
	w, h := b.sizeSource()
	return common.Size{Width: w, Height: h}
}

func (b *backend) viewportSize() (int, int) {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	return int(vp[2]), int(vp[3])
}

func (b *backend) MaxTextureUnits() int {
	var n int32
	gl.GetIntegerv(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS, &n)
	return int(n)
}

func (b *backend) InitState(clearColor mgl32.Vec4) {
	// Handles from before a reset are invalid in a restored context.
	clear(b.programs)
	clear(b.geometries)

	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.DepthFunc(gl.LEQUAL)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *backend) BindFramebuffer(fb renderer.Handle) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb))
}

func (b *backend) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (b *backend) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
