package renderer

import (
	"maps"

	"github.com/Carmen-Shannon/glue/engine/light"
	"github.com/Carmen-Shannon/glue/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// RenderContextBuilderOption is a functional option applied to a render context during construction via NewRenderContext.
type RenderContextBuilderOption func(*renderContext)

// WithLogger sets the logger the render context reports resource creation and resets to.
// The default is the logrus standard logger.
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - RenderContextBuilderOption: a function that applies the logger option to a render context
func WithLogger(logger log.FieldLogger) RenderContextBuilderOption {
	return func(r *renderContext) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClearColor sets the color the default framebuffer and every task target are cleared to.
//
// Parameters:
//   - color: the RGBA clear color
//
// Returns:
//   - RenderContextBuilderOption: a function that applies the clear color option to a render context
func WithClearColor(color mgl32.Vec4) RenderContextBuilderOption {
	return func(r *renderContext) {
		r.clearColor = color
	}
}

// WithSharedAttributes replaces the attribute locations bound before linking shaders that
// use the shared attribute layout.
//
// Parameters:
//   - attributes: attribute name to location
//
// Returns:
//   - RenderContextBuilderOption: a function that applies the attributes option to a render context
func WithSharedAttributes(attributes map[string]uint32) RenderContextBuilderOption {
	return func(r *renderContext) {
		r.sharedAttributes = maps.Clone(attributes)
	}
}

// WithLightUniforms overrides the uniform array names lights are uploaded into. Categories
// missing from the map keep their default name.
//
// Parameters:
//   - names: light category to uniform array name
//
// Returns:
//   - RenderContextBuilderOption: a function that applies the light uniform option to a render context
func WithLightUniforms(names map[light.Category]string) RenderContextBuilderOption {
	return func(r *renderContext) {
		merged := maps.Clone(light.DefaultUniformNames)
		maps.Copy(merged, names)
		r.lightUniforms = merged
	}
}

// WithMaxTextureUnits caps the number of texture slots below the device limit.
func WithMaxTextureUnits(n int) RenderContextBuilderOption {
	return func(r *renderContext) {
		r.maxTextureUnits = n
	}
}

// WithMainScene replaces the default empty main scene.
func WithMainScene(s scene.Scene) RenderContextBuilderOption {
	return func(r *renderContext) {
		r.mainScene = s
	}
}

// WithTasks replaces the default top level task that draws the main scene to the screen.
func WithTasks(tasks ...*scene.RenderTask) RenderContextBuilderOption {
	return func(r *renderContext) {
		r.tasks = tasks
	}
}

// WithDeltaTime sets the frame time step in seconds. The default is 1/60.
func WithDeltaTime(dt float32) RenderContextBuilderOption {
	return func(r *renderContext) {
		r.deltaTime = dt
	}
}
