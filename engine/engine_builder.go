package engine

import (
	"github.com/Carmen-Shannon/glue/engine/config"
	"github.com/Carmen-Shannon/glue/engine/renderer"
	"github.com/Carmen-Shannon/glue/engine/window"
	log "github.com/sirupsen/logrus"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = frameDuration(fps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally. The window options passed through WithWindowOptions are
// ignored when a window is supplied.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithWindowOptions appends options for the window the engine creates.
//
// Parameters:
//   - options: window options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindowOptions(options ...window.WindowBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.windowOptions = append(e.windowOptions, options...)
	}
}

// WithRendererOptions appends options for the render context. The engine's logger is applied
// first, so a renderer.WithLogger here takes precedence.
//
// Parameters:
//   - options: render context options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRendererOptions(options ...renderer.RenderContextBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.renderOptions = append(e.renderOptions, options...)
	}
}

// WithLogger sets the logger shared by the engine, the backend, the render context and the profiler.
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger log.FieldLogger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithFixedDeltaTime makes every frame report the same time step instead of the measured one.
// Useful for deterministic captures. Values <= 0 restore measured time steps.
//
// Parameters:
//   - dt: time step in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFixedDeltaTime(dt float32) EngineBuilderOption {
	return func(e *engine) {
		e.fixedDeltaTime = max(dt, 0)
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameDuration(fps)
	}
}

// WithConfig applies a loaded configuration: window size and title, tick rate, frame limit,
// profiling, the texture unit cap and the log level of the standard logger.
//
// Parameters:
//   - cfg: the configuration, usually from config.Load
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.Configuration) EngineBuilderOption {
	return func(e *engine) {
		e.windowOptions = append(e.windowOptions,
			window.WithTitle(cfg.Window.Title),
			window.WithWidth(cfg.Window.Width),
			window.WithHeight(cfg.Window.Height),
			window.WithVSync(cfg.Window.VSync),
		)
		if cfg.Engine.TickRate > 0 {
			e.engineTickRate = frameDuration(cfg.Engine.TickRate)
		}
		e.renderFrameLimit = frameDuration(cfg.Engine.FrameLimit)
		e.profilingEnabled = cfg.Engine.Profiling
		if cfg.Renderer.MaxTextureUnits > 0 {
			e.renderOptions = append(e.renderOptions, renderer.WithMaxTextureUnits(cfg.Renderer.MaxTextureUnits))
		}
		if logger, ok := e.logger.(*log.Logger); ok {
			logger.SetLevel(cfg.Log.Level)
		}
	}
}
