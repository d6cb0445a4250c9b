package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/glue/engine/profiler"
	"github.com/Carmen-Shannon/glue/engine/renderer"
	"github.com/Carmen-Shannon/glue/engine/renderer/glbackend"
	"github.com/Carmen-Shannon/glue/engine/window"
	log "github.com/sirupsen/logrus"
)

// engine implements the Engine interface.
// Owns the window, the GL backend and the render context, and drives frames on the GL thread.
type engine struct {
	// frameMu serializes the tick callback with frame rendering so game logic never
	// mutates a scene while the render context walks it.
	frameMu *sync.Mutex

	logger log.FieldLogger

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window        window.Window
	windowOptions []window.WindowBuilderOption
	windowClosed  bool

	backend        glbackend.Backend
	renderContext  renderer.RenderContext
	renderOptions  []renderer.RenderContextBuilderOption
	fixedDeltaTime float32

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastRender       time.Time
	lastRenderError  string
}

// Engine is the main entry point for the engine.
// It runs the fixed-rate tick loop on its own goroutine and renders frames on the
// goroutine that created it, which owns the OpenGL context.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// RenderContext returns the render context drawing into the window.
	// Scenes, meshes, lights and tasks are registered through it.
	//
	// Returns:
	//   - renderer.RenderContext: the render context
	RenderContext() renderer.RenderContext

	// Backend returns the OpenGL backend under the render context.
	//
	// Returns:
	//   - glbackend.Backend: the backend
	Backend() glbackend.Backend

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	// The tick callback will be called at this rate for game logic updates.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	// Use this for game logic, input processing and camera updates.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each frame after the render context drew it
	// and before the buffers are swapped. It runs on the GL thread.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the engine loops and blocks until the window closes or Quit is called.
	Run()

	// Quit signals all engine goroutines to stop and closes the window.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates the window (unless one is supplied), the OpenGL backend and the render context.
// Must be called from the main goroutine; the window locks it to its OS thread.
// Panics if the OpenGL bindings cannot be loaded.
//
// Parameters:
//   - options: functional options for engine configuration (window, renderer, profiling, tick rate)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		frameMu:          &sync.Mutex{},
		logger:           log.StandardLogger(),
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		e.window = window.NewWindow(e.windowOptions...)
	}
	e.window.MakeContextCurrent()

	backend, err := glbackend.NewBackend(
		glbackend.WithLogger(e.logger),
		glbackend.WithSizeSource(e.window.FramebufferSize),
	)
	if err != nil {
		panic(fmt.Sprintf("engine: NewEngine requires an OpenGL context: %v", err))
	}
	e.backend = backend

	renderOptions := append([]renderer.RenderContextBuilderOption{renderer.WithLogger(e.logger)}, e.renderOptions...)
	e.renderContext = renderer.NewRenderContext(backend, renderOptions...)
	e.profiler.SetLogger(e.logger)

	e.window.SetResizeCallback(func(width, height int) {
		if width == 0 || height == 0 {
			// minimized
			return
		}
		e.frameMu.Lock()
		defer e.frameMu.Unlock()
		e.renderContext.SetSize(width, height)
	})
	e.window.SetUpdateCallback(e.renderFrame)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) RenderContext() renderer.RenderContext {
	return e.renderContext
}

func (e *engine) Backend() glbackend.Backend {
	return e.backend
}

func (e *engine) Run() {
	e.running = true
	e.lastRender = time.Now()
	e.handle()
	e.window.ProcessMessages()

	e.signalQuit()
	e.wg.Wait()
	e.closeWindow()
}

func (e *engine) closeWindow() {
	if e.windowClosed {
		return
	}
	e.windowClosed = true
	if err := e.window.Close(); err != nil {
		e.logger.WithError(err).Warn("failed to close window")
	}
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the engine tick goroutine. Rendering stays on the calling goroutine.
func (e *engine) handle() {
	e.wg.Add(1)
	go e.handleEngine()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Fires the tick callback at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.tickCallback != nil {
				e.frameMu.Lock()
				e.tickCallback(dt)
				e.frameMu.Unlock()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// renderFrame is the window update callback. It draws one frame through the render context,
// presents it, and applies the frame limit. A closed quit channel stops the window loop.
func (e *engine) renderFrame() {
	select {
	case <-e.quitChannel:
		e.closeWindow()
		return
	default:
	}

	now := time.Now()
	dt := float32(now.Sub(e.lastRender).Seconds())
	e.lastRender = now
	if e.fixedDeltaTime > 0 {
		dt = e.fixedDeltaTime
	}

	e.frameMu.Lock()
	e.renderContext.SetDeltaTime(dt)
	err := e.renderContext.Render()
	if e.renderCallback != nil {
		e.renderCallback(dt)
	}
	e.frameMu.Unlock()
	e.reportRenderError(err)

	e.window.SwapBuffers()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(e.renderContext.Metrics())
	}

	// Frame rate limiting
	if e.renderFrameLimit > 0 {
		elapsed := time.Since(now)
		if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// reportRenderError logs a failed frame once per distinct error so a broken scene does
// not flood the log at the frame rate.
func (e *engine) reportRenderError(err error) {
	if err == nil {
		if e.lastRenderError != "" {
			e.logger.Info("rendering recovered")
			e.lastRenderError = ""
		}
		return
	}
	if msg := err.Error(); msg != e.lastRenderError {
		e.lastRenderError = msg
		e.logger.WithError(err).Error("frame render failed")
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	if e.running {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

// frameDuration converts a rate in frames per second to a frame duration; 0 for rates <= 0.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
