package renderer

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/camera"
	"github.com/Carmen-Shannon/glue/engine/geometry"
	"github.com/Carmen-Shannon/glue/engine/light"
	"github.com/Carmen-Shannon/glue/engine/renderer/material"
	"github.com/Carmen-Shannon/glue/engine/renderer/shader"
	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/Carmen-Shannon/glue/engine/scene"
	"github.com/Carmen-Shannon/glue/engine/target"
	"github.com/Carmen-Shannon/glue/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

const (
	// ModelUniform receives the mesh world matrix.
	ModelUniform = "uModel"
	// ModelNormalUniform receives the inverse transpose of the mesh world matrix.
	ModelNormalUniform = "uModelInvTransp"

	defaultDeltaTime = float32(1.0 / 60.0)
)

// DefaultClearColor is the clear color applied on context initialization.
var DefaultClearColor = mgl32.Vec4{57.0 / 255.0, 57.0 / 255.0, 57.0 / 255.0, 1}

type shaderEntry struct {
	handle   Handle
	uniforms *uniform.Node
	shared   bool
	state    bindState
}

type geometryEntry struct {
	handle  Handle
	indexed bool
	ranges  []geometry.DrawRange
}

type framebufferEntry struct {
	handle Handle
	size   common.Size
}

type renderbufferEntry struct {
	handle Handle
	size   sizeKey
}

// renderContext is the implementation of the RenderContext interface.
type renderContext struct {
	mu *sync.Mutex

	backend RendererBackend
	binder  *uniform.Binder
	logger  log.FieldLogger

	clearColor       mgl32.Vec4
	sharedAttributes map[string]uint32
	lightUniforms    map[light.Category]string
	maxTextureUnits  int

	mainScene scene.Scene
	tasks     []*scene.RenderTask
	deltaTime float32
	size      common.Size

	shaders       *resourceCache[shaderEntry]
	geometries    *resourceCache[geometryEntry]
	textures      *resourceCache[textureEntry]
	framebuffers  *resourceCache[framebufferEntry]
	renderbuffers *resourceCache[renderbufferEntry]

	slots   *textureSlots
	pending []pendingTexture

	tick          uint64
	cameraChanged uint64

	currentShader      *shaderEntry
	currentGeometry    *geometryEntry
	currentGeometryID  common.ResourceID
	currentFramebuffer common.ResourceID
	camera             camera.Camera
	lights             uniform.Values
	mode               string
	defaultMaterial    material.Material

	metrics Metrics
}

type pendingTexture struct {
	tex   texture.Texture
	entry *textureEntry
}

// RenderContext owns every native resource of one graphics context and turns a tree of
// render tasks into draw calls, skipping state changes that would not change the output.
//
// A RenderContext is driven from the goroutine that owns the native context. Texture data may
// arrive from other goroutines between frames; it is picked up by polling at the start of Render.
type RenderContext interface {
	// Render draws one frame: it polls pending textures, then executes every top level task
	// and its sub-tasks. A lost context draws nothing and returns nil.
	//
	// Returns:
	//   - error: ErrNoCamera or ErrUnknownLightCategory wrapped with the failing task, or a
	//     native resource creation error
	Render() error

	// Reset drops every cached native resource and re-initializes the fixed pipeline state.
	// It is the recovery path after the native context was lost and restored. Resources are
	// re-created lazily on next use. The frame tick restarts at zero.
	Reset()

	// ResetScene empties the main scene. Cached native resources are kept.
	ResetScene()

	// SetSize sets the size of the default framebuffer. Screen tracking textures and
	// renderbuffers are resized the next time they are used.
	//
	// Parameters:
	//   - width: the width in pixels
	//   - height: the height in pixels
	SetSize(width, height int)

	// Size returns the size of the default framebuffer.
	Size() common.Size

	// MainScene returns the scene drawn by tasks that do not name a scene of their own.
	MainScene() scene.Scene

	// AddMesh adds a mesh to the main scene.
	AddMesh(m scene.Mesh)

	// AddLight adds a light to the main scene.
	AddLight(l light.Light)

	// AddTask adds a sub-task to the main scene. It runs before the main scene's meshes
	// are drawn, so a render-to-texture pass added here is sampled in the same frame.
	AddTask(t *scene.RenderTask)

	// Tasks returns the top level render tasks.
	Tasks() []*scene.RenderTask

	// SetTasks replaces the top level render tasks.
	SetTasks(tasks ...*scene.RenderTask)

	// DeltaTime returns the frame time step in seconds used by frame drivers.
	DeltaTime() float32

	// SetDeltaTime sets the frame time step in seconds.
	SetDeltaTime(dt float32)

	// FrameTick returns the number of task executions since the last context reset.
	FrameTick() uint64

	// Metrics returns a snapshot of the render counters.
	Metrics() Metrics

	// Created returns the number of native objects of a category created since the last reset.
	// It panics if c is not a known resource category.
	//
	// Parameters:
	//   - c: the resource category
	//
	// Returns:
	//   - int: the number of created objects
	Created(c common.ResourceCategory) int

	// Texture makes sure the native texture for tex exists and matches its descriptor.
	// Screen tracking textures are re-allocated when the context size changed.
	//
	// Parameters:
	//   - tex: the texture descriptor
	//
	// Returns:
	//   - error: an error if the native texture could not be created or uploaded
	Texture(tex texture.Texture) error

	// UseTexture binds tex to a texture slot, evicting the least recently used texture if
	// every slot is taken.
	//
	// Parameters:
	//   - tex: the texture descriptor
	//
	// Returns:
	//   - int: the slot index
	//   - error: an error if the native texture could not be created or uploaded
	UseTexture(tex texture.Texture) (int, error)

	// Renderbuffer makes sure the native renderbuffer for rb exists and matches its size.
	//
	// Parameters:
	//   - rb: the renderbuffer descriptor
	//
	// Returns:
	//   - error: an error if the native renderbuffer could not be created
	Renderbuffer(rb target.Renderbuffer) error

	// PendingTextures returns the identities of textures still waiting for their pixel data.
	PendingTextures() []common.ResourceID
}

var _ RenderContext = &renderContext{}

// NewRenderContext creates a RenderContext on top of a native backend and initializes the
// fixed pipeline state. By default the context has an empty main scene and one top level
// task that draws it to the screen.
//
// Parameters:
//   - backend: the native graphics backend
//   - options: functional options to configure the context
//
// Returns:
//   - RenderContext: the render context
func NewRenderContext(backend RendererBackend, options ...RenderContextBuilderOption) RenderContext {
	if backend == nil {
		panic("renderer: NewRenderContext requires a backend")
	}
	r := &renderContext{
		mu:               &sync.Mutex{},
		backend:          backend,
		logger:           log.StandardLogger(),
		clearColor:       DefaultClearColor,
		sharedAttributes: geometry.SharedAttributes,
		lightUniforms:    light.DefaultUniformNames,
		deltaTime:        defaultDeltaTime,
	}
	for _, option := range options {
		option(r)
	}
	if r.mainScene == nil {
		r.mainScene = scene.NewScene("main")
	}
	if r.tasks == nil {
		r.tasks = []*scene.RenderTask{scene.NewRenderTask("main", r.mainScene)}
	}
	r.binder = uniform.NewBinder(backend, r.resolveSampler)
	r.resetContext()
	return r
}

func (r *renderContext) Render() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backend.IsContextLost() {
		return nil
	}
	r.metrics.resetFrame()
	r.handleLoadingTextures()

	visited := make(map[*scene.RenderTask]struct{})
	for _, task := range r.tasks {
		// already reached as a sub-task of an earlier task
		if _, seen := visited[task]; seen {
			continue
		}
		if err := r.renderTask(task, r.mainScene, true, visited); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderContext) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetContext()
}

func (r *renderContext) ResetScene() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mainScene.Reset()
}

func (r *renderContext) SetSize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	size := common.Size{Width: width, Height: height}
	if size == r.size {
		return
	}
	r.size = size
	r.logger.WithFields(log.Fields{"width": width, "height": height}).Debug("render context resized")
}

func (r *renderContext) Size() common.Size {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

func (r *renderContext) MainScene() scene.Scene {
	return r.mainScene
}

func (r *renderContext) AddMesh(m scene.Mesh) {
	r.mainScene.AddMesh(m)
}

func (r *renderContext) AddLight(l light.Light) {
	r.mainScene.AddLight(l)
}

func (r *renderContext) AddTask(t *scene.RenderTask) {
	r.mainScene.AddTask(t)
}

func (r *renderContext) Tasks() []*scene.RenderTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.tasks)
}

func (r *renderContext) SetTasks(tasks ...*scene.RenderTask) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = slices.Clone(tasks)
}

func (r *renderContext) DeltaTime() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deltaTime
}

func (r *renderContext) SetDeltaTime(dt float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deltaTime = dt
}

func (r *renderContext) FrameTick() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tick
}

func (r *renderContext) Metrics() Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.metrics.clone()
	for _, c := range common.ResourceCategories {
		m.Created[c] = r.created(c)
	}
	return m
}

func (r *renderContext) Created(c common.ResourceCategory) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created(c)
}

func (r *renderContext) Texture(tex texture.Texture) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getTexture(tex)
}

func (r *renderContext) UseTexture(tex texture.Texture) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.useTexture(tex, false)
}

func (r *renderContext) Renderbuffer(rb target.Renderbuffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.getRenderbuffer(rb)
	return err
}

func (r *renderContext) PendingTextures() []common.ResourceID {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]common.ResourceID, len(r.pending))
	for i, p := range r.pending {
		ids[i] = p.tex.ID()
	}
	return ids
}

// resetContext discards every cache entry and re-applies the fixed pipeline state.
func (r *renderContext) resetContext() {
	r.shaders = newResourceCache[shaderEntry](common.ResourceShader)
	r.geometries = newResourceCache[geometryEntry](common.ResourceGeometry)
	r.textures = newResourceCache[textureEntry](common.ResourceTexture)
	r.framebuffers = newResourceCache[framebufferEntry](common.ResourceFramebuffer)
	r.renderbuffers = newResourceCache[renderbufferEntry](common.ResourceRenderbuffer)

	units := r.backend.MaxTextureUnits()
	if r.maxTextureUnits > 0 && (units <= 0 || r.maxTextureUnits < units) {
		units = r.maxTextureUnits
	}
	r.slots = newTextureSlots(units)
	r.pending = nil

	r.tick = 0
	r.cameraChanged = 0
	r.currentShader = nil
	r.currentGeometry = nil
	r.currentGeometryID = ""
	r.currentFramebuffer = ""
	r.camera = nil
	r.lights = nil
	r.mode = material.ModeDefault
	r.defaultMaterial = nil
	r.metrics = newMetrics()

	r.size = r.backend.DrawingBufferSize()
	r.backend.InitState(r.clearColor)

	r.logger.WithFields(log.Fields{
		"width":        r.size.Width,
		"height":       r.size.Height,
		"textureUnits": r.slots.capacity(),
	}).Info("render context initialized")
}

func (r *renderContext) created(c common.ResourceCategory) int {
	switch c {
	case common.ResourceShader:
		return r.shaders.created
	case common.ResourceGeometry:
		return r.geometries.created
	case common.ResourceTexture:
		return r.textures.created
	case common.ResourceFramebuffer:
		return r.framebuffers.created
	case common.ResourceRenderbuffer:
		return r.renderbuffers.created
	}
	panic(fmt.Errorf("renderer: %w: %s", ErrUnknownResourceCategory, c))
}

// renderTask executes one task and, when followSub is set, the sub-tasks of its scene first.
func (r *renderContext) renderTask(task *scene.RenderTask, parent scene.Scene, followSub bool, visited map[*scene.RenderTask]struct{}) error {
	visited[task] = struct{}{}

	sc := task.Scene
	if sc == nil {
		sc = parent
	}
	sc.Finalize()

	if followSub {
		for _, sub := range sc.Tasks() {
			if sub == task {
				continue
			}
			if _, seen := visited[sub]; seen {
				continue
			}
			subScene := sub.Scene
			if subScene == nil {
				subScene = sc
			}
			if err := r.renderTask(sub, sc, subScene != sc, visited); err != nil {
				return err
			}
		}
	}

	cam := task.Camera
	if cam == nil {
		cam = sc.Camera()
	}
	if cam == nil {
		return fmt.Errorf("renderer: task %q on scene %q: %w", task.Name, sc.Name(), ErrNoCamera)
	}

	size, err := r.useFramebuffer(task.Target)
	if err != nil {
		return fmt.Errorf("renderer: task %q: %w", task.Name, err)
	}
	r.backend.Viewport(0, 0, size.Width, size.Height)

	cam.Validate()
	cam.ValidateAspect(size.Aspect())
	cameraChanged := cam != r.camera || cam.HasChanged()
	if cameraChanged {
		r.cameraChanged = r.tick
	}
	r.camera = cam

	r.mode = task.ResolvedMode()
	r.defaultMaterial = task.DefaultMaterial

	if err := r.updateLights(sc.Lights()); err != nil {
		return fmt.Errorf("renderer: task %q on scene %q: %w", task.Name, sc.Name(), err)
	}

	r.backend.Clear()

	if r.currentShader != nil {
		if cameraChanged {
			if err := r.useCamera(); err != nil {
				return err
			}
		}
		if err := r.useLights(); err != nil {
			return err
		}
	}

	for _, m := range sc.Meshes() {
		if err := r.renderMesh(m); err != nil {
			return fmt.Errorf("renderer: task %q mesh %q: %w", task.Name, m.Name(), err)
		}
	}

	r.metrics.Tasks++
	r.tick++
	return nil
}

// materialResolution is the outcome of picking the material a mesh is drawn with.
type materialResolution struct {
	material material.Material
	shader   shader.Shader
	skip     bool
}

// resolveMaterial picks the mesh material if it can draw in the current mode, else the task's
// default material. The default is tried once; if it cannot draw either the mesh is skipped.
func (r *renderContext) resolveMaterial(m material.Material) materialResolution {
	if m != nil {
		if s := m.Shader(r.mode); s != nil {
			return materialResolution{material: m, shader: s}
		}
	}
	if def := r.defaultMaterial; def != nil && def != m {
		if s := def.Shader(r.mode); s != nil {
			return materialResolution{material: def, shader: s}
		}
	}
	return materialResolution{skip: true}
}

func (r *renderContext) renderMesh(m scene.Mesh) error {
	prevShader := r.currentShader

	res := r.resolveMaterial(m.Material())
	if res.skip {
		r.metrics.SkippedMeshes++
		r.logger.WithFields(log.Fields{"mesh": m.Name(), "mode": r.mode}).Debug("mesh skipped, no material can draw in this mode")
		return nil
	}

	if err := r.useShader(res.shader); err != nil {
		return err
	}
	if err := r.useMaterial(res.material); err != nil {
		return err
	}
	if err := r.binder.Bind(uniform.Values{
		ModelUniform:       m.WorldMatrix(),
		ModelNormalUniform: m.NormalMatrix(),
	}, r.currentShader.uniforms); err != nil {
		return err
	}

	entry, err := r.useGeometry(m.Geometry(), prevShader)
	if err != nil {
		return err
	}
	for _, dr := range entry.ranges {
		r.backend.Draw(dr, entry.indexed)
		r.metrics.DrawCalls++
	}
	r.metrics.MeshCalls++
	return nil
}

func (r *renderContext) useShader(s shader.Shader) error {
	entry, created, err := r.shaders.getOrCreate(s.ID(), func() (*shaderEntry, error) {
		var attributes map[string]uint32
		if s.Shared() {
			attributes = r.sharedAttributes
		}
		handle, infos, err := r.backend.CreateProgram(s, attributes)
		if err != nil {
			return nil, fmt.Errorf("shader %q: %w", s.ID(), err)
		}
		return &shaderEntry{
			handle:   handle,
			uniforms: uniform.BuildTree(infos),
			shared:   s.Shared(),
		}, nil
	})
	if err != nil {
		return err
	}
	if created {
		r.logger.WithField("shader", s.ID()).Debug("shader program created")
	}
	if entry == r.currentShader {
		return nil
	}

	r.backend.UseProgram(entry.handle)
	r.currentShader = entry
	r.metrics.ShaderCalls++

	if err := r.useCamera(); err != nil {
		return err
	}
	return r.useLights()
}

func (r *renderContext) useCamera() error {
	entry := r.currentShader
	if r.camera == nil || !entry.state.needsCamera(r.cameraChanged) {
		return nil
	}
	if err := r.binder.Bind(r.camera.Uniforms(), entry.uniforms); err != nil {
		return err
	}
	entry.state.markCamera(r.tick)
	r.metrics.CameraCalls++
	return nil
}

func (r *renderContext) useLights() error {
	entry := r.currentShader
	if !entry.state.needsLights(r.tick) {
		return nil
	}
	if err := r.binder.Bind(r.lights, entry.uniforms); err != nil {
		return err
	}
	entry.state.markLights(r.tick)
	r.metrics.LightCalls++
	return nil
}

func (r *renderContext) useMaterial(m material.Material) error {
	entry := r.currentShader
	if !entry.state.needsMaterial(m, r.mode) {
		return nil
	}
	if err := r.binder.Bind(m.Use(r.mode), entry.uniforms); err != nil {
		return err
	}
	entry.state.markMaterial(m, r.mode)
	r.metrics.MaterialCalls++
	return nil
}

// useGeometry binds the vertex state of g. The bind is skipped when g is already bound and
// the attribute layout cannot have changed: the shader is the one the previous mesh used, or
// both shaders use the shared attribute locations.
func (r *renderContext) useGeometry(g geometry.Geometry, prevShader *shaderEntry) (*geometryEntry, error) {
	if r.currentGeometry != nil && r.currentGeometryID == g.ID() {
		if r.currentShader == prevShader {
			return r.currentGeometry, nil
		}
		if prevShader != nil && prevShader.shared && r.currentShader.shared {
			return r.currentGeometry, nil
		}
	}

	entry, created, err := r.geometries.getOrCreate(g.ID(), func() (*geometryEntry, error) {
		handle, err := r.backend.CreateGeometry(g)
		if err != nil {
			return nil, fmt.Errorf("geometry %q: %w", g.ID(), err)
		}
		return &geometryEntry{
			handle:  handle,
			indexed: len(g.Indices()) > 0,
			ranges:  g.Ranges(),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	if created {
		r.logger.WithFields(log.Fields{"geometry": g.ID(), "vertices": g.VertexCount()}).Debug("geometry uploaded")
	}

	r.backend.BindGeometry(entry.handle, r.currentShader.handle)
	r.currentGeometry = entry
	r.currentGeometryID = g.ID()
	r.metrics.GeometryCalls++
	return entry, nil
}

// updateLights rebuilds the light uniform values for the current task.
func (r *renderContext) updateLights(lights map[light.Category][]light.Light) error {
	values := make(uniform.Values, len(lights)+1)
	sizes := make([]int32, 8)
	clear(r.metrics.LightsByCategory)
	r.metrics.Lights = 0

	for category, group := range lights {
		name, ok := r.lightUniforms[category]
		idx := light.SizeIndex(category)
		if !ok || idx < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownLightCategory, category)
		}
		elems := make([]uniform.Values, len(group))
		for i, l := range group {
			elems[i] = l.Uniforms()
		}
		values[name] = elems
		sizes[idx] = int32(len(group))
		r.metrics.LightsByCategory[category] = len(group)
		r.metrics.Lights += len(group)
	}

	values[light.SizeUniform] = [][4]int32{
		{sizes[0], sizes[1], sizes[2], sizes[3]},
		{sizes[4], sizes[5], sizes[6], sizes[7]},
	}
	r.lights = values
	return nil
}

// useFramebuffer binds the task target and returns the size to draw at. A nil target is the
// default framebuffer at the context size.
func (r *renderContext) useFramebuffer(fb target.Framebuffer) (common.Size, error) {
	if fb == nil {
		if r.currentFramebuffer != "" {
			r.backend.BindFramebuffer(0)
			r.currentFramebuffer = ""
		}
		return r.size, nil
	}

	entry, created, err := r.framebuffers.getOrCreate(fb.ID(), func() (*framebufferEntry, error) {
		attachments, err := r.framebufferAttachments(fb)
		if err != nil {
			return nil, err
		}
		handle, err := r.backend.CreateFramebuffer(attachments)
		if err != nil {
			return nil, fmt.Errorf("framebuffer %q: %w", fb.ID(), err)
		}
		return &framebufferEntry{handle: handle}, nil
	})
	if err != nil {
		return common.Size{}, err
	}

	entry.size = fb.Size()
	if entry.size.IsZero() {
		entry.size = r.size
	}
	if r.currentFramebuffer == fb.ID() {
		return entry.size, nil
	}

	if !created {
		// Screen tracking attachments may need new storage after a resize.
		if _, err := r.framebufferAttachments(fb); err != nil {
			return common.Size{}, err
		}
	}
	r.backend.BindFramebuffer(entry.handle)
	r.currentFramebuffer = fb.ID()
	return entry.size, nil
}

func (r *renderContext) framebufferAttachments(fb target.Framebuffer) (FramebufferAttachments, error) {
	var a FramebufferAttachments
	for _, tex := range fb.Color() {
		if err := r.getTexture(tex); err != nil {
			return a, err
		}
		e, _ := r.textures.get(tex.ID())
		a.Color = append(a.Color, e.handle)
		a.ColorKinds = append(a.ColorKinds, tex.Kind())
	}
	if tex := fb.DepthTexture(); tex != nil {
		if err := r.getTexture(tex); err != nil {
			return a, err
		}
		e, _ := r.textures.get(tex.ID())
		a.DepthTexture = e.handle
	}
	if rb := fb.DepthRenderbuffer(); rb != nil {
		e, err := r.getRenderbuffer(rb)
		if err != nil {
			return a, err
		}
		a.DepthRenderbuffer = e.handle
		a.DepthStencil = rb.Format() == target.RenderbufferDepth24Stencil8
	}
	return a, nil
}

func (r *renderContext) getRenderbuffer(rb target.Renderbuffer) (*renderbufferEntry, error) {
	size := rb.Size()
	if rb.TracksScreen() {
		size = r.size
	}
	want := sizeKey{size.Width, size.Height}

	entry, created, err := r.renderbuffers.getOrCreate(rb.ID(), func() (*renderbufferEntry, error) {
		handle, err := r.backend.CreateRenderbuffer(rb, size)
		if err != nil {
			return nil, fmt.Errorf("renderbuffer %q: %w", rb.ID(), err)
		}
		return &renderbufferEntry{handle: handle, size: want}, nil
	})
	if err != nil {
		return nil, err
	}
	if !created && rb.TracksScreen() && entry.size != want {
		r.backend.ResizeRenderbuffer(entry.handle, rb, size)
		entry.size = want
	}
	return entry, nil
}
