package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects how a camera maps view space to clip space.
type Projection int

const (
	// ProjectionPerspective uses a vertical field of view.
	ProjectionPerspective Projection = iota

	// ProjectionOrthographic uses a box of half-height Zoom and half-width Aspect*Zoom.
	ProjectionOrthographic
)

// cameraImpl is the implementation of the Camera interface.
type cameraImpl struct {
	mu *sync.Mutex

	projection Projection
	position   mgl32.Vec3
	target     mgl32.Vec3
	up         mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32
	zoom   float32

	// dirty is set by every mutation and cleared by Validate.
	dirty bool
	// hasChanged reports whether the last Validate (or a later ValidateAspect) changed the matrices.
	hasChanged bool

	worldMatrix          mgl32.Mat4
	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	projectionViewMatrix mgl32.Mat4

	controller CameraController
}

// Camera defines the interface for a scene camera.
//
// A Camera owns a world transform (position, target, up) and a projection. Mutations only
// mark the camera dirty; matrices are rebuilt by Validate, which the render context calls
// before each task that draws with the camera. HasChanged lets the render context skip re-uploading camera
// uniforms to programs that already hold the current matrices.
type Camera interface {
	// Projection returns the projection mode.
	//
	// Returns:
	//   - Projection: perspective or orthographic
	Projection() Projection

	// Position returns the world-space eye position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// Target returns the world-space point the camera looks at.
	//
	// Returns:
	//   - mgl32.Vec3: the look-at target
	Target() mgl32.Vec3

	// Up returns the up vector used to build the view matrix.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: the field of view
	Fov() float32

	// Aspect returns the width/height ratio of the projection.
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clip distance.
	Near() float32

	// Far returns the far clip distance.
	Far() float32

	// Zoom returns the orthographic half-height.
	Zoom() float32

	// WorldMatrix returns the camera's global transform (the inverse of the view matrix).
	//
	// Returns:
	//   - mgl32.Mat4: the world matrix
	WorldMatrix() mgl32.Mat4

	// ViewMatrix returns the world-to-view transform.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the view-to-clip transform.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ProjectionViewMatrix returns Projection * View.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ProjectionViewMatrix() mgl32.Mat4

	// HasChanged reports whether the matrices changed during the last Validate or any
	// ValidateAspect call since.
	//
	// Returns:
	//   - bool: true if the camera uniforms need to be re-uploaded
	HasChanged() bool

	// Validate pulls the controller's position and target (if any), rebuilds dirty matrices
	// and records whether anything changed.
	//
	// Returns:
	//   - bool: true if the matrices were rebuilt
	Validate() bool

	// ValidateAspect updates the aspect ratio to match the viewport, rebuilding the
	// projection only if the ratio actually differs.
	//
	// Parameters:
	//   - aspect: the viewport width divided by its height
	ValidateAspect(aspect float32)

	// Invalidate forces the next Validate to rebuild the matrices.
	Invalidate()

	// Uniforms returns the camera uniform values (uProjectionView, uProjection, uView,
	// uViewInv, uViewPos) for the uniform binder.
	//
	// Returns:
	//   - uniform.Values: the camera uniforms
	Uniforms() uniform.Values

	// Controller returns the attached controller, or nil.
	Controller() CameraController

	// SetController attaches a controller whose position and target drive the camera.
	SetController(ctrl CameraController)

	// SetProjection changes the projection mode.
	SetProjection(p Projection)

	// LookAt places the camera at eye looking at target.
	//
	// Parameters:
	//   - eye: the world-space eye position
	//   - target: the world-space look-at point
	LookAt(eye, target mgl32.Vec3)

	// SetUp sets the up vector.
	SetUp(up mgl32.Vec3)

	// SetFov sets the vertical field of view in radians.
	SetFov(fov float32)

	// SetNear sets the near clip distance.
	SetNear(near float32)

	// SetFar sets the far clip distance.
	SetFar(far float32)

	// SetZoom sets the orthographic half-height.
	SetZoom(zoom float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with a 70 degree perspective projection, aspect 1,
// near 0.3 and far 1000, looking down -Z from the origin.
//
// Parameters:
//   - options: variadic list of CameraBuilderOption functions to configure the camera
//
// Returns:
//   - Camera: the new camera, already validated
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		projection: ProjectionPerspective,
		target:     mgl32.Vec3{0, 0, -1},
		up:         mgl32.Vec3{0, 1, 0},
		fov:        mgl32.DegToRad(70),
		aspect:     1,
		near:       0.3,
		far:        1000,
		zoom:       1,
		dirty:      true,
	}
	for _, option := range options {
		option(c)
	}
	c.Validate()
	return c
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Target() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) WorldMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldMatrix
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ProjectionViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionViewMatrix
}

func (c *cameraImpl) HasChanged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasChanged
}

func (c *cameraImpl) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.controller != nil {
		pos, target := c.controller.Position(), c.controller.Target()
		if pos != c.position || target != c.target {
			c.position, c.target = pos, target
			c.dirty = true
		}
	}

	changed := c.dirty
	if c.dirty {
		c.updateMatrices()
		c.dirty = false
	}
	c.hasChanged = changed
	return changed
}

func (c *cameraImpl) ValidateAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect <= 0 || math.IsNaN(float64(aspect)) || math.IsInf(float64(aspect), 0) {
		return
	}
	if c.aspect == aspect && !c.dirty {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
	c.dirty = false
	c.hasChanged = true
}

func (c *cameraImpl) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirty = true
}

func (c *cameraImpl) Uniforms() uniform.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return uniform.Values{
		"uProjectionView": c.projectionViewMatrix,
		"uProjection":     c.projectionMatrix,
		"uView":           c.viewMatrix,
		"uViewInv":        c.worldMatrix,
		"uViewPos":        c.position,
	}
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.dirty = true
}

func (c *cameraImpl) SetProjection(p Projection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection = p
	c.dirty = true
}

func (c *cameraImpl) LookAt(eye, target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = eye
	c.target = target
	c.dirty = true
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
	c.dirty = true
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.dirty = true
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.dirty = true
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.dirty = true
}

func (c *cameraImpl) SetZoom(zoom float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
	c.dirty = true
}

// updateMatrices rebuilds every matrix from the current parameters.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = mgl32.LookAtV(c.position, c.target, c.up)
	c.worldMatrix = c.viewMatrix.Inv()

	if c.projection == ProjectionOrthographic {
		c.projectionMatrix = mgl32.Ortho(
			-c.aspect*c.zoom, c.aspect*c.zoom,
			-c.zoom, c.zoom,
			c.near, c.far,
		)
	} else {
		c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	}
	c.projectionViewMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
