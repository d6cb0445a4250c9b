package scene

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/glue/engine/geometry"
	"github.com/Carmen-Shannon/glue/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	mu *sync.Mutex

	name     string
	geometry geometry.Geometry
	material material.Material
	enabled  atomic.Bool

	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3

	dirty        bool
	worldMatrix  mgl32.Mat4
	normalMatrix mgl32.Mat3
}

// Mesh pairs one geometry with one material and a world transform.
//
// The transform is stored decomposed and composed into the world and normal matrices only
// when the owning scene is finalized, so the render context always reads matrices that are
// consistent for the whole task.
type Mesh interface {
	// Name returns the mesh's identifier, used in logs only.
	Name() string

	// Geometry returns the vertex data drawn by this mesh.
	//
	// Returns:
	//   - geometry.Geometry: the geometry
	Geometry() geometry.Geometry

	// Material returns the material the mesh is drawn with, or nil to use the task's default material.
	//
	// Returns:
	//   - material.Material: the material
	Material() material.Material

	// SetMaterial replaces the mesh's material.
	//
	// Parameters:
	//   - m: the new material, nil to fall back to the task default
	SetMaterial(m material.Material)

	// Enabled returns whether the mesh is drawn. Disabled meshes are left out of Scene.Meshes.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the mesh is drawn.
	SetEnabled(enabled bool)

	// Position returns the translation component of the transform.
	Position() mgl32.Vec3

	// Rotation returns the orientation component of the transform.
	Rotation() mgl32.Quat

	// Scale returns the scale component of the transform.
	Scale() mgl32.Vec3

	// SetPosition sets the translation and marks the matrices stale.
	//
	// Parameters:
	//   - p: the world-space position
	SetPosition(p mgl32.Vec3)

	// SetRotation sets the orientation and marks the matrices stale.
	//
	// Parameters:
	//   - q: the orientation quaternion, normalized before storing
	SetRotation(q mgl32.Quat)

	// Rotate applies an additional rotation around an axis on top of the current orientation.
	//
	// Parameters:
	//   - angle: the angle in radians
	//   - axis: the rotation axis
	Rotate(angle float32, axis mgl32.Vec3)

	// SetScale sets the scale and marks the matrices stale.
	//
	// Parameters:
	//   - s: the per-axis scale
	SetScale(s mgl32.Vec3)

	// WorldMatrix returns the model matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	WorldMatrix() mgl32.Mat4

	// NormalMatrix returns the inverse transpose of the upper 3x3 of WorldMatrix.
	//
	// Returns:
	//   - mgl32.Mat3: the normal matrix
	NormalMatrix() mgl32.Mat3

	// Update recomputes the matrices if the transform changed since the last call.
	//
	// Returns:
	//   - bool: true if the matrices were recomputed
	Update() bool
}

var _ Mesh = &mesh{}

// NewMesh creates a Mesh with an identity transform and the provided options applied.
//
// Parameters:
//   - geom: the geometry to draw (must not be nil)
//   - mat: the material to draw it with, may be nil
//   - options: variadic list of MeshBuilderOption functions
//
// Returns:
//   - Mesh: the mesh
func NewMesh(geom geometry.Geometry, mat material.Material, options ...MeshBuilderOption) Mesh {
	if geom == nil {
		panic("scene: NewMesh requires a non-nil Geometry")
	}
	m := &mesh{
		mu:           &sync.Mutex{},
		name:         geom.ID().String(),
		geometry:     geom,
		material:     mat,
		rotation:     mgl32.QuatIdent(),
		scale:        mgl32.Vec3{1, 1, 1},
		dirty:        true,
		worldMatrix:  mgl32.Ident4(),
		normalMatrix: mgl32.Ident3(),
	}
	m.enabled.Store(true)
	for _, opt := range options {
		opt(m)
	}
	m.Update()
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Geometry() geometry.Geometry {
	return m.geometry
}

func (m *mesh) Material() material.Material {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.material
}

func (m *mesh) SetMaterial(mat material.Material) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.material = mat
}

func (m *mesh) Enabled() bool {
	return m.enabled.Load()
}

func (m *mesh) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

func (m *mesh) Position() mgl32.Vec3 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *mesh) Rotation() mgl32.Quat {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotation
}

func (m *mesh) Scale() mgl32.Vec3 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scale
}

func (m *mesh) SetPosition(p mgl32.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = p
	m.dirty = true
}

func (m *mesh) SetRotation(q mgl32.Quat) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rotation = q.Normalize()
	m.dirty = true
}

func (m *mesh) Rotate(angle float32, axis mgl32.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rotation = m.rotation.Mul(mgl32.QuatRotate(angle, axis.Normalize())).Normalize()
	m.dirty = true
}

func (m *mesh) SetScale(s mgl32.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scale = s
	m.dirty = true
}

func (m *mesh) WorldMatrix() mgl32.Mat4 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.worldMatrix
}

func (m *mesh) NormalMatrix() mgl32.Mat3 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.normalMatrix
}

func (m *mesh) Update() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dirty {
		return false
	}
	t := mgl32.Translate3D(m.position[0], m.position[1], m.position[2])
	r := m.rotation.Mat4()
	s := mgl32.Scale3D(m.scale[0], m.scale[1], m.scale[2])
	m.worldMatrix = t.Mul4(r).Mul4(s)
	// A zero scale has no inverse; keep the previous normal matrix rather than producing NaNs.
	if upper := m.worldMatrix.Mat3(); upper.Det() != 0 {
		m.normalMatrix = upper.Inv().Transpose()
	}
	m.dirty = false
	return true
}
