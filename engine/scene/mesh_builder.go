package scene

import "github.com/go-gl/mathgl/mgl32"

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithMeshName sets the name reported in logs. Defaults to the geometry identity.
func WithMeshName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithPosition sets the initial translation of the mesh.
//
// Parameters:
//   - p: the world-space position
//
// Returns:
//   - MeshBuilderOption: option function to apply
func WithPosition(p mgl32.Vec3) MeshBuilderOption {
	return func(m *mesh) {
		m.position = p
	}
}

// WithRotation sets the initial orientation of the mesh.
//
// Parameters:
//   - q: the orientation quaternion
//
// Returns:
//   - MeshBuilderOption: option function to apply
func WithRotation(q mgl32.Quat) MeshBuilderOption {
	return func(m *mesh) {
		m.rotation = q.Normalize()
	}
}

// WithEulerRotation sets the initial orientation from angles in radians, applied in Y, X, Z order.
//
// Parameters:
//   - x: pitch in radians
//   - y: yaw in radians
//   - z: roll in radians
//
// Returns:
//   - MeshBuilderOption: option function to apply
func WithEulerRotation(x, y, z float32) MeshBuilderOption {
	return func(m *mesh) {
		m.rotation = mgl32.AnglesToQuat(y, x, z, mgl32.YXZ)
	}
}

// WithScale sets the initial per-axis scale of the mesh.
//
// Parameters:
//   - s: the scale
//
// Returns:
//   - MeshBuilderOption: option function to apply
func WithScale(s mgl32.Vec3) MeshBuilderOption {
	return func(m *mesh) {
		m.scale = s
	}
}

// WithMeshEnabled sets whether the mesh starts enabled. Defaults to true.
func WithMeshEnabled(enabled bool) MeshBuilderOption {
	return func(m *mesh) {
		m.enabled.Store(enabled)
	}
}
