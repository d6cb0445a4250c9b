package scene

import (
	"github.com/Carmen-Shannon/glue/engine/camera"
	"github.com/Carmen-Shannon/glue/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithCamera sets the scene's camera.
//
// Parameters:
//   - cam: the camera used by tasks that do not override it
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.cam = cam
	}
}

// WithMeshes adds initial meshes to the scene.
//
// Parameters:
//   - meshes: the meshes to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMeshes(meshes ...Mesh) SceneBuilderOption {
	return func(s *scene) {
		s.meshes = append(s.meshes, meshes...)
	}
}

// WithLights adds initial lights to the scene.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lights = append(s.lights, lights...)
	}
}

// WithTasks adds initial sub-tasks to the scene.
//
// Parameters:
//   - tasks: the sub-tasks to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTasks(tasks ...*RenderTask) SceneBuilderOption {
	return func(s *scene) {
		s.tasks = append(s.tasks, tasks...)
	}
}

// WithFinalizeWorkers sets the number of worker goroutines Finalize uses for scenes with
// many meshes. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFinalizeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.finalizeWorkers = n
	}
}
