package scene

import (
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/glue/engine/camera"
	"github.com/Carmen-Shannon/glue/engine/light"
)

// parallelFinalizeThreshold is the mesh count above which Finalize spreads matrix
// updates over the worker pool.
const parallelFinalizeThreshold = 512

// Scene holds what one render task draws: meshes in draw order, lights grouped by
// category, an optional camera and the sub-tasks rendered before any task drawing it.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera, or nil.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Meshes returns the enabled meshes in insertion order.
	//
	// Returns:
	//   - []Mesh: a snapshot of the enabled meshes
	Meshes() []Mesh

	// Lights returns the enabled lights grouped by category, each group in insertion order.
	// Categories without enabled lights are absent.
	//
	// Returns:
	//   - map[light.Category][]light.Light: a snapshot of the light groups
	Lights() map[light.Category][]light.Light

	// Tasks returns the sub-tasks of the scene in insertion order.
	//
	// Returns:
	//   - []*RenderTask: a snapshot of the sub-tasks
	Tasks() []*RenderTask

	// AddMesh appends a mesh. Adding the same mesh twice is a no-op.
	//
	// Parameters:
	//   - m: the mesh to add
	AddMesh(m Mesh)

	// RemoveMesh removes a mesh if present.
	//
	// Parameters:
	//   - m: the mesh to remove
	RemoveMesh(m Mesh)

	// AddLight appends a light to its category group. Adding the same light twice is a no-op.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// RemoveLight removes a light if present.
	//
	// Parameters:
	//   - l: the light to remove
	RemoveLight(l light.Light)

	// AddTask appends a sub-task. Sub-tasks run depth-first before every task that draws this scene.
	//
	// Parameters:
	//   - t: the sub-task to add
	AddTask(t *RenderTask)

	// RemoveTask removes a sub-task if present.
	//
	// Parameters:
	//   - t: the sub-task to remove
	RemoveTask(t *RenderTask)

	// Finalize brings every mesh's world and normal matrices up to date.
	// The render context calls it before each task that draws the scene.
	Finalize()

	// Reset removes every mesh, light and sub-task. The camera is kept.
	Reset()
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name   string
	cam    camera.Camera
	meshes []Mesh
	lights []light.Light
	tasks  []*RenderTask

	// finalizePool runs matrix updates for large scenes. Workers persist across frames.
	finalizePool    worker.DynamicWorkerPool
	finalizeWorkers int
}

var _ Scene = &scene{}

// NewScene creates an empty Scene with the provided options applied.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:              &sync.RWMutex{},
		name:            name,
		finalizeWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(s)
	}
	// Initialize the pool after options so WithFinalizeWorkers can override the default.
	s.finalizePool = worker.NewDynamicWorkerPool(s.finalizeWorkers, 256, 1*time.Second)
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Meshes() []Mesh {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Mesh, 0, len(s.meshes))
	for _, m := range s.meshes {
		if m.Enabled() {
			out = append(out, m)
		}
	}
	return out
}

func (s *scene) Lights() map[light.Category][]light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[light.Category][]light.Light)
	for _, l := range s.lights {
		if l.Enabled() {
			out[l.Category()] = append(out[l.Category()], l)
		}
	}
	return out
}

func (s *scene) Tasks() []*RenderTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

func (s *scene) AddMesh(m Mesh) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.meshes, m) {
		s.meshes = append(s.meshes, m)
	}
}

func (s *scene) RemoveMesh(m Mesh) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.meshes, m); i >= 0 {
		s.meshes = slices.Delete(s.meshes, i, i+1)
	}
}

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.lights, l) {
		s.lights = append(s.lights, l)
	}
}

func (s *scene) RemoveLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.lights, l); i >= 0 {
		s.lights = slices.Delete(s.lights, i, i+1)
	}
}

func (s *scene) AddTask(t *RenderTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.tasks, t) {
		s.tasks = append(s.tasks, t)
	}
}

func (s *scene) RemoveTask(t *RenderTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.tasks, t); i >= 0 {
		s.tasks = slices.Delete(s.tasks, i, i+1)
	}
}

func (s *scene) Finalize() {
	s.mu.RLock()
	meshes := slices.Clone(s.meshes)
	s.mu.RUnlock()

	if len(meshes) < parallelFinalizeThreshold {
		for _, m := range meshes {
			m.Update()
		}
		return
	}

	// A WaitGroup gives a per-call barrier; pool.Wait() would block until workers idle-exit.
	chunk := (len(meshes) + s.finalizeWorkers - 1) / s.finalizeWorkers
	var wg sync.WaitGroup
	for id, start := 0, 0; start < len(meshes); id, start = id+1, start+chunk {
		part := meshes[start:min(start+chunk, len(meshes))]
		wg.Add(1)
		s.finalizePool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for _, m := range part {
					m.Update()
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}

func (s *scene) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meshes = nil
	s.lights = nil
	s.tasks = nil
}
