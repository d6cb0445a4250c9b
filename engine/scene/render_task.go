package scene

import (
	"github.com/Carmen-Shannon/glue/engine/camera"
	"github.com/Carmen-Shannon/glue/engine/renderer/material"
	"github.com/Carmen-Shannon/glue/engine/target"
)

// RenderTask is one pass of the render task graph: draw a scene with a camera into a target.
//
// Every field except Name is optional. A nil Scene inherits the scene of the task that
// reached it, a nil Camera uses that scene's camera and a nil Target draws to the screen.
// Tasks are compared by pointer; the same task listed under two scenes runs once per frame.
type RenderTask struct {
	// Name identifies the task in errors and logs.
	Name string

	// Scene is the scene drawn by the task.
	Scene Scene

	// Camera overrides the scene's camera.
	Camera camera.Camera

	// Mode is passed to Material.Shader and Material.Use. Empty means material.ModeDefault.
	Mode string

	// DefaultMaterial draws meshes whose material has no shader for Mode.
	DefaultMaterial material.Material

	// Target is the framebuffer drawn into.
	Target target.Framebuffer
}

// RenderTaskOption is a functional option for configuring a RenderTask via NewRenderTask.
type RenderTaskOption func(*RenderTask)

// NewRenderTask creates a RenderTask drawing s with the provided options applied.
//
// Parameters:
//   - name: the task name
//   - s: the scene to draw, nil to inherit the parent task's scene
//   - options: variadic list of RenderTaskOption functions
//
// Returns:
//   - *RenderTask: the task
func NewRenderTask(name string, s Scene, options ...RenderTaskOption) *RenderTask {
	t := &RenderTask{Name: name, Scene: s, Mode: material.ModeDefault}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// WithTaskCamera overrides the scene camera for the task.
func WithTaskCamera(cam camera.Camera) RenderTaskOption {
	return func(t *RenderTask) {
		t.Camera = cam
	}
}

// WithMode sets the render mode, e.g. "shadow" or "wireframe".
func WithMode(mode string) RenderTaskOption {
	return func(t *RenderTask) {
		t.Mode = mode
	}
}

// WithDefaultMaterial sets the fallback material of the task.
func WithDefaultMaterial(m material.Material) RenderTaskOption {
	return func(t *RenderTask) {
		t.DefaultMaterial = m
	}
}

// WithTarget makes the task draw into a framebuffer instead of the screen.
func WithTarget(fb target.Framebuffer) RenderTaskOption {
	return func(t *RenderTask) {
		t.Target = fb
	}
}

// ResolvedMode returns Mode, or material.ModeDefault when it is empty.
func (t *RenderTask) ResolvedMode() string {
	if t.Mode == "" {
		return material.ModeDefault
	}
	return t.Mode
}
