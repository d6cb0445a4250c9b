package material

import (
	"sync"

	"github.com/Carmen-Shannon/glue/engine/renderer/shader"
	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/Carmen-Shannon/glue/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// ModeDefault is the render mode of tasks that do not set one.
const ModeDefault = "default"

// UniformName is the struct uniform the surface properties are uploaded into.
const UniformName = "uMaterial"

// material is the implementation of the Material interface.
type material struct {
	mu *sync.Mutex

	name    string
	shaders map[string]shader.Shader

	baseColor                mgl32.Vec4
	metallic                 float32
	roughness                float32
	diffuseTexture           texture.Texture
	normalTexture            texture.Texture
	metallicRoughnessTexture texture.Texture
	extra                    uniform.Values
}

// Material defines the contract between a mesh and the render context.
//
// A material picks the shader program for the active render mode and produces the uniform
// value tree for that mode. The render context calls Use only when the (material, mode)
// pair bound to a shader changes, so Use may allocate.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Shader returns the shader program for a render mode.
	// A nil result means the material cannot draw in that mode and the task's default
	// material is tried instead.
	//
	// Parameters:
	//   - mode: the render mode of the current task
	//
	// Returns:
	//   - shader.Shader: the shader, or nil
	Shader(mode string) shader.Shader

	// Use builds the uniform values uploaded when this material is bound in a mode.
	//
	// Parameters:
	//   - mode: the render mode of the current task
	//
	// Returns:
	//   - uniform.Values: the uniform value tree
	Use(mode string) uniform.Values

	// BaseColor retrieves the albedo/diffuse RGBA color of the material.
	//
	// Returns:
	//   - mgl32.Vec4: the base color as RGBA values
	BaseColor() mgl32.Vec4

	// Metallic retrieves the metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// DiffuseTexture retrieves the diffuse/albedo texture, or nil if none is set.
	DiffuseTexture() texture.Texture

	// NormalTexture retrieves the normal map texture, or nil if none is set.
	NormalTexture() texture.Texture

	// MetallicRoughnessTexture retrieves the metallic-roughness texture, or nil if none is set.
	MetallicRoughnessTexture() texture.Texture

	// SetShader assigns the shader used for a render mode. A nil shader removes the mode.
	//
	// Parameters:
	//   - mode: the render mode
	//   - s: the shader to use in that mode
	SetShader(mode string, s shader.Shader)

	// SetBaseColor replaces the base color.
	//
	// Parameters:
	//   - color: the RGBA color
	SetBaseColor(color mgl32.Vec4)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		mu:        &sync.Mutex{},
		shaders:   make(map[string]shader.Shader),
		baseColor: mgl32.Vec4{1, 1, 1, 1},
		metallic:  0.0,
		roughness: 1.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Shader(mode string) shader.Shader {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shaders[mode]
}

func (m *material) Use(mode string) uniform.Values {
	m.mu.Lock()
	defer m.mu.Unlock()

	surface := uniform.Values{
		"baseColor":    m.baseColor,
		"metallic":     m.metallic,
		"roughness":    m.roughness,
		"hasDiffuse":   m.diffuseTexture != nil,
		"hasNormalMap": m.normalTexture != nil,
	}
	if m.diffuseTexture != nil {
		surface["diffuseMap"] = m.diffuseTexture
	}
	if m.normalTexture != nil {
		surface["normalMap"] = m.normalTexture
	}
	if m.metallicRoughnessTexture != nil {
		surface["metallicRoughnessMap"] = m.metallicRoughnessTexture
	}

	values := uniform.Values{UniformName: surface}
	for k, v := range m.extra {
		values[k] = v
	}
	return values
}

func (m *material) BaseColor() mgl32.Vec4 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.baseColor
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) DiffuseTexture() texture.Texture {
	return m.diffuseTexture
}

func (m *material) NormalTexture() texture.Texture {
	return m.normalTexture
}

func (m *material) MetallicRoughnessTexture() texture.Texture {
	return m.metallicRoughnessTexture
}

func (m *material) SetShader(mode string, s shader.Shader) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s == nil {
		delete(m.shaders, mode)
		return
	}
	m.shaders[mode] = s
}

func (m *material) SetBaseColor(color mgl32.Vec4) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseColor = color
}
