package material

import (
	"github.com/Carmen-Shannon/glue/engine/renderer/shader"
	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/Carmen-Shannon/glue/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithShader is an option builder that sets the shader used in ModeDefault.
//
// Parameters:
//   - s: the shader
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shader option to a material
func WithShader(s shader.Shader) MaterialBuilderOption {
	return WithModeShader(ModeDefault, s)
}

// WithModeShader is an option builder that sets the shader used in a specific render mode,
// e.g. a depth-only shader for a "shadow" mode.
//
// Parameters:
//   - mode: the render mode
//   - s: the shader
//
// Returns:
//   - MaterialBuilderOption: a function that applies the mode shader option to a material
func WithModeShader(mode string, s shader.Shader) MaterialBuilderOption {
	return func(m *material) {
		if s != nil {
			m.shaders[mode] = s
		}
	}
}

// WithBaseColor is an option builder that sets the albedo/diffuse RGBA color of the material.
//
// Parameters:
//   - color: the base color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color mgl32.Vec4) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithMetallic is an option builder that sets the metallic factor of the material.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metallic option to a material
func WithMetallic(metallic float32) MaterialBuilderOption {
	return func(m *material) {
		m.metallic = metallic
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.roughness = roughness
	}
}

// WithDiffuseTexture is an option builder that sets the diffuse/albedo texture.
//
// Parameters:
//   - tex: the diffuse map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse texture option to a material
func WithDiffuseTexture(tex texture.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseTexture = tex
	}
}

// WithNormalTexture is an option builder that sets the normal map texture.
//
// Parameters:
//   - tex: the tangent space normal map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the normal texture option to a material
func WithNormalTexture(tex texture.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.normalTexture = tex
	}
}

// WithMetallicRoughnessTexture is an option builder that sets the metallic-roughness texture.
//
// Parameters:
//   - tex: the metallic-roughness map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metallic-roughness texture option to a material
func WithMetallicRoughnessTexture(tex texture.Texture) MaterialBuilderOption {
	return func(m *material) {
		m.metallicRoughnessTexture = tex
	}
}

// WithUniforms is an option builder that adds top level uniforms uploaded alongside uMaterial.
//
// Parameters:
//   - values: extra uniform values, producers included
//
// Returns:
//   - MaterialBuilderOption: a function that applies the uniforms option to a material
func WithUniforms(values uniform.Values) MaterialBuilderOption {
	return func(m *material) {
		if m.extra == nil {
			m.extra = make(uniform.Values, len(values))
		}
		for k, v := range values {
			m.extra[k] = v
		}
	}
}
