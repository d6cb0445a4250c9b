package material

import (
	"testing"

	"github.com/Carmen-Shannon/glue/engine/renderer/shader"
	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/Carmen-Shannon/glue/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

const vert = "#version 410 core\nvoid main() { gl_Position = vec4(0.0); }\n"
const frag = "#version 410 core\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n"

func TestShaderPerMode(t *testing.T) {
	solid := shader.MustShader("solid", vert, frag)
	depth := shader.MustShader("depth", vert, frag)
	m := NewMaterial(WithShader(solid), WithModeShader("shadow", depth))

	tests := []struct {
		mode string
		want shader.Shader
	}{
		{ModeDefault, solid},
		{"shadow", depth},
		{"wireframe", nil},
	}
	for _, tt := range tests {
		if got := m.Shader(tt.mode); got != tt.want {
			t.Errorf("Shader(%q) = %v, want %v", tt.mode, got, tt.want)
		}
	}

	m.SetShader("shadow", nil)
	if m.Shader("shadow") != nil {
		t.Error("SetShader(nil) should remove the mode")
	}
}

func TestUse(t *testing.T) {
	diffuse := texture.NewTexture("tile", texture.WithSize(4, 4))
	m := NewMaterial(
		WithBaseColor(mgl32.Vec4{0.5, 0.5, 0.5, 1}),
		WithRoughness(0.25),
		WithDiffuseTexture(diffuse),
		WithUniforms(uniform.Values{"uTime": float32(2)}),
	)

	values := m.Use(ModeDefault)
	surface, ok := values[UniformName].(uniform.Values)
	if !ok {
		t.Fatalf("%s = %T, want uniform.Values", UniformName, values[UniformName])
	}
	if surface["diffuseMap"] != diffuse {
		t.Errorf("diffuseMap = %v, want the tile texture", surface["diffuseMap"])
	}
	if surface["hasDiffuse"] != true {
		t.Error("hasDiffuse should be true")
	}
	if _, ok := surface["normalMap"]; ok {
		t.Error("normalMap should be omitted when unset")
	}
	if surface["roughness"] != float32(0.25) {
		t.Errorf("roughness = %v, want 0.25", surface["roughness"])
	}
	if values["uTime"] != float32(2) {
		t.Errorf("uTime = %v, want 2", values["uTime"])
	}
}
