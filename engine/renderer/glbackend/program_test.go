package glbackend

import (
	"testing"

	"github.com/Carmen-Shannon/glue/engine/geometry"
	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/Carmen-Shannon/glue/engine/texture"
	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestUnmangle(t *testing.T) {
	reverse := map[string]string{"_uuModel": "uModel", "_uuPointLight": "uPointLight"}
	tests := []struct {
		native  string
		reverse map[string]string
		want    string
	}{
		{"uModel", nil, "uModel"},
		{"_uuModel", reverse, "uModel"},
		{"_uuPointLight[1]._ucolor", reverse, "uPointLight[1].color"},
		{"_uuLightSize[0]", reverse, "uLightSize[0]"},
		{"_uuMaterial._udiffuseMap", map[string]string{}, "uMaterial.diffuseMap"},
	}
	for _, tt := range tests {
		if got := unmangle(tt.native, tt.reverse); got != tt.want {
			t.Errorf("unmangle(%q) = %q, want %q", tt.native, got, tt.want)
		}
	}
}

func TestMangledName(t *testing.T) {
	if got := mangledName("aPosition", nil); got != "aPosition" {
		t.Errorf("untranslated mangledName = %q, want aPosition", got)
	}
	renames := map[string]string{"aNormal": "_uaNormal_1"}
	if got := mangledName("aNormal", renames); got != "_uaNormal_1" {
		t.Errorf("mangledName(aNormal) = %q, want _uaNormal_1", got)
	}
	if got := mangledName("aTexCoord", renames); got != "_uaTexCoord" {
		t.Errorf("mangledName(aTexCoord) = %q, want _uaTexCoord", got)
	}
}

func TestMergeRenames(t *testing.T) {
	if got := mergeRenames(nil, nil); got != nil {
		t.Errorf("mergeRenames(nil, nil) = %v, want nil", got)
	}
	got := mergeRenames(map[string]string{"uModel": "_uuModel"}, nil, map[string]string{"uTime": "_uuTime"})
	if got["_uuModel"] != "uModel" || got["_uuTime"] != "uTime" {
		t.Errorf("mergeRenames = %v", got)
	}
}

func TestUniformType(t *testing.T) {
	tests := []struct {
		xtype uint32
		want  uniform.Type
	}{
		{gl.FLOAT_VEC3, uniform.TypeVec3},
		{gl.INT_VEC4, uniform.TypeIVec4},
		{gl.BOOL, uniform.TypeBool},
		{gl.FLOAT_MAT3, uniform.TypeMat3},
		{gl.SAMPLER_2D_SHADOW, uniform.TypeSampler2D},
		{gl.SAMPLER_CUBE, uniform.TypeSamplerCube},
	}
	for _, tt := range tests {
		got, ok := uniformType(tt.xtype)
		if !ok || got != tt.want {
			t.Errorf("uniformType(0x%x) = (%s, %v), want %s", tt.xtype, got, ok, tt.want)
		}
	}
	if _, ok := uniformType(gl.UNSIGNED_INT_VEC2); ok {
		t.Error("uvec2 should be unsupported")
	}
}

func TestSamplerModes(t *testing.T) {
	if got := minFilter(texture.FilterLinear, true); got != gl.LINEAR_MIPMAP_LINEAR {
		t.Errorf("minFilter(linear, mipmap) = 0x%x", got)
	}
	if got := minFilter(texture.FilterNearest, false); got != gl.NEAREST {
		t.Errorf("minFilter(nearest) = 0x%x", got)
	}
	if got := wrapMode(texture.WrapClampToEdge); got != gl.CLAMP_TO_EDGE {
		t.Errorf("wrapMode(clamp) = 0x%x", got)
	}
	if got := primitiveMode(geometry.PrimitiveLines); got != gl.LINES {
		t.Errorf("primitiveMode(lines) = 0x%x", got)
	}
}
