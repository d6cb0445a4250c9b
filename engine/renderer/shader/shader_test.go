package shader

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/glue/engine/camera"
)

func TestParseAnnotation(t *testing.T) {
	tests := []struct {
		line    string
		want    AnnotationType
		args    int
		wantErr bool
	}{
		{"vec3 x = vec3(0.0);", "", 0, false},
		{"// plain comment", "", 0, false},
		{"//@glue:include lights", AnnotationTypeInclude, 1, false},
		{"  // @glue:define USE_FOG 1", AnnotationTypeDefine, 2, false},
		{"//@glue:define SKINNED", AnnotationTypeDefine, 1, false},
		{"//@glue:shared", AnnotationTypeShared, 0, false},
		{"//@glue:", "", 0, true},
		{"//@glue:include", "", 0, true},
		{"//@glue:include shadows", "", 0, true},
		{"//@glue:shared now", "", 0, true},
		{"//@glue:define A B C", "", 0, true},
		{"//@glue:unroll 4", "", 0, true},
	}
	for _, tt := range tests {
		a, err := parseAnnotation(tt.line, 3)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseAnnotation(%q) returned nil error", tt.line)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAnnotation(%q) returned %v", tt.line, err)
			continue
		}
		if tt.want == "" {
			if a != nil {
				t.Errorf("parseAnnotation(%q) = %+v, want nil", tt.line, a)
			}
			continue
		}
		if a == nil || a.Type != tt.want || len(a.Args) != tt.args || a.Line != 3 {
			t.Errorf("parseAnnotation(%q) = %+v, want %s with %d args", tt.line, a, tt.want, tt.args)
		}
	}
}

func TestProcessIncludesChunks(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process("#version 410 core\n//@glue:include camera\nvoid main() {}", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, strings.TrimRight(camera.GLSLCameraSource, "\n")) {
		t.Errorf("processed source does not contain the camera chunk:\n%s", out)
	}
	if strings.Contains(out, "@glue") {
		t.Errorf("processed source still contains annotations:\n%s", out)
	}
	if len(pp.Declarations()) != 1 {
		t.Errorf("declarations = %d, want 1", len(pp.Declarations()))
	}
}

func TestProcessDefinesFollowVersion(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process("#version 410 core\nvoid main() {}", map[string]string{"B": "", "A": "2"})
	if err != nil {
		t.Fatal(err)
	}
	want := "#version 410 core\n#define A 2\n#define B\nvoid main() {}"
	if out != want {
		t.Errorf("Process() = %q, want %q", out, want)
	}

	out, err = pp.Process("void main() {}", map[string]string{"A": "1"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "#define A 1\n") {
		t.Errorf("Process() without #version = %q, want defines first", out)
	}
}

func TestProcessResetsDeclarations(t *testing.T) {
	pp := NewPreProcessor()
	if _, err := pp.Process("//@glue:shared", nil); err != nil {
		t.Fatal(err)
	}
	if !pp.Shared() {
		t.Error("Shared() = false after a shared annotation")
	}
	if _, err := pp.Process("void main() {}", nil); err != nil {
		t.Fatal(err)
	}
	if pp.Shared() {
		t.Error("Shared() = true after processing a source without annotations")
	}
}

func TestNewShader(t *testing.T) {
	tests := []struct {
		name       string
		vertex     string
		options    []ShaderBuilderOption
		wantShared bool
	}{
		{"annotated", "//@glue:shared\nvoid main() {}", nil, true},
		{"option", "void main() {}", []ShaderBuilderOption{WithShared(true)}, true},
		{"plain", "void main() {}", nil, false},
	}
	for _, tt := range tests {
		s, err := NewShader("", tt.vertex, "void main() {}", tt.options...)
		if err != nil {
			t.Errorf("%s: NewShader returned %v", tt.name, err)
			continue
		}
		if s.Shared() != tt.wantShared {
			t.Errorf("%s: Shared() = %v, want %v", tt.name, s.Shared(), tt.wantShared)
		}
		if s.ID() == "" {
			t.Errorf("%s: empty id was not replaced", tt.name)
		}
		if s.Dialect() != DialectGLSL410 {
			t.Errorf("%s: Dialect() = %s, want glsl410", tt.name, s.Dialect())
		}
	}

	if _, err := NewShader("bad", "//@glue:include nothing", "void main() {}"); err == nil {
		t.Error("NewShader with an unknown chunk returned nil error")
	}
}

func TestShaderDefinesAndDialect(t *testing.T) {
	s, err := NewShader("fog", "#version 300 es\nvoid main() {}", "#version 300 es\nvoid main() {}",
		WithDefine("USE_FOG", "1"),
		WithDialect(DialectWebGL2),
	)
	if err != nil {
		t.Fatal(err)
	}
	for _, src := range []string{s.VertexSource(), s.FragmentSource()} {
		if !strings.Contains(src, "#version 300 es\n#define USE_FOG 1\n") {
			t.Errorf("source = %q, want define after #version", src)
		}
	}
	if s.Dialect() != DialectWebGL2 {
		t.Errorf("Dialect() = %s, want webgl2", s.Dialect())
	}
}
