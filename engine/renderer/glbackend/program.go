package glbackend

import (
	"context"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/glue/engine/renderer"
	"github.com/Carmen-Shannon/glue/engine/renderer/shader"
	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/go-gl/gl/v4.1-core/gl"
	gst "github.com/richinsley/goshadertranslator"
	log "github.com/sirupsen/logrus"
)

// manglePrefix is prepended to user identifiers by the shader translator.
const manglePrefix = "_u"

type glProgram struct {
	id      uint32
	attribs map[string]int32
}

// stageSource is one shader stage ready for the native compiler, plus the identifier
// renames the translator applied to it.
type stageSource struct {
	code    string
	renames map[string]string
}

func (b *backend) CreateProgram(s shader.Shader, attributes map[string]uint32) (renderer.Handle, []uniform.Info, error) {
	vert, err := b.stage(s, s.VertexSource(), "vertex")
	if err != nil {
		return 0, nil, err
	}
	frag, err := b.stage(s, s.FragmentSource(), "fragment")
	if err != nil {
		return 0, nil, err
	}
	renames := mergeRenames(vert.renames, frag.renames)

	vs, err := compileShader(vert.code, gl.VERTEX_SHADER)
	if err != nil {
		return 0, nil, fmt.Errorf("vertex stage: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(frag.code, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, nil, fmt.Errorf("fragment stage: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	for name, loc := range attributes {
		gl.BindAttribLocation(program, loc, gl.Str(mangledName(name, vert.renames)+"\x00"))
	}
	gl.LinkProgram(program)
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return 0, nil, fmt.Errorf("failed to link program: %s", strings.TrimRight(logText, "\x00"))
	}

	p := &glProgram{id: program, attribs: activeAttributes(program, renames)}
	b.programs[renderer.Handle(program)] = p
	return renderer.Handle(program), activeUniforms(program, renames), nil
}

func (b *backend) UseProgram(program renderer.Handle) {
	gl.UseProgram(uint32(program))
}

// stage returns the source of one stage in the native dialect, translating WebGL2 sources.
func (b *backend) stage(s shader.Shader, source, kind string) (stageSource, error) {
	if s.Dialect() != shader.DialectWebGL2 {
		return stageSource{code: source}, nil
	}
	if b.translator == nil {
		t, err := gst.NewShaderTranslator(context.Background())
		if err != nil {
			return stageSource{}, fmt.Errorf("shader translator: %w", err)
		}
		b.translator = t
	}
	out, err := b.translator.TranslateShader(source, kind, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return stageSource{}, fmt.Errorf("%s stage translation failed: %w", kind, err)
	}
	renames := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		renames[name] = v.MappedName
	}
	b.logger.WithFields(log.Fields{"shader": s.ID(), "stage": kind}).Debug("translated WebGL2 shader stage")
	return stageSource{code: out.Code, renames: renames}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(logText))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("failed to compile shader: %s", strings.TrimRight(logText, "\x00"))
	}
	return sh, nil
}

func activeUniforms(program uint32, renames map[string]string) []uniform.Info {
	var count, maxLength int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLength)

	infos := make([]uniform.Info, 0, count)
	buf := make([]uint8, maxLength+1)
	for i := range uint32(count) {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(program, i, int32(len(buf)), &length, &size, &xtype, &buf[0])
		native := string(buf[:length])

		t, ok := uniformType(xtype)
		if !ok {
			continue
		}
		loc := gl.GetUniformLocation(program, gl.Str(native+"\x00"))
		if loc < 0 {
			// Members of uniform blocks have no location.
			continue
		}
		infos = append(infos, uniform.Info{
			Name:     unmangle(native, renames),
			Location: uniform.Location(loc),
			Type:     t,
			Count:    int(size),
		})
	}
	return infos
}

func activeAttributes(program uint32, renames map[string]string) map[string]int32 {
	var count, maxLength int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTES, &count)
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLength)

	attribs := make(map[string]int32, count)
	buf := make([]uint8, maxLength+1)
	for i := range uint32(count) {
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(program, i, int32(len(buf)), &length, &size, &xtype, &buf[0])
		native := string(buf[:length])
		if strings.HasPrefix(native, "gl_") {
			continue
		}
		attribs[unmangle(native, renames)] = gl.GetAttribLocation(program, gl.Str(native+"\x00"))
	}
	return attribs
}

func uniformType(xtype uint32) (uniform.Type, bool) {
	switch xtype {
	case gl.FLOAT:
		return uniform.TypeFloat, true
	case gl.FLOAT_VEC2:
		return uniform.TypeVec2, true
	case gl.FLOAT_VEC3:
		return uniform.TypeVec3, true
	case gl.FLOAT_VEC4:
		return uniform.TypeVec4, true
	case gl.INT:
		return uniform.TypeInt, true
	case gl.INT_VEC2:
		return uniform.TypeIVec2, true
	case gl.INT_VEC3:
		return uniform.TypeIVec3, true
	case gl.INT_VEC4:
		return uniform.TypeIVec4, true
	case gl.BOOL:
		return uniform.TypeBool, true
	case gl.BOOL_VEC2:
		return uniform.TypeBVec2, true
	case gl.BOOL_VEC3:
		return uniform.TypeBVec3, true
	case gl.BOOL_VEC4:
		return uniform.TypeBVec4, true
	case gl.FLOAT_MAT2:
		return uniform.TypeMat2, true
	case gl.FLOAT_MAT3:
		return uniform.TypeMat3, true
	case gl.FLOAT_MAT4:
		return uniform.TypeMat4, true
	case gl.SAMPLER_2D, gl.SAMPLER_2D_SHADOW:
		return uniform.TypeSampler2D, true
	case gl.SAMPLER_CUBE, gl.SAMPLER_CUBE_SHADOW:
		return uniform.TypeSamplerCube, true
	}
	return 0, false
}

// mergeRenames inverts the per-stage renames into one translated-to-source map.
// It returns nil when no stage was translated.
func mergeRenames(stages ...map[string]string) map[string]string {
	var out map[string]string
	for _, m := range stages {
		if m == nil {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(m))
		}
		for name, mapped := range m {
			out[mapped] = name
		}
	}
	return out
}

// mangledName returns the identifier the translator gave name. Untranslated stages keep
// their names.
func mangledName(name string, renames map[string]string) string {
	if renames == nil {
		return name
	}
	if mapped, ok := renames[name]; ok {
		return mapped
	}
	return manglePrefix + name
}

// unmangle restores the source identifiers of a native uniform or attribute name such as
// "_uuPointLight[1]._ucolor". reverse maps translated identifiers back to source ones; nil
// means the stage was not translated.
func unmangle(native string, reverse map[string]string) string {
	if reverse == nil {
		return native
	}
	parts := strings.Split(native, ".")
	for i, part := range parts {
		ident, suffix := part, ""
		if open := strings.IndexByte(part, '['); open >= 0 {
			ident, suffix = part[:open], part[open:]
		}
		if orig, ok := reverse[ident]; ok {
			ident = orig
		} else {
			ident = strings.TrimPrefix(ident, manglePrefix)
		}
		parts[i] = ident + suffix
	}
	return strings.Join(parts, ".")
}
