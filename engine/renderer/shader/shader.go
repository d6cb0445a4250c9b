package shader

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/glue/common"
)

// Dialect identifies which GLSL flavour a shader's source is written in.
type Dialect int

const (
	// DialectGLSL410 is desktop OpenGL 4.1 core GLSL and is compiled as-is.
	DialectGLSL410 Dialect = iota

	// DialectWebGL2 is GLSL ES 3.00 as written for WebGL2. Backends that cannot compile it
	// directly translate it to their native dialect first.
	DialectWebGL2
)

func (d Dialect) String() string {
	switch d {
	case DialectGLSL410:
		return "glsl410"
	case DialectWebGL2:
		return "webgl2"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// shader is the implementation of the Shader interface.
type shader struct {
	id             common.ResourceID
	vertexSource   string
	fragmentSource string
	shared         bool
	dialect        Dialect
	defines        map[string]string

	pp PreProcessor
}

// Shader is a vertex/fragment source pair identified by a ResourceID. It is a pure
// descriptor: compiling and linking happen lazily in the render context the first time
// a material asks for it.
type Shader interface {
	// ID retrieves the resource identity used as the shader cache key.
	//
	// Returns:
	//   - common.ResourceID: the shader's identity
	ID() common.ResourceID

	// VertexSource retrieves the pre-processed vertex stage source.
	//
	// Returns:
	//   - string: the GLSL vertex source
	VertexSource() string

	// FragmentSource retrieves the pre-processed fragment stage source.
	//
	// Returns:
	//   - string: the GLSL fragment source
	FragmentSource() string

	// Shared reports whether the vertex inputs follow the shared attribute layout
	// (aPosition, aNormal, aTangent, aTexCoord at fixed locations). Two shared shaders
	// can draw the same geometry without re-binding vertex state.
	//
	// Returns:
	//   - bool: true if the shader uses the shared attribute layout
	Shared() bool

	// Dialect returns the GLSL flavour of the sources.
	//
	// Returns:
	//   - Dialect: the source dialect
	Dialect() Dialect
}

var _ Shader = &shader{}

// NewShader creates a Shader from in-memory sources. Both stages are run through the
// pre-processor; a @glue:shared annotation in either stage marks the shader as shared.
//
// Parameters:
//   - id: the shader identity, an empty id is replaced by a generated one
//   - vertexSource: the raw vertex stage source
//   - fragmentSource: the raw fragment stage source
//   - options: variadic list of ShaderBuilderOption functions
//
// Returns:
//   - Shader: the shader
//   - error: an error if either stage fails pre-processing
func NewShader(id common.ResourceID, vertexSource, fragmentSource string, options ...ShaderBuilderOption) (Shader, error) {
	if id == "" {
		id = common.NewResourceID("shader")
	}
	s := &shader{
		id:      id,
		dialect: DialectGLSL410,
		defines: make(map[string]string),
		pp:      NewPreProcessor(),
	}
	for _, opt := range options {
		opt(s)
	}

	var err error
	s.vertexSource, err = s.pp.Process(vertexSource, s.defines)
	if err != nil {
		return nil, fmt.Errorf("shader %s: vertex stage: %w", id, err)
	}
	s.shared = s.shared || s.pp.Shared()

	s.fragmentSource, err = s.pp.Process(fragmentSource, s.defines)
	if err != nil {
		return nil, fmt.Errorf("shader %s: fragment stage: %w", id, err)
	}
	s.shared = s.shared || s.pp.Shared()
	return s, nil
}

// NewShaderFromPaths reads both stages from disk and calls NewShader.
//
// Parameters:
//   - id: the shader identity
//   - vertexPath: the file path of the vertex stage
//   - fragmentPath: the file path of the fragment stage
//   - options: variadic list of ShaderBuilderOption functions
//
// Returns:
//   - Shader: the shader
//   - error: an error if a file cannot be read or pre-processing fails
func NewShaderFromPaths(id common.ResourceID, vertexPath, fragmentPath string, options ...ShaderBuilderOption) (Shader, error) {
	vert, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("shader %s: failed to read vertex source %q: %w", id, vertexPath, err)
	}
	frag, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("shader %s: failed to read fragment source %q: %w", id, fragmentPath, err)
	}
	return NewShader(id, string(vert), string(frag), options...)
}

// MustShader is like NewShader but panics on error. It is intended for package-level
// shaders built from embedded sources.
func MustShader(id common.ResourceID, vertexSource, fragmentSource string, options ...ShaderBuilderOption) Shader {
	s, err := NewShader(id, vertexSource, fragmentSource, options...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *shader) ID() common.ResourceID {
	return s.id
}

func (s *shader) VertexSource() string {
	return s.vertexSource
}

func (s *shader) FragmentSource() string {
	return s.fragmentSource
}

func (s *shader) Shared() bool {
	return s.shared
}

func (s *shader) Dialect() Dialect {
	return s.dialect
}
