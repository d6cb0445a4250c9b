package shader

// ShaderBuilderOption is a functional option applied to a shader during construction via NewShader.
type ShaderBuilderOption func(*shader)

// WithShared forces the shared attribute layout flag regardless of annotations.
//
// Parameters:
//   - shared: true if the shader's vertex inputs follow the shared attribute layout
//
// Returns:
//   - ShaderBuilderOption: a function that applies the shared option to a shader
func WithShared(shared bool) ShaderBuilderOption {
	return func(s *shader) {
		s.shared = shared
	}
}

// WithDialect sets the GLSL dialect the sources are written in. Defaults to DialectGLSL410.
//
// Parameters:
//   - dialect: the source dialect
//
// Returns:
//   - ShaderBuilderOption: a function that applies the dialect option to a shader
func WithDialect(dialect Dialect) ShaderBuilderOption {
	return func(s *shader) {
		s.dialect = dialect
	}
}

// WithDefine adds a #define injected after the #version directive of both stages.
//
// Parameters:
//   - name: the macro name
//   - value: the macro value, may be empty
//
// Returns:
//   - ShaderBuilderOption: a function that applies the define option to a shader
func WithDefine(name, value string) ShaderBuilderOption {
	return func(s *shader) {
		s.defines[name] = value
	}
}
