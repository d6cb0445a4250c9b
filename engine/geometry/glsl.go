package geometry

import _ "embed"

// GLSLAttributesSource declares the vertex inputs of the shared attribute layout.
//
//go:embed assets/attributes.glsl
var GLSLAttributesSource string

// SharedAttributes is the fixed attribute location table used by shaders flagged shared.
var SharedAttributes = map[string]uint32{
	AttributePosition: 0,
	AttributeNormal:   1,
	AttributeTangent:  2,
	AttributeTexCoord: 3,
}
