package uniform

import "fmt"

// Type is the declared GLSL type of a uniform leaf.
type Type int

const (
	TypeFloat Type = iota
	TypeVec2
	TypeVec3
	TypeVec4
	TypeInt
	TypeIVec2
	TypeIVec3
	TypeIVec4
	TypeBool
	TypeBVec2
	TypeBVec3
	TypeBVec4
	TypeMat2
	TypeMat3
	TypeMat4
	TypeSampler2D
	TypeSamplerCube
)

var typeNames = map[Type]string{
	TypeFloat:       "float",
	TypeVec2:        "vec2",
	TypeVec3:        "vec3",
	TypeVec4:        "vec4",
	TypeInt:         "int",
	TypeIVec2:       "ivec2",
	TypeIVec3:       "ivec3",
	TypeIVec4:       "ivec4",
	TypeBool:        "bool",
	TypeBVec2:       "bvec2",
	TypeBVec3:       "bvec3",
	TypeBVec4:       "bvec4",
	TypeMat2:        "mat2",
	TypeMat3:        "mat3",
	TypeMat4:        "mat4",
	TypeSampler2D:   "sampler2D",
	TypeSamplerCube: "samplerCube",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a GLSL type name to its Type.
//
// Parameters:
//   - name: the GLSL type keyword, e.g. "vec3" or "sampler2D"
//
// Returns:
//   - Type: the matching Type
//   - bool: false if the name is not a supported uniform type
func ParseType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// IsSampler reports whether values of this type are textures resolved to a texture slot before upload.
func (t Type) IsSampler() bool {
	return t == TypeSampler2D || t == TypeSamplerCube
}

// IsInteger reports whether the type is uploaded through the integer uniform calls.
// Booleans and boolean vectors are uploaded as integers.
func (t Type) IsInteger() bool {
	switch t {
	case TypeInt, TypeIVec2, TypeIVec3, TypeIVec4, TypeBool, TypeBVec2, TypeBVec3, TypeBVec4:
		return true
	}
	return false
}

// Components returns the number of scalar components in one element of the type.
func (t Type) Components() int {
	switch t {
	case TypeFloat, TypeInt, TypeBool, TypeSampler2D, TypeSamplerCube:
		return 1
	case TypeVec2, TypeIVec2, TypeBVec2:
		return 2
	case TypeVec3, TypeIVec3, TypeBVec3:
		return 3
	case TypeVec4, TypeIVec4, TypeBVec4, TypeMat2:
		return 4
	case TypeMat3:
		return 9
	case TypeMat4:
		return 16
	}
	return 0
}
