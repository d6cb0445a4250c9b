package uniform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Floats flattens a float-like uniform value into column-major float32 data.
//
// Parameters:
//   - value: a scalar, fixed array, slice, or mgl32 vector/matrix (or a slice of them)
//
// Returns:
//   - []float32: the flattened data
//   - bool: false if the value has no float representation
func Floats(value any) ([]float32, bool) {
	switch v := value.(type) {
	case float32:
		return []float32{v}, true
	case float64:
		return []float32{float32(v)}, true
	case int:
		return []float32{float32(v)}, true
	case []float32:
		return v, true
	case [2]float32:
		return v[:], true
	case [3]float32:
		return v[:], true
	case [4]float32:
		return v[:], true
	case [9]float32:
		return v[:], true
	case [16]float32:
		return v[:], true
	case mgl32.Vec2:
		return v[:], true
	case mgl32.Vec3:
		return v[:], true
	case mgl32.Vec4:
		return v[:], true
	case mgl32.Mat2:
		return v[:], true
	case mgl32.Mat3:
		return v[:], true
	case mgl32.Mat4:
		return v[:], true
	case *mgl32.Mat4:
		return v[:], true
	case []mgl32.Vec2:
		return flattenVec2(v), true
	case []mgl32.Vec3:
		return flattenVec3(v), true
	case []mgl32.Vec4:
		return flattenVec4(v), true
	case []mgl32.Mat3:
		return flattenMat3(v), true
	case []mgl32.Mat4:
		return flattenMat4(v), true
	case [][2]float32:
		out := make([]float32, 0, len(v)*2)
		for _, e := range v {
			out = append(out, e[:]...)
		}
		return out, true
	case [][3]float32:
		out := make([]float32, 0, len(v)*3)
		for _, e := range v {
			out = append(out, e[:]...)
		}
		return out, true
	case [][4]float32:
		out := make([]float32, 0, len(v)*4)
		for _, e := range v {
			out = append(out, e[:]...)
		}
		return out, true
	}
	return nil, false
}

// Ints flattens an integer or boolean uniform value into int32 data.
// Booleans become 0 or 1.
//
// Parameters:
//   - value: an int, int32, bool, fixed array, or slice of those
//
// Returns:
//   - []int32: the flattened data
//   - bool: false if the value has no integer representation
func Ints(value any) ([]int32, bool) {
	switch v := value.(type) {
	case int:
		return []int32{int32(v)}, true
	case int32:
		return []int32{v}, true
	case uint32:
		return []int32{int32(v)}, true
	case bool:
		return []int32{boolToInt(v)}, true
	case []int32:
		return v, true
	case []int:
		out := make([]int32, len(v))
		for i, n := range v {
			out[i] = int32(n)
		}
		return out, true
	case []bool:
		out := make([]int32, len(v))
		for i, b := range v {
			out[i] = boolToInt(b)
		}
		return out, true
	case [2]int32:
		return v[:], true
	case [3]int32:
		return v[:], true
	case [4]int32:
		return v[:], true
	case [2]bool:
		return []int32{boolToInt(v[0]), boolToInt(v[1])}, true
	case [3]bool:
		return []int32{boolToInt(v[0]), boolToInt(v[1]), boolToInt(v[2])}, true
	case [4]bool:
		return []int32{boolToInt(v[0]), boolToInt(v[1]), boolToInt(v[2]), boolToInt(v[3])}, true
	case [][2]int32:
		out := make([]int32, 0, len(v)*2)
		for _, e := range v {
			out = append(out, e[:]...)
		}
		return out, true
	case [][3]int32:
		out := make([]int32, 0, len(v)*3)
		for _, e := range v {
			out = append(out, e[:]...)
		}
		return out, true
	case [][4]int32:
		out := make([]int32, 0, len(v)*4)
		for _, e := range v {
			out = append(out, e[:]...)
		}
		return out, true
	}
	return nil, false
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func flattenVec2(in []mgl32.Vec2) []float32 {
	out := make([]float32, 0, len(in)*2)
	for _, v := range in {
		out = append(out, v[:]...)
	}
	return out
}

func flattenVec3(in []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(in)*3)
	for _, v := range in {
		out = append(out, v[:]...)
	}
	return out
}

func flattenVec4(in []mgl32.Vec4) []float32 {
	out := make([]float32, 0, len(in)*4)
	for _, v := range in {
		out = append(out, v[:]...)
	}
	return out
}

func flattenMat3(in []mgl32.Mat3) []float32 {
	out := make([]float32, 0, len(in)*9)
	for _, m := range in {
		out = append(out, m[:]...)
	}
	return out
}

func flattenMat4(in []mgl32.Mat4) []float32 {
	out := make([]float32, 0, len(in)*16)
	for _, m := range in {
		out = append(out, m[:]...)
	}
	return out
}
