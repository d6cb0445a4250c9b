package geometry

import (
	"github.com/Carmen-Shannon/glue/common"
	"github.com/go-gl/mathgl/mgl32"
)

// face is one axis-aligned square of a primitive, spanned by u and v around normal.
// u x v equals normal so the generated triangles wind counter-clockwise seen from outside.
type face struct {
	normal, u, v mgl32.Vec3
}

var boxFaces = []face{
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
}

var quadCorners = [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// Box creates a 2x2x2 cube centered on the origin with per-face normals, tangents and
// texture coordinates, following the shared attribute layout.
//
// Parameters:
//   - id: the geometry identity, an empty id is replaced by a generated one
//
// Returns:
//   - Geometry: the box geometry
func Box(id common.ResourceID) Geometry {
	if id == "" {
		id = common.NewResourceID("box")
	}
	return MustGeometry(id, buildFaces(boxFaces)...)
}

// Quad creates a 2x2 square on the XZ plane facing +Y, centered on the origin.
//
// Parameters:
//   - id: the geometry identity, an empty id is replaced by a generated one
//
// Returns:
//   - Geometry: the quad geometry
func Quad(id common.ResourceID) Geometry {
	if id == "" {
		id = common.NewResourceID("quad")
	}
	return MustGeometry(id, buildFaces(boxFaces[2:3])...)
}

func buildFaces(faces []face) []GeometryBuilderOption {
	n := len(faces) * 4
	positions := make([]float32, 0, n*3)
	normals := make([]float32, 0, n*3)
	tangents := make([]float32, 0, n*4)
	texCoords := make([]float32, 0, n*2)
	indices := make([]uint32, 0, len(faces)*6)

	for i, f := range faces {
		for _, c := range quadCorners {
			p := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1]))
			positions = append(positions, p[:]...)
			normals = append(normals, f.normal[:]...)
			tangents = append(tangents, f.u[0], f.u[1], f.u[2], 1)
			texCoords = append(texCoords, (c[0]+1)/2, (c[1]+1)/2)
		}
		base := uint32(i * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	// The quad face sits on the origin plane rather than at distance 1.
	if len(faces) == 1 {
		for i := 0; i < len(positions); i += 3 {
			positions[i] -= faces[0].normal[0]
			positions[i+1] -= faces[0].normal[1]
			positions[i+2] -= faces[0].normal[2]
		}
	}

	return []GeometryBuilderOption{
		WithAttribute(AttributePosition, 3, positions),
		WithAttribute(AttributeNormal, 3, normals),
		WithAttribute(AttributeTangent, 4, tangents),
		WithAttribute(AttributeTexCoord, 2, texCoords),
		WithIndices(indices),
	}
}
