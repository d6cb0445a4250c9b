package geometry

import "github.com/Carmen-Shannon/glue/common"

// Wireframe converts g into a line geometry sharing its attributes. Every triangle range
// becomes a line range with the three edges of each triangle; other ranges are copied as
// they are. Non-indexed geometry is indexed sequentially first.
//
// Parameters:
//   - id: the identity of the new geometry, an empty id derives one from g's identity
//   - g: the source geometry
//
// Returns:
//   - Geometry: the wireframe geometry
func Wireframe(id common.ResourceID, g Geometry) Geometry {
	if id == "" {
		id = common.ResourceID(g.ID().String() + "_wireframe")
	}

	src := g.Indices()
	if src == nil {
		src = make([]uint32, g.VertexCount())
		for i := range src {
			src[i] = uint32(i)
		}
	}

	var indices []uint32
	ranges := make([]DrawRange, 0, len(g.Ranges()))
	for _, r := range g.Ranges() {
		first := len(indices)
		if r.Primitive != PrimitiveTriangles {
			indices = append(indices, src[r.First:r.First+r.Count]...)
			ranges = append(ranges, DrawRange{Primitive: r.Primitive, First: first, Count: r.Count})
			continue
		}
		for t := 0; t+2 < r.Count; t += 3 {
			a, b, c := src[r.First+t], src[r.First+t+1], src[r.First+t+2]
			indices = append(indices, a, b, b, c, c, a)
		}
		ranges = append(ranges, DrawRange{Primitive: PrimitiveLines, First: first, Count: len(indices) - first})
	}

	opts := make([]GeometryBuilderOption, 0, len(g.Attributes())+2)
	for _, a := range g.Attributes() {
		opts = append(opts, WithAttribute(a.Name, a.Size, a.Data))
	}
	opts = append(opts, WithIndices(indices), WithRanges(ranges...))
	return MustGeometry(id, opts...)
}
