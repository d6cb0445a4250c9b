package geometry

// GeometryBuilderOption is a functional option for configuring a Geometry via NewGeometry.
type GeometryBuilderOption func(*geometry)

// WithAttribute is an option builder that adds a vertex attribute to the Geometry.
//
// Parameters:
//   - name: the attribute name matched against the shader's vertex inputs
//   - size: the number of components per vertex, 1 to 4
//   - data: the tightly packed attribute data
//
// Returns:
//   - GeometryBuilderOption: a function that applies the attribute option to a geometry
func WithAttribute(name string, size int, data []float32) GeometryBuilderOption {
	return func(g *geometry) {
		g.attributes[name] = Attribute{Name: name, Size: size, Data: data}
	}
}

// WithIndices is an option builder that sets the index list of the Geometry.
//
// Parameters:
//   - indices: the vertex indices
//
// Returns:
//   - GeometryBuilderOption: a function that applies the indices option to a geometry
func WithIndices(indices []uint32) GeometryBuilderOption {
	return func(g *geometry) {
		g.indices = indices
	}
}

// WithPrimitive is an option builder that sets the topology of the default draw range.
// It has no effect when WithRanges is also given.
//
// Parameters:
//   - p: the primitive topology
//
// Returns:
//   - GeometryBuilderOption: a function that applies the primitive option to a geometry
func WithPrimitive(p Primitive) GeometryBuilderOption {
	return func(g *geometry) {
		g.primitive = p
	}
}

// WithRanges is an option builder that splits the Geometry into several draw ranges,
// typically one per material group of an imported mesh.
//
// Parameters:
//   - ranges: the draw ranges in draw order
//
// Returns:
//   - GeometryBuilderOption: a function that applies the ranges option to a geometry
func WithRanges(ranges ...DrawRange) GeometryBuilderOption {
	return func(g *geometry) {
		g.ranges = append(g.ranges, ranges...)
	}
}
