// Package geometry describes vertex data as the render context consumes it: named float
// attributes, an optional index list and one or more draw ranges. A geometry with several
// ranges is drawn with one draw call per range.
package geometry

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/glue/common"
)

const (
	AttributePosition = "aPosition"
	AttributeNormal   = "aNormal"
	AttributeTangent  = "aTangent"
	AttributeTexCoord = "aTexCoord"
)

// Primitive is the topology of a draw range.
type Primitive int

const (
	PrimitiveTriangles Primitive = iota
	PrimitiveTriangleStrip
	PrimitiveLines
	PrimitiveLineStrip
	PrimitivePoints
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveTriangles:
		return "triangles"
	case PrimitiveTriangleStrip:
		return "triangleStrip"
	case PrimitiveLines:
		return "lines"
	case PrimitiveLineStrip:
		return "lineStrip"
	case PrimitivePoints:
		return "points"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// DrawRange is one draw call over the index list, or over the vertices when the geometry is not indexed.
type DrawRange struct {
	Primitive Primitive
	First     int
	Count     int
}

// Attribute is one named vertex attribute. Data holds Size components per vertex.
type Attribute struct {
	Name string
	Size int
	Data []float32
}

// VertexCount returns the number of vertices the attribute holds.
func (a Attribute) VertexCount() int {
	if a.Size == 0 {
		return 0
	}
	return len(a.Data) / a.Size
}

// geometry is the implementation of the Geometry interface.
type geometry struct {
	id         common.ResourceID
	attributes map[string]Attribute
	indices    []uint32
	ranges     []DrawRange
	primitive  Primitive
}

// Geometry is an immutable vertex data descriptor identified by a ResourceID.
//
// The render context uploads it once, on first draw, and reuses the native buffers for every
// later draw of the same identity.
type Geometry interface {
	// ID retrieves the resource identity used as the geometry cache key.
	//
	// Returns:
	//   - common.ResourceID: the geometry's identity
	ID() common.ResourceID

	// Attributes returns every attribute sorted by name.
	//
	// Returns:
	//   - []Attribute: the vertex attributes
	Attributes() []Attribute

	// Attribute looks up one attribute by name.
	//
	// Parameters:
	//   - name: the attribute name, e.g. AttributePosition
	//
	// Returns:
	//   - Attribute: the attribute
	//   - bool: false if the geometry does not carry it
	Attribute(name string) (Attribute, bool)

	// Indices returns the index list, or nil for non-indexed geometry.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// Ranges returns the draw ranges in draw order. Never empty.
	//
	// Returns:
	//   - []DrawRange: the draw ranges
	Ranges() []DrawRange

	// VertexCount returns the number of vertices shared by all attributes.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int
}

var _ Geometry = &geometry{}

// NewGeometry creates a Geometry with the specified options applied. Every attribute must
// describe the same number of vertices and every range must fit the index list (or the
// vertex count when there are no indices). Without WithRanges a single range covering all
// indices, or all vertices, with the WithPrimitive topology is used.
//
// Parameters:
//   - id: the geometry identity, an empty id is replaced by a generated one
//   - options: variadic list of GeometryBuilderOption functions
//
// Returns:
//   - Geometry: the geometry
//   - error: an error if the attributes or ranges are inconsistent
func NewGeometry(id common.ResourceID, options ...GeometryBuilderOption) (Geometry, error) {
	if id == "" {
		id = common.NewResourceID("geometry")
	}
	g := &geometry{
		id:         id,
		attributes: make(map[string]Attribute),
		primitive:  PrimitiveTriangles,
	}
	for _, opt := range options {
		opt(g)
	}

	vertices := -1
	for name, a := range g.attributes {
		if a.Size < 1 || a.Size > 4 {
			return nil, fmt.Errorf("geometry %s: attribute %s has invalid size %d", id, name, a.Size)
		}
		if len(a.Data)%a.Size != 0 {
			return nil, fmt.Errorf("geometry %s: attribute %s length %d is not a multiple of %d", id, name, len(a.Data), a.Size)
		}
		if vertices >= 0 && a.VertexCount() != vertices {
			return nil, fmt.Errorf("geometry %s: attribute %s has %d vertices, want %d", id, name, a.VertexCount(), vertices)
		}
		vertices = a.VertexCount()
	}
	if vertices < 0 {
		return nil, fmt.Errorf("geometry %s: no attributes", id)
	}

	limit := vertices
	if g.indices != nil {
		limit = len(g.indices)
		for _, idx := range g.indices {
			if int(idx) >= vertices {
				return nil, fmt.Errorf("geometry %s: index %d out of range for %d vertices", id, idx, vertices)
			}
		}
	}
	if len(g.ranges) == 0 {
		g.ranges = []DrawRange{{Primitive: g.primitive, First: 0, Count: limit}}
	}
	for _, r := range g.ranges {
		if r.First < 0 || r.Count < 0 || r.First+r.Count > limit {
			return nil, fmt.Errorf("geometry %s: range [%d, %d) exceeds %d elements", id, r.First, r.First+r.Count, limit)
		}
	}
	return g, nil
}

// MustGeometry is like NewGeometry but panics on error.
func MustGeometry(id common.ResourceID, options ...GeometryBuilderOption) Geometry {
	g, err := NewGeometry(id, options...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *geometry) ID() common.ResourceID {
	return g.id
}

func (g *geometry) Attributes() []Attribute {
	out := make([]Attribute, 0, len(g.attributes))
	for _, a := range g.attributes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (g *geometry) Attribute(name string) (Attribute, bool) {
	a, ok := g.attributes[name]
	return a, ok
}

func (g *geometry) Indices() []uint32 {
	return g.indices
}

func (g *geometry) Ranges() []DrawRange {
	return g.ranges
}

func (g *geometry) VertexCount() int {
	for _, a := range g.attributes {
		return a.VertexCount()
	}
	return 0
}
