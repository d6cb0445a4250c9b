package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGeometryDefaultRange(t *testing.T) {
	tests := []struct {
		name    string
		opts    []GeometryBuilderOption
		want    DrawRange
		indexed bool
	}{
		{
			name: "non-indexed",
			opts: []GeometryBuilderOption{WithAttribute(AttributePosition, 3, make([]float32, 9))},
			want: DrawRange{Primitive: PrimitiveTriangles, First: 0, Count: 3},
		},
		{
			name: "indexed lines",
			opts: []GeometryBuilderOption{
				WithAttribute(AttributePosition, 2, make([]float32, 6)),
				WithIndices([]uint32{0, 1, 1, 2}),
				WithPrimitive(PrimitiveLines),
			},
			want:    DrawRange{Primitive: PrimitiveLines, First: 0, Count: 4},
			indexed: true,
		},
	}
	for _, tt := range tests {
		g, err := NewGeometry("g", tt.opts...)
		if err != nil {
			t.Errorf("%s: NewGeometry returned %v", tt.name, err)
			continue
		}
		if got := g.Ranges(); len(got) != 1 || got[0] != tt.want {
			t.Errorf("%s: Ranges() = %v, want [%v]", tt.name, got, tt.want)
		}
		if (g.Indices() != nil) != tt.indexed {
			t.Errorf("%s: indexed = %v, want %v", tt.name, g.Indices() != nil, tt.indexed)
		}
	}
}

func TestNewGeometryValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []GeometryBuilderOption
	}{
		{"no attributes", nil},
		{"ragged attribute", []GeometryBuilderOption{WithAttribute(AttributePosition, 3, make([]float32, 4))}},
		{"bad size", []GeometryBuilderOption{WithAttribute(AttributePosition, 5, make([]float32, 5))}},
		{"vertex count mismatch", []GeometryBuilderOption{
			WithAttribute(AttributePosition, 3, make([]float32, 9)),
			WithAttribute(AttributeTexCoord, 2, make([]float32, 4)),
		}},
		{"index out of range", []GeometryBuilderOption{
			WithAttribute(AttributePosition, 3, make([]float32, 9)),
			WithIndices([]uint32{0, 1, 3}),
		}},
		{"range past end", []GeometryBuilderOption{
			WithAttribute(AttributePosition, 3, make([]float32, 9)),
			WithRanges(DrawRange{First: 1, Count: 3}),
		}},
	}
	for _, tt := range tests {
		if _, err := NewGeometry("g", tt.opts...); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestBoxWinding(t *testing.T) {
	g := Box("box")
	if g.VertexCount() != 24 {
		t.Fatalf("VertexCount() = %d, want 24", g.VertexCount())
	}
	if len(g.Indices()) != 36 {
		t.Fatalf("len(Indices()) = %d, want 36", len(g.Indices()))
	}
	pos, _ := g.Attribute(AttributePosition)
	nrm, _ := g.Attribute(AttributeNormal)
	at := func(a Attribute, i uint32) mgl32.Vec3 {
		return mgl32.Vec3{a.Data[i*3], a.Data[i*3+1], a.Data[i*3+2]}
	}
	idx := g.Indices()
	for tri := 0; tri < len(idx); tri += 3 {
		p0, p1, p2 := at(pos, idx[tri]), at(pos, idx[tri+1]), at(pos, idx[tri+2])
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Dot(at(nrm, idx[tri])) <= 0 {
			t.Errorf("triangle %d winds away from its normal", tri/3)
		}
	}
}

func TestQuadIsFlat(t *testing.T) {
	g := Quad("quad")
	pos, ok := g.Attribute(AttributePosition)
	if !ok {
		t.Fatal("quad has no positions")
	}
	for i := 1; i < len(pos.Data); i += 3 {
		if pos.Data[i] != 0 {
			t.Errorf("vertex %d y = %f, want 0", i/3, pos.Data[i])
		}
	}
	if len(g.Attributes()) != 4 {
		t.Errorf("len(Attributes()) = %d, want 4", len(g.Attributes()))
	}
}

func TestWireframe(t *testing.T) {
	g := MustGeometry("multi",
		WithAttribute(AttributePosition, 3, make([]float32, 15)),
		WithIndices([]uint32{0, 1, 2, 2, 3, 0, 3, 4}),
		WithRanges(
			DrawRange{Primitive: PrimitiveTriangles, First: 0, Count: 6},
			DrawRange{Primitive: PrimitiveLines, First: 6, Count: 2},
		),
	)
	w := Wireframe("", g)

	if w.ID() != "multi_wireframe" {
		t.Errorf("ID() = %s, want multi_wireframe", w.ID())
	}
	want := []DrawRange{
		{Primitive: PrimitiveLines, First: 0, Count: 12},
		{Primitive: PrimitiveLines, First: 12, Count: 2},
	}
	got := w.Ranges()
	if len(got) != len(want) {
		t.Fatalf("Ranges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %v, want %v", i, got[i], want[i])
		}
	}
	wantIdx := []uint32{0, 1, 1, 2, 2, 0, 2, 3, 3, 0, 0, 2, 3, 4}
	for i, v := range wantIdx {
		if w.Indices()[i] != v {
			t.Errorf("Indices()[%d] = %d, want %d", i, w.Indices()[i], v)
		}
	}
	if w.VertexCount() != g.VertexCount() {
		t.Errorf("VertexCount() = %d, want %d", w.VertexCount(), g.VertexCount())
	}
}

func TestWireframeNonIndexed(t *testing.T) {
	g := MustGeometry("tri", WithAttribute(AttributePosition, 3, make([]float32, 9)))
	w := Wireframe("edges", g)
	if len(w.Indices()) != 6 {
		t.Errorf("len(Indices()) = %d, want 6", len(w.Indices()))
	}
}
