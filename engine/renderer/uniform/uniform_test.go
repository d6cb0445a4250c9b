package uniform

import (
	"errors"
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type uploadCall struct {
	fn  string
	loc Location
	f   []float32
	i   []int32
}

type recordingUploader struct {
	calls []uploadCall
}

func (r *recordingUploader) ints(fn string, loc Location, v []int32) {
	r.calls = append(r.calls, uploadCall{fn: fn, loc: loc, i: append([]int32(nil), v...)})
}

func (r *recordingUploader) floats(fn string, loc Location, v []float32) {
	r.calls = append(r.calls, uploadCall{fn: fn, loc: loc, f: append([]float32(nil), v...)})
}

func (r *recordingUploader) Uniform1i(loc Location, v []int32)         { r.ints("1i", loc, v) }
func (r *recordingUploader) Uniform2i(loc Location, v []int32)         { r.ints("2i", loc, v) }
func (r *recordingUploader) Uniform3i(loc Location, v []int32)         { r.ints("3i", loc, v) }
func (r *recordingUploader) Uniform4i(loc Location, v []int32)         { r.ints("4i", loc, v) }
func (r *recordingUploader) Uniform1f(loc Location, v []float32)       { r.floats("1f", loc, v) }
func (r *recordingUploader) Uniform2f(loc Location, v []float32)       { r.floats("2f", loc, v) }
func (r *recordingUploader) Uniform3f(loc Location, v []float32)       { r.floats("3f", loc, v) }
func (r *recordingUploader) Uniform4f(loc Location, v []float32)       { r.floats("4f", loc, v) }
func (r *recordingUploader) UniformMatrix2f(loc Location, v []float32) { r.floats("m2", loc, v) }
func (r *recordingUploader) UniformMatrix3f(loc Location, v []float32) { r.floats("m3", loc, v) }
func (r *recordingUploader) UniformMatrix4f(loc Location, v []float32) { r.floats("m4", loc, v) }

func (r *recordingUploader) find(loc Location) (uploadCall, bool) {
	for _, c := range r.calls {
		if c.loc == loc {
			return c, true
		}
	}
	return uploadCall{}, false
}

func keys(n *Node) []string {
	out := make([]string, 0, len(n.children))
	for k := range n.children {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func lookup(n *Node, path ...string) (*Node, bool) {
	cur := n
	for _, key := range path {
		next, ok := cur.Child(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"uModel", []string{"uModel"}},
		{"uLightSize[0]", []string{"uLightSize"}},
		{"uPointLight[1].color", []string{"uPointLight", "1", "color"}},
		{"uMaterial.weights[0]", []string{"uMaterial", "weights"}},
		{"uGrid[2][0].value", []string{"uGrid", "2", "0", "value"}},
	}
	for _, tt := range tests {
		got := splitName(tt.name)
		if len(got) != len(tt.want) {
			t.Errorf("splitName(%q) = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitName(%q) = %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestBuildTree(t *testing.T) {
	root := BuildTree([]Info{
		{Name: "uModel", Location: 0, Type: TypeMat4, Count: 1},
		{Name: "uLightSize[0]", Location: 1, Type: TypeIVec4, Count: 2},
		{Name: "uPointLight[0].color", Location: 2, Type: TypeVec3, Count: 1},
		{Name: "uPointLight[1].color", Location: 3, Type: TypeVec3, Count: 1},
		{Name: "uMaterial.diffuseMap", Location: 4, Type: TypeSampler2D, Count: 1},
	})

	if root.Kind() != KindGroup {
		t.Fatalf("root kind = %v, want group", root.Kind())
	}
	if got := keys(root); len(got) != 4 {
		t.Errorf("root keys = %v, want 4 entries", got)
	}

	size, ok := lookup(root, "uLightSize")
	if !ok || size.Kind() != KindLeaf {
		t.Fatal("uLightSize should be a leaf")
	}
	if size.Count() != 2 {
		t.Errorf("uLightSize count = %d, want 2", size.Count())
	}

	color, ok := lookup(root, "uPointLight", "1", "color")
	if !ok {
		t.Fatal("uPointLight[1].color missing")
	}
	if color.Location() != 3 || color.Type() != TypeVec3 {
		t.Errorf("uPointLight[1].color = (%d, %s), want (3, vec3)", color.Location(), color.Type())
	}

	if _, ok := lookup(root, "uModel", "x"); ok {
		t.Error("lookup through a leaf should fail")
	}
}

func TestBinderSkipsUndeclared(t *testing.T) {
	up := &recordingUploader{}
	root := BuildTree([]Info{{Name: "uAlpha", Location: 7, Type: TypeFloat}})

	err := NewBinder(up, nil).Bind(Values{
		"uAlpha":   float32(0.5),
		"uMissing": mgl32.Vec3{1, 2, 3},
	}, root)
	if err != nil {
		t.Fatalf("Bind returned %v", err)
	}
	if len(up.calls) != 1 {
		t.Fatalf("upload calls = %d, want 1", len(up.calls))
	}
	if up.calls[0].fn != "1f" || up.calls[0].f[0] != 0.5 {
		t.Errorf("call = %+v, want 1f 0.5", up.calls[0])
	}
}

func TestBinderDispatchByType(t *testing.T) {
	tests := []struct {
		typ   Type
		value any
		fn    string
	}{
		{TypeVec2, [2]float32{1, 2}, "2f"},
		{TypeVec3, mgl32.Vec3{1, 2, 3}, "3f"},
		{TypeVec4, []float32{1, 2, 3, 4}, "4f"},
		{TypeIVec2, [2]int32{1, 2}, "2i"},
		{TypeIVec3, [3]int32{1, 2, 3}, "3i"},
		{TypeIVec4, [][4]int32{{1, 2, 3, 4}, {5, 0, 0, 0}}, "4i"},
		{TypeBVec2, [2]bool{true, false}, "2i"},
		{TypeBool, true, "1i"},
		{TypeInt, 3, "1i"},
		{TypeFloat, 2.5, "1f"},
		{TypeMat2, mgl32.Ident2(), "m2"},
		{TypeMat3, mgl32.Ident3(), "m3"},
		{TypeMat4, mgl32.Ident4(), "m4"},
	}
	for _, tt := range tests {
		up := &recordingUploader{}
		root := Group()
		root.Set("u", Leaf(1, tt.typ, 1))
		if err := NewBinder(up, nil).Bind(Values{"u": tt.value}, root); err != nil {
			t.Errorf("%s: Bind returned %v", tt.typ, err)
			continue
		}
		if len(up.calls) != 1 || up.calls[0].fn != tt.fn {
			t.Errorf("%s: calls = %+v, want one %s call", tt.typ, up.calls, tt.fn)
		}
	}
}

func TestBinderCapsArrayLength(t *testing.T) {
	root := BuildTree([]Info{
		{Name: "uColor", Location: 1, Type: TypeVec3, Count: 1},
		{Name: "uWeights[0]", Location: 2, Type: TypeFloat, Count: 3},
	})
	up := &recordingUploader{}
	err := NewBinder(up, nil).Bind(Values{
		"uColor":   []float32{1, 2, 3, 4, 5, 6},
		"uWeights": []float32{1, 2, 3, 4, 5},
	}, root)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		loc  Location
		want int
	}{
		{1, 3},
		{2, 3},
	}
	for _, tt := range tests {
		c, ok := up.find(tt.loc)
		if !ok || len(c.f) != tt.want {
			t.Errorf("upload at %d = %v, want %d floats", tt.loc, c.f, tt.want)
		}
	}
}

func TestBinderTypeMismatch(t *testing.T) {
	root := Group()
	root.Set("uColor", Leaf(1, TypeVec3, 1))
	err := NewBinder(&recordingUploader{}, nil).Bind(Values{"uColor": "red"}, root)
	if err == nil {
		t.Fatal("expected an error for a string vec3")
	}
}

func TestBinderProducerIsLazy(t *testing.T) {
	calls := 0
	produce := Producer(func() any {
		calls++
		return float32(1)
	})
	root := BuildTree([]Info{{Name: "uTime", Location: 1, Type: TypeFloat}})
	up := &recordingUploader{}
	b := NewBinder(up, nil)

	if err := b.Bind(Values{"uOther": produce}, root); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("producer for an undeclared uniform ran %d times, want 0", calls)
	}
	if err := b.Bind(Values{"uTime": produce}, root); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("producer ran %d times, want 1", calls)
	}
}

func TestBinderArrayOfStructs(t *testing.T) {
	root := BuildTree([]Info{
		{Name: "uPointLight[0].color", Location: 10, Type: TypeVec3},
		{Name: "uPointLight[0].range", Location: 11, Type: TypeFloat},
		{Name: "uPointLight[1].color", Location: 12, Type: TypeVec3},
		{Name: "uPointLight[1].range", Location: 13, Type: TypeFloat},
	})
	up := &recordingUploader{}
	err := NewBinder(up, nil).Bind(Values{
		"uPointLight": []Values{
			{"color": mgl32.Vec3{1, 0, 0}, "range": float32(5)},
			{"color": mgl32.Vec3{0, 1, 0}, "range": float32(6)},
			{"color": mgl32.Vec3{0, 0, 1}, "range": float32(7)},
		},
	}, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(up.calls) != 4 {
		t.Fatalf("upload calls = %d, want 4", len(up.calls))
	}
	c, ok := up.find(12)
	if !ok || c.f[1] != 1 {
		t.Errorf("uPointLight[1].color = %+v, want green", c)
	}
	r, ok := up.find(13)
	if !ok || r.f[0] != 6 {
		t.Errorf("uPointLight[1].range = %+v, want 6", r)
	}
}

func TestBinderSamplers(t *testing.T) {
	root := BuildTree([]Info{{Name: "uMaterial.diffuseMap", Location: 3, Type: TypeSampler2D}})
	up := &recordingUploader{}
	resolver := func(v any) (int, error) {
		if v == "brick" {
			return 5, nil
		}
		return 0, errors.New("unknown texture")
	}

	if err := NewBinder(up, resolver).Bind(Values{"uMaterial": Values{"diffuseMap": "brick"}}, root); err != nil {
		t.Fatal(err)
	}
	if len(up.calls) != 1 || up.calls[0].fn != "1i" || up.calls[0].i[0] != 5 {
		t.Errorf("calls = %+v, want 1i slot 5", up.calls)
	}

	if err := NewBinder(up, resolver).Bind(Values{"uMaterial": Values{"diffuseMap": "sand"}}, root); err == nil {
		t.Error("expected resolver error to propagate")
	}
}
