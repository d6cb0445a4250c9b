package scene

import (
	"fmt"
	"math"
	"testing"

	"github.com/Carmen-Shannon/glue/engine/camera"
	"github.com/Carmen-Shannon/glue/engine/geometry"
	"github.com/Carmen-Shannon/glue/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

func TestMeshUpdate(t *testing.T) {
	m := NewMesh(geometry.Quad("quad"), nil,
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithScale(mgl32.Vec3{2, 2, 2}),
	)
	if m.Update() {
		t.Error("NewMesh should leave the matrices up to date")
	}

	got := m.WorldMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if want := (mgl32.Vec4{3, 2, 3, 1}); !got.ApproxEqual(want) {
		t.Errorf("world * (1,0,0) = %v, want %v", got, want)
	}
	n := m.NormalMatrix().Mul3x1(mgl32.Vec3{0, 1, 0})
	if want := (mgl32.Vec3{0, 0.5, 0}); !n.ApproxEqual(want) {
		t.Errorf("normal * (0,1,0) = %v, want %v", n, want)
	}

	m.Rotate(math.Pi/2, mgl32.Vec3{0, 0, 1})
	if !m.Update() {
		t.Fatal("Rotate should mark the matrices stale")
	}
	got = m.WorldMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if want := (mgl32.Vec4{1, 4, 3, 1}); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("rotated world * (1,0,0) = %v, want %v", got, want)
	}
}

func TestMeshZeroScaleKeepsNormalMatrix(t *testing.T) {
	m := NewMesh(geometry.Quad("quad"), nil)
	m.SetScale(mgl32.Vec3{0, 0, 0})
	m.Update()
	if m.NormalMatrix() != mgl32.Ident3() {
		t.Errorf("NormalMatrix() = %v, want identity", m.NormalMatrix())
	}
}

func TestSceneMeshesSkipDisabled(t *testing.T) {
	g := geometry.Box("box")
	a := NewMesh(g, nil)
	b := NewMesh(g, nil, WithMeshEnabled(false))
	c := NewMesh(g, nil)
	s := NewScene("main", WithMeshes(a, b))
	s.AddMesh(c)
	s.AddMesh(a)

	got := s.Meshes()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("Meshes() = %v, want [a c]", got)
	}

	s.RemoveMesh(a)
	if got := s.Meshes(); len(got) != 1 || got[0] != c {
		t.Errorf("after RemoveMesh, Meshes() = %v, want [c]", got)
	}
}

func TestSceneLightsGroupedByCategory(t *testing.T) {
	sun := light.NewLight(light.CategoryDirectional)
	p1 := light.NewLight(light.CategoryPoint)
	p2 := light.NewLight(light.CategoryPoint)
	off := light.NewLight(light.CategorySpot, light.WithEnabled(false))
	s := NewScene("main", WithLights(sun, p1, off))
	s.AddLight(p2)

	groups := s.Lights()
	if len(groups) != 2 {
		t.Fatalf("len(Lights()) = %d, want 2", len(groups))
	}
	if got := groups[light.CategoryPoint]; len(got) != 2 || got[0] != p1 || got[1] != p2 {
		t.Errorf("point group = %v, want [p1 p2]", got)
	}
	if _, ok := groups[light.CategorySpot]; ok {
		t.Error("disabled spot light should not create a group")
	}
}

func TestSceneTasks(t *testing.T) {
	s := NewScene("main")
	a := NewRenderTask("a", nil)
	b := NewRenderTask("b", s, WithMode("shadow"))
	s.AddTask(a)
	s.AddTask(b)
	s.AddTask(a)

	if got := s.Tasks(); len(got) != 2 {
		t.Fatalf("len(Tasks()) = %d, want 2", len(got))
	}
	if a.ResolvedMode() != "default" || b.ResolvedMode() != "shadow" {
		t.Errorf("modes = (%s, %s), want (default, shadow)", a.ResolvedMode(), b.ResolvedMode())
	}
	s.RemoveTask(a)
	if got := s.Tasks(); len(got) != 1 || got[0] != b {
		t.Errorf("after RemoveTask, Tasks() = %v, want [b]", got)
	}
}

func TestSceneResetKeepsCamera(t *testing.T) {
	cam := camera.NewCamera()
	s := NewScene("main", WithCamera(cam))
	s.AddMesh(NewMesh(geometry.Quad("q"), nil))
	s.AddLight(light.NewLight(light.CategoryAmbient))
	s.AddTask(NewRenderTask("sub", nil))

	s.Reset()
	if len(s.Meshes()) != 0 || len(s.Lights()) != 0 || len(s.Tasks()) != 0 {
		t.Error("Reset should remove meshes, lights and tasks")
	}
	if s.Camera() != cam {
		t.Error("Reset should keep the camera")
	}
}

func TestFinalizeParallel(t *testing.T) {
	g := geometry.Quad("quad")
	s := NewScene("big", WithFinalizeWorkers(4))
	meshes := make([]Mesh, parallelFinalizeThreshold+10)
	for i := range meshes {
		meshes[i] = NewMesh(g, nil, WithMeshName(fmt.Sprintf("m%d", i)))
		s.AddMesh(meshes[i])
		meshes[i].SetPosition(mgl32.Vec3{float32(i), 0, 0})
	}

	s.Finalize()
	for i, m := range meshes {
		if got := m.WorldMatrix().Col(3)[0]; got != float32(i) {
			t.Fatalf("mesh %d x translation = %f, want %d", i, got, i)
		}
	}
}

func TestNewMeshPanicsWithoutGeometry(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewMesh(nil, ...) should panic")
		}
	}()
	NewMesh(nil, nil)
}
