package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Near() != 0.3 || c.Far() != 1000 {
		t.Errorf("near/far = %v/%v, want 0.3/1000", c.Near(), c.Far())
	}
	if !mgl32.FloatEqual(c.Fov(), mgl32.DegToRad(70)) {
		t.Errorf("Fov = %v, want 70 degrees", c.Fov())
	}
	if !c.HasChanged() {
		t.Error("a freshly validated camera should report a change")
	}
	if c.Validate() {
		t.Error("second Validate without mutation should report no change")
	}
	if c.HasChanged() {
		t.Error("HasChanged should be cleared by an idle Validate")
	}
}

func TestValidateAspect(t *testing.T) {
	c := NewCamera()
	c.Validate()

	c.ValidateAspect(1)
	if c.HasChanged() {
		t.Error("same aspect should not mark the camera changed")
	}

	before := c.ProjectionMatrix()
	c.ValidateAspect(16.0 / 9.0)
	if !c.HasChanged() {
		t.Error("new aspect should mark the camera changed")
	}
	if c.ProjectionMatrix() == before {
		t.Error("projection should be rebuilt for a new aspect")
	}

	c.ValidateAspect(0)
	if !mgl32.FloatEqual(c.Aspect(), 16.0/9.0) {
		t.Errorf("zero aspect should be ignored, got %v", c.Aspect())
	}
}

func TestViewMatrixInverse(t *testing.T) {
	c := NewCamera(WithPosition(3, 4, 5), WithLookAt(0, 0, 0))
	id := c.ViewMatrix().Mul4(c.WorldMatrix())
	if !id.ApproxEqualThreshold(mgl32.Ident4(), 1e-4) {
		t.Errorf("view * world = %v, want identity", id)
	}
	if got := c.ProjectionViewMatrix(); !got.ApproxEqual(c.ProjectionMatrix().Mul4(c.ViewMatrix())) {
		t.Errorf("ProjectionViewMatrix = %v, want P*V", got)
	}
}

func TestOrthographic(t *testing.T) {
	c := NewCamera(WithProjection(ProjectionOrthographic), WithZoom(2), WithAspect(2))
	want := mgl32.Ortho(-4, 4, -2, 2, 0.3, 1000)
	if !c.ProjectionMatrix().ApproxEqual(want) {
		t.Errorf("ortho projection = %v, want %v", c.ProjectionMatrix(), want)
	}
}

func TestControllerDrivesCamera(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(10), WithElevation(0))
	c := NewCamera(WithController(ctrl))
	if !c.Position().ApproxEqual(mgl32.Vec3{0, 0, 10}) {
		t.Errorf("Position = %v, want (0, 0, 10)", c.Position())
	}

	c.Validate()
	ctrl.Zoom(-5)
	if !c.Validate() {
		t.Error("Validate should pick up controller movement")
	}
	if !c.Position().ApproxEqual(mgl32.Vec3{0, 0, 5}) {
		t.Errorf("Position = %v, want (0, 0, 5)", c.Position())
	}
}

func TestUniforms(t *testing.T) {
	c := NewCamera(WithPosition(1, 2, 3))
	u := c.Uniforms()
	for _, name := range []string{"uProjectionView", "uProjection", "uView", "uViewInv", "uViewPos"} {
		if _, ok := u[name]; !ok {
			t.Errorf("Uniforms missing %s", name)
		}
	}
	if u["uViewPos"] != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("uViewPos = %v, want (1, 2, 3)", u["uViewPos"])
	}
}
