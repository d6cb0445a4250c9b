package renderer

import (
	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/geometry"
	"github.com/Carmen-Shannon/glue/engine/renderer/shader"
	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/Carmen-Shannon/glue/engine/target"
	"github.com/Carmen-Shannon/glue/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform locations every fake program declares.
const (
	locProjectionView uniform.Location = iota + 1
	locModel
	locModelInvTransp
	locLightSize
	locDirectionalColor
	locMaterialBaseColor
	locMaterialDiffuse
)

var defaultProgramUniforms = []uniform.Info{
	{Name: "uProjectionView", Location: locProjectionView, Type: uniform.TypeMat4, Count: 1},
	{Name: "uModel", Location: locModel, Type: uniform.TypeMat4, Count: 1},
	{Name: "uModelInvTransp", Location: locModelInvTransp, Type: uniform.TypeMat3, Count: 1},
	{Name: "uLightSize[0]", Location: locLightSize, Type: uniform.TypeIVec4, Count: 2},
	{Name: "uDirectionalLight[0].color", Location: locDirectionalColor, Type: uniform.TypeVec3, Count: 1},
	{Name: "uMaterial.baseColor", Location: locMaterialBaseColor, Type: uniform.TypeVec4, Count: 1},
	{Name: "uMaterial.diffuseMap", Location: locMaterialDiffuse, Type: uniform.TypeSampler2D, Count: 1},
}

type fakeUpload struct {
	loc uniform.Location
	i   []int32
	f   []float32
}

// fakeBackend records every native call the render context makes.
type fakeBackend struct {
	lost  bool
	size  common.Size
	units int

	next  Handle
	calls map[string]int

	uploads          []fakeUpload
	draws            []geometry.DrawRange
	viewports        []common.Size
	framebufferBinds []Handle
	boundTextures    map[int]Handle
	textureUploads   map[Handle]int
	programAttribs   map[common.ResourceID]map[string]uint32
}

var _ RendererBackend = &fakeBackend{}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		size:           common.Size{Width: 800, Height: 600},
		units:          16,
		calls:          make(map[string]int),
		boundTextures:  make(map[int]Handle),
		textureUploads: make(map[Handle]int),
		programAttribs: make(map[common.ResourceID]map[string]uint32),
	}
}

func (f *fakeBackend) handle() Handle {
	f.next++
	return f.next
}

// uploadsAt returns every upload to loc since the last resetUploads.
func (f *fakeBackend) uploadsAt(loc uniform.Location) []fakeUpload {
	var out []fakeUpload
	for _, u := range f.uploads {
		if u.loc == loc {
			out = append(out, u)
		}
	}
	return out
}

func (f *fakeBackend) resetUploads() {
	f.uploads = nil
	f.draws = nil
}

func (f *fakeBackend) ints(loc uniform.Location, v []int32) {
	f.uploads = append(f.uploads, fakeUpload{loc: loc, i: append([]int32(nil), v...)})
}

func (f *fakeBackend) floats(loc uniform.Location, v []float32) {
	f.uploads = append(f.uploads, fakeUpload{loc: loc, f: append([]float32(nil), v...)})
}

func (f *fakeBackend) Uniform1i(loc uniform.Location, v []int32)         { f.ints(loc, v) }
func (f *fakeBackend) Uniform2i(loc uniform.Location, v []int32)         { f.ints(loc, v) }
func (f *fakeBackend) Uniform3i(loc uniform.Location, v []int32)         { f.ints(loc, v) }
func (f *fakeBackend) Uniform4i(loc uniform.Location, v []int32)         { f.ints(loc, v) }
func (f *fakeBackend) Uniform1f(loc uniform.Location, v []float32)       { f.floats(loc, v) }
func (f *fakeBackend) Uniform2f(loc uniform.Location, v []float32)       { f.floats(loc, v) }
func (f *fakeBackend) Uniform3f(loc uniform.Location, v []float32)       { f.floats(loc, v) }
func (f *fakeBackend) Uniform4f(loc uniform.Location, v []float32)       { f.floats(loc, v) }
func (f *fakeBackend) UniformMatrix2f(loc uniform.Location, v []float32) { f.floats(loc, v) }
func (f *fakeBackend) UniformMatrix3f(loc uniform.Location, v []float32) { f.floats(loc, v) }
func (f *fakeBackend) UniformMatrix4f(loc uniform.Location, v []float32) { f.floats(loc, v) }

func (f *fakeBackend) IsContextLost() bool            { return f.lost }
func (f *fakeBackend) DrawingBufferSize() common.Size { return f.size }
func (f *fakeBackend) MaxTextureUnits() int           { return f.units }

func (f *fakeBackend) InitState(clearColor mgl32.Vec4) {
	f.calls["InitState"]++
}

func (f *fakeBackend) CreateProgram(s shader.Shader, attributes map[string]uint32) (Handle, []uniform.Info, error) {
	f.calls["CreateProgram"]++
	f.programAttribs[s.ID()] = attributes
	return f.handle(), defaultProgramUniforms, nil
}

func (f *fakeBackend) UseProgram(program Handle) {
	f.calls["UseProgram"]++
}

func (f *fakeBackend) CreateGeometry(g geometry.Geometry) (Handle, error) {
	f.calls["CreateGeometry"]++
	return f.handle(), nil
}

func (f *fakeBackend) BindGeometry(geom Handle, program Handle) {
	f.calls["BindGeometry"]++
}

func (f *fakeBackend) Draw(r geometry.DrawRange, indexed bool) {
	f.calls["Draw"]++
	f.draws = append(f.draws, r)
}

func (f *fakeBackend) CreateTexture() (Handle, error) {
	f.calls["CreateTexture"]++
	return f.handle(), nil
}

func (f *fakeBackend) BindTexture(unit int, kind texture.Kind, tex Handle) {
	f.calls["BindTexture"]++
	f.boundTextures[unit] = tex
}

func (f *fakeBackend) UploadTexture(unit int, handle Handle, tex texture.Texture, size common.Size) error {
	f.calls["UploadTexture"]++
	f.textureUploads[handle]++
	return nil
}

func (f *fakeBackend) CreateRenderbuffer(rb target.Renderbuffer, size common.Size) (Handle, error) {
	f.calls["CreateRenderbuffer"]++
	return f.handle(), nil
}

func (f *fakeBackend) ResizeRenderbuffer(handle Handle, rb target.Renderbuffer, size common.Size) {
	f.calls["ResizeRenderbuffer"]++
}

func (f *fakeBackend) CreateFramebuffer(attachments FramebufferAttachments) (Handle, error) {
	f.calls["CreateFramebuffer"]++
	return f.handle(), nil
}

func (f *fakeBackend) BindFramebuffer(fb Handle) {
	f.calls["BindFramebuffer"]++
	f.framebufferBinds = append(f.framebufferBinds, fb)
}

func (f *fakeBackend) Viewport(x, y, width, height int) {
	f.viewports = append(f.viewports, common.Size{Width: width, Height: height})
}

func (f *fakeBackend) Clear() {
	f.calls["Clear"]++
}
