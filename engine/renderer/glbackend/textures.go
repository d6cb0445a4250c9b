package glbackend

import (
	"fmt"

	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/renderer"
	"github.com/Carmen-Shannon/glue/engine/target"
	"github.com/Carmen-Shannon/glue/engine/texture"
	"github.com/go-gl/gl/v4.1-core/gl"
)

func (b *backend) CreateTexture() (renderer.Handle, error) {
	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("glGenTextures returned no texture")
	}
	return renderer.Handle(id), nil
}

func (b *backend) BindTexture(unit int, kind texture.Kind, tex renderer.Handle) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(textureTarget(kind), uint32(tex))
}

func (b *backend) UploadTexture(unit int, handle renderer.Handle, tex texture.Texture, size common.Size) error {
	bindTarget := textureTarget(tex.Kind())
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(bindTarget, uint32(handle))

	internal, format, xtype := textureFormat(tex.Format())
	faceTargets := []uint32{gl.TEXTURE_2D}
	if tex.Kind() == texture.KindCube {
		faceTargets = make([]uint32, 6)
		for i := range faceTargets {
			faceTargets[i] = gl.TEXTURE_CUBE_MAP_POSITIVE_X + uint32(i)
		}
	}

	if tex.HasSource() {
		faces := tex.Faces()
		if len(faces) < len(faceTargets) {
			return fmt.Errorf("texture has %d faces, want %d", len(faces), len(faceTargets))
		}
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		for i, ft := range faceTargets {
			f := faces[i]
			gl.TexImage2D(ft, 0, internal, int32(f.Width), int32(f.Height), 0, format, xtype, gl.Ptr(f.Pix))
		}
	} else {
		for _, ft := range faceTargets {
			gl.TexImage2D(ft, 0, internal, int32(size.Width), int32(size.Height), 0, format, xtype, nil)
		}
	}

	s := tex.Sampler()
	mipmap := s.Mipmap && tex.HasSource()
	gl.TexParameteri(bindTarget, gl.TEXTURE_MIN_FILTER, minFilter(s.MinFilter, mipmap))
	gl.TexParameteri(bindTarget, gl.TEXTURE_MAG_FILTER, magFilter(s.MagFilter))
	gl.TexParameteri(bindTarget, gl.TEXTURE_WRAP_S, wrapMode(s.WrapS))
	gl.TexParameteri(bindTarget, gl.TEXTURE_WRAP_T, wrapMode(s.WrapT))
	if tex.Kind() == texture.KindCube {
		gl.TexParameteri(bindTarget, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	}
	if mipmap {
		gl.GenerateMipmap(bindTarget)
	}
	return nil
}

func (b *backend) CreateRenderbuffer(rb target.Renderbuffer, size common.Size) (renderer.Handle, error) {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("glGenRenderbuffers returned no renderbuffer")
	}
	b.ResizeRenderbuffer(renderer.Handle(id), rb, size)
	return renderer.Handle(id), nil
}

func (b *backend) ResizeRenderbuffer(handle renderer.Handle, rb target.Renderbuffer, size common.Size) {
	gl.BindRenderbuffer(gl.RENDERBUFFER, uint32(handle))
	gl.RenderbufferStorage(gl.RENDERBUFFER, renderbufferFormat(rb.Format()), int32(size.Width), int32(size.Height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

func (b *backend) CreateFramebuffer(a renderer.FramebufferAttachments) (renderer.Handle, error) {
	var id uint32
	gl.GenFramebuffers(1, &id)
	gl.BindFramebuffer(gl.FRAMEBUFFER, id)

	drawBuffers := make([]uint32, len(a.Color))
	for i, tex := range a.Color {
		attachment := gl.COLOR_ATTACHMENT0 + uint32(i)
		texTarget := uint32(gl.TEXTURE_2D)
		if i < len(a.ColorKinds) && a.ColorKinds[i] == texture.KindCube {
			texTarget = gl.TEXTURE_CUBE_MAP_POSITIVE_X
		}
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, texTarget, uint32(tex), 0)
		drawBuffers[i] = attachment
	}
	if len(drawBuffers) > 0 {
		gl.DrawBuffers(int32(len(drawBuffers)), &drawBuffers[0])
	} else {
		gl.DrawBuffer(gl.NONE)
		gl.ReadBuffer(gl.NONE)
	}

	switch {
	case a.DepthTexture != 0:
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, uint32(a.DepthTexture), 0)
	case a.DepthRenderbuffer != 0:
		attachment := uint32(gl.DEPTH_ATTACHMENT)
		if a.DepthStencil {
			attachment = gl.DEPTH_STENCIL_ATTACHMENT
		}
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, uint32(a.DepthRenderbuffer))
	}

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.DeleteFramebuffers(1, &id)
		return 0, fmt.Errorf("framebuffer incomplete: status 0x%x", status)
	}
	return renderer.Handle(id), nil
}

func textureTarget(kind texture.Kind) uint32 {
	if kind == texture.KindCube {
		return gl.TEXTURE_CUBE_MAP
	}
	return gl.TEXTURE_2D
}

func textureFormat(f texture.Format) (internal int32, format uint32, xtype uint32) {
	if f == texture.FormatDepth24 {
		return gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT
	}
	return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
}

func renderbufferFormat(f target.RenderbufferFormat) uint32 {
	switch f {
	case target.RenderbufferDepth24Stencil8:
		return gl.DEPTH24_STENCIL8
	case target.RenderbufferRGBA8:
		return gl.RGBA8
	}
	return gl.DEPTH_COMPONENT24
}

func minFilter(f texture.Filter, mipmap bool) int32 {
	switch {
	case f == texture.FilterNearest && mipmap:
		return gl.NEAREST_MIPMAP_NEAREST
	case f == texture.FilterNearest:
		return gl.NEAREST
	case mipmap:
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.LINEAR
}

func magFilter(f texture.Filter) int32 {
	if f == texture.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrapMode(w texture.Wrap) int32 {
	switch w {
	case texture.WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case texture.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	}
	return gl.REPEAT
}
