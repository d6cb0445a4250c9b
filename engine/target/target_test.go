package target

import (
	"testing"

	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/texture"
)

func TestFramebufferSize(t *testing.T) {
	sized := texture.NewTexture("sized", texture.WithSize(256, 128))
	screen := texture.NewTexture("screen")

	tests := []struct {
		name string
		fb   Framebuffer
		want common.Size
	}{
		{"explicit", NewFramebuffer("a", WithColor(sized), WithFramebufferSize(64, 64)), common.Size{Width: 64, Height: 64}},
		{"from color", NewFramebuffer("b", WithColor(screen, sized)), common.Size{Width: 256, Height: 128}},
		{"from depth texture", NewFramebuffer("c", WithDepthTexture(sized)), common.Size{Width: 256, Height: 128}},
		{"from renderbuffer", NewFramebuffer("d", WithDepthRenderbuffer(NewRenderbuffer("rb", WithRenderbufferSize(32, 16)))), common.Size{Width: 32, Height: 16}},
		{"screen", NewFramebuffer("e", WithColor(screen), WithDepthRenderbuffer(NewRenderbuffer("rb"))), common.Size{}},
	}
	for _, tt := range tests {
		if got := tt.fb.Size(); got != tt.want {
			t.Errorf("%s: Size() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDepthAttachmentsAreExclusive(t *testing.T) {
	rb := NewRenderbuffer("rb")
	depth := texture.NewTexture("depth", texture.WithFormat(texture.FormatDepth24))

	fb := NewFramebuffer("fb", WithDepthRenderbuffer(rb), WithDepthTexture(depth))
	if fb.DepthRenderbuffer() != nil {
		t.Error("depth texture should replace the renderbuffer")
	}
	if fb.DepthTexture() != depth {
		t.Error("depth texture missing")
	}
}

func TestRenderbufferDefaults(t *testing.T) {
	rb := NewRenderbuffer("")
	if rb.ID() == "" {
		t.Error("empty id should be replaced")
	}
	if rb.Format() != RenderbufferDepth24 {
		t.Errorf("Format() = %s, want depth24", rb.Format())
	}
	if !rb.TracksScreen() {
		t.Error("unsized renderbuffer should track the screen")
	}
}
