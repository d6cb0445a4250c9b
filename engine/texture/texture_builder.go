package texture

import "github.com/Carmen-Shannon/glue/common"

// TextureBuilderOption is a functional option applied to a texture during construction.
type TextureBuilderOption func(*textureImpl)

// WithKind sets the texture target. Defaults to Kind2D.
//
// Parameters:
//   - kind: Kind2D or KindCube
//
// Returns:
//   - TextureBuilderOption: a function that applies the kind option to a texture
func WithKind(kind Kind) TextureBuilderOption {
	return func(t *textureImpl) {
		t.kind = kind
	}
}

// WithFormat sets the texel format. Defaults to FormatRGBA8.
func WithFormat(format Format) TextureBuilderOption {
	return func(t *textureImpl) {
		t.format = format
	}
}

// WithSize fixes the texture size. Textures without a source and without a size track the screen.
//
// Parameters:
//   - width: the width in pixels
//   - height: the height in pixels
//
// Returns:
//   - TextureBuilderOption: a function that applies the size option to a texture
func WithSize(width, height int) TextureBuilderOption {
	return func(t *textureImpl) {
		t.size = common.Size{Width: width, Height: height}
	}
}

// WithSampler overrides DefaultSampler.
func WithSampler(s Sampler) TextureBuilderOption {
	return func(t *textureImpl) {
		t.sampler = s
	}
}
