// Package texture describes GPU textures whose pixel data may arrive after the texture is
// first used. A Texture is only a descriptor: the render context allocates and uploads
// the native image lazily and polls Loaded to decide when to stop re-uploading.
package texture

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/glue/common"
	"github.com/disintegration/imaging"
)

// Kind identifies the texture target.
type Kind int

const (
	// Kind2D is a single 2D image.
	Kind2D Kind = iota

	// KindCube is six square faces in +X, -X, +Y, -Y, +Z, -Z order.
	KindCube
)

// Format identifies the texel format of the native image.
type Format int

const (
	// FormatRGBA8 is 8 bits per channel RGBA.
	FormatRGBA8 Format = iota

	// FormatDepth24 is a 24 bit depth texture, used as a sampled depth attachment.
	FormatDepth24
)

// Filter selects texel filtering.
type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

// Wrap selects how coordinates outside [0, 1] are resolved.
type Wrap int

const (
	WrapRepeat Wrap = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

// Sampler holds the sampling state applied when the native texture is created.
type Sampler struct {
	MinFilter Filter
	MagFilter Filter
	WrapS     Wrap
	WrapT     Wrap
	Mipmap    bool
}

// DefaultSampler is linear filtering with repeat wrapping and mipmaps.
var DefaultSampler = Sampler{
	MinFilter: FilterLinear,
	MagFilter: FilterLinear,
	WrapS:     WrapRepeat,
	WrapT:     WrapRepeat,
	Mipmap:    true,
}

// Image is one face of tightly packed RGBA8 pixel data, bottom row first.
type Image struct {
	Pix    []byte
	Width  int
	Height int
}

// textureImpl is the implementation of the Texture interface.
type textureImpl struct {
	mu *sync.Mutex

	id      common.ResourceID
	kind    Kind
	format  Format
	size    common.Size
	sampler Sampler
	source  bool

	faces  []Image
	loaded atomic.Bool
}

// Texture is a descriptor of a GPU texture.
//
// A texture with no source and a zero Size tracks the screen: the render context resizes it
// whenever the drawing buffer size changes. Textures with a source start unloaded and
// become loaded once every face has its final pixels.
type Texture interface {
	// ID retrieves the resource identity used as the texture cache key.
	//
	// Returns:
	//   - common.ResourceID: the texture identity
	ID() common.ResourceID

	// Kind returns the texture target.
	Kind() Kind

	// Format returns the texel format.
	Format() Format

	// Size returns the requested size. A zero Size on a texture without a source means
	// the texture follows the screen size.
	//
	// Returns:
	//   - common.Size: the requested size
	Size() common.Size

	// Sampler returns the sampling state.
	Sampler() Sampler

	// HasSource reports whether pixel data is supplied by an image (as opposed to a
	// texture rendered into through a framebuffer).
	HasSource() bool

	// TracksScreen reports whether the texture should be resized with the drawing buffer.
	TracksScreen() bool

	// Faces returns the pixel data currently available. It may be a placeholder while
	// the texture is still loading, or nil for render targets.
	//
	// Returns:
	//   - []Image: one entry for 2D textures, six for cube maps
	Faces() []Image

	// Loaded reports whether the final pixel data is available.
	//
	// Returns:
	//   - bool: true once the texture's data will no longer change
	Loaded() bool

	// SetImages replaces the pixel data and marks the texture loaded.
	//
	// Parameters:
	//   - imgs: one image for 2D textures, six for cube maps
	//
	// Returns:
	//   - error: an error if the face count does not match the Kind
	SetImages(imgs ...image.Image) error
}

var _ Texture = &textureImpl{}

// NewTexture creates a texture descriptor with no pixel data. Without WithSize it tracks the
// screen size, which is what render-to-texture color and depth attachments usually want.
// A texture without a source is considered loaded.
//
// Parameters:
//   - id: the texture identity, an empty id is replaced by a generated one
//   - options: variadic list of TextureBuilderOption functions
//
// Returns:
//   - Texture: the texture descriptor
func NewTexture(id common.ResourceID, options ...TextureBuilderOption) Texture {
	t := newTexture(id, options...)
	t.loaded.Store(true)
	return t
}

// FromImage creates a loaded 2D texture from a decoded image.
//
// Parameters:
//   - id: the texture identity
//   - img: the source image
//   - options: variadic list of TextureBuilderOption functions
//
// Returns:
//   - Texture: the loaded texture
func FromImage(id common.ResourceID, img image.Image, options ...TextureBuilderOption) Texture {
	t := newTexture(id, options...)
	t.source = true
	t.faces = []Image{toImage(img)}
	t.size = common.Size{Width: t.faces[0].Width, Height: t.faces[0].Height}
	t.loaded.Store(true)
	return t
}

// NewPending creates a texture with a source that has not arrived yet. It holds a 1x1
// placeholder face per side until SetImages is called.
//
// Parameters:
//   - id: the texture identity
//   - options: variadic list of TextureBuilderOption functions
//
// Returns:
//   - Texture: the unloaded texture
func NewPending(id common.ResourceID, options ...TextureBuilderOption) Texture {
	t := newTexture(id, options...)
	t.source = true
	n := 1
	if t.kind == KindCube {
		n = 6
	}
	t.faces = make([]Image, n)
	for i := range t.faces {
		t.faces[i] = Image{Pix: []byte{255, 0, 255, 255}, Width: 1, Height: 1}
	}
	return t
}

func newTexture(id common.ResourceID, options ...TextureBuilderOption) *textureImpl {
	if id == "" {
		id = common.NewResourceID("texture")
	}
	t := &textureImpl{
		mu:      &sync.Mutex{},
		id:      id,
		kind:    Kind2D,
		format:  FormatRGBA8,
		sampler: DefaultSampler,
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

func (t *textureImpl) ID() common.ResourceID {
	return t.id
}

func (t *textureImpl) Kind() Kind {
	return t.kind
}

func (t *textureImpl) Format() Format {
	return t.format
}

func (t *textureImpl) Size() common.Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

func (t *textureImpl) Sampler() Sampler {
	return t.sampler
}

func (t *textureImpl) HasSource() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.source
}

func (t *textureImpl) TracksScreen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.source && t.size.IsZero()
}

func (t *textureImpl) Faces() []Image {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.faces
}

func (t *textureImpl) Loaded() bool {
	return t.loaded.Load()
}

func (t *textureImpl) SetImages(imgs ...image.Image) error {
	want := 1
	if t.kind == KindCube {
		want = 6
	}
	if len(imgs) != want {
		return fmt.Errorf("texture %s: got %d images, want %d", t.id, len(imgs), want)
	}
	faces := make([]Image, len(imgs))
	for i, img := range imgs {
		faces[i] = toImage(img)
	}

	t.mu.Lock()
	t.faces = faces
	t.size = common.Size{Width: faces[0].Width, Height: faces[0].Height}
	t.source = true
	t.mu.Unlock()
	t.loaded.Store(true)
	return nil
}

// toImage converts any image to bottom-up RGBA8, matching the GL texture origin.
func toImage(img image.Image) Image {
	flipped := imaging.FlipV(img)
	b := flipped.Bounds()
	return Image{Pix: flipped.Pix, Width: b.Dx(), Height: b.Dy()}
}
