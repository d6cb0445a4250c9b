package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/glue/common"
	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader decodes image files on a pool of background workers. Textures returned by the
// Loader start unloaded with placeholder pixels and flip to loaded when decoding finishes,
// so the render loop never waits on disk or decode time.
type Loader struct {
	pool    worker.DynamicWorkerPool
	workers int
	maxSize int
	logger  log.FieldLogger

	nextTaskID atomic.Int64
	inFlight   atomic.Int64
}

// NewLoader creates a Loader.
//
// Parameters:
//   - options: variadic list of LoaderOption functions
//
// Returns:
//   - *Loader: the loader
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{
		workers: max(runtime.NumCPU()/2, 1),
		logger:  log.StandardLogger(),
	}
	for _, opt := range options {
		opt(l)
	}
	l.pool = worker.NewDynamicWorkerPool(l.workers, 256, 1*time.Second)
	return l
}

// Load starts decoding the image at path and returns the pending texture immediately.
//
// Parameters:
//   - id: the texture identity, an empty id is replaced by a generated one
//   - path: the image file path (png, jpeg, bmp, tiff or webp)
//   - options: variadic list of TextureBuilderOption functions
//
// Returns:
//   - Texture: the unloaded texture
func (l *Loader) Load(id common.ResourceID, path string, options ...TextureBuilderOption) Texture {
	t := NewPending(id, options...).(*textureImpl)
	l.submit(t, func() ([]image.Image, error) {
		img, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to open %q: %w", path, err)
		}
		return []image.Image{img}, nil
	})
	return t
}

// LoadBytes starts decoding an encoded image held in memory.
//
// Parameters:
//   - id: the texture identity
//   - data: the encoded image bytes
//   - options: variadic list of TextureBuilderOption functions
//
// Returns:
//   - Texture: the unloaded texture
func (l *Loader) LoadBytes(id common.ResourceID, data []byte, options ...TextureBuilderOption) Texture {
	t := NewPending(id, options...).(*textureImpl)
	l.submit(t, func() ([]image.Image, error) {
		img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to decode embedded image: %w", err)
		}
		return []image.Image{img}, nil
	})
	return t
}

// LoadCube starts decoding six cube map faces in +X, -X, +Y, -Y, +Z, -Z order.
//
// Parameters:
//   - id: the texture identity
//   - paths: the six face image paths
//   - options: variadic list of TextureBuilderOption functions
//
// Returns:
//   - Texture: the unloaded cube texture
func (l *Loader) LoadCube(id common.ResourceID, paths [6]string, options ...TextureBuilderOption) Texture {
	options = append(options, WithKind(KindCube))
	t := NewPending(id, options...).(*textureImpl)
	l.submit(t, func() ([]image.Image, error) {
		faces := make([]image.Image, 0, 6)
		for _, p := range paths {
			img, err := imaging.Open(p)
			if err != nil {
				return nil, fmt.Errorf("failed to open cube face %q: %w", p, err)
			}
			faces = append(faces, img)
		}
		return faces, nil
	})
	return t
}

// Pending returns the number of textures still being decoded.
func (l *Loader) Pending() int {
	return int(l.inFlight.Load())
}

func (l *Loader) submit(t *textureImpl, decode func() ([]image.Image, error)) {
	id := int(l.nextTaskID.Add(1))
	l.inFlight.Add(1)
	l.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer l.inFlight.Add(-1)

			imgs, err := decode()
			if err == nil {
				for i, img := range imgs {
					imgs[i] = l.fit(img)
				}
				err = t.SetImages(imgs...)
			}
			if err != nil {
				// Keep the placeholder and stop the render context from polling this texture.
				t.loaded.Store(true)
				l.logger.WithFields(log.Fields{"texture": t.id}).WithError(err).Warn("texture load failed")
				return nil, err
			}
			l.logger.WithFields(log.Fields{"texture": t.id, "size": t.Size()}).Debug("texture loaded")
			return t, nil
		},
	})
}

func (l *Loader) fit(img image.Image) image.Image {
	if l.maxSize <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= l.maxSize && b.Dy() <= l.maxSize {
		return img
	}
	return imaging.Fit(img, l.maxSize, l.maxSize, imaging.Lanczos)
}
