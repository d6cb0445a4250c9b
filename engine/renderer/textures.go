package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/texture"
	log "github.com/sirupsen/logrus"
)

// getTexture makes sure the native texture exists. A loaded screen tracking texture whose
// storage no longer matches the context size is re-allocated.
func (r *renderContext) getTexture(tex texture.Texture) error {
	if entry, ok := r.textures.get(tex.ID()); ok && entry.loaded {
		if tex.TracksScreen() && entry.size != (sizeKey{r.size.Width, r.size.Height}) {
			_, err := r.useTexture(tex, true)
			return err
		}
		return nil
	}
	_, err := r.useTexture(tex, false)
	return err
}

// useTexture returns the slot tex is bound to, binding it first if needed. New textures and
// reupload requests upload their data. Textures whose data is incomplete are queued for polling.
func (r *renderContext) useTexture(tex texture.Texture, reupload bool) (int, error) {
	entry, created, err := r.textures.getOrCreate(tex.ID(), func() (*textureEntry, error) {
		handle, err := r.backend.CreateTexture()
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", tex.ID(), err)
		}
		return &textureEntry{handle: handle, unit: -1}, nil
	})
	if err != nil {
		return -1, err
	}

	unit, evicted, fresh := r.slots.bind(entry)
	if !fresh {
		if reupload {
			if err := r.uploadTexture(entry, tex); err != nil {
				return -1, err
			}
		}
		return unit, nil
	}

	if evicted != nil {
		r.logger.WithFields(log.Fields{"texture": tex.ID(), "unit": unit}).Trace("texture slot evicted")
	}
	r.backend.BindTexture(unit, tex.Kind(), entry.handle)
	r.metrics.TextureCalls++

	if created || reupload {
		if err := r.uploadTexture(entry, tex); err != nil {
			return -1, err
		}
	}
	if !entry.loaded && !entry.pending {
		entry.pending = true
		r.pending = append(r.pending, pendingTexture{tex: tex, entry: entry})
	}
	return unit, nil
}

// uploadTexture uploads the current data of tex through its slot. The loaded flag is sampled
// before the upload so data arriving mid-upload is uploaded again on the next poll.
func (r *renderContext) uploadTexture(entry *textureEntry, tex texture.Texture) error {
	loaded := tex.Loaded()
	size := r.textureSize(tex)
	if err := r.backend.UploadTexture(entry.unit, entry.handle, tex, size); err != nil {
		return fmt.Errorf("texture %q: %w", tex.ID(), err)
	}
	entry.loaded = loaded
	entry.size = sizeKey{size.Width, size.Height}
	return nil
}

func (r *renderContext) textureSize(tex texture.Texture) common.Size {
	if tex.TracksScreen() {
		return r.size
	}
	return tex.Size()
}

// handleLoadingTextures polls the pending list once per frame. Entries that finished loading
// or lost their slot are dropped; the rest are uploaded again with whatever data is present.
func (r *renderContext) handleLoadingTextures() {
	kept := r.pending[:0]
	for _, p := range r.pending {
		if p.entry.loaded || p.entry.unit < 0 {
			p.entry.pending = false
			continue
		}
		if err := r.uploadTexture(p.entry, p.tex); err != nil {
			r.logger.WithError(err).WithField("texture", p.tex.ID()).Warn("pending texture upload failed")
		}
		kept = append(kept, p)
	}
	clear(r.pending[len(kept):])
	r.pending = kept
}

// resolveSampler turns a sampler uniform value into the slot its texture is bound to.
func (r *renderContext) resolveSampler(value any) (int, error) {
	tex, ok := value.(texture.Texture)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrNotTexture, value)
	}
	return r.useTexture(tex, false)
}
