package renderer

import (
	"github.com/Carmen-Shannon/glue/engine/renderer/material"
)

// bindState records, per shader program, which frame-level inputs were last uploaded.
// Ticks are stored one-based so that zero means "never uploaded".
type bindState struct {
	cameraTick uint64
	lightsTick uint64
	material   material.Material
	mode       string
	hasMat     bool
}

// needsCamera reports whether camera uniforms must be uploaded. A change is observed at the
// start of a task, before any upload in the same tick, so an upload recorded at the change
// tick is already current.
func (b *bindState) needsCamera(cameraChanged uint64) bool {
	return b.cameraTick == 0 || b.cameraTick-1 < cameraChanged
}

func (b *bindState) markCamera(tick uint64) {
	b.cameraTick = tick + 1
}

// needsLights reports whether light uniforms were not yet uploaded during tick.
func (b *bindState) needsLights(tick uint64) bool {
	return b.lightsTick == 0 || b.lightsTick-1 < tick
}

func (b *bindState) markLights(tick uint64) {
	b.lightsTick = tick + 1
}

func (b *bindState) needsMaterial(m material.Material, mode string) bool {
	return !b.hasMat || b.material != m || b.mode != mode
}

func (b *bindState) markMaterial(m material.Material, mode string) {
	b.material = m
	b.mode = mode
	b.hasMat = true
}
