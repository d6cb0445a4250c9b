package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/glue/engine/renderer/material"
)

func TestBindStateCamera(t *testing.T) {
	var b bindState
	if !b.needsCamera(0) {
		t.Error("unset camera should need an upload")
	}
	b.markCamera(3)

	tests := []struct {
		changed uint64
		want    bool
	}{
		{0, false},
		{3, false},
		{4, true},
	}
	for _, tt := range tests {
		if got := b.needsCamera(tt.changed); got != tt.want {
			t.Errorf("needsCamera(%d) after upload at 3 = %v, want %v", tt.changed, got, tt.want)
		}
	}
}

func TestBindStateLights(t *testing.T) {
	var b bindState
	if !b.needsLights(0) {
		t.Error("unset lights should need an upload")
	}
	b.markLights(0)
	if b.needsLights(0) {
		t.Error("lights uploaded this tick should not need an upload")
	}
	if !b.needsLights(1) {
		t.Error("lights uploaded last tick should need an upload")
	}
}

func TestBindStateMaterial(t *testing.T) {
	var b bindState
	a := material.NewMaterial(material.WithName("a"))
	c := material.NewMaterial(material.WithName("c"))

	if !b.needsMaterial(a, material.ModeDefault) {
		t.Error("unset material should need an upload")
	}
	b.markMaterial(a, material.ModeDefault)
	if b.needsMaterial(a, material.ModeDefault) {
		t.Error("same pair should not need an upload")
	}
	if !b.needsMaterial(a, "shadow") {
		t.Error("mode change should need an upload")
	}
	if !b.needsMaterial(c, material.ModeDefault) {
		t.Error("material change should need an upload")
	}
}

func TestTextureSlotsPreferEmptyThenOldest(t *testing.T) {
	s := newTextureSlots(3)
	entries := make([]*textureEntry, 4)
	for i := range entries {
		entries[i] = &textureEntry{unit: -1}
	}

	for i := range 3 {
		unit, evicted, fresh := s.bind(entries[i])
		if unit != i || evicted != nil || !fresh {
			t.Errorf("bind(%d) = (%d, %v, %v), want (%d, nil, true)", i, unit, evicted, fresh, i)
		}
	}

	// Refresh 0 so 1 becomes the oldest.
	if unit, _, fresh := s.bind(entries[0]); unit != 0 || fresh {
		t.Errorf("rebind = (%d, %v), want (0, false)", unit, fresh)
	}

	unit, evicted, fresh := s.bind(entries[3])
	if unit != 1 || evicted != entries[1] || !fresh {
		t.Errorf("bind(3) = (%d, %v, %v), want (1, entry 1, true)", unit, evicted, fresh)
	}
	if entries[1].unit != -1 {
		t.Errorf("evicted unit = %d, want -1", entries[1].unit)
	}
}

func TestTextureSlotsTieBreaksOnLowestIndex(t *testing.T) {
	s := newTextureSlots(2)
	a := &textureEntry{unit: 0, lastUsed: 5}
	b := &textureEntry{unit: 1, lastUsed: 5}
	s.slots[0], s.slots[1] = a, b

	unit, evicted, _ := s.bind(&textureEntry{unit: -1})
	if unit != 0 || evicted != a {
		t.Errorf("bind on a tie = (%d, %v), want (0, first entry)", unit, evicted)
	}
}

func (c *resourceCache[E]) len() int {
	return len(c.entries)
}

func TestResourceCacheCreatesOnce(t *testing.T) {
	c := newResourceCache[geometryEntry](0)
	calls := 0
	create := func() (*geometryEntry, error) {
		calls++
		return &geometryEntry{handle: Handle(calls)}, nil
	}

	first, created, err := c.getOrCreate("quad", create)
	if err != nil || !created {
		t.Fatalf("first getOrCreate = (%v, %v)", created, err)
	}
	second, created, _ := c.getOrCreate("quad", create)
	if created || second != first {
		t.Error("second getOrCreate should return the cached entry")
	}
	if calls != 1 || c.created != 1 || c.len() != 1 {
		t.Errorf("(calls, created, len) = (%d, %d, %d), want (1, 1, 1)", calls, c.created, c.len())
	}
}
