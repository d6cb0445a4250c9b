package renderer

// textureEntry is the native state of one texture.
type textureEntry struct {
	handle   Handle
	unit     int
	lastUsed uint64
	size     sizeKey
	loaded   bool
	pending  bool
}

type sizeKey struct {
	width, height int
}

// textureSlots assigns textures to a fixed number of texture units with least recently
// used eviction.
type textureSlots struct {
	slots   []*textureEntry
	counter uint64
}

func newTextureSlots(n int) *textureSlots {
	return &textureSlots{slots: make([]*textureEntry, max(n, 1))}
}

// bind returns the unit of e, assigning one if e is unbound. An already bound entry only
// has its recency refreshed. Otherwise the first empty unit is taken, or the unit with the
// smallest recency (lowest index on ties) is evicted and its previous entry unbound.
//
// Returns the unit, the evicted entry (nil if none) and whether a new assignment was made.
func (s *textureSlots) bind(e *textureEntry) (int, *textureEntry, bool) {
	s.counter++
	if e.unit >= 0 && e.unit < len(s.slots) && s.slots[e.unit] == e {
		e.lastUsed = s.counter
		return e.unit, nil, false
	}

	unit := -1
	for i, cur := range s.slots {
		if cur == nil {
			unit = i
			break
		}
		if unit < 0 || cur.lastUsed < s.slots[unit].lastUsed {
			unit = i
		}
	}

	evicted := s.slots[unit]
	if evicted != nil {
		evicted.unit = -1
	}
	s.slots[unit] = e
	e.unit = unit
	e.lastUsed = s.counter
	return unit, evicted, true
}

func (s *textureSlots) capacity() int {
	return len(s.slots)
}
