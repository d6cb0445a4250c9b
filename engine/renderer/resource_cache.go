package renderer

import (
	"github.com/Carmen-Shannon/glue/common"
)

// resourceCache maps resource identities of one category to their native entries.
// Entries are created at most once per identity until the cache is dropped by a context reset.
type resourceCache[E any] struct {
	category common.ResourceCategory
	entries  map[common.ResourceID]*E
	created  int
}

func newResourceCache[E any](category common.ResourceCategory) *resourceCache[E] {
	return &resourceCache[E]{
		category: category,
		entries:  make(map[common.ResourceID]*E),
	}
}

func (c *resourceCache[E]) get(id common.ResourceID) (*E, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// getOrCreate returns the entry for id, calling create only when no entry exists.
// A failed create leaves the cache untouched so the next call retries.
func (c *resourceCache[E]) getOrCreate(id common.ResourceID, create func() (*E, error)) (*E, bool, error) {
	if e, ok := c.entries[id]; ok {
		return e, false, nil
	}
	e, err := create()
	if err != nil {
		return nil, false, err
	}
	c.entries[id] = e
	c.created++
	return e, true, nil
}
