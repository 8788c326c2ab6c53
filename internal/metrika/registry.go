package metrika

import "sync/atomic"

// Registry holds the tag id registered for one page. The zero value is an
// empty registry.
type Registry struct {
	tagID atomic.Int64
}

// Register records tagID when no id has been registered yet and reports
// whether this call set it. Non-positive ids are ignored.
func (r *Registry) Register(tagID int64) bool {
	if r == nil || tagID <= 0 {
		return false
	}
	return r.tagID.CompareAndSwap(0, tagID)
}

// TagID returns the registered id and whether one is set.
func (r *Registry) TagID() (int64, bool) {
	if r == nil {
		return 0, false
	}
	tagID := r.tagID.Load()
	return tagID, tagID > 0
}
