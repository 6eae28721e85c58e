package gtkhost

import "github.com/bnema/bezel/internal/domain/entity"

// sizeTracker remembers the last surface size and reports real changes.
// Layout signals repeat the current size on every relayout.
type sizeTracker struct {
	size     entity.Size
	onChange func(entity.Size)
}

func (t *sizeTracker) update(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	next := entity.Size{Width: width, Height: height}
	if next == t.size {
		return false
	}
	t.size = next
	if t.onChange != nil {
		t.onChange(next)
	}
	return true
}
