package gtkhost

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// IdleScheduler runs posted work on a later iteration of the GLib main loop.
type IdleScheduler struct{}

// Post queues fn as a one-shot idle source.
func (IdleScheduler) Post(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
