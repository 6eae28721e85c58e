// Package mainloop holds helpers for work that must run on the host main loop.
package mainloop

import (
	"sync"

	"github.com/bnema/bezel/internal/application/port"
)

// Key names a class of coalesced work.
type Key string

const (
	// KeyResize coalesces window size notifications.
	KeyResize Key = "window-resize"
	// KeyConfigReload coalesces config file reloads arriving from the watcher.
	KeyConfigReload Key = "config-reload"
)

// SchedulerFunc adapts a plain posting function to port.Scheduler.
type SchedulerFunc func(fn func())

// Post calls f(fn).
func (f SchedulerFunc) Post(fn func()) {
	f(fn)
}

// Coalescer merges bursts of same-key tasks into one main-loop callback.
// The latest callback posted for a key wins. Post may be called from any
// goroutine.
type Coalescer struct {
	mu        sync.Mutex
	callbacks map[Key]func()
	scheduler port.Scheduler
	destroyed bool
}

// NewCoalescer creates a coalescer posting through scheduler.
func NewCoalescer(scheduler port.Scheduler) *Coalescer {
	if scheduler == nil {
		panic("mainloop.NewCoalescer: scheduler cannot be nil")
	}

	return &Coalescer{
		callbacks: make(map[Key]func()),
		scheduler: scheduler,
	}
}

// Post schedules fn under key unless a callback for key is already queued,
// in which case fn replaces it.
func (c *Coalescer) Post(key Key, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, queued := c.callbacks[key]
	c.callbacks[key] = fn
	c.mu.Unlock()

	if queued {
		return
	}
	c.scheduler.Post(func() { c.run(key) })
}

func (c *Coalescer) run(key Key) {
	c.mu.Lock()
	fn := c.callbacks[key]
	delete(c.callbacks, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if !destroyed && fn != nil {
		fn()
	}
}

// Pending reports whether a callback for key is waiting to run.
func (c *Coalescer) Pending(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.callbacks[key]
	return ok
}

// Destroy drops queued work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.callbacks = map[Key]func(){}
	c.mu.Unlock()
}
