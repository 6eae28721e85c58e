package shell

import (
	"context"
	"time"

	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/domain/entity"
)

type fakeView struct {
	bounds entity.Rect
	url    string
}

func (v *fakeView) SetBounds(b entity.Rect) { v.bounds = b }
func (v *fakeView) Bounds() entity.Rect     { return v.bounds }
func (v *fakeView) BringToFront()           {}
func (v *fakeView) LoadURL(url string)      { v.url = url }
func (v *fakeView) URL() string             { return v.url }
func (v *fakeView) Destroy()                {}

type fakeHost struct {
	size  entity.Size
	views []*fakeView
}

func (h *fakeHost) CreateView(context.Context, port.ViewObserver) (port.ContentView, error) {
	v := &fakeView{}
	h.views = append(h.views, v)
	return v, nil
}

func (h *fakeHost) ContentSize() entity.Size { return h.size }

type reply struct {
	id     string
	result any
}

type fakeSurface struct {
	role    port.SurfaceRole
	bounds  entity.Rect
	fronts  int
	sent    []port.Notification
	replies []reply
}

func (s *fakeSurface) Role() port.SurfaceRole { return s.role }

func (s *fakeSurface) Send(_ context.Context, n port.Notification) error {
	s.sent = append(s.sent, n)
	return nil
}

func (s *fakeSurface) Reply(_ context.Context, id string, result any) error {
	s.replies = append(s.replies, reply{id: id, result: result})
	return nil
}

func (s *fakeSurface) SetBounds(b entity.Rect) { s.bounds = b }
func (s *fakeSurface) Bounds() entity.Rect     { return s.bounds }
func (s *fakeSurface) BringToFront()           { s.fronts++ }

func (s *fakeSurface) channels() []port.Channel {
	out := make([]port.Channel, 0, len(s.sent))
	for _, n := range s.sent {
		out = append(out, n.Channel)
	}
	return out
}

type manualScheduler struct {
	queue []func()
}

func (s *manualScheduler) Post(fn func()) { s.queue = append(s.queue, fn) }

func (s *manualScheduler) runPending() {
	pending := s.queue
	s.queue = nil
	for _, fn := range pending {
		fn()
	}
}

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }
