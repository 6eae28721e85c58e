package coordinator

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/domain/entity"
)

type fakeView struct {
	bounds    entity.Rect
	history   []entity.Rect
	fronts    int
	url       string
	loads     []string
	destroyed bool
	observer  port.ViewObserver
}

func (v *fakeView) SetBounds(b entity.Rect) {
	v.bounds = b
	v.history = append(v.history, b)
}

func (v *fakeView) Bounds() entity.Rect { return v.bounds }
func (v *fakeView) BringToFront()       { v.fronts++ }
func (v *fakeView) URL() string         { return v.url }
func (v *fakeView) Destroy()            { v.destroyed = true }

func (v *fakeView) LoadURL(url string) {
	v.url = url
	v.loads = append(v.loads, url)
}

var errHostFailed = errors.New("host failed")

type fakeHost struct {
	size  entity.Size
	views []*fakeView
	fail  bool
}

func (h *fakeHost) CreateView(_ context.Context, observer port.ViewObserver) (port.ContentView, error) {
	if h.fail {
		return nil, errHostFailed
	}
	v := &fakeView{observer: observer}
	h.views = append(h.views, v)
	return v, nil
}

func (h *fakeHost) ContentSize() entity.Size { return h.size }

type recordingNotifier struct {
	sent []port.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n port.Notification) {
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) reset() { r.sent = nil }

type manualScheduler struct {
	queue []func()
}

func (s *manualScheduler) Post(fn func()) { s.queue = append(s.queue, fn) }

// runPending runs the callbacks queued so far, not ones they post.
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

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type raiseCounter struct {
	calls int
}

func (r *raiseCounter) RaiseIfShown(context.Context) { r.calls++ }

func note(channel port.Channel, args ...any) port.Notification {
	return port.NewNotification(channel, args...)
}
