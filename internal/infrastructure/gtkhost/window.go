package gtkhost

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/bezel/internal/domain/entity"
	"github.com/bnema/bezel/internal/logging"
)

const windowTitle = "Bezel"

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  int
	Height int
	// ContentCSS is a user stylesheet applied to every content page. Optional.
	ContentCSS string
}

// Window is the undecorated shell window. Its children are placed on a
// fixed layer at absolute positions, later children on top.
type Window struct {
	window *gtk.ApplicationWindow
	layer  *gtk.Fixed

	resize     sizeTracker
	contentCSS string

	logger zerolog.Logger
}

// NewWindow creates the shell window for app. It is not shown until Present.
func NewWindow(ctx context.Context, app *gtk.Application, cfg WindowConfig) (*Window, error) {
	log := logging.FromContext(ctx)

	w := &Window{
		resize:     sizeTracker{size: entity.Size{Width: cfg.Width, Height: cfg.Height}},
		contentCSS: cfg.ContentCSS,
		logger:     log.With().Str("component", "window").Logger(),
	}

	w.window = gtk.NewApplicationWindow(app)
	if w.window == nil {
		return nil, ErrWindowCreationFailed
	}
	w.window.SetTitle(windowTitle)
	w.window.SetDecorated(false)
	w.window.SetDefaultSize(cfg.Width, cfg.Height)

	w.layer = gtk.NewFixed()
	w.layer.SetHExpand(true)
	w.layer.SetVExpand(true)

	// The scrolled window stops the layer's children from pinning the
	// window's minimum size.
	viewport := gtk.NewScrolledWindow()
	viewport.SetPolicy(gtk.PolicyExternal, gtk.PolicyExternal)
	viewport.SetChild(w.layer)
	w.window.SetChild(viewport)

	// The GDK surface only exists once the window is realized.
	w.window.ConnectRealize(func() {
		surface := gdk.BaseSurface(w.window.Surface())
		surface.ConnectLayout(func(width, height int) {
			w.resize.update(width, height)
		})
	})

	w.logger.Debug().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("window created")

	return w, nil
}

// OnResize registers fn to be called after the window surface changed size.
func (w *Window) OnResize(fn func(entity.Size)) {
	w.resize.onChange = fn
}

// ContentSize returns the current window size.
func (w *Window) ContentSize() entity.Size {
	return w.resize.size
}

// Present shows the window.
func (w *Window) Present() {
	w.window.Present()
}

// Minimize iconifies the window.
func (w *Window) Minimize() {
	w.window.Minimize()
}

// Maximize maximizes the window.
func (w *Window) Maximize() {
	w.window.Maximize()
}

// Unmaximize restores the window from maximized state.
func (w *Window) Unmaximize() {
	w.window.Unmaximize()
}

// IsMaximized reports whether the window is maximized.
func (w *Window) IsMaximized() bool {
	return w.window.IsMaximized()
}

// Close closes the window.
func (w *Window) Close() {
	w.window.Close()
}

func (w *Window) attach(widget gtk.Widgetter) {
	gtk.BaseWidget(widget).SetVisible(false)
	w.layer.Put(widget, 0, 0)
}

func (w *Window) detach(widget gtk.Widgetter) {
	w.layer.Remove(widget)
}

// place moves widget to r. An empty rect hides it.
func (w *Window) place(widget gtk.Widgetter, r entity.Rect) {
	base := gtk.BaseWidget(widget)
	if r.IsEmpty() {
		base.SetVisible(false)
		return
	}
	base.SetSizeRequest(r.Width, r.Height)
	w.layer.Move(widget, float64(r.X), float64(r.Y))
	base.SetVisible(true)
}

// raise restacks widget above its siblings.
func (w *Window) raise(widget gtk.Widgetter) {
	gtk.BaseWidget(widget).InsertBefore(w.layer, nil)
}
