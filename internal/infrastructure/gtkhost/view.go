package gtkhost

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/domain/entity"
	"github.com/bnema/bezel/internal/logging"
)

// contentView is one page view on the window layer.
type contentView struct {
	window    *Window
	view      *webkit.WebView
	bounds    entity.Rect
	destroyed bool
}

// CreateView creates a hidden web view on the window layer. Page events are
// reported to observer until the view is destroyed.
func (w *Window) CreateView(ctx context.Context, observer port.ViewObserver) (port.ContentView, error) {
	wv := webkit.NewWebView()
	if wv == nil {
		return nil, ErrViewCreationFailed
	}

	cv := &contentView{window: w, view: wv}

	// User stylesheets are re-applied on every document load.
	if w.contentCSS != "" {
		sheet := webkit.NewUserStyleSheet(
			w.contentCSS,
			webkit.UserContentInjectTopFrame,
			webkit.UserStyleLevelUser,
			nil,
			nil,
		)
		if sheet == nil {
			logging.FromContext(ctx).Warn().Msg("failed to create content stylesheet")
		} else {
			wv.UserContentManager().AddStyleSheet(sheet)
		}
	}

	wv.Connect("notify::title", func() {
		if cv.destroyed || observer.OnTitleChanged == nil {
			return
		}
		observer.OnTitleChanged(wv.Title())
	})
	wv.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if event != webkit.LoadFinished || cv.destroyed || observer.OnLoadFinished == nil {
			return
		}
		observer.OnLoadFinished()
	})

	w.attach(wv)
	logging.FromContext(ctx).Debug().Msg("content view attached")
	return cv, nil
}

func (v *contentView) SetBounds(bounds entity.Rect) {
	if v.destroyed {
		return
	}
	v.bounds = bounds
	v.window.place(v.view, bounds)
}

func (v *contentView) Bounds() entity.Rect {
	return v.bounds
}

func (v *contentView) BringToFront() {
	if v.destroyed {
		return
	}
	v.window.raise(v.view)
}

func (v *contentView) LoadURL(url string) {
	if v.destroyed {
		return
	}
	v.view.LoadURI(url)
}

func (v *contentView) URL() string {
	if v.destroyed {
		return ""
	}
	return v.view.URI()
}

// Destroy stops the page and removes the view from the window.
func (v *contentView) Destroy() {
	if v.destroyed {
		return
	}
	v.destroyed = true
	v.view.StopLoading()
	v.window.detach(v.view)
}
