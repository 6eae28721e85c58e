// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the embedding host, allowing coordinators to remain
// independent of GTK and WebKit.
package port

import (
	"context"

	"github.com/bnema/bezel/internal/domain/entity"
)

// View is a host surface that can be positioned and stacked inside the window.
type View interface {
	// SetBounds positions and sizes the view. Zero-size bounds take the view
	// out of the layout.
	SetBounds(bounds entity.Rect)
	// Bounds returns the last bounds applied to the view.
	Bounds() entity.Rect
	// BringToFront stacks the view above its siblings.
	BringToFront()
}

// ContentView is a host-managed view rendering one loaded page.
type ContentView interface {
	View
	// LoadURL starts loading url. Completion is reported through ViewObserver.
	LoadURL(url string)
	// URL returns the URL currently committed in the view.
	URL() string
	// Destroy detaches the view from the window and releases it.
	Destroy()
}

// ViewObserver receives page events from a content view.
// Callbacks run on the host main loop.
type ViewObserver struct {
	OnTitleChanged func(title string)
	OnLoadFinished func()
}

// ViewHost creates content views inside the shell window.
type ViewHost interface {
	// CreateView creates and attaches a new content view.
	CreateView(ctx context.Context, observer ViewObserver) (ContentView, error)
	// ContentSize returns the current size of the window content area.
	ContentSize() entity.Size
}

// WindowControls forwards OS window chrome actions to the host window.
type WindowControls interface {
	Minimize()
	Maximize()
	Unmaximize()
	IsMaximized() bool
	Close()
}
