package gtkhost

import (
	"context"

	javascriptcore "github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/rs/zerolog"

	"github.com/bnema/bezel/internal/app/messaging"
	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/domain/entity"
	"github.com/bnema/bezel/internal/logging"
)

// SurfaceConfig describes a presentation surface.
type SurfaceConfig struct {
	Role    port.SurfaceRole
	HTML    string
	BaseURI string
	// OnMessage receives raw command envelopes posted by the page.
	OnMessage func(s *Surface, payload []byte)
	// OnReady runs once, after the page first finished loading.
	OnReady func(s *Surface)
}

// Surface is a web view rendering shell chrome. It receives notifications
// through the page bridge and posts commands back through the script
// message handler.
type Surface struct {
	role   port.SurfaceRole
	window *Window
	view   *webkit.WebView
	bounds entity.Rect
	ready  bool

	logger zerolog.Logger
}

// NewSurface creates a surface on the window layer and loads its page.
func (w *Window) NewSurface(ctx context.Context, cfg SurfaceConfig) (*Surface, error) {
	log := logging.FromContext(ctx).With().Str("surface", string(cfg.Role)).Logger()

	wv := webkit.NewWebView()
	if wv == nil {
		return nil, ErrViewCreationFailed
	}

	s := &Surface{
		role:   cfg.Role,
		window: w,
		view:   wv,
		logger: log,
	}

	ucm := wv.UserContentManager()
	if !ucm.RegisterScriptMessageHandler(messaging.HandlerName, "") {
		log.Error().Str("handler", messaging.HandlerName).Msg("failed to register script message handler")
	} else {
		ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
			if cfg.OnMessage == nil || value == nil {
				return
			}
			cfg.OnMessage(s, []byte(value.ToString()))
		})
	}

	wv.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if event != webkit.LoadFinished || s.ready {
			return
		}
		s.ready = true
		log.Debug().Msg("surface ready")
		if cfg.OnReady != nil {
			cfg.OnReady(s)
		}
	})

	w.attach(wv)
	wv.LoadHTML(cfg.HTML, cfg.BaseURI)

	return s, nil
}

// Role identifies the surface.
func (s *Surface) Role() port.SurfaceRole {
	return s.role
}

// Send delivers n to the page bridge.
func (s *Surface) Send(ctx context.Context, n port.Notification) error {
	script, err := messaging.NotificationScript(n)
	if err != nil {
		return err
	}
	s.evaluate(ctx, script)
	return nil
}

// Reply answers the page query requestID.
func (s *Surface) Reply(ctx context.Context, requestID string, result any) error {
	script, err := messaging.ReplyScript(requestID, result)
	if err != nil {
		return err
	}
	s.evaluate(ctx, script)
	return nil
}

func (s *Surface) evaluate(ctx context.Context, script string) {
	s.view.EvaluateJavascript(ctx, script, -1, "", "", nil)
}

// SetBounds positions the surface on the window layer.
func (s *Surface) SetBounds(bounds entity.Rect) {
	s.bounds = bounds
	s.window.place(s.view, bounds)
}

// Bounds returns the last applied bounds.
func (s *Surface) Bounds() entity.Rect {
	return s.bounds
}

// BringToFront stacks the surface above every other child.
func (s *Surface) BringToFront() {
	s.window.raise(s.view)
}
