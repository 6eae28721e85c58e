package messaging

import (
	"context"

	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/logging"
)

// Broadcaster fans notifications out to a fixed list of surfaces.
type Broadcaster struct {
	surfaces []port.Surface
}

// NewBroadcaster creates a broadcaster over the given surfaces. Nil entries
// are skipped.
func NewBroadcaster(surfaces ...port.Surface) *Broadcaster {
	list := make([]port.Surface, 0, len(surfaces))
	for _, s := range surfaces {
		if s != nil {
			list = append(list, s)
		}
	}
	return &Broadcaster{surfaces: list}
}

// Notify sends n to every surface. A failing surface does not stop delivery
// to the others.
func (b *Broadcaster) Notify(ctx context.Context, n port.Notification) {
	log := logging.FromContext(ctx)

	for _, s := range b.surfaces {
		if err := s.Send(ctx, n); err != nil {
			log.Warn().
				Err(err).
				Str("surface", string(s.Role())).
				Str("channel", string(n.Channel)).
				Msg("failed to deliver notification")
		}
	}
}

// AnnounceIdentity tells a surface which role it plays. Surfaces call for
// this once, when their document is ready.
func (b *Broadcaster) AnnounceIdentity(ctx context.Context, s port.Surface) {
	if s == nil {
		return
	}
	n := port.NewNotification(port.ChannelSurfaceIdentity, string(s.Role()))
	if err := s.Send(ctx, n); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("surface", string(s.Role())).Msg("failed to announce identity")
	}
}

// Surfaces returns the subscribed surfaces.
func (b *Broadcaster) Surfaces() []port.Surface {
	out := make([]port.Surface, len(b.surfaces))
	copy(out, b.surfaces)
	return out
}
