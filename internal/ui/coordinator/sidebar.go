package coordinator

import (
	"context"
	"time"

	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/domain/entity"
	"github.com/bnema/bezel/internal/infrastructure/config"
	"github.com/bnema/bezel/internal/logging"
)

// SidebarCoordinator slides the sidebar overlay in and out.
//
// The overlay sits at x = offset, where offset is 0 when shown and -width
// when hidden. A transition samples an ease-out curve once per main loop
// tick until its duration has elapsed. A new transition replaces the current
// one and starts from the offset reached so far, so at most one frame loop
// is ever scheduled.
type SidebarCoordinator struct {
	view      port.View
	scheduler port.Scheduler
	clock     port.Clock
	notifier  port.Notifier

	width    int
	height   int
	duration time.Duration

	visible bool
	offset  int
	anim    *entity.SlideAnimation
	ticking bool
}

// SidebarCoordinatorConfig holds configuration for SidebarCoordinator.
type SidebarCoordinatorConfig struct {
	View      port.View
	Scheduler port.Scheduler
	Clock     port.Clock // defaults to port.SystemClock
	Notifier  port.Notifier
	Width     int
	Height    int
	Duration  time.Duration
}

// NewSidebarCoordinator creates the coordinator and parks the overlay in
// its hidden position.
func NewSidebarCoordinator(ctx context.Context, cfg SidebarCoordinatorConfig) *SidebarCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Int("width", cfg.Width).Dur("duration", cfg.Duration).Msg("creating sidebar coordinator")

	clock := cfg.Clock
	if clock == nil {
		clock = port.SystemClock{}
	}

	_, hidden := entity.SidebarOffsets(cfg.Width)
	c := &SidebarCoordinator{
		view:      cfg.View,
		scheduler: cfg.Scheduler,
		clock:     clock,
		notifier:  cfg.Notifier,
		width:     cfg.Width,
		height:    cfg.Height,
		duration:  cfg.Duration,
		offset:    hidden,
	}
	c.applyOffset(hidden)
	return c
}

// SetVisible starts a transition toward the shown or hidden position and
// announces the new state right away. Calling it again, even with the same
// value, restarts the clock from the current offset.
func (c *SidebarCoordinator) SetVisible(ctx context.Context, visible bool) {
	logging.FromContext(ctx).Debug().
		Bool("visible", visible).
		Int("from", c.offset).
		Msg("sidebar transition")

	c.visible = visible
	c.restart()

	if c.notifier != nil {
		c.notifier.Notify(ctx, port.NewNotification(port.ChannelSidebarVisibilityChanged, visible))
	}
}

// restart begins a transition from the current offset toward the position
// matching c.visible.
func (c *SidebarCoordinator) restart() {
	shown, hidden := entity.SidebarOffsets(c.width)
	target := hidden
	if c.visible {
		target = shown
	}
	c.anim = entity.NewSlideAnimation(c.offset, target, c.clock.Now(), c.duration)

	if c.visible {
		c.view.BringToFront()
	}
	c.step()
}

// step renders one frame and schedules the next while the transition runs.
func (c *SidebarCoordinator) step() {
	if c.anim == nil {
		return
	}
	offset, done := c.anim.OffsetAt(c.clock.Now())
	c.applyOffset(offset)
	if done {
		c.anim = nil
		return
	}
	if !c.ticking && c.scheduler != nil {
		c.ticking = true
		c.scheduler.Post(c.tick)
	}
}

func (c *SidebarCoordinator) tick() {
	c.ticking = false
	c.step()
}

func (c *SidebarCoordinator) applyOffset(offset int) {
	c.offset = offset
	c.view.SetBounds(entity.Rect{
		X:      offset,
		Y:      0,
		Width:  c.width,
		Height: c.height,
	})
}

// RaiseIfShown stacks the overlay above content when it is fully shown.
func (c *SidebarCoordinator) RaiseIfShown(_ context.Context) {
	if c.offset == 0 {
		c.view.BringToFront()
	}
}

// HandleResize makes the overlay follow the window height.
func (c *SidebarCoordinator) HandleResize(ctx context.Context, height int) {
	if height == c.height {
		return
	}
	c.height = height
	c.applyOffset(c.offset)
	c.RaiseIfShown(ctx)
}

// ApplyConfig picks up a reloaded sidebar width and animation duration.
func (c *SidebarCoordinator) ApplyConfig(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}
	c.duration = cfg.Sidebar.AnimationDuration()

	width := cfg.Sidebar.Width
	if width <= 0 || width == c.width {
		return
	}
	c.width = width
	if c.anim == nil {
		shown, hidden := entity.SidebarOffsets(width)
		if c.visible {
			c.applyOffset(shown)
		} else {
			c.applyOffset(hidden)
		}
		return
	}
	logging.FromContext(ctx).Debug().Int("width", width).Msg("sidebar width changed mid-transition")
	c.restart()
}

// Visible reports the requested visibility, not the animation progress.
func (c *SidebarCoordinator) Visible() bool {
	return c.visible
}

// Offset returns the overlay's current horizontal offset.
func (c *SidebarCoordinator) Offset() int {
	return c.offset
}

// Animating reports whether a transition is in progress.
func (c *SidebarCoordinator) Animating() bool {
	return c.anim != nil
}
