package entity

import (
	"math"
	"time"
)

// DefaultSlideDuration is how long the sidebar takes to slide in or out.
const DefaultSlideDuration = 200 * time.Millisecond

// EaseOutCubic maps progress in [0,1] to eased progress in [0,1].
func EaseOutCubic(progress float64) float64 {
	p := 1 - progress
	return 1 - p*p*p
}

// SlideOffset returns the interpolated horizontal offset after elapsed time.
// Progress is clamped so the result always lies between start and target.
func SlideOffset(elapsed time.Duration, start, target int, duration time.Duration) int {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	progress := 0.0
	if elapsed > 0 {
		progress = float64(elapsed) / float64(duration)
	}
	current := float64(start) + float64(target-start)*EaseOutCubic(progress)
	return int(math.Round(current))
}

// SidebarOffsets returns the shown and hidden horizontal offsets for a sidebar
// of the given width.
func SidebarOffsets(width int) (shown, hidden int) {
	return 0, -width
}

// SlideAnimation is one sidebar transition from Start toward Target.
type SlideAnimation struct {
	Start    int
	Target   int
	Began    time.Time
	Duration time.Duration
}

// NewSlideAnimation creates a transition beginning at now.
func NewSlideAnimation(start, target int, now time.Time, duration time.Duration) *SlideAnimation {
	return &SlideAnimation{
		Start:    start,
		Target:   target,
		Began:    now,
		Duration: duration,
	}
}

// OffsetAt samples the animation. done is true once the duration has elapsed,
// in which case offset is exactly Target.
func (a *SlideAnimation) OffsetAt(now time.Time) (offset int, done bool) {
	elapsed := now.Sub(a.Began)
	if a.Duration <= 0 || elapsed >= a.Duration {
		return a.Target, true
	}
	return SlideOffset(elapsed, a.Start, a.Target, a.Duration), false
}
