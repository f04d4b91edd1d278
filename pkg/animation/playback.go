package animation

import "time"

// PlaybackController wraps a [Timeline] and lets a gesture drive it by
// fraction before committing or cancelling it.
//
// A gesture handler scrubs with SetPlayFraction while the finger moves,
// then either commits the remaining motion with Start (which plays from
// the current fraction to the end on the frame clock) or abandons it with
// Cancel. The end action, if set, runs exactly once when playback reaches
// the end naturally; cancellation never runs it.
type PlaybackController struct {
	timeline  *Timeline
	duration  time.Duration
	fraction  float64
	endAction func()
	ended     bool
	ticker    *Ticker
}

// Wrap creates a playback controller for a timeline with the given
// duration. The duration only matters for committed playback; scrubbing
// is positional.
func Wrap(timeline *Timeline, duration time.Duration) *PlaybackController {
	if timeline == nil {
		timeline = NewTimeline()
	}
	return &PlaybackController{timeline: timeline, duration: duration}
}

// Duration returns the committed-playback duration.
func (c *PlaybackController) Duration() time.Duration {
	return c.duration
}

// SetPlayFraction scrubs the timeline to the given fraction, clamped to
// [0, 1].
func (c *PlaybackController) SetPlayFraction(fraction float64) {
	c.fraction = clampUnit(fraction)
	c.timeline.Apply(c.fraction)
}

// ProgressFraction returns the current play fraction.
func (c *PlaybackController) ProgressFraction() float64 {
	return c.fraction
}

// SetEndAction registers the action to run when playback completes. Only
// one end action is kept; setting it again replaces the previous one.
func (c *PlaybackController) SetEndAction(action func()) {
	c.endAction = action
}

// Start commits the animation: playback continues from the current
// fraction to the end over the remaining portion of the duration.
func (c *PlaybackController) Start() {
	c.animateTo(1)
}

// Reverse plays from the current fraction back to the beginning.
func (c *PlaybackController) Reverse() {
	c.animateTo(0)
}

func (c *PlaybackController) animateTo(target float64) {
	c.stopTicker()

	remaining := target - c.fraction
	if remaining < 0 {
		remaining = -remaining
	}
	span := time.Duration(float64(c.duration) * remaining)
	if span <= 0 {
		c.SetPlayFraction(target)
		c.finish(target)
		return
	}

	start := c.fraction
	c.ticker = NewTicker(func(elapsed time.Duration) {
		progress := float64(elapsed) / float64(span)
		if progress >= 1 {
			progress = 1
		}
		c.SetPlayFraction(start + (target-start)*progress)
		if progress >= 1 {
			c.stopTicker()
			c.finish(target)
		}
	})
	c.ticker.Start()
}

// Cancel stops playback at the current fraction without running the end
// action. The caller is responsible for restoring canonical UI state.
func (c *PlaybackController) Cancel() {
	c.stopTicker()
}

// IsPlaying returns true while committed playback is running.
func (c *PlaybackController) IsPlaying() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

func (c *PlaybackController) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// finish runs the end action once when playback reached an end of the
// timeline. Finishing at fraction 1 or 0 both count as completion; the
// end action decides what state to settle in from the final fraction.
func (c *PlaybackController) finish(target float64) {
	if c.ended {
		return
	}
	if target != 0 && target != 1 {
		return
	}
	c.ended = true
	if c.endAction != nil {
		c.endAction()
	}
}
