package swipeup

import (
	"github.com/go-drift/taskswitch/pkg/animation"
	"github.com/go-drift/taskswitch/pkg/overview"
)

// LongSwipeController continues a swipe past the overview threshold
// toward all-apps. Only the home container supports it, and only when
// the hotseat is not a vertical bar.
type LongSwipeController struct {
	container     *overview.HomeContainer
	runningTaskID int
	ctl           *animation.PlaybackController
}

// newLongSwipeController builds the controller over a state animation
// from overview to all-apps.
func newLongSwipeController(c *overview.HomeContainer, runningTaskID int) *LongSwipeController {
	accuracy := 2 * c.Profile().MaxDimension()
	ctl := c.StateManager().CreateAnimationToNewState(
		overview.StateOverview, overview.StateAllApps, accuracy)
	return &LongSwipeController{
		container:     c,
		runningTaskID: runningTaskID,
		ctl:           ctl,
	}
}

// OnMove scrubs the long-swipe animation. progress 0 is the overview
// position, 1 is fully expanded all-apps.
func (l *LongSwipeController) OnMove(progress float64) {
	l.ctl.SetPlayFraction(progress)
}

// End finishes the long swipe. A fling or a release past the halfway
// point commits all-apps; otherwise the remaining motion plays back to
// overview.
func (l *LongSwipeController) End(isFling bool) {
	if isFling || l.ctl.ProgressFraction() > 0.5 {
		l.ctl.Start()
		return
	}
	l.ctl.Reverse()
}

// RunningTaskID returns the task the gesture was riding on.
func (l *LongSwipeController) RunningTaskID() int {
	return l.runningTaskID
}
