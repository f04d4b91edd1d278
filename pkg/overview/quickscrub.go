package overview

import "github.com/go-drift/taskswitch/pkg/eventlog"

// QuickScrubController runs the quick-scrub sub-interaction: paging
// between task cards while the gesture is held. It lives on the
// TaskListView and is started once per quick-scrub gesture.
type QuickScrubController struct {
	active             bool
	quickSwitch        bool
	startedFromHome    bool
	transitionFinished bool

	onFinished func()
	log        *eventlog.TouchInteractionLog
}

// NewQuickScrubController creates an idle controller.
func NewQuickScrubController() *QuickScrubController {
	return &QuickScrubController{}
}

// OnQuickScrubStart begins the sub-interaction. startedFromHome reports
// whether the gesture visually originates from the home surface, which
// picks the entry animation for the first card.
func (q *QuickScrubController) OnQuickScrubStart(startedFromHome bool, log *eventlog.TouchInteractionLog) {
	q.active = true
	q.startedFromHome = startedFromHome
	q.transitionFinished = false
	q.log = log
	log.AddEvent("quick-scrub-start")
}

// OnFinishedTransitionToQuickScrub is called once the container's
// transition into the quick-scrub presentation has settled, unblocking
// page switches.
func (q *QuickScrubController) OnFinishedTransitionToQuickScrub() {
	if !q.active {
		return
	}
	q.transitionFinished = true
	q.log.AddEvent("quick-scrub-transition-finished")
	if q.onFinished != nil {
		q.onFinished()
	}
}

// OnQuickScrubEnd finishes the sub-interaction.
func (q *QuickScrubController) OnQuickScrubEnd() {
	if !q.active {
		return
	}
	q.active = false
	q.log.AddEvent("quick-scrub-end")
	q.log = nil
}

// SetQuickSwitch marks the gesture as a quick-switch (a single fast flick
// straight to the next task).
func (q *QuickScrubController) SetQuickSwitch(v bool) {
	q.quickSwitch = v
}

// IsQuickSwitch reports whether the gesture is a quick-switch.
func (q *QuickScrubController) IsQuickSwitch() bool {
	return q.quickSwitch
}

// Active reports whether a quick scrub is in progress.
func (q *QuickScrubController) Active() bool {
	return q.active
}

// StartedFromHome reports the flag passed to OnQuickScrubStart.
func (q *QuickScrubController) StartedFromHome() bool {
	return q.startedFromHome
}

// TransitionFinished reports whether the enter transition has settled.
func (q *QuickScrubController) TransitionFinished() bool {
	return q.transitionFinished
}

// SetOnFinishedTransition registers a callback for transition settle.
func (q *QuickScrubController) SetOnFinishedTransition(fn func()) {
	q.onFinished = fn
}
