package overview

import (
	"time"

	"github.com/go-drift/taskswitch/pkg/animation"
)

// StateChangeListener observes committed state transitions. reapplied is
// true when the current state was reasserted rather than changed.
type StateChangeListener func(from, to UIState, animated, reapplied bool)

// StateManager owns the home container's current logical state. Every
// transition goes through GoToState or ReapplyState, so the container is
// never in an undefined state.
type StateManager struct {
	state     UIState
	restState UIState

	// buildTimeline constructs the property timeline that moves the
	// container's presentation between two states. Installed by the
	// container that owns this manager.
	buildTimeline func(from, to UIState) *animation.Timeline

	currentAnim *animation.PlaybackController
	listeners   map[int]StateChangeListener
	nextID      int
}

// NewStateManager creates a manager resting in StateNormal.
func NewStateManager() *StateManager {
	return &StateManager{
		state:     StateNormal,
		restState: StateNormal,
		listeners: make(map[int]StateChangeListener),
	}
}

// State returns the current logical state.
func (m *StateManager) State() UIState {
	return m.state
}

// RestState returns the state the container settles in when a transition
// is cancelled or cannot restore its start state.
func (m *StateManager) RestState() UIState {
	return m.restState
}

// SetRestState records the state to fall back to.
func (m *StateManager) SetRestState(s UIState) {
	m.restState = s
}

// SetTimelineBuilder installs the presentation timeline factory used by
// CreateAnimationToNewState.
func (m *StateManager) SetTimelineBuilder(build func(from, to UIState) *animation.Timeline) {
	m.buildTimeline = build
}

// GoToState transitions to the given state, cancelling any in-flight
// state animation first.
func (m *StateManager) GoToState(s UIState, animated bool) {
	m.cancelCurrentAnimation()
	from := m.state
	m.state = s
	m.notify(from, s, animated, false)
}

// ReapplyState reasserts the current state so the presentation matches it
// even if something mutated the UI underneath.
func (m *StateManager) ReapplyState() {
	m.notify(m.state, m.state, false, true)
}

// SetCurrentAnimation registers the controller that currently owns the
// presentation. A later GoToState cancels it.
func (m *StateManager) SetCurrentAnimation(ctl *animation.PlaybackController) {
	m.cancelCurrentAnimation()
	m.currentAnim = ctl
}

// CreateAnimationToNewState builds a scrubbable controller that moves the
// presentation from one state to another. accuracy bounds how much motion
// the animation must accommodate and becomes the committed-playback
// duration. Completing the controller commits the destination state.
func (m *StateManager) CreateAnimationToNewState(from, to UIState, accuracy float64) *animation.PlaybackController {
	var timeline *animation.Timeline
	if m.buildTimeline != nil {
		timeline = m.buildTimeline(from, to)
	}
	ctl := animation.Wrap(timeline, time.Duration(accuracy)*time.Millisecond)
	ctl.SetEndAction(func() {
		if ctl.ProgressFraction() > 0.5 {
			m.GoToState(to, false)
		} else {
			m.GoToState(from, false)
		}
	})
	m.SetCurrentAnimation(ctl)
	return ctl
}

// AddStateListener registers a transition observer. Returns an
// unsubscribe function.
func (m *StateManager) AddStateListener(fn StateChangeListener) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() {
		delete(m.listeners, id)
	}
}

func (m *StateManager) cancelCurrentAnimation() {
	if m.currentAnim != nil {
		m.currentAnim.Cancel()
		m.currentAnim = nil
	}
}

func (m *StateManager) notify(from, to UIState, animated, reapplied bool) {
	for _, fn := range m.listeners {
		fn(from, to, animated, reapplied)
	}
}
