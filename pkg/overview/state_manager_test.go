package overview

import (
	"testing"
	"time"

	"github.com/go-drift/taskswitch/pkg/animation"
)

// fakeClock drives committed playback deterministically in tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func installFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	fake := &fakeClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(fake)
	t.Cleanup(func() { animation.SetClock(prev) })
	return fake
}

type stateChange struct {
	from, to  UIState
	animated  bool
	reapplied bool
}

func recordChanges(m *StateManager) *[]stateChange {
	var changes []stateChange
	m.AddStateListener(func(from, to UIState, animated, reapplied bool) {
		changes = append(changes, stateChange{from, to, animated, reapplied})
	})
	return &changes
}

func TestStateManagerStartsNormal(t *testing.T) {
	m := NewStateManager()
	if m.State() != StateNormal {
		t.Errorf("initial state = %v, want normal", m.State())
	}
	if m.RestState() != StateNormal {
		t.Errorf("initial rest state = %v, want normal", m.RestState())
	}
}

func TestGoToStateNotifiesListeners(t *testing.T) {
	m := NewStateManager()
	changes := recordChanges(m)

	m.GoToState(StateOverview, true)
	if m.State() != StateOverview {
		t.Errorf("state = %v, want overview", m.State())
	}
	if len(*changes) != 1 {
		t.Fatalf("got %d notifications, want 1", len(*changes))
	}
	c := (*changes)[0]
	if c.from != StateNormal || c.to != StateOverview || !c.animated || c.reapplied {
		t.Errorf("unexpected notification %+v", c)
	}
}

func TestReapplyState(t *testing.T) {
	m := NewStateManager()
	m.GoToState(StateFastOverview, false)
	changes := recordChanges(m)

	m.ReapplyState()
	if m.State() != StateFastOverview {
		t.Errorf("reapply changed state to %v", m.State())
	}
	if len(*changes) != 1 {
		t.Fatalf("got %d notifications, want 1", len(*changes))
	}
	c := (*changes)[0]
	if c.from != StateFastOverview || c.to != StateFastOverview || !c.reapplied {
		t.Errorf("unexpected notification %+v", c)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	m := NewStateManager()
	count := 0
	unsub := m.AddStateListener(func(UIState, UIState, bool, bool) { count++ })

	m.GoToState(StateOverview, false)
	unsub()
	m.GoToState(StateNormal, false)
	if count != 1 {
		t.Errorf("listener fired %d times, want 1", count)
	}
}

func TestGoToStateCancelsCurrentAnimation(t *testing.T) {
	m := NewStateManager()

	fired := false
	ctl := animation.Wrap(animation.NewTimeline(), time.Second)
	ctl.SetEndAction(func() { fired = true })
	m.SetCurrentAnimation(ctl)
	ctl.SetPlayFraction(0.2)
	ctl.Start()

	m.GoToState(StateOverview, false)
	if ctl.IsPlaying() {
		t.Error("in-flight animation not cancelled")
	}
	if fired {
		t.Error("cancelled animation ran its end action")
	}
}

func TestCreateAnimationCommitsPastHalfway(t *testing.T) {
	m := NewStateManager()
	m.GoToState(StateBackgroundApp, false)

	ctl := m.CreateAnimationToNewState(StateBackgroundApp, StateOverview, 4320)
	ctl.SetPlayFraction(1)
	ctl.Start()
	if m.State() != StateOverview {
		t.Errorf("state = %v, want overview after completing forward", m.State())
	}
}

func TestCreateAnimationRevertsBeforeHalfway(t *testing.T) {
	clock := installFakeClock(t)

	m := NewStateManager()
	m.GoToState(StateBackgroundApp, false)

	ctl := m.CreateAnimationToNewState(StateBackgroundApp, StateOverview, 4320)
	ctl.SetPlayFraction(0.3)
	ctl.Reverse()
	clock.Advance(5 * time.Second)
	animation.StepTickers()
	if m.State() != StateBackgroundApp {
		t.Errorf("state = %v, want background-app after reverting", m.State())
	}
}

func TestCreateAnimationUsesTimelineBuilder(t *testing.T) {
	m := NewStateManager()
	var value float64
	m.SetTimelineBuilder(func(from, to UIState) *animation.Timeline {
		if from != StateNormal || to != StateOverview {
			t.Errorf("builder called with %v -> %v", from, to)
		}
		tl := animation.NewTimeline()
		tl.Play(animation.OfFloat(func(v float64) { value = v }, 0, 1))
		return tl
	})

	ctl := m.CreateAnimationToNewState(StateNormal, StateOverview, 500)
	ctl.SetPlayFraction(0.25)
	if value != 0.25 {
		t.Errorf("timeline value = %v, want 0.25", value)
	}
}
