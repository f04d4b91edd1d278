package overview

import (
	"github.com/go-drift/taskswitch/pkg/animation"
	"github.com/go-drift/taskswitch/pkg/device"
)

// Alpha layer indices on the home container's drag layer. Each consumer
// owns one channel; the layer's effective alpha is their product.
const (
	AlphaIndexOverlay = iota
	AlphaIndexSwipeUp
	alphaIndexCount
)

// AlphaProperty is one channel of a MultiAlpha.
type AlphaProperty struct {
	parent *MultiAlpha
	index  int
}

// Value returns the channel's alpha.
func (p *AlphaProperty) Value() float64 {
	return p.parent.channels[p.index]
}

// SetValue sets the channel's alpha.
func (p *AlphaProperty) SetValue(v float64) {
	p.parent.channels[p.index] = v
}

// MultiAlpha combines several independently-owned alpha channels into one
// effective layer alpha.
type MultiAlpha struct {
	channels []float64
}

// NewMultiAlpha creates a MultiAlpha with the given channel count, all
// fully opaque.
func NewMultiAlpha(count int) *MultiAlpha {
	channels := make([]float64, count)
	for i := range channels {
		channels[i] = 1
	}
	return &MultiAlpha{channels: channels}
}

// Property returns the channel at the given index.
func (m *MultiAlpha) Property(index int) *AlphaProperty {
	return &AlphaProperty{parent: m, index: index}
}

// Effective returns the product of all channels.
func (m *MultiAlpha) Effective() float64 {
	v := 1.0
	for _, c := range m.channels {
		v *= c
	}
	return v
}

// AppsView is the home container's app drawer. The transition subsystem
// only touches its scroll position, its vertical progress property, and
// its content visibility.
type AppsView struct {
	scrollOffset  float64
	progress      float64
	contentHidden bool
}

// Reset moves the drawer scroll back to zero so the next swipe to
// all-apps starts from the top.
func (a *AppsView) Reset(animate bool) {
	_ = animate
	a.scrollOffset = 0
}

// ScrollOffset returns the drawer scroll position.
func (a *AppsView) ScrollOffset() float64 {
	return a.scrollOffset
}

// SetScrollOffset sets the drawer scroll position.
func (a *AppsView) SetScrollOffset(offset float64) {
	a.scrollOffset = offset
}

// Progress returns the all-apps vertical progress (1 hidden, 0 expanded).
func (a *AppsView) Progress() float64 {
	return a.progress
}

// SetProgress sets the all-apps vertical progress.
func (a *AppsView) SetProgress(p float64) {
	a.progress = p
}

// ContentHidden reports whether the drawer content is detached from
// layout.
func (a *AppsView) ContentHidden() bool {
	return a.contentHidden
}

// SetContentHidden detaches or reattaches the drawer content. Hiding it
// before an off-screen state change avoids a wasted layout pass.
func (a *AppsView) SetContentHidden(hidden bool) {
	a.contentHidden = hidden
}

// HomeContainer is the primary host: the home screen, with a persistent
// state manager. Created and destroyed by the host environment; the
// transition subsystem only observes it through a registry.
type HomeContainer struct {
	profile device.Profile
	config  device.Config

	stateMgr   *StateManager
	overview   *TaskListView
	apps       *AppsView
	layerAlpha *MultiAlpha

	rotationLocked bool
	overlayHidden  bool
	overlayQueue   []func()

	started bool
	focused bool
}

// NewHomeContainer creates a home container resting in StateNormal.
func NewHomeContainer(profile device.Profile, config device.Config) *HomeContainer {
	c := &HomeContainer{
		profile:       profile,
		config:        config,
		stateMgr:      NewStateManager(),
		overview:      NewTaskListView(profile),
		apps:          &AppsView{progress: 1},
		layerAlpha:    NewMultiAlpha(alphaIndexCount),
		overlayHidden: true,
	}
	c.stateMgr.SetTimelineBuilder(c.stateTimeline)
	c.stateMgr.AddStateListener(func(from, to UIState, animated, reapplied bool) {
		c.applyState(to)
	})
	c.applyState(StateNormal)
	return c
}

// stateTimeline builds the presentation timeline between two states: the
// drawer's vertical progress plus the overview content fade.
func (c *HomeContainer) stateTimeline(from, to UIState) *animation.Timeline {
	tl := animation.NewTimeline()
	tl.Play(animation.OfFloat(c.apps.SetProgress,
		from.VerticalProgress(c.profile), to.VerticalProgress(c.profile)))

	fromAlpha, toAlpha := 0.0, 0.0
	if from.OverviewUI() {
		fromAlpha = 1
	}
	if to.OverviewUI() {
		toAlpha = 1
	}
	if fromAlpha != toAlpha {
		tl.Play(animation.OfFloat(c.overview.SetContentAlpha, fromAlpha, toAlpha))
	}
	return tl
}

// applyState snaps the presentation to a state's settled values.
func (c *HomeContainer) applyState(s UIState) {
	c.apps.SetProgress(s.VerticalProgress(c.profile))
	if s.OverviewUI() {
		c.overview.SetContentAlpha(1)
	} else {
		c.overview.SetContentAlpha(0)
	}
	c.overview.SetScale(s.OverviewScale(c.config))
}

// Profile returns the device profile.
func (c *HomeContainer) Profile() device.Profile {
	return c.profile
}

// Config returns the tuning configuration.
func (c *HomeContainer) Config() device.Config {
	return c.config
}

// StateManager returns the container's state manager.
func (c *HomeContainer) StateManager() *StateManager {
	return c.stateMgr
}

// OverviewPanel returns the overview content view.
func (c *HomeContainer) OverviewPanel() *TaskListView {
	return c.overview
}

// AppsView returns the app drawer.
func (c *HomeContainer) AppsView() *AppsView {
	return c.apps
}

// LayerAlpha returns the drag layer's multi-channel alpha.
func (c *HomeContainer) LayerAlpha() *MultiAlpha {
	return c.layerAlpha
}

// RequestRotationLock locks the screen orientation for the duration of
// the gesture. Released by the gesture handler, not by this container.
func (c *HomeContainer) RequestRotationLock() {
	c.rotationLocked = true
}

// ReleaseRotationLock releases a previous lock request.
func (c *HomeContainer) ReleaseRotationLock() {
	c.rotationLocked = false
}

// RotationLocked reports whether a lock request is outstanding.
func (c *HomeContainer) RotationLocked() bool {
	return c.rotationLocked
}

// RunOnOverlayHidden runs the action once the container's window is
// guaranteed drawable (no overlay covering it). Runs synchronously when
// the overlay is already hidden; otherwise the action is queued and runs
// exactly once when the overlay hides.
func (c *HomeContainer) RunOnOverlayHidden(action func()) {
	if action == nil {
		return
	}
	if c.overlayHidden {
		action()
		return
	}
	c.overlayQueue = append(c.overlayQueue, action)
}

// SetOverlayHidden updates overlay visibility, flushing queued actions
// when the overlay hides.
func (c *HomeContainer) SetOverlayHidden(hidden bool) {
	c.overlayHidden = hidden
	if !hidden {
		return
	}
	queue := c.overlayQueue
	c.overlayQueue = nil
	for _, action := range queue {
		action()
	}
}

// SetStarted marks the container started or stopped.
func (c *HomeContainer) SetStarted(started bool) {
	c.started = started
}

// IsStarted reports whether the container is between start and stop.
func (c *HomeContainer) IsStarted() bool {
	return c.started
}

// SetWindowFocus marks the container focused.
func (c *HomeContainer) SetWindowFocus(focused bool) {
	c.focused = focused
}

// HasWindowFocus reports whether the container's window has focus.
func (c *HomeContainer) HasWindowFocus() bool {
	return c.focused
}

// StandaloneContainer is the fallback host: a bare task switcher with no
// state manager. Its presentation is driven directly through the
// overview panel's alpha.
type StandaloneContainer struct {
	profile    device.Profile
	overview   *TaskListView
	layerAlpha *MultiAlpha
	focused    bool
}

// NewStandaloneContainer creates a standalone container.
func NewStandaloneContainer(profile device.Profile) *StandaloneContainer {
	return &StandaloneContainer{
		profile:    profile,
		overview:   NewTaskListView(profile),
		layerAlpha: NewMultiAlpha(1),
	}
}

// LayerAlpha returns the container's layer alpha.
func (c *StandaloneContainer) LayerAlpha() *MultiAlpha {
	return c.layerAlpha
}

// Profile returns the device profile.
func (c *StandaloneContainer) Profile() device.Profile {
	return c.profile
}

// OverviewPanel returns the overview content view.
func (c *StandaloneContainer) OverviewPanel() *TaskListView {
	return c.overview
}

// SetWindowFocus marks the container focused.
func (c *StandaloneContainer) SetWindowFocus(focused bool) {
	c.focused = focused
}

// HasWindowFocus reports whether the container's window has focus.
func (c *StandaloneContainer) HasWindowFocus() bool {
	return c.focused
}
