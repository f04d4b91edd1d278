package swipeup

import (
	"time"

	"github.com/go-drift/taskswitch/pkg/animation"
	"github.com/go-drift/taskswitch/pkg/device"
	"github.com/go-drift/taskswitch/pkg/eventlog"
	"github.com/go-drift/taskswitch/pkg/geometry"
	"github.com/go-drift/taskswitch/pkg/overview"
)

// HomeControls is the [ContainerControls] implementation for the home
// container. It drives transitions through the container's persistent
// state manager.
type HomeControls struct {
	registry *overview.Registry[*overview.HomeContainer]
	config   device.Config
	sink     eventlog.Sink
}

var _ ContainerControls[*overview.HomeContainer] = (*HomeControls)(nil)

// NewHomeControls creates the home variant bound to the given registry.
// sink may be nil when button-launch logging is not wanted.
func NewHomeControls(registry *overview.Registry[*overview.HomeContainer], config device.Config, sink eventlog.Sink) *HomeControls {
	return &HomeControls{registry: registry, config: config, sink: sink}
}

// CreateLayoutListener returns the home layout listener.
func (h *HomeControls) CreateLayoutListener(c *overview.HomeContainer) LayoutListener {
	return NewHomeLayoutListener(c)
}

// OnQuickInteractionStart moves the container to fast overview and starts
// the quick-scrub sub-controller.
func (h *HomeControls) OnQuickInteractionStart(c *overview.HomeContainer, task *TaskInfo, containerVisible bool, log *eventlog.TouchInteractionLog) {
	fromState := c.StateManager().State()
	controller := c.OverviewPanel().QuickScrub()
	animate := containerVisible
	if controller.IsQuickSwitch() && fromState == overview.StateFastOverview && !animate {
		// We can already be in fast overview if the animation factory ran
		// before us, e.g. when the container was slow to come up at the
		// start of a quick switch. The quick-switch flag was not set when
		// that state was applied, so reapply to take it into account.
		c.StateManager().ReapplyState()
	} else {
		c.StateManager().GoToState(overview.StateFastOverview, animate)
	}

	controller.OnQuickScrubStart(containerVisible && !fromState.OverviewUI(), log)

	if !containerVisible {
		// For the duration of the gesture, lock the orientation so the
		// display does not rotate mid-quick-scrub.
		c.RequestRotationLock()
	}
}

// TranslationYForQuickScrub computes the vertical offset aligning the
// quick-scrub destination with the overview panel's settled insets.
func (h *HomeControls) TranslationYForQuickScrub(target geometry.TransformedRect, p device.Profile) float64 {
	// The padding arithmetic mirrors the overview panel's inset layout.
	paddingTop := target.Rect.Top - p.TaskThumbnailTopMarginPx - p.Insets.Top
	paddingBottom := p.AvailableHeightPx + p.Insets.Top - target.Rect.Bottom
	return h.config.QuickScrubTranslationFactor * (paddingBottom - paddingTop)
}

// ExecuteOnWindowAvailable defers the action until no overlay covers the
// container's window.
func (h *HomeControls) ExecuteOnWindowAvailable(c *overview.HomeContainer, action func()) {
	c.RunOnOverlayHidden(action)
}

// OnTransitionCancelled returns the container to its rest state.
func (h *HomeControls) OnTransitionCancelled(c *overview.HomeContainer, containerVisible bool) {
	c.StateManager().GoToState(c.StateManager().RestState(), containerVisible)
}

// SwipeUpDestinationAndLength computes the destination card rect and the
// swipe tracking distance.
func (h *HomeControls) SwipeUpDestinationAndLength(p device.Profile, interaction InteractionType, out *geometry.TransformedRect) float64 {
	out.Rect = overview.HomeTaskSize(p)
	if interaction == InteractionQuickScrub {
		out.Scale = overview.StateFastOverview.OverviewScale(h.config)
	}
	if p.VerticalBarLayout {
		return p.HotseatBarSizePx + p.HotseatInset()
	}
	return overview.ShelfTrackingDistance(p)
}

// OnSwipeUpComplete reasserts the current state in case the gesture
// mutated the presentation underneath it.
func (h *HomeControls) OnSwipeUpComplete(c *overview.HomeContainer) {
	c.StateManager().ReapplyState()
}

// PrepareOverviewUI readies the container and returns the per-gesture
// animation factory.
func (h *HomeControls) PrepareOverviewUI(c *overview.HomeContainer, containerVisible, animate bool, callback func(*animation.PlaybackController)) AnimationFactory {
	mgr := c.StateManager()
	startState := mgr.State()

	resetState := startState
	if startState.DisableRestore() {
		resetState = mgr.RestState()
	}
	mgr.SetRestState(resetState)

	fromState := startState
	if !containerVisible {
		// The container is off screen, so the drawer scroll can be reset
		// safely; the next swipe to all-apps then starts from the top.
		c.AppsView().Reset(false)
		if animate {
			fromState = overview.StateBackgroundApp
		} else {
			fromState = overview.StateOverview
		}
		mgr.GoToState(fromState, false)

		// Hide the drawer content to avoid a layout pass while the
		// container initializes off screen.
		c.AppsView().SetContentHidden(true)
	}

	return &homeAnimationFactory{
		controls:   h,
		container:  c,
		wasVisible: containerVisible,
		fromState:  fromState,
		startState: startState,
		callback:   callback,
	}
}

// homeAnimationFactory is the per-gesture factory for the home variant.
type homeAnimationFactory struct {
	controls   *HomeControls
	container  *overview.HomeContainer
	wasVisible bool
	fromState  overview.UIState
	startState overview.UIState
	callback   func(*animation.PlaybackController)
}

// OnRemoteAnimationReceived is unused by the home variant; its
// transitions are state-manager driven.
func (f *homeAnimationFactory) OnRemoteAnimationReceived(targets *RemoteTargetSet) {}

func (f *homeAnimationFactory) CreateControllerForTransition(transitionLength float64, interaction InteractionType) {
	c := f.container
	endState := overview.StateOverview
	if interaction == InteractionQuickScrub {
		endState = overview.StateFastOverview
	}

	if f.wasVisible {
		// A visible container animates state-to-state directly. The
		// accuracy bounds how much motion the animation accommodates.
		accuracy := 2 * c.Profile().MaxDimension()
		f.callback(c.StateManager().CreateAnimationToNewState(f.fromState, endState, accuracy))
		return
	}
	if f.fromState == endState {
		return
	}

	tl := animation.NewTimeline()
	p := c.Profile()
	if !p.VerticalBarLayout {
		tl.Play(animation.OfFloat(c.AppsView().SetProgress,
			f.fromState.VerticalProgress(p), endState.VerticalProgress(p)))
	}
	if interaction == InteractionNormal {
		f.controls.playScaleDownAnim(tl, c, endState)
	}

	// The controller is scrubbed across the full gesture range while the
	// destination-state animation covers only half of it.
	duration := time.Duration(2*transitionLength) * time.Millisecond
	ctl := animation.Wrap(tl, duration)
	c.StateManager().SetCurrentAnimation(ctl)

	// The start position of the UI changed, so settle the persistent
	// state to whichever end the final scrub fraction is closer to.
	fromState := f.fromState
	ctl.SetEndAction(func() {
		to := fromState
		if ctl.ProgressFraction() > 0.5 {
			to = endState
		}
		c.StateManager().GoToState(to, false)
	})
	f.callback(ctl)
}

func (f *homeAnimationFactory) OnTransitionCancelled() {
	f.container.StateManager().GoToState(f.startState, false)
}

// playScaleDownAnim shrinks the focused full-screen task into its
// overview card position as part of the destination-state transition.
func (h *HomeControls) playScaleDownAnim(tl *animation.Timeline, c *overview.HomeContainer, endState overview.UIState) {
	rv := c.OverviewPanel()
	clip := ClipTransformFromTask(rv, endState.OverviewScale(h.config))
	if clip.Degenerate() {
		return
	}
	tl.Play(animation.OfFloat(rv.SetScale, clip.FromScale(), 1))
	tl.Play(animation.OfFloat(rv.SetTranslationY, clip.FromTranslationY(), 0))
}

// CreateInitListener returns a listener keyed on the home registry.
func (h *HomeControls) CreateInitListener(onInit func(c *overview.HomeContainer, alreadyOnHome bool) bool) InitListener {
	return NewHomeInitListener(h.registry, onInit)
}

// CreatedContainer returns the currently-created home container.
func (h *HomeControls) CreatedContainer() (*overview.HomeContainer, bool) {
	return h.registry.Created()
}

// visibleHome returns the home container only when it is started and its
// window has focus.
func (h *HomeControls) visibleHome() (*overview.HomeContainer, bool) {
	c, ok := h.registry.Created()
	if !ok || !c.IsStarted() || !c.HasWindowFocus() {
		return nil, false
	}
	return c, true
}

// VisibleTaskListView returns the overview panel when the container is
// visible and in an overview state.
func (h *HomeControls) VisibleTaskListView() (*overview.TaskListView, bool) {
	c, ok := h.visibleHome()
	if !ok || !c.StateManager().State().OverviewUI() {
		return nil, false
	}
	return c.OverviewPanel(), true
}

// SwitchToOverviewIfVisible moves a visible home container to overview.
func (h *HomeControls) SwitchToOverviewIfVisible(fromButton bool) bool {
	c, ok := h.visibleHome()
	if !ok {
		return false
	}
	if fromButton && h.sink != nil {
		log := eventlog.NewTouchInteractionLog("overview-button")
		log.SetContainerType(h.ContainerType())
		h.sink.LogInteraction(log)
	}
	c.StateManager().GoToState(overview.StateOverview, true)
	return true
}

// DeferStartingContainer defers startup only for gestures that began on
// the back or rotation targets.
func (h *HomeControls) DeferStartingContainer(downHitTarget HitTarget) bool {
	return downHitTarget == HitTargetBack || downHitTarget == HitTargetRotation
}

// OverviewWindowBounds clips the overview transition to the home bounds.
func (h *HomeControls) OverviewWindowBounds(homeBounds geometry.Rect, target *RemoteTarget) geometry.Rect {
	return homeBounds
}

// ShouldMinimizeSplitScreen reports true; the home transition owns the
// whole display.
func (h *HomeControls) ShouldMinimizeSplitScreen() bool {
	return true
}

// SupportsLongSwipe reports whether the layout leaves room for the
// all-apps continuation.
func (h *HomeControls) SupportsLongSwipe(c *overview.HomeContainer) bool {
	return !c.Profile().VerticalBarLayout
}

// LongSwipeController returns the long-swipe controller, non-nil exactly
// when SupportsLongSwipe is true for the container.
func (h *HomeControls) LongSwipeController(c *overview.HomeContainer, runningTaskID int) *LongSwipeController {
	if c.Profile().VerticalBarLayout {
		return nil
	}
	return newLongSwipeController(c, runningTaskID)
}

// AlphaProperty returns the swipe-up channel of the container's drag
// layer alpha.
func (h *HomeControls) AlphaProperty(c *overview.HomeContainer) *overview.AlphaProperty {
	return c.LayerAlpha().Property(overview.AlphaIndexSwipeUp)
}

// ContainerType reports the visible container's state type, or app when
// the home container is not visible.
func (h *HomeControls) ContainerType() eventlog.ContainerType {
	if c, ok := h.visibleHome(); ok {
		return c.StateManager().State().ContainerType()
	}
	return eventlog.ContainerApp
}
