package swipeup

import (
	"time"

	"github.com/go-drift/taskswitch/pkg/animation"
	"github.com/go-drift/taskswitch/pkg/device"
	"github.com/go-drift/taskswitch/pkg/dispatch"
	"github.com/go-drift/taskswitch/pkg/eventlog"
	"github.com/go-drift/taskswitch/pkg/geometry"
	"github.com/go-drift/taskswitch/pkg/overview"
)

// FallbackControls is the [ContainerControls] implementation for the
// standalone container. It has no state manager; transitions are direct
// visibility and alpha manipulation, triggered by remotely-delivered
// animation targets.
type FallbackControls struct {
	homeComponent string
	registry      *overview.Registry[*overview.StandaloneContainer]
	config        device.Config
}

var _ ContainerControls[*overview.StandaloneContainer] = (*FallbackControls)(nil)

// NewFallbackControls creates the fallback variant. homeComponent is the
// registered home activity, used to decide whether a gesture visually
// originates from the home surface.
func NewFallbackControls(homeComponent string, registry *overview.Registry[*overview.StandaloneContainer], config device.Config) *FallbackControls {
	return &FallbackControls{
		homeComponent: homeComponent,
		registry:      registry,
		config:        config,
	}
}

// CreateLayoutListener returns a no-op listener; the standalone container
// does not react to layout changes during a gesture.
func (f *FallbackControls) CreateLayoutListener(c *overview.StandaloneContainer) LayoutListener {
	return noopLayoutListener{}
}

// OnQuickInteractionStart starts the quick-scrub sub-controller. With no
// state manager there is no completion event to hook into, so a visible
// container schedules the finished notification after the configured
// transition delay.
func (f *FallbackControls) OnQuickInteractionStart(c *overview.StandaloneContainer, task *TaskInfo, containerVisible bool, log *eventlog.TouchInteractionLog) {
	controller := c.OverviewPanel().QuickScrub()

	startingFromHome := !containerVisible &&
		(task == nil || task.TopComponent == f.homeComponent)
	controller.OnQuickScrubStart(startingFromHome, log)

	if containerVisible {
		dispatch.PostDelayed(f.config.OverviewTransition(),
			controller.OnFinishedTransitionToQuickScrub)
	}
}

// TranslationYForQuickScrub returns 0; the standalone container has no
// vertical offset concept.
func (f *FallbackControls) TranslationYForQuickScrub(target geometry.TransformedRect, p device.Profile) float64 {
	return 0
}

// ExecuteOnWindowAvailable runs the action immediately; the standalone
// container's window is drawable whenever the container exists.
func (f *FallbackControls) ExecuteOnWindowAvailable(c *overview.StandaloneContainer, action func()) {
	action()
}

// OnTransitionCancelled is a placeholder policy: with no persistent state
// there is nothing reliable to restore yet.
// TODO: restore content alpha here once cancellation delivers the final
// target set.
func (f *FallbackControls) OnTransitionCancelled(c *overview.StandaloneContainer, containerVisible bool) {
}

// SwipeUpDestinationAndLength computes the fallback card rect and swipe
// distance.
func (f *FallbackControls) SwipeUpDestinationAndLength(p device.Profile, interaction InteractionType, out *geometry.TransformedRect) float64 {
	out.Rect = overview.FallbackTaskSize(p)
	if p.VerticalBarLayout {
		return p.HotseatBarSizePx + p.HotseatInset()
	}
	return p.HeightPx - out.Rect.Bottom
}

// OnSwipeUpComplete needs no cleanup; the fade leaves the container in
// its settled presentation.
func (f *FallbackControls) OnSwipeUpComplete(c *overview.StandaloneContainer) {}

// PrepareOverviewUI returns an inert factory when the container is
// already visible (the transition is already showing). Otherwise the
// content is made fully transparent and the returned factory waits for
// the remote animation to decide how to reveal it.
func (f *FallbackControls) PrepareOverviewUI(c *overview.StandaloneContainer, containerVisible, animate bool, callback func(*animation.PlaybackController)) AnimationFactory {
	if containerVisible {
		return inertAnimationFactory{}
	}
	c.OverviewPanel().SetContentAlpha(0)
	return &FallbackAnimationFactory{
		controls:  f,
		container: c,
		callback:  callback,
	}
}

// FallbackAnimationFactory is the per-gesture factory for the standalone
// container. It follows a two-phase protocol:
//
// Phase 1: [FallbackAnimationFactory.OnRemoteAnimationReceived] arms the
// factory from the delivered target set. When the transition is not
// animating toward the home surface the content is force-revealed
// immediately, because nothing else will drive the fade.
//
// Phase 2: [FallbackAnimationFactory.CreateControllerForTransition] is a
// no-op unless phase 1 confirmed a home-animating transition; when armed
// it plays a single content-alpha fade over the transition length.
//
// Phase 1 must run before phase 2 can produce a controller; this is a
// precondition of the factory, not an accident of call order.
type FallbackAnimationFactory struct {
	controls  *FallbackControls
	container *overview.StandaloneContainer
	callback  func(*animation.PlaybackController)

	animatingHome bool
}

// AnimatingHome reports whether phase 1 confirmed a home-animating
// transition.
func (f *FallbackAnimationFactory) AnimatingHome() bool {
	return f.animatingHome
}

// OnRemoteAnimationReceived arms the factory from the target set and
// drives the controller build with the container's own metrics.
func (f *FallbackAnimationFactory) OnRemoteAnimationReceived(targets *RemoteTargetSet) {
	f.animatingHome = targets.AnimatingHome()
	if !f.animatingHome {
		// No home-animating transition will drive the fade; reveal now.
		f.container.OverviewPanel().SetContentAlpha(1)
	}
	out := geometry.NewTransformedRect()
	length := f.controls.SwipeUpDestinationAndLength(
		f.container.Profile(), InteractionNormal, &out)
	f.CreateControllerForTransition(length, InteractionNormal)
}

// CreateControllerForTransition plays the content fade when armed.
func (f *FallbackAnimationFactory) CreateControllerForTransition(transitionLength float64, interaction InteractionType) {
	if !f.animatingHome {
		return
	}
	rv := f.container.OverviewPanel()
	tl := animation.NewTimeline()
	tl.Play(animation.OfFloat(rv.SetContentAlpha, 0, 1))
	ctl := animation.Wrap(tl, time.Duration(transitionLength)*time.Millisecond)
	f.callback(ctl)
}

// OnTransitionCancelled has nothing to revert; the content alpha is
// re-driven by the next gesture's prepare.
func (f *FallbackAnimationFactory) OnTransitionCancelled() {}

// inertAnimationFactory is returned when the transition is already
// showing and nothing needs to animate.
type inertAnimationFactory struct{}

func (inertAnimationFactory) OnRemoteAnimationReceived(targets *RemoteTargetSet) {}

func (inertAnimationFactory) CreateControllerForTransition(transitionLength float64, interaction InteractionType) {
}

func (inertAnimationFactory) OnTransitionCancelled() {}

// CreateInitListener returns a listener backed by the standalone
// registry; the registry tracks the current instance for the whole
// process, created at container start and cleared at stop.
func (f *FallbackControls) CreateInitListener(onInit func(c *overview.StandaloneContainer, alreadyOnHome bool) bool) InitListener {
	return NewStandaloneInitListener(f.registry, onInit)
}

// CreatedContainer returns the currently-created standalone container.
func (f *FallbackControls) CreatedContainer() (*overview.StandaloneContainer, bool) {
	return f.registry.Created()
}

// VisibleTaskListView returns the overview panel when the container has
// window focus.
func (f *FallbackControls) VisibleTaskListView() (*overview.TaskListView, bool) {
	c, ok := f.registry.Created()
	if !ok || !c.HasWindowFocus() {
		return nil, false
	}
	return c.OverviewPanel(), true
}

// SwitchToOverviewIfVisible always reports false; the standalone
// container has no other presentation to switch from.
func (f *FallbackControls) SwitchToOverviewIfVisible(fromButton bool) bool {
	return false
}

// DeferStartingContainer always defers when using the fallback.
func (f *FallbackControls) DeferStartingContainer(downHitTarget HitTarget) bool {
	return true
}

// OverviewWindowBounds answers from the configured policy: the standalone
// container cannot compute true source bounds yet, so the approximation
// stays tunable.
func (f *FallbackControls) OverviewWindowBounds(homeBounds geometry.Rect, target *RemoteTarget) geometry.Rect {
	if f.config.Fallback.UseTargetBounds && target != nil {
		return target.SourceContainerBounds
	}
	return homeBounds
}

// ShouldMinimizeSplitScreen answers from the configured policy.
func (f *FallbackControls) ShouldMinimizeSplitScreen() bool {
	return f.config.Fallback.MinimizeSplitScreen
}

// SupportsLongSwipe reports false; the standalone container has no
// all-apps continuation.
func (f *FallbackControls) SupportsLongSwipe(c *overview.StandaloneContainer) bool {
	return false
}

// LongSwipeController returns nil, matching SupportsLongSwipe.
func (f *FallbackControls) LongSwipeController(c *overview.StandaloneContainer, runningTaskID int) *LongSwipeController {
	return nil
}

// AlphaProperty returns the container's single layer alpha channel.
func (f *FallbackControls) AlphaProperty(c *overview.StandaloneContainer) *overview.AlphaProperty {
	return c.LayerAlpha().Property(0)
}

// ContainerType identifies the standalone overview to the logging sink.
func (f *FallbackControls) ContainerType() eventlog.ContainerType {
	return eventlog.ContainerSideloadedOverview
}
