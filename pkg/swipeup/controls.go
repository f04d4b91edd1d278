package swipeup

import (
	"time"

	"github.com/go-drift/taskswitch/pkg/animation"
	"github.com/go-drift/taskswitch/pkg/device"
	"github.com/go-drift/taskswitch/pkg/eventlog"
	"github.com/go-drift/taskswitch/pkg/geometry"
	"github.com/go-drift/taskswitch/pkg/overview"
)

// ContainerControls is the capability contract a gesture handler drives
// against whichever container is currently active. It is implemented
// once per container class; the two implementations are [HomeControls]
// and [FallbackControls].
//
// All operations run on the UI thread. Lookups never create a container
// as a side effect; absent containers are reported with a false result.
type ContainerControls[C any] interface {
	// CreateLayoutListener returns the listener that observes
	// layout-affecting events during a gesture. Always succeeds; variants
	// that need none return a no-op listener.
	CreateLayoutListener(c C) LayoutListener

	// OnQuickInteractionStart moves the container toward its quick-scrub
	// presentation and starts the quick-scrub sub-controller. If the
	// container was not visible it additionally requests a rotation lock
	// for the gesture's duration; releasing the lock is the caller's
	// responsibility.
	OnQuickInteractionStart(c C, task *TaskInfo, containerVisible bool, log *eventlog.TouchInteractionLog)

	// TranslationYForQuickScrub computes the vertical offset that aligns
	// the quick-scrub destination. Returns 0 for variants with no
	// vertical offset concept.
	TranslationYForQuickScrub(target geometry.TransformedRect, p device.Profile) float64

	// ExecuteOnWindowAvailable runs action exactly once, as soon as the
	// container's window is guaranteed drawable. May run synchronously.
	ExecuteOnWindowAvailable(c C, action func())

	// OnTransitionCancelled returns the container to a well-defined rest
	// state after an abandoned gesture.
	OnTransitionCancelled(c C, containerVisible bool)

	// SwipeUpDestinationAndLength writes the gesture's destination region
	// into out and returns the scroll distance the gesture must travel to
	// reach it.
	SwipeUpDestinationAndLength(p device.Profile, interaction InteractionType, out *geometry.TransformedRect) float64

	// OnSwipeUpComplete leaves the container self-consistent after the
	// gesture committed.
	OnSwipeUpComplete(c C)

	// PrepareOverviewUI readies the container for the transition and
	// returns the per-gesture animation factory. animate reports whether
	// the transition itself will be animated; callback receives the
	// playback controller the factory eventually builds.
	PrepareOverviewUI(c C, containerVisible, animate bool, callback func(*animation.PlaybackController)) AnimationFactory

	// CreateInitListener returns a listener that requests container
	// creation. onInit runs when the container comes up; returning true
	// consumes the registration.
	CreateInitListener(onInit func(c C, alreadyOnHome bool) bool) InitListener

	// CreatedContainer returns the currently-created container, if any.
	CreatedContainer() (C, bool)

	// VisibleTaskListView returns the overview content view if the
	// container is visible and showing it.
	VisibleTaskListView() (*overview.TaskListView, bool)

	// SwitchToOverviewIfVisible moves an already-visible container to its
	// overview presentation. fromButton marks overview-button launches
	// for logging.
	SwitchToOverviewIfVisible(fromButton bool) bool

	// OverviewWindowBounds returns the window bounds the overview
	// transition should clip to.
	OverviewWindowBounds(homeBounds geometry.Rect, target *RemoteTarget) geometry.Rect

	// ShouldMinimizeSplitScreen reports whether split screen is minimized
	// while the gesture runs.
	ShouldMinimizeSplitScreen() bool

	// DeferStartingContainer reports whether container startup should
	// wait for a movement threshold instead of starting on touch down.
	DeferStartingContainer(downHitTarget HitTarget) bool

	// SupportsLongSwipe reports whether the container supports continuing
	// the swipe past the overview threshold.
	SupportsLongSwipe(c C) bool

	// LongSwipeController returns the controller for a long swipe. It is
	// non-nil whenever SupportsLongSwipe returned true for the same
	// container.
	LongSwipeController(c C, runningTaskID int) *LongSwipeController

	// AlphaProperty returns the container's gesture-owned alpha channel.
	AlphaProperty(c C) *overview.AlphaProperty

	// ContainerType is the value supplied to the logging sink.
	ContainerType() eventlog.ContainerType
}

// AnimationFactory builds the animation controller for one gesture. It is
// created by PrepareOverviewUI, owned by the gesture handler for the
// gesture's lifetime, and discarded when the gesture ends.
//
// For the fallback variant the calls form a two-phase protocol:
// OnRemoteAnimationReceived must run before CreateControllerForTransition
// can produce a controller. See [FallbackAnimationFactory].
type AnimationFactory interface {
	// OnRemoteAnimationReceived delivers the remote-animation target set
	// for externally-driven transitions. Default implementations ignore
	// it.
	OnRemoteAnimationReceived(targets *RemoteTargetSet)

	// CreateControllerForTransition builds the playback controller for
	// the gesture, handing it to the callback captured at prepare time.
	// transitionLength is the scroll distance the gesture covers, in
	// pixels.
	CreateControllerForTransition(transitionLength float64, interaction InteractionType)

	// OnTransitionCancelled reverts the container to the state captured
	// when the factory was created, without animating.
	OnTransitionCancelled()
}

// LayoutListener observes per-frame layout-affecting rectangle changes
// during a gesture.
type LayoutListener interface {
	// Open starts observing.
	Open()

	// Update reports the gesture's current rect. Returns true when the
	// destination rectangle changed since the last update.
	Update(shouldFinish, isLongSwipe bool, currentRect geometry.Rect) bool

	// Finish stops observing.
	Finish()
}

// InitListener requests container creation bound to a remote-animation
// launch, for containers that may not exist yet.
type InitListener interface {
	// Register subscribes to container creation.
	Register()

	// Unregister cancels a pending subscription.
	Unregister()

	// RegisterAndStartContainer subscribes and then asks the host to
	// start the container with the given remote animation.
	RegisterAndStartContainer(req StartRequest, provider RemoteAnimationProvider, duration time.Duration) error
}
