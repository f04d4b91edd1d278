// Package swipeup coordinates the transition between the two
// mutually-exclusive container presentations of the task switcher (the
// home container and the standalone fallback) while a swipe or
// quick-switch gesture is in flight.
//
// The gesture handler acquires the [ContainerControls] implementation for
// the current foreground container, asks it to prepare the transition
// (producing an [AnimationFactory]), drives the produced
// [animation.PlaybackController] by scrub fraction as the gesture
// progresses, and finally commits or cancels. The controls mediate every
// container-specific difference so the gesture handler logic is identical
// for both variants.
package swipeup

import (
	"fmt"
	"time"

	"github.com/go-drift/taskswitch/pkg/geometry"
)

// InteractionType selects which destination state and animation shape a
// gesture targets. Immutable for the gesture's lifetime.
type InteractionType int

const (
	// InteractionNormal is a plain swipe up to overview.
	InteractionNormal InteractionType = iota
	// InteractionQuickScrub is a held swipe that pages between tasks.
	InteractionQuickScrub
)

func (t InteractionType) String() string {
	switch t {
	case InteractionNormal:
		return "normal"
	case InteractionQuickScrub:
		return "quick-scrub"
	default:
		return fmt.Sprintf("InteractionType(%d)", int(t))
	}
}

// HitTarget identifies the navigation-bar region a gesture started on.
type HitTarget int

const (
	// HitTargetNone means the gesture started outside any button.
	HitTargetNone HitTarget = iota
	// HitTargetBack is the back button.
	HitTargetBack
	// HitTargetHome is the home button.
	HitTargetHome
	// HitTargetOverview is the overview button.
	HitTargetOverview
	// HitTargetRotation is the rotation-suggestion button.
	HitTargetRotation
)

// TaskInfo identifies the task a gesture is interacting with. Read-only;
// supplied by the host task system.
type TaskInfo struct {
	// ID is the task identifier.
	ID int
	// TopComponent names the task's top activity.
	TopComponent string
}

// TargetMode says whether a remote animation target is appearing or
// disappearing.
type TargetMode int

const (
	// TargetOpening is a surface being revealed.
	TargetOpening TargetMode = iota
	// TargetClosing is a surface being hidden.
	TargetClosing
)

// SurfaceKind classifies a remote animation target's surface.
type SurfaceKind int

const (
	// SurfaceApp is an application window.
	SurfaceApp SurfaceKind = iota
	// SurfaceHome is the home surface.
	SurfaceHome
)

// RemoteTarget describes one externally-driven surface in a remote
// animation.
type RemoteTarget struct {
	Kind                  SurfaceKind
	Mode                  TargetMode
	TaskID                int
	SourceContainerBounds geometry.Rect
}

// RemoteTargetSet is the set of surfaces delivered by the
// remote-animation transport for one transition.
type RemoteTargetSet struct {
	Targets []RemoteTarget
}

// AnimatingHome reports whether the transition is animating toward the
// home surface.
func (s *RemoteTargetSet) AnimatingHome() bool {
	if s == nil {
		return false
	}
	for _, t := range s.Targets {
		if t.Kind == SurfaceHome && t.Mode == TargetOpening {
			return true
		}
	}
	return false
}

// FindTask returns the target for the given task id, or false.
func (s *RemoteTargetSet) FindTask(taskID int) (RemoteTarget, bool) {
	if s == nil {
		return RemoteTarget{}, false
	}
	for _, t := range s.Targets {
		if t.TaskID == taskID {
			return t, true
		}
	}
	return RemoteTarget{}, false
}

// RemoteAnimationProvider supplies the remote animation played while a
// container launch is in flight. The transport calls it once the target
// set is known.
type RemoteAnimationProvider func(targets *RemoteTargetSet)

// StartRequest asks the host environment to create and start a container
// bound to a remote-animation launch.
type StartRequest struct {
	// Target names the container component to start.
	Target string
	// Start performs the launch with the given animation provider and
	// duration. Installed by the host environment.
	Start func(provider RemoteAnimationProvider, duration time.Duration) error
}
