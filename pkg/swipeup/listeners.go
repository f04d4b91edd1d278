package swipeup

import (
	"fmt"
	"time"

	"github.com/go-drift/taskswitch/pkg/geometry"
	"github.com/go-drift/taskswitch/pkg/overview"
)

// HomeLayoutListener watches for layout-affecting changes under the home
// container while a gesture runs, reporting whether the destination card
// rect moved.
type HomeLayoutListener struct {
	container *overview.HomeContainer

	open        bool
	lastDest    geometry.Rect
	currentRect geometry.Rect
	longSwipe   bool
}

// NewHomeLayoutListener creates a listener for the given container.
func NewHomeLayoutListener(c *overview.HomeContainer) *HomeLayoutListener {
	return &HomeLayoutListener{container: c}
}

// Open starts observing and snapshots the current destination rect.
func (l *HomeLayoutListener) Open() {
	l.open = true
	l.lastDest = overview.HomeTaskSize(l.container.Profile())
}

// Update records the gesture's current rect and reports whether the
// destination rect changed since the last update.
func (l *HomeLayoutListener) Update(shouldFinish, isLongSwipe bool, currentRect geometry.Rect) bool {
	if shouldFinish {
		l.Finish()
		return false
	}
	if !l.open {
		return false
	}
	l.currentRect = currentRect
	l.longSwipe = isLongSwipe

	dest := overview.HomeTaskSize(l.container.Profile())
	changed := !dest.ApproxEqual(l.lastDest)
	l.lastDest = dest
	return changed
}

// Finish stops observing.
func (l *HomeLayoutListener) Finish() {
	l.open = false
}

// CurrentRect returns the last rect reported by the gesture.
func (l *HomeLayoutListener) CurrentRect() geometry.Rect {
	return l.currentRect
}

// IsOpen reports whether the listener is observing.
func (l *HomeLayoutListener) IsOpen() bool {
	return l.open
}

// noopLayoutListener is returned by variants that do not react to layout
// changes during a gesture.
type noopLayoutListener struct{}

func (noopLayoutListener) Open() {}

func (noopLayoutListener) Update(shouldFinish, isLongSwipe bool, currentRect geometry.Rect) bool {
	return false
}

func (noopLayoutListener) Finish() {}

// RegistryInitListener is the [InitListener] for registry-tracked
// containers. Registration is one-shot: once the init callback handles a
// creation the subscription is consumed.
type RegistryInitListener[C any] struct {
	registry *overview.Registry[C]
	onInit   func(c C, alreadyOnHome bool) bool
	remove   func()
}

// NewHomeInitListener creates the init listener for the home registry.
func NewHomeInitListener(registry *overview.Registry[*overview.HomeContainer], onInit func(c *overview.HomeContainer, alreadyOnHome bool) bool) *RegistryInitListener[*overview.HomeContainer] {
	return &RegistryInitListener[*overview.HomeContainer]{registry: registry, onInit: onInit}
}

// NewStandaloneInitListener creates the init listener for the standalone
// registry.
func NewStandaloneInitListener(registry *overview.Registry[*overview.StandaloneContainer], onInit func(c *overview.StandaloneContainer, alreadyOnHome bool) bool) *RegistryInitListener[*overview.StandaloneContainer] {
	return &RegistryInitListener[*overview.StandaloneContainer]{registry: registry, onInit: onInit}
}

// Register subscribes to container creation. If the container already
// exists the callback runs immediately; a handled callback consumes the
// registration.
func (l *RegistryInitListener[C]) Register() {
	if c, ok := l.registry.Created(); ok {
		if l.onInit(c, false) {
			return
		}
	}
	l.remove = l.registry.AddCreationListener(l.onInit)
}

// Unregister cancels a pending subscription. Safe to call when nothing
// is registered.
func (l *RegistryInitListener[C]) Unregister() {
	if l.remove != nil {
		l.remove()
		l.remove = nil
	}
}

// RegisterAndStartContainer subscribes and asks the host to start the
// container with the given remote animation.
func (l *RegistryInitListener[C]) RegisterAndStartContainer(req StartRequest, provider RemoteAnimationProvider, duration time.Duration) error {
	l.Register()
	if req.Start == nil {
		return fmt.Errorf("start request for %q has no launcher", req.Target)
	}
	return req.Start(provider, duration)
}
