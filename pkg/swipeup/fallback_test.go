package swipeup

import (
	"testing"
	"time"

	"github.com/go-drift/taskswitch/pkg/animation"
	"github.com/go-drift/taskswitch/pkg/device"
	"github.com/go-drift/taskswitch/pkg/dispatch"
	"github.com/go-drift/taskswitch/pkg/eventlog"
	"github.com/go-drift/taskswitch/pkg/geometry"
	"github.com/go-drift/taskswitch/pkg/overview"
)

const testHomeComponent = "com.example.home/.HomeActivity"

func newFallbackFixture(p device.Profile) (*FallbackControls, *overview.StandaloneContainer) {
	cfg := device.DefaultConfig()
	registry := overview.NewRegistry[*overview.StandaloneContainer]()
	container := overview.NewStandaloneContainer(p)
	registry.SetCreated(container, false)
	return NewFallbackControls(testHomeComponent, registry, cfg), container
}

func homeTargets() *RemoteTargetSet {
	return &RemoteTargetSet{
		Targets: []RemoteTarget{
			{Kind: SurfaceHome, Mode: TargetOpening},
		},
	}
}

func appTargets() *RemoteTargetSet {
	return &RemoteTargetSet{
		Targets: []RemoteTarget{
			{Kind: SurfaceApp, Mode: TargetOpening, TaskID: 4},
			{Kind: SurfaceHome, Mode: TargetClosing},
		},
	}
}

func TestFallbackDestinationAndLength(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    device.Profile
	}{
		{"portrait", testProfile()},
		{"landscape", testLandscapeProfile()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := newFallbackFixture(tc.p)
			for _, interaction := range []InteractionType{InteractionNormal, InteractionQuickScrub} {
				out := geometry.NewTransformedRect()
				length := f.SwipeUpDestinationAndLength(tc.p, interaction, &out)
				if length <= 0 {
					t.Errorf("%v length = %v, want positive", interaction, length)
				}
				if out.Rect.IsEmpty() {
					t.Errorf("%v destination rect is empty", interaction)
				}
			}
		})
	}
}

func TestFallbackQuickScrubStartedFromHome(t *testing.T) {
	cases := []struct {
		name    string
		task    *TaskInfo
		visible bool
		want    bool
	}{
		{"no running task", nil, false, true},
		{"home on top", &TaskInfo{ID: 1, TopComponent: testHomeComponent}, false, true},
		{"app on top", &TaskInfo{ID: 1, TopComponent: "com.other/.Main"}, false, false},
		{"already visible", nil, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, c := newFallbackFixture(testProfile())
			log := eventlog.NewTouchInteractionLog("quick-scrub")
			f.OnQuickInteractionStart(c, tc.task, tc.visible, log)
			if got := c.OverviewPanel().QuickScrub().StartedFromHome(); got != tc.want {
				t.Errorf("startedFromHome = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFallbackVisibleQuickScrubNotifiesAfterDelay(t *testing.T) {
	dispatch.ResetForTest()
	t.Cleanup(dispatch.ResetForTest)

	var gotDelay time.Duration
	var pending func()
	dispatch.RegisterDelayed(func(d time.Duration, cb func()) func() {
		gotDelay = d
		pending = cb
		return func() { pending = nil }
	})

	f, c := newFallbackFixture(testProfile())
	log := eventlog.NewTouchInteractionLog("quick-scrub")
	f.OnQuickInteractionStart(c, nil, true, log)

	qs := c.OverviewPanel().QuickScrub()
	if qs.TransitionFinished() {
		t.Fatal("transition finished before the delay elapsed")
	}
	if gotDelay != f.config.OverviewTransition() {
		t.Errorf("delay = %v, want %v", gotDelay, f.config.OverviewTransition())
	}
	if pending == nil {
		t.Fatal("no delayed notification scheduled")
	}
	pending()
	if !qs.TransitionFinished() {
		t.Error("delayed notification did not settle the transition")
	}
}

func TestFallbackInvisibleQuickScrubSchedulesNothing(t *testing.T) {
	dispatch.ResetForTest()
	t.Cleanup(dispatch.ResetForTest)

	scheduled := false
	dispatch.RegisterDelayed(func(d time.Duration, cb func()) func() {
		scheduled = true
		return func() {}
	})

	f, c := newFallbackFixture(testProfile())
	log := eventlog.NewTouchInteractionLog("quick-scrub")
	f.OnQuickInteractionStart(c, nil, false, log)
	if scheduled {
		t.Error("invisible start must not schedule the finished notification")
	}
}

func TestFallbackPrepareVisibleIsInert(t *testing.T) {
	f, c := newFallbackFixture(testProfile())
	c.OverviewPanel().SetContentAlpha(0.7)

	called := false
	factory := f.PrepareOverviewUI(c, true, true,
		func(*animation.PlaybackController) { called = true })

	factory.OnRemoteAnimationReceived(homeTargets())
	factory.CreateControllerForTransition(500, InteractionNormal)
	if called {
		t.Error("inert factory invoked the callback")
	}
	if c.OverviewPanel().ContentAlpha() != 0.7 {
		t.Errorf("inert factory touched content alpha: %v", c.OverviewPanel().ContentAlpha())
	}
}

func TestFallbackPrepareHidesContent(t *testing.T) {
	f, c := newFallbackFixture(testProfile())
	f.PrepareOverviewUI(c, false, true, func(*animation.PlaybackController) {})
	if c.OverviewPanel().ContentAlpha() != 0 {
		t.Errorf("content alpha = %v, want 0 before the remote animation", c.OverviewPanel().ContentAlpha())
	}
}

func TestFallbackTwoPhaseFade(t *testing.T) {
	f, c := newFallbackFixture(testProfile())

	var ctl *animation.PlaybackController
	factory := f.PrepareOverviewUI(c, false, true,
		func(pc *animation.PlaybackController) { ctl = pc })

	fallback, ok := factory.(*FallbackAnimationFactory)
	if !ok {
		t.Fatalf("factory type = %T", factory)
	}

	// Phase 2 before phase 1 must not produce a controller.
	factory.CreateControllerForTransition(500, InteractionNormal)
	if ctl != nil {
		t.Fatal("controller produced before the remote animation armed the factory")
	}

	factory.OnRemoteAnimationReceived(homeTargets())
	if !fallback.AnimatingHome() {
		t.Error("home-opening target set should arm the factory")
	}
	if ctl == nil {
		t.Fatal("armed factory did not produce a controller")
	}

	ctl.SetPlayFraction(0.5)
	if got := c.OverviewPanel().ContentAlpha(); got != 0.5 {
		t.Errorf("mid-fade alpha = %v, want 0.5", got)
	}
	ctl.SetPlayFraction(1)
	if c.OverviewPanel().ContentAlpha() != 1 {
		t.Error("fade did not reveal the content")
	}
}

func TestFallbackForceRevealWithoutHomeTransition(t *testing.T) {
	f, c := newFallbackFixture(testProfile())

	var ctl *animation.PlaybackController
	factory := f.PrepareOverviewUI(c, false, true,
		func(pc *animation.PlaybackController) { ctl = pc })

	factory.OnRemoteAnimationReceived(appTargets())
	if ctl != nil {
		t.Error("non-home transition should not produce a fade controller")
	}
	if c.OverviewPanel().ContentAlpha() != 1 {
		t.Errorf("alpha = %v, want force-revealed 1", c.OverviewPanel().ContentAlpha())
	}
}

func TestFallbackNilTargetSetForceReveals(t *testing.T) {
	f, c := newFallbackFixture(testProfile())
	factory := f.PrepareOverviewUI(c, false, true, func(*animation.PlaybackController) {})
	factory.OnRemoteAnimationReceived(nil)
	if c.OverviewPanel().ContentAlpha() != 1 {
		t.Error("nil target set should force-reveal the content")
	}
}

func TestFallbackVisibleTaskListView(t *testing.T) {
	f, c := newFallbackFixture(testProfile())
	if _, ok := f.VisibleTaskListView(); ok {
		t.Error("unfocused container should not expose the task list")
	}
	c.SetWindowFocus(true)
	if _, ok := f.VisibleTaskListView(); !ok {
		t.Error("focused container should expose the task list")
	}
}

func TestFallbackPolicies(t *testing.T) {
	f, c := newFallbackFixture(testProfile())

	for _, target := range []HitTarget{HitTargetNone, HitTargetBack, HitTargetHome, HitTargetOverview, HitTargetRotation} {
		if !f.DeferStartingContainer(target) {
			t.Errorf("DeferStartingContainer(%v) = false, want always true", target)
		}
	}
	if f.SwitchToOverviewIfVisible(true) {
		t.Error("fallback has nothing to switch from")
	}
	if f.SupportsLongSwipe(c) {
		t.Error("fallback does not support long swipe")
	}
	if f.LongSwipeController(c, 1) != nil {
		t.Error("long swipe controller should be nil")
	}
	if f.TranslationYForQuickScrub(geometry.NewTransformedRect(), testProfile()) != 0 {
		t.Error("quick-scrub translation should be 0")
	}
	if f.ContainerType() != eventlog.ContainerSideloadedOverview {
		t.Errorf("container type = %v", f.ContainerType())
	}
	if f.AlphaProperty(c) == nil {
		t.Error("alpha property missing")
	}
}

func TestFallbackOverviewWindowBounds(t *testing.T) {
	home := geometry.RectFromLTWH(0, 0, 1080, 2160)
	targetBounds := geometry.RectFromLTWH(100, 100, 500, 500)
	target := &RemoteTarget{SourceContainerBounds: targetBounds}

	f, _ := newFallbackFixture(testProfile())
	if got := f.OverviewWindowBounds(home, target); got != targetBounds {
		t.Errorf("bounds = %+v, want target bounds under the default policy", got)
	}
	if got := f.OverviewWindowBounds(home, nil); got != home {
		t.Errorf("bounds = %+v, want home bounds with no target", got)
	}

	f.config.Fallback.UseTargetBounds = false
	if got := f.OverviewWindowBounds(home, target); got != home {
		t.Errorf("bounds = %+v, want home bounds when the policy is off", got)
	}
}

func TestFallbackExecuteOnWindowAvailableIsSynchronous(t *testing.T) {
	f, c := newFallbackFixture(testProfile())
	ran := false
	f.ExecuteOnWindowAvailable(c, func() { ran = true })
	if !ran {
		t.Error("action should run immediately")
	}
}
