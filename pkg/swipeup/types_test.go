package swipeup

import "testing"

func TestRemoteTargetSetAnimatingHome(t *testing.T) {
	if (*RemoteTargetSet)(nil).AnimatingHome() {
		t.Error("nil set should not animate home")
	}
	if (&RemoteTargetSet{}).AnimatingHome() {
		t.Error("empty set should not animate home")
	}
	if !homeTargets().AnimatingHome() {
		t.Error("opening home target not detected")
	}
	// A closing home surface does not count.
	if appTargets().AnimatingHome() {
		t.Error("closing home target misdetected as animating home")
	}
}

func TestRemoteTargetSetFindTask(t *testing.T) {
	set := appTargets()
	target, ok := set.FindTask(4)
	if !ok || target.Kind != SurfaceApp {
		t.Errorf("FindTask(4) = %+v, %v", target, ok)
	}
	if _, ok := set.FindTask(99); ok {
		t.Error("unknown task found")
	}
	if _, ok := (*RemoteTargetSet)(nil).FindTask(1); ok {
		t.Error("nil set returned a task")
	}
}

func TestInteractionTypeString(t *testing.T) {
	if InteractionNormal.String() != "normal" || InteractionQuickScrub.String() != "quick-scrub" {
		t.Errorf("unexpected names: %q, %q", InteractionNormal, InteractionQuickScrub)
	}
}
