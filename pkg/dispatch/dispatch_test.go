package dispatch

import (
	"testing"
	"time"
)

func TestDispatchWithoutRegistration(t *testing.T) {
	ResetForTest()
	if Dispatch(func() { t.Error("callback must not run") }) {
		t.Error("Dispatch reported scheduled with no dispatcher")
	}
}

func TestDispatchRunsCallback(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)
	Register(func(cb func()) { cb() })

	ran := false
	if !Dispatch(func() { ran = true }) {
		t.Fatal("Dispatch reported not scheduled")
	}
	if !ran {
		t.Error("callback did not run")
	}
}

func TestDispatchNilCallback(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)
	Register(func(cb func()) { cb() })
	if Dispatch(nil) {
		t.Error("nil callback must not be scheduled")
	}
}

func TestPostDelayedUsesRegisteredScheduler(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var gotDelay time.Duration
	var pending func()
	RegisterDelayed(func(d time.Duration, cb func()) func() {
		gotDelay = d
		pending = cb
		return func() { pending = nil }
	})

	ran := false
	cancel := PostDelayed(250*time.Millisecond, func() { ran = true })
	if gotDelay != 250*time.Millisecond {
		t.Errorf("delay = %v, want 250ms", gotDelay)
	}
	if pending == nil {
		t.Fatal("callback not handed to scheduler")
	}
	pending()
	if !ran {
		t.Error("callback did not run when fired")
	}

	// Cancelling after the callback ran is a no-op.
	cancel()
}

func TestPostDelayedCancel(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var pending func()
	RegisterDelayed(func(d time.Duration, cb func()) func() {
		pending = cb
		return func() { pending = nil }
	})

	cancel := PostDelayed(time.Second, func() { t.Error("cancelled callback ran") })
	cancel()
	if pending != nil {
		t.Error("cancel did not clear the pending callback")
	}
}

func TestPostDelayedNilCallback(t *testing.T) {
	ResetForTest()
	cancel := PostDelayed(time.Second, nil)
	if cancel == nil {
		t.Fatal("PostDelayed returned nil cancel func")
	}
	cancel()
}
