// Package dispatch schedules callbacks on the UI thread.
//
// The transition subsystem is single-threaded: every contract operation
// runs on the UI thread and completes synchronously except for explicit
// deferred-callback points, which go through [Dispatch] or [PostDelayed].
// The host registers its main-loop scheduler once at startup; tests
// install a synchronous dispatcher.
package dispatch

import (
	"sync"
	"time"
)

var (
	mu           sync.RWMutex
	dispatchFunc func(callback func())
	delayFunc    func(d time.Duration, callback func()) func()
)

// Register sets the function used to schedule callbacks on the UI thread.
// This should be called once by the host during initialization.
func Register(fn func(callback func())) {
	mu.Lock()
	dispatchFunc = fn
	mu.Unlock()
}

// RegisterDelayed sets the function used to schedule delayed callbacks.
// When unset, PostDelayed falls back to time.AfterFunc feeding Dispatch.
// The returned function cancels the pending callback.
func RegisterDelayed(fn func(d time.Duration, callback func()) func()) {
	mu.Lock()
	delayFunc = fn
	mu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread. Returns true if
// the callback was scheduled, false if no dispatcher is registered or the
// callback is nil.
func Dispatch(callback func()) bool {
	mu.RLock()
	fn := dispatchFunc
	mu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// PostDelayed schedules a callback on the UI thread after the given delay.
// The returned function cancels the pending callback; cancelling after the
// callback ran is a no-op.
func PostDelayed(d time.Duration, callback func()) func() {
	if callback == nil {
		return func() {}
	}
	mu.RLock()
	fn := delayFunc
	mu.RUnlock()
	if fn != nil {
		return fn(d, callback)
	}
	timer := time.AfterFunc(d, func() {
		Dispatch(callback)
	})
	return func() { timer.Stop() }
}

// ResetForTest clears the registered dispatchers. Tests that install a
// dispatcher should defer this to avoid leaking into other tests.
func ResetForTest() {
	mu.Lock()
	dispatchFunc = nil
	delayFunc = nil
	mu.Unlock()
}
