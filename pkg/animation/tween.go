package animation

import "github.com/go-drift/taskswitch/pkg/geometry"

// Tween interpolates between Begin and End values based on playback
// progress. It maps the 0-1 range of a [PlaybackController] to any value
// range or type. Use the helper constructors ([TweenFloat64],
// [TweenOffset], [TweenRect]) for common types, or create custom tweens
// with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the controller's current
// play fraction.
func (tw *Tween[T]) Transform(controller *PlaybackController) T {
	return tw.Evaluate(controller.ProgressFraction())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b geometry.Offset, t float64) geometry.Offset {
	return geometry.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpRect linearly interpolates each edge of two rectangles.
func LerpRect(a, b geometry.Rect, t float64) geometry.Rect {
	return geometry.Rect{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end geometry.Offset) *Tween[geometry.Offset] {
	return &Tween[geometry.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// TweenRect creates a tween for Rect values.
func TweenRect(begin, end geometry.Rect) *Tween[geometry.Rect] {
	return &Tween[geometry.Rect]{Begin: begin, End: end, Lerp: LerpRect}
}
