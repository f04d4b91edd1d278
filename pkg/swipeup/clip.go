package swipeup

import (
	"github.com/go-drift/taskswitch/pkg/geometry"
	"github.com/go-drift/taskswitch/pkg/overview"
)

// ClipTransform captures the source and target rectangles of the
// scale-down sub-animation: the running task's on-screen thumbnail and
// its eventual overview card position.
type ClipTransform struct {
	source geometry.Rect
	target geometry.Rect
}

// ClipTransformFromTask computes the transform for the view's focused
// task under the destination view scale. Returns a transform with empty
// rects when there is no focused task.
func ClipTransformFromTask(view *overview.TaskListView, destinationScale float64) ClipTransform {
	card, ok := view.TaskAt(view.CurrentPage())
	if !ok {
		return ClipTransform{}
	}
	return ClipTransform{
		source: card.ThumbnailRect,
		target: view.TaskThumbnailRect(card, destinationScale),
	}
}

// SourceRect returns the thumbnail's current on-screen rect.
func (c ClipTransform) SourceRect() geometry.Rect {
	return c.source
}

// TargetRect returns the thumbnail's settled overview rect.
func (c ClipTransform) TargetRect() geometry.Rect {
	return c.target
}

// Degenerate reports whether either rect is empty, in which case the
// scale-down sub-animation is skipped.
func (c ClipTransform) Degenerate() bool {
	return c.source.IsEmpty() || c.target.IsEmpty()
}

// FromScale returns the view scale that makes the target rect cover the
// source rect.
func (c ClipTransform) FromScale() float64 {
	return c.source.Width() / c.target.Width()
}

// FromTranslationY returns the vertical offset between the source and
// target centers.
func (c ClipTransform) FromTranslationY() float64 {
	return c.source.Center().Y - c.target.Center().Y
}
