// Package geometry provides the rectangle and point value types shared by
// the transition subsystem. All coordinates are in pixels.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if either dimension is not positive.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Inset returns the rectangle shrunk by the given amounts on each side.
// Negative values grow the rectangle.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{
		Left:   r.Left + left,
		Top:    r.Top + top,
		Right:  r.Right - right,
		Bottom: r.Bottom - bottom,
	}
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// ScaleAbout returns the rectangle scaled uniformly about a pivot point.
func (r Rect) ScaleAbout(pivot Offset, scale float64) Rect {
	return Rect{
		Left:   pivot.X + (r.Left-pivot.X)*scale,
		Top:    pivot.Y + (r.Top-pivot.Y)*scale,
		Right:  pivot.X + (r.Right-pivot.X)*scale,
		Bottom: pivot.Y + (r.Bottom-pivot.Y)*scale,
	}
}

// ApproxEqual returns true if the two rectangles match within tolerance.
func (r Rect) ApproxEqual(other Rect) bool {
	return floatEqual(r.Left, other.Left) &&
		floatEqual(r.Top, other.Top) &&
		floatEqual(r.Right, other.Right) &&
		floatEqual(r.Bottom, other.Bottom)
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// TransformedRect is a destination region for a transition: an axis-aligned
// rectangle plus the uniform scale applied to content placed inside it.
type TransformedRect struct {
	Rect  Rect
	Scale float64
}

// NewTransformedRect returns a TransformedRect with the identity scale.
func NewTransformedRect() TransformedRect {
	return TransformedRect{Scale: 1}
}
