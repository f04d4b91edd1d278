// Package device describes the metrics of the display the transition
// subsystem is laying out against, plus the optional tunable configuration
// loaded from taskswitch.yaml.
package device

import "github.com/go-drift/taskswitch/pkg/geometry"

// EdgeInsets are the system insets (status bar, navigation bar, cutouts)
// in pixels.
type EdgeInsets struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Profile holds the device metrics consumed by destination and length
// computations. A profile is immutable for the duration of a gesture.
type Profile struct {
	// WidthPx and HeightPx are the full display dimensions.
	WidthPx  float64 `yaml:"widthPx"`
	HeightPx float64 `yaml:"heightPx"`

	// AvailableHeightPx is the height available to content, excluding
	// persistent system surfaces.
	AvailableHeightPx float64 `yaml:"availableHeightPx"`

	// Insets are the current system insets.
	Insets EdgeInsets `yaml:"insets"`

	// HotseatBarSizePx is the size of the hotseat bar along its axis.
	HotseatBarSizePx float64 `yaml:"hotseatBarSizePx"`

	// TaskThumbnailTopMarginPx is the gap above a task thumbnail inside
	// its overview card.
	TaskThumbnailTopMarginPx float64 `yaml:"taskThumbnailTopMarginPx"`

	// OverviewTaskMarginPx is the margin around overview task cards.
	OverviewTaskMarginPx float64 `yaml:"overviewTaskMarginPx"`

	// VerticalBarLayout is true when the hotseat is laid out as a vertical
	// bar on one edge (landscape phones).
	VerticalBarLayout bool `yaml:"verticalBarLayout"`

	// Seascape is true for the reverse-landscape rotation, which places
	// the vertical bar on the left edge.
	Seascape bool `yaml:"seascape"`
}

// Bounds returns the full display rectangle.
func (p Profile) Bounds() geometry.Rect {
	return geometry.RectFromLTWH(0, 0, p.WidthPx, p.HeightPx)
}

// MaxDimension returns the larger of the display dimensions.
func (p Profile) MaxDimension() float64 {
	if p.WidthPx > p.HeightPx {
		return p.WidthPx
	}
	return p.HeightPx
}

// HotseatInset returns the inset on the edge the vertical hotseat bar
// occupies. Only meaningful when VerticalBarLayout is true.
func (p Profile) HotseatInset() float64 {
	if p.Seascape {
		return p.Insets.Left
	}
	return p.Insets.Right
}
