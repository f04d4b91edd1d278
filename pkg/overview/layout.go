package overview

import (
	"github.com/go-drift/taskswitch/pkg/device"
	"github.com/go-drift/taskswitch/pkg/geometry"
)

// HomeTaskSize computes the settled overview card rect for the home
// container: the display inset by system insets, with room left for the
// shelf along the hotseat edge, holding a centered rect that preserves
// the display aspect ratio.
func HomeTaskSize(p device.Profile) geometry.Rect {
	avail := p.Bounds().Inset(
		p.Insets.Left, p.Insets.Top, p.Insets.Right, p.Insets.Bottom)

	if p.VerticalBarLayout {
		if p.Seascape {
			avail = avail.Inset(p.HotseatBarSizePx, 0, 0, 0)
		} else {
			avail = avail.Inset(0, 0, p.HotseatBarSizePx, 0)
		}
	} else {
		avail = avail.Inset(0, 0, 0, p.HotseatBarSizePx+p.OverviewTaskMarginPx)
	}
	avail = avail.Inset(
		p.OverviewTaskMarginPx,
		p.TaskThumbnailTopMarginPx+p.OverviewTaskMarginPx,
		p.OverviewTaskMarginPx,
		0)

	return fitDisplayAspect(p, avail)
}

// FallbackTaskSize computes the settled overview card rect for the
// standalone container: centered in the inset display with a uniform
// margin, no shelf.
func FallbackTaskSize(p device.Profile) geometry.Rect {
	avail := p.Bounds().Inset(
		p.Insets.Left+p.OverviewTaskMarginPx,
		p.Insets.Top+p.OverviewTaskMarginPx,
		p.Insets.Right+p.OverviewTaskMarginPx,
		p.Insets.Bottom+p.OverviewTaskMarginPx)
	return fitDisplayAspect(p, avail)
}

// ShelfTrackingDistance is the vertical distance a swipe must travel to
// track the shelf into its overview position.
func ShelfTrackingDistance(p device.Profile) float64 {
	return p.HotseatBarSizePx + p.Insets.Bottom + p.OverviewTaskMarginPx
}

// fitDisplayAspect centers the largest rect with the display's aspect
// ratio inside avail, anchored to the top.
func fitDisplayAspect(p device.Profile, avail geometry.Rect) geometry.Rect {
	if avail.IsEmpty() || p.WidthPx <= 0 || p.HeightPx <= 0 {
		return geometry.Rect{}
	}
	aspect := p.WidthPx / p.HeightPx
	width := avail.Width()
	height := width / aspect
	if height > avail.Height() {
		height = avail.Height()
		width = height * aspect
	}
	left := avail.Left + (avail.Width()-width)/2
	return geometry.RectFromLTWH(left, avail.Top, width, height)
}
