package overview

import (
	"testing"

	"github.com/go-drift/taskswitch/pkg/device"
	"github.com/go-drift/taskswitch/pkg/eventlog"
)

func testProfile() device.Profile {
	return device.Profile{
		WidthPx:                  1080,
		HeightPx:                 2160,
		AvailableHeightPx:        2080,
		Insets:                   device.EdgeInsets{Top: 80, Bottom: 48},
		HotseatBarSizePx:         220,
		TaskThumbnailTopMarginPx: 24,
		OverviewTaskMarginPx:     16,
	}
}

func testConfig() device.Config {
	return device.DefaultConfig()
}

func testLandscapeProfile() device.Profile {
	p := testProfile()
	p.WidthPx, p.HeightPx = p.HeightPx, p.WidthPx
	p.AvailableHeightPx = p.HeightPx
	p.Insets = device.EdgeInsets{Top: 48, Right: 64}
	p.VerticalBarLayout = true
	return p
}

func TestStateOverviewUI(t *testing.T) {
	for _, s := range []UIState{StateOverview, StateFastOverview} {
		if !s.OverviewUI() {
			t.Errorf("%v should be an overview state", s)
		}
	}
	for _, s := range []UIState{StateNormal, StateBackgroundApp, StateAllApps} {
		if s.OverviewUI() {
			t.Errorf("%v should not be an overview state", s)
		}
	}
}

func TestStateDisableRestore(t *testing.T) {
	for _, s := range []UIState{StateBackgroundApp, StateFastOverview} {
		if !s.DisableRestore() {
			t.Errorf("%v should disable restore", s)
		}
	}
	for _, s := range []UIState{StateNormal, StateOverview, StateAllApps} {
		if s.DisableRestore() {
			t.Errorf("%v should be restorable", s)
		}
	}
}

func TestStateVerticalProgress(t *testing.T) {
	p := testProfile()

	if got := StateAllApps.VerticalProgress(p); got != 0 {
		t.Errorf("all-apps progress = %v, want 0", got)
	}
	if got := StateNormal.VerticalProgress(p); got != 1 {
		t.Errorf("normal progress = %v, want 1", got)
	}

	// Overview leaves room for the shelf to peek.
	got := StateOverview.VerticalProgress(p)
	want := 1 - (p.HotseatBarSizePx+p.Insets.Bottom)/p.AvailableHeightPx
	if got != want {
		t.Errorf("overview progress = %v, want %v", got, want)
	}
	if got <= 0 || got >= 1 {
		t.Errorf("overview progress %v should sit strictly between 0 and 1", got)
	}
	if fast := StateFastOverview.VerticalProgress(p); fast != got {
		t.Errorf("fast overview progress %v should match overview %v", fast, got)
	}

	// Degenerate profiles must not divide by zero.
	var zero device.Profile
	if got := StateOverview.VerticalProgress(zero); got != 1 {
		t.Errorf("zero profile progress = %v, want 1", got)
	}
}

func TestStateOverviewScale(t *testing.T) {
	cfg := device.DefaultConfig()
	if got := StateFastOverview.OverviewScale(cfg); got != cfg.FastOverviewScale {
		t.Errorf("fast overview scale = %v, want %v", got, cfg.FastOverviewScale)
	}
	if got := StateOverview.OverviewScale(cfg); got != 1 {
		t.Errorf("overview scale = %v, want 1", got)
	}
}

func TestStateContainerType(t *testing.T) {
	cases := map[UIState]eventlog.ContainerType{
		StateNormal:        eventlog.ContainerWorkspace,
		StateAllApps:       eventlog.ContainerWorkspace,
		StateBackgroundApp: eventlog.ContainerApp,
		StateOverview:      eventlog.ContainerOverview,
		StateFastOverview:  eventlog.ContainerFastOverview,
	}
	for s, want := range cases {
		if got := s.ContainerType(); got != want {
			t.Errorf("%v.ContainerType() = %v, want %v", s, got, want)
		}
	}
}
