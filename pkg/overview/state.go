// Package overview models the two host containers the transition
// subsystem drives: the home container with its persistent named-state
// manager, and the standalone container whose presentation is
// alpha-driven. It also owns the shared overview content view and the
// process-wide container registries.
package overview

import (
	"fmt"

	"github.com/go-drift/taskswitch/pkg/device"
	"github.com/go-drift/taskswitch/pkg/eventlog"
)

// UIState is a named logical state of the home container. Exactly one
// state is current at any time; transitions are always explicit.
type UIState int

const (
	// StateNormal is the resting workspace presentation.
	StateNormal UIState = iota
	// StateBackgroundApp is the presentation while an app covers the
	// container.
	StateBackgroundApp
	// StateOverview is the task-switcher presentation.
	StateOverview
	// StateFastOverview is the quick-scrub task-switcher presentation.
	StateFastOverview
	// StateAllApps is the fully-expanded app drawer, reachable by a long
	// swipe past overview.
	StateAllApps
)

func (s UIState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateBackgroundApp:
		return "background-app"
	case StateOverview:
		return "overview"
	case StateFastOverview:
		return "fast-overview"
	case StateAllApps:
		return "all-apps"
	default:
		return fmt.Sprintf("UIState(%d)", int(s))
	}
}

// OverviewUI returns true for states that show the task switcher.
func (s UIState) OverviewUI() bool {
	return s == StateOverview || s == StateFastOverview
}

// DisableRestore returns true for states that must not be restored after
// the gesture ends; the state manager substitutes its rest state.
func (s UIState) DisableRestore() bool {
	return s == StateBackgroundApp || s == StateFastOverview
}

// VerticalProgress returns the all-apps vertical progress for the state:
// 1 when the drawer is fully hidden, 0 when fully expanded. Overview
// states leave room for the shelf to peek.
func (s UIState) VerticalProgress(p device.Profile) float64 {
	switch s {
	case StateAllApps:
		return 0
	case StateOverview, StateFastOverview:
		if p.AvailableHeightPx <= 0 {
			return 1
		}
		shelf := (p.HotseatBarSizePx + p.Insets.Bottom) / p.AvailableHeightPx
		if shelf > 1 {
			shelf = 1
		}
		return 1 - shelf
	default:
		return 1
	}
}

// OverviewScale returns the content scale the overview panel settles at
// in this state.
func (s UIState) OverviewScale(cfg device.Config) float64 {
	if s == StateFastOverview {
		return cfg.FastOverviewScale
	}
	return 1
}

// ContainerType maps the state to the value supplied to the logging sink.
func (s UIState) ContainerType() eventlog.ContainerType {
	switch s {
	case StateOverview:
		return eventlog.ContainerOverview
	case StateFastOverview:
		return eventlog.ContainerFastOverview
	case StateBackgroundApp:
		return eventlog.ContainerApp
	default:
		return eventlog.ContainerWorkspace
	}
}
