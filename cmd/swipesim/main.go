// Command swipesim drives the transition subsystem end to end from the
// command line: it builds a device profile, registers a container, and
// simulates a swipe-up or quick-scrub gesture against it, printing the
// state transitions and timeline values as the gesture progresses.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-drift/taskswitch/pkg/animation"
	"github.com/go-drift/taskswitch/pkg/device"
	"github.com/go-drift/taskswitch/pkg/dispatch"
	"github.com/go-drift/taskswitch/pkg/eventlog"
	"github.com/go-drift/taskswitch/pkg/geometry"
	"github.com/go-drift/taskswitch/pkg/overview"
	"github.com/go-drift/taskswitch/pkg/swipeup"
)

var log = logrus.New()

var (
	flagWidth       float64
	flagHeight      float64
	flagVerticalBar bool
	flagVisible     bool
	flagQuickScrub  bool
	flagCancelAt    float64
	flagSteps       int
	flagConfigDir   string
)

var rootCmd = &cobra.Command{
	Use:   "swipesim",
	Short: "Simulate task-switcher transition gestures",
	Long: `swipesim exercises the container transition subsystem without a real
display: it prepares a transition against the chosen container variant,
scrubs the produced animation controller, and commits or cancels it.`,
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Run a gesture against the home container",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHome()
	},
}

var fallbackCmd = &cobra.Command{
	Use:   "fallback",
	Short: "Run a gesture against the standalone fallback container",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFallback()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagWidth, "width", 1080, "display width in px")
	pf.Float64Var(&flagHeight, "height", 2160, "display height in px")
	pf.BoolVar(&flagVerticalBar, "vertical-bar", false, "use the vertical hotseat bar layout")
	pf.BoolVar(&flagVisible, "visible", false, "container is already visible when the gesture starts")
	pf.BoolVar(&flagQuickScrub, "quick-scrub", false, "run a quick-scrub instead of a normal swipe")
	pf.Float64Var(&flagCancelAt, "cancel-at", -1, "abandon the gesture at this fraction (negative commits)")
	pf.IntVar(&flagSteps, "steps", 10, "scrub steps")
	pf.StringVar(&flagConfigDir, "config-dir", ".", "directory holding taskswitch.yaml")

	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(fallbackCmd)
}

func setup() (device.Profile, device.Config, error) {
	dispatch.Register(func(cb func()) { cb() })

	cfg, err := device.LoadOptional(flagConfigDir)
	if err != nil {
		return device.Profile{}, cfg, err
	}
	p := device.Profile{
		WidthPx:                  flagWidth,
		HeightPx:                 flagHeight,
		AvailableHeightPx:        flagHeight - 80,
		Insets:                   device.EdgeInsets{Top: 80, Bottom: 48},
		HotseatBarSizePx:         220,
		TaskThumbnailTopMarginPx: 24,
		OverviewTaskMarginPx:     16,
		VerticalBarLayout:        flagVerticalBar,
	}
	return p, cfg, nil
}

func interaction() swipeup.InteractionType {
	if flagQuickScrub {
		return swipeup.InteractionQuickScrub
	}
	return swipeup.InteractionNormal
}

// driveController scrubs to the target fraction in steps, then commits
// the remaining motion on the frame clock or cancels.
func driveController(ctl *animation.PlaybackController) {
	if ctl == nil {
		log.Warn("no controller produced; nothing to animate")
		return
	}
	target := 1.0
	if flagCancelAt >= 0 && flagCancelAt < 1 {
		target = flagCancelAt
	}
	for i := 1; i <= flagSteps; i++ {
		f := target * float64(i) / float64(flagSteps)
		ctl.SetPlayFraction(f)
		log.WithField("fraction", fmt.Sprintf("%.2f", f)).Debug("scrub")
	}
	if flagCancelAt >= 0 {
		ctl.Cancel()
		return
	}
	ctl.Start()
	for ctl.IsPlaying() {
		animation.StepTickers()
		time.Sleep(16 * time.Millisecond)
	}
}

func runHome() error {
	p, cfg, err := setup()
	if err != nil {
		return err
	}

	registry := overview.NewRegistry[*overview.HomeContainer]()
	container := overview.NewHomeContainer(p, cfg)
	container.SetStarted(true)
	container.SetWindowFocus(flagVisible)
	registry.SetCreated(container, flagVisible)

	controls := swipeup.NewHomeControls(registry, cfg, eventlog.NewLogrusSink(log))
	container.StateManager().AddStateListener(func(from, to overview.UIState, animated, reapplied bool) {
		log.WithFields(logrus.Fields{
			"from": from.String(), "to": to.String(),
			"animated": animated, "reapplied": reapplied,
		}).Info("state transition")
	})

	gestureLog := eventlog.NewTouchInteractionLog(interaction().String())
	out := geometry.NewTransformedRect()
	length := controls.SwipeUpDestinationAndLength(p, interaction(), &out)
	log.WithFields(logrus.Fields{
		"dest":   fmt.Sprintf("%+v", out.Rect),
		"scale":  out.Scale,
		"length": length,
	}).Info("destination")

	if flagQuickScrub {
		controls.OnQuickInteractionStart(container, nil, flagVisible, gestureLog)
	}

	var ctl *animation.PlaybackController
	factory := controls.PrepareOverviewUI(container, flagVisible, true,
		func(c *animation.PlaybackController) { ctl = c })
	factory.CreateControllerForTransition(length, interaction())
	driveController(ctl)

	if flagCancelAt >= 0 {
		factory.OnTransitionCancelled()
	} else {
		controls.OnSwipeUpComplete(container)
	}
	gestureLog.SetContainerType(controls.ContainerType())
	eventlog.NewLogrusSink(log).LogInteraction(gestureLog)
	log.WithField("state", container.StateManager().State().String()).Info("settled")
	return nil
}

func runFallback() error {
	p, cfg, err := setup()
	if err != nil {
		return err
	}

	registry := overview.NewRegistry[*overview.StandaloneContainer]()
	container := overview.NewStandaloneContainer(p)
	container.SetWindowFocus(flagVisible)
	registry.SetCreated(container, false)

	controls := swipeup.NewFallbackControls("com.example.home", registry, cfg)
	gestureLog := eventlog.NewTouchInteractionLog(interaction().String())

	out := geometry.NewTransformedRect()
	length := controls.SwipeUpDestinationAndLength(p, interaction(), &out)
	log.WithFields(logrus.Fields{
		"dest":   fmt.Sprintf("%+v", out.Rect),
		"length": length,
	}).Info("destination")

	if flagQuickScrub {
		controls.OnQuickInteractionStart(container, nil, flagVisible, gestureLog)
	}

	var ctl *animation.PlaybackController
	factory := controls.PrepareOverviewUI(container, flagVisible, true,
		func(c *animation.PlaybackController) { ctl = c })

	// The remote transport would deliver this once the launch animation
	// is ready; simulate a home-animating transition.
	factory.OnRemoteAnimationReceived(&swipeup.RemoteTargetSet{
		Targets: []swipeup.RemoteTarget{
			{Kind: swipeup.SurfaceHome, Mode: swipeup.TargetOpening},
		},
	})
	driveController(ctl)

	gestureLog.SetContainerType(controls.ContainerType())
	eventlog.NewLogrusSink(log).LogInteraction(gestureLog)
	log.WithField("contentAlpha", container.OverviewPanel().ContentAlpha()).Info("settled")
	return nil
}

func main() {
	log.SetLevel(logrus.DebugLevel)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
