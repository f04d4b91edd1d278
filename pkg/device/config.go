package device

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-installation tuning file.
const ConfigFileName = "taskswitch.yaml"

// Config represents the optional taskswitch.yaml configuration. Every
// field has a working default; the file only needs to name the values it
// overrides.
type Config struct {
	// OverviewTransitionMS is the duration of the overview enter
	// transition, in milliseconds. The fallback container also uses it as
	// the delay before announcing a quick-scrub transition finished.
	OverviewTransitionMS int `yaml:"overviewTransitionMs"`

	// QuickScrubTranslationFactor scales the vertical offset applied to
	// the quick-scrub destination on the primary container.
	QuickScrubTranslationFactor float64 `yaml:"quickScrubTranslationFactor"`

	// FastOverviewScale is the content scale applied in the fast overview
	// presentation.
	FastOverviewScale float64 `yaml:"fastOverviewScale"`

	// Fallback tunes the standalone container's policy answers.
	Fallback FallbackPolicy `yaml:"fallback"`
}

// FallbackPolicy holds the standalone container's approximated policy
// answers. The correct values depend on window bounds the standalone
// container cannot observe yet, so they stay configurable rather than
// hard-coded.
type FallbackPolicy struct {
	// UseTargetBounds makes overview window bounds come from the remote
	// animation target instead of the home bounds.
	UseTargetBounds bool `yaml:"useTargetBounds"`

	// MinimizeSplitScreen reports whether split screen should be
	// minimized while the gesture runs.
	MinimizeSplitScreen bool `yaml:"minimizeSplitScreen"`
}

// DefaultConfig returns the built-in tuning values.
func DefaultConfig() Config {
	return Config{
		OverviewTransitionMS:        250,
		QuickScrubTranslationFactor: 0.25,
		FastOverviewScale:           0.92,
		Fallback: FallbackPolicy{
			UseTargetBounds:     true,
			MinimizeSplitScreen: false,
		},
	}
}

// OverviewTransition returns the overview transition duration.
func (c Config) OverviewTransition() time.Duration {
	return time.Duration(c.OverviewTransitionMS) * time.Millisecond
}

// LoadOptional reads taskswitch.yaml from dir if present. A missing file
// yields the defaults; a malformed file is an error.
func LoadOptional(dir string) (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	return cfg.normalized(), nil
}

// normalized clamps nonsense values back to defaults so a partial or
// sloppy file cannot produce a zero-length transition.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.OverviewTransitionMS <= 0 {
		c.OverviewTransitionMS = def.OverviewTransitionMS
	}
	if c.FastOverviewScale <= 0 || c.FastOverviewScale > 1 {
		c.FastOverviewScale = def.FastOverviewScale
	}
	if c.QuickScrubTranslationFactor < 0 {
		c.QuickScrubTranslationFactor = def.QuickScrubTranslationFactor
	}
	return c
}
