package gesture

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Options holds the recognition thresholds and feature flags.
type Options struct {
	TapThreshold      float64       // max displacement in pixels for a tap
	SwipeThreshold    float64       // min displacement in pixels for a swipe
	LongPressDuration time.Duration // hold time before a long press fires
	DoubleTapWindow   time.Duration // max gap between taps for a double tap
	PinchEnabled      bool
	RotateEnabled     bool
}

// DefaultOptions returns the standard thresholds: 10px tap, 30px swipe,
// 500ms long press, 300ms double-tap window, pinch and rotate enabled.
func DefaultOptions() Options {
	return Options{
		TapThreshold:      10,
		SwipeThreshold:    30,
		LongPressDuration: 500 * time.Millisecond,
		DoubleTapWindow:   300 * time.Millisecond,
		PinchEnabled:      true,
		RotateEnabled:     true,
	}
}

// optionsFile is the on-disk YAML shape. Durations are plain millisecond
// integers; pointers distinguish an absent key from an explicit zero.
type optionsFile struct {
	TapThresholdPx   *float64 `yaml:"tap_threshold_px"`
	SwipeThresholdPx *float64 `yaml:"swipe_threshold_px"`
	LongPressMs      *int     `yaml:"long_press_ms"`
	DoubleTapMs      *int     `yaml:"double_tap_ms"`
	PinchEnabled     *bool    `yaml:"pinch_enabled"`
	RotateEnabled    *bool    `yaml:"rotate_enabled"`
}

// LoadOptions reads Options from a YAML file. Keys absent from the file
// keep their default values.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}

	var file optionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Options{}, fmt.Errorf("parsing gesture options: %w", err)
	}

	opts := DefaultOptions()
	if file.TapThresholdPx != nil {
		opts.TapThreshold = *file.TapThresholdPx
	}
	if file.SwipeThresholdPx != nil {
		opts.SwipeThreshold = *file.SwipeThresholdPx
	}
	if file.LongPressMs != nil {
		opts.LongPressDuration = time.Duration(*file.LongPressMs) * time.Millisecond
	}
	if file.DoubleTapMs != nil {
		opts.DoubleTapWindow = time.Duration(*file.DoubleTapMs) * time.Millisecond
	}
	if file.PinchEnabled != nil {
		opts.PinchEnabled = *file.PinchEnabled
	}
	if file.RotateEnabled != nil {
		opts.RotateEnabled = *file.RotateEnabled
	}
	return opts, nil
}
