// Package config provides YAML-based configuration loading and validation
// for cliotris.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/cliotris/internal/gesture"
)

// Config is the complete cliotris configuration.
type Config struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Gesture GestureConfig `yaml:"gesture"`
	Rules   RulesConfig   `yaml:"rules"`
	Render  RenderConfig  `yaml:"render"`
	Audio   AudioConfig   `yaml:"audio"`
}

// SpawnConfig controls the piece generator.
type SpawnConfig struct {
	SpecialChance float64 `yaml:"special_chance"` // probability that a new piece is the pink wipe piece
}

// GestureConfig holds the rub detector thresholds.
type GestureConfig struct {
	Pointer PointerGesture `yaml:"pointer"`
	Wheel   WheelGesture   `yaml:"wheel"`
}

// PointerGesture defines drag-based rub thresholds.
type PointerGesture struct {
	SignChanges int `yaml:"sign_changes"`
	WindowMS    int `yaml:"window_ms"`
	MinMovePX   int `yaml:"min_move_px"`
}

// WheelGesture defines wheel-based rub thresholds.
type WheelGesture struct {
	SignChanges int `yaml:"sign_changes"`
	WindowMS    int `yaml:"window_ms"`
	MinSamples  int `yaml:"min_samples"`
}

// Lock overflow policies.
const (
	LockOverflowDiscard  = "discard"
	LockOverflowGameOver = "game_over"
)

// RulesConfig holds rule variations.
type RulesConfig struct {
	LockOverflow string `yaml:"lock_overflow"`
}

// RenderConfig defines how the board maps to pixels.
type RenderConfig struct {
	CellPX int `yaml:"cell_px"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Thresholds converts the gesture section into detector thresholds.
func (c Config) Thresholds() gesture.Config {
	return gesture.Config{
		Pointer: gesture.PointerConfig{
			SignChanges: c.Gesture.Pointer.SignChanges,
			Window:      time.Duration(c.Gesture.Pointer.WindowMS) * time.Millisecond,
			MinMove:     c.Gesture.Pointer.MinMovePX,
		},
		Wheel: gesture.WheelConfig{
			SignChanges: c.Gesture.Wheel.SignChanges,
			Window:      time.Duration(c.Gesture.Wheel.WindowMS) * time.Millisecond,
			MinSamples:  c.Gesture.Wheel.MinSamples,
		},
	}
}

// ValidationError describes a configuration value outside its contract.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks every value against its allowed range.
// It returns the first ValidationError found.
func (c Config) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{c.Spawn.SpecialChance >= 0 && c.Spawn.SpecialChance <= 1,
			"spawn.special_chance", "must be between 0 and 1"},
		{c.Gesture.Pointer.SignChanges >= 1,
			"gesture.pointer.sign_changes", "must be at least 1"},
		{c.Gesture.Pointer.WindowMS > 0,
			"gesture.pointer.window_ms", "must be positive"},
		{c.Gesture.Pointer.MinMovePX >= 0,
			"gesture.pointer.min_move_px", "must not be negative"},
		{c.Gesture.Wheel.SignChanges >= 1,
			"gesture.wheel.sign_changes", "must be at least 1"},
		{c.Gesture.Wheel.WindowMS > 0,
			"gesture.wheel.window_ms", "must be positive"},
		{c.Gesture.Wheel.MinSamples > c.Gesture.Wheel.SignChanges,
			"gesture.wheel.min_samples", "must exceed gesture.wheel.sign_changes"},
		{c.Rules.LockOverflow == LockOverflowDiscard || c.Rules.LockOverflow == LockOverflowGameOver,
			"rules.lock_overflow", fmt.Sprintf("must be %q or %q", LockOverflowDiscard, LockOverflowGameOver)},
		{c.Render.CellPX >= 4,
			"render.cell_px", "must be at least 4"},
		{c.Audio.Volume >= 0 && c.Audio.Volume <= 1,
			"audio.volume", "must be between 0 and 1"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return ValidationError{Field: chk.field, Message: chk.message}
		}
	}
	return nil
}
