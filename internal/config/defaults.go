package config

import (
	_ "embed"
)

//go:embed defaults/cliotris.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			SpecialChance: 0.12,
		},
		Gesture: GestureConfig{
			Pointer: PointerGesture{
				SignChanges: 4,
				WindowMS:    800,
				MinMovePX:   6,
			},
			Wheel: WheelGesture{
				SignChanges: 4,
				WindowMS:    600,
				MinSamples:  6,
			},
		},
		Rules: RulesConfig{
			LockOverflow: LockOverflowDiscard,
		},
		Render: RenderConfig{
			CellPX: 24,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
