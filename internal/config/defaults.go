package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the hardcoded default configuration.
// It mirrors defaults/pacman.yaml.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Map: MapConfig{
			ID: "classic",
		},
		Player: PlayerConfig{
			MoveEveryFrames:  8,
			FallbackSpawn:    PointConfig{X: 1, Y: 1},
			HoldBlockedTurns: false,
			MouthPeriodMs:    100,
		},
		Adversaries: AdversaryConfig{
			MoveThreshold: 15,
			Palette:       []string{"red", "pink", "cyan", "orange"},
		},
		Scoring: ScoringConfig{
			PelletPoints: 10,
		},
		Sound: SoundConfig{
			Enabled:    false,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPacmanYAML
}
