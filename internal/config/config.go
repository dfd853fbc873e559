// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// PacmanConfig contains all configuration for the game.
type PacmanConfig struct {
	Map         MapConfig        `yaml:"map"`
	Player      PlayerConfig     `yaml:"player"`
	Adversaries AdversaryConfig  `yaml:"adversaries"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Sound       SoundConfig      `yaml:"sound"`
	Difficulty  DifficultyPreset `yaml:"difficulty"`
}

// MapConfig selects the maze.
type MapConfig struct {
	ID   string `yaml:"id"`
	File string `yaml:"file"`
}

// PlayerConfig defines player movement parameters.
type PlayerConfig struct {
	MoveEveryFrames  int         `yaml:"move_every_frames"`
	FallbackSpawn    PointConfig `yaml:"fallback_spawn"`
	HoldBlockedTurns bool        `yaml:"hold_blocked_turns"`
	MouthPeriodMs    int         `yaml:"mouth_period_ms"`
}

// PointConfig is a grid coordinate in YAML.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts to a core.Point.
func (p PointConfig) Point() core.Point {
	return core.Pt(p.X, p.Y)
}

// AdversaryConfig defines adversary parameters.
type AdversaryConfig struct {
	MoveThreshold int      `yaml:"move_threshold"`
	Palette       []string `yaml:"palette"`
}

// Colors resolves the palette names. Unknown names are reported as an error.
func (a AdversaryConfig) Colors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(a.Palette))
	for _, name := range a.Palette {
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown palette color %q", name)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	PelletPoints int `yaml:"pellet_points"`
}

// SoundConfig controls the optional sound effects.
type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// Validate fills zero or out-of-range values from the defaults and checks
// the palette.
func (c *PacmanConfig) Validate() error {
	def := DefaultPacmanConfig()

	if c.Map.ID == "" && c.Map.File == "" {
		c.Map.ID = def.Map.ID
	}
	if c.Player.MoveEveryFrames <= 0 {
		c.Player.MoveEveryFrames = def.Player.MoveEveryFrames
	}
	if c.Player.MouthPeriodMs <= 0 {
		c.Player.MouthPeriodMs = def.Player.MouthPeriodMs
	}
	if c.Adversaries.MoveThreshold <= 0 {
		c.Adversaries.MoveThreshold = def.Adversaries.MoveThreshold
	}
	if len(c.Adversaries.Palette) == 0 {
		c.Adversaries.Palette = def.Adversaries.Palette
	}
	if c.Scoring.PelletPoints <= 0 {
		c.Scoring.PelletPoints = def.Scoring.PelletPoints
	}
	if c.Sound.SampleRate <= 0 {
		c.Sound.SampleRate = def.Sound.SampleRate
	}
	c.Sound.Volume = core.ClampF(c.Sound.Volume, 0, 1)
	if c.Difficulty == "" {
		c.Difficulty = def.Difficulty
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("config: unknown difficulty %q", c.Difficulty)
	}

	_, err := c.Adversaries.Colors()
	return err
}
