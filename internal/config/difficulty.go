package config

// DifficultyPreset represents a named difficulty level.
// Presets only tune how often adversaries move; there is no progression.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Valid reports whether the preset is known.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ThresholdForPreset returns the adversary move threshold for a preset.
// Normal keeps the configured value.
func ThresholdForPreset(preset DifficultyPreset, configured int) int {
	switch preset {
	case DifficultyEasy:
		return configured + configured/3
	case DifficultyHard:
		return max(1, configured-configured/3)
	default:
		return configured
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset
}

// EffectiveThreshold returns the adversary move threshold after applying
// the config's difficulty.
func (c PacmanConfig) EffectiveThreshold() int {
	return ThresholdForPreset(c.Difficulty, c.Adversaries.MoveThreshold)
}
