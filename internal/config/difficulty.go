package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PresetForDifficulty returns the board preset name a difficulty maps to.
func PresetForDifficulty(d DifficultyPreset) (string, error) {
	switch d {
	case DifficultyEasy:
		return "beginner", nil
	case DifficultyNormal:
		return "intermediate", nil
	case DifficultyHard:
		return "expert", nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", d)
	}
}

// ApplyDifficulty makes the preset for the given difficulty the default.
// An empty difficulty leaves the config unchanged.
func ApplyDifficulty(cfg *MinesConfig, d DifficultyPreset) error {
	if d == "" {
		return nil
	}
	name, err := PresetForDifficulty(d)
	if err != nil {
		return err
	}
	if _, ok := cfg.Preset(name); !ok {
		return fmt.Errorf("config: difficulty %q needs preset %q", d, name)
	}
	cfg.DefaultPreset = name
	return nil
}
