package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMines loads the minesweeper configuration.
// Search order: customPath -> ~/.tui-mines/configs/mines.yaml -> ./configs/mines.yaml -> embedded default
func LoadMines(customPath string) (MinesConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readMines(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Broken files there are skipped rather than blocking the game.
	for _, path := range []string{userConfigPath("mines.yaml"), filepath.Join("configs", "mines.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := readMines(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg MinesConfig
	if err := yaml.Unmarshal(defaultMinesYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultMinesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readMines(path string) (MinesConfig, error) {
	var cfg MinesConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-mines", "configs", filename)
}
