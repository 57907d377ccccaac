// Package config provides YAML-based game configuration loading and
// difficulty presets for the minesweeper.
package config

import (
	"errors"
	"fmt"
)

// MinesConfig contains all configuration for the minesweeper.
type MinesConfig struct {
	DefaultPreset string        `yaml:"default_preset"`
	Presets       []BoardPreset `yaml:"presets"`
	Display       DisplayConfig `yaml:"display"`
}

// BoardPreset is a named board size.
type BoardPreset struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
	Mines   int    `yaml:"mines"`
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	ShowTimer         bool `yaml:"show_timer"`
	RevealMinesOnLoss bool `yaml:"reveal_mines_on_loss"`
	CellWidth         int  `yaml:"cell_width"` // Characters per cell (1-3)
}

// Validate checks that every preset describes a playable board.
func (c MinesConfig) Validate() error {
	if len(c.Presets) == 0 {
		return errors.New("config: no board presets")
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.Name == "" {
			return errors.New("config: preset without a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("config: duplicate preset %q", p.Name)
		}
		seen[p.Name] = true

		if p.Rows <= 0 || p.Columns <= 0 {
			return fmt.Errorf("config: preset %q has invalid size %dx%d", p.Name, p.Rows, p.Columns)
		}
		if p.Mines < 0 || p.Mines > p.Rows*p.Columns {
			return fmt.Errorf("config: preset %q has %d mines for %d cells", p.Name, p.Mines, p.Rows*p.Columns)
		}
	}

	if c.DefaultPreset != "" && !seen[c.DefaultPreset] {
		return fmt.Errorf("config: default preset %q is not defined", c.DefaultPreset)
	}
	if c.Display.CellWidth < 0 || c.Display.CellWidth > 3 {
		return fmt.Errorf("config: cell width %d out of range 1-3", c.Display.CellWidth)
	}
	return nil
}

// Preset returns the preset with the given name.
func (c MinesConfig) Preset(name string) (BoardPreset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return BoardPreset{}, false
}

// Default returns the default preset, or the first one if none is set.
func (c MinesConfig) Default() BoardPreset {
	if p, ok := c.Preset(c.DefaultPreset); ok {
		return p
	}
	if len(c.Presets) > 0 {
		return c.Presets[0]
	}
	return DefaultMinesConfig().Presets[0]
}
