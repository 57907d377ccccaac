package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the built-in configuration.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		DefaultPreset: "classic",
		Presets: []BoardPreset{
			{Name: "classic", Title: "Classic", Rows: 10, Columns: 10, Mines: 10},
			{Name: "beginner", Title: "Beginner", Rows: 9, Columns: 9, Mines: 10},
			{Name: "intermediate", Title: "Intermediate", Rows: 16, Columns: 16, Mines: 40},
			{Name: "expert", Title: "Expert", Rows: 16, Columns: 30, Mines: 99},
		},
		Display: DisplayConfig{
			ShowTimer:         true,
			RevealMinesOnLoss: true,
			CellWidth:         2,
		},
	}
}
