package config

import (
	_ "embed"
)

//go:embed defaults/linkfall.yaml
var defaultLinkfallYAML []byte

// DefaultLinkfallConfig returns the hardcoded default configuration.
// It matches defaults/linkfall.yaml.
func DefaultLinkfallConfig() LinkfallConfig {
	return LinkfallConfig{
		Boards: map[string]BoardConfig{
			"linkfall":      {Width: 10, Height: 15},
			"linkfall_wide": {Width: 16, Height: 15},
		},
		Piece: PieceConfig{
			FallSpeed: 2.4,
		},
		Targets: TargetConfig{
			Count:       2,
			MaxAttempts: 10000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLinkfallYAML
}
