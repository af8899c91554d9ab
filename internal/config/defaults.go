package config

import (
	_ "embed"
)

//go:embed defaults/twenty48.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Board: Board{
			Size: 4,
		},
		Spawn: Spawn{
			FourProbability: 0.10,
		},
	}
}
