// Package config provides YAML-based configuration loading for twenty48.
package config

import "fmt"

// Config contains all configuration for the game.
type Config struct {
	Board Board `yaml:"board"`
	Spawn Spawn `yaml:"spawn"`
}

// Board defines board parameters.
type Board struct {
	Size int `yaml:"size"`
}

// Spawn defines tile spawn parameters.
type Spawn struct {
	// FourProbability is the chance a spawned tile is a 4 instead of a 2.
	FourProbability float64 `yaml:"four_probability"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("config: board size must be at least 2, got %d", c.Board.Size)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("config: four_probability must be in [0, 1], got %v", c.Spawn.FourProbability)
	}
	return nil
}
