package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Board.Size != 4 {
		t.Errorf("default board size = %d, want 4", cfg.Board.Size)
	}
	if cfg.Spawn.FourProbability != 0.10 {
		t.Errorf("default four_probability = %v, want 0.10", cfg.Spawn.FourProbability)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Board: Board{Size: 4}, Spawn: Spawn{FourProbability: 0.1}},
		},
		{
			name: "minimum size",
			cfg:  Config{Board: Board{Size: 2}, Spawn: Spawn{FourProbability: 0}},
		},
		{
			name:    "size too small",
			cfg:     Config{Board: Board{Size: 1}, Spawn: Spawn{FourProbability: 0.1}},
			wantErr: true,
		},
		{
			name:    "probability above one",
			cfg:     Config{Board: Board{Size: 4}, Spawn: Spawn{FourProbability: 1.5}},
			wantErr: true,
		},
		{
			name:    "negative probability",
			cfg:     Config{Board: Board{Size: 4}, Spawn: Spawn{FourProbability: -0.1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() should fail")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate(): %v", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("board:\n  size: 5\nspawn:\n  four_probability: 0.25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}

	if cfg.Board.Size != 5 {
		t.Errorf("board size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Spawn.FourProbability != 0.25 {
		t.Errorf("four_probability = %v, want 0.25", cfg.Spawn.FourProbability)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load with missing custom path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load with invalid board size should fail")
	}
}

func TestLoadFallback(t *testing.T) {
	// Without a custom path Load falls back to the embedded default
	// (unless the environment provides a user/local config, which still
	// has to validate).
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}
