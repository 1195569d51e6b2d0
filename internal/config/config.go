// Package config loads and persists patchpick's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/patchpick/patchpick/internal/patch"
)

// Config is the process-wide configuration. The engine itself holds no
// settings state; everything it consumes is passed in explicitly via
// EngineOptions.
type Config struct {
	Engine struct {
		// ContextSize is how many preceding context lines bind to a chunk (1-3).
		ContextSize int `yaml:"context_size"`
		// MinMatchScore is the fuzzy threshold (0-100) for locating context.
		MinMatchScore float64 `yaml:"min_match_score"`
		// AppliedScore is the near-exact threshold (0-100) for
		// already-applied detection.
		AppliedScore float64 `yaml:"applied_score"`
		// ApplyTolerance is how many lines the removed block may drift from
		// the anchor at apply time.
		ApplyTolerance int `yaml:"apply_tolerance"`
	} `yaml:"engine"`

	Workspace struct {
		// Root is the directory diff-header paths resolve against. Persisted
		// across runs so the tool remembers the last chosen root.
		Root string `yaml:"root"`
	} `yaml:"workspace"`

	Log struct {
		Path        string `yaml:"path"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`

	UI struct {
		// Color toggles ANSI colors in non-TUI output.
		Color bool `yaml:"color"`
	} `yaml:"ui"`
}

// Default returns a Config with every knob at its default.
func Default() *Config {
	cfg := &Config{}
	cfg.Engine.ContextSize = patch.MaxContextSize
	cfg.Engine.MinMatchScore = patch.DefaultMinScore
	cfg.Engine.AppliedScore = patch.DefaultAppliedScore
	cfg.Engine.ApplyTolerance = patch.DefaultTolerance
	cfg.UI.Color = true
	return cfg
}

// Load reads the config file at path. A missing file is not an error: the
// defaults come back untouched. PATCHPICK_ROOT and PATCHPICK_LOG override
// the file. Out-of-range values are clamped rather than failing startup.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// Missing file keeps the defaults.
	default:
		return nil, err
	}

	cfg.clamp()

	// Environment overrides for per-invocation tweaks without editing the file.
	if root := os.Getenv("PATCHPICK_ROOT"); root != "" {
		cfg.Workspace.Root = root
	}
	if logPath := os.Getenv("PATCHPICK_LOG"); logPath != "" {
		cfg.Log.Path = logPath
	}

	if cfg.Workspace.Root != "" {
		absRoot, err := filepath.Abs(cfg.Workspace.Root)
		if err != nil {
			return nil, fmt.Errorf("resolve workspace root: %w", err)
		}
		cfg.Workspace.Root = absRoot
	}

	return cfg, nil
}

func (c *Config) clamp() {
	if c.Engine.ContextSize < 1 {
		c.Engine.ContextSize = 1
	}
	if c.Engine.ContextSize > patch.MaxContextSize {
		c.Engine.ContextSize = patch.MaxContextSize
	}
	if c.Engine.MinMatchScore <= 0 || c.Engine.MinMatchScore > 100 {
		c.Engine.MinMatchScore = patch.DefaultMinScore
	}
	if c.Engine.AppliedScore <= 0 || c.Engine.AppliedScore > 100 {
		c.Engine.AppliedScore = patch.DefaultAppliedScore
	}
	if c.Engine.ApplyTolerance <= 0 {
		c.Engine.ApplyTolerance = patch.DefaultTolerance
	}
}

// Save writes the config back to path, creating parent directories as
// needed. Called at shutdown to flush the remembered root.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// EngineOptions translates the config into engine options.
func (c *Config) EngineOptions() patch.Options {
	return patch.Options{
		ContextSize:  c.Engine.ContextSize,
		MinScore:     c.Engine.MinMatchScore,
		AppliedScore: c.Engine.AppliedScore,
		Tolerance:    c.Engine.ApplyTolerance,
	}
}

// DefaultPath is where the config lives when no -config flag is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "patchpick.yaml"
	}
	return filepath.Join(home, ".patchpick", "config.yaml")
}
