// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pradeepreddy0/CampusHireAI/internal/scoring"
)

// Config is the engine configuration that can be loaded from a JSON file.
// All fields are optional; zero values fall back to platform defaults.
type Config struct {
	// Scoring parameters
	SkillWeight float64 `json:"skill_weight,omitempty"` // weight of the skill component (default 0.6)
	CGPAWeight  float64 `json:"cgpa_weight,omitempty"`  // weight of the CGPA component (default 0.4)
	CGPAScale   float64 `json:"cgpa_scale,omitempty"`   // grade scale divisor (default 10)
	OfferRatio  float64 `json:"offer_ratio,omitempty"`  // prior-offer multiplier (default 1.7)

	// Defaults applied when a requirement leaves them unset
	Threshold float64 `json:"threshold,omitempty"` // default shortlisting threshold

	// Extraction vocabulary overrides; empty slices keep the built-in lists
	Skills      []string `json:"skills,omitempty"`
	ActionVerbs []string `json:"action_verbs,omitempty"`
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values. Range validation
// happens here, at the boundary, because the engine itself assumes
// pre-validated input.
func (c *Config) Validate() error {
	if c.SkillWeight < 0 || c.SkillWeight > 1 {
		return fmt.Errorf("config error: 'skill_weight' must be in [0,1]")
	}
	if c.CGPAWeight < 0 || c.CGPAWeight > 1 {
		return fmt.Errorf("config error: 'cgpa_weight' must be in [0,1]")
	}
	if c.CGPAScale < 0 {
		return fmt.Errorf("config error: 'cgpa_scale' must be non-negative")
	}
	if c.OfferRatio < 0 {
		return fmt.Errorf("config error: 'offer_ratio' must be non-negative")
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("config error: 'threshold' must be in [0,1]")
	}
	return nil
}

// Weights resolves the scoring weights, falling back to defaults for unset
// fields.
func (c *Config) Weights() scoring.Weights {
	w := scoring.DefaultWeights()
	if c == nil {
		return w
	}
	if c.SkillWeight > 0 {
		w.Skill = c.SkillWeight
	}
	if c.CGPAWeight > 0 {
		w.CGPA = c.CGPAWeight
	}
	if c.CGPAScale > 0 {
		w.CGPAScale = c.CGPAScale
	}
	if c.OfferRatio > 0 {
		w.OfferRatio = c.OfferRatio
	}
	return w
}
