// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles rpt2rdf project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the rpt2rdf.yaml project configuration file.
type Config struct {
	Version int    `yaml:"version"`
	Reports string `yaml:"reports,omitempty"`
	Output  string `yaml:"output,omitempty"`
	Format  string `yaml:"format,omitempty"`

	Engine EngineConfig `yaml:"engine,omitempty"`
}

// EngineConfig is the conversion surface of the configuration: identifier
// prefixes, the layout target, default typography, and the policy applied
// to expressions no template covers.
type EngineConfig struct {
	FormulaPrefix   string `yaml:"formulaPrefix,omitempty"`
	ParameterPrefix string `yaml:"parameterPrefix,omitempty"`
	TriggerPrefix   string `yaml:"triggerPrefix,omitempty"`
	FieldPrefix     string `yaml:"fieldPrefix,omitempty"`
	Unit            string `yaml:"unit,omitempty"`
	FontName        string `yaml:"fontName,omitempty"`
	FontSize        int    `yaml:"fontSize,omitempty"`
	OnUnsupported   string `yaml:"onUnsupported,omitempty"`
}

// Default returns a Config carrying the stock conversion conventions.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Reports: "reports",
		Output:  "out",
		Format:  "rdfxml",
		Engine: EngineConfig{
			FormulaPrefix:   "CF_",
			ParameterPrefix: "P_",
			TriggerPrefix:   "FT_",
			FieldPrefix:     "F_",
			Unit:            "point",
			FontName:        "helvetica",
			FontSize:        10,
			OnUnsupported:   "placeholder",
		},
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Reports == "" {
		return errors.New("reports directory is required")
	}
	switch c.Engine.Unit {
	case "", "twip", "twips", "point", "points", "pt", "inch", "inches", "in", "centimeter", "centimeters", "cm":
	default:
		return fmt.Errorf("unknown unit %q", c.Engine.Unit)
	}
	switch c.Engine.OnUnsupported {
	case "", "placeholder", "skip", "fail":
	default:
		return fmt.Errorf("unknown unsupported-formula policy %q (placeholder, skip, or fail)", c.Engine.OnUnsupported)
	}
	return nil
}
