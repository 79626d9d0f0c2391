// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package config

import (
	"fmt"

	"github.com/tomtom215/visus/internal/catalog"
	"github.com/tomtom215/visus/internal/validation"
)

// Config is the root configuration for Visus.
type Config struct {
	Logging LoggingConfig `koanf:"logging"`
	Rules   RulesConfig   `koanf:"rules"`
}

// LoggingConfig controls log output. Reports go to stdout; logs always go
// to stderr so piping report text stays clean.
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic disabled"`

	// Format selects json or console output.
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// RulesConfig controls the rule tables the interpreter runs with.
type RulesConfig struct {
	// Path optionally points to a YAML rule file that replaces the
	// built-in tables entirely.
	Path string `koanf:"path"`

	// Combinations extends the base combination table with additional
	// rules, appended after it so they win last-match-wins resolution.
	Combinations []catalog.Rule `koanf:"combinations" validate:"dive"`

	// Suspicion extends the base suspicion table with additional rules.
	Suspicion []catalog.Rule `koanf:"suspicion" validate:"dive"`
}

// Validate checks the configuration, collecting every field error. Rule
// contents get their deeper validation in Catalog via catalog.New.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Catalog assembles the effective rule catalog: the built-in tables, or
// the rule file at rules.path when set, extended by any inline rules from
// the configuration. Every rule is validated; a bad table fails here, at
// load time, never during analysis.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	combinations := catalog.DefaultCombinations()
	suspicion := catalog.DefaultSuspicion()

	if c.Rules.Path != "" {
		rf, err := LoadRuleFile(c.Rules.Path)
		if err != nil {
			return nil, err
		}
		combinations = rf.Combinations
		suspicion = rf.Suspicion
	}

	combinations = append(combinations, c.Rules.Combinations...)
	suspicion = append(suspicion, c.Rules.Suspicion...)

	cat, err := catalog.New(combinations, suspicion)
	if err != nil {
		return nil, fmt.Errorf("assembling rule catalog: %w", err)
	}
	return cat, nil
}
