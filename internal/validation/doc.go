// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

// Package validation provides struct validation using
// go-playground/validator v10 behind a thread-safe singleton.
//
// Visus validates at the edges: configuration structs and operator-supplied
// rule tables are checked once at load time so that analysis itself never
// has to. Validation failures list every offending field in one error
// rather than stopping at the first.
//
// Example usage:
//
//	type RulesConfig struct {
//	    Path         string         `koanf:"path" validate:"omitempty,file"`
//	    Combinations []catalog.Rule `koanf:"combinations" validate:"dive"`
//	}
//
//	if err := validation.ValidateStruct(&cfg); err != nil {
//	    return fmt.Errorf("invalid configuration: %w", err)
//	}
package validation
