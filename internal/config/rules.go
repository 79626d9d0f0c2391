// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/visus/internal/catalog"
)

// RuleFile is the on-disk YAML rule table format:
//
//	combinations:
//	  - trigger: [person, dog]
//	    label: walking a dog
//	suspicion:
//	  - trigger: [fire, smoke]
//	    label: fire hazard detected
//
// A rule file replaces the built-in tables entirely; a missing section
// means that table is empty, not that the built-in one is kept.
type RuleFile struct {
	Combinations []catalog.Rule `koanf:"combinations" yaml:"combinations"`
	Suspicion    []catalog.Rule `koanf:"suspicion" yaml:"suspicion"`
}

// DefaultRuleFile returns the built-in tables in rule file form, used by
// the rules export so operators can start from the shipped catalog.
func DefaultRuleFile() RuleFile {
	return RuleFile{
		Combinations: catalog.DefaultCombinations(),
		Suspicion:    catalog.DefaultSuspicion(),
	}
}

// LoadRuleFile reads and decodes a YAML rule file. Rule contents are
// validated later by catalog.New, so this only fails on unreadable files
// and malformed documents.
func LoadRuleFile(path string) (*RuleFile, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading rule file %s: %w", path, err)
	}

	rf := &RuleFile{}
	if err := k.Unmarshal("", rf); err != nil {
		return nil, fmt.Errorf("parsing rule file %s: %w", path, err)
	}

	return rf, nil
}
