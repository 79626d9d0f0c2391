// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package catalog

import (
	"fmt"
	"strings"

	"github.com/tomtom215/visus/internal/observation"
)

// Rule associates a trigger token set with a human-readable label. A rule
// matches when every trigger token is present in the candidate token set.
// Matching is per-token containment, not positional, so triggers may mix
// object labels with action or time labels ("running" and "night" match the
// same way "person" does).
type Rule struct {
	Trigger []string `json:"trigger" yaml:"trigger" koanf:"trigger" validate:"required,min=1,dive,required"`
	Label   string   `json:"label" yaml:"label" koanf:"label" validate:"required"`
}

// Matches reports whether every trigger token appears in tokens.
func (r Rule) Matches(tokens observation.TokenSet) bool {
	for _, t := range r.Trigger {
		if !tokens.Contains(t) {
			return false
		}
	}
	return true
}

// Validate rejects rules that could never match meaningfully: an empty
// trigger, a blank trigger token, or a blank label. Called at catalog
// construction so bad operator input fails at load time, never during
// analysis.
func (r Rule) Validate() error {
	if len(r.Trigger) == 0 {
		return fmt.Errorf("rule %q: empty trigger", r.Label)
	}
	for _, t := range r.Trigger {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("rule %q: blank trigger token", r.Label)
		}
	}
	if strings.TrimSpace(r.Label) == "" {
		return fmt.Errorf("rule with trigger %v: blank label", r.Trigger)
	}
	return nil
}

// Catalog holds the two rule tables consulted during one analysis:
// combination rules enrich the narrative description, suspicion rules drive
// classification. Both tables are slices, never maps, because multiple
// rules can match one observation and findings accumulate in insertion
// order.
//
// A Catalog is immutable after construction. Concurrent readers need no
// synchronization because nothing writes after New returns.
type Catalog struct {
	combinations []Rule
	suspicion    []Rule
}

// New builds a Catalog from the given rule tables, validating every rule.
// Input slices are deep-copied so later mutation by the caller cannot reach
// the catalog.
func New(combinations, suspicion []Rule) (*Catalog, error) {
	for _, r := range combinations {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("combination %w", err)
		}
	}
	for _, r := range suspicion {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("suspicion %w", err)
		}
	}
	return &Catalog{
		combinations: copyRules(combinations),
		suspicion:    copyRules(suspicion),
	}, nil
}

// Default returns a Catalog holding the built-in rule tables.
func Default() *Catalog {
	return &Catalog{
		combinations: DefaultCombinations(),
		suspicion:    DefaultSuspicion(),
	}
}

// Combinations returns the combination rules in insertion order. The
// returned slice is owned by the catalog and must not be modified.
func (c *Catalog) Combinations() []Rule {
	return c.combinations
}

// Suspicion returns the suspicion rules in insertion order. The returned
// slice is owned by the catalog and must not be modified.
func (c *Catalog) Suspicion() []Rule {
	return c.suspicion
}

// DefaultCombinations returns the built-in contextual pairings used to
// enrich person clauses in the narrative description.
func DefaultCombinations() []Rule {
	return []Rule{
		{Trigger: []string{"person", "dog"}, Label: "walking a dog"},
		{Trigger: []string{"person", "bicycle"}, Label: "cycling or with a bicycle"},
		{Trigger: []string{"person", "car"}, Label: "near or entering a vehicle"},
		{Trigger: []string{"person", "bag"}, Label: "carrying belongings"},
		{Trigger: []string{"person", "phone"}, Label: "using a mobile device"},
	}
}

// DefaultSuspicion returns the built-in risk-indicating patterns. Triggers
// mix object tokens with action and time tokens: "running" in the theft
// pattern matches either a detected object or the current action.
func DefaultSuspicion() []Rule {
	return []Rule{
		{Trigger: []string{"person", "window", "night"}, Label: "possible intrusion attempt"},
		{Trigger: []string{"person", "running", "bag"}, Label: "potential theft in progress"},
		{Trigger: []string{"person", "mask", "weapon"}, Label: "armed individual"},
		{Trigger: []string{"fire", "smoke"}, Label: "fire hazard detected"},
	}
}

// copyRules deep-copies a rule slice including each trigger slice.
func copyRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		trigger := make([]string, len(r.Trigger))
		copy(trigger, r.Trigger)
		out[i] = Rule{Trigger: trigger, Label: r.Label}
	}
	return out
}
