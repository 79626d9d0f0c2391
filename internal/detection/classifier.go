// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package detection

import (
	"github.com/tomtom215/visus/internal/catalog"
	"github.com/tomtom215/visus/internal/observation"
)

// HighlightPrefix marks every alert highlight produced by classification.
const HighlightPrefix = "WARNING: "

// guard is one ad-hoc unusual-activity check: an independent predicate
// over the observation plus the highlight message it contributes when true.
type guard struct {
	match   func(obs observation.Observation) bool
	message string
}

// Classifier evaluates observations against the suspicion rule table and a
// fixed ordered guard list, producing an escalating severity level plus the
// alert highlights in evaluation order.
//
// The rule table is snapshotted at construction and never mutated, so one
// Classifier safely serves concurrent callers.
type Classifier struct {
	rules  []catalog.Rule
	guards []guard
}

// NewClassifier builds a Classifier over the catalog's suspicion rules.
func NewClassifier(cat *catalog.Catalog) *Classifier {
	return &Classifier{
		rules:  cat.Suspicion(),
		guards: unusualGuards(),
	}
}

// Classify evaluates the observation in two passes: the suspicion rule
// table first (any match escalates to Suspicious), then the guard list
// (any hit escalates to at most Unusual). The level only moves forward;
// a guard firing after a pattern match never lowers Suspicious back down.
// Highlights keep evaluation order, rule matches before guard hits, with
// duplicates preserved.
func (c *Classifier) Classify(obs observation.Observation) (Level, []string) {
	level := Normal
	highlights := []string{}

	tokens := obs.SuspicionTokens()
	for _, rule := range c.rules {
		if rule.Matches(tokens) {
			highlights = append(highlights, HighlightPrefix+rule.Label)
			level = level.Escalate(Suspicious)
		}
	}

	for _, g := range c.guards {
		if g.match(obs) {
			highlights = append(highlights, HighlightPrefix+g.message)
			level = level.Escalate(Unusual)
		}
	}

	return level, highlights
}

// unusualGuards returns the ordered ad-hoc checks evaluated after the rule
// table. Guards are independent of the catalog and of each other; each one
// can raise the level to Unusual but never lower it.
func unusualGuards() []guard {
	return []guard{
		{
			match: func(obs observation.Observation) bool {
				return obs.Action == "running" && obs.Time == "night"
			},
			message: "Person running at night",
		},
		{
			// Fires on the scene token alone, with no requirement that a
			// person was detected. Restricted areas are flagged even when
			// the detector reports nothing moving in them.
			match: func(obs observation.Observation) bool {
				return obs.Scene == "restricted"
			},
			message: "Unauthorized person in restricted area",
		},
		{
			match: func(obs observation.Observation) bool {
				return obs.Action == "climbing" && obs.Scene != "gym"
			},
			message: "Unusual climbing activity",
		},
		{
			match: func(obs observation.Observation) bool {
				return hasActivityToken(obs, "crowd") && hasActivityToken(obs, "running")
			},
			message: "Multiple people running - possible emergency",
		},
	}
}

// hasActivityToken reports whether tok appears among the detected objects
// or as the current action.
func hasActivityToken(obs observation.Observation, tok string) bool {
	return obs.HasObject(tok) || obs.Action == tok
}
