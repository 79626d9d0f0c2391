// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package narrative

import (
	"fmt"
	"strings"

	"github.com/tomtom215/visus/internal/catalog"
	"github.com/tomtom215/visus/internal/observation"
)

// personToken is the object label that anchors person-centric clauses.
const personToken = "person"

// Composer produces the summary and description sentences for one
// observation. It snapshots the combination rules at construction; the
// slice is read-only afterwards, so one Composer may serve concurrent
// callers.
type Composer struct {
	combinations []catalog.Rule
}

// NewComposer builds a Composer over the catalog's combination rules.
func NewComposer(cat *catalog.Catalog) *Composer {
	return &Composer{combinations: cat.Combinations()}
}

// Summarize returns a one-sentence summary of the scene. With no detected
// objects it reports an empty scene; otherwise the first object in
// detection order becomes the grammatical subject (first-object-wins is the
// tie-break when several objects are present).
func (c *Composer) Summarize(obs observation.Observation) string {
	if len(obs.Objects) == 0 {
		return fmt.Sprintf("Empty %s scene detected.", obs.Scene)
	}
	return fmt.Sprintf("A %s %s in a %s setting.", obs.Objects[0], obs.Action, obs.Scene)
}

// Describe returns a natural-language description of the scene built from
// up to two clauses: a person clause, possibly rewritten by a matching
// combination rule, and a listing of the remaining objects. Clauses join
// with ". " and carry a trailing scene qualifier.
//
// The person clause folds over the combination table in insertion order and
// the LAST matching rule wins: later table entries overwrite earlier
// matches rather than short-circuiting on the first. Rule order in the
// table is therefore observable behavior.
func (c *Composer) Describe(obs observation.Observation) string {
	if len(obs.Objects) == 0 {
		return fmt.Sprintf("The camera shows an empty %s with no significant activity.", obs.Scene)
	}

	var parts []string

	if obs.HasObject(personToken) {
		clause := fmt.Sprintf("A person is %s", obs.Action)
		for _, rule := range c.combinations {
			if !containsToken(rule.Trigger, personToken) {
				continue
			}
			if triggerHitsCompanion(rule.Trigger, obs.Objects) {
				clause = fmt.Sprintf("A person is %s", rule.Label)
			}
		}
		parts = append(parts, clause)
	}

	others := companionObjects(obs.Objects)
	switch len(others) {
	case 0:
	case 1:
		parts = append(parts, fmt.Sprintf("A %s is also visible", others[0]))
	default:
		parts = append(parts, fmt.Sprintf("Also visible: %s", strings.Join(others, ", ")))
	}

	return strings.Join(parts, ". ") + fmt.Sprintf(" on a %s.", obs.Scene)
}

// containsToken reports whether token appears in tokens.
func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}

// triggerHitsCompanion reports whether any detected non-person object
// appears in the rule trigger.
func triggerHitsCompanion(trigger, objects []string) bool {
	for _, obj := range objects {
		if obj == personToken {
			continue
		}
		if containsToken(trigger, obj) {
			return true
		}
	}
	return false
}

// companionObjects returns the non-person objects in detection order,
// duplicates preserved.
func companionObjects(objects []string) []string {
	others := make([]string, 0, len(objects))
	for _, obj := range objects {
		if obj != personToken {
			others = append(others, obj)
		}
	}
	return others
}
