// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package narrative

import (
	"strings"

	"github.com/tomtom215/visus/internal/observation"
)

// noContextSentence is returned when no contextual guard matched.
const noContextSentence = "Standard scene with typical elements."

// ContextAnalyzer derives a free-text situational interpretation from the
// scene, action, and object combinations of one observation. It is
// stateless.
type ContextAnalyzer struct{}

// AnalyzeContext assembles the contextual clauses whose guards match,
// joined with ". " and a trailing period. Guards are independent: every
// applicable scene and activity clause fires, in fixed order. The two
// companion clauses at the end are the one exception, being mutually
// exclusive with the dog pairing taking precedence over the bicycle one.
func (ContextAnalyzer) AnalyzeContext(obs observation.Observation) string {
	var clauses []string

	switch obs.Scene {
	case "street", "sidewalk", "road":
		clauses = append(clauses, "This appears to be a public urban area")
	case "park", "garden", "field":
		clauses = append(clauses, "This is an outdoor recreational area")
	case "home", "house", "apartment":
		clauses = append(clauses, "This is a residential setting")
	case "store", "shop", "mall":
		clauses = append(clauses, "This is a commercial environment")
	}

	switch obs.Action {
	case "running", "jogging":
		clauses = append(clauses, "showing active movement")
	case "sitting", "standing", "waiting":
		clauses = append(clauses, "with minimal activity")
	case "walking", "strolling":
		clauses = append(clauses, "with normal pedestrian movement")
	}

	switch {
	case obs.HasObject(personToken) && obs.HasObject("dog"):
		clauses = append(clauses, "likely a pet owner during routine exercise")
	case obs.HasObject(personToken) && obs.HasObject("bicycle"):
		clauses = append(clauses, "suggesting eco-friendly transportation or recreation")
	}

	if len(clauses) == 0 {
		return noContextSentence
	}
	return strings.Join(clauses, ". ") + "."
}
