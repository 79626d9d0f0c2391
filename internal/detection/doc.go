// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

// Package detection classifies observations into an escalating suspicion
// level and produces the alert highlights that justify it.
//
// Classification Flow:
//
//	Observation -> Suspicion Rules -> Ad-hoc Guards -> (Level, Highlights)
//	                  |                   |
//	                  v                   v
//	            Suspicious            Unusual
//
// Two rule sources are consulted in order. The suspicion rule table from
// the pattern catalog is matched by token containment against the pooled
// object, action, and time tokens; any match escalates to Suspicious. A
// fixed list of ad-hoc guards then checks unusual-but-not-yet-suspicious
// situations (running at night, restricted areas, climbing outside a gym,
// crowds running); any hit escalates to Unusual.
//
// Escalation is a forward-only state machine over
// Normal < Unusual < Suspicious: levels rise as matches accumulate and are
// never downgraded within one classification. Highlights are returned in
// evaluation order, table matches before guard hits, duplicates preserved.
//
// The restricted-area guard fires on the scene token alone, without
// requiring a person among the detected objects. That asymmetry is
// intentional and relied upon by operators monitoring closed-off zones.
package detection
