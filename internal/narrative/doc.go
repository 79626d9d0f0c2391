// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

// Package narrative turns normalized observations into human-readable text:
// a one-sentence summary, a multi-clause description enriched by the
// combination rule table, and a situational context interpretation.
//
// All output is deterministic. Sentence templates are fixed, clause order
// follows guard order, and the person clause in the description is resolved
// by a last-match-wins fold over the combination table in insertion order.
// Unknown scene, action, or object tokens degrade gracefully: they render
// verbatim inside the templates and simply contribute no contextual clause.
package narrative
