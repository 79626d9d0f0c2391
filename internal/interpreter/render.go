// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package interpreter

import "strings"

// Fixed layout of the text report. Downstream consumers pattern-match on
// these, so they are not configurable.
const (
	separatorWidth = 50
	reportTitle    = "VISION ANALYSIS REPORT"
	noAlertsLine   = "No unusual activity detected"
)

// Render returns the fixed-format display text for the analysis: a banner
// between separator rules, one block per section, and either the alert
// bullets or the no-alert sentinel. The output is deterministic down to the
// byte for a given Analysis value.
func (a Analysis) Render() string {
	sep := strings.Repeat("=", separatorWidth)

	lines := []string{
		sep,
		reportTitle,
		sep,
		"\nSUMMARY: " + a.Summary,
		"\nDESCRIPTION: " + a.Description,
		"\nCONTEXT: " + a.Context,
		"\nSUSPICION LEVEL: " + strings.ToUpper(a.Level.String()),
	}

	if len(a.Highlights) > 0 {
		lines = append(lines, "\nALERTS:")
		for _, h := range a.Highlights {
			lines = append(lines, "  - "+h)
		}
	} else {
		lines = append(lines, "\n"+noAlertsLine)
	}

	lines = append(lines, "\n"+sep)
	return strings.Join(lines, "\n")
}
