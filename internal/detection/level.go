// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package detection

import "fmt"

// Level is the ordered suspicion severity attached to one analysis.
// The ordering Normal < Unusual < Suspicious is load-bearing:
// classification only ever moves a level forward.
type Level int

const (
	// Normal means no suspicious pattern and no unusual-activity guard
	// matched.
	Normal Level = iota

	// Unusual means at least one ad-hoc guard fired but no suspicion
	// pattern matched.
	Unusual

	// Suspicious means at least one suspicion pattern matched. It is the
	// terminal level; nothing escalates past it.
	Suspicious
)

// String returns the lower-case text form of the level.
func (l Level) String() string {
	switch l {
	case Unusual:
		return "unusual"
	case Suspicious:
		return "suspicious"
	default:
		return "normal"
	}
}

// Escalate returns the higher of l and to. Within one classification pass
// a level is never downgraded, so escalation is max, not assignment.
func (l Level) Escalate(to Level) Level {
	if to > l {
		return to
	}
	return l
}

// MarshalText implements encoding.TextMarshaler so levels serialize as
// their text form in JSON and YAML documents.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*l = Normal
	case "unusual":
		*l = Unusual
	case "suspicious":
		*l = Suspicious
	default:
		return fmt.Errorf("unknown suspicion level %q", string(text))
	}
	return nil
}
