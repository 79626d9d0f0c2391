// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package observation

// Defaults applied by Normalize for absent or malformed fields. The
// permissive-input policy is deliberate: perception payloads vary across
// upstream model versions, and a missing field must never abort analysis.
const (
	DefaultScene  = "unknown"
	DefaultAction = "stationary"
	DefaultTime   = "day"
)

// Input record keys recognized by Normalize.
const (
	KeyObjects = "detected_objects"
	KeyScene   = "scene"
	KeyAction  = "action"
	KeyTime    = "time"
)

// Observation is the normalized fact tuple derived from one vision-model
// output: detected objects, scene type, dominant action, and time of day.
// Objects preserves detection order and duplicates. The token vocabulary is
// open: unknown tokens are opaque strings that simply fail to match rules.
type Observation struct {
	Objects []string `json:"detected_objects"`
	Scene   string   `json:"scene"`
	Action  string   `json:"action"`
	Time    string   `json:"time"`
}

// Normalize extracts the four observation fields from an arbitrary record,
// defaulting anything absent or of the wrong type. It is total: no input,
// including nil, causes a failure. Unrecognized keys are ignored.
func Normalize(record map[string]any) Observation {
	obs := Observation{
		Objects: []string{},
		Scene:   DefaultScene,
		Action:  DefaultAction,
		Time:    DefaultTime,
	}
	if record == nil {
		return obs
	}

	if raw, ok := record[KeyObjects]; ok {
		obs.Objects = coerceStrings(raw)
	}
	if s, ok := stringField(record, KeyScene); ok {
		obs.Scene = s
	}
	if s, ok := stringField(record, KeyAction); ok {
		obs.Action = s
	}
	if s, ok := stringField(record, KeyTime); ok {
		obs.Time = s
	}
	return obs
}

// HasObject reports whether token appears among the detected objects.
func (o Observation) HasObject(token string) bool {
	for _, obj := range o.Objects {
		if obj == token {
			return true
		}
	}
	return false
}

// ObjectSet returns the detected objects as an unordered token set, the
// matching domain for combination rules.
func (o Observation) ObjectSet() TokenSet {
	set := make(TokenSet, len(o.Objects))
	for _, obj := range o.Objects {
		set[obj] = struct{}{}
	}
	return set
}

// SuspicionTokens returns the matching domain for suspicion rules: the
// object set plus the action and time tokens. Triggers may mix object
// labels with action or time labels, so all three fact kinds are pooled.
func (o Observation) SuspicionTokens() TokenSet {
	set := o.ObjectSet()
	set[o.Action] = struct{}{}
	set[o.Time] = struct{}{}
	return set
}

// TokenSet is an unordered set of string tokens used for rule matching.
type TokenSet map[string]struct{}

// Contains reports whether token is a member of the set.
func (ts TokenSet) Contains(token string) bool {
	_, ok := ts[token]
	return ok
}

// coerceStrings keeps the string elements of a decoded sequence and skips
// everything else. JSON decoding yields []any; native callers may pass
// []string directly. Non-sequence values drop to an empty list.
func coerceStrings(raw any) []string {
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// stringField returns the string under key. A present but non-string value
// counts as malformed and reports false so the caller keeps the default.
// An explicitly empty string is well-formed and is preserved.
func stringField(record map[string]any, key string) (string, bool) {
	v, ok := record[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
