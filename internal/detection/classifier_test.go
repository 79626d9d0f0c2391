// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package detection

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/visus/internal/catalog"
	"github.com/tomtom215/visus/internal/observation"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier(catalog.Default())

	tests := []struct {
		name           string
		obs            observation.Observation
		wantLevel      Level
		wantHighlights []string
	}{
		{
			name: "nothing detected is normal",
			obs: observation.Observation{
				Objects: []string{},
				Scene:   "unknown",
				Action:  "stationary",
				Time:    "day",
			},
			wantLevel:      Normal,
			wantHighlights: []string{},
		},
		{
			name: "benign scene is normal",
			obs: observation.Observation{
				Objects: []string{"person", "dog"},
				Scene:   "street",
				Action:  "walking",
				Time:    "day",
			},
			wantLevel:      Normal,
			wantHighlights: []string{},
		},
		{
			name: "intrusion pattern uses the time token",
			obs: observation.Observation{
				Objects: []string{"person", "window"},
				Scene:   "house",
				Action:  "stationary",
				Time:    "night",
			},
			wantLevel:      Suspicious,
			wantHighlights: []string{"WARNING: possible intrusion attempt"},
		},
		{
			name: "theft pattern matches running as the action token",
			obs: observation.Observation{
				Objects: []string{"person", "bag"},
				Scene:   "street",
				Action:  "running",
				Time:    "day",
			},
			wantLevel: Suspicious,
			wantHighlights: []string{
				"WARNING: potential theft in progress",
			},
		},
		{
			name: "armed individual pattern",
			obs: observation.Observation{
				Objects: []string{"person", "mask", "weapon"},
				Scene:   "store",
				Action:  "stationary",
				Time:    "day",
			},
			wantLevel:      Suspicious,
			wantHighlights: []string{"WARNING: armed individual"},
		},
		{
			name: "smoke without fire is not a hazard match",
			obs: observation.Observation{
				Objects: []string{"car", "person", "smoke"},
				Scene:   "parking lot",
				Action:  "standing",
				Time:    "day",
			},
			wantLevel:      Normal,
			wantHighlights: []string{},
		},
		{
			name: "running at night guard",
			obs: observation.Observation{
				Objects: []string{"person"},
				Scene:   "street",
				Action:  "running",
				Time:    "night",
			},
			wantLevel:      Unusual,
			wantHighlights: []string{"WARNING: Person running at night"},
		},
		{
			name: "restricted scene fires with no objects at all",
			obs: observation.Observation{
				Objects: []string{},
				Scene:   "restricted",
				Action:  "stationary",
				Time:    "day",
			},
			wantLevel:      Unusual,
			wantHighlights: []string{"WARNING: Unauthorized person in restricted area"},
		},
		{
			name: "climbing outside a gym",
			obs: observation.Observation{
				Objects: []string{},
				Scene:   "house",
				Action:  "climbing",
				Time:    "day",
			},
			wantLevel:      Unusual,
			wantHighlights: []string{"WARNING: Unusual climbing activity"},
		},
		{
			name: "climbing in a gym is fine",
			obs: observation.Observation{
				Objects: []string{"person"},
				Scene:   "gym",
				Action:  "climbing",
				Time:    "day",
			},
			wantLevel:      Normal,
			wantHighlights: []string{},
		},
		{
			name: "crowd running as object tokens",
			obs: observation.Observation{
				Objects: []string{"crowd", "running"},
				Scene:   "street",
				Action:  "stationary",
				Time:    "day",
			},
			wantLevel:      Unusual,
			wantHighlights: []string{"WARNING: Multiple people running - possible emergency"},
		},
		{
			name: "crowd object with running action",
			obs: observation.Observation{
				Objects: []string{"crowd"},
				Scene:   "street",
				Action:  "running",
				Time:    "day",
			},
			wantLevel:      Unusual,
			wantHighlights: []string{"WARNING: Multiple people running - possible emergency"},
		},
		{
			name: "pattern matches accumulate in table order",
			obs: observation.Observation{
				Objects: []string{"person", "window", "fire", "smoke"},
				Scene:   "house",
				Action:  "stationary",
				Time:    "night",
			},
			wantLevel: Suspicious,
			wantHighlights: []string{
				"WARNING: possible intrusion attempt",
				"WARNING: fire hazard detected",
			},
		},
		{
			name: "guard hit never downgrades a suspicious level",
			obs: observation.Observation{
				Objects: []string{"person", "bag"},
				Scene:   "store",
				Action:  "running",
				Time:    "night",
			},
			wantLevel: Suspicious,
			wantHighlights: []string{
				"WARNING: potential theft in progress",
				"WARNING: Person running at night",
			},
		},
		{
			name: "intrusion plus climbing guard",
			obs: observation.Observation{
				Objects: []string{"person", "ladder", "window"},
				Scene:   "house",
				Action:  "climbing",
				Time:    "night",
			},
			wantLevel: Suspicious,
			wantHighlights: []string{
				"WARNING: possible intrusion attempt",
				"WARNING: Unusual climbing activity",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, highlights := classifier.Classify(tt.obs)

			if level != tt.wantLevel {
				t.Errorf("level: got %v, want %v", level, tt.wantLevel)
			}
			if !reflect.DeepEqual(highlights, tt.wantHighlights) {
				t.Errorf("highlights: got %v, want %v", highlights, tt.wantHighlights)
			}
		})
	}
}

func TestClassifier_Classify_HighlightsNeverNil(t *testing.T) {
	classifier := NewClassifier(catalog.Default())

	_, highlights := classifier.Classify(observation.Observation{
		Scene:  "unknown",
		Action: "stationary",
		Time:   "day",
	})

	if highlights == nil {
		t.Error("highlights should be an empty slice, not nil")
	}
}

func TestClassifier_Classify_EveryHighlightPrefixed(t *testing.T) {
	classifier := NewClassifier(catalog.Default())

	_, highlights := classifier.Classify(observation.Observation{
		Objects: []string{"person", "window", "crowd", "running"},
		Scene:   "restricted",
		Action:  "climbing",
		Time:    "night",
	})

	if len(highlights) == 0 {
		t.Fatal("expected highlights for a heavily matching observation")
	}
	for _, h := range highlights {
		if !strings.HasPrefix(h, HighlightPrefix) {
			t.Errorf("highlight %q missing prefix %q", h, HighlightPrefix)
		}
	}
}

func TestClassifier_CustomRuleTable(t *testing.T) {
	cat, err := catalog.New(nil, []catalog.Rule{
		{Trigger: []string{"drone", "night"}, Label: "unauthorized drone flight"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	classifier := NewClassifier(cat)

	level, highlights := classifier.Classify(observation.Observation{
		Objects: []string{"drone"},
		Scene:   "airfield",
		Action:  "hovering",
		Time:    "night",
	})

	if level != Suspicious {
		t.Errorf("level: got %v, want %v", level, Suspicious)
	}
	want := []string{"WARNING: unauthorized drone flight"}
	if !reflect.DeepEqual(highlights, want) {
		t.Errorf("highlights: got %v, want %v", highlights, want)
	}
}

// Duplicate rules are legal and must produce duplicate highlights: the
// classifier reports every match, it does not deduplicate.
func TestClassifier_DuplicateRulesKeepDuplicateHighlights(t *testing.T) {
	cat, err := catalog.New(nil, []catalog.Rule{
		{Trigger: []string{"fire"}, Label: "fire hazard detected"},
		{Trigger: []string{"fire"}, Label: "fire hazard detected"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	classifier := NewClassifier(cat)

	_, highlights := classifier.Classify(observation.Observation{
		Objects: []string{"fire"},
		Scene:   "unknown",
		Action:  "stationary",
		Time:    "day",
	})

	want := []string{
		"WARNING: fire hazard detected",
		"WARNING: fire hazard detected",
	}
	if !reflect.DeepEqual(highlights, want) {
		t.Errorf("highlights: got %v, want %v", highlights, want)
	}
}
