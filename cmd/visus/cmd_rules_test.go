// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/visus/internal/config"
)

// TestPrintRules verifies the human-readable table listing
func TestPrintRules(t *testing.T) {
	var buf bytes.Buffer
	printRules(&buf, config.DefaultRuleFile())

	out := buf.String()
	checks := []string{
		"Combination rules (5):",
		"person + dog -> walking a dog",
		"person + phone -> using a mobile device",
		"Suspicion rules (4):",
		"person + window + night -> possible intrusion attempt",
		"fire + smoke -> fire hazard detected",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

// TestExportRulesRoundTrip verifies exported YAML loads back unchanged
func TestExportRulesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := exportRules(&buf, config.DefaultRuleFile()); err != nil {
		t.Fatalf("exportRules() error = %v", err)
	}

	if !strings.HasPrefix(buf.String(), "# Visus rule tables.") {
		t.Errorf("export missing usage comment header:\n%s", buf.String())
	}

	var rf config.RuleFile
	if err := yaml.Unmarshal(buf.Bytes(), &rf); err != nil {
		t.Fatalf("exported YAML does not parse: %v\n%s", err, buf.String())
	}

	if len(rf.Combinations) != 5 {
		t.Errorf("round trip lost combinations: got %d, want 5", len(rf.Combinations))
	}
	if len(rf.Suspicion) != 4 {
		t.Errorf("round trip lost suspicion rules: got %d, want 4", len(rf.Suspicion))
	}
	if rf.Combinations[0].Label != "walking a dog" {
		t.Errorf("Combinations[0].Label = %q, want walking a dog", rf.Combinations[0].Label)
	}
	if got := rf.Suspicion[3].Trigger; len(got) != 2 || got[0] != "fire" || got[1] != "smoke" {
		t.Errorf("Suspicion[3].Trigger = %v, want [fire smoke]", got)
	}
}
