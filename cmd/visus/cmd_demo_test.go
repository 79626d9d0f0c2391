// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/visus/internal/config"
)

// withCleanConfig pins configuration for command tests: the host
// environment is cleared out and VISUS_CONFIG points at a minimal file so
// default-path discovery cannot pick up a stray visus.yaml.
func withCleanConfig(t *testing.T) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "visus_cmd_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	cfgPath := filepath.Join(tmpDir, "visus.yaml")
	if err := os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")
	os.Unsetenv("LOG_CALLER")
	os.Unsetenv("VISUS_RULES")
	os.Setenv(config.ConfigPathEnvVar, cfgPath)
	t.Cleanup(func() { os.Unsetenv(config.ConfigPathEnvVar) })
}

// executeCommand runs the root command with the given args and returns its
// combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	analyzeFlags.format = formatText
	analyzeFlags.stream = false
	rulesFlags.export = false
	rulesFlags.defaults = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// TestDemoCommand verifies the canned records cover every classification
func TestDemoCommand(t *testing.T) {
	withCleanConfig(t)

	out, err := executeCommand(t, "demo")
	if err != nil {
		t.Fatalf("demo error = %v", err)
	}

	if got := strings.Count(out, "VISION ANALYSIS REPORT"); got != 4 {
		t.Errorf("got %d reports, want 4", got)
	}
	for i := 1; i <= 4; i++ {
		if !strings.Contains(out, fmt.Sprintf("Test Case %d:", i)) {
			t.Errorf("output missing Test Case %d header", i)
		}
	}

	checks := []string{
		// Case 1: routine street scene, bicycle rule overwrites the dog rule
		"A person is cycling or with a bicycle",
		"SUSPICION LEVEL: NORMAL",
		// Case 2: theft pattern plus night-running guard
		"WARNING: potential theft in progress",
		"WARNING: Person running at night",
		// Case 3: smoke without fire stays normal
		"No unusual activity detected",
		// Case 4: intrusion pattern plus climbing guard
		"WARNING: possible intrusion attempt",
		"WARNING: Unusual climbing activity",
		"SUSPICION LEVEL: SUSPICIOUS",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q", want)
		}
	}
}

// TestRulesCommandDefaults verifies rules --defaults skips configuration
func TestRulesCommandDefaults(t *testing.T) {
	withCleanConfig(t)

	out, err := executeCommand(t, "rules", "--defaults")
	if err != nil {
		t.Fatalf("rules error = %v", err)
	}
	if !strings.Contains(out, "Combination rules (5):") {
		t.Errorf("output missing combination table:\n%s", out)
	}
	if !strings.Contains(out, "person + mask + weapon -> armed individual") {
		t.Errorf("output missing armed individual rule:\n%s", out)
	}
}

// TestRulesCommandExport verifies rules --export emits YAML
func TestRulesCommandExport(t *testing.T) {
	withCleanConfig(t)

	out, err := executeCommand(t, "rules", "--defaults", "--export")
	if err != nil {
		t.Fatalf("rules --export error = %v", err)
	}
	if !strings.Contains(out, "combinations:") || !strings.Contains(out, "suspicion:") {
		t.Errorf("export missing table sections:\n%s", out)
	}
	if !strings.Contains(out, "label: walking a dog") {
		t.Errorf("export missing rule labels:\n%s", out)
	}
}

// TestAnalyzeCommandFile verifies analyze reads a record from a file
func TestAnalyzeCommandFile(t *testing.T) {
	withCleanConfig(t)

	tmpDir, err := os.MkdirTemp("", "visus_cmd_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	recordPath := filepath.Join(tmpDir, "observation.json")
	record := `{"detected_objects":["person","ladder","window"],"scene":"house","action":"climbing","time":"night"}`
	if err := os.WriteFile(recordPath, []byte(record), 0644); err != nil {
		t.Fatalf("Failed to write record: %v", err)
	}

	out, err := executeCommand(t, "analyze", recordPath)
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if !strings.Contains(out, "SUSPICION LEVEL: SUSPICIOUS") {
		t.Errorf("output missing suspicious level:\n%s", out)
	}
	if !strings.Contains(out, "WARNING: possible intrusion attempt") {
		t.Errorf("output missing intrusion alert:\n%s", out)
	}
}

// TestAnalyzeCommandMissingFile verifies a bad path is an error
func TestAnalyzeCommandMissingFile(t *testing.T) {
	withCleanConfig(t)

	_, err := executeCommand(t, "analyze", "/non/existent/observation.json")
	if err == nil {
		t.Fatal("analyze should fail for a missing input file")
	}
	if !strings.Contains(err.Error(), "opening input") {
		t.Errorf("error = %v, want opening input", err)
	}
}
