// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// demoRecord mirrors the input contract with stable key order for display.
type demoRecord struct {
	Objects []string `json:"detected_objects"`
	Scene   string   `json:"scene"`
	Action  string   `json:"action"`
	Time    string   `json:"time,omitempty"`
}

// demoRecords are example vision model outputs covering the interesting
// classifications: a routine scene, a theft pattern, smoke without fire
// (stays normal), and a night-time intrusion pattern.
var demoRecords = []demoRecord{
	{Objects: []string{"person", "dog", "bicycle"}, Scene: "street", Action: "walking"},
	{Objects: []string{"person", "bag", "running"}, Scene: "store", Action: "running", Time: "night"},
	{Objects: []string{"car", "person", "smoke"}, Scene: "parking lot", Action: "standing"},
	{Objects: []string{"person", "ladder", "window"}, Scene: "house", Action: "climbing", Time: "night"},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Analyze the built-in example records",
	Long: `Demo runs the built-in example records through the interpreter and
prints each input alongside its report. Useful for a first look at the
output format and for checking the effect of a custom rule file.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, rec := range demoRecords {
		input, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding example %d: %w", i+1, err)
		}

		analysis, err := a.interp.AnalyzeJSON(input)
		if err != nil {
			return fmt.Errorf("analyzing example %d: %w", i+1, err)
		}

		fmt.Fprintf(w, "\nTest Case %d:\n", i+1)
		fmt.Fprintf(w, "Input: %s\n", input)
		fmt.Fprintln(w, analysis.Render())
		fmt.Fprintln(w, "\n"+strings.Repeat("-", 50))
	}
	return nil
}
