// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/visus/internal/config"
)

var rulesFlags struct {
	export   bool
	defaults bool
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show or export the active rule tables",
	Long: `Rules prints the combination and suspicion tables the interpreter is
running with, after applying any configured rule file and inline rules.

With --export the tables are emitted as YAML in the rule file format, so
the active catalog can be saved, edited and loaded back:

  visus rules --export > rules.yaml
  VISUS_RULES=rules.yaml visus analyze observation.json

With --defaults the built-in tables are used, ignoring configuration.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	f := rulesCmd.Flags()
	f.BoolVar(&rulesFlags.export, "export", false, "Emit the tables as YAML in the rule file format")
	f.BoolVar(&rulesFlags.defaults, "defaults", false, "Use the built-in tables, ignoring configuration")
}

func runRules(cmd *cobra.Command, args []string) error {
	var rf config.RuleFile
	if rulesFlags.defaults {
		rf = config.DefaultRuleFile()
	} else {
		a, err := setup()
		if err != nil {
			return err
		}
		rf = config.RuleFile{
			Combinations: a.cat.Combinations(),
			Suspicion:    a.cat.Suspicion(),
		}
	}

	if rulesFlags.export {
		return exportRules(cmd.OutOrStdout(), rf)
	}
	printRules(cmd.OutOrStdout(), rf)
	return nil
}

func printRules(w io.Writer, rf config.RuleFile) {
	fmt.Fprintf(w, "Combination rules (%d):\n", len(rf.Combinations))
	for _, r := range rf.Combinations {
		fmt.Fprintf(w, "  %s -> %s\n", strings.Join(r.Trigger, " + "), r.Label)
	}

	fmt.Fprintf(w, "\nSuspicion rules (%d):\n", len(rf.Suspicion))
	for _, r := range rf.Suspicion {
		fmt.Fprintf(w, "  %s -> %s\n", strings.Join(r.Trigger, " + "), r.Label)
	}
}

func exportRules(w io.Writer, rf config.RuleFile) error {
	fmt.Fprintln(w, "# Visus rule tables. Load with rules.path in visus.yaml")
	fmt.Fprintln(w, "# or the VISUS_RULES environment variable.")

	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("encoding rule tables: %w", err)
	}
	_, err = w.Write(data)
	return err
}
