// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

// Package main is the entry point for the visus command line tool.
//
// Visus converts structured detections from a camera vision model into
// plain-language scene reports with an escalating suspicion level. Input
// is a JSON record of detected objects, scene, action and time; output is
// a fixed-format text report or the analysis as JSON.
//
// Commands:
//
//	visus analyze [file]   analyze one record (or an NDJSON stream) from file or stdin
//	visus demo             run the built-in example records
//	visus rules            show or export the active rule tables
//	visus version          print build information
//
// Configuration is loaded from visus.yaml (or the path in VISUS_CONFIG)
// and environment variables; see internal/config.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/visus/internal/catalog"
	"github.com/tomtom215/visus/internal/config"
	"github.com/tomtom215/visus/internal/interpreter"
	"github.com/tomtom215/visus/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "visus",
	Short: "Interpret camera vision detections into scene reports",
	Long: "Visus turns structured camera detections (objects, scene, action, time)\n" +
		"into natural-language scene reports with an escalating suspicion level.",
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version
}

// app holds the pieces every analyzing command needs after boot.
type app struct {
	cat    *catalog.Catalog
	interp *interpreter.Interpreter
}

// setup loads configuration, initializes logging from it and assembles the
// interpreter with the effective rule catalog. Every analyzing command
// starts here so a bad config or rule file fails before any input is read.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	cat, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	logging.Debug().
		Int("combination_rules", len(cat.Combinations())).
		Int("suspicion_rules", len(cat.Suspicion())).
		Msg("Rule catalog assembled")

	return &app{cat: cat, interp: interpreter.New(cat)}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
