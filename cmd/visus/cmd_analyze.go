// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/visus/internal/detection"
	"github.com/tomtom215/visus/internal/interpreter"
	"github.com/tomtom215/visus/internal/logging"
)

const (
	formatText = "text"
	formatJSON = "json"

	// maxRecordBytes caps one NDJSON line; vision model records are small
	// but object lists from dense scenes can run long.
	maxRecordBytes = 1 << 20
)

var analyzeFlags struct {
	format string
	stream bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze observation records from a file or stdin",
	Long: `Analyze reads a JSON observation record and prints the scene report.

A record carries the optional keys detected_objects, scene, action and
time; every key may be absent. Input comes from the named file, or from
stdin when no file (or "-") is given.

Usage:
  visus analyze observation.json
  echo '{"detected_objects":["person","dog"],"scene":"street"}' | visus analyze
  visus analyze --stream feed.ndjson       # one record per line
  visus analyze --format json observation.json

The suspicion level never affects the exit code: a SUSPICIOUS result is
data, not an error. The exit code is non-zero only for unreadable input
or a broken configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeFlags.format, "format", formatText, "Output format: text or json")
	f.BoolVar(&analyzeFlags.stream, "stream", false, "Treat input as NDJSON with one record per line")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeFlags.format != formatText && analyzeFlags.format != formatJSON {
		return fmt.Errorf("unknown output format %q (want text or json)", analyzeFlags.format)
	}

	a, err := setup()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
		name = args[0]
	}

	if analyzeFlags.stream {
		return analyzeStream(cmd.OutOrStdout(), a.interp, in, name)
	}
	return analyzeSingle(cmd.OutOrStdout(), a.interp, in, name)
}

// analyzeSingle reads the whole input as one observation record.
func analyzeSingle(w io.Writer, interp *interpreter.Interpreter, in io.Reader, name string) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	ctx := logging.ContextWithNewCorrelationID(context.Background())
	analysis, err := interp.AnalyzeJSON(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logAnalysis(ctx, analysis)

	return writeAnalysis(w, analysis)
}

// analyzeStream reads NDJSON, one observation record per line. Blank lines
// are skipped; a malformed line aborts the stream with its line number so
// a broken feed is caught rather than silently dropped.
func analyzeStream(w io.Writer, interp *interpreter.Interpreter, in io.Reader, name string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)

	line := 0
	records := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		ctx := logging.ContextWithNewCorrelationID(context.Background())
		analysis, err := interp.AnalyzeJSON(raw)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", name, line, err)
		}
		logAnalysis(ctx, analysis)

		if records > 0 && analyzeFlags.format == formatText {
			fmt.Fprintln(w)
		}
		if err := writeAnalysis(w, analysis); err != nil {
			return err
		}
		records++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	logging.Info().
		Int("records", records).
		Str("input", name).
		Msg("Stream analysis complete")
	return nil
}

// writeAnalysis emits one analysis in the selected format. JSON output is
// one document per line so streamed output stays NDJSON.
func writeAnalysis(w io.Writer, analysis interpreter.Analysis) error {
	if analyzeFlags.format == formatJSON {
		data, err := json.Marshal(analysis)
		if err != nil {
			return fmt.Errorf("encoding analysis: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	}

	_, err := fmt.Fprintln(w, analysis.Render())
	return err
}

// logAnalysis records the outcome on stderr, warning when the record
// crossed into suspicious territory. Report text on stdout stays clean.
func logAnalysis(ctx context.Context, analysis interpreter.Analysis) {
	evt := logging.Ctx(ctx).Debug()
	if analysis.Level >= detection.Suspicious {
		evt = logging.Ctx(ctx).Warn()
	}
	evt.Str("suspicion_level", analysis.Level.String()).
		Int("alerts", len(analysis.Highlights)).
		Msg("Observation analyzed")
}
