// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

package interpreter

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/visus/internal/catalog"
	"github.com/tomtom215/visus/internal/detection"
	"github.com/tomtom215/visus/internal/narrative"
	"github.com/tomtom215/visus/internal/observation"
)

// Analysis is the immutable result of interpreting one observation. It is
// created once per Analyze call and owned solely by the caller; the
// interpreter keeps no reference to it.
type Analysis struct {
	Summary     string          `json:"summary"`
	Description string          `json:"description"`
	Context     string          `json:"context"`
	Level       detection.Level `json:"suspicion_level"`
	Highlights  []string        `json:"highlights"`
}

// Interpreter wires the narrative composer, context analyzer, and suspicion
// classifier over one shared rule catalog. Every component is a pure
// function over the immutable catalog, so a single Interpreter serves
// concurrent Analyze calls without synchronization.
type Interpreter struct {
	composer   *narrative.Composer
	contexts   narrative.ContextAnalyzer
	classifier *detection.Classifier
}

// New builds an Interpreter over the given catalog. Pass catalog.Default()
// for the built-in rule tables.
func New(cat *catalog.Catalog) *Interpreter {
	return &Interpreter{
		composer:   narrative.NewComposer(cat),
		classifier: detection.NewClassifier(cat),
	}
}

// Analyze normalizes an arbitrary input record and interprets it. Like the
// normalizer it is total: any record, including nil, yields a best-effort
// analysis rather than an error.
func (i *Interpreter) Analyze(record map[string]any) Analysis {
	return i.AnalyzeObservation(observation.Normalize(record))
}

// AnalyzeObservation interprets an already-normalized observation.
func (i *Interpreter) AnalyzeObservation(obs observation.Observation) Analysis {
	level, highlights := i.classifier.Classify(obs)
	return Analysis{
		Summary:     i.composer.Summarize(obs),
		Description: i.composer.Describe(obs),
		Context:     i.contexts.AnalyzeContext(obs),
		Level:       level,
		Highlights:  highlights,
	}
}

// AnalyzeJSON decodes one JSON record and interprets it. A malformed
// document is the only failure mode: field-level problems inside a
// well-formed record still normalize to defaults.
func (i *Interpreter) AnalyzeJSON(data []byte) (Analysis, error) {
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return Analysis{}, fmt.Errorf("decoding observation record: %w", err)
	}
	return i.Analyze(record), nil
}
