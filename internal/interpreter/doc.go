// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

// Package interpreter assembles the complete analysis of one camera
// observation.
//
// Analysis Flow:
//
//	record -> Normalize -> +-> Summarize ------+
//	                       +-> Describe -------+-> Analysis -> Render
//	                       +-> AnalyzeContext -+
//	                       +-> Classify -------+
//
// The four interpretation steps run over the same normalized observation
// and share no mutable state; the interpreter merely aggregates their
// outputs into an immutable Analysis value. Rendering is separate and
// purely presentational: it never makes decisions the Analysis does not
// already carry.
//
// Analyze is total for any input record. AnalyzeJSON is the one entry
// point that can fail, and only on a malformed JSON document.
package interpreter
