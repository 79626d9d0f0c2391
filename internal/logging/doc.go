// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

// Package logging provides centralized zerolog-based structured logging
// for Visus.
//
// The interpretation engine itself never logs; it is a pure function over
// immutable rule tables. Logging belongs to the layers around it: the CLI,
// configuration loading, and stream processing, which report what they read,
// what they rejected, and how each record was classified.
//
// # Quick Start
//
//	import "github.com/tomtom215/visus/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	// Log messages with structured fields
//	logging.Info().Str("rules_file", path).Msg("catalog loaded")
//	logging.Error().Err(err).Msg("record rejected")
//
// # Correlation IDs
//
// Stream processing tags every record with a short correlation ID so one
// record's trail can be grepped out of interleaved output:
//
//	ctx := logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Info().Str("level", lvl).Msg("record analyzed")
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
