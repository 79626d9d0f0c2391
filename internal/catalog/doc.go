// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

// Package catalog holds the pattern rule tables that drive interpretation:
// combination rules (non-threatening pairings such as person+dog that
// enrich the narrative) and suspicion rules (risk-indicating patterns such
// as person+window+night).
//
// Rule matching is per-token set containment: a rule fires when every token
// in its trigger appears somewhere in the candidate token set. Which token
// set a rule is matched against is the caller's choice. Suspicion rules
// are matched against objects plus action and time, combination rules
// against objects alone.
//
// Catalogs are built once, validated at construction, and never mutated
// afterwards, so a single instance can serve concurrent analyses without
// synchronization. Rule order is significant: tables are slices and callers
// iterate in insertion order because several rules can match one
// observation and findings accumulate in that order.
package catalog
