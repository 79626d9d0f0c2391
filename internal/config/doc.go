// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

// Package config loads and validates Visus configuration.
//
// Configuration is layered with koanf v2, later layers overriding earlier
// ones:
//
//	struct defaults -> YAML config file -> environment variables
//
// The config file is searched at visus.yaml, visus.yml,
// /etc/visus/visus.yaml, and /etc/visus/visus.yml; the VISUS_CONFIG
// environment variable overrides the search with an explicit path.
// Environment variables map through an explicit table (LOG_LEVEL,
// LOG_FORMAT, LOG_CALLER, VISUS_RULES) so unrelated variables never leak
// into the configuration.
//
// Rule tables follow the same philosophy as the rest of the system: the
// engine is total and never fails at analysis time, so operator mistakes
// such as an unknown log level or a rule with a blank label are rejected
// here at load time instead.
package config
