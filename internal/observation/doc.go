// Visus - Camera Feed Interpretation and Suspicion Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visus

// Package observation defines the normalized fact tuple produced by one
// vision-model output and the normalizer that derives it from arbitrary
// input records.
//
// Normalization is a total function by contract: absent or malformed fields
// silently default (objects to an empty list, scene to "unknown", action to
// "stationary", time to "day") so that downstream interpretation always has
// a complete fact tuple to work with. No token vocabulary is enforced:
// unrecognized scene, action, or object strings degrade gracefully by
// matching no rules rather than raising errors.
package observation
