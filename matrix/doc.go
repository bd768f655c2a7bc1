// SPDX-License-Identifier: MIT

// Package matrix provides the dense square storage behind every distance
// table in tourlab.
//
// What & Why:
//
//	Solvers read n×n pairwise distances in tight loops; the oracle fills them
//	once per solve. Dense keeps the values in a single row-major slice so a
//	snapshot can be handed to several solvers at once without sharing mutable
//	state (Clone is a deep copy).
//
// Numeric policy:
//
//	+Inf is a legal value and means "unreachable" (an endpoint inside an
//	obstacle). NaN and negative entries are rejected by ValidateDistance.
//	Symmetry is checked within a tolerance; two +Inf entries compare equal.
//
// Complexity:
//
//	At/Set are O(1) with bounds checking; Clone and validators are O(r*c).
package matrix
