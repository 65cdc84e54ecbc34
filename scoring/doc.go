/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package scoring provides pure set and multiset metrics for comparing
// predicted named-entity extractions against gold labels.
//
// Both metrics operate on category-tagged entries: each entity value is
// keyed by its uppercased category tag so that the same literal string
// appearing under two categories counts as two distinct labels.
package scoring
