/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders evaluation results collected by the evals
// package into human-readable markdown tables.
//
// Summary walks a NamespacedObserver tree of ResultCollectors and
// produces one row per leaf namespace, with pass rates and grade
// statistics. Paths are expected to follow /{variant}/{metric}.
package report
